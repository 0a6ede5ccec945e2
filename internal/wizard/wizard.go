// Copyright 2026 The MonoCloud CLI Authors
// SPDX-License-Identifier: MIT

// Package wizard walks the configuration fields in order and asks for
// every value that was not supplied up front.
package wizard

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/fatih/color"

	"github.com/monocloud/monocloud-cli/internal/options"
	"github.com/monocloud/monocloud-cli/internal/prompt"
	"github.com/monocloud/monocloud-cli/internal/redact"
)

// Defaults offered for fields that have one.
const (
	DefaultScopes = "openid profile email"
	DefaultAppURL = "http://localhost:3000"
)

// SecretBytes is the entropy of a generated cookie secret.
const SecretBytes = 32

var (
	blue = color.New(color.FgBlue).SprintFunc()
	gray = color.New(color.FgHiBlack).SprintFunc()
)

// randReader is the entropy source for generated secrets; tests replace it.
var randReader io.Reader = rand.Reader

// Step describes how one field is collected.
type Step struct {
	Field   options.Field
	Message string
	Default string

	// Offer, when non-empty, is asked as a yes/no question before the text
	// prompt; a yes answer stores the result of Generate instead.
	Offer    string
	OfferNo  string
	Generate func() (string, error)
}

// Steps returns the collection plan in field order.
func Steps() []Step {
	return []Step{
		{Field: options.FieldIssuer, Message: "Enter " + blue("Issuer Url")},
		{Field: options.FieldClientID, Message: "Enter " + blue("Client Id")},
		{Field: options.FieldClientSecret, Message: "Enter " + blue("Client Secret")},
		{
			Field:   options.FieldScopes,
			Message: "Enter " + blue("Scopes") + " " + gray("(space separated)"),
			Default: DefaultScopes,
		},
		{Field: options.FieldAppURL, Message: "Enter " + blue("App Url"), Default: DefaultAppURL},
		{
			Field:    options.FieldCookieSecret,
			Message:  "Enter your " + blue("Cookie Secret"),
			Offer:    "Generate " + blue("Cookie Secret") + "?",
			OfferNo:  "I'll enter my own",
			Generate: GenerateSecret,
		},
	}
}

// Collect asks for every unset field of o and returns the completed copy.
// It stops at the first error; prompt.ErrCancelled is returned unchanged.
func Collect(p prompt.Prompter, o options.Options) (options.Options, error) {
	return Run(p, o, Steps())
}

// Run is Collect with an explicit plan.
func Run(p prompt.Prompter, o options.Options, steps []Step) (options.Options, error) {
	missing := o.Missing()
	for _, st := range steps {
		if !slices.Contains(missing, st.Field) {
			slog.Debug("using supplied value", "field", st.Field.String())
			continue
		}

		v, err := ask(p, o, st)
		if err != nil {
			return options.Options{}, err
		}
		if st.Field == options.FieldClientSecret || st.Field == options.FieldCookieSecret {
			redact.Register(v)
		}
		o.Set(st.Field, v)
	}
	return o, nil
}

func ask(p prompt.Prompter, o options.Options, st Step) (string, error) {
	if st.Offer != "" && st.Generate != nil {
		gen, err := p.Confirm(prompt.Confirm{Message: st.Offer, No: st.OfferNo, Default: true})
		if err != nil {
			return "", err
		}
		if gen {
			slog.Debug("generated value", "field", st.Field.String())
			return st.Generate()
		}
	}

	return p.Text(prompt.Text{
		Message: st.Message,
		Default: st.Default,
		Validate: func(v string) error {
			candidate := o
			candidate.Set(st.Field, v)
			return options.ValidateField(st.Field, candidate)
		},
	})
}

// GenerateSecret returns SecretBytes random bytes, base64 encoded with
// padding.
func GenerateSecret() (string, error) {
	b := make([]byte, SecretBytes)
	if _, err := io.ReadFull(randReader, b); err != nil {
		return "", fmt.Errorf("generating secret: %w", err)
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// ChooseFramework asks which of frameworks to configure.
func ChooseFramework(p prompt.Prompter, frameworks []options.Framework) (options.Framework, error) {
	if len(frameworks) == 0 {
		return "", &options.PreconditionError{Msg: "No frameworks available"}
	}
	titles := make([]string, len(frameworks))
	for i, f := range frameworks {
		titles[i] = Title(f)
	}
	idx, err := p.Select(prompt.Select{Message: "Choose a " + blue("framework"), Choices: titles})
	if err != nil {
		return "", err
	}
	return frameworks[idx], nil
}

// Title is the display name of a framework.
func Title(f options.Framework) string {
	switch f {
	case options.FrameworkNextJS:
		return "NextJS"
	}
	return string(f)
}
