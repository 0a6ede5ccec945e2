// Copyright 2026 The MonoCloud CLI Authors
// SPDX-License-Identifier: MIT

package options

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Rule messages, shown verbatim as the prompt re-ask text.
const (
	msgIssuer       = `Issuer should be a valid "https" url`
	msgClientID     = "Client Id should be a non empty string"
	msgClientSecret = "Client Secret should be a non empty string"
	msgScopes       = "Scope must contain openid"
	msgAppURL       = "App Url should be a valid url"
	msgCookieSecret = "Cookie Secret should be atleast 8 characters long"
)

var errURLSpace = errors.New("url contains whitespace")

// MinCookieSecretLen is the shortest accepted cookie secret, in characters.
const MinCookieSecretLen = 8

// Validator checks one field against the whole partial configuration.
type Validator func(o Options) error

var validators = map[Field]Validator{
	FieldIssuer:       validateIssuer,
	FieldClientID:     nonEmpty(FieldClientID, msgClientID),
	FieldClientSecret: nonEmpty(FieldClientSecret, msgClientSecret),
	FieldScopes:       validateScopes,
	FieldAppURL:       validateAppURL,
	FieldCookieSecret: validateCookieSecret,
}

// Validate checks every set field of o and returns the first violation.
func Validate(o Options) error {
	return validate(o, true)
}

// ValidateField checks f on o. Unlike Validate, an unset value is a
// violation: this is the rule applied to a value the user typed.
func ValidateField(f Field, o Options) error {
	v, ok := validators[f]
	if !ok {
		return fmt.Errorf("options: unknown field %d", f)
	}
	return v(o)
}

func validate(o Options, requireFramework bool) error {
	if !slices.Contains(Commands(), o.Command) {
		return unsupportedCommand()
	}
	if o.Framework == "" {
		if requireFramework {
			return unsupportedFramework()
		}
	} else if !slices.Contains(Frameworks(), o.Framework) {
		return unsupportedFramework()
	}

	for _, s := range fieldSpecs {
		if strings.TrimSpace(o.Get(s.Field)) == "" {
			continue
		}
		if err := validators[s.Field](o); err != nil {
			return err
		}
	}
	return nil
}

func unsupportedCommand() error {
	names := make([]string, 0, len(Commands()))
	for _, c := range Commands() {
		names = append(names, string(c))
	}
	return &PreconditionError{Msg: "Unsupported command. Supported commands: " + strings.Join(names, ",")}
}

func unsupportedFramework() error {
	names := make([]string, 0, len(Frameworks()))
	for _, f := range Frameworks() {
		names = append(names, string(f))
	}
	return &PreconditionError{Msg: "Unsupported framework. Supported frameworks: " + strings.Join(names, ",")}
}

func nonEmpty(f Field, msg string) Validator {
	return func(o Options) error {
		if strings.TrimSpace(o.Get(f)) == "" {
			return &ValidationError{Field: f, Msg: msg}
		}
		return nil
	}
}

func validateIssuer(o Options) error {
	u, err := parseURL(o.Issuer)
	if err != nil || !strings.EqualFold(u.Scheme, "https") || u.Host == "" {
		return &ValidationError{Field: FieldIssuer, Msg: msgIssuer}
	}
	return nil
}

func validateScopes(o Options) error {
	if !slices.Contains(strings.Fields(o.Scopes), "openid") {
		return &ValidationError{Field: FieldScopes, Msg: msgScopes}
	}
	return nil
}

func validateAppURL(o Options) error {
	u, err := parseURL(o.AppURL)
	if err != nil || u.Scheme == "" || (u.Host == "" && u.Opaque == "") {
		return &ValidationError{Field: FieldAppURL, Msg: msgAppURL}
	}
	return nil
}

func validateCookieSecret(o Options) error {
	if utf8.RuneCountInString(strings.TrimSpace(o.CookieSecret)) < MinCookieSecretLen {
		return &ValidationError{Field: FieldCookieSecret, Msg: msgCookieSecret}
	}
	return nil
}

// parseURL parses the trimmed value. url.Parse tolerates spaces in the
// path, which are not valid in a URI.
func parseURL(v string) (*url.URL, error) {
	v = strings.TrimSpace(v)
	if strings.ContainsFunc(v, unicode.IsSpace) {
		return nil, errURLSpace
	}
	return url.Parse(v)
}
