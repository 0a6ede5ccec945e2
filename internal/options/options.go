// Copyright 2026 The MonoCloud CLI Authors
// SPDX-License-Identifier: MIT

// Package options holds the configuration collected by `monocloud init`
// and the rules that constrain it.
package options

import (
	"strings"

	"golang.org/x/mod/semver"
)

// Command is a top-level CLI command.
type Command string

// CommandInit configures authentication for a project.
const CommandInit Command = "init"

// Framework identifies the application framework being configured.
type Framework string

// FrameworkNextJS is the NextJS integration.
const FrameworkNextJS Framework = "nextjs"

// Commands returns the supported commands.
func Commands() []Command { return []Command{CommandInit} }

// Frameworks returns the supported frameworks.
func Frameworks() []Framework { return []Framework{FrameworkNextJS} }

// Field identifies one collectible setting. The iota order is the
// collection order and the order of appended env lines.
type Field int

const (
	FieldIssuer Field = iota
	FieldClientID
	FieldClientSecret
	FieldScopes
	FieldAppURL
	FieldCookieSecret
)

// FieldSpec describes a managed field.
type FieldSpec struct {
	Field  Field
	EnvKey string
	Label  string
}

var fieldSpecs = []FieldSpec{
	{FieldIssuer, "MONOCLOUD_AUTH_ISSUER", "Issuer Url"},
	{FieldClientID, "MONOCLOUD_AUTH_CLIENT_ID", "Client Id"},
	{FieldClientSecret, "MONOCLOUD_AUTH_CLIENT_SECRET", "Client Secret"},
	{FieldScopes, "MONOCLOUD_AUTH_SCOPES", "Scopes"},
	{FieldAppURL, "MONOCLOUD_AUTH_APP_URL", "App Url"},
	{FieldCookieSecret, "MONOCLOUD_AUTH_COOKIE_SECRET", "Cookie Secret"},
}

// Fields returns the managed fields in collection order.
func Fields() []FieldSpec {
	out := make([]FieldSpec, len(fieldSpecs))
	copy(out, fieldSpecs)
	return out
}

func (f Field) String() string { return fieldSpecs[f].Label }

// Input is the raw, unvalidated configuration as it arrives from flags
// and config files.
type Input struct {
	Command      string
	Framework    string
	SDKVersion   string
	Issuer       string
	ClientID     string
	ClientSecret string
	Scopes       string
	AppURL       string
	CookieSecret string
}

// Options is the validated configuration. An empty string means unset.
type Options struct {
	Command      Command
	Framework    Framework
	SDKVersion   string
	Issuer       string
	ClientID     string
	ClientSecret string
	Scopes       string
	AppURL       string
	CookieSecret string
}

// Entry is one env-file key/value pair.
type Entry struct {
	Key   string
	Value string
}

// New builds Options from in. Command and framework are mandatory.
func New(in Input) (Options, error) {
	o, err := NewPartial(in)
	if err != nil {
		return Options{}, err
	}
	if o.Framework == "" {
		return Options{}, unsupportedFramework()
	}
	return o, nil
}

// NewPartial is New without the framework requirement, for callers that
// will ask for the framework interactively and finish with WithFramework.
func NewPartial(in Input) (Options, error) {
	o := Options{
		Command:      Command(strings.TrimSpace(in.Command)),
		Framework:    Framework(strings.TrimSpace(in.Framework)),
		SDKVersion:   normalizeVersion(in.SDKVersion),
		Issuer:       strings.TrimSpace(in.Issuer),
		ClientID:     strings.TrimSpace(in.ClientID),
		ClientSecret: strings.TrimSpace(in.ClientSecret),
		Scopes:       strings.TrimSpace(in.Scopes),
		AppURL:       strings.TrimSpace(in.AppURL),
		CookieSecret: strings.TrimSpace(in.CookieSecret),
	}
	if err := validate(o, false); err != nil {
		return Options{}, err
	}
	return o, nil
}

// WithFramework returns a copy of o with the framework set and validated.
func (o Options) WithFramework(fw Framework) (Options, error) {
	o.Framework = fw
	if err := validate(o, true); err != nil {
		return Options{}, err
	}
	return o, nil
}

// Get returns the value of f.
func (o Options) Get(f Field) string {
	switch f {
	case FieldIssuer:
		return o.Issuer
	case FieldClientID:
		return o.ClientID
	case FieldClientSecret:
		return o.ClientSecret
	case FieldScopes:
		return o.Scopes
	case FieldAppURL:
		return o.AppURL
	case FieldCookieSecret:
		return o.CookieSecret
	}
	return ""
}

// Set assigns v to f.
func (o *Options) Set(f Field, v string) {
	switch f {
	case FieldIssuer:
		o.Issuer = v
	case FieldClientID:
		o.ClientID = v
	case FieldClientSecret:
		o.ClientSecret = v
	case FieldScopes:
		o.Scopes = v
	case FieldAppURL:
		o.AppURL = v
	case FieldCookieSecret:
		o.CookieSecret = v
	}
}

// Missing returns the managed fields that are still unset, in order.
func (o Options) Missing() []Field {
	var out []Field
	for _, s := range fieldSpecs {
		if strings.TrimSpace(o.Get(s.Field)) == "" {
			out = append(out, s.Field)
		}
	}
	return out
}

// Entries returns the env-file entries for every set field in field
// order. Values are trimmed and scopes are joined by single spaces.
func (o Options) Entries() []Entry {
	var out []Entry
	for _, s := range fieldSpecs {
		v := strings.TrimSpace(o.Get(s.Field))
		if s.Field == FieldScopes {
			v = strings.Join(strings.Fields(v), " ")
		}
		if v == "" {
			continue
		}
		out = append(out, Entry{Key: s.EnvKey, Value: v})
	}
	return out
}

// NormalizeScopes turns a comma-separated scope list into the
// space-separated form stored in the env file.
func NormalizeScopes(list string) string {
	var tokens []string
	for _, s := range strings.Split(strings.TrimSpace(list), ",") {
		if s = strings.TrimSpace(s); s != "" {
			tokens = append(tokens, s)
		}
	}
	return strings.Join(tokens, " ")
}

// normalizeVersion trims v and drops the "v" of a semantic version so
// package managers receive "1.2.3" rather than "v1.2.3". Dist-tags and
// ranges pass through unchanged.
func normalizeVersion(v string) string {
	v = strings.TrimSpace(v)
	if strings.HasPrefix(v, "v") && semver.IsValid(v) {
		return strings.TrimPrefix(v, "v")
	}
	return v
}
