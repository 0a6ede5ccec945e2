// Copyright 2026 The MonoCloud CLI Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/monocloud/monocloud-cli/internal/options"
)

// invocation holds the raw flag values of one run.
type invocation struct {
	framework    string
	issuer       string
	clientID     string
	clientSecret string
	scopes       string
	appURL       string
	cookieSecret string
	sdkVersion   string
	dir          string
}

// input turns the positional command and flag values into an
// options.Input. The comma-separated --scopes list becomes the
// space-separated form stored in env files.
func (inv invocation) input(command string) options.Input {
	return options.Input{
		Command:      command,
		Framework:    inv.framework,
		SDKVersion:   inv.sdkVersion,
		Issuer:       inv.issuer,
		ClientID:     inv.clientID,
		ClientSecret: inv.clientSecret,
		Scopes:       options.NormalizeScopes(inv.scopes),
		AppURL:       inv.appURL,
		CookieSecret: inv.cookieSecret,
	}
}
