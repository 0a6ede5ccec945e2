// Copyright 2026 The MonoCloud CLI Authors
// SPDX-License-Identifier: MIT

package main

import (
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	monolog "github.com/monocloud/monocloud-cli/internal/log"
	"github.com/monocloud/monocloud-cli/internal/options"
)

// Global flag values.
var (
	verbose bool
	quiet   bool
	noColor bool
	inv     = invocation{dir: "."}
)

// rootCmd is the base command for monocloud.
var rootCmd = &cobra.Command{
	Use:   "monocloud <command> [flags]",
	Short: "Set up MonoCloud authentication in your project",
	Long: `monocloud configures MonoCloud authentication for a web application.
The init command asks for any settings not given as flags, saves them to
an env file, creates the authentication route handler and installs the SDK.`,
	Example: `  monocloud init
  monocloud init --framework nextjs --issuer https://example.us.monocloud.com --scopes openid,profile,email`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	FParseErrWhitelist: cobra.FParseErrWhitelist{
		UnknownFlags: true,
	},
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		monolog.Setup(verbose, quiet)
		if noColor {
			color.NoColor = true
		}
	},
	RunE: runRoot,
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("monocloud {{.Version}}\n")

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	frameworks := make([]string, 0, len(options.Frameworks()))
	for _, f := range options.Frameworks() {
		frameworks = append(frameworks, string(f))
	}

	f := rootCmd.Flags()
	f.StringVar(&inv.framework, "framework", "", "framework to configure ("+strings.Join(frameworks, ", ")+")")
	f.StringVar(&inv.issuer, "issuer", "", "issuer url of your MonoCloud tenant")
	f.StringVar(&inv.clientID, "clientId", "", "client id of your application")
	f.StringVar(&inv.clientSecret, "clientSecret", "", "client secret of your application")
	f.StringVar(&inv.scopes, "scopes", "", "comma-separated scopes to request")
	f.StringVar(&inv.appURL, "appUrl", "", "url of your application")
	f.StringVar(&inv.cookieSecret, "cookieSecret", "", "secret used to encrypt the session cookie")
	f.StringVar(&inv.sdkVersion, "sdkVersion", "", "version of the SDK package to install")
	f.StringVar(&inv.dir, "dir", ".", "project directory")
}
