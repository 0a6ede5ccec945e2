// Copyright 2026 The MonoCloud CLI Authors
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/monocloud/monocloud-cli/internal/redact"
)

// Version is set via -ldflags at build time.
var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		var ece *exitCodeError
		if errors.As(err, &ece) {
			if ece.msg != "" {
				fmt.Fprintln(os.Stderr, redact.String(ece.msg))
			}
			return ece.code
		}
		fmt.Fprintln(os.Stderr, redact.String(err.Error()))
		return ExitFailure
	}
	return ExitOK
}
