// Package main is the internhasha command line client
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"internhasha/internal/platform/config"
	perr "internhasha/internal/platform/errors"
	"internhasha/internal/platform/logger"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	ctx = logger.Into(ctx, logger.Named("cli"))
	err := newRootCmd(newApp()).ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", describe(err))
		os.Exit(exitCode(err))
	}
}

// describe renders err as "field: message" when a field is known
func describe(err error) string {
	w := perr.WireFrom(err)
	if w.Message == "" {
		return err.Error()
	}
	if w.Field != "" {
		return w.Field + ": " + w.Message
	}
	return w.Message
}

// exitCode maps error codes to process exit codes
func exitCode(err error) int {
	switch perr.CodeOf(err) {
	case perr.ErrorCodeUnauthorized, perr.ErrorCodeForbidden:
		return 3
	case perr.ErrorCodeValidation, perr.ErrorCodeInvalidArgument, perr.ErrorCodeJSON:
		return 2
	case perr.ErrorCodeCanceled:
		return 130
	}
	return 1
}
