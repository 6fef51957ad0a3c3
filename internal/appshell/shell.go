// Package appshell owns the process boundary: signals, standard
// streams and the exit code. Everything below it is testable with
// injected writers.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// Main wires OS signals into a context, runs the app, and exits with
// its code. Interrupted runs that would otherwise report success exit
// with the conventional 130.
func Main(run func(context.Context, []string, io.Writer, io.Writer) int) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	if ctx.Err() != nil && code == 0 {
		code = 130
	}

	stop()
	os.Exit(code)
}
