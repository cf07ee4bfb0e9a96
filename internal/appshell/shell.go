// Package appshell runs a RunContext-style entry point as a process:
// signal-aware context, real stdio and the exit code.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// RunFunc is the signature shared by the app packages.
type RunFunc func(context.Context, []string, io.Writer, io.Writer) int

// Main runs a batch tool. No arguments means -h, and a run interrupted by a
// signal never exits 0.
func Main(run RunFunc) {
	argv := os.Args[1:]
	if len(argv) == 0 {
		argv = []string{"-h"}
	}
	os.Exit(exec(run, argv, true))
}

// Serve runs a long-lived service. Arguments are optional and a
// signal-triggered shutdown that completes cleanly exits 0.
func Serve(run RunFunc) {
	os.Exit(exec(run, os.Args[1:], false))
}

func exec(run RunFunc, argv []string, cancelIsFailure bool) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	code := run(ctx, argv, os.Stdout, os.Stderr)
	// Normalize cancellation exit code.
	if cancelIsFailure && ctx.Err() != nil && code == 0 {
		code = 130
	}
	return code
}
