package main

import (
	"context"
	"fmt"
	"io"
	"os"
)

type application interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Done() <-chan os.Signal
}

// run blocks until ctx is cancelled or fx asks to shut down and returns the process exit code.
func run(ctx context.Context, app application, stderr io.Writer) int {
	if err := app.Start(ctx); err != nil {
		fmt.Fprintf(stderr, "failed to start ecomlite: %v\n", err)
		return 1
	}

	select {
	case <-ctx.Done():
	case <-app.Done():
	}

	if err := app.Stop(context.Background()); err != nil {
		fmt.Fprintf(stderr, "failed to stop ecomlite: %v\n", err)
		return 1
	}
	return 0
}
