package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	cmd, cleanup := newRootCommand()
	err := cmd.ExecuteContext(ctx)
	stop()
	if closeErr := cleanup(); closeErr != nil {
		fmt.Fprintln(os.Stderr, "close log output:", closeErr)
	}
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(exitCode(err))
	}
}
