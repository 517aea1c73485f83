// Command plx is a command line client for the platform API.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
)

func mainImpl() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	return newRootCmd(os.Getenv).ExecuteContext(ctx)
}

func main() {
	if err := mainImpl(); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "plx: %v\n", err)
		os.Exit(1)
	}
}
