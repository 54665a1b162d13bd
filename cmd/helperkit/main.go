package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"helperkit/internal/cli"
)

// runMain executes the CLI with args and returns the exit code
// This function is extracted for testing purposes
func runMain(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.ExecuteContext(ctx, args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	return 0
}

func main() {
	exitCode := runMain(os.Args[1:])
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
