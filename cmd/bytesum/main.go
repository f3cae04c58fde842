// Package main is the entry point for the bytesum checksum scanner.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/bytesum/cmd/bytesum/commands"
	"go.trai.ch/bytesum/internal/app"
	_ "go.trai.ch/bytesum/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Interrupts cancel the scan in progress; the partial report is still written.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	cli := commands.New(components.App, components.Logger)

	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return 1
	}
	return 0
}
