// Package main provides the entry point for the bookshelf CLI tool.
package main

import (
	"context"
	"os"

	"github.com/agentstation/bookshelf/cmd/bookshelf/app"
	"github.com/agentstation/bookshelf/pkg/logging"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	err := run()
	//nolint:errcheck // log files are best effort at exit
	_ = logging.Close()
	app.ExitOnError(err)
}

func run() error {
	application, err := app.New(version, commit, date, builtBy)
	if err != nil {
		return err
	}

	// Create context with signal handling for graceful shutdown
	ctx, cancel := app.ContextWithSignals(context.Background())
	defer cancel()

	return application.Execute(ctx, os.Args[1:])
}
