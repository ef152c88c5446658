// Package application provides the application interface for bookshelf commands.
//
// The Application interface defines the contract between the application layer and
// command implementations, so commands can be tested without a real config or
// library file.
//
// Commands log through logging.FromContext(cmd.Context()); the root command
// attaches the configured logger there before any command runs.
//
// Usage in Commands:
//
//	func NewCommand(app application.Application) *cobra.Command {
//	    return &cobra.Command{
//	        RunE: func(cmd *cobra.Command, args []string) error {
//	            s, err := app.Store()
//	            if err != nil {
//	                return err
//	            }
//	            catalog, err := s.Load()
//	            // ... use catalog
//	        },
//	    }
//	}
package application

import (
	"github.com/agentstation/bookshelf/pkg/store"
)

// Application provides what commands need from the running app.
// The App struct from cmd/bookshelf/app implements this interface.
type Application interface {
	// Store returns the catalog store for the configured library file.
	Store() (*store.Store, error)

	// OutputFormat returns the configured output format (table, json, yaml).
	// An empty string means auto-detect.
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
