// Package cmdutil provides helpers shared by bookshelf commands.
package cmdutil

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/cmd/application"
	"github.com/agentstation/bookshelf/internal/cmd/output"
	"github.com/agentstation/bookshelf/internal/cmd/table"
	"github.com/agentstation/bookshelf/pkg/books"
	"github.com/agentstation/bookshelf/pkg/logging"
	"github.com/agentstation/bookshelf/pkg/store"
)

// LoadCatalog opens the application's store and loads the catalog from it.
// The command's context logger is tagged with the command name and used
// for the load event.
func LoadCatalog(cmd *cobra.Command, app application.Application) (*store.Store, books.Catalog, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithOperation(ctx, cmd.Name())
	cmd.SetContext(ctx)

	s, err := app.Store()
	if err != nil {
		return nil, nil, err
	}

	catalog, err := s.Load()
	if err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("Catalog load failed")
		return nil, nil, err
	}

	logging.FromContext(ctx).Debug().
		Str("format", s.Format().String()).
		Int("books", len(catalog)).
		Msg("Catalog loaded")

	return s, catalog, nil
}

// OutputFormat resolves the output format, auto-detecting when unset.
func OutputFormat(app application.Application) output.Format {
	return output.DetectFormat(app.OutputFormat())
}

// Render writes data to the command's output. Table output renders
// tableData; structured formats encode data as is.
func Render(cmd *cobra.Command, format output.Format, data any, tableData table.Data) error {
	formatter := output.NewFormatter(format)
	if format.IsStructured() {
		return formatter.Format(cmd.OutOrStdout(), data)
	}
	return formatter.Format(cmd.OutOrStdout(), output.FromTable(tableData))
}

// Statusf prints a status line prefixed with symbol.
func Statusf(cmd *cobra.Command, symbol, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", symbol, fmt.Sprintf(format, args...))
}
