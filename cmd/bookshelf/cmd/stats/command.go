// Package stats implements the stats command.
package stats

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/cmd/application"
	"github.com/agentstation/bookshelf/internal/cmd/cmdutil"
	"github.com/agentstation/bookshelf/internal/cmd/table"
	"github.com/agentstation/bookshelf/pkg/books"
)

// NewCommand creates the stats command using app context.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "stats",
		GroupID: "catalog",
		Short:   "Show how much of the catalog has been read",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, catalog, err := cmdutil.LoadCatalog(cmd, app)
			if err != nil {
				return err
			}

			s := books.Stats(catalog)
			return cmdutil.Render(cmd, cmdutil.OutputFormat(app), s, table.StatsToTableData(s))
		},
	}

	return cmd
}
