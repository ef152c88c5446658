// Package list implements the list command.
package list

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/cmd/application"
	"github.com/agentstation/bookshelf/internal/cmd/cmdutil"
	"github.com/agentstation/bookshelf/internal/cmd/emoji"
	"github.com/agentstation/bookshelf/internal/cmd/table"
)

// NewCommand creates the list command using app context.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		GroupID: "catalog",
		Aliases: []string{"ls"},
		Short:   "List every book in the catalog",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, catalog, err := cmdutil.LoadCatalog(cmd, app)
			if err != nil {
				return err
			}

			format := cmdutil.OutputFormat(app)
			if !format.IsStructured() && len(catalog) == 0 {
				cmdutil.Statusf(cmd, emoji.Info, "No books available")
				return nil
			}

			return cmdutil.Render(cmd, format, catalog, table.BooksToTableData(catalog))
		},
	}

	return cmd
}
