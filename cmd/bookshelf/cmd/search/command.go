// Package search implements the search command.
package search

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/cmd/application"
	"github.com/agentstation/bookshelf/internal/cmd/cmdutil"
	"github.com/agentstation/bookshelf/internal/cmd/emoji"
	"github.com/agentstation/bookshelf/internal/cmd/table"
	"github.com/agentstation/bookshelf/pkg/books"
	"github.com/agentstation/bookshelf/pkg/logging"
)

// NewCommand creates the search command using app context.
func NewCommand(app application.Application) *cobra.Command {
	var by string

	cmd := &cobra.Command{
		Use:     "search [TERM]",
		GroupID: "catalog",
		Aliases: []string{"find"},
		Short:   "Search books by title or author",
		Long: `Search lists, in catalog order, every book whose title or author contains
TERM, ignoring case. Without TERM every book matches.`,
		Args: cobra.MaximumNArgs(1),
		Example: `  bookshelf search hobbit
  bookshelf search --by author tolkien`,
		RunE: func(cmd *cobra.Command, args []string) error {
			field, err := books.ParseField(by)
			if err != nil {
				return err
			}
			var term string
			if len(args) == 1 {
				term = args[0]
			}
			return run(cmd, app, field, term)
		},
	}

	cmd.Flags().StringVarP(&by, "by", "b", books.FieldTitle.String(), "field to search: title, author")
	_ = cmd.RegisterFlagCompletionFunc("by", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		fields := make([]string, 0, len(books.Fields()))
		for _, f := range books.Fields() {
			fields = append(fields, f.String())
		}
		return fields, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func run(cmd *cobra.Command, app application.Application, field books.Field, term string) error {
	_, catalog, err := cmdutil.LoadCatalog(cmd, app)
	if err != nil {
		return err
	}

	results := books.Search(catalog, field, term)
	logging.FromContext(cmd.Context()).Debug().
		Str("field", field.String()).
		Str("term", term).
		Int("results", len(results)).
		Msg("Searched catalog")

	format := cmdutil.OutputFormat(app)
	if !format.IsStructured() && len(results) == 0 {
		cmdutil.Statusf(cmd, emoji.Info, "No books found")
		return nil
	}

	return cmdutil.Render(cmd, format, results, table.BooksToTableData(results))
}
