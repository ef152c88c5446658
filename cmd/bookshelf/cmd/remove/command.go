// Package remove implements the remove command.
package remove

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/cmd/application"
	"github.com/agentstation/bookshelf/internal/cmd/cmdutil"
	"github.com/agentstation/bookshelf/internal/cmd/emoji"
	"github.com/agentstation/bookshelf/internal/cmd/table"
)

// Result is the structured output of a removal.
type Result struct {
	Title   string `json:"title" yaml:"title"`
	Removed int    `json:"removed" yaml:"removed"`
}

// NewCommand creates the remove command using app context.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove TITLE",
		GroupID: "catalog",
		Aliases: []string{"rm"},
		Short:   "Remove every book with the given title",
		Long: `Remove deletes every book whose title matches TITLE, ignoring case, and
saves the catalog. The whole title must match; partial titles are not
removed. If no book matches, nothing is saved and the command fails.`,
		Args: cobra.ExactArgs(1),
		Example: `  bookshelf remove "The Hobbit"
  bookshelf remove dune              # removes "Dune" and "DUNE"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, app, args[0])
		},
	}

	return cmd
}

func run(cmd *cobra.Command, app application.Application, title string) error {
	s, catalog, err := cmdutil.LoadCatalog(cmd, app)
	if err != nil {
		return err
	}

	_, removed, err := s.Remove(catalog, title)
	if err != nil {
		return err
	}

	format := cmdutil.OutputFormat(app)
	if format.IsStructured() {
		return cmdutil.Render(cmd, format, Result{Title: title, Removed: removed}, table.Data{})
	}

	noun := "book"
	if removed != 1 {
		noun = "books"
	}
	cmdutil.Statusf(cmd, emoji.Success, "Removed %d %s titled %q", removed, noun, title)
	return nil
}
