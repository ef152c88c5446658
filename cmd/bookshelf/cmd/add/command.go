// Package add implements the add command.
package add

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/cmd/application"
	"github.com/agentstation/bookshelf/internal/cmd/cmdutil"
	"github.com/agentstation/bookshelf/internal/cmd/emoji"
	"github.com/agentstation/bookshelf/internal/cmd/table"
	"github.com/agentstation/bookshelf/pkg/books"
)

// NewCommand creates the add command using app context.
func NewCommand(app application.Application) *cobra.Command {
	var in books.Input

	cmd := &cobra.Command{
		Use:     "add",
		GroupID: "catalog",
		Short:   "Add a book to the catalog",
		Long: `Add validates a new book, normalises its capitalisation, appends it to
the end of the catalog, and saves the catalog.

Title and author are title-cased, the genre is capitalised, and the year
must be exactly four digits.`,
		Args: cobra.NoArgs,
		Example: `  bookshelf add --title "the hobbit" --author "j r r tolkien" --year 1937 --genre fantasy
  bookshelf add --title dune --author "frank herbert" --year 1965 --genre sci-fi --read`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, app, in)
		},
	}

	cmd.Flags().StringVarP(&in.Title, "title", "t", "", "book title")
	cmd.Flags().StringVarP(&in.Author, "author", "a", "", "book author")
	cmd.Flags().StringVarP(&in.Year, "year", "y", "", "publication year (4 digits)")
	cmd.Flags().StringVarP(&in.Genre, "genre", "g", "", "book genre")
	cmd.Flags().BoolVarP(&in.Read, "read", "r", false, "mark the book as read")

	return cmd
}

func run(cmd *cobra.Command, app application.Application, in books.Input) error {
	s, catalog, err := cmdutil.LoadCatalog(cmd, app)
	if err != nil {
		return err
	}

	catalog, err = s.Add(catalog, in)
	if err != nil {
		return err
	}

	book := catalog[len(catalog)-1]
	format := cmdutil.OutputFormat(app)
	if format.IsStructured() {
		return cmdutil.Render(cmd, format, book, table.Data{})
	}

	cmdutil.Statusf(cmd, emoji.Success, "Added %q by %s (%s)", book.Title, book.Author, book.Year)
	return nil
}
