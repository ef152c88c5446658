// Package export implements the export command.
package export

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/cmd/application"
	"github.com/agentstation/bookshelf/internal/cmd/cmdutil"
	"github.com/agentstation/bookshelf/internal/cmd/emoji"
	"github.com/agentstation/bookshelf/pkg/save"
)

// Flags holds export-specific flags.
type Flags struct {
	To   string
	File string
}

// NewCommand creates the export command using app context.
func NewCommand(app application.Application) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:     "export",
		GroupID: "catalog",
		Short:   "Write the catalog as JSON or YAML",
		Long: `Export writes the whole catalog to standard output or to a file.

The format defaults to the file extension when --file is given, and to the
format of the library file otherwise. Files are replaced atomically.`,
		Args: cobra.NoArgs,
		Example: `  bookshelf export --to yaml
  bookshelf export --file backup.yaml
  bookshelf export --to json --file backup.json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, app, flags)
		},
	}

	cmd.Flags().StringVar(&flags.To, "to", "", "export format: json, yaml")
	cmd.Flags().StringVarP(&flags.File, "file", "f", "", "write to this file instead of standard output")

	return cmd
}

func run(cmd *cobra.Command, app application.Application, flags *Flags) error {
	var opts []save.Option
	if flags.To != "" {
		format, err := save.ParseFormat(flags.To)
		if err != nil {
			return err
		}
		opts = append(opts, save.WithFormat(format))
	}

	s, catalog, err := cmdutil.LoadCatalog(cmd, app)
	if err != nil {
		return err
	}

	if flags.File == "" {
		return s.Export(catalog, append(opts, save.WithWriter(cmd.OutOrStdout()))...)
	}

	if err := s.Export(catalog, append(opts, save.WithPath(flags.File))...); err != nil {
		return err
	}

	cmdutil.Statusf(cmd, emoji.Success, "Exported %d books to %s", len(catalog), flags.File)
	return nil
}
