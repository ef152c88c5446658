package store

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/agentstation/bookshelf/pkg/books"
	"github.com/agentstation/bookshelf/pkg/constants"
	"github.com/agentstation/bookshelf/pkg/errors"
	"github.com/agentstation/bookshelf/pkg/save"
)

// Load reads the catalog from storage. A missing file is an empty catalog.
// Malformed content is returned as a *errors.ParseError.
func (s *Store) Load() (books.Catalog, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debug().
				Str("library", s.path).
				Msg("Library file not found, starting with an empty catalog")
			return books.Catalog{}, nil
		}
		return nil, errors.WrapIO("read", s.path, err)
	}

	catalog, err := decode(data, s.format, s.path)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("library", s.path).
		Str("format", s.format.String()).
		Int("books", len(catalog)).
		Msg("Loaded catalog")

	return catalog, nil
}

// Save replaces the stored catalog with c. Failures are *errors.IOError
// values that match errors.IsWriteError.
func (s *Store) Save(c books.Catalog) error {
	data, err := encode(c, s.format)
	if err != nil {
		return errors.WrapIO("write", s.path, err)
	}

	if err := writeAtomic(s.fs, s.path, data); err != nil {
		return err
	}

	s.logger.Debug().
		Str("library", s.path).
		Str("format", s.format.String()).
		Int("books", len(c)).
		Msg("Saved catalog")

	return nil
}

// Export writes the encoded catalog to a writer or a file. The format
// defaults to the store's format, or to the path's extension for file
// exports.
func (s *Store) Export(c books.Catalog, opts ...save.Option) error {
	options := save.Defaults().Apply(opts...)

	format := s.format
	if options.HasFormat() {
		format = options.Format()
	} else if options.Path() != "" {
		format = save.FormatFromPath(options.Path())
	}

	data, err := encode(c, format)
	if err != nil {
		return errors.WrapIO("write", options.Path(), err)
	}

	switch {
	case options.Writer() != nil:
		if _, err := options.Writer().Write(data); err != nil {
			return errors.WrapIO("write", "output", err)
		}
		return nil
	case options.Path() != "":
		return writeAtomic(s.fs, options.Path(), data)
	default:
		return &errors.ConfigError{
			Component: "export",
			Message:   "no writer or path configured",
		}
	}
}

// writeAtomic writes data to a temporary file next to path and renames it
// over path, so readers never observe a partially written catalog.
func writeAtomic(fs afero.Fs, path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := fs.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}

	tmp, err := afero.TempFile(fs, dir, constants.TempFilePattern)
	if err != nil {
		return errors.WrapIO("create", dir, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = fs.Remove(tmpPath)
		return errors.WrapIO("write", path, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = fs.Remove(tmpPath)
		return errors.WrapIO("sync", path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = fs.Remove(tmpPath)
		return errors.WrapIO("close", path, err)
	}
	if err := fs.Chmod(tmpPath, constants.FilePermissions); err != nil {
		_ = fs.Remove(tmpPath)
		return errors.WrapIO("write", path, err)
	}
	if err := fs.Rename(tmpPath, path); err != nil {
		_ = fs.Remove(tmpPath)
		return errors.WrapIO("rename", path, err)
	}

	return nil
}
