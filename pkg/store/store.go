// Package store persists a books.Catalog to a single file and applies the
// mutations that must be saved as soon as they happen.
//
// The Store keeps no catalog of its own. Callers load a catalog, pass it to
// Add or Remove, and keep the returned value, which is only ever a catalog
// that has been written to storage.
//
//	s, err := store.New("library.json")
//	if err != nil {
//	    return err
//	}
//	catalog, err := s.Load()
//	if err != nil {
//	    return err
//	}
//	catalog, err = s.Add(catalog, books.Input{Title: "dune", Author: "frank herbert", Year: "1965", Genre: "sci-fi"})
package store

import (
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/agentstation/bookshelf/pkg/errors"
	"github.com/agentstation/bookshelf/pkg/logging"
	"github.com/agentstation/bookshelf/pkg/save"
)

// Store reads and writes a catalog at a fixed storage location.
type Store struct {
	path   string
	format save.Format
	fs     afero.Fs
	logger *zerolog.Logger
}

// Option configures a Store.
type Option func(*Store) error

// WithFs sets the filesystem the store reads and writes.
func WithFs(fs afero.Fs) Option {
	return func(s *Store) error {
		if fs == nil {
			return errors.NewConfigError("store", "filesystem cannot be nil", nil)
		}
		s.fs = fs
		return nil
	}
}

// WithFormat overrides the format inferred from the file extension.
func WithFormat(f save.Format) Option {
	return func(s *Store) error {
		if !f.IsValid() {
			return errors.NewConfigError("store", "unsupported format "+f.String(), nil)
		}
		s.format = f
		return nil
	}
}

// WithLogger sets the logger used for store events.
func WithLogger(logger *zerolog.Logger) Option {
	return func(s *Store) error {
		if logger != nil {
			s.logger = logger
		}
		return nil
	}
}

// New creates a Store for the catalog file at path.
func New(path string, opts ...Option) (*Store, error) {
	if path == "" {
		return nil, errors.NewConfigError("store", "path is required", nil)
	}

	s := &Store{
		path:   path,
		format: save.FormatFromPath(path),
		fs:     afero.NewOsFs(),
		logger: logging.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Path returns the storage location.
func (s *Store) Path() string {
	return s.path
}

// Format returns the storage format.
func (s *Store) Format() save.Format {
	return s.format
}
