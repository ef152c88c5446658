package store

import (
	"github.com/agentstation/bookshelf/pkg/books"
	"github.com/agentstation/bookshelf/pkg/errors"
)

// Add validates and normalises in, appends the book, and saves.
//
// On invalid input or a failed save the original catalog is returned with
// the error, so the caller never holds a catalog that is not on disk.
func (s *Store) Add(c books.Catalog, in books.Input) (books.Catalog, error) {
	book, err := books.NewBook(in)
	if err != nil {
		return c, err
	}

	next := c.Append(book)
	if err := s.Save(next); err != nil {
		return c, err
	}

	s.logger.Info().
		Str("title", book.Title).
		Str("author", book.Author).
		Int("books", len(next)).
		Msg("Book added")

	return next, nil
}

// Remove deletes every book whose title matches title ignoring case and
// saves the rest. It returns the number removed. When nothing matches the
// catalog is returned unchanged with a *errors.NotFoundError and nothing
// is written.
func (s *Store) Remove(c books.Catalog, title string) (books.Catalog, int, error) {
	next, removed := books.RemoveTitle(c, title)
	if removed == 0 {
		return c, 0, errors.NewNotFoundError("book", title)
	}

	if err := s.Save(next); err != nil {
		return c, 0, err
	}

	s.logger.Info().
		Str("title", title).
		Int("removed", removed).
		Int("books", len(next)).
		Msg("Book removed")

	return next, removed, nil
}
