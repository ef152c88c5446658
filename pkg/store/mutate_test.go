package store_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bookshelf/pkg/books"
	"github.com/agentstation/bookshelf/pkg/errors"
	"github.com/agentstation/bookshelf/pkg/logging"
	"github.com/agentstation/bookshelf/pkg/store"
)

func TestAdd(t *testing.T) {
	s, _ := newMemStore(t, libraryPath)

	c, err := s.Load()
	require.NoError(t, err)

	c, err = s.Add(c, hobbit())
	require.NoError(t, err)
	require.Len(t, c, 1)
	assert.Equal(t, books.Book{Title: "The Hobbit", Author: "J R R Tolkien", Year: "1937", Genre: "Fantasy"}, c[0])

	c, err = s.Add(c, books.Input{Title: "dune", Author: "frank herbert", Year: "1965", Genre: "sci-fi", Read: true})
	require.NoError(t, err)
	require.Len(t, c, 2)
	assert.Equal(t, "Dune", c[1].Title, "new book is last")

	stored, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, c, stored)
}

func TestAdd_InvalidInputChangesNothing(t *testing.T) {
	s, fs := newMemStore(t, libraryPath)
	start := sampleCatalog()

	got, err := s.Add(start, books.Input{Title: "Dune", Author: "Frank Herbert", Year: "37", Genre: "Sci-fi"})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Equal(t, sampleCatalog(), got)

	exists, err := afero.Exists(fs, libraryPath)
	require.NoError(t, err)
	assert.False(t, exists, "nothing is saved on rejection")
}

func TestAdd_WriteFailureReturnsOriginal(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	s, err := store.New(libraryPath, store.WithFs(fs), store.WithLogger(logging.NewNopLogger()))
	require.NoError(t, err)

	start := sampleCatalog()
	got, err := s.Add(start, hobbit())
	require.Error(t, err)
	assert.True(t, errors.IsWriteError(err))
	assert.Equal(t, sampleCatalog(), got)
}

func TestRemove(t *testing.T) {
	s, _ := newMemStore(t, libraryPath)
	require.NoError(t, s.Save(sampleCatalog()))

	c, err := s.Load()
	require.NoError(t, err)

	c, n, err := s.Remove(c, "dune")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, sampleCatalog()[:1], c)

	stored, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, c, stored)

	again, n, err := s.Remove(c, "dune")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
	assert.Zero(t, n)
	assert.Equal(t, c, again)
}

func TestRemove_NotFoundDoesNotWrite(t *testing.T) {
	s, fs := newMemStore(t, libraryPath)

	_, _, err := s.Remove(sampleCatalog(), "Missing")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))

	exists, err := afero.Exists(fs, libraryPath)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRemove_WriteFailureReturnsOriginal(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	s, err := store.New(libraryPath, store.WithFs(fs), store.WithLogger(logging.NewNopLogger()))
	require.NoError(t, err)

	got, n, err := s.Remove(sampleCatalog(), "The Hobbit")
	require.Error(t, err)
	assert.True(t, errors.IsWriteError(err))
	assert.Zero(t, n)
	assert.Equal(t, sampleCatalog(), got)
}

func TestAdd_LogsEvent(t *testing.T) {
	tl := logging.NewTestLogger(t)
	s, err := store.New(libraryPath, store.WithFs(afero.NewMemMapFs()), store.WithLogger(tl.Logger))
	require.NoError(t, err)

	_, err = s.Add(books.Catalog{}, hobbit())
	require.NoError(t, err)

	tl.AssertContains(t, "Book added")
	tl.AssertContains(t, `"title":"The Hobbit"`)
}
