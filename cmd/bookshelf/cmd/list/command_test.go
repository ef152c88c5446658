package list

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bookshelf/internal/cmd/application"
	"github.com/agentstation/bookshelf/pkg/books"
	"github.com/agentstation/bookshelf/pkg/errors"
	"github.com/agentstation/bookshelf/pkg/logging"
	"github.com/agentstation/bookshelf/pkg/store"
)

func newMock(t *testing.T, format string, catalog books.Catalog) (*application.Mock, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	s, err := store.New("/library.json", store.WithFs(fs), store.WithLogger(logging.NewNopLogger()))
	require.NoError(t, err)
	if catalog != nil {
		require.NoError(t, s.Save(catalog))
	}

	return &application.Mock{
		StoreFunc:        func() (*store.Store, error) { return s, nil },
		OutputFormatFunc: func() string { return format },
	}, fs
}

func execute(t *testing.T, mock *application.Mock, args ...string) (string, error) {
	t.Helper()
	cmd := NewCommand(mock)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.SetArgs(append([]string{}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestListCommand_Empty(t *testing.T) {
	mock, _ := newMock(t, "table", nil)

	out, err := execute(t, mock)
	require.NoError(t, err)
	assert.Equal(t, "i No books available\n", out)
}

func TestListCommand_Table(t *testing.T) {
	mock, _ := newMock(t, "table", books.Catalog{
		{Title: "The Hobbit", Author: "J R R Tolkien", Year: "1937", Genre: "Fantasy", Read: true},
		{Title: "Dune", Author: "Frank Herbert", Year: "1965", Genre: "Sci-fi"},
	})

	out, err := execute(t, mock)
	require.NoError(t, err)
	assert.Contains(t, out, "The Hobbit")
	assert.Contains(t, out, "✅ Read")
	assert.Contains(t, out, "❌ Not Read")
	assert.Less(t, strings.Index(out, "The Hobbit"), strings.Index(out, "Dune"), "catalog order is kept")
}

func TestListCommand_YAMLEmpty(t *testing.T) {
	mock, _ := newMock(t, "yaml", nil)

	out, err := execute(t, mock)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
}

func TestListCommand_ParseError(t *testing.T) {
	mock, fs := newMock(t, "table", nil)
	require.NoError(t, afero.WriteFile(fs, "/library.json", []byte("{not json"), 0644))

	_, err := execute(t, mock)
	require.Error(t, err)
	assert.True(t, errors.IsParseError(err))
}

func TestListCommand_StoreError(t *testing.T) {
	_, err := execute(t, &application.Mock{})
	require.Error(t, err)
}
