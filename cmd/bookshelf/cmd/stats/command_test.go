package stats

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bookshelf/internal/cmd/application"
	"github.com/agentstation/bookshelf/pkg/books"
	"github.com/agentstation/bookshelf/pkg/logging"
	"github.com/agentstation/bookshelf/pkg/store"
)

func execute(t *testing.T, format string, catalog books.Catalog) string {
	t.Helper()
	s, err := store.New("/library.json", store.WithFs(afero.NewMemMapFs()), store.WithLogger(logging.NewNopLogger()))
	require.NoError(t, err)
	require.NoError(t, s.Save(catalog))

	cmd := NewCommand(&application.Mock{
		StoreFunc:        func() (*store.Store, error) { return s, nil },
		OutputFormatFunc: func() string { return format },
	})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestStatsCommand_Table(t *testing.T) {
	out := execute(t, "table", books.Catalog{
		{Title: "A", Read: true},
		{Title: "B"},
		{Title: "C"},
	})

	assert.Contains(t, out, "Total books")
	assert.Contains(t, out, "33.33%")
}

func TestStatsCommand_JSON(t *testing.T) {
	out := execute(t, "json", books.Catalog{
		{Title: "A", Read: true},
		{Title: "B"},
		{Title: "C", Read: true},
		{Title: "D"},
	})

	assert.JSONEq(t, `{"total":4,"read_count":2,"read_percentage":50}`, out)
}

func TestStatsCommand_EmptyCatalog(t *testing.T) {
	out := execute(t, "json", books.Catalog{})
	assert.JSONEq(t, `{"total":0,"read_count":0,"read_percentage":0}`, out)
}
