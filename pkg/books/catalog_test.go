package books_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/bookshelf/pkg/books"
)

func sampleCatalog() books.Catalog {
	return books.Catalog{
		{Title: "The Hobbit", Author: "J R R Tolkien", Year: "1937", Genre: "Fantasy", Read: true},
		{Title: "Dune", Author: "Frank Herbert", Year: "1965", Genre: "Sci-fi"},
		{Title: "Emma", Author: "Jane Austen", Year: "1815", Genre: "Romance", Read: true},
		{Title: "Dune", Author: "Someone Else", Year: "2001", Genre: "Parody"},
	}
}

func TestCatalog_Append(t *testing.T) {
	c := sampleCatalog()
	b := books.Book{Title: "Beloved", Author: "Toni Morrison", Year: "1987", Genre: "Fiction"}

	got := c.Append(b)

	assert.Equal(t, 5, got.Len())
	assert.Equal(t, b, got[4])
	assert.Equal(t, 4, c.Len(), "input catalog must not change")
}

func TestCatalog_Clone(t *testing.T) {
	var nilCatalog books.Catalog
	assert.NotNil(t, nilCatalog.Clone())

	c := sampleCatalog()
	clone := c.Clone()
	clone[0].Title = "Changed"
	assert.Equal(t, "The Hobbit", c[0].Title)
}

func TestRemoveTitle(t *testing.T) {
	t.Run("case-insensitive exact match removes all duplicates", func(t *testing.T) {
		c := sampleCatalog()
		got, n := books.RemoveTitle(c, "dUNE")

		assert.Equal(t, 2, n)
		assert.Equal(t, []string{"The Hobbit", "Emma"}, titles(got))
		assert.Equal(t, 4, c.Len())
	})

	t.Run("substring does not match", func(t *testing.T) {
		got, n := books.RemoveTitle(sampleCatalog(), "hobbit")
		assert.Zero(t, n)
		assert.Equal(t, sampleCatalog(), got)
	})

	t.Run("second removal finds nothing", func(t *testing.T) {
		once, _ := books.RemoveTitle(sampleCatalog(), "emma")
		twice, n := books.RemoveTitle(once, "emma")
		assert.Zero(t, n)
		assert.Equal(t, once, twice)
	})
}

func titles(c []books.Book) []string {
	out := make([]string, 0, len(c))
	for _, b := range c {
		out = append(out, b.Title)
	}
	return out
}
