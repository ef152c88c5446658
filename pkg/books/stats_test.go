package books_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/bookshelf/pkg/books"
)

func TestStats(t *testing.T) {
	tests := []struct {
		name    string
		catalog books.Catalog
		want    books.Statistics
	}{
		{
			name:    "empty",
			catalog: books.Catalog{},
			want:    books.Statistics{},
		},
		{
			name:    "nil",
			catalog: nil,
			want:    books.Statistics{},
		},
		{
			name:    "half read",
			catalog: sampleCatalog(),
			want:    books.Statistics{Total: 4, ReadCount: 2, ReadPercentage: 50},
		},
		{
			name:    "none read",
			catalog: books.Catalog{{Title: "A"}, {Title: "B"}, {Title: "C"}},
			want:    books.Statistics{Total: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, books.Stats(tt.catalog))
		})
	}
}

func TestStats_Consistency(t *testing.T) {
	c := books.Catalog{}
	for i := 0; i < 7; i++ {
		c = c.Append(books.Book{Title: "T", Read: i%3 == 0})

		s := books.Stats(c)
		assert.LessOrEqual(t, s.ReadCount, s.Total)
		assert.Equal(t, s.ReadCount == 0, s.ReadPercentage == 0)
	}

	s := books.Stats(books.Catalog{{Read: true}, {}, {}})
	assert.InDelta(t, 33.333, s.ReadPercentage, 0.001)
}
