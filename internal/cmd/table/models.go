// Package table provides common table formatting utilities for CLI commands.
package table

import (
	"fmt"
	"strconv"

	"github.com/agentstation/bookshelf/internal/cmd/emoji"
	"github.com/agentstation/bookshelf/pkg/books"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault leaves the column to the renderer's default, for cells
	// whose display width the renderer measures itself (emoji).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// BooksToTableData converts books to table format, numbered from 1 in
// catalog order.
func BooksToTableData(list []books.Book) Data {
	rows := make([][]string, 0, len(list))
	for i, b := range list {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			b.Title,
			b.Author,
			b.Year,
			b.Genre,
			ReadStatus(b.Read),
		})
	}

	return Data{
		Headers: []string{"#", "Title", "Author", "Year", "Genre", "Status"},
		Rows:    rows,
		ColumnAlignment: []Align{
			AlignRight,
			AlignLeft,
			AlignLeft,
			AlignCenter,
			AlignLeft,
			AlignDefault,
		},
	}
}

// StatsToTableData converts collection statistics to a property/value table.
func StatsToTableData(s books.Statistics) Data {
	return Data{
		Headers: []string{"Statistic", "Value"},
		Rows: [][]string{
			{"Total books", strconv.Itoa(s.Total)},
			{"Books read", strconv.Itoa(s.ReadCount)},
			{"Percentage read", FormatPercentage(s.ReadPercentage)},
		},
		ColumnAlignment: []Align{AlignLeft, AlignRight},
	}
}

// ReadStatus renders the read flag.
func ReadStatus(read bool) string {
	if read {
		return emoji.Read + " Read"
	}
	return emoji.Unread + " Not Read"
}

// FormatPercentage formats a percentage with two decimals.
func FormatPercentage(p float64) string {
	return fmt.Sprintf("%.2f%%", p)
}
