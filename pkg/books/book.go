// Package books defines the Book record and the Catalog that holds them,
// along with the validation, normalisation, search, and statistics rules
// that apply to a personal book catalog.
//
// A Catalog is a plain value. Functions in this package never modify the
// catalog they are given; mutations return a new Catalog.
package books

import (
	"strings"

	"github.com/agentstation/bookshelf/pkg/constants"
	"github.com/agentstation/bookshelf/pkg/errors"
)

// Book is one catalog record.
type Book struct {
	Title  string `json:"title" yaml:"title"`   // Title, title-cased on entry
	Author string `json:"author" yaml:"author"` // Author, title-cased on entry
	Year   string `json:"year" yaml:"year"`     // Publication year, 4 digits kept as text
	Genre  string `json:"genre" yaml:"genre"`   // Genre, capitalised on entry
	Read   bool   `json:"read" yaml:"read"`     // Whether the book has been read
}

// Input is the raw data a caller supplies to create a Book.
type Input struct {
	Title  string
	Author string
	Year   string
	Genre  string
	Read   bool
}

// NewBook validates the input and returns a normalised Book.
// The first failing field is reported as a *errors.ValidationError.
func NewBook(in Input) (Book, error) {
	title := strings.TrimSpace(in.Title)
	author := strings.TrimSpace(in.Author)
	genre := strings.TrimSpace(in.Genre)

	if title == "" {
		return Book{}, errors.NewValidationError("title", in.Title, "is required")
	}
	if author == "" {
		return Book{}, errors.NewValidationError("author", in.Author, "is required")
	}
	if err := ValidateYear(in.Year); err != nil {
		return Book{}, err
	}
	if genre == "" {
		return Book{}, errors.NewValidationError("genre", in.Genre, "is required")
	}

	return Book{
		Title:  TitleCase(title),
		Author: TitleCase(author),
		Year:   in.Year,
		Genre:  Capitalize(genre),
		Read:   in.Read,
	}, nil
}

// ValidateYear checks that year is exactly four ASCII digits.
func ValidateYear(year string) error {
	if len(year) != constants.YearLength {
		return errors.NewValidationError("year", year, "must be exactly 4 digits")
	}
	for i := 0; i < len(year); i++ {
		if year[i] < '0' || year[i] > '9' {
			return errors.NewValidationError("year", year, "must be exactly 4 digits")
		}
	}
	return nil
}
