package books

import (
	"strings"

	"github.com/agentstation/bookshelf/pkg/errors"
)

// Field selects which book attribute a search looks at.
type Field string

// Searchable fields.
const (
	FieldTitle  Field = "title"
	FieldAuthor Field = "author"
)

// Fields lists every searchable field.
func Fields() []Field {
	return []Field{FieldTitle, FieldAuthor}
}

// ParseField validates a field name. Matching ignores case so UI labels
// such as "Title" are accepted.
func ParseField(s string) (Field, error) {
	switch Field(strings.ToLower(strings.TrimSpace(s))) {
	case FieldTitle:
		return FieldTitle, nil
	case FieldAuthor:
		return FieldAuthor, nil
	default:
		return "", errors.NewValidationError("field", s, "must be one of: title, author")
	}
}

// String returns the field name.
func (f Field) String() string {
	return string(f)
}

// value returns the book attribute this field refers to.
func (f Field) value(b Book) string {
	if f == FieldAuthor {
		return b.Author
	}
	return b.Title
}

// Search returns, in catalog order, every book whose field contains term
// ignoring case. It returns an empty slice, never nil, when nothing matches.
func Search(c Catalog, field Field, term string) []Book {
	needle := fold(term)
	results := make([]Book, 0)
	for _, b := range c {
		if strings.Contains(fold(field.value(b)), needle) {
			results = append(results, b)
		}
	}
	return results
}
