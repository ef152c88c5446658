package books

// Catalog is the ordered collection of books for a session.
// Order is insertion order; titles are not unique.
type Catalog []Book

// Len returns the number of books.
func (c Catalog) Len() int {
	return len(c)
}

// Clone returns a copy that shares no backing array with c.
// The result is never nil.
func (c Catalog) Clone() Catalog {
	out := make(Catalog, len(c))
	copy(out, c)
	return out
}

// Append returns a new catalog with b added at the end.
func (c Catalog) Append(b Book) Catalog {
	out := make(Catalog, len(c), len(c)+1)
	copy(out, c)
	return append(out, b)
}

// RemoveTitle returns the books whose title does not match title,
// compared case-insensitively on the whole string, and the number removed.
func RemoveTitle(c Catalog, title string) (Catalog, int) {
	want := fold(title)
	kept := make(Catalog, 0, len(c))
	for _, b := range c {
		if fold(b.Title) == want {
			continue
		}
		kept = append(kept, b)
	}
	return kept, len(c) - len(kept)
}
