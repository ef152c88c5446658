package books

// Statistics summarises a catalog.
type Statistics struct {
	Total          int     `json:"total" yaml:"total"`
	ReadCount      int     `json:"read_count" yaml:"read_count"`
	ReadPercentage float64 `json:"read_percentage" yaml:"read_percentage"`
}

// Stats counts books and read books. ReadPercentage is 0 for an empty catalog.
func Stats(c Catalog) Statistics {
	s := Statistics{Total: len(c)}
	for _, b := range c {
		if b.Read {
			s.ReadCount++
		}
	}
	if s.Total > 0 {
		s.ReadPercentage = 100 * float64(s.ReadCount) / float64(s.Total)
	}
	return s
}
