package differ

// Result holds the entry names that differ between an archive and its manifest.
type Result struct {
	Added   []string
	Removed []string
}

// HasDifferences reports whether any entry was added or removed.
func (r Result) HasDifferences() bool {
	return len(r.Added) > 0 || len(r.Removed) > 0
}
