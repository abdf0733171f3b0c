package domain

// EntryInfo identifies a content file within a collection. ID and Collection
// are pure functions of the file's path relative to the content root; Slug
// additionally honors a front-matter override and otherwise falls back to a
// normalized form of the ID.
type EntryInfo struct {
	ID         string
	Collection string
	Slug       string
}

// ParsedEntry is the result of reading one content file. It is produced per
// load and never cached: each load re-reads and re-parses the file.
type ParsedEntry struct {
	// Body is the content text following the front-matter block.
	Body string

	// Data is the structured front-matter mapping. Empty map when the file
	// carries no front-matter.
	Data map[string]any

	// RawData is the exact front-matter source text, preserved for
	// consumers that need to recover it (source maps, error reporting).
	RawData string
}
