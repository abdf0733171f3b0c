// Package content is the leaf reader of the pipeline: it splits a content
// file's raw bytes into body and front-matter, and derives a stable entry
// identity (collection, id, slug) from the file's path relative to the
// content root.
package content

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/loess/pkg/domain"
)

const delimiter = "---"

// ParseFrontmatter splits raw file bytes into body text and structured
// front-matter. Files without a leading front-matter block (or with an
// unterminated one) are returned whole as body with empty data.
// A front-matter block that is present but not valid YAML is a structural
// parse error and is returned as such.
func ParseFrontmatter(raw []byte) (*domain.ParsedEntry, error) {
	text := string(raw)

	first, rest, ok := strings.Cut(text, "\n")
	if !ok || strings.TrimRight(first, "\r") != delimiter {
		return &domain.ParsedEntry{Body: text, Data: map[string]any{}}, nil
	}

	end, bodyStart := findClosingDelimiter(rest)
	if end < 0 {
		// Unterminated block: not front-matter, just body text.
		return &domain.ParsedEntry{Body: text, Data: map[string]any{}}, nil
	}

	rawData := strings.TrimSuffix(rest[:end], "\n")
	rawData = strings.TrimSuffix(rawData, "\r")

	data := map[string]any{}
	if strings.TrimSpace(rawData) != "" {
		if err := yaml.Unmarshal([]byte(rawData), &data); err != nil {
			return nil, fmt.Errorf("invalid front-matter: %w", err)
		}
	}

	body := ""
	if bodyStart <= len(rest) {
		body = rest[bodyStart:]
	}

	return &domain.ParsedEntry{
		Body:    body,
		Data:    data,
		RawData: rawData,
	}, nil
}

// findClosingDelimiter scans rest line by line for the closing "---".
// It returns the offset of that line and the offset just past it, or
// (-1, -1) when no closing delimiter exists.
func findClosingDelimiter(rest string) (end, bodyStart int) {
	idx := 0
	for idx <= len(rest) {
		var line string
		next := len(rest) + 1
		if nl := strings.Index(rest[idx:], "\n"); nl >= 0 {
			line = rest[idx : idx+nl]
			next = idx + nl + 1
		} else {
			line = rest[idx:]
		}
		if strings.TrimRight(line, "\r") == delimiter {
			return idx, next
		}
		if next > len(rest) {
			break
		}
		idx = next
	}
	return -1, -1
}
