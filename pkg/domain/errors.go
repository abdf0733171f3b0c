package domain

import "errors"

// ErrNotContentEntry is returned when a file path cannot be mapped to a
// collection entry (outside the content root, or missing a collection
// segment). Loads hitting it fall through silently.
var ErrNotContentEntry = errors.New("path is not a content entry")
