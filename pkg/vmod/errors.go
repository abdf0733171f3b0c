package vmod

import "fmt"

// LoadError scopes a failure to one content file so the user can fix it.
// It never affects the config observable or sibling loads.
type LoadError struct {
	File       string
	Collection string
	Err        error
}

func (e *LoadError) Error() string {
	if e.Collection != "" {
		return fmt.Sprintf("content entry %s (collection %q): %v", e.File, e.Collection, e.Err)
	}
	return fmt.Sprintf("content entry %s: %v", e.File, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
