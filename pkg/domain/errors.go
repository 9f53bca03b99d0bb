package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrThemeNotFound is returned when a theme cannot be found in the source.
var ErrThemeNotFound = errors.New("theme not found")

// ErrCyclicExtends is returned when a chain of extends leads back to itself.
var ErrCyclicExtends = errors.New("cyclic theme inheritance")

// ErrBrokenExtends is returned when a theme extends a parent that does not exist.
var ErrBrokenExtends = errors.New("theme extends a missing parent")

// ErrCacheMiss is returned by stylesheet caches for absent keys.
var ErrCacheMiss = errors.New("cache miss")

// Issue is a single problem found while validating a theme.
type Issue struct {
	Theme  string // Theme name
	Path   string // Dotted token path, empty for theme-level issues
	Reason string
}

func (i Issue) String() string {
	if i.Path == "" {
		return fmt.Sprintf("theme %q: %s", i.Theme, i.Reason)
	}
	return fmt.Sprintf("theme %q, token %q: %s", i.Theme, i.Path, i.Reason)
}

// ValidationError aggregates the issues found while validating themes.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 1 {
		return e.Issues[0].String()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d validation issues:\n", len(e.Issues))
	for i, issue := range e.Issues {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, issue)
	}
	return b.String()
}

// Issues returns the validation issues carried by err, or nil.
func Issues(err error) []Issue {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Issues
	}
	return nil
}
