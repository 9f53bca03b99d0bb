package ports

import (
	"context"
)

// StylesheetCache stores rendered stylesheets by key.
type StylesheetCache interface {
	// Get returns the cached stylesheet.
	// Returns domain.ErrCacheMiss if the key is absent or expired.
	Get(ctx context.Context, key string) (string, error)

	// Set stores the stylesheet under key.
	Set(ctx context.Context, key string, css string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
