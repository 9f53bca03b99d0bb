package ports

import (
	"context"

	"github.com/aretw0/spark/pkg/domain"
)

// TokenSource defines how the engine retrieves theme documents.
type TokenSource interface {
	// ListThemes returns the names of all available themes.
	ListThemes(ctx context.Context) ([]string, error)

	// LoadTheme returns the theme with the given name.
	// Returns domain.ErrThemeNotFound if it does not exist.
	LoadTheme(ctx context.Context, name string) (*domain.Theme, error)
}

// Watchable defines an interface for sources that can notify about backend changes.
type Watchable interface {
	// Watch returns a channel that receives the name of each theme whose
	// document changed. The channel is closed when ctx is done.
	Watch(ctx context.Context) (<-chan string, error)
}
