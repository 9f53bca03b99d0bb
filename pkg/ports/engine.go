package ports

import (
	"context"

	"github.com/aretw0/spark/pkg/tree"
)

// ThemeEngine is the read-only surface used by delivery adapters (HTTP, MCP).
type ThemeEngine interface {
	// Themes lists the available theme names.
	Themes(ctx context.Context) ([]string, error)

	// Tokens returns the resolved tokens of a theme.
	Tokens(ctx context.Context, name string) (*tree.Object, error)

	// References returns the theme's tokens with every leaf replaced by its var() reference.
	References(ctx context.Context, name string) (*tree.Object, error)

	// Stylesheet renders the custom property rule of a theme.
	Stylesheet(ctx context.Context, name string) (string, error)

	// Build renders the stylesheet of every theme.
	Build(ctx context.Context) (string, error)
}
