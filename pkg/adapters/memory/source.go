package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/spark/pkg/domain"
	"github.com/aretw0/spark/pkg/tree"
)

// Source implements ports.TokenSource using an in-memory map.
// Safe for concurrent use.
type Source struct {
	themes map[string]*domain.Theme
	mu     sync.RWMutex
}

// NewSource creates a source holding the given themes.
func NewSource(themes ...*domain.Theme) (*Source, error) {
	s := &Source{themes: make(map[string]*domain.Theme)}
	for _, t := range themes {
		if err := s.Put(t); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Put adds or replaces a theme. The theme is copied.
func (s *Source) Put(theme *domain.Theme) error {
	if theme == nil || theme.Name == "" {
		return fmt.Errorf("theme missing name")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.themes[theme.Name] = copyTheme(theme)
	return nil
}

// ListThemes returns all theme names in sorted order.
func (s *Source) ListThemes(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.themes))
	for name := range s.themes {
		names = append(names, name)
	}
	sort.Strings(names) // Deterministic order
	return names, nil
}

// LoadTheme returns a copy of the named theme.
func (s *Source) LoadTheme(ctx context.Context, name string) (*domain.Theme, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	theme, ok := s.themes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrThemeNotFound, name)
	}
	return copyTheme(theme), nil
}

// copyTheme keeps callers from mutating stored tokens through the returned pointer.
func copyTheme(t *domain.Theme) *domain.Theme {
	out := *t
	if t.Tokens != nil {
		out.Tokens = t.Tokens.Clone()
	} else {
		out.Tokens = tree.New()
	}
	return &out
}
