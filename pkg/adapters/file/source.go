package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/spark/pkg/domain"
	"github.com/aretw0/spark/pkg/tree"
	"github.com/mitchellh/mapstructure"
)

// Extensions lists the recognised theme document extensions, in lookup order.
var Extensions = []string{".yaml", ".yml", ".json"}

// header is the metadata block of a theme document.
type header struct {
	Extends     string `mapstructure:"extends"`
	Selector    string `mapstructure:"selector"`
	Description string `mapstructure:"description"`
}

// Source implements ports.TokenSource over a directory of theme documents.
// Each file <name>.yaml, <name>.yml or <name>.json holds one theme.
type Source struct {
	Dir string
}

// New creates a Source rooted at dir.
func New(dir string) *Source {
	if dir == "" {
		dir = "."
	}
	return &Source{Dir: dir}
}

// ListThemes returns the names of all theme documents in sorted order.
func (s *Source) ListThemes(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list themes: %w", err)
	}

	seen := make(map[string]bool)
	names := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name, ok := themeName(entry.Name())
		if !ok || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// LoadTheme reads and decodes the named theme document.
func (s *Source) LoadTheme(ctx context.Context, name string) (*domain.Theme, error) {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return nil, fmt.Errorf("%w: %q", domain.ErrThemeNotFound, name)
	}

	for _, ext := range Extensions {
		path := filepath.Join(s.Dir, name+ext)
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("failed to read theme %q: %w", name, err)
		}
		theme, err := Parse(name, data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return theme, nil
	}

	return nil, fmt.Errorf("%w: %s", domain.ErrThemeNotFound, name)
}

// Parse decodes a theme document. The document is a mapping with optional
// extends, selector and description keys and a tokens mapping.
func Parse(name string, data []byte) (*domain.Theme, error) {
	doc, err := tree.Decode(data)
	if err != nil {
		return nil, err
	}

	var h header
	meta := doc.ShallowCopy()
	meta.Delete("tokens")
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &h,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(meta.ToMap()); err != nil {
		return nil, fmt.Errorf("invalid theme header: %w", err)
	}

	theme := &domain.Theme{
		Name:        name,
		Extends:     h.Extends,
		Selector:    h.Selector,
		Description: h.Description,
		Tokens:      tree.New(),
	}

	if raw, ok := doc.Get("tokens"); ok && raw != nil {
		tokens, ok := raw.(*tree.Object)
		if !ok {
			return nil, fmt.Errorf("tokens must be a mapping, got %T", raw)
		}
		theme.Tokens = tokens
	}
	return theme, nil
}

func themeName(file string) (string, bool) {
	ext := filepath.Ext(file)
	for _, known := range Extensions {
		if ext == known {
			return strings.TrimSuffix(file, ext), true
		}
	}
	return "", false
}
