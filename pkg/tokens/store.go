package tokens

import (
	"errors"
	"fmt"

	"github.com/aretw0/spark/pkg/merge"
	"github.com/aretw0/spark/pkg/tree"
	"github.com/mitchellh/mapstructure"
)

// ErrFrozen is returned when a frozen store is modified.
var ErrFrozen = errors.New("token store is frozen")

// Store is a layered token configuration.
// A Store is not safe for concurrent modification; Fork derives independent
// stores for concurrent readers.
type Store struct {
	own       *tree.Object
	ancestors []*tree.Object // newest first
	frozen    bool
}

// New creates a store whose own layer is a shallow copy of initial.
// ancestors are ordered newest first.
func New(initial *tree.Object, ancestors ...*tree.Object) *Store {
	chain := make([]*tree.Object, 0, len(ancestors))
	for _, a := range ancestors {
		if a != nil {
			chain = append(chain, a)
		}
	}
	return &Store{
		own:       initial.ShallowCopy(),
		ancestors: chain,
	}
}

// SetConfig assigns every key of partial onto the own layer.
// Values are stored as given; no validation is performed.
func (s *Store) SetConfig(partial *tree.Object) error {
	if s.frozen {
		return ErrFrozen
	}
	partial.Range(func(key string, value any) bool {
		s.own.Set(key, value)
		return true
	})
	return nil
}

// Freeze ends the building phase. It returns s for chaining.
func (s *Store) Freeze() *Store {
	s.frozen = true
	return s
}

// Frozen reports whether Freeze was called.
func (s *Store) Frozen() bool {
	return s.frozen
}

// Fork returns a new store layered on top of s. The new store's own layer is a
// shallow copy of overrides and its ancestors are a snapshot of s's own layer
// followed by s's ancestors.
func (s *Store) Fork(overrides *tree.Object) *Store {
	chain := make([]*tree.Object, 0, len(s.ancestors)+1)
	chain = append(chain, s.own.Clone())
	chain = append(chain, s.ancestors...)
	return &Store{
		own:       overrides.ShallowCopy(),
		ancestors: chain,
	}
}

// Depth returns the number of ancestor layers.
func (s *Store) Depth() int {
	return len(s.ancestors)
}

// Resolve merges the ancestors, oldest first, with the own layer on top.
// The result is recomputed on every call and owned by the caller.
func (s *Store) Resolve() *tree.Object {
	layers := make([]any, 0, len(s.ancestors)+1)
	for i := len(s.ancestors) - 1; i >= 0; i-- {
		layers = append(layers, s.ancestors[i])
	}
	layers = append(layers, s.own)
	return merge.Deep(layers...)
}

// Get returns the resolved value of a top-level token.
func (s *Store) Get(name string) (any, bool) {
	return s.Resolve().Get(name)
}

// Lookup returns the resolved value at path.
func (s *Store) Lookup(path ...string) (any, bool) {
	return s.Resolve().Lookup(path...)
}

// Decode resolves the store and decodes the result into out using mapstructure tags.
func (s *Store) Decode(out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return fmt.Errorf("failed to create token decoder: %w", err)
	}
	if err := decoder.Decode(s.Resolve().ToMap()); err != nil {
		return fmt.Errorf("failed to decode tokens: %w", err)
	}
	return nil
}
