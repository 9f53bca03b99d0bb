package tokens

import (
	"slices"
	"strings"

	"github.com/aretw0/spark/pkg/tree"
)

// ChangeKind classifies a token difference.
type ChangeKind string

const (
	Added   ChangeKind = "added"
	Removed ChangeKind = "removed"
	Changed ChangeKind = "changed"
)

// Change is a single token difference between two resolved token sets.
type Change struct {
	Path string     `json:"path"`
	Kind ChangeKind `json:"kind"`
	Old  any        `json:"old,omitempty"`
	New  any        `json:"new,omitempty"`
}

// Diff compares two resolved token sets leaf by leaf. Changes follow the
// document order of newer, with removals appended in the order of older.
// It returns nil when nothing differs.
func Diff(older, newer *tree.Object) []Change {
	oldLeaves, oldOrder := leaves(older)
	newLeaves, newOrder := leaves(newer)

	var changes []Change
	for _, path := range newOrder {
		newVal := newLeaves[path]
		oldVal, exists := oldLeaves[path]
		switch {
		case !exists:
			changes = append(changes, Change{Path: path, Kind: Added, New: newVal})
		case !tree.Equal(oldVal, newVal):
			changes = append(changes, Change{Path: path, Kind: Changed, Old: oldVal, New: newVal})
		}
	}
	for _, path := range oldOrder {
		if _, exists := newLeaves[path]; !exists {
			changes = append(changes, Change{Path: path, Kind: Removed, Old: oldLeaves[path]})
		}
	}
	return changes
}

// leaves indexes the leaf values of obj by dotted path, with paths in document order.
func leaves(obj *tree.Object) (map[string]any, []string) {
	values := make(map[string]any)
	var order []string
	tree.Walk(obj, func(item tree.StackItem) {
		if item.Parent == nil || tree.IsObject(item.Node) {
			return
		}
		path := strings.Join(item.Path, ".")
		values[path] = item.Node
		order = append(order, path)
	})
	slices.Reverse(order)
	return values, order
}
