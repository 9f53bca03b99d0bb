// Package merge composes configuration objects into one.
//
// Objects are applied left to right. Nested objects merge recursively, two
// sequences under the same key combine according to the sequence strategy
// (union by default), and any other pairing lets the later value win.
package merge

import (
	"github.com/aretw0/spark/pkg/tree"
)

// SequenceStrategy decides how two sequences under the same key combine.
type SequenceStrategy int

const (
	// Union concatenates and drops repeated items, keeping first occurrences.
	Union SequenceStrategy = iota
	// Append concatenates and keeps repetitions.
	Append
	// Replace keeps the later sequence only.
	Replace
)

func (s SequenceStrategy) String() string {
	switch s {
	case Union:
		return "union"
	case Append:
		return "append"
	case Replace:
		return "replace"
	default:
		return "unknown"
	}
}

// Merger merges objects with a fixed set of rules.
type Merger struct {
	sequences SequenceStrategy
}

// Option configures a Merger.
type Option func(*Merger)

// WithSequences sets the sequence strategy.
func WithSequences(s SequenceStrategy) Option {
	return func(m *Merger) {
		m.sequences = s
	}
}

// New creates a Merger. Without options it behaves like Deep.
func New(opts ...Option) *Merger {
	m := &Merger{sequences: Union}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

var defaultMerger = New()

// Deep merges objects left to right using the union sequence strategy.
// Arguments that are not objects are skipped. The inputs are never modified
// and the result shares no object or sequence with them.
func Deep(objects ...any) *tree.Object {
	return defaultMerger.Merge(objects...)
}

// Merge merges objects left to right. Arguments that are not objects are skipped.
func (m *Merger) Merge(objects ...any) *tree.Object {
	acc := tree.New()
	for _, o := range objects {
		obj, ok := o.(*tree.Object)
		if !ok || obj == nil {
			continue
		}
		m.apply(acc, obj)
	}
	return acc
}

// apply writes src onto acc. acc is always owned by the merge.
func (m *Merger) apply(acc, src *tree.Object) {
	src.Range(func(key string, incoming any) bool {
		current, _ := acc.Get(key)
		acc.Set(key, m.combine(current, incoming))
		return true
	})
}

func (m *Merger) combine(current, incoming any) any {
	if left, ok := tree.AsSequence(current); ok {
		if right, ok := tree.AsSequence(incoming); ok {
			return m.combineSequences(left, right)
		}
	}

	if left, ok := current.(*tree.Object); ok && left != nil {
		if right, ok := incoming.(*tree.Object); ok && right != nil {
			// left was produced by this merge, so it can be extended directly
			m.apply(left, right)
			return left
		}
	}

	return tree.CloneValue(incoming)
}

func (m *Merger) combineSequences(left, right []any) []any {
	switch m.sequences {
	case Replace:
		return cloneItems(right)
	case Append:
		out := make([]any, 0, len(left)+len(right))
		out = append(out, cloneItems(left)...)
		return append(out, cloneItems(right)...)
	default:
		return union(left, right)
	}
}

func cloneItems(items []any) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = tree.CloneValue(item)
	}
	return out
}
