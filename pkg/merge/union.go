package merge

import (
	"math"

	"github.com/aretw0/spark/pkg/tree"
)

// union concatenates the sequences and keeps the first occurrence of each item.
//
// Primitives are compared by value, with integer and float kinds holding the
// same number treated as equal. Objects are compared by identity. Nested
// sequences are never duplicates of each other.
func union(left, right []any) []any {
	seen := make(map[any]struct{}, len(left)+len(right))
	out := make([]any, 0, len(left)+len(right))

	add := func(item any) {
		key, ok := dedupeKey(item)
		if ok {
			if _, dup := seen[key]; dup {
				return
			}
			seen[key] = struct{}{}
		}
		out = append(out, item)
	}

	for _, item := range left {
		add(item)
	}
	for _, item := range right {
		add(item)
	}

	// identity was checked on the inputs; copy afterwards so the result is detached
	for i, item := range out {
		out[i] = tree.CloneValue(item)
	}
	return out
}

type numberKey float64

// nanKey stands for every NaN, which never equals itself as a map key.
type nanKey struct{}

func dedupeKey(item any) (any, bool) {
	if n, ok := tree.Number(item); ok {
		if math.IsNaN(n) {
			return nanKey{}, true
		}
		return numberKey(n), true
	}
	switch v := item.(type) {
	case nil, string, bool, *tree.Object:
		return v, true
	default:
		return nil, false
	}
}
