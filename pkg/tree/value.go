package tree

import (
	"math"
	"reflect"
	"strconv"
)

// AsSequence reports whether v is a sequence value and returns its items.
// []any is returned as is; typed slices of primitives are copied into []any.
func AsSequence(v any) ([]any, bool) {
	switch seq := v.(type) {
	case []any:
		return seq, true
	case []string:
		return toAny(seq), true
	case []int:
		return toAny(seq), true
	case []int64:
		return toAny(seq), true
	case []float64:
		return toAny(seq), true
	case []bool:
		return toAny(seq), true
	default:
		return nil, false
	}
}

func toAny[T any](in []T) []any {
	out := make([]any, len(in))
	for i, v := range in {
		out[i] = v
	}
	return out
}

// IsObject reports whether v is a non-nil *Object.
func IsObject(v any) bool {
	obj, ok := v.(*Object)
	return ok && obj != nil
}

// Number converts integer and float kinds to float64.
func Number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// Truthy reports whether v counts as set: nil, false, numeric zero, NaN and the
// empty string are falsy, everything else is truthy.
func Truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case *Object:
		return val != nil
	}
	if n, ok := Number(v); ok {
		return n != 0 && !math.IsNaN(n)
	}
	return true
}

// Equal reports structural equality of two values. Numbers compare by value
// regardless of their Go kind, objects compare key order and entries.
func Equal(a, b any) bool {
	if na, ok := Number(a); ok {
		nb, ok := Number(b)
		return ok && na == nb
	}
	if oa, ok := a.(*Object); ok {
		ob, ok := b.(*Object)
		if !ok {
			return false
		}
		return equalObjects(oa, ob)
	}
	if sa, ok := AsSequence(a); ok {
		sb, ok := AsSequence(b)
		if !ok || len(sa) != len(sb) {
			return false
		}
		for i := range sa {
			if !Equal(sa[i], sb[i]) {
				return false
			}
		}
		return true
	}
	return reflect.DeepEqual(a, b)
}

func equalObjects(a, b *Object) bool {
	if a.Len() != b.Len() {
		return false
	}
	ka, kb := a.Keys(), b.Keys()
	for i, key := range ka {
		if kb[i] != key {
			return false
		}
		va, _ := a.Get(key)
		vb, _ := b.Get(key)
		if !Equal(va, vb) {
			return false
		}
	}
	return true
}

// FormatNumber renders n the way JavaScript's String does for common values:
// integers without a fraction, other numbers in their shortest form.
func FormatNumber(n float64) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	}
	abs := math.Abs(n)
	if abs == 0 || (abs >= 1e-6 && abs < 1e21) {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	return strconv.FormatFloat(n, 'g', -1, 64)
}
