// Package classnames derives a class attribute value from mixed inputs.
//
//	classnames.Join("btn", classnames.Cond{{"btn--primary", primary}, {"btn--disabled", disabled}}, size)
//
// Falsy inputs are dropped, strings and numbers are used verbatim, sequences are
// joined recursively, condition maps contribute the keys whose values are truthy
// and values with a String method contribute its result.
package classnames

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aretw0/spark/pkg/tree"
)

// Toggle is one entry of a condition map.
type Toggle struct {
	Name string
	On   any
}

// Cond is a condition map with explicit order.
type Cond []Toggle

// Join returns the class names derived from items, separated by single spaces.
// Unsupported values are ignored.
func Join(items ...any) string {
	classes := make([]string, 0, len(items))
	for _, item := range items {
		classes = appendItem(classes, item)
	}
	return strings.Join(classes, " ")
}

func appendItem(classes []string, item any) []string {
	if !tree.Truthy(item) {
		return classes
	}

	switch v := item.(type) {
	case string:
		return append(classes, v)
	case *tree.Object:
		v.Range(func(name string, on any) bool {
			if tree.Truthy(on) {
				classes = append(classes, name)
			}
			return true
		})
		return classes
	case Cond:
		for _, t := range v {
			if tree.Truthy(t.On) {
				classes = append(classes, t.Name)
			}
		}
		return classes
	case map[string]bool:
		for _, name := range sortedKeys(v) {
			if v[name] {
				classes = append(classes, name)
			}
		}
		return classes
	case map[string]any:
		for _, name := range sortedKeys(v) {
			if tree.Truthy(v[name]) {
				classes = append(classes, name)
			}
		}
		return classes
	case fmt.Stringer:
		return append(classes, v.String())
	}

	if n, ok := tree.Number(item); ok {
		return append(classes, tree.FormatNumber(n))
	}
	if seq, ok := tree.AsSequence(item); ok {
		if inner := Join(seq...); inner != "" {
			classes = append(classes, inner)
		}
	}
	return classes
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
