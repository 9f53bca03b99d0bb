package tree

import (
	"encoding/json"
	"sort"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// Object is an insertion-ordered configuration object.
// The zero value is an empty object ready to use.
type Object struct {
	pairs *orderedmap.OrderedMap[string, any]
}

// New returns an empty Object.
func New() *Object {
	return &Object{pairs: orderedmap.New[string, any]()}
}

// Of builds an Object from alternating key/value arguments.
// A non-string key or a trailing key without value panics.
func Of(kv ...any) *Object {
	if len(kv)%2 != 0 {
		panic("tree.Of: odd number of arguments")
	}
	o := New()
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			panic("tree.Of: keys must be strings")
		}
		o.Set(key, kv[i+1])
	}
	return o
}

// FromMap converts a plain map into an Object, recursively.
// Go maps carry no order, so keys are sorted lexicographically at every level.
func FromMap(m map[string]any) *Object {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	o := New()
	for _, k := range keys {
		o.Set(k, fromPlain(m[k]))
	}
	return o
}

func fromPlain(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return FromMap(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = fromPlain(item)
		}
		return out
	default:
		return v
	}
}

// Set assigns value to key. An existing key keeps its position.
func (o *Object) Set(key string, value any) {
	if o.pairs == nil {
		o.pairs = orderedmap.New[string, any]()
	}
	o.pairs.Set(key, value)
}

// Get returns the value stored at key.
func (o *Object) Get(key string) (any, bool) {
	if o == nil || o.pairs == nil {
		return nil, false
	}
	return o.pairs.Get(key)
}

// Delete removes key, reporting whether it was present.
func (o *Object) Delete(key string) bool {
	if o == nil || o.pairs == nil {
		return false
	}
	_, present := o.pairs.Delete(key)
	return present
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Len returns the number of keys.
func (o *Object) Len() int {
	if o == nil || o.pairs == nil {
		return 0
	}
	return o.pairs.Len()
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	keys := make([]string, 0, o.Len())
	o.Range(func(key string, _ any) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Range calls fn for each entry in insertion order until fn returns false.
func (o *Object) Range(fn func(key string, value any) bool) {
	if o == nil || o.pairs == nil {
		return
	}
	for pair := o.pairs.Oldest(); pair != nil; pair = pair.Next() {
		if !fn(pair.Key, pair.Value) {
			return
		}
	}
}

// Lookup follows path through nested objects.
func (o *Object) Lookup(path ...string) (any, bool) {
	var cur any = o
	for _, key := range path {
		obj, ok := cur.(*Object)
		if !ok {
			return nil, false
		}
		cur, ok = obj.Get(key)
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// ShallowCopy returns a new Object holding the same values.
func (o *Object) ShallowCopy() *Object {
	out := New()
	o.Range(func(key string, value any) bool {
		out.Set(key, value)
		return true
	})
	return out
}

// Clone returns a deep copy. Nested objects and sequences are copied;
// primitives and values of other types are shared.
func (o *Object) Clone() *Object {
	if o == nil {
		return nil
	}
	out := New()
	o.Range(func(key string, value any) bool {
		out.Set(key, CloneValue(value))
		return true
	})
	return out
}

// CloneValue deep-copies objects and sequences, returning other values as is.
func CloneValue(v any) any {
	if obj, ok := v.(*Object); ok {
		return obj.Clone()
	}
	if seq, ok := AsSequence(v); ok {
		out := make([]any, len(seq))
		for i, item := range seq {
			out[i] = CloneValue(item)
		}
		return out
	}
	return v
}

// ToMap converts the object into plain maps and slices, recursively.
func (o *Object) ToMap() map[string]any {
	out := make(map[string]any, o.Len())
	o.Range(func(key string, value any) bool {
		out[key] = toPlain(value)
		return true
	})
	return out
}

func toPlain(v any) any {
	if obj, ok := v.(*Object); ok {
		return obj.ToMap()
	}
	if seq, ok := AsSequence(v); ok {
		out := make([]any, len(seq))
		for i, item := range seq {
			out[i] = toPlain(item)
		}
		return out
	}
	return v
}

// MarshalJSON encodes the object with its key order preserved.
func (o *Object) MarshalJSON() ([]byte, error) {
	if o == nil {
		return []byte("null"), nil
	}
	if o.pairs == nil {
		return []byte("{}"), nil
	}
	return o.pairs.MarshalJSON()
}

// MarshalYAML encodes the object as an ordered YAML mapping.
func (o *Object) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	var err error
	o.Range(func(key string, value any) bool {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
		valueNode := &yaml.Node{}
		if err = valueNode.Encode(value); err != nil {
			return false
		}
		node.Content = append(node.Content, keyNode, valueNode)
		return true
	})
	if err != nil {
		return nil, err
	}
	return node, nil
}

var (
	_ json.Marshaler = (*Object)(nil)
	_ yaml.Marshaler = (*Object)(nil)
)
