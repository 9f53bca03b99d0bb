package tree

// StackItem is a position in a traversal.
type StackItem struct {
	// Key is the property name of the node in its parent; empty for the root.
	Key string
	// Depth is 0 for the root.
	Depth int
	// Path lists the keys from the root to this node.
	Path []string
	// Node is the current value.
	Node any
	// Parent holds the node; nil for the root.
	Parent *Object
}

// Visitor returns the value that replaces the visited node.
type Visitor func(item StackItem) any

// Rewrite traverses root depth-first with an explicit work stack and replaces
// every visited node with the visitor's result.
//
// The entries of an object are pushed in key order and popped in reverse, so
// siblings are visited last key first. When a visit returns an object, its
// entries are pushed and traversal descends into that replacement before the
// remaining siblings of the visited node.
//
// Sequences are leaves. A root that is not an object, or a nil visitor,
// returns root unchanged. The visitor must not produce cycles: a replacement
// that references one of its ancestors never terminates.
func Rewrite(root any, visit Visitor) any {
	if !IsObject(root) || visit == nil {
		return root
	}

	result := root
	stack := []StackItem{{Node: root, Path: []string{}}}
	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		replaced := visit(item)
		if item.Parent != nil {
			item.Parent.Set(item.Key, replaced)
		} else {
			result = replaced
		}

		obj, ok := replaced.(*Object)
		if !ok || obj == nil {
			continue
		}
		obj.Range(func(key string, value any) bool {
			stack = append(stack, StackItem{
				Key:    key,
				Depth:  item.Depth + 1,
				Path:   appendPath(item.Path, key),
				Node:   value,
				Parent: obj,
			})
			return true
		})
	}
	return result
}

// Walk visits every node in the order Rewrite would, without modifying the tree.
func Walk(root any, fn func(item StackItem)) {
	if !IsObject(root) || fn == nil {
		return
	}

	stack := []StackItem{{Node: root, Path: []string{}}}
	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		fn(item)

		obj, ok := item.Node.(*Object)
		if !ok || obj == nil {
			continue
		}
		obj.Range(func(key string, value any) bool {
			stack = append(stack, StackItem{
				Key:    key,
				Depth:  item.Depth + 1,
				Path:   appendPath(item.Path, key),
				Node:   value,
				Parent: obj,
			})
			return true
		})
	}
}

// appendPath copies so sibling items never share a backing array.
func appendPath(path []string, key string) []string {
	out := make([]string, len(path)+1)
	copy(out, path)
	out[len(path)] = key
	return out
}
