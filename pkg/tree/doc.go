// Package tree provides the ordered configuration object used for design tokens
// and the explicit-stack rewriter that transforms token trees.
//
// An Object is an insertion-ordered mapping from string keys to values. Values are
// primitives (strings, numbers, booleans, nil), sequences ([]any) or nested Objects.
// Key order is part of the data: merging, traversal and class-name derivation all
// follow it.
//
// Token documents are decoded from YAML or JSON with their key order intact:
//
//	obj, err := tree.Decode([]byte(`
//	color:
//	  primary: "#4f46e5"
//	  text: "#111827"
//	space: [4, 8, 16]
//	`))
//
// Rewrite walks a tree with a work stack, letting a visitor replace any node:
//
//	tree.Rewrite(obj, func(item tree.StackItem) any {
//	    if s, ok := item.Node.(string); ok {
//	        return strings.ToUpper(s)
//	    }
//	    return item.Node
//	})
package tree
