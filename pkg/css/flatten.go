package css

import (
	"slices"

	"github.com/aretw0/spark/pkg/tree"
)

// Flatten returns one custom property per leaf of obj, named after the leaf's
// path, in document order.
func Flatten(prefix string, obj *tree.Object) []*CustomProperty {
	var props []*CustomProperty
	tree.Walk(obj, func(item tree.StackItem) {
		if tree.IsObject(item.Node) {
			return
		}
		props = append(props, NewProperty(prefix, item.Path, item.Node))
	})
	// the walk meets leaves last-first
	slices.Reverse(props)
	return props
}

// References returns a copy of obj whose leaves are replaced by var()
// references to the properties Flatten would declare for them.
func References(prefix string, obj *tree.Object) *tree.Object {
	if obj == nil {
		return tree.New()
	}
	out := tree.Rewrite(obj.Clone(), func(item tree.StackItem) any {
		if tree.IsObject(item.Node) {
			return item.Node
		}
		return NewProperty(prefix, item.Path, item.Node).Var()
	})
	return out.(*tree.Object)
}
