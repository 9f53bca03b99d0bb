package tree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRewrite_VisitsSiblingsInReverseKeyOrder(t *testing.T) {
	root := Of("a", 1, "b", Of("c", 2, "d", 3))

	var visited []string
	var depths []int
	Rewrite(root, func(item StackItem) any {
		visited = append(visited, strings.Join(item.Path, "."))
		depths = append(depths, item.Depth)
		return item.Node
	})

	assert.Equal(t, []string{"", "b", "b.d", "b.c", "a"}, visited)
	assert.Equal(t, []int{0, 1, 2, 2, 1}, depths)
}

func TestRewrite_IdentityLeavesTreeUnchanged(t *testing.T) {
	root := Of("a", 1, "b", Of("c", 2))
	before := root.Clone()

	got := Rewrite(root, func(item StackItem) any { return item.Node })

	assert.Same(t, root, got)
	assert.True(t, Equal(before, got))
	assert.Equal(t, []string{"a", "b"}, root.Keys())
}

func TestRewrite_ReplacesLeavesInPlace(t *testing.T) {
	root := Of("a", "x", "b", Of("c", "y"))

	Rewrite(root, func(item StackItem) any {
		if s, ok := item.Node.(string); ok {
			return strings.ToUpper(s)
		}
		return item.Node
	})

	a, _ := root.Get("a")
	c, _ := root.Lookup("b", "c")
	assert.Equal(t, "X", a)
	assert.Equal(t, "Y", c)
}

func TestRewrite_DescendsIntoReplacementBeforeSiblings(t *testing.T) {
	root := Of("a", 1, "b", 2)

	var visited []string
	got := Rewrite(root, func(item StackItem) any {
		visited = append(visited, strings.Join(item.Path, "."))
		if item.Key == "b" {
			return Of("x", 10)
		}
		return item.Node
	})

	assert.Equal(t, []string{"", "b", "b.x", "a"}, visited)
	x, ok := got.(*Object).Lookup("b", "x")
	require.True(t, ok)
	assert.Equal(t, 10, x)
}

func TestRewrite_ReplacingRoot(t *testing.T) {
	root := Of("a", 1)

	got := Rewrite(root, func(item StackItem) any {
		if item.Parent == nil {
			return Of("replaced", true)
		}
		return item.Node
	})

	obj, ok := got.(*Object)
	require.True(t, ok)
	assert.Equal(t, []string{"replaced"}, obj.Keys())
	// the original root is left alone once replaced
	assert.Equal(t, []string{"a"}, root.Keys())
}

func TestRewrite_RootReplacedByScalarStops(t *testing.T) {
	calls := 0
	got := Rewrite(Of("a", 1), func(item StackItem) any {
		calls++
		return "flat"
	})

	assert.Equal(t, "flat", got)
	assert.Equal(t, 1, calls)
}

func TestRewrite_NonObjectOrNilVisitor(t *testing.T) {
	assert.Equal(t, 42, Rewrite(42, func(StackItem) any { return 0 }))
	assert.Equal(t, []any{1}, Rewrite([]any{1}, func(StackItem) any { return 0 }))

	root := Of("a", 1)
	assert.Same(t, root, Rewrite(root, nil))
}

func TestRewrite_SequencesAreLeaves(t *testing.T) {
	root := Of("list", []any{Of("inner", 1)})

	var paths []string
	Rewrite(root, func(item StackItem) any {
		paths = append(paths, strings.Join(item.Path, "."))
		return item.Node
	})

	assert.Equal(t, []string{"", "list"}, paths)
}

func TestRewrite_PathsAreIndependent(t *testing.T) {
	root := Of("a", Of("x", 1, "y", 2, "z", 3))

	var paths [][]string
	Rewrite(root, func(item StackItem) any {
		paths = append(paths, item.Path)
		return item.Node
	})

	assert.Equal(t, [][]string{{}, {"a"}, {"a", "z"}, {"a", "y"}, {"a", "x"}}, paths)
}

func TestWalk_MatchesRewriteOrder(t *testing.T) {
	root := Of("a", 1, "b", Of("c", 2, "d", 3))

	var walked []string
	Walk(root, func(item StackItem) {
		walked = append(walked, strings.Join(item.Path, "."))
	})

	assert.Equal(t, []string{"", "b", "b.d", "b.c", "a"}, walked)
}
