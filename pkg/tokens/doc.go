/*
Package tokens provides a layered store of design tokens.

A Store holds its own layer of values on top of a chain of ancestor layers.
Reading resolves the chain by deep-merging the layers from the oldest ancestor
to the own layer, so the most recent layer always wins.

# Building and forking

Stores are built incrementally with SetConfig and then frozen. Forking derives
a new store whose ancestors start with a snapshot of the parent's own layer;
the parent is never touched by the fork, and later changes to the parent do
not reach the fork.

	base := tokens.New(tree.Of("color", tree.Of("text", "#111", "surface", "#fff")))
	_ = base.SetConfig(tree.Of("radius", 4))
	base.Freeze()

	dark := base.Fork(tree.Of("color", tree.Of("surface", "#000")))
	dark.Resolve() // color.text "#111", color.surface "#000", radius 4
*/
package tokens
