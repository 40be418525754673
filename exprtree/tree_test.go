package exprtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeBuild(t *testing.T) {
	tree := NewTree()
	assert.True(t, tree.IsEmpty())
	assert.Equal(t, NoPosition, tree.Root())

	root := tree.AddRoot("+")
	l := tree.AddLeft(root, "2")
	r := tree.AddRight(root, "15")

	assert.Equal(t, 3, tree.Size())
	assert.Equal(t, root, tree.Root())
	assert.Equal(t, "+", tree.Label(root))
	assert.Equal(t, l, tree.Left(root))
	assert.Equal(t, r, tree.Right(root))
	assert.Equal(t, root, tree.Parent(l))
	assert.Equal(t, NoPosition, tree.Parent(root))
	assert.Equal(t, 2, tree.NumChildren(root))
	assert.True(t, tree.IsLeaf(l))
	assert.False(t, tree.IsLeaf(root))

	assert.Equal(t, "15", tree.Set(r, "16"))
	assert.Equal(t, "16", tree.Label(r))
}

func TestTreeMisuse(t *testing.T) {
	tree := NewTree()
	root := tree.AddRoot("+")
	tree.AddLeft(root, "1")
	tree.AddRight(root, "2")

	assert.Panics(t, func() { tree.AddRoot("x") }, "second root")
	assert.Panics(t, func() { tree.AddLeft(root, "x") }, "second left child")
	assert.Panics(t, func() { tree.Remove(root) }, "remove with two children")
	assert.Panics(t, func() { tree.Label(Position(42)) }, "out of range")
}

func TestTreeRemove(t *testing.T) {
	tree := NewTree()
	root := tree.AddRoot("a")
	b := tree.AddLeft(root, "b")
	c := tree.AddLeft(b, "c")

	// b has a single child, which takes its place
	assert.Equal(t, "b", tree.Remove(b))
	assert.Equal(t, 2, tree.Size())
	assert.Equal(t, c, tree.Left(root))
	assert.Equal(t, root, tree.Parent(c))
	assert.Panics(t, func() { tree.Label(b) }, "removed position")

	// freed slot is reused
	d := tree.AddRight(root, "d")
	assert.Equal(t, b, d)

	tree.Remove(d)
	tree.Remove(c)
	assert.Equal(t, "a", tree.Remove(root))
	assert.True(t, tree.IsEmpty())
	assert.Equal(t, NoPosition, tree.Root())
}

func TestTreeRemoveRootPromotesChild(t *testing.T) {
	tree := NewTree()
	root := tree.AddRoot("a")
	b := tree.AddRight(root, "b")

	tree.Remove(root)
	assert.Equal(t, b, tree.Root())
	assert.Equal(t, NoPosition, tree.Parent(b))
	assert.Equal(t, 1, tree.Size())
}

func TestTreeClone(t *testing.T) {
	tree, err := Parse("* - 1 + b 3 d")
	require.NoError(t, err)

	clone := tree.Clone()
	assert.True(t, Equal(tree, clone))
	assert.Equal(t, tree.Size(), clone.Size())

	clone.Set(clone.Root(), "+")
	assert.Equal(t, "*", tree.Label(tree.Root()))
	assert.False(t, Equal(tree, clone))

	assert.True(t, NewTree().Clone().IsEmpty())
}

func TestTreePreorder(t *testing.T) {
	tree, err := Parse("+ 1 - 2 3")
	require.NoError(t, err)

	var labels []string
	tree.Preorder(func(p Position) bool {
		labels = append(labels, tree.Label(p))
		return true
	})
	assert.Equal(t, []string{"+", "1", "-", "2", "3"}, labels)

	labels = nil
	tree.Preorder(func(p Position) bool {
		labels = append(labels, tree.Label(p))
		return len(labels) < 2
	})
	assert.Equal(t, []string{"+", "1"}, labels, "stops early")
}
