package exprtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tree, err := Parse("hi")
	require.NoError(t, err)
	assert.Equal(t, 1, tree.Size())
	assert.Equal(t, "hi", tree.Label(tree.Root()))

	for _, op := range []string{"+", "-", "*"} {
		tree, err = Parse(op + " 5 10")
		require.NoError(t, err, op)
		assert.Equal(t, 3, tree.Size(), op)
		assert.Equal(t, op, tree.Label(tree.Root()))
		assert.Equal(t, "5", tree.Label(tree.Left(tree.Root())))
		assert.Equal(t, "10", tree.Label(tree.Right(tree.Root())))
	}

	tree, err = Parse("+ 5 - 4 3")
	require.NoError(t, err)
	root := tree.Root()
	assert.Equal(t, 5, tree.Size())
	assert.Equal(t, "+", tree.Label(root))
	assert.Equal(t, "5", tree.Label(tree.Left(root)))
	assert.Equal(t, "-", tree.Label(tree.Right(root)))
	assert.Equal(t, "4", tree.Label(tree.Left(tree.Right(root))))
	assert.Equal(t, "3", tree.Label(tree.Right(tree.Right(root))))
}

func TestParseWhitespace(t *testing.T) {
	tree, err := Parse("  +\t2 \n 15 ")
	require.NoError(t, err)
	prefix, err := Prefix(tree)
	require.NoError(t, err)
	assert.Equal(t, "+ 2 15", prefix)
}

func TestParseMalformed(t *testing.T) {
	for _, expr := range []string{
		"+ 5 - 4",
		"+ x",
		"* 1  ",
		"-",
		"",
		"   ",
	} {
		tree, err := Parse(expr)
		assert.ErrorIs(t, err, ErrMalformedExpression, "%q", expr)
		assert.Nil(t, tree, "%q", expr)
	}
}

func TestParseTrailingTokens(t *testing.T) {
	tree, err := Parse("+ 1 2 * x")
	require.NoError(t, err)
	prefix, err := Prefix(tree)
	require.NoError(t, err)
	assert.Equal(t, "+ 1 2", prefix)

	_, err = ParseStrict("+ 1 2 * x")
	assert.ErrorIs(t, err, ErrMalformedExpression)
	_, err = ParseStrict("+ 1 2 * x 1 - 2")
	assert.ErrorIs(t, err, ErrMalformedExpression)

	tree, err = ParseStrict("+ 1 2")
	require.NoError(t, err)
	assert.Equal(t, 3, tree.Size())
}
