package exprtree

import (
	"github.com/segmentio/fasthash/fnv1a"
	"lukechampine.com/uint128"
)

var hashSecret = [3]uint64{0x2d358dccaa6c78a5, 0x8bb84b93962eacc9, 0x4b33a62ed433d4a3}

// mix multiplies a and b to 128 bits and folds the halves together.
func mix(a, b uint64) uint64 {
	r := uint128.From64(a).Mul(uint128.From64(b))
	return r.Lo ^ r.Hi
}

// Hash returns a structural hash of tree: trees that are Equal hash to the
// same value. Labels are hashed with FNV-1a and children are combined with a
// multiply-mix so that "+ 1 2" and "+ 2 1" differ.
func Hash(tree *Tree) uint64 {
	if tree == nil || tree.IsEmpty() {
		return fnv1a.Init64
	}
	return hashAt(tree, tree.Root())
}

func hashAt(tree *Tree, p Position) uint64 {
	h := fnv1a.HashString64(tree.Label(p))
	if tree.IsLeaf(p) {
		return h
	}
	var left, right uint64 = hashSecret[1], hashSecret[2]
	if l := tree.Left(p); l != NoPosition {
		left ^= hashAt(tree, l)
	}
	if r := tree.Right(p); r != NoPosition {
		right ^= hashAt(tree, r)
	}
	return mix(h^hashSecret[0], mix(left, right))
}
