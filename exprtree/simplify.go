package exprtree

import "strconv"

// Simplify folds every subtree that only holds integer literals into a single
// literal, e.g. "- + 2 15 c" becomes "- 17 c". The tree is modified in place
// and returned.
//
// Folding runs bottom-up so that a parent is evaluated only once its children
// are literals. Runs in O(n).
func Simplify(tree *Tree) (*Tree, error) {
	if err := checkExpression(tree); err != nil {
		return nil, err
	}
	simplify(tree, tree.Root())
	return tree, nil
}

func simplify(tree *Tree, p Position) {
	if tree.IsLeaf(p) {
		return
	}
	simplify(tree, tree.Left(p))
	simplify(tree, tree.Right(p))
	fold(tree, p)
}

// fold replaces the operator at p by its value when both children are
// literals. Returns whether it did.
func fold(tree *Tree, p Position) bool {
	l, r := tree.Left(p), tree.Right(p)
	if !tree.IsLeaf(l) || !tree.IsLeaf(r) {
		return false
	}
	a, ok := literalValue(tree.Label(l))
	if !ok {
		return false
	}
	b, ok := literalValue(tree.Label(r))
	if !ok {
		return false
	}

	var result int
	switch tree.Label(p) {
	case AddOp:
		result = a + b
	case SubtractOp:
		result = a - b
	case MultiplyOp:
		result = a * b
	default:
		return false
	}
	collapse(tree, p, strconv.Itoa(result))
	return true
}

// collapse turns the operator at p into a leaf labelled label.
func collapse(tree *Tree, p Position, label string) {
	tree.Remove(tree.Left(p))
	tree.Remove(tree.Right(p))
	tree.Set(p, label)
}

func literalValue(label string) (int, bool) {
	v, err := strconv.Atoi(label)
	if err != nil {
		return 0, false
	}
	return v, true
}

// IsLiteral reports whether label is an integer literal.
func IsLiteral(label string) bool {
	_, ok := literalValue(label)
	return ok
}
