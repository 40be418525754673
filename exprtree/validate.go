package exprtree

// IsArithmeticExpression reports whether tree has the shape of an arithmetic
// expression: every node has zero or two children, inner nodes hold an
// operator and leaves hold a non-empty operand.
//
// An odd node count is checked first since operators contribute exactly two
// children each. Runs in O(n).
func IsArithmeticExpression(tree *Tree) bool {
	if tree == nil || tree.IsEmpty() {
		return false
	}
	if tree.Size()%2 == 0 {
		return false
	}
	valid := true
	tree.Preorder(func(p Position) bool {
		label := tree.Label(p)
		switch tree.NumChildren(p) {
		case 0:
			valid = label != "" && !IsOperator(label)
		case 2:
			valid = IsOperator(label)
		default:
			valid = false
		}
		return valid
	})
	return valid
}

func checkExpression(tree *Tree) error {
	if !IsArithmeticExpression(tree) {
		return ErrInvalidExpression
	}
	return nil
}
