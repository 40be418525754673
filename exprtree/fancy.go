package exprtree

// SimplifyFancy does everything Simplify does and also applies these rules
// when both operands are leaves:
//
//	* 1 x == x    (1*x)==x
//	* x 1 == x    (x*1)==x
//	* 0 x == 0    (0*x)==0
//	* x 0 == 0    (x*0)==0
//	+ 0 x == x    (0+x)==x
//	+ x 0 == x    (x+0)==x
//	- x 0 == x    (x-0)==x
//	- x x == 0    (x-x)==0
//
// Children are simplified before their parent, so "- * 1 x x" becomes
// "- x x" and then "0". Operands that are still subtrees are left alone:
// "- + x 1 + x 1" is not collapsed. Runs in O(n).
func SimplifyFancy(tree *Tree) (*Tree, error) {
	if err := checkExpression(tree); err != nil {
		return nil, err
	}
	simplifyFancy(tree, tree.Root())
	return tree, nil
}

func simplifyFancy(tree *Tree, p Position) {
	if tree.IsLeaf(p) {
		return
	}
	l, r := tree.Left(p), tree.Right(p)
	simplifyFancy(tree, l)
	simplifyFancy(tree, r)
	if !tree.IsLeaf(l) || !tree.IsLeaf(r) {
		return
	}
	if fold(tree, p) {
		return
	}
	if label, ok := identity(tree.Label(p), tree.Label(l), tree.Label(r)); ok {
		collapse(tree, p, label)
	}
}

// identity returns what "op left right" collapses to, if any rule applies.
func identity(op, left, right string) (string, bool) {
	switch op {
	case MultiplyOp:
		switch {
		case isLiteralOf(left, 1):
			return right, true
		case isLiteralOf(right, 1):
			return left, true
		case isLiteralOf(left, 0), isLiteralOf(right, 0):
			return "0", true
		}
	case AddOp:
		switch {
		case isLiteralOf(left, 0):
			return right, true
		case isLiteralOf(right, 0):
			return left, true
		}
	case SubtractOp:
		switch {
		case isLiteralOf(right, 0):
			return left, true
		case left == right:
			return "0", true
		}
	}
	return "", false
}

func isLiteralOf(label string, want int) bool {
	v, ok := literalValue(label)
	return ok && v == want
}
