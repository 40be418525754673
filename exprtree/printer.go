package exprtree

import "strings"

// Prefix renders tree in prefix (Polish) notation without parentheses, e.g.
// "- + 2 15 4".
func Prefix(tree *Tree) (string, error) {
	if err := checkExpression(tree); err != nil {
		return "", err
	}
	var buf strings.Builder
	tree.Preorder(func(p Position) bool {
		if buf.Len() > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(tree.Label(p))
		return true
	})
	return buf.String(), nil
}

// Infix renders tree in fully parenthesized infix notation, e.g.
// "((2+15)-4)". A single leaf is printed without parentheses.
func Infix(tree *Tree) (string, error) {
	if err := checkExpression(tree); err != nil {
		return "", err
	}
	var buf strings.Builder
	writeInfix(&buf, tree, tree.Root())
	return buf.String(), nil
}

func writeInfix(buf *strings.Builder, tree *Tree, p Position) {
	if tree.IsLeaf(p) {
		buf.WriteString(tree.Label(p))
		return
	}
	buf.WriteByte('(')
	writeInfix(buf, tree, tree.Left(p))
	buf.WriteString(tree.Label(p))
	writeInfix(buf, tree, tree.Right(p))
	buf.WriteByte(')')
}
