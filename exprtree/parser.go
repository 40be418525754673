package exprtree

import (
	"fmt"
	"github.com/edwingeng/deque"
)

// Parse converts an expression in prefix notation to a tree.
//
// Operators are +, - and *; every other token is a leaf (a literal or a
// variable). "+ 2 - 4 5" gives a tree with root "+", left child "2" and a
// right subtree for "- 4 5". Tokens left over once the expression is complete
// are ignored; use ParseStrict to reject them.
func Parse(expression string) (*Tree, error) {
	tree, _, err := parse(expression)
	return tree, err
}

// ParseStrict is Parse, but fails when tokens remain after the expression.
func ParseStrict(expression string) (*Tree, error) {
	tree, tokens, err := parse(expression)
	if err != nil {
		return nil, err
	}
	if !tokens.Empty() {
		count := tokens.Len()
		return nil, fmt.Errorf("%w: %d unexpected trailing token(s) starting at %q",
			ErrMalformedExpression, count, tokens.PopFront())
	}
	return tree, nil
}

func parse(expression string) (*Tree, deque.Deque, error) {
	tokens := Tokenize(expression)
	tree := NewTree()
	if err := parseNode(tree, NoPosition, false, tokens); err != nil {
		return nil, nil, err
	}
	return tree, tokens, nil
}

// parseNode dequeues one token, hangs it under parent (on the right side if
// right is set) and recurses for the operands of an operator.
func parseNode(tree *Tree, parent Position, right bool, tokens deque.Deque) error {
	if tokens.Empty() {
		if parent == NoPosition {
			return fmt.Errorf("%w: empty expression", ErrMalformedExpression)
		}
		return fmt.Errorf("%w: operator %q is missing an operand",
			ErrMalformedExpression, tree.Label(parent))
	}
	token := tokens.PopFront().(string)

	var p Position
	switch {
	case parent == NoPosition:
		p = tree.AddRoot(token)
	case right:
		p = tree.AddRight(parent, token)
	default:
		p = tree.AddLeft(parent, token)
	}

	if IsOperator(token) {
		if err := parseNode(tree, p, false, tokens); err != nil {
			return err
		}
		return parseNode(tree, p, true, tokens)
	}
	return nil
}
