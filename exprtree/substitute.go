package exprtree

import (
	"errors"
	"fmt"
	"strconv"
)

// Substitute replaces every leaf labelled variable with value, e.g.
// substituting c=5 into "+ c - c c" gives "+ 5 - 5 5". The tree is modified
// in place in a single traversal and returned.
func Substitute(tree *Tree, variable string, value int) (*Tree, error) {
	if err := checkExpression(tree); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	if variable == "" {
		return nil, fmt.Errorf("%w: empty variable name", ErrInvalidArgument)
	}
	literal := strconv.Itoa(value)
	substitute(tree, func(label string) (string, bool) {
		if label == variable {
			return literal, true
		}
		return "", false
	})
	return tree, nil
}

// SubstituteAll replaces the variables of bindings all at once, with one
// traversal and one map lookup per leaf.
func SubstituteAll(tree *Tree, bindings Bindings) (*Tree, error) {
	if bindings == nil {
		return nil, fmt.Errorf("%w: nil bindings", ErrInvalidArgument)
	}
	if _, ok := bindings[""]; ok {
		return nil, fmt.Errorf("%w: binding with an empty variable name", ErrInvalidArgument)
	}
	return SubstituteEnv(tree, bindings)
}

// SubstituteEnv replaces every leaf that env can resolve.
func SubstituteEnv(tree *Tree, env Env) (*Tree, error) {
	if err := checkExpression(tree); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	if isNilEnv(env) {
		return nil, fmt.Errorf("%w: nil environment", ErrInvalidArgument)
	}
	substitute(tree, envReplacer(env))
	return tree, nil
}

func substitute(tree *Tree, replace func(label string) (string, bool)) {
	tree.Preorder(func(p Position) bool {
		if tree.IsLeaf(p) {
			if literal, ok := replace(tree.Label(p)); ok {
				tree.Set(p, literal)
			}
		}
		return true
	})
}

func envReplacer(env Env) func(label string) (string, bool) {
	return func(label string) (string, bool) {
		if v, ok := env.LookupVariable(label); ok {
			return strconv.Itoa(v), true
		}
		return "", false
	}
}

// Evaluate computes the value of tree with the variables of env. Every
// variable must be bound. tree itself is left untouched.
func Evaluate(tree *Tree, env Env) (int, error) {
	if err := checkExpression(tree); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	if isNilEnv(env) {
		return 0, fmt.Errorf("%w: nil environment", ErrInvalidArgument)
	}
	work := tree.Clone()
	substitute(work, envReplacer(env))
	if unbound := Variables(work); len(unbound) > 0 {
		if _, err := strconv.Atoi(unbound[0]); errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: literal %q is out of range", ErrInvalidArgument, unbound[0])
		}
		return 0, fmt.Errorf("%w: variable %q is not bound", ErrInvalidArgument, unbound[0])
	}
	simplify(work, work.Root())
	value, ok := literalValue(work.Label(work.Root()))
	if !ok {
		return 0, fmt.Errorf("%w: expression did not reduce to a literal", ErrInvalidArgument)
	}
	return value, nil
}
