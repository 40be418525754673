package exprtree

import "errors"

var (
	// ErrMalformedExpression is returned when prefix notation runs out of
	// operands before the expression is complete.
	ErrMalformedExpression = errors.New("malformed expression")

	// ErrInvalidExpression is returned when a tree does not have the shape of
	// an arithmetic expression.
	ErrInvalidExpression = errors.New("invalid expression")

	// ErrInvalidArgument is returned for absent variable names, bindings or
	// values.
	ErrInvalidArgument = errors.New("invalid argument")
)
