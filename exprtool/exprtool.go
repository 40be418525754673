// Package exprtool maps tool names to expression operations so the
// command line and the HTTP service render results the same way.
package exprtool

import (
	"errors"
	"exprtree-go/exprtree"
	"fmt"
	"strconv"
	"strings"
)

var ErrUnknownTool = errors.New("unknown tool")

type ToolFunc func(tree *exprtree.Tree, env exprtree.Env) (string, error)

type Tool struct {
	/// Short name of the tool.
	Name string

	/// Description (shown in "-t list").
	Desc string

	/// Implementation of the tool.
	Func ToolFunc
}

var tools = []Tool{
	{"prefix", "print the expression in prefix notation", toolPrefix},
	{"infix", "print the expression fully parenthesized", toolInfix},
	{"simplify", "fold constant subexpressions", toolSimplify},
	{"fancy", "fold constants and apply identities with 0 and 1", toolFancy},
	{"validate", "check that the expression is well formed", toolValidate},
	{"vars", "list the variables in order of first appearance", toolVars},
	{"hash", "print the structural hash of the expression", toolHash},
	{"eval", "evaluate the expression with every variable bound", toolEval},
	{"substitute", "replace bound variables and print prefix", toolSubstitute},
}

// Tools returns the tool table in display order.
func Tools() []Tool {
	return tools
}

// Names returns the name of every tool.
func Names() []string {
	names := make([]string, 0, len(tools))
	for _, tool := range tools {
		names = append(names, tool.Name)
	}
	return names
}

// Lookup returns the tool called name, or nil.
func Lookup(name string) *Tool {
	for i := range tools {
		if tools[i].Name == name {
			return &tools[i]
		}
	}
	return nil
}

// Run parses expression and applies the named tool to it. With strict set
// trailing tokens are an error. env may be nil when no variables are bound;
// a nil *exprtree.BindingEnv is rejected like any nil environment.
func Run(name, expression string, env exprtree.Env, strict bool) (string, error) {
	tool := Lookup(name)
	if tool == nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownTool, name)
	}
	return tool.Run(expression, env, strict)
}

func (t *Tool) Run(expression string, env exprtree.Env, strict bool) (string, error) {
	parse := exprtree.Parse
	if strict {
		parse = exprtree.ParseStrict
	}
	tree, err := parse(expression)
	if err != nil {
		return "", err
	}
	if env == nil {
		env = exprtree.Bindings{}
	}
	return t.Func(tree, env)
}

func toolPrefix(tree *exprtree.Tree, env exprtree.Env) (string, error) {
	return exprtree.Prefix(tree)
}

func toolInfix(tree *exprtree.Tree, env exprtree.Env) (string, error) {
	return exprtree.Infix(tree)
}

func toolSimplify(tree *exprtree.Tree, env exprtree.Env) (string, error) {
	tree, err := exprtree.Simplify(tree)
	if err != nil {
		return "", err
	}
	return exprtree.Prefix(tree)
}

func toolFancy(tree *exprtree.Tree, env exprtree.Env) (string, error) {
	tree, err := exprtree.SimplifyFancy(tree)
	if err != nil {
		return "", err
	}
	return exprtree.Prefix(tree)
}

func toolValidate(tree *exprtree.Tree, env exprtree.Env) (string, error) {
	if !exprtree.IsArithmeticExpression(tree) {
		return "", exprtree.ErrInvalidExpression
	}
	return "valid", nil
}

func toolVars(tree *exprtree.Tree, env exprtree.Env) (string, error) {
	return strings.Join(exprtree.Variables(tree), " "), nil
}

func toolHash(tree *exprtree.Tree, env exprtree.Env) (string, error) {
	return fmt.Sprintf("%016x", exprtree.Hash(tree)), nil
}

func toolEval(tree *exprtree.Tree, env exprtree.Env) (string, error) {
	value, err := exprtree.Evaluate(tree, env)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(value), nil
}

func toolSubstitute(tree *exprtree.Tree, env exprtree.Env) (string, error) {
	tree, err := exprtree.SubstituteEnv(tree, env)
	if err != nil {
		return "", err
	}
	return exprtree.Prefix(tree)
}
