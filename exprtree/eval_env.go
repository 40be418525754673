package exprtree

import (
	"fmt"
	"strconv"
	"strings"
)

// Env resolves variable names to integer values.
type Env interface {
	LookupVariable(name string) (int, bool)
}

// Bindings maps variable names to values.
type Bindings map[string]int

func (b Bindings) LookupVariable(name string) (int, bool) {
	v, ok := b[name]
	return v, ok
}

// BindingEnv is a scope of bindings with an optional enclosing scope. Lookups
// that miss in the current scope continue in the parent.
type BindingEnv struct {
	bindings Bindings
	parent   *BindingEnv
}

func NewBindingEnv() *BindingEnv {
	ret := BindingEnv{}
	ret.bindings = Bindings{}
	return &ret
}

func NewBindingEnvWithParent(parent *BindingEnv) *BindingEnv {
	ret := NewBindingEnv()
	ret.parent = parent
	return ret
}

func (e *BindingEnv) LookupVariable(name string) (int, bool) {
	if e == nil {
		return 0, false
	}
	if v, ok := e.bindings[name]; ok {
		return v, true
	}
	if e.parent != nil {
		return e.parent.LookupVariable(name)
	}
	return 0, false
}

// AddBinding binds name in the current scope, shadowing any parent binding.
func (e *BindingEnv) AddBinding(name string, value int) error {
	if name == "" {
		return fmt.Errorf("%w: empty variable name", ErrInvalidArgument)
	}
	e.bindings[name] = value
	return nil
}

// isNilEnv also catches a nil *BindingEnv held in a non-nil Env.
func isNilEnv(env Env) bool {
	if env == nil {
		return true
	}
	switch e := env.(type) {
	case *BindingEnv:
		return e == nil
	case Bindings:
		return e == nil
	}
	return false
}

// Len returns the number of bindings in the current scope only.
func (e *BindingEnv) Len() int {
	return len(e.bindings)
}

// ParseBinding parses a "name=value" binding as given on the command line.
func ParseBinding(s string) (string, int, error) {
	name, raw, found := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	raw = strings.TrimSpace(raw)
	if !found || name == "" {
		return "", 0, fmt.Errorf("%w: binding %q is not of the form name=value", ErrInvalidArgument, s)
	}
	if raw == "" {
		return "", 0, fmt.Errorf("%w: binding for %q has no value", ErrInvalidArgument, name)
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return "", 0, fmt.Errorf("%w: value %q for %q is not an integer", ErrInvalidArgument, raw, name)
	}
	return name, value, nil
}
