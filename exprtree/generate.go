package exprtree

import (
	"math/rand"
	"strconv"
)

// DefaultMaxLiteral bounds generated literals when Generator.MaxLiteral is 0.
const DefaultMaxLiteral = 9

// A Generator generates random expression trees.
type Generator struct {
	// Rand is the source of randomness. If nil, the global source is used.
	Rand *rand.Rand

	// VarNames stores the allowed variable names. If empty, only literals
	// are generated.
	VarNames []string

	// MaxLiteral bounds literals to [0, MaxLiteral].
	// If this is 0, DefaultMaxLiteral is used.
	MaxLiteral int
}

// Generate generates a random valid tree with a given maximum nesting depth.
// If maxDepth is 0, the result is a single leaf.
func (g *Generator) Generate(maxDepth int) *Tree {
	tree := NewTree()
	g.generate(tree, NoPosition, false, maxDepth)
	return tree
}

func (g *Generator) generate(tree *Tree, parent Position, right bool, maxDepth int) {
	label := g.randomLeaf()
	isOp := maxDepth > 0 && g.intn(maxDepth+1) != 0
	if isOp {
		ops := []string{AddOp, SubtractOp, MultiplyOp}
		label = ops[g.intn(len(ops))]
	}

	var p Position
	switch {
	case parent == NoPosition:
		p = tree.AddRoot(label)
	case right:
		p = tree.AddRight(parent, label)
	default:
		p = tree.AddLeft(parent, label)
	}
	if isOp {
		g.generate(tree, p, false, maxDepth-1)
		g.generate(tree, p, true, maxDepth-1)
	}
}

func (g *Generator) randomLeaf() string {
	if len(g.VarNames) > 0 && g.intn(2) == 0 {
		return g.VarNames[g.intn(len(g.VarNames))]
	}
	limit := g.MaxLiteral
	if limit == 0 {
		limit = DefaultMaxLiteral
	}
	return strconv.Itoa(g.intn(limit + 1))
}

func (g *Generator) intn(n int) int {
	if g.Rand != nil {
		return g.Rand.Intn(n)
	}
	return rand.Intn(n)
}
