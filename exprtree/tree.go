package exprtree

import "fmt"

// Position identifies one node of a Tree. It is only meaningful for the tree
// that handed it out.
type Position int

// NoPosition marks an absent node (no parent, no child, empty tree).
const NoPosition Position = -1

type node struct {
	label  string
	parent Position
	left   Position
	right  Position
	used   bool
}

// Tree is a binary tree of string labels kept in an arena. Children are
// referenced by index and removed nodes leave a freed slot that later
// insertions reuse.
type Tree struct {
	nodes []node
	free  []Position
	root  Position
	size  int
}

func NewTree() *Tree {
	ret := Tree{}
	ret.root = NoPosition
	return &ret
}

// Size returns the number of live nodes.
func (t *Tree) Size() int {
	return t.size
}

func (t *Tree) IsEmpty() bool {
	return t.size == 0
}

func (t *Tree) Root() Position {
	return t.root
}

func (t *Tree) Label(p Position) string {
	return t.at(p).label
}

// Set overwrites the label at p and returns the old one.
func (t *Tree) Set(p Position, label string) string {
	n := t.at(p)
	old := n.label
	n.label = label
	return old
}

func (t *Tree) Left(p Position) Position {
	return t.at(p).left
}

func (t *Tree) Right(p Position) Position {
	return t.at(p).right
}

func (t *Tree) Parent(p Position) Position {
	return t.at(p).parent
}

func (t *Tree) NumChildren(p Position) int {
	n := t.at(p)
	count := 0
	if n.left != NoPosition {
		count++
	}
	if n.right != NoPosition {
		count++
	}
	return count
}

func (t *Tree) IsLeaf(p Position) bool {
	n := t.at(p)
	return n.left == NoPosition && n.right == NoPosition
}

// AddRoot places label at the root of an empty tree.
func (t *Tree) AddRoot(label string) Position {
	if t.root != NoPosition {
		panic("exprtree: tree already has a root")
	}
	t.root = t.alloc(label, NoPosition)
	return t.root
}

// AddLeft creates a left child of p. p must not have one already.
func (t *Tree) AddLeft(p Position, label string) Position {
	if t.at(p).left != NoPosition {
		panic(fmt.Sprintf("exprtree: position %d already has a left child", p))
	}
	c := t.alloc(label, p)
	t.nodes[p].left = c
	return c
}

// AddRight creates a right child of p. p must not have one already.
func (t *Tree) AddRight(p Position, label string) Position {
	if t.at(p).right != NoPosition {
		panic(fmt.Sprintf("exprtree: position %d already has a right child", p))
	}
	c := t.alloc(label, p)
	t.nodes[p].right = c
	return c
}

// Remove deletes the node at p and returns its label. A node with two
// children cannot be removed; a single child takes p's place.
func (t *Tree) Remove(p Position) string {
	n := t.at(p)
	if n.left != NoPosition && n.right != NoPosition {
		panic(fmt.Sprintf("exprtree: position %d has two children", p))
	}
	child := n.left
	if child == NoPosition {
		child = n.right
	}
	if child != NoPosition {
		t.nodes[child].parent = n.parent
	}
	if p == t.root {
		t.root = child
	} else if parent := &t.nodes[n.parent]; parent.left == p {
		parent.left = child
	} else {
		parent.right = child
	}

	label := n.label
	*n = node{parent: NoPosition, left: NoPosition, right: NoPosition}
	t.free = append(t.free, p)
	t.size--
	return label
}

// Clone returns a compacted deep copy. Positions of the copy differ from the
// positions of t.
func (t *Tree) Clone() *Tree {
	ret := NewTree()
	if t.root == NoPosition {
		return ret
	}
	ret.nodes = make([]node, 0, t.size)
	var copyNode func(p, parent Position) Position
	copyNode = func(p, parent Position) Position {
		c := ret.alloc(t.nodes[p].label, parent)
		if l := t.nodes[p].left; l != NoPosition {
			ret.nodes[c].left = copyNode(l, c)
		}
		if r := t.nodes[p].right; r != NoPosition {
			ret.nodes[c].right = copyNode(r, c)
		}
		return c
	}
	ret.root = copyNode(t.root, NoPosition)
	return ret
}

// Preorder calls visit for every node, parent before children and left
// before right. Returning false from visit stops the walk.
func (t *Tree) Preorder(visit func(p Position) bool) {
	if t.root == NoPosition {
		return
	}
	stack := []Position{t.root}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(p) {
			return
		}
		n := &t.nodes[p]
		if n.right != NoPosition {
			stack = append(stack, n.right)
		}
		if n.left != NoPosition {
			stack = append(stack, n.left)
		}
	}
}

func (t *Tree) alloc(label string, parent Position) Position {
	n := node{label: label, parent: parent, left: NoPosition, right: NoPosition, used: true}
	t.size++
	if len(t.free) > 0 {
		p := t.free[len(t.free)-1]
		t.free = t.free[:len(t.free)-1]
		t.nodes[p] = n
		return p
	}
	t.nodes = append(t.nodes, n)
	return Position(len(t.nodes) - 1)
}

func (t *Tree) at(p Position) *node {
	if p < 0 || int(p) >= len(t.nodes) || !t.nodes[p].used {
		panic(fmt.Sprintf("exprtree: invalid position %d", p))
	}
	return &t.nodes[p]
}
