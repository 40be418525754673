package exprtree

import "github.com/ahrtr/gocontainer/set"

// Variables lists the distinct variables of tree in order of first
// appearance (preorder). Literals and operators are not variables.
func Variables(tree *Tree) []string {
	var names []string
	if tree == nil {
		return names
	}
	seen := set.New()
	tree.Preorder(func(p Position) bool {
		if !tree.IsLeaf(p) {
			return true
		}
		label := tree.Label(p)
		if IsLiteral(label) || seen.Contains(label) {
			return true
		}
		seen.Add(label)
		names = append(names, label)
		return true
	})
	return names
}
