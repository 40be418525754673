package exprtree

// Equal reports whether a and b have the same shape and the same label at
// every position. "+ 1 2" equals "+ 1 2" but not "+ 2 1".
func Equal(a, b *Tree) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return equalAt(a, b, a.Root(), b.Root())
}

func equalAt(a, b *Tree, ap, bp Position) bool {
	// both absent is fine, one absent is a mismatch
	if ap == NoPosition || bp == NoPosition {
		return ap == NoPosition && bp == NoPosition
	}
	if a.Label(ap) != b.Label(bp) {
		return false
	}
	return equalAt(a, b, a.Left(ap), b.Left(bp)) &&
		equalAt(a, b, a.Right(ap), b.Right(bp))
}
