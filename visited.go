package colr

// visitedSet tracks the paint refs on the active traversal path.
// Membership mirrors the call stack exactly: a ref is added on entry
// and removed on every exit, so the set is empty again once the
// top-level call returns.
type visitedSet map[PaintRef]struct{}

func (v visitedSet) contains(ref PaintRef) bool {
	_, ok := v[ref]
	return ok
}

func (v visitedSet) add(ref PaintRef) {
	v[ref] = struct{}{}
}

func (v visitedSet) remove(ref PaintRef) {
	delete(v, ref)
}
