package tree

// BuildGeneric wires parent/child associations directly onto the caller's
// own record type, without materializing Node values. Records whose parent
// id equals rootID become the top-level result; attachFn is invoked for
// every placed record with its discovered children, depth-first. A single
// visited set spans the whole recursion, so no record is attached under two
// parents and the walk terminates even on cyclic or duplicated input.
func BuildGeneric[R any, K comparable](records []R, rootID K,
	idFn func(R) K,
	parentIDFn func(R) K,
	attachFn func(R, []R)) []R {

	roots := make([]R, 0)
	for _, rec := range records {
		if parentIDFn(rec) == rootID {
			roots = append(roots, rec)
		}
	}

	visited := make(map[K]struct{}, len(records))
	for _, root := range roots {
		attachChildren(root, records, visited, idFn, parentIDFn, attachFn)
	}
	return roots
}

// attachChildren selects the unvisited records claiming parent as their
// parent, marks them placed, recurses into each, then hands the collected
// children to attachFn.
func attachChildren[R any, K comparable](parent R, records []R, visited map[K]struct{},
	idFn func(R) K,
	parentIDFn func(R) K,
	attachFn func(R, []R)) {

	parentID := idFn(parent)
	children := make([]R, 0)
	for _, rec := range records {
		id := idFn(rec)
		if _, placed := visited[id]; placed {
			continue
		}
		if parentIDFn(rec) != parentID {
			continue
		}
		visited[id] = struct{}{}
		children = append(children, rec)
		attachChildren(rec, records, visited, idFn, parentIDFn, attachFn)
	}
	attachFn(parent, children)
}
