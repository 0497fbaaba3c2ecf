package tree

// FindByID searches node and its subtree depth-first in pre-order and
// returns the first node whose id matches, or nil. Because sibling order is
// fixed at build time, the result is deterministic even when several nodes
// share an id.
func FindByID[E comparable](node *Node[E], id E) *Node[E] {
	if node == nil {
		return nil
	}
	if node.ID == id {
		return node
	}
	for _, child := range node.children {
		if found := FindByID(child, id); found != nil {
			return found
		}
	}
	return nil
}

// AncestorIDs walks upward from n through the parent back-references and
// collects ids bottom-up. The synthetic root is never included; a genuine
// data node whose id happens to be the zero value still is, because the
// exclusion keys on the node being synthetic, not on its value.
func AncestorIDs[E comparable](n *Node[E], includeSelf bool) []E {
	ids := make([]E, 0)
	if n == nil {
		return ids
	}
	if includeSelf && !n.synthetic {
		ids = append(ids, n.ID)
	}
	for p := n.parent; p != nil && !p.synthetic; p = p.parent {
		ids = append(ids, p.ID)
	}
	return ids
}

// AncestorNames is AncestorIDs over names: the same upward walk with the
// same synthetic-root exclusion, yielding each ancestor's name. Names of
// genuine nodes are included even when empty.
func AncestorNames[E comparable](n *Node[E], includeSelf bool) []string {
	names := make([]string, 0)
	if n == nil {
		return names
	}
	if includeSelf && !n.synthetic {
		names = append(names, n.Name)
	}
	for p := n.parent; p != nil && !p.synthetic; p = p.parent {
		names = append(names, p.Name)
	}
	return names
}
