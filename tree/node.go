package tree

import (
	"encoding/json"
)

// Node is a single vertex in an assembled tree. ID, Name, Weight, ParentID
// and Extra are populated from the source record by an Adapter; the child
// list and the parent back-reference are wired exclusively by the builder
// during assembly and never change afterwards.
type Node[E comparable] struct {
	// ID is the unique identifier of the node within one build.
	ID E
	// ParentID is the id of the enclosing node as declared by the source
	// record. The structural parent link is set during assembly; ParentID
	// records what the input claimed, which is what the map-merge entry
	// point buckets on.
	ParentID E
	// Name is the optional human-readable label. Empty means absent.
	Name string
	// Weight is the optional sibling ordering key. Nil sorts after every
	// present weight.
	Weight *float64
	// Extra holds any additional attributes carried by the source record.
	Extra map[string]any

	// children is owned by this node; dropping the node drops its subtree.
	children []*Node[E]
	// parent is a non-owning back-reference used only for upward walks.
	parent *Node[E]
	// synthetic marks the builder-created root. It is the one node the
	// ancestor walks never emit.
	synthetic bool
	// cfg is the configuration this node was built under, carried so a
	// later map-merge build can reuse it.
	cfg *Config[E]
}

// NewNode returns a detached node with the given id.
func NewNode[E comparable](id E) *Node[E] {
	return &Node[E]{ID: id}
}

// Children returns the ordered child list. The returned slice is the node's
// own backing storage; treat it as read-only.
func (n *Node[E]) Children() []*Node[E] {
	return n.children
}

// Parent returns the enclosing node, or nil for a detached node. The
// synthetic root returned by a single-root build has a nil parent.
func (n *Node[E]) Parent() *Node[E] {
	return n.parent
}

// IsSynthetic reports whether this node is a builder-created root rather
// than a node backed by an input record.
func (n *Node[E]) IsSynthetic() bool {
	return n.synthetic
}

// Config returns the configuration the node was built under, or nil for a
// hand-constructed node.
func (n *Node[E]) Config() *Config[E] {
	return n.cfg
}

// AddChild appends c to the child list and sets its parent back-reference.
func (n *Node[E]) AddChild(c *Node[E]) {
	c.parent = n
	n.children = append(n.children, c)
}

// MarshalJSON renders the node as an object using the field bindings of its
// configuration (or the defaults when it has none). Extra attributes are
// flattened into the same object; the parent id is implied by nesting and
// not emitted.
func (n *Node[E]) MarshalJSON() ([]byte, error) {
	cfg := n.cfg
	if cfg == nil {
		cfg = DefaultConfig[E]()
	}
	obj := make(map[string]any, len(n.Extra)+4)
	for k, v := range n.Extra {
		obj[k] = v
	}
	obj[cfg.IDKey] = n.ID
	if n.Name != "" {
		obj[cfg.NameKey] = n.Name
	}
	if n.Weight != nil {
		obj[cfg.WeightKey] = *n.Weight
	}
	if len(n.children) > 0 {
		obj[cfg.ChildrenKey] = n.children
	}
	return json.Marshal(obj)
}
