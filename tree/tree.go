package tree

import "context"

// BuildSingle assembles the records into one synthetic-root tree. The
// returned root carries the configured root id and wraps zero or more
// children; an input in which nothing claims rootID as parent yields a
// childless root, not an error.
func BuildSingle[T any, E comparable](ctx context.Context, records []T, rootID E, cfg *Config[E], a Adapter[T, E]) (*Node[E], error) {
	b := NewBuilder[T](rootID, cfg)
	if err := b.Append(ctx, records, a); err != nil {
		return nil, err
	}
	return b.Build(ctx)
}

// BuildForest assembles the records and returns the synthetic root's child
// list, discarding the root itself. An empty input yields an empty forest.
func BuildForest[T any, E comparable](ctx context.Context, records []T, rootID E, cfg *Config[E], a Adapter[T, E]) ([]*Node[E], error) {
	b := NewBuilder[T](rootID, cfg)
	if err := b.Append(ctx, records, a); err != nil {
		return nil, err
	}
	return b.BuildForest(ctx)
}

// BuildSingleFromMap re-parents a set of pre-existing trees, keyed by id,
// under a new root. The configuration of the first supplied node (in
// rendered key order) is reused for the merge, so trees partially built
// elsewhere keep their field bindings and ordering rules.
func BuildSingleFromMap[E comparable](ctx context.Context, m map[E]*Node[E], rootID E) (*Node[E], error) {
	cfg := configFromMap(m)
	b := NewBuilder[*Node[E]](rootID, cfg)
	if err := b.AppendTrees(m); err != nil {
		return nil, err
	}
	return b.Build(ctx)
}

// BuildForestFromMap is the forest variant of BuildSingleFromMap.
func BuildForestFromMap[E comparable](ctx context.Context, m map[E]*Node[E], rootID E) ([]*Node[E], error) {
	cfg := configFromMap(m)
	b := NewBuilder[*Node[E]](rootID, cfg)
	if err := b.AppendTrees(m); err != nil {
		return nil, err
	}
	return b.BuildForest(ctx)
}

// NewEmptyNode returns a childless node with the given id, the shape Build
// produces for an input that never references the root.
func NewEmptyNode[E comparable](id E) *Node[E] {
	return NewNode(id)
}

func configFromMap[E comparable](m map[E]*Node[E]) *Config[E] {
	for _, n := range m {
		if n != nil && n.cfg != nil {
			return n.cfg
		}
	}
	return nil
}
