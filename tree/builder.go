package tree

import (
	"context"
	"fmt"
	"slices"
	"sort"

	"github.com/hashicorp/go-multierror"

	"github.com/vk/treegridgo/internal/ctxlog"
)

// Builder accumulates flat records into a parent-id index and assembles the
// implied tree under a configured root id. One builder drives exactly one
// append/build session; it is not safe for concurrent use.
type Builder[T any, E comparable] struct {
	rootID E
	cfg    *Config[E]

	// buckets maps a parent id to its candidate children in encounter
	// order. Encounter order is what keeps equal-weight sorting stable.
	buckets map[E][]*Node[E]

	// appended counts every record seen so far, so a ConversionError can
	// name the offending position across multiple Append calls.
	appended int

	skipped *multierror.Error
	built   bool
}

// NewBuilder creates a builder for the given root id. A nil config means
// DefaultConfig.
func NewBuilder[T any, E comparable](rootID E, cfg *Config[E]) *Builder[T, E] {
	if cfg == nil {
		cfg = DefaultConfig[E]()
	}
	return &Builder[T, E]{
		rootID:  rootID,
		cfg:     cfg.normalized(),
		buckets: make(map[E][]*Node[E]),
	}
}

// Append converts each record through the adapter and buckets the resulting
// node by its parent id. It may be called any number of times before Build.
// A record whose id cannot be extracted fails the whole session with a
// ConversionError, unless the configuration is lenient, in which case the
// record is skipped and recorded for Skipped.
func (b *Builder[T, E]) Append(ctx context.Context, records []T, a Adapter[T, E]) error {
	if b.built {
		return &ConfigError{Reason: "builder has already produced a tree"}
	}
	logger := ctxlog.FromContext(ctx)

	for _, rec := range records {
		pos := b.appended
		b.appended++

		id, err := a.ID(rec)
		if err == nil {
			var parentID E
			parentID, err = a.ParentID(rec)
			if err == nil {
				n := &Node[E]{
					ID:       id,
					ParentID: parentID,
					Name:     a.Name(rec),
					Weight:   a.Weight(rec),
					Extra:    a.Extra(rec),
					cfg:      b.cfg,
				}
				b.buckets[parentID] = append(b.buckets[parentID], n)
				continue
			}
		}

		convErr := &ConversionError{Index: pos, Err: err}
		if !b.cfg.Lenient {
			return convErr
		}
		logger.Warn("Skipping record that could not be converted.", "index", pos, "error", err)
		b.skipped = multierror.Append(b.skipped, convErr)
	}
	return nil
}

// AppendTrees buckets pre-constructed trees by their declared parent id so
// Build can re-parent them under this builder's root. Supplied nodes keep
// whatever children they already carry. Bucketing follows the rendered key
// order because map iteration order is not reproducible.
func (b *Builder[T, E]) AppendTrees(m map[E]*Node[E]) error {
	if b.built {
		return &ConfigError{Reason: "builder has already produced a tree"}
	}
	keys := make([]E, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return fmt.Sprint(keys[i]) < fmt.Sprint(keys[j])
	})
	for _, k := range keys {
		n := m[k]
		if n == nil {
			continue
		}
		b.appended++
		b.buckets[n.ParentID] = append(b.buckets[n.ParentID], n)
	}
	return nil
}

// Skipped returns the records dropped in lenient mode, joined into one
// error, or nil when nothing was skipped.
func (b *Builder[T, E]) Skipped() error {
	return b.skipped.ErrorOrNil()
}

// Build assembles and returns the synthetic-root tree. The root's id is the
// configured root id; if no record claims it as parent, the root simply has
// no children. The walk is iterative with an explicit work stack, so input
// depth never translates into call-stack depth, and a visited set keyed by
// id guarantees termination on cyclic or duplicated input: the first parent
// to claim an id wins, later claims are dropped (or, in strict-cycles mode,
// rejected with a CycleError).
func (b *Builder[T, E]) Build(ctx context.Context) (*Node[E], error) {
	if b.built {
		return nil, &ConfigError{Reason: "builder has already produced a tree"}
	}
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}
	logger := ctxlog.FromContext(ctx)

	root := &Node[E]{ID: b.rootID, synthetic: true, cfg: b.cfg}
	visited := make(map[E]struct{}, b.appended)

	type frame struct {
		node  *Node[E]
		depth int
	}
	stack := []frame{{node: root}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, child := range b.buckets[f.node.ID] {
			if _, seen := visited[child.ID]; seen {
				if b.cfg.StrictCycles {
					return nil, &CycleError{NodeID: child.ID}
				}
				logger.Debug("Dropping already-attached node.", "id", fmt.Sprint(child.ID), "parent", fmt.Sprint(f.node.ID))
				continue
			}
			if b.cfg.MaxDepth > 0 && f.depth+1 > b.cfg.MaxDepth {
				continue
			}
			visited[child.ID] = struct{}{}
			if b.cfg.ChildPredicate != nil && !b.cfg.ChildPredicate(child) {
				continue
			}
			f.node.AddChild(child)
			stack = append(stack, frame{node: child, depth: f.depth + 1})
		}
	}

	b.sortChildren(root)
	b.built = true
	logger.Debug("Tree assembly complete.", "attached", len(visited), "appended", b.appended)
	return root, nil
}

// BuildForest is Build without the synthetic root wrapper: it returns the
// root's child list, which may be empty.
func (b *Builder[T, E]) BuildForest(ctx context.Context) ([]*Node[E], error) {
	root, err := b.Build(ctx)
	if err != nil {
		return nil, err
	}
	return root.Children(), nil
}

// sortChildren applies the configured sibling order to every level of the
// assembled tree. The sort is stable, so equal keys keep encounter order.
func (b *Builder[T, E]) sortChildren(root *Node[E]) {
	stack := []*Node[E]{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		slices.SortStableFunc(n.children, b.cfg.compare)
		stack = append(stack, n.children...)
	}
}
