package tree

// Default field bindings used when records are schema-less maps and when
// rendering nodes to JSON.
const (
	DefaultIDKey       = "id"
	DefaultParentIDKey = "parentId"
	DefaultNameKey     = "name"
	DefaultWeightKey   = "weight"
	DefaultChildrenKey = "children"
)

// Config controls one build session. The zero value is not usable directly;
// obtain a populated value from DefaultConfig and override what you need.
// Configuration is an explicit per-call value, there is no process-wide
// default instance.
type Config[E comparable] struct {
	// Field bindings, consulted by MapAdapter and by JSON marshalling.
	IDKey       string
	ParentIDKey string
	NameKey     string
	WeightKey   string
	ChildrenKey string

	// MaxDepth truncates assembly below this many levels under the root.
	// Zero means unlimited; negative is a configuration error.
	MaxDepth int

	// ChildPredicate, when set, is consulted before a node is attached.
	// Rejecting a node excludes its entire subtree from the output.
	ChildPredicate func(*Node[E]) bool

	// Comparator overrides the default ascending-weight sibling order.
	// Negative means a sorts before b. Sorting is always stable, so ties
	// keep their discovery order.
	Comparator func(a, b *Node[E]) int

	// StrictCycles turns the silent first-discovery-wins resolution of
	// duplicate or multi-parent claims into a CycleError.
	StrictCycles bool

	// Lenient makes the builder skip records whose id cannot be extracted
	// instead of failing the whole build. Skipped records are reported by
	// Builder.Skipped.
	Lenient bool
}

// DefaultConfig returns the standard configuration: default field bindings,
// unlimited depth, ascending-weight ordering, silent duplicate resolution,
// fail-fast conversion.
func DefaultConfig[E comparable]() *Config[E] {
	return &Config[E]{
		IDKey:       DefaultIDKey,
		ParentIDKey: DefaultParentIDKey,
		NameKey:     DefaultNameKey,
		WeightKey:   DefaultWeightKey,
		ChildrenKey: DefaultChildrenKey,
	}
}

// Validate reports a ConfigError for settings no traversal should start
// with. It runs before any node is touched.
func (c *Config[E]) Validate() error {
	if c == nil {
		return &ConfigError{Reason: "nil config"}
	}
	if c.MaxDepth < 0 {
		return &ConfigError{Reason: "max depth must not be negative"}
	}
	return nil
}

// normalized returns a copy with empty field bindings filled from the
// defaults, so hand-built configs behave like DefaultConfig overrides.
func (c *Config[E]) normalized() *Config[E] {
	out := *c
	if out.IDKey == "" {
		out.IDKey = DefaultIDKey
	}
	if out.ParentIDKey == "" {
		out.ParentIDKey = DefaultParentIDKey
	}
	if out.NameKey == "" {
		out.NameKey = DefaultNameKey
	}
	if out.WeightKey == "" {
		out.WeightKey = DefaultWeightKey
	}
	if out.ChildrenKey == "" {
		out.ChildrenKey = DefaultChildrenKey
	}
	return &out
}

// compare applies the configured sibling order, falling back to the default
// ascending-weight rule.
func (c *Config[E]) compare(a, b *Node[E]) int {
	if c.Comparator != nil {
		return c.Comparator(a, b)
	}
	return compareWeights(a.Weight, b.Weight)
}

// compareWeights orders present weights ascending and places absent weights
// after every present one.
func compareWeights(a, b *float64) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case *a < *b:
		return -1
	case *a > *b:
		return 1
	default:
		return 0
	}
}
