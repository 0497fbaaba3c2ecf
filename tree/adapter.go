package tree

import (
	"errors"
	"fmt"
)

// Adapter extracts the tree-relevant fields from an opaque record type.
// Implementations must be pure: deterministic, and never mutating the
// record. A failed ID extraction aborts the build as a ConversionError
// unless the configuration is lenient.
type Adapter[T any, E comparable] interface {
	ID(record T) (E, error)
	ParentID(record T) (E, error)
	Name(record T) string
	Weight(record T) *float64
	Extra(record T) map[string]any
}

// NodeAdapter is the already-a-node case: the records fed to the builder
// are *Node values themselves, so extraction is direct field access.
type NodeAdapter[E comparable] struct{}

func (NodeAdapter[E]) ID(n *Node[E]) (E, error) {
	if n == nil {
		var zero E
		return zero, errors.New("nil node")
	}
	return n.ID, nil
}

func (NodeAdapter[E]) ParentID(n *Node[E]) (E, error) {
	if n == nil {
		var zero E
		return zero, errors.New("nil node")
	}
	return n.ParentID, nil
}

func (NodeAdapter[E]) Name(n *Node[E]) string     { return n.Name }
func (NodeAdapter[E]) Weight(n *Node[E]) *float64 { return n.Weight }

func (NodeAdapter[E]) Extra(n *Node[E]) map[string]any {
	return n.Extra
}

// MapAdapter reads schema-less map records using the field bindings of a
// Config. Every key that is not one of the bound fields becomes an extra
// attribute.
type MapAdapter[E comparable] struct {
	cfg *Config[E]
}

// NewMapAdapter binds a map adapter to the given configuration's field
// keys. A nil config uses the defaults.
func NewMapAdapter[E comparable](cfg *Config[E]) *MapAdapter[E] {
	if cfg == nil {
		cfg = DefaultConfig[E]()
	}
	return &MapAdapter[E]{cfg: cfg.normalized()}
}

func (a *MapAdapter[E]) ID(rec map[string]any) (E, error) {
	return a.lookupID(rec, a.cfg.IDKey)
}

func (a *MapAdapter[E]) ParentID(rec map[string]any) (E, error) {
	return a.lookupID(rec, a.cfg.ParentIDKey)
}

func (a *MapAdapter[E]) lookupID(rec map[string]any, key string) (E, error) {
	var zero E
	raw, ok := rec[key]
	if !ok {
		return zero, fmt.Errorf("record has no %q field", key)
	}
	id, ok := raw.(E)
	if !ok {
		return zero, fmt.Errorf("record field %q has type %T, want %T", key, raw, zero)
	}
	return id, nil
}

func (a *MapAdapter[E]) Name(rec map[string]any) string {
	if s, ok := rec[a.cfg.NameKey].(string); ok {
		return s
	}
	return ""
}

func (a *MapAdapter[E]) Weight(rec map[string]any) *float64 {
	return toWeight(rec[a.cfg.WeightKey])
}

func (a *MapAdapter[E]) Extra(rec map[string]any) map[string]any {
	reserved := map[string]struct{}{
		a.cfg.IDKey:       {},
		a.cfg.ParentIDKey: {},
		a.cfg.NameKey:     {},
		a.cfg.WeightKey:   {},
		a.cfg.ChildrenKey: {},
	}
	var extra map[string]any
	for k, v := range rec {
		if _, skip := reserved[k]; skip {
			continue
		}
		if extra == nil {
			extra = make(map[string]any)
		}
		extra[k] = v
	}
	return extra
}

// FuncAdapter builds an adapter out of per-field closures for ad-hoc record
// types. IDFn and ParentIDFn are required; the rest may be nil, meaning the
// field is absent.
type FuncAdapter[T any, E comparable] struct {
	IDFn       func(T) E
	ParentIDFn func(T) E
	NameFn     func(T) string
	WeightFn   func(T) *float64
	ExtraFn    func(T) map[string]any
}

func (a FuncAdapter[T, E]) ID(rec T) (E, error) {
	if a.IDFn == nil {
		var zero E
		return zero, errors.New("adapter has no id function")
	}
	return a.IDFn(rec), nil
}

func (a FuncAdapter[T, E]) ParentID(rec T) (E, error) {
	if a.ParentIDFn == nil {
		var zero E
		return zero, errors.New("adapter has no parent id function")
	}
	return a.ParentIDFn(rec), nil
}

func (a FuncAdapter[T, E]) Name(rec T) string {
	if a.NameFn == nil {
		return ""
	}
	return a.NameFn(rec)
}

func (a FuncAdapter[T, E]) Weight(rec T) *float64 {
	if a.WeightFn == nil {
		return nil
	}
	return a.WeightFn(rec)
}

func (a FuncAdapter[T, E]) Extra(rec T) map[string]any {
	if a.ExtraFn == nil {
		return nil
	}
	return a.ExtraFn(rec)
}

// toWeight coerces the numeric types a schema-less record plausibly carries
// into the canonical weight representation. Anything else means absent.
func toWeight(v any) *float64 {
	var w float64
	switch n := v.(type) {
	case nil:
		return nil
	case float64:
		w = n
	case float32:
		w = float64(n)
	case int:
		w = float64(n)
	case int32:
		w = float64(n)
	case int64:
		w = float64(n)
	case uint:
		w = float64(n)
	case uint32:
		w = float64(n)
	case uint64:
		w = float64(n)
	case *float64:
		if n == nil {
			return nil
		}
		w = *n
	default:
		return nil
	}
	return &w
}
