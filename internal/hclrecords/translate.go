package hclrecords

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/treegridgo/internal/schema"
	"github.com/vk/treegridgo/tree"
)

// translateRecord converts one decoded record block into the schema-less
// map shape the engine's MapAdapter reads under the default field bindings.
// Attrs entries are flattened alongside the bound fields, so they surface
// as extra attributes on the assembled node.
func translateRecord(rec *schema.Record) (map[string]any, error) {
	m := map[string]any{
		tree.DefaultIDKey:       rec.ID,
		tree.DefaultParentIDKey: rec.Parent,
	}
	if rec.Name != "" {
		m[tree.DefaultNameKey] = rec.Name
	}
	if rec.Weight != nil {
		m[tree.DefaultWeightKey] = *rec.Weight
	}

	if rec.Attrs == nil {
		return m, nil
	}
	val, diags := rec.Attrs.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to evaluate attrs: %w", diags)
	}
	if val.IsNull() {
		return m, nil
	}
	if !val.Type().IsObjectType() && !val.Type().IsMapType() {
		return nil, fmt.Errorf("attrs must be an object, got %s", val.Type().FriendlyName())
	}
	for it := val.ElementIterator(); it.Next(); {
		k, v := it.Element()
		m[k.AsString()] = nativeFromCty(v)
	}
	return m, nil
}

// nativeFromCty lowers a cty value into plain Go values for the engine's
// extra-attribute maps. Unknown values come out as nil; capsule types do
// not occur in record files.
func nativeFromCty(v cty.Value) any {
	if v.IsNull() || !v.IsKnown() {
		return nil
	}
	t := v.Type()
	switch {
	case t == cty.String:
		return v.AsString()
	case t == cty.Number:
		f, _ := v.AsBigFloat().Float64()
		return f
	case t == cty.Bool:
		return v.True()
	case t.IsTupleType() || t.IsListType() || t.IsSetType():
		var out []any
		for it := v.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			out = append(out, nativeFromCty(ev))
		}
		return out
	case t.IsObjectType() || t.IsMapType():
		out := make(map[string]any)
		for it := v.ElementIterator(); it.Next(); {
			k, ev := it.Element()
			out[k.AsString()] = nativeFromCty(ev)
		}
		return out
	default:
		return nil
	}
}
