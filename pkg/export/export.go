// Package export models the flat export table emitted by the asset exporter.
//
// An export document is a JSON array of records, each describing one
// serialized entity: its name, kind tag, declaring outer scope and an untyped
// property bag. [ParseDocument] decodes a document, [Partition] splits one
// import unit's records into the editor-metadata record and the name-indexed
// node declarations the importer consumes.
package export

import "strings"

// Record is one serialized entity description. Immutable once parsed; its
// lifetime is one import operation.
type Record struct {
	// Name uniquely identifies the record within one import unit.
	Name string

	// Kind is the declared type tag driving dispatch
	// (e.g. "MaterialExpressionAdd").
	Kind string

	// Outer names the declaring scope, used for subgraph isolation.
	Outer string

	// Properties is the raw key-value bag.
	Properties Bag
}

// Bag is an untyped property map as decoded by encoding/json. Accessors
// implement the universal population contract: a present, well-shaped key
// reports ok; anything else reads as absent so the caller keeps its prior
// default.
type Bag map[string]any

// Float reads a numeric property.
func (b Bag) Float(key string) (float64, bool) {
	v, ok := b[key].(float64)
	return v, ok
}

// Int reads a numeric property truncated to int.
func (b Bag) Int(key string) (int, bool) {
	v, ok := b[key].(float64)
	return int(v), ok
}

// Bool reads a boolean property.
func (b Bag) Bool(key string) (bool, bool) {
	v, ok := b[key].(bool)
	return v, ok
}

// String reads a string property.
func (b Bag) String(key string) (string, bool) {
	v, ok := b[key].(string)
	return v, ok
}

// Object reads a nested object property.
func (b Bag) Object(key string) (Bag, bool) {
	v, ok := b[key].(map[string]any)
	if !ok {
		return nil, false
	}
	return Bag(v), true
}

// Array reads an array property.
func (b Bag) Array(key string) ([]any, bool) {
	v, ok := b[key].([]any)
	return v, ok
}

// Objects reads an array property, keeping only its object elements in
// order. Null and mis-shaped elements are skipped.
func (b Bag) Objects(key string) ([]Bag, bool) {
	arr, ok := b.Array(key)
	if !ok {
		return nil, false
	}
	out := make([]Bag, 0, len(arr))
	for _, v := range arr {
		if obj, ok := v.(map[string]any); ok {
			out = append(out, Bag(obj))
		}
	}
	return out, true
}

// Strings reads an array property, keeping only its string elements in order.
func (b Bag) Strings(key string) ([]string, bool) {
	arr, ok := b.Array(key)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(arr))
	for _, v := range arr {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out, true
}

// NormalizeKind strips a "Class'...'" style wrapper from a kind tag.
// Plain tags pass through unchanged.
func NormalizeKind(kind string) string {
	i := strings.IndexByte(kind, '\'')
	if i < 0 {
		return kind
	}
	rest := kind[i+1:]
	if j := strings.IndexByte(rest, '\''); j >= 0 {
		return rest[:j]
	}
	return rest
}

// SubobjectName extracts the bare export name from an ObjectName reference
// like "MaterialExpressionAdd'MaterialExpressionAdd_13'". Dots are stripped
// and only the last colon-separated segment is kept, so fully qualified
// "Package.Object:Sub" forms resolve to the subobject.
func SubobjectName(objectName string) string {
	name := NormalizeKind(objectName)
	name = strings.ReplaceAll(name, ".", "")
	if i := strings.LastIndexByte(name, ':'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
