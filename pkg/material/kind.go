package material

import (
	"maps"
	"slices"
)

// Kind is the expression class name carried by a source record, with any
// script-class wrapping already stripped.
type Kind string

func (k Kind) String() string { return string(k) }

// Namespace groups kinds by the engine module that defines them. Imports
// can disable whole namespaces; a kind from a disabled namespace is treated
// as unsupported.
type Namespace string

const (
	NamespaceEngine      Namespace = "engine"
	NamespaceLandscape   Namespace = "landscape"
	NamespaceInterchange Namespace = "interchange"
)

// CapSet marks the shared property tiers a kind participates in. Tiers
// correspond to intermediate classes of the expression hierarchy and are
// populated after the kind's own table rows.
type CapSet uint8

const (
	// CapTextureSample adds sampler state and the coordinate inputs.
	CapTextureSample CapSet = 1 << iota
	// CapTextureSampleParameter adds parameter identity plus channel names.
	CapTextureSampleParameter
	// CapParameter adds parameter identity for non-texture parameters.
	CapParameter
	// CapTextureBase adds the texture reference and sampler type.
	CapTextureBase
)

// Has reports whether every tier in want is present.
func (c CapSet) Has(want CapSet) bool { return c&want == want }

// FieldKind selects the decoder for one table row.
type FieldKind uint8

const (
	FieldScalar FieldKind = iota
	FieldInt
	FieldBool
	FieldString
	FieldEnum
	FieldGUID
	FieldColor
	FieldVector2
	FieldVector
	FieldVector4
	FieldStringList
	FieldGUIDList
	FieldChannelNames
)

// FieldSpec declares one plain property: the JSON key it decodes from and
// the decoder to use. Enum rows name their table.
type FieldSpec struct {
	Key  string
	Kind FieldKind
	Enum *EnumTable
}

// InputSpec declares one connection property. Keys lists the accepted JSON
// spellings in probe order; the first present key wins. Field is the
// canonical name the connection is stored under.
type InputSpec struct {
	Keys    []string
	Field   string
	Variant Variant
}

// RefSpec declares one asset reference. Recover marks references the
// importer may try to fetch when resolution fails; Label, when set, names
// the notification raised for references that stay missing.
type RefSpec struct {
	Key       string
	Label     string
	Recover   bool
	Recompile bool
}

// ArrayKind selects the decoder for a structured array property.
type ArrayKind uint8

const (
	// ArrayInputSlots decodes an ordered connection array. Null elements
	// keep their position as unwired slots.
	ArrayInputSlots ArrayKind = iota
	ArrayFunctionInputs
	ArrayFunctionOutputs
	ArrayBlendLayers
	ArrayGrassSlots
	ArrayPhysicalSlots
	ArrayCodeInputs
	ArrayCodeOutputs
	ArrayCodeDefines
)

// ArraySpec declares one structured array property.
type ArraySpec struct {
	Key  string
	Kind ArrayKind
}

// Spec is the declarative population recipe for one kind: which namespace
// it belongs to, which kinds it extends, and the properties to decode in
// table order.
type Spec struct {
	Namespace Namespace
	Bases     []Kind
	Fields    []FieldSpec
	Inputs    []InputSpec
	Refs      []RefSpec
	Arrays    []ArraySpec
	Caps      CapSet
}

// Space returns the namespace, defaulting to engine.
func (s Spec) Space() Namespace {
	if s.Namespace == "" {
		return NamespaceEngine
	}
	return s.Namespace
}

// Bare reports whether the spec contributes nothing beyond the common
// wrapper properties.
func (s Spec) Bare() bool {
	return len(s.Bases) == 0 && len(s.Fields) == 0 && len(s.Inputs) == 0 &&
		len(s.Refs) == 0 && len(s.Arrays) == 0 && s.Caps == 0
}

// Registry holds the kind table. The builtin registry covers every kind the
// importer knows how to populate; anything absent from it is unsupported.
type Registry struct {
	specs map[Kind]Spec
}

// Lookup returns the spec registered for a kind.
func (r *Registry) Lookup(k Kind) (Spec, bool) {
	s, ok := r.specs[k]
	return s, ok
}

// Flatten returns the population chain for a kind: base specs depth-first,
// then the kind's own. Kinds visited twice through diamond bases appear
// once.
func (r *Registry) Flatten(k Kind) []Spec {
	var chain []Spec
	seen := make(map[Kind]bool)
	var walk func(Kind)
	walk = func(k Kind) {
		if seen[k] {
			return
		}
		seen[k] = true
		s, ok := r.specs[k]
		if !ok {
			return
		}
		for _, b := range s.Bases {
			walk(b)
		}
		chain = append(chain, s)
	}
	walk(k)
	return chain
}

// Caps returns the union of capability tiers across the population chain.
func (r *Registry) Caps(k Kind) CapSet {
	var caps CapSet
	for _, s := range r.Flatten(k) {
		caps |= s.Caps
	}
	return caps
}

// Kinds returns every registered kind in sorted order.
func (r *Registry) Kinds() []Kind {
	return slices.Sorted(maps.Keys(r.specs))
}

var builtin = newRegistry()

// Builtin returns the registry of every supported kind.
func Builtin() *Registry { return builtin }
