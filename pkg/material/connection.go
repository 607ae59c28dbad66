package material

import "fmt"

// Variant selects the shape of an input descriptor. All variants share the
// generic connection core; the non-generic ones add an inline constant that
// applies when no upstream node is wired.
type Variant uint8

const (
	VariantGeneric Variant = iota
	VariantColor
	VariantScalar
	VariantVector
)

var variantNames = [...]string{"generic", "color", "scalar", "vector"}

func (v Variant) String() string {
	if int(v) < len(variantNames) {
		return variantNames[v]
	}
	return fmt.Sprintf("variant(%d)", uint8(v))
}

// MarshalText renders the variant as its lowercase name.
func (v Variant) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText accepts the names produced by MarshalText.
func (v *Variant) UnmarshalText(text []byte) error {
	for i, name := range variantNames {
		if string(text) == name {
			*v = Variant(i)
			return nil
		}
	}
	return fmt.Errorf("material: unknown variant %q", text)
}

// Connection is one decoded input: the name of the upstream node (empty when
// unwired), the selected output, channel masks, and for the non-generic
// variants an inline constant.
type Connection struct {
	Node        string `json:"node,omitempty"`
	OutputIndex int    `json:"output_index,omitempty"`
	InputName   string `json:"input_name,omitempty"`
	Mask        int    `json:"mask,omitempty"`
	MaskR       int    `json:"mask_r,omitempty"`
	MaskG       int    `json:"mask_g,omitempty"`
	MaskB       int    `json:"mask_b,omitempty"`
	MaskA       int    `json:"mask_a,omitempty"`

	Variant     Variant `json:"variant,omitempty"`
	UseConstant bool    `json:"use_constant,omitempty"`
	ConstColor  Color   `json:"const_color,omitzero"`
	ConstScalar float64 `json:"const_scalar,omitempty"`
	ConstVector Vector  `json:"const_vector,omitzero"`
}

// Connected reports whether the connection names an upstream node. The
// constant portion of a non-generic variant is meaningful either way.
func (c Connection) Connected() bool { return c.Node != "" }

// AssetRef is a resolved reference to another asset. Path is the full object
// path from the source document; Missing marks references that stayed
// unresolved after recovery.
type AssetRef struct {
	Path    string `json:"path"`
	Missing bool   `json:"missing,omitempty"`
}

// ShortPath trims an object path to its package part, everything before the
// first dot.
func ShortPath(path string) string {
	for i := 0; i < len(path); i++ {
		if path[i] == '.' {
			return path[:i]
		}
	}
	return path
}
