// Package material defines the in-memory representation of a reconstructed
// expression graph: typed nodes with name-keyed connections, comment
// annotations, and the declarative kind table that drives property
// population during import.
package material

// Color is an RGBA literal decoded from an {R, G, B, A} object.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// Vector is a float quad decoded from an {X, Y, Z, W} object. Fields
// declared with fewer components leave the trailing components zero.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
	W float64 `json:"w,omitempty"`
}

// Enum is a resolved enum value: the canonical short name plus its table
// position. Unresolvable enum text never produces an Enum; the field keeps
// its prior default instead.
type Enum struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// OutputSlot is one declared output pin: a display name plus the five
// channel-mask fields.
type OutputSlot struct {
	Name  string `json:"name,omitempty"`
	Mask  int    `json:"mask,omitempty"`
	MaskR int    `json:"mask_r,omitempty"`
	MaskG int    `json:"mask_g,omitempty"`
	MaskB int    `json:"mask_b,omitempty"`
	MaskA int    `json:"mask_a,omitempty"`
}

// ChannelNames carries the per-channel display labels of a parameter that
// exposes them (vector parameters and texture sample parameters).
type ChannelNames struct {
	R string `json:"r,omitempty"`
	G string `json:"g,omitempty"`
	B string `json:"b,omitempty"`
	A string `json:"a,omitempty"`
}
