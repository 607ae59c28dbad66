package material

import "github.com/google/uuid"

// Node is one reconstructed expression. Properties live in typed name-keyed
// maps so a kind can carry any subset without per-kind struct types; the
// kind table decides which keys are decoded. Maps stay nil until the first
// set, so an absent property reads as the zero value.
type Node struct {
	Name  string `json:"name"`
	Kind  Kind   `json:"kind"`
	Owner string `json:"owner,omitempty"`

	EditorX int       `json:"editor_x,omitempty"`
	EditorY int       `json:"editor_y,omitempty"`
	GUID    uuid.UUID `json:"guid,omitzero"`
	Desc    string    `json:"desc,omitempty"`

	CommentBubbleVisible bool `json:"comment_bubble_visible,omitempty"`
	Collapsed            bool `json:"collapsed,omitempty"`
	RealtimePreview      bool `json:"realtime_preview,omitempty"`
	ShowOutputNameOnPin  bool `json:"show_output_name_on_pin,omitempty"`

	Outputs []OutputSlot `json:"outputs,omitempty"`

	Scalars   map[string]float64     `json:"scalars,omitempty"`
	Ints      map[string]int         `json:"ints,omitempty"`
	Bools     map[string]bool        `json:"bools,omitempty"`
	Strings   map[string]string      `json:"strings,omitempty"`
	Enums     map[string]Enum        `json:"enums,omitempty"`
	GUIDs     map[string]uuid.UUID   `json:"guids,omitempty"`
	Colors    map[string]Color       `json:"colors,omitempty"`
	Vectors   map[string]Vector      `json:"vectors,omitempty"`
	Inputs    map[string]Connection  `json:"inputs,omitempty"`
	Refs      map[string]AssetRef    `json:"refs,omitempty"`
	Lists     map[string][]string    `json:"lists,omitempty"`
	GUIDLists map[string][]uuid.UUID `json:"guid_lists,omitempty"`

	Channels *ChannelNames `json:"channels,omitempty"`

	// Slots holds positional inputs for kinds whose connections arrive as
	// an ordered array. A null element keeps its index as an unwired slot.
	Slots []Connection `json:"slots,omitempty"`

	FuncInputs  []FunctionInputSlot  `json:"func_inputs,omitempty"`
	FuncOutputs []FunctionOutputSlot `json:"func_outputs,omitempty"`
	Layers      []BlendLayer         `json:"layers,omitempty"`
	Grass       []GrassSlot          `json:"grass,omitempty"`
	Physical    []PhysicalSlot       `json:"physical,omitempty"`
	CodeInputs  []CodeInput          `json:"code_inputs,omitempty"`
	CodeOutputs []CodeOutput         `json:"code_outputs,omitempty"`
	Defines     []CodeDefine         `json:"defines,omitempty"`
}

// NewNode returns an empty node of the given kind. Everything beyond the
// identity triple is populated later from the source record.
func NewNode(owner, name string, kind Kind) *Node {
	return &Node{Name: name, Kind: kind, Owner: owner}
}

func (n *Node) SetScalar(key string, v float64) {
	if n.Scalars == nil {
		n.Scalars = make(map[string]float64)
	}
	n.Scalars[key] = v
}

func (n *Node) SetInt(key string, v int) {
	if n.Ints == nil {
		n.Ints = make(map[string]int)
	}
	n.Ints[key] = v
}

func (n *Node) SetBool(key string, v bool) {
	if n.Bools == nil {
		n.Bools = make(map[string]bool)
	}
	n.Bools[key] = v
}

func (n *Node) SetString(key, v string) {
	if n.Strings == nil {
		n.Strings = make(map[string]string)
	}
	n.Strings[key] = v
}

func (n *Node) SetEnum(key string, v Enum) {
	if n.Enums == nil {
		n.Enums = make(map[string]Enum)
	}
	n.Enums[key] = v
}

func (n *Node) SetGUID(key string, v uuid.UUID) {
	if n.GUIDs == nil {
		n.GUIDs = make(map[string]uuid.UUID)
	}
	n.GUIDs[key] = v
}

func (n *Node) SetColor(key string, v Color) {
	if n.Colors == nil {
		n.Colors = make(map[string]Color)
	}
	n.Colors[key] = v
}

func (n *Node) SetVector(key string, v Vector) {
	if n.Vectors == nil {
		n.Vectors = make(map[string]Vector)
	}
	n.Vectors[key] = v
}

func (n *Node) SetInput(key string, c Connection) {
	if n.Inputs == nil {
		n.Inputs = make(map[string]Connection)
	}
	n.Inputs[key] = c
}

func (n *Node) SetRef(key string, r AssetRef) {
	if n.Refs == nil {
		n.Refs = make(map[string]AssetRef)
	}
	n.Refs[key] = r
}

func (n *Node) SetList(key string, v []string) {
	if n.Lists == nil {
		n.Lists = make(map[string][]string)
	}
	n.Lists[key] = v
}

func (n *Node) SetGUIDList(key string, v []uuid.UUID) {
	if n.GUIDLists == nil {
		n.GUIDLists = make(map[string][]uuid.UUID)
	}
	n.GUIDLists[key] = v
}

// Input returns the named connection, or a zero connection when unset.
func (n *Node) Input(key string) Connection { return n.Inputs[key] }

// FunctionInputSlot binds one input pin of a function-call node to its
// per-call connection.
type FunctionInputSlot struct {
	ID    uuid.UUID  `json:"id"`
	Input Connection `json:"input"`
}

// FunctionOutputSlot mirrors one declared output pin of the called function.
type FunctionOutputSlot struct {
	ID     uuid.UUID  `json:"id"`
	Output OutputSlot `json:"output"`
}

// BlendLayer is one entry of a layer-blend node.
type BlendLayer struct {
	Name             string     `json:"name,omitempty"`
	BlendType        Enum       `json:"blend_type,omitzero"`
	LayerInput       Connection `json:"layer_input,omitzero"`
	HeightInput      Connection `json:"height_input,omitzero"`
	PreviewWeight    float64    `json:"preview_weight,omitempty"`
	ConstLayerInput  Vector     `json:"const_layer_input,omitzero"`
	ConstHeightInput float64    `json:"const_height_input,omitempty"`
}

// GrassSlot pairs a grass type asset with the weight connection feeding it.
type GrassSlot struct {
	Name      string     `json:"name,omitempty"`
	GrassType AssetRef   `json:"grass_type,omitzero"`
	Input     Connection `json:"input,omitzero"`
}

// PhysicalSlot pairs a physical material asset with its weight connection.
type PhysicalSlot struct {
	Material AssetRef   `json:"material,omitzero"`
	Input    Connection `json:"input,omitzero"`
}

// CodeInput is one named input pin of a custom-code node.
type CodeInput struct {
	Name  string     `json:"name,omitempty"`
	Input Connection `json:"input,omitzero"`
}

// CodeOutput is one additional output pin of a custom-code node.
type CodeOutput struct {
	Name string `json:"name,omitempty"`
	Type Enum   `json:"type,omitzero"`
}

// CodeDefine is one preprocessor define of a custom-code node.
type CodeDefine struct {
	Name  string `json:"name,omitempty"`
	Value string `json:"value,omitempty"`
}

// Comment is a reconstructed editor comment box. Comments carry layout and
// text only and never join the node arena.
type Comment struct {
	Name     string    `json:"name"`
	Text     string    `json:"text,omitempty"`
	SizeX    int       `json:"size_x,omitempty"`
	SizeY    int       `json:"size_y,omitempty"`
	Color    Color     `json:"color,omitzero"`
	FontSize int       `json:"font_size,omitempty"`
	EditorX  int       `json:"editor_x,omitempty"`
	EditorY  int       `json:"editor_y,omitempty"`
	GUID     uuid.UUID `json:"guid,omitzero"`
	Desc     string    `json:"desc,omitempty"`

	BubbleVisible bool `json:"bubble_visible,omitempty"`
	Collapsed     bool `json:"collapsed,omitempty"`
}
