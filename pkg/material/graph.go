package material

import "encoding/json"

// UnitKind distinguishes the two importable graph units.
type UnitKind string

const (
	UnitMaterial UnitKind = "Material"
	UnitFunction UnitKind = "MaterialFunction"
)

// Graph owns every node reconstructed for one import unit. Nodes live in a
// name-keyed arena from the moment they are created; the ordered collection
// holds only nodes that were attached to the unit, in attachment order.
// Connections store node names, so resolving one is an arena lookup.
type Graph struct {
	name     string
	unit     UnitKind
	nodes    map[string]*Node
	order    []*Node
	comments []*Comment
	props    map[string]Connection
}

// NewGraph returns an empty graph for the named unit.
func NewGraph(name string, unit UnitKind) *Graph {
	return &Graph{
		name:  name,
		unit:  unit,
		nodes: make(map[string]*Node),
	}
}

// Name returns the unit name the graph was built for.
func (g *Graph) Name() string { return g.name }

// Unit returns the unit kind.
func (g *Graph) Unit() UnitKind { return g.unit }

// Put registers a node in the arena under its name. Registering does not
// attach; placeholders enter the arena first and join the collection later.
func (g *Graph) Put(n *Node) {
	g.nodes[n.Name] = n
}

// Node returns the arena entry for name, or nil.
func (g *Graph) Node(name string) *Node { return g.nodes[name] }

// Has reports whether the arena holds an entry for name.
func (g *Graph) Has(name string) bool {
	_, ok := g.nodes[name]
	return ok
}

// Attach appends a node to the ordered collection, registering it in the
// arena first if needed.
func (g *Graph) Attach(n *Node) {
	if _, ok := g.nodes[n.Name]; !ok {
		g.nodes[n.Name] = n
	}
	g.order = append(g.order, n)
}

// Nodes returns the attached nodes in attachment order. The slice is shared
// with the graph.
func (g *Graph) Nodes() []*Node { return g.order }

// Len returns the number of attached nodes.
func (g *Graph) Len() int { return len(g.order) }

// Resolve follows a connection to its upstream node. It returns nil for
// unwired connections and for names absent from the arena.
func (g *Graph) Resolve(c Connection) *Node {
	if !c.Connected() {
		return nil
	}
	return g.nodes[c.Node]
}

// AddComment appends a reconstructed comment box.
func (g *Graph) AddComment(c *Comment) {
	g.comments = append(g.comments, c)
}

// Comments returns the comment boxes in reconstruction order.
func (g *Graph) Comments() []*Comment { return g.comments }

// SetProperty wires one unit-level property input, such as a material
// output pin.
func (g *Graph) SetProperty(name string, c Connection) {
	if g.props == nil {
		g.props = make(map[string]Connection)
	}
	g.props[name] = c
}

// Property returns the connection wired to a unit-level property.
func (g *Graph) Property(name string) (Connection, bool) {
	c, ok := g.props[name]
	return c, ok
}

// Properties returns the unit-level property map. The map is shared with
// the graph and may be nil.
func (g *Graph) Properties() map[string]Connection { return g.props }

type graphJSON struct {
	Name       string                `json:"name"`
	Unit       UnitKind              `json:"unit"`
	Nodes      []*Node               `json:"nodes"`
	Comments   []*Comment            `json:"comments,omitempty"`
	Properties map[string]Connection `json:"properties,omitempty"`
}

// MarshalJSON writes the attached nodes in order together with comments and
// unit properties. Arena-only nodes, such as those of an isolated subgraph,
// are not part of the serialized form.
func (g *Graph) MarshalJSON() ([]byte, error) {
	return json.Marshal(graphJSON{
		Name:       g.name,
		Unit:       g.unit,
		Nodes:      g.order,
		Comments:   g.comments,
		Properties: g.props,
	})
}

// UnmarshalJSON rebuilds the graph from its serialized form, repopulating
// the arena from the node list.
func (g *Graph) UnmarshalJSON(data []byte) error {
	var doc graphJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	g.name = doc.Name
	g.unit = doc.Unit
	g.nodes = make(map[string]*Node, len(doc.Nodes))
	g.order = g.order[:0]
	for _, n := range doc.Nodes {
		g.Attach(n)
	}
	g.comments = doc.Comments
	g.props = doc.Properties
	return nil
}
