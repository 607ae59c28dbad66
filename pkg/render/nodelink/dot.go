package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matforge/matforge/pkg/material"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes editor coordinates and referenced asset paths in
	// node labels. When false, labels carry the display name and kind only.
	Detailed bool
}

// ToDOT converts a reconstructed graph to Graphviz DOT format. Every
// attached node becomes a rounded box, every wired connection an edge
// labeled with its input name, and every editor comment a dashed cluster
// around the nodes it encloses. When the unit has wired output properties,
// the unit itself appears as a terminal box fed by them.
//
// The resulting DOT string can be rendered using [RenderSVG], [RenderPNG],
// or external Graphviz tools.
func ToDOT(g *material.Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.7;\n")
	buf.WriteString("  nodesep=0.4;\n")
	buf.WriteString("\n")

	// Clusters must be disjoint, so each node is claimed by at most one
	// comment.
	claimed := make(map[string]bool)
	for i, c := range g.Comments() {
		members := enclosed(g, c, claimed)
		fmt.Fprintf(&buf, "  subgraph cluster_%d {\n", i)
		fmt.Fprintf(&buf, "    label=%q;\n", c.Text)
		buf.WriteString("    style=dashed;\n")
		for _, n := range members {
			writeNode(&buf, "    ", n, opts)
		}
		buf.WriteString("  }\n")
	}

	for _, n := range g.Nodes() {
		if claimed[n.Name] {
			continue
		}
		writeNode(&buf, "  ", n, opts)
	}

	props := g.Properties()
	if len(props) > 0 {
		label := g.Name() + "\n" + string(g.Unit())
		fmt.Fprintf(&buf, "  %q [label=%q, style=\"rounded,filled,bold\"];\n", g.Name(), label)
	}

	buf.WriteString("\n")
	for _, n := range g.Nodes() {
		writeEdges(&buf, g, n)
	}
	for _, name := range slices.Sorted(maps.Keys(props)) {
		c := props[name]
		if c.Connected() && g.Has(c.Node) {
			fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", c.Node, g.Name(), name)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeNode(buf *bytes.Buffer, indent string, n *material.Node, opts Options) {
	label := fmtLabel(n, opts.Detailed)
	attrs := fmtAttrs(n, label)
	fmt.Fprintf(buf, "%s%q [%s];\n", indent, n.Name, strings.Join(attrs, ", "))
}

// writeEdges emits one edge per wired connection feeding n, upstream node
// first so arrows follow the data flow.
func writeEdges(buf *bytes.Buffer, g *material.Graph, n *material.Node) {
	edge := func(c material.Connection, label string) {
		if !c.Connected() || !g.Has(c.Node) {
			return
		}
		fmt.Fprintf(buf, "  %q -> %q [label=%q];\n", c.Node, n.Name, label)
	}

	for _, key := range slices.Sorted(maps.Keys(n.Inputs)) {
		edge(n.Inputs[key], key)
	}
	for i, c := range n.Slots {
		edge(c, strconv.Itoa(i))
	}
	for _, fi := range n.FuncInputs {
		edge(fi.Input, pinLabel(fi.Input, "In"))
	}
	for _, l := range n.Layers {
		edge(l.LayerInput, "Layer "+l.Name)
		edge(l.HeightInput, "Height "+l.Name)
	}
	for _, gs := range n.Grass {
		edge(gs.Input, gs.Name)
	}
	for i, p := range n.Physical {
		edge(p.Input, strconv.Itoa(i))
	}
	for _, ci := range n.CodeInputs {
		edge(ci.Input, ci.Name)
	}
}

// fmtLabel builds the display label. Parameters show their parameter name
// instead of the generated node name; the kind sits below.
func fmtLabel(n *material.Node, detailed bool) string {
	name := n.Name
	if p := n.Strings["ParameterName"]; p != "" {
		name = p
	}
	label := name + "\n" + displayKind(n.Kind)
	if !detailed {
		return label
	}

	parts := []string{fmt.Sprintf("at: %d,%d", n.EditorX, n.EditorY)}
	for _, k := range slices.Sorted(maps.Keys(n.Refs)) {
		parts = append(parts, fmt.Sprintf("%s: %s", k, n.Refs[k].Path))
	}
	return label + "\n" + strings.Join(parts, "\n")
}

func fmtAttrs(n *material.Node, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	switch {
	case hasMissingRef(n):
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "color=red")
	case n.Strings["ParameterName"] != "":
		attrs = append(attrs, "fillcolor=lightyellow")
	}
	return attrs
}

// displayKind trims the shared class prefix so labels stay readable.
func displayKind(k material.Kind) string {
	if s := strings.TrimPrefix(string(k), "MaterialExpression"); s != "" {
		return s
	}
	return string(k)
}

func hasMissingRef(n *material.Node) bool {
	for _, r := range n.Refs {
		if r.Missing {
			return true
		}
	}
	for _, gs := range n.Grass {
		if gs.GrassType.Missing {
			return true
		}
	}
	for _, p := range n.Physical {
		if p.Material.Missing {
			return true
		}
	}
	return false
}

// pinLabel prefers the pin name carried by the connection itself.
func pinLabel(c material.Connection, fallback string) string {
	if c.InputName != "" {
		return c.InputName
	}
	return fallback
}

// enclosed returns the attached nodes whose editor position falls inside the
// comment box, claiming each so later comments skip it.
func enclosed(g *material.Graph, c *material.Comment, claimed map[string]bool) []*material.Node {
	var members []*material.Node
	for _, n := range g.Nodes() {
		if claimed[n.Name] {
			continue
		}
		if n.EditorX >= c.EditorX && n.EditorX < c.EditorX+c.SizeX &&
			n.EditorY >= c.EditorY && n.EditorY < c.EditorY+c.SizeY {
			claimed[n.Name] = true
			members = append(members, n)
		}
	}
	return members
}

// RenderSVG renders a DOT graph to SVG using the embedded Graphviz runtime.
// No system Graphviz installation is required.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	svg, err := render(ctx, dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(svg), nil
}

// RenderPNG renders a DOT graph to PNG using the embedded Graphviz runtime.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}

func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the svg root tag so the viewBox starts at the
// origin and explicit pixel dimensions are present, which embedding
// consumers expect.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
