// Package nodelink renders reconstructed material graphs as node-link diagrams.
//
// # Overview
//
// This package produces directed graph visualizations using Graphviz, where
// expressions appear as boxes connected by labeled arrows following the data
// flow left to right. Editor comments reappear as dashed clusters around the
// nodes they enclose, and the unit itself shows up as a terminal box fed by
// its wired output properties.
//
// # Usage
//
// Convert a graph to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Detailed: When true, node labels include editor coordinates and the
//     asset paths the node references.
//
// # DOT Format
//
// The [ToDOT] function produces Graphviz DOT source that can be:
//
//   - Rendered directly via [RenderSVG] or [RenderPNG]
//   - Saved and processed with external Graphviz tools
//   - Customized before rendering
//
// The generated DOT uses left-to-right layout (rankdir=LR) with rounded box
// nodes, matching the orientation of the material editor. Parameter nodes
// are labeled with their parameter name and filled yellow; nodes whose asset
// references stayed missing are outlined dashed red.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering, so no system Graphviz installation is needed.
package nodelink
