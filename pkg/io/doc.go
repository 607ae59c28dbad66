// Package io provides JSON import and export for reconstructed material
// graphs.
//
// # Overview
//
// This package serializes [material.Graph] values to and from a stable JSON
// document. The format is designed for:
//
//   - Handing reconstructed graphs to external tools
//   - Caching import results for later rendering or inspection
//   - Round-trip preservation: import, export, and re-import identically
//
// # JSON Format
//
// The document mirrors the graph's attached state:
//
//	{
//	  "name": "M_Rock",
//	  "unit": "Material",
//	  "nodes": [
//	    {"name": "MaterialExpressionAdd_0", "kind": "MaterialExpressionAdd", ...}
//	  ],
//	  "comments": [
//	    {"text": "UV setup", ...}
//	  ],
//	  "properties": {
//	    "BaseColor": {"node": "MaterialExpressionAdd_0"}
//	  }
//	}
//
// Nodes appear in attachment order. Arena-only nodes, such as those of an
// isolated subgraph import, are not part of the serialized form.
//
// # Import
//
// Use [ImportJSON] to read a graph from a file path, or [ReadJSON] to read
// from any io.Reader:
//
//	g, err := io.ImportJSON("graph.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The returned graph is independent of the reader and can be modified
// freely after import.
//
// # Export
//
// Use [ExportJSON] to write a graph to a file, or [WriteJSON] to write to
// any io.Writer:
//
//	err := io.ExportJSON(g, "graph.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The export preserves node order, comments, unit properties, and missing
// reference markers, so a re-imported graph renders identically.
package io
