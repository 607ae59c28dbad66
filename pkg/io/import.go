package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matforge/matforge/pkg/material"
)

// ReadJSON decodes a JSON graph document from r.
//
// The input must be an object with "name", "unit" and "nodes" fields, as
// produced by [WriteJSON]. Comments and unit properties are optional.
// ReadJSON returns an error when the JSON is malformed; unknown node fields
// are ignored so documents from newer exporters still load.
//
// The returned graph is independent of r and can be modified safely after
// ReadJSON returns. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*material.Graph, error) {
	var g material.Graph
	if err := json.NewDecoder(r).Decode(&g); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return &g, nil
}

// ImportJSON reads a JSON graph file at path and returns the decoded graph.
//
// ImportJSON opens the file, decodes it using [ReadJSON], and closes the
// file. Errors wrap the underlying cause with the file path for context.
func ImportJSON(path string) (*material.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	g, err := ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", path, err)
	}
	return g, nil
}
