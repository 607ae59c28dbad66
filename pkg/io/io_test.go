package io

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matforge/matforge/pkg/material"
)

func buildGraph(t *testing.T) *material.Graph {
	t.Helper()
	g := material.NewGraph("M_Rock", material.UnitMaterial)

	uv := material.NewNode("M_Rock", "MaterialExpressionTextureCoordinate_0", "MaterialExpressionTextureCoordinate")
	tex := material.NewNode("M_Rock", "MaterialExpressionTextureSample_0", "MaterialExpressionTextureSample")
	tex.SetInput("Coordinates", material.Connection{Node: uv.Name})
	tex.SetRef("Texture", material.AssetRef{Path: "/Game/Tex/T_Rock.T_Rock"})
	g.Attach(uv)
	g.Attach(tex)

	g.AddComment(&material.Comment{Name: "MaterialExpressionComment_0", Text: "UV setup", EditorX: -300, EditorY: -100, SizeX: 500, SizeY: 300})
	g.SetProperty("BaseColor", material.Connection{Node: tex.Name})
	return g
}

func TestWriteReadRoundTrip(t *testing.T) {
	g := buildGraph(t)

	var buf bytes.Buffer
	if err := WriteJSON(g, &buf); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}

	back, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON() error: %v", err)
	}

	if back.Name() != "M_Rock" || back.Unit() != material.UnitMaterial {
		t.Errorf("identity = %s/%s, want M_Rock/Material", back.Name(), back.Unit())
	}
	if back.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", back.Len())
	}

	names := make([]string, 0, 2)
	for _, n := range back.Nodes() {
		names = append(names, n.Name)
	}
	want := []string{"MaterialExpressionTextureCoordinate_0", "MaterialExpressionTextureSample_0"}
	for i, n := range want {
		if names[i] != n {
			t.Errorf("node order[%d] = %s, want %s", i, names[i], n)
		}
	}

	tex := back.Node("MaterialExpressionTextureSample_0")
	if tex == nil {
		t.Fatal("texture sample node missing after round trip")
	}
	if tex.Refs["Texture"].Path != "/Game/Tex/T_Rock.T_Rock" {
		t.Errorf("Texture ref = %q, want original path", tex.Refs["Texture"].Path)
	}
	if c, ok := back.Property("BaseColor"); !ok || c.Node != "MaterialExpressionTextureSample_0" {
		t.Errorf("BaseColor property = %q, want texture sample", c.Node)
	}
	if len(back.Comments()) != 1 || back.Comments()[0].Text != "UV setup" {
		t.Errorf("comments not preserved: %+v", back.Comments())
	}
}

func TestExportImportFile(t *testing.T) {
	g := buildGraph(t)
	path := filepath.Join(t.TempDir(), "graph.json")

	if err := ExportJSON(g, path); err != nil {
		t.Fatalf("ExportJSON() error: %v", err)
	}

	back, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON() error: %v", err)
	}
	if back.Name() != g.Name() || back.Len() != g.Len() {
		t.Errorf("round trip = %s/%d nodes, want %s/%d", back.Name(), back.Len(), g.Name(), g.Len())
	}
}

func TestImportJSONMissingFile(t *testing.T) {
	_, err := ImportJSON(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Fatal("ImportJSON() on missing file should fail")
	}
	if !strings.Contains(err.Error(), "absent.json") {
		t.Errorf("error %q should name the file", err)
	}
}

func TestReadJSONMalformed(t *testing.T) {
	_, err := ReadJSON(strings.NewReader("{not json"))
	if err == nil {
		t.Fatal("ReadJSON() on malformed input should fail")
	}
}
