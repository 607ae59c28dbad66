package importer

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/matforge/matforge/pkg/export"
	"github.com/matforge/matforge/pkg/material"
)

// importOne runs a single-expression document and returns the populated node.
func importOne(t *testing.T, imp *Importer, rec export.Record) *material.Node {
	t.Helper()
	g, _, err := imp.Import(context.Background(), []export.Record{unitRecord(nil), rec}, Options{})
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	node := g.Node(rec.Name)
	if node == nil {
		t.Fatalf("node %s not created", rec.Name)
	}
	return node
}

func TestPopulateCommonWrapper(t *testing.T) {
	rec := expr("MaterialExpressionAdd_0", "MaterialExpressionAdd", export.Bag{
		"MaterialExpressionEditorX": -384.0,
		"MaterialExpressionEditorY": 256.0,
		"MaterialExpressionGuid":    "1F2E3D4C5B6A79880123456789ABCDEF",
		"Desc":                      "sum",
		"bCollapsed":                true,
		"bRealtimePreview":          true,
		"Outputs": []any{
			map[string]any{"OutputName": "", "Mask": 1.0, "MaskR": 1.0, "MaskG": 1.0, "MaskB": 1.0, "MaskA": 0.0},
		},
	})

	n := importOne(t, New(nil, nil, nil), rec)
	if n.EditorX != -384 || n.EditorY != 256 {
		t.Errorf("position = (%d,%d), want (-384,256)", n.EditorX, n.EditorY)
	}
	if n.GUID == (uuid.UUID{}) {
		t.Error("guid should parse from undashed hex")
	}
	if n.Desc != "sum" || !n.Collapsed || !n.RealtimePreview {
		t.Errorf("wrapper fields = %q %v %v, want sum true true", n.Desc, n.Collapsed, n.RealtimePreview)
	}
	if len(n.Outputs) != 1 {
		t.Fatalf("outputs = %d, want 1", len(n.Outputs))
	}
	if out := n.Outputs[0]; out.Mask != 1 || out.MaskR != 1 || out.MaskA != 0 {
		t.Errorf("output slot = %+v, want mask 1/1/1/1/0", out)
	}
}

func TestPopulateScalarParameter(t *testing.T) {
	rec := expr("MaterialExpressionScalarParameter_0", "MaterialExpressionScalarParameter", export.Bag{
		"DefaultValue":   0.5,
		"SliderMin":      0.0,
		"SliderMax":      2.0,
		"ParameterName":  "Roughness",
		"Group":          "Surface",
		"SortPriority":   3.0,
		"ExpressionGUID": "9e86622c-4c8f-4f1b-8d6d-7cb4f9fd2a11",
	})

	n := importOne(t, New(nil, nil, nil), rec)
	if n.Scalars["DefaultValue"] != 0.5 || n.Scalars["SliderMax"] != 2.0 {
		t.Errorf("scalars = %v, want DefaultValue 0.5 SliderMax 2", n.Scalars)
	}
	if n.Strings["ParameterName"] != "Roughness" || n.Strings["Group"] != "Surface" {
		t.Errorf("identity = %v, want Roughness in Surface", n.Strings)
	}
	if n.Ints["SortPriority"] != 3 {
		t.Errorf("SortPriority = %d, want 3", n.Ints["SortPriority"])
	}
	if n.GUIDs["ExpressionGUID"] == (uuid.UUID{}) {
		t.Error("ExpressionGUID should parse")
	}
}

func TestPopulateTextureSampleParameterTiers(t *testing.T) {
	loader := &fakeLoader{available: map[string]bool{"/Game/Tex/T_Base.T_Base": true}}
	rec := expr("MaterialExpressionTextureSampleParameter2D_0", "MaterialExpressionTextureSampleParameter2D", export.Bag{
		"ParameterName": "BaseTex",
		"MipValueMode":  "TMVM_MipBias",
		"SamplerType":   "SAMPLERTYPE_Normal",
		"Coordinates":   ref("MaterialExpressionTextureCoordinate_0"),
		"Texture":       map[string]any{"ObjectPath": "/Game/Tex/T_Base.T_Base"},
		"ChannelNames":  map[string]any{"R": map[string]any{"SourceString": "Height"}},
	})
	records := []export.Record{
		unitRecord(nil),
		rec,
		expr("MaterialExpressionTextureCoordinate_0", "MaterialExpressionTextureCoordinate", nil),
	}

	imp := New(loader, nil, nil)
	g, rep, err := imp.Import(context.Background(), records, Options{})
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if rep.Warnings != 0 {
		t.Errorf("warnings = %d, want 0", rep.Warnings)
	}

	n := g.Node(rec.Name)
	if got := n.Enums["MipValueMode"]; got.Name != "TMVM_MipBias" || got.Value != 2 {
		t.Errorf("MipValueMode = %+v, want TMVM_MipBias(2)", got)
	}
	if got := n.Enums["SamplerType"].Name; got != "SAMPLERTYPE_Normal" {
		t.Errorf("SamplerType = %q, want SAMPLERTYPE_Normal", got)
	}
	if got := n.Inputs["Coordinates"].Node; got != "MaterialExpressionTextureCoordinate_0" {
		t.Errorf("Coordinates wired to %q, want the texcoord", got)
	}
	if ref := n.Refs["Texture"]; ref.Missing {
		t.Errorf("texture ref = %+v, want resolved", ref)
	}
	if n.Channels == nil || n.Channels.R != "Height" {
		t.Errorf("channels = %+v, want R renamed to Height", n.Channels)
	}
	if n.Strings["ParameterName"] != "BaseTex" {
		t.Errorf("ParameterName = %q, want BaseTex", n.Strings["ParameterName"])
	}
}

func TestPopulateInputAliases(t *testing.T) {
	records := []export.Record{
		unitRecord(nil),
		expr("MaterialExpressionConstant_0", "MaterialExpressionConstant", nil),
		expr("MaterialExpressionClamp_0", "MaterialExpressionClamp", export.Bag{
			"Input": ref("MaterialExpressionConstant_0"),
			"min":   ref("MaterialExpressionConstant_0"),
			"Max":   ref("MaterialExpressionConstant_0"),
		}),
	}

	imp := New(nil, nil, nil)
	g, _, err := imp.Import(context.Background(), records, Options{})
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	n := g.Node("MaterialExpressionClamp_0")
	for _, field := range []string{"Input", "Min", "Max"} {
		if !n.Input(field).Connected() {
			t.Errorf("%s not wired; both property spellings must resolve", field)
		}
	}
}

func TestPopulateCustomCode(t *testing.T) {
	rec := expr("MaterialExpressionCustom_0", "MaterialExpressionCustom", export.Bag{
		"Code":             "return A + B;",
		"OutputType":       "ECustomMaterialOutputType::CMOT_Float2",
		"Description":      "sum2",
		"IncludeFilePaths": []any{"/Engine/Private/Common.ush"},
		"Inputs": []any{
			map[string]any{"InputName": "A", "Input": ref("MaterialExpressionCustom_0")},
			map[string]any{"InputName": "B"},
		},
		"AdditionalOutputs": []any{
			map[string]any{"OutputName": "Extra", "OutputType": "CMOT_Float1"},
		},
		"AdditionalDefines": []any{
			map[string]any{"DefineName": "USE_FAST_PATH", "DefineValue": "1"},
		},
	})

	n := importOne(t, New(nil, nil, nil), rec)
	if n.Strings["Code"] != "return A + B;" || n.Strings["Description"] != "sum2" {
		t.Errorf("code fields = %v", n.Strings)
	}
	if got := n.Enums["OutputType"].Name; got != "CMOT_Float2" {
		t.Errorf("OutputType = %q, want CMOT_Float2", got)
	}
	if got := n.Lists["IncludeFilePaths"]; len(got) != 1 || got[0] != "/Engine/Private/Common.ush" {
		t.Errorf("includes = %v", got)
	}
	if len(n.CodeInputs) != 2 {
		t.Fatalf("code inputs = %d, want 2", len(n.CodeInputs))
	}
	if n.CodeInputs[0].Name != "A" || !n.CodeInputs[0].Input.Connected() {
		t.Errorf("input A = %+v, want wired", n.CodeInputs[0])
	}
	if n.CodeInputs[1].Name != "B" || n.CodeInputs[1].Input.Connected() {
		t.Errorf("input B = %+v, want declared but unwired", n.CodeInputs[1])
	}
	if len(n.CodeOutputs) != 1 || n.CodeOutputs[0].Name != "Extra" || n.CodeOutputs[0].Type.Name != "CMOT_Float1" {
		t.Errorf("outputs = %+v", n.CodeOutputs)
	}
	if len(n.Defines) != 1 || n.Defines[0].Name != "USE_FAST_PATH" || n.Defines[0].Value != "1" {
		t.Errorf("defines = %+v", n.Defines)
	}
}

func TestPopulatePositionalSlots(t *testing.T) {
	records := []export.Record{
		unitRecord(nil),
		expr("MaterialExpressionConstant_0", "MaterialExpressionConstant", nil),
		expr("MaterialExpressionQualitySwitch_0", "MaterialExpressionQualitySwitch", export.Bag{
			"Default": ref("MaterialExpressionConstant_0"),
			"Inputs": []any{
				ref("MaterialExpressionConstant_0"),
				nil,
				ref("MaterialExpressionConstant_0"),
			},
		}),
	}

	imp := New(nil, nil, nil)
	g, _, err := imp.Import(context.Background(), records, Options{})
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	n := g.Node("MaterialExpressionQualitySwitch_0")
	if !n.Input("Default").Connected() {
		t.Error("Default not wired")
	}
	if len(n.Slots) != 3 {
		t.Fatalf("slots = %d, want 3; a null element keeps its position", len(n.Slots))
	}
	if !n.Slots[0].Connected() || n.Slots[1].Connected() || !n.Slots[2].Connected() {
		t.Errorf("slot wiring = %v %v %v, want wired/unwired/wired",
			n.Slots[0].Connected(), n.Slots[1].Connected(), n.Slots[2].Connected())
	}
}

func TestPopulateLayerBlend(t *testing.T) {
	records := []export.Record{
		unitRecord(nil),
		expr("MaterialExpressionConstant_0", "MaterialExpressionConstant", nil),
		expr("MaterialExpressionLandscapeLayerBlend_0", "MaterialExpressionLandscapeLayerBlend", export.Bag{
			"Layers": []any{
				map[string]any{
					"LayerName":       "Grass",
					"BlendType":       "LB_HeightBlend",
					"LayerInput":      ref("MaterialExpressionConstant_0"),
					"HeightInput":     ref("MaterialExpressionConstant_0"),
					"PreviewWeight":   0.6,
					"ConstLayerInput": map[string]any{"X": 0.1, "Y": 0.2, "Z": 0.3},
				},
				map[string]any{"LayerName": "Rock", "BlendType": "LB_WeightBlend"},
			},
		}),
	}

	imp := New(nil, nil, nil)
	g, _, err := imp.Import(context.Background(), records, Options{})
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	n := g.Node("MaterialExpressionLandscapeLayerBlend_0")
	if len(n.Layers) != 2 {
		t.Fatalf("layers = %d, want 2", len(n.Layers))
	}
	grass := n.Layers[0]
	if grass.Name != "Grass" || grass.BlendType.Name != "LB_HeightBlend" {
		t.Errorf("layer = %q %q, want Grass LB_HeightBlend", grass.Name, grass.BlendType.Name)
	}
	if !grass.LayerInput.Connected() || !grass.HeightInput.Connected() {
		t.Error("grass layer inputs not wired")
	}
	if grass.PreviewWeight != 0.6 {
		t.Errorf("PreviewWeight = %v, want 0.6", grass.PreviewWeight)
	}
	if want := (material.Vector{X: 0.1, Y: 0.2, Z: 0.3}); grass.ConstLayerInput != want {
		t.Errorf("ConstLayerInput = %+v, want %+v", grass.ConstLayerInput, want)
	}
	if rock := n.Layers[1]; rock.Name != "Rock" || rock.LayerInput.Connected() {
		t.Errorf("rock layer = %+v, want named and unwired", rock)
	}
}

func TestPopulateFunctionCallPins(t *testing.T) {
	loader := &fakeLoader{available: map[string]bool{"/Game/Fn/MF_Blend.MF_Blend": true}}
	uvIn := ref("MaterialExpressionConstant_0")
	uvIn["InputName"] = "UV"
	records := []export.Record{
		unitRecord(nil),
		expr("MaterialExpressionConstant_0", "MaterialExpressionConstant", nil),
		expr("MaterialExpressionMaterialFunctionCall_0", "MaterialExpressionMaterialFunctionCall", export.Bag{
			"MaterialFunction": map[string]any{"ObjectPath": "/Game/Fn/MF_Blend.MF_Blend"},
			"FunctionInputs": []any{
				map[string]any{
					"ExpressionInputId": "0F6E21A344BD4E619C46A392D1A14E28",
					"Input":             uvIn,
				},
			},
			"FunctionOutputs": []any{
				map[string]any{
					"ExpressionOutputId": "77E38A1B4C2D41E3B95B6ED2C3A7F410",
					"Output":             map[string]any{"OutputName": "Result"},
				},
			},
		}),
	}

	imp := New(loader, nil, nil)
	g, rep, err := imp.Import(context.Background(), records, Options{})
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if len(rep.MissingRefs) != 0 {
		t.Errorf("missing refs = %v, want none", rep.MissingRefs)
	}

	n := g.Node("MaterialExpressionMaterialFunctionCall_0")
	if len(n.FuncInputs) != 1 {
		t.Fatalf("function inputs = %d, want 1", len(n.FuncInputs))
	}
	in := n.FuncInputs[0]
	if in.ID == (uuid.UUID{}) {
		t.Error("pin id should parse")
	}
	if in.Input.Node != "MaterialExpressionConstant_0" || in.Input.InputName != "UV" {
		t.Errorf("pin input = %+v, want constant wired as UV", in.Input)
	}
	if len(n.FuncOutputs) != 1 || n.FuncOutputs[0].Output.Name != "Result" {
		t.Errorf("function outputs = %+v, want Result", n.FuncOutputs)
	}
}

func TestExpressionNameForms(t *testing.T) {
	tests := []struct {
		name string
		desc export.Bag
		want string
	}{
		{
			name: "object reference",
			desc: export.Bag{"Expression": map[string]any{"ObjectName": "MaterialExpressionAdd'MaterialExpressionAdd_3'"}},
			want: "MaterialExpressionAdd_3",
		},
		{
			name: "qualified subobject",
			desc: export.Bag{"Expression": map[string]any{"ObjectName": "Material'/Game/M.M:MaterialExpressionAdd_3'"}},
			want: "MaterialExpressionAdd_3",
		},
		{
			name: "legacy name",
			desc: export.Bag{"ExpressionName": "MaterialExpressionAdd_3"},
			want: "MaterialExpressionAdd_3",
		},
		{
			name: "absent",
			desc: export.Bag{},
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := expressionName(tt.desc); got != tt.want {
				t.Errorf("expressionName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStateString(t *testing.T) {
	if got := StateWired.String(); got != "wired" {
		t.Errorf("StateWired = %q, want wired", got)
	}
	if got := State(9).String(); got != "state(9)" {
		t.Errorf("State(9) = %q, want state(9)", got)
	}
}
