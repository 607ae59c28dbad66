package importer

import (
	"github.com/google/uuid"

	"github.com/matforge/matforge/pkg/export"
	"github.com/matforge/matforge/pkg/material"
)

// populate fills one node from its record: the kind's population chain in
// base-first order, the sampler tiers, the common wrapper properties, then
// the parameter and texture tiers. Every row follows the same contract, a
// present well-shaped key decodes and anything else keeps the zero value.
func (a *assembly) populate(node *material.Node, bag export.Bag) {
	for _, spec := range a.im.Registry.Flatten(node.Kind) {
		a.applySpec(node, bag, spec)
	}

	caps := a.im.Registry.Caps(node.Kind)
	if caps.Has(material.CapTextureSample) {
		a.applySpec(node, bag, material.TextureSampleTier)
	}
	if caps.Has(material.CapTextureSampleParameter) {
		a.applySpec(node, bag, material.TextureSampleParameterTier)
	}

	a.applyCommon(node, bag)

	if caps.Has(material.CapParameter) {
		a.applySpec(node, bag, material.ParameterTier)
	}
	if caps.Has(material.CapTextureBase) {
		a.applySpec(node, bag, material.TextureBaseTier)
	}
}

func (a *assembly) applySpec(node *material.Node, bag export.Bag, spec material.Spec) {
	for _, f := range spec.Fields {
		a.applyField(node, bag, f)
	}
	for _, in := range spec.Inputs {
		a.applyInput(node, bag, in)
	}
	for _, ref := range spec.Refs {
		a.applyRef(node, bag, ref)
	}
	for _, arr := range spec.Arrays {
		a.applyArray(node, bag, arr)
	}
}

// applyCommon reads the editor wrapper properties every expression carries.
func (a *assembly) applyCommon(node *material.Node, bag export.Bag) {
	node.EditorX, _ = bag.Int("MaterialExpressionEditorX")
	node.EditorY, _ = bag.Int("MaterialExpressionEditorY")
	if s, ok := bag.String("MaterialExpressionGuid"); ok {
		node.GUID = parseGUID(s)
	}
	node.Desc, _ = bag.String("Desc")
	node.CommentBubbleVisible, _ = bag.Bool("bCommentBubbleVisible")
	node.Collapsed, _ = bag.Bool("bCollapsed")
	node.RealtimePreview, _ = bag.Bool("bRealtimePreview")
	node.ShowOutputNameOnPin, _ = bag.Bool("bShowOutputNameOnPin")
	if outs, ok := bag.Objects("Outputs"); ok {
		node.Outputs = decodeOutputSlots(outs)
	}
}

func (a *assembly) applyField(node *material.Node, bag export.Bag, f material.FieldSpec) {
	switch f.Kind {
	case material.FieldScalar:
		if v, ok := bag.Float(f.Key); ok {
			node.SetScalar(f.Key, v)
		}
	case material.FieldInt:
		if v, ok := bag.Int(f.Key); ok {
			node.SetInt(f.Key, v)
		}
	case material.FieldBool:
		if v, ok := bag.Bool(f.Key); ok {
			node.SetBool(f.Key, v)
		}
	case material.FieldString:
		if v, ok := bag.String(f.Key); ok {
			node.SetString(f.Key, v)
		}
	case material.FieldEnum:
		if e, ok := a.decodeEnum(bag, f.Key, f.Enum); ok {
			node.SetEnum(f.Key, e)
		}
	case material.FieldGUID:
		if s, ok := bag.String(f.Key); ok {
			node.SetGUID(f.Key, parseGUID(s))
		}
	case material.FieldColor:
		if obj, ok := bag.Object(f.Key); ok {
			node.SetColor(f.Key, decodeColor(obj))
		}
	case material.FieldVector2, material.FieldVector, material.FieldVector4:
		if obj, ok := bag.Object(f.Key); ok {
			node.SetVector(f.Key, decodeVector(obj))
		}
	case material.FieldStringList:
		if vals, ok := bag.Strings(f.Key); ok {
			node.SetList(f.Key, vals)
		}
	case material.FieldGUIDList:
		if vals, ok := bag.Strings(f.Key); ok {
			ids := make([]uuid.UUID, len(vals))
			for i, s := range vals {
				ids[i] = parseGUID(s)
			}
			node.SetGUIDList(f.Key, ids)
		}
	case material.FieldChannelNames:
		if obj, ok := bag.Object(f.Key); ok {
			node.Channels = decodeChannelNames(obj)
		}
	}
}

func (a *assembly) applyInput(node *material.Node, bag export.Bag, in material.InputSpec) {
	for _, key := range in.Keys {
		if desc, ok := bag.Object(key); ok {
			node.SetInput(in.Field, a.wireInput(desc, in.Variant))
			return
		}
	}
}

func (a *assembly) applyRef(node *material.Node, bag export.Bag, spec material.RefSpec) {
	desc, ok := bag.Object(spec.Key)
	if !ok {
		return
	}
	if ref := a.resolveAsset(desc, spec); ref.Path != "" {
		node.SetRef(spec.Key, ref)
	}
}

func (a *assembly) applyArray(node *material.Node, bag export.Bag, arr material.ArraySpec) {
	switch arr.Kind {
	case material.ArrayInputSlots:
		raw, ok := bag.Array(arr.Key)
		if !ok {
			return
		}
		slots := make([]material.Connection, len(raw))
		for i, v := range raw {
			if obj, ok := v.(map[string]any); ok {
				slots[i] = a.wireInput(export.Bag(obj), material.VariantGeneric)
			}
		}
		node.Slots = slots

	case material.ArrayFunctionInputs:
		for _, obj := range objects(bag, arr.Key) {
			var slot material.FunctionInputSlot
			if s, ok := obj.String("ExpressionInputId"); ok {
				slot.ID = parseGUID(s)
			}
			if desc, ok := obj.Object("Input"); ok {
				slot.Input = a.wireInput(desc, material.VariantGeneric)
			}
			node.FuncInputs = append(node.FuncInputs, slot)
		}

	case material.ArrayFunctionOutputs:
		for _, obj := range objects(bag, arr.Key) {
			var slot material.FunctionOutputSlot
			if s, ok := obj.String("ExpressionOutputId"); ok {
				slot.ID = parseGUID(s)
			}
			if desc, ok := obj.Object("Output"); ok {
				slot.Output = decodeOutputSlot(desc)
			}
			node.FuncOutputs = append(node.FuncOutputs, slot)
		}

	case material.ArrayBlendLayers:
		for _, obj := range objects(bag, arr.Key) {
			var layer material.BlendLayer
			layer.Name, _ = obj.String("LayerName")
			if e, ok := a.decodeEnum(obj, "BlendType", material.LayerBlendTypes); ok {
				layer.BlendType = e
			}
			if desc, ok := obj.Object("LayerInput"); ok {
				layer.LayerInput = a.wireInput(desc, material.VariantGeneric)
			}
			if desc, ok := obj.Object("HeightInput"); ok {
				layer.HeightInput = a.wireInput(desc, material.VariantGeneric)
			}
			layer.PreviewWeight, _ = obj.Float("PreviewWeight")
			if v, ok := obj.Object("ConstLayerInput"); ok {
				layer.ConstLayerInput = decodeVector(v)
			}
			layer.ConstHeightInput, _ = obj.Float("ConstHeightInput")
			node.Layers = append(node.Layers, layer)
		}

	case material.ArrayGrassSlots:
		for _, obj := range objects(bag, arr.Key) {
			var slot material.GrassSlot
			slot.Name, _ = obj.String("Name")
			for _, key := range []string{"GrassAsset", "GrassType"} {
				if desc, ok := obj.Object(key); ok {
					slot.GrassType = a.resolveAsset(desc, material.RefSpec{Key: key, Recover: true})
					break
				}
			}
			if desc, ok := obj.Object("Input"); ok {
				slot.Input = a.wireInput(desc, material.VariantGeneric)
			}
			node.Grass = append(node.Grass, slot)
		}

	case material.ArrayPhysicalSlots:
		for _, obj := range objects(bag, arr.Key) {
			var slot material.PhysicalSlot
			if desc, ok := obj.Object("PhysicalMaterial"); ok {
				slot.Material = a.resolveAsset(desc, material.RefSpec{Key: "PhysicalMaterial", Recover: true})
			}
			if desc, ok := obj.Object("Input"); ok {
				slot.Input = a.wireInput(desc, material.VariantGeneric)
			}
			node.Physical = append(node.Physical, slot)
		}

	case material.ArrayCodeInputs:
		for _, obj := range objects(bag, arr.Key) {
			var in material.CodeInput
			in.Name, _ = obj.String("InputName")
			if desc, ok := obj.Object("Input"); ok {
				in.Input = a.wireInput(desc, material.VariantGeneric)
			}
			node.CodeInputs = append(node.CodeInputs, in)
		}

	case material.ArrayCodeOutputs:
		for _, obj := range objects(bag, arr.Key) {
			var out material.CodeOutput
			out.Name, _ = obj.String("OutputName")
			if e, ok := a.decodeEnum(obj, "OutputType", material.CustomOutputTypes); ok {
				out.Type = e
			}
			node.CodeOutputs = append(node.CodeOutputs, out)
		}

	case material.ArrayCodeDefines:
		for _, obj := range objects(bag, arr.Key) {
			var def material.CodeDefine
			def.Name, _ = obj.String("DefineName")
			def.Value, _ = obj.String("DefineValue")
			node.Defines = append(node.Defines, def)
		}
	}
}

// decodeEnum resolves an enum property against its table. Unknown non-empty
// text is logged at debug level and the field keeps its default.
func (a *assembly) decodeEnum(bag export.Bag, key string, table *material.EnumTable) (material.Enum, bool) {
	s, ok := bag.String(key)
	if !ok {
		return material.Enum{}, false
	}
	e, ok := table.Resolve(s)
	if !ok {
		if s != "" {
			a.im.Logger.Debug("unknown enum value", "enum", table.Name(), "key", key, "value", s)
		}
		return material.Enum{}, false
	}
	return e, true
}

func objects(bag export.Bag, key string) []export.Bag {
	objs, _ := bag.Objects(key)
	return objs
}

func decodeColor(obj export.Bag) material.Color {
	var c material.Color
	c.R, _ = obj.Float("R")
	c.G, _ = obj.Float("G")
	c.B, _ = obj.Float("B")
	c.A, _ = obj.Float("A")
	return c
}

func decodeVector(obj export.Bag) material.Vector {
	var v material.Vector
	v.X, _ = obj.Float("X")
	v.Y, _ = obj.Float("Y")
	v.Z, _ = obj.Float("Z")
	v.W, _ = obj.Float("W")
	return v
}

func decodeChannelNames(obj export.Bag) *material.ChannelNames {
	ch := &material.ChannelNames{}
	if o, ok := obj.Object("R"); ok {
		ch.R, _ = o.String("SourceString")
	}
	if o, ok := obj.Object("G"); ok {
		ch.G, _ = o.String("SourceString")
	}
	if o, ok := obj.Object("B"); ok {
		ch.B, _ = o.String("SourceString")
	}
	if o, ok := obj.Object("A"); ok {
		ch.A, _ = o.String("SourceString")
	}
	return ch
}

// buildComment rebuilds one editor comment box from its record.
func buildComment(rec *export.Record) *material.Comment {
	bag := rec.Properties
	c := &material.Comment{Name: rec.Name}
	c.Text, _ = bag.String("Text")
	c.SizeX, _ = bag.Int("SizeX")
	c.SizeY, _ = bag.Int("SizeY")
	if obj, ok := bag.Object("CommentColor"); ok {
		c.Color = decodeColor(obj)
	}
	c.FontSize, _ = bag.Int("FontSize")
	c.EditorX, _ = bag.Int("MaterialExpressionEditorX")
	c.EditorY, _ = bag.Int("MaterialExpressionEditorY")
	if s, ok := bag.String("MaterialExpressionGuid"); ok {
		c.GUID = parseGUID(s)
	}
	c.Desc, _ = bag.String("Desc")
	c.BubbleVisible, _ = bag.Bool("bCommentBubbleVisible")
	c.Collapsed, _ = bag.Bool("bCollapsed")
	return c
}
