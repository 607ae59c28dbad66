package importer

import (
	"github.com/matforge/matforge/pkg/export"
	"github.com/matforge/matforge/pkg/material"
)

// expressionName extracts the referenced node name from a connection
// descriptor. Current exports carry an Expression object reference; older
// documents name the node directly.
func expressionName(desc export.Bag) string {
	if obj, ok := desc.Object("Expression"); ok {
		if name, ok := obj.String("ObjectName"); ok {
			return export.SubobjectName(name)
		}
	}
	if name, ok := desc.String("ExpressionName"); ok {
		return export.SubobjectName(name)
	}
	return ""
}

// wireInput decodes one connection descriptor. The node reference binds
// only when the named node exists in the arena; a reference to a skipped or
// unknown node leaves the connection unwired. Constant fallbacks are read
// from the descriptor itself, independent of whether the reference
// resolved, so a degraded graph still evaluates to the authored defaults.
func (a *assembly) wireInput(desc export.Bag, variant material.Variant) material.Connection {
	c := material.Connection{Variant: variant}

	if name := expressionName(desc); name != "" {
		if a.graph.Has(name) {
			c.Node = name
		} else {
			a.im.Logger.Debug("connection references unknown node", "node", name)
		}
	}
	c.OutputIndex, _ = desc.Int("OutputIndex")
	c.InputName, _ = desc.String("InputName")
	c.Mask, _ = desc.Int("Mask")
	c.MaskR, _ = desc.Int("MaskR")
	c.MaskG, _ = desc.Int("MaskG")
	c.MaskB, _ = desc.Int("MaskB")
	c.MaskA, _ = desc.Int("MaskA")

	switch variant {
	case material.VariantColor:
		c.UseConstant, _ = desc.Bool("UseConstant")
		if obj, ok := desc.Object("Constant"); ok {
			c.ConstColor = decodeColor(obj)
		}
	case material.VariantScalar:
		c.UseConstant, _ = desc.Bool("UseConstant")
		c.ConstScalar, _ = desc.Float("Constant")
	case material.VariantVector:
		c.UseConstant, _ = desc.Bool("UseConstant")
		if obj, ok := desc.Object("Constant"); ok {
			c.ConstVector = decodeVector(obj)
		}
	}
	return c
}

func decodeOutputSlot(obj export.Bag) material.OutputSlot {
	var s material.OutputSlot
	s.Name, _ = obj.String("OutputName")
	s.Mask, _ = obj.Int("Mask")
	s.MaskR, _ = obj.Int("MaskR")
	s.MaskG, _ = obj.Int("MaskG")
	s.MaskB, _ = obj.Int("MaskB")
	s.MaskA, _ = obj.Int("MaskA")
	return s
}

func decodeOutputSlots(objs []export.Bag) []material.OutputSlot {
	if len(objs) == 0 {
		return nil
	}
	slots := make([]material.OutputSlot, 0, len(objs))
	for _, obj := range objs {
		slots = append(slots, decodeOutputSlot(obj))
	}
	return slots
}

func unitIn(key string, v material.Variant) material.InputSpec {
	return material.InputSpec{Keys: []string{key}, Field: key, Variant: v}
}

// unitProperties are the unit record's own typed inputs, wired as graph
// properties during attach.
var unitProperties = []material.InputSpec{
	unitIn("BaseColor", material.VariantColor),
	unitIn("Metallic", material.VariantScalar),
	unitIn("Specular", material.VariantScalar),
	unitIn("Roughness", material.VariantScalar),
	unitIn("Anisotropy", material.VariantScalar),
	unitIn("EmissiveColor", material.VariantColor),
	unitIn("Opacity", material.VariantScalar),
	unitIn("OpacityMask", material.VariantScalar),
	unitIn("Normal", material.VariantVector),
	unitIn("Tangent", material.VariantVector),
	unitIn("WorldPositionOffset", material.VariantVector),
	unitIn("SubsurfaceColor", material.VariantColor),
	unitIn("ClearCoat", material.VariantScalar),
	unitIn("ClearCoatRoughness", material.VariantScalar),
	unitIn("AmbientOcclusion", material.VariantScalar),
	unitIn("Refraction", material.VariantScalar),
	unitIn("PixelDepthOffset", material.VariantScalar),
	unitIn("MaterialAttributes", material.VariantGeneric),
}
