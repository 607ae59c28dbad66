package material

var landscapeKinds = map[Kind]Spec{
	"MaterialExpressionLandscapeGrassOutput": {
		Namespace: NamespaceLandscape,
		Arrays:    []ArraySpec{{Key: "GrassTypes", Kind: ArrayGrassSlots}},
	},
	"MaterialExpressionLandscapeLayerBlend": {
		Namespace: NamespaceLandscape,
		Arrays:    []ArraySpec{{Key: "Layers", Kind: ArrayBlendLayers}},
	},
	"MaterialExpressionLandscapeLayerCoords": {
		Namespace: NamespaceLandscape,
		Fields: fields(enum("MappingType", TerrainCoordMappingTypes),
			enum("CustomUVType", CustomizedCoordTypes), scalar("MappingScale"),
			scalar("MappingRotation"), scalar("MappingPanU"), scalar("MappingPanV")),
	},
	"MaterialExpressionLandscapeLayerSample": {
		Namespace: NamespaceLandscape,
		Fields:    fields(text("ParameterName"), scalar("PreviewWeight")),
	},
	"MaterialExpressionLandscapeLayerSwitch": {
		Namespace: NamespaceLandscape,
		Inputs:    ins("LayerUsed", "LayerNotUsed"),
		Fields:    fields(text("ParameterName"), boolean("PreviewUsed")),
	},
	"MaterialExpressionLandscapeLayerWeight": {
		Namespace: NamespaceLandscape,
		Inputs:    ins("Base", "Layer"),
		Fields:    fields(text("ParameterName"), scalar("PreviewWeight"), vector("ConstBase")),
	},
	"MaterialExpressionLandscapePhysicalMaterialOutput": {
		Namespace: NamespaceLandscape,
		Arrays:    []ArraySpec{{Key: "Inputs", Kind: ArrayPhysicalSlots}},
	},
	"MaterialExpressionLandscapeVisibilityMask": {
		Namespace: NamespaceLandscape,
		Fields:    fields(text("ParameterName")),
	},
}
