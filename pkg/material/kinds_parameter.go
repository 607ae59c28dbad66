package material

var parameterKinds = map[Kind]Spec{
	"MaterialExpressionChannelMaskParameter": {
		Bases:  []Kind{"MaterialExpressionVectorParameter"},
		Inputs: ins("Input"),
		Fields: fields(enum("MaskChannel", ChannelMaskColors)),
	},
	"MaterialExpressionCurveAtlasRowParameter": {
		Refs:   []RefSpec{{Key: "Curve"}, {Key: "Atlas"}},
		Inputs: ins("InputTime"),
		Caps:   CapParameter,
	},
	"MaterialExpressionFunctionInput": {
		Inputs: ins("Preview"),
		Fields: fields(text("InputName"), text("Description"), guid("ID"),
			enum("InputType", FunctionInputTypes), vector4("PreviewValue"),
			boolean("bUsePreviewValueAsDefault"), integer("SortPriority")),
	},
	"MaterialExpressionFunctionOutput": {
		Inputs: ins("A"),
		Fields: fields(text("OutputName"), text("Description"), integer("SortPriority"),
			boolean("bLastPreviewed"), guid("ID")),
	},
	"MaterialExpressionMaterialFunctionCall": {
		Refs: []RefSpec{{Key: "MaterialFunction", Label: "Material Function", Recover: true}},
		Arrays: []ArraySpec{
			{Key: "FunctionInputs", Kind: ArrayFunctionInputs},
			{Key: "FunctionOutputs", Kind: ArrayFunctionOutputs},
		},
	},
	"MaterialExpressionRuntimeVirtualTextureSample": {
		Inputs: ins("Coordinates", "WorldPosition", "MipValue"),
		Refs:   []RefSpec{{Key: "VirtualTexture", Label: "Virtual Texture Sample"}},
		Fields: fields(enum("MaterialType", VirtualTextureMaterialTypes),
			boolean("bSinglePhysicalSpace"), boolean("bAdaptive"),
			enum("MipValueMode", VirtualTextureMipValueModes),
			enum("TextureAddressMode", VirtualTextureAddressModes)),
	},
	"MaterialExpressionRuntimeVirtualTextureSampleParameter": {
		Bases: []Kind{"MaterialExpressionRuntimeVirtualTextureSample"},
		Fields: fields(guid("ExpressionGUID"), text("ParameterName"), text("Group"),
			integer("SortPriority")),
	},
	"MaterialExpressionScalarParameter": {
		Fields: fields(scalar("DefaultValue"), scalar("SliderMin"), scalar("SliderMax"),
			boolean("bUseCustomPrimitiveData"), integer("PrimitiveDataIndex")),
		Caps: CapParameter,
	},
	"MaterialExpressionStaticBoolParameter": {
		Fields: fields(boolean("DefaultValue")),
		Caps:   CapParameter,
	},
	"MaterialExpressionStaticComponentMaskParameter": {
		Inputs: ins("Input"),
		Fields: fields(boolean("DefaultR"), boolean("DefaultG"), boolean("DefaultB"),
			boolean("DefaultA")),
		Caps: CapParameter,
	},
	"MaterialExpressionStaticSwitchParameter": {
		Inputs: ins("A", "B"),
		Fields: fields(boolean("DefaultValue")),
		Caps:   CapParameter,
	},
	"MaterialExpressionTextureObject": {
		Caps: CapTextureBase,
	},
	"MaterialExpressionTextureObjectParameter": {
		Caps: CapTextureSample | CapTextureSampleParameter | CapTextureBase,
	},
	"MaterialExpressionTextureProperty": {
		Inputs: ins("TextureObject"),
		Fields: fields(enum("Property", TextureProperties)),
	},
	"MaterialExpressionTextureSample": {
		Caps: CapTextureSample | CapTextureBase,
	},
	"MaterialExpressionTextureSampleParameter2D": {
		Caps: CapTextureSample | CapTextureSampleParameter | CapTextureBase,
	},
	"MaterialExpressionTextureSampleParameterSubUV": {
		Fields: fields(boolean("bBlend")),
		Caps:   CapTextureSample | CapTextureSampleParameter | CapTextureBase,
	},
	"MaterialExpressionVectorParameter": {
		Fields: fields(color("DefaultValue"), boolean("bUseCustomPrimitiveData"),
			integer("PrimitiveDataIndex"), channelNames()),
		Caps: CapParameter,
	},
}
