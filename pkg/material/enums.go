package material

import "strings"

// EnumTable resolves the textual enum spellings found in source documents.
// Exporters write values as "EType::Name", as a bare "Name", or as a
// fully-prefixed constant like "TMVM_MipLevel"; resolution keys on the
// segment after the last colon, matched exactly against the table entries.
type EnumTable struct {
	name   string
	names  []string
	byName map[string]int
}

// NewEnumTable builds a table whose entries take their declaration order as
// values.
func NewEnumTable(name string, names ...string) *EnumTable {
	t := &EnumTable{name: name, names: names, byName: make(map[string]int, len(names))}
	for i, n := range names {
		t.byName[n] = i
	}
	return t
}

// Name returns the enum type name the table stands for.
func (t *EnumTable) Name() string { return t.name }

// Resolve maps enum text to its table entry. Unknown text resolves to
// false so the caller keeps the field's prior default.
func (t *EnumTable) Resolve(s string) (Enum, bool) {
	if i := strings.LastIndexByte(s, ':'); i >= 0 {
		s = s[i+1:]
	}
	v, ok := t.byName[s]
	if !ok {
		return Enum{}, false
	}
	return Enum{Name: s, Value: v}, true
}

var (
	TextureMipValueModes = NewEnumTable("ETextureMipValueMode",
		"TMVM_None", "TMVM_MipLevel", "TMVM_MipBias", "TMVM_Derivative")

	SamplerSourceModes = NewEnumTable("ESamplerSourceMode",
		"SSM_FromTextureAsset", "SSM_Wrap_WorldGroupSettings",
		"SSM_Clamp_WorldGroupSettings", "SSM_TerrainWeightmapGroupSettings")

	SamplerTypes = NewEnumTable("EMaterialSamplerType",
		"SAMPLERTYPE_Color", "SAMPLERTYPE_Grayscale", "SAMPLERTYPE_Alpha",
		"SAMPLERTYPE_Normal", "SAMPLERTYPE_Masks",
		"SAMPLERTYPE_DistanceFieldFont", "SAMPLERTYPE_LinearColor",
		"SAMPLERTYPE_LinearGrayscale", "SAMPLERTYPE_Data",
		"SAMPLERTYPE_External", "SAMPLERTYPE_VirtualColor",
		"SAMPLERTYPE_VirtualGrayscale", "SAMPLERTYPE_VirtualAlpha",
		"SAMPLERTYPE_VirtualNormal", "SAMPLERTYPE_VirtualMasks",
		"SAMPLERTYPE_VirtualLinearColor", "SAMPLERTYPE_VirtualLinearGrayscale")

	ClampModes = NewEnumTable("EClampMode",
		"CMODE_Clamp", "CMODE_ClampMin", "CMODE_ClampMax")

	TextureProperties = NewEnumTable("EMaterialExposedTextureProperty",
		"TMTM_TextureSize", "TMTM_TexelSize")

	FunctionInputTypes = NewEnumTable("EFunctionInputType",
		"FunctionInput_Scalar", "FunctionInput_Vector2",
		"FunctionInput_Vector3", "FunctionInput_Vector4",
		"FunctionInput_Texture2D", "FunctionInput_TextureCube",
		"FunctionInput_Texture2DArray", "FunctionInput_VolumeTexture",
		"FunctionInput_StaticBool", "FunctionInput_MaterialAttributes",
		"FunctionInput_TextureExternal", "FunctionInput_Bool")

	VirtualTextureMaterialTypes = NewEnumTable("ERuntimeVirtualTextureMaterialType",
		"BaseColor", "BaseColor_Normal", "BaseColor_Normal_Roughness",
		"BaseColor_Normal_Specular", "BaseColor_Normal_Specular_YCoCg",
		"BaseColor_Normal_Specular_Mask_YCoCg", "WorldHeight", "Displacement")

	VirtualTextureMipValueModes = NewEnumTable("ERuntimeVirtualTextureMipValueMode",
		"RVTMVM_None", "RVTMVM_MipLevel", "RVTMVM_MipBias", "RVTMVM_RecursiveBias")

	VirtualTextureAddressModes = NewEnumTable("ERuntimeVirtualTextureTextureAddressMode",
		"RVTTA_Clamp", "RVTTA_Wrap")

	ChannelMaskColors = NewEnumTable("EChannelMaskParameterColor",
		"Red", "Green", "Blue", "Alpha")

	SceneTextureIDs = NewEnumTable("ESceneTextureId",
		"PPI_SceneColor", "PPI_SceneDepth", "PPI_DiffuseColor",
		"PPI_SpecularColor", "PPI_SubsurfaceColor", "PPI_BaseColor",
		"PPI_Specular", "PPI_Metallic", "PPI_WorldNormal",
		"PPI_SeparateTranslucency", "PPI_Opacity", "PPI_Roughness",
		"PPI_MaterialAO", "PPI_CustomDepth", "PPI_PostProcessInput0",
		"PPI_PostProcessInput1", "PPI_PostProcessInput2",
		"PPI_PostProcessInput3", "PPI_PostProcessInput4",
		"PPI_PostProcessInput5", "PPI_PostProcessInput6", "PPI_DecalMask",
		"PPI_ShadingModelColor", "PPI_ShadingModelID", "PPI_AmbientOcclusion",
		"PPI_CustomStencil", "PPI_StoredBaseColor", "PPI_StoredSpecular",
		"PPI_Velocity", "PPI_WorldTangent", "PPI_Anisotropy")

	VectorNoiseFunctions = NewEnumTable("EVectorNoiseFunction",
		"VNF_CellnoiseALU", "VNF_PerlinALU", "VNF_GradientALU",
		"VNF_CurlALU", "VNF_VoronoiALU")

	NoiseFunctions = NewEnumTable("ENoiseFunction",
		"NOISEFUNCTION_SimplexTex", "NOISEFUNCTION_GradientTex",
		"NOISEFUNCTION_GradientTex3D", "NOISEFUNCTION_GradientALU",
		"NOISEFUNCTION_ValueALU", "NOISEFUNCTION_VoronoiALU")

	VectorTransformSources = NewEnumTable("EMaterialVectorCoordTransformSource",
		"TRANSFORMSOURCE_Tangent", "TRANSFORMSOURCE_Local",
		"TRANSFORMSOURCE_World", "TRANSFORMSOURCE_View",
		"TRANSFORMSOURCE_Camera", "TRANSFORMSOURCE_ParticleWorld",
		"TRANSFORMSOURCE_Instance")

	VectorTransforms = NewEnumTable("EMaterialVectorCoordTransform",
		"TRANSFORM_Tangent", "TRANSFORM_Local", "TRANSFORM_World",
		"TRANSFORM_View", "TRANSFORM_Camera", "TRANSFORM_ParticleWorld",
		"TRANSFORM_Instance")

	PositionTransformSources = NewEnumTable("EMaterialPositionTransformSource",
		"TRANSFORMPOSSOURCE_Local", "TRANSFORMPOSSOURCE_World",
		"TRANSFORMPOSSOURCE_TranslatedWorld", "TRANSFORMPOSSOURCE_View",
		"TRANSFORMPOSSOURCE_Camera", "TRANSFORMPOSSOURCE_Particle",
		"TRANSFORMPOSSOURCE_Instance")

	SceneAttributeInputModes = NewEnumTable("EMaterialSceneAttributeInputMode",
		"InputMode_Coordinates", "InputMode_OffsetFraction")

	AttributeBlendTypes = NewEnumTable("EMaterialAttributeBlend",
		"Blend", "UseA", "UseB")

	ShadingModels = NewEnumTable("EMaterialShadingModel",
		"MSM_Unlit", "MSM_DefaultLit", "MSM_Subsurface",
		"MSM_PreintegratedSkin", "MSM_ClearCoat", "MSM_SubsurfaceProfile",
		"MSM_TwoSidedFoliage", "MSM_Hair", "MSM_Cloth", "MSM_Eye",
		"MSM_SingleLayerWater", "MSM_ThinTranslucent",
		"MSM_FromMaterialExpression")

	ViewProperties = NewEnumTable("EMaterialExposedViewProperty",
		"MEVP_BufferSize", "MEVP_FieldOfView", "MEVP_TanHalfFieldOfView",
		"MEVP_ViewSize", "MEVP_WorldSpaceViewPosition",
		"MEVP_WorldSpaceCameraPosition", "MEVP_ViewportOffset",
		"MEVP_TemporalSampleCount", "MEVP_TemporalSampleIndex",
		"MEVP_TemporalSampleOffset")

	CustomOutputTypes = NewEnumTable("ECustomMaterialOutputType",
		"CMOT_Float1", "CMOT_Float2", "CMOT_Float3", "CMOT_Float4",
		"CMOT_MaterialAttributes")

	WorldPositionModes = NewEnumTable("EWorldPositionIncludedOffsets",
		"WPT_Default", "WPT_ExcludeAllShaderOffsets", "WPT_CameraRelative",
		"WPT_CameraRelativeNoOffsets")

	TerrainCoordMappingTypes = NewEnumTable("ETerrainCoordMappingType",
		"TCMT_Auto", "TCMT_XY", "TCMT_XZ", "TCMT_YZ")

	CustomizedCoordTypes = NewEnumTable("ELandscapeCustomizedCoordType",
		"LCCT_None", "LCCT_CustomUV0", "LCCT_CustomUV1", "LCCT_CustomUV2",
		"LCCT_WeightMapUV")

	LayerBlendTypes = NewEnumTable("ELandscapeLayerBlendType",
		"LB_WeightBlend", "LB_AlphaBlend", "LB_HeightBlend")
)
