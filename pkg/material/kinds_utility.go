package material

var utilityKinds = map[Kind]Spec{
	"MaterialExpressionAbsorptionMediumMaterialOutput": {Inputs: ins("TransmittanceColor")},
	"MaterialExpressionBlendMaterialAttributes": {
		Inputs: ins("A", "B", "Alpha"),
		Fields: fields(
			enum("PixelAttributeBlendType", AttributeBlendTypes),
			enum("VertexAttributeBlendType", AttributeBlendTypes),
		),
	},
	"MaterialExpressionBreakMaterialAttributes": {Inputs: ins("MaterialAttributes")},
	"MaterialExpressionBumpOffset": {
		Inputs: ins("Coordinate", "Height", "HeightRatioInput"),
	},
	"MaterialExpressionCollectionParameter": {
		Refs:   []RefSpec{{Key: "Collection", Label: "Material Collection", Recover: true}},
		Fields: fields(text("ParameterName"), guid("ParameterId")),
	},
	"MaterialExpressionCustom": {
		Fields: fields(text("Code"), enum("OutputType", CustomOutputTypes),
			text("Description"), textList("IncludeFilePaths")),
		Arrays: []ArraySpec{
			{Key: "Inputs", Kind: ArrayCodeInputs},
			{Key: "AdditionalOutputs", Kind: ArrayCodeOutputs},
			{Key: "AdditionalDefines", Kind: ArrayCodeDefines},
		},
	},
	"MaterialExpressionDepthFade":                     {Inputs: ins("InOpacity", "FadeDistance")},
	"MaterialExpressionDeriveNormalZ":                 {Inputs: ins("InXY")},
	"MaterialExpressionDistanceFieldsRenderingSwitch": {Inputs: ins("No", "Yes")},
	"MaterialExpressionDynamicParameter": {
		Fields: fields(textList("ParamNames"), color("DefaultValue"), integer("ParameterIndex")),
	},
	"MaterialExpressionFeatureLevelSwitch": {
		Inputs: ins("Default"),
		Arrays: []ArraySpec{{Key: "Inputs", Kind: ArrayInputSlots}},
	},
	"MaterialExpressionGetMaterialAttributes": {
		Inputs: ins("MaterialAttributes"),
		Fields: fields(guidList("AttributeGetTypes")),
	},
	"MaterialExpressionMakeMaterialAttributes": {
		Inputs: ins("BaseColor", "Metallic", "Specular", "Roughness", "Anisotropy",
			"EmissiveColor", "Opacity", "OpacityMask", "Normal", "Tangent",
			"WorldPositionOffset", "SubsurfaceColor", "ClearCoat", "ClearCoatRoughness",
			"AmbientOcclusion", "Refraction", "PixelDepthOffset", "ShadingModel"),
	},
	"MaterialExpressionMaterialAttributeLayers": {Inputs: ins("Input")},
	"MaterialExpressionMaterialProxyReplace":    {Inputs: ins("Realtime", "MaterialProxy")},
	"MaterialExpressionNaniteReplace":           {Inputs: ins("Default", "Nanite")},
	"MaterialExpressionNamedRerouteDeclaration": {
		Inputs: ins("Input"),
		Fields: fields(text("Name"), guid("VariableGuid"), color("NodeColor")),
	},
	"MaterialExpressionNamedRerouteUsage": {
		Refs:   []RefSpec{{Key: "Declaration"}},
		Fields: fields(guid("DeclarationGuid")),
	},
	"MaterialExpressionNoise": {
		Inputs: ins("Position", "FilterWidth"),
		Fields: fields(scalar("Scale"), integer("Quality"), enum("NoiseFunction", NoiseFunctions),
			boolean("bTurbulence"), integer("Levels"), scalar("OutputMin"), scalar("OutputMax"),
			scalar("LevelScale"), boolean("bTiling"), integer("RepeatSize")),
	},
	"MaterialExpressionPanner": {
		Inputs: ins("Coordinate", "Time", "Speed"),
		Fields: fields(scalar("SpeedX"), scalar("SpeedY"), integer("ConstCoordinate"),
			boolean("bFractionalPart")),
	},
	"MaterialExpressionPreviousFrameSwitch": {Inputs: ins("CurrentFrame", "PreviousFrame")},
	"MaterialExpressionQualitySwitch": {
		Inputs: ins("Default"),
		Arrays: []ArraySpec{{Key: "Inputs", Kind: ArrayInputSlots}},
	},
	"MaterialExpressionRayTracingQualitySwitch":     {Inputs: ins("Normal", "RayTraced")},
	"MaterialExpressionReflectionCapturePassSwitch": {Inputs: ins("Default", "Reflection")},
	"MaterialExpressionReflectionVectorWS": {
		Inputs: ins("CustomWorldNormal"),
		Fields: fields(boolean("bNormalizeCustomWorldNormal")),
	},
	"MaterialExpressionReroute": {Inputs: ins("Input")},
	"MaterialExpressionRotateAboutAxis": {
		Inputs: ins("NormalizedRotationAxis", "RotationAngle", "PivotPoint", "Position"),
	},
	"MaterialExpressionRotator": {
		Inputs: ins("Coordinate", "Time"),
		Fields: fields(scalar("CenterX"), scalar("CenterY"), scalar("Speed"),
			integer("ConstCoordinate")),
	},
	"MaterialExpressionSceneDepth": {
		Inputs: ins("Input"),
		Fields: fields(enum("InputMode", SceneAttributeInputModes), vector2("ConstInput")),
	},
	"MaterialExpressionSceneTexture": {
		Inputs: ins("Coordinates"),
		Fields: fields(boolean("bFiltered"), enum("SceneTextureId", SceneTextureIDs)),
	},
	"MaterialExpressionSetMaterialAttributes": {
		Fields: fields(guidList("AttributeSetTypes")),
		Arrays: []ArraySpec{{Key: "Inputs", Kind: ArrayInputSlots}},
	},
	"MaterialExpressionShaderStageSwitch": {Inputs: ins("PixelShader", "VertexShader")},
	"MaterialExpressionShadingModel": {
		Fields: fields(enum("ShadingModel", ShadingModels)),
	},
	"MaterialExpressionShadingPathSwitch": {
		Inputs: ins("Default"),
		Arrays: []ArraySpec{{Key: "Inputs", Kind: ArrayInputSlots}},
	},
	"MaterialExpressionShadowReplace":                  {Inputs: ins("Default", "Shadow")},
	"MaterialExpressionSkyAtmosphereAerialPerspective": {Inputs: ins("WorldPosition")},
	"MaterialExpressionSkyAtmosphereLightDiskLuminance": {
		Fields: fields(integer("LightIndex")),
	},
	"MaterialExpressionSkyAtmosphereLightDirection": {
		Fields: fields(integer("LightIndex")),
	},
	"MaterialExpressionSkyAtmosphereLightIlluminance": {Inputs: ins("WorldPosition")},
	"MaterialExpressionSkyLightEnvMapSample":          {Inputs: ins("Direction", "Roughness")},
	"MaterialExpressionStaticBool":                    {Fields: fields(boolean("Value"))},
	"MaterialExpressionStaticSwitch": {
		Inputs: ins("A", "B", "Value"),
		Fields: fields(boolean("DefaultValue")),
	},
	"MaterialExpressionTextureCoordinate": {
		Fields: fields(integer("CoordinateIndex"), scalar("UTiling"), scalar("VTiling"),
			boolean("UnMirrorU"), boolean("UnMirrorV")),
	},
	"MaterialExpressionTime": {
		Fields: fields(boolean("bIgnorePause"), scalar("Period"), boolean("bOverride_Period")),
	},
	"MaterialExpressionTransform": {
		Inputs: ins("Input"),
		Fields: fields(
			enum("TransformSourceType", VectorTransformSources),
			enum("TransformType", VectorTransforms),
		),
	},
	"MaterialExpressionTransformPosition": {
		Inputs: ins("Input"),
		Fields: fields(
			enum("TransformSourceType", PositionTransformSources),
			enum("TransformType", PositionTransformSources),
		),
	},
	"MaterialExpressionVectorNoise": {
		Inputs: ins("Position"),
		Fields: fields(enum("NoiseFunction", VectorNoiseFunctions), integer("Quality"),
			boolean("bTiling"), integer("TileSize")),
	},
	"MaterialExpressionVertexInterpolator": {Inputs: ins("Input")},
	"MaterialExpressionViewProperty": {
		Fields: fields(enum("Property", ViewProperties)),
	},
	"MaterialExpressionVirtualTextureFeatureSwitch": {Inputs: ins("No", "Yes")},
	"MaterialExpressionWorldPosition": {
		Fields: fields(enum("WorldPositionShaderOffset", WorldPositionModes)),
	},
}
