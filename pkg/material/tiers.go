package material

// Shared property tiers. A tier is an ordinary Spec applied to every kind
// whose capability set carries the matching tag, after the kind's own table
// rows. The first two run before the common wrapper pass, the last two
// after it, mirroring the expression hierarchy the capabilities stand for.
var (
	// TextureSampleTier covers sampler state and the coordinate inputs of
	// every texture-sampling kind.
	TextureSampleTier = Spec{
		Fields: fields(enum("MipValueMode", TextureMipValueModes),
			enum("SamplerSource", SamplerSourceModes),
			boolean("AutomaticViewMipBias"), integer("ConstCoordinate"),
			integer("ConstMipValue")),
		Inputs: ins("Coordinates", "TextureObject", "MipValue",
			"CoordinatesDX", "CoordinatesDY", "AutomaticViewMipBiasValue"),
	}

	// TextureSampleParameterTier adds parameter identity and per-channel
	// display names to parameterized texture samples.
	TextureSampleParameterTier = Spec{
		Fields: fields(text("ParameterName"), guid("ExpressionGUID"),
			text("Group"), integer("SortPriority"), channelNames()),
	}

	// ParameterTier adds parameter identity to non-texture parameters.
	ParameterTier = Spec{
		Fields: fields(guid("ExpressionGUID"), text("ParameterName"),
			text("Group"), integer("SortPriority")),
	}

	// TextureBaseTier resolves the texture asset itself. The ref recovers
	// through the missing-asset hook and triggers the recompile side effect
	// on material units.
	TextureBaseTier = Spec{
		Refs: []RefSpec{{Key: "Texture", Recover: true, Recompile: true}},
		Fields: fields(enum("SamplerType", SamplerTypes),
			boolean("IsDefaultMeshpaintTexture")),
	}
)
