package material

func newRegistry() *Registry {
	r := &Registry{specs: make(map[Kind]Spec, 160)}
	r.add(mathKinds)
	r.add(utilityKinds)
	r.add(parameterKinds)
	r.add(landscapeKinds)
	return r
}

func (r *Registry) add(m map[Kind]Spec) {
	for k, s := range m {
		r.specs[k] = s
	}
}

func scalar(key string) FieldSpec  { return FieldSpec{Key: key, Kind: FieldScalar} }
func integer(key string) FieldSpec { return FieldSpec{Key: key, Kind: FieldInt} }
func boolean(key string) FieldSpec { return FieldSpec{Key: key, Kind: FieldBool} }
func text(key string) FieldSpec    { return FieldSpec{Key: key, Kind: FieldString} }
func guid(key string) FieldSpec    { return FieldSpec{Key: key, Kind: FieldGUID} }
func color(key string) FieldSpec   { return FieldSpec{Key: key, Kind: FieldColor} }
func vector2(key string) FieldSpec { return FieldSpec{Key: key, Kind: FieldVector2} }
func vector(key string) FieldSpec  { return FieldSpec{Key: key, Kind: FieldVector} }
func vector4(key string) FieldSpec { return FieldSpec{Key: key, Kind: FieldVector4} }

func textList(key string) FieldSpec { return FieldSpec{Key: key, Kind: FieldStringList} }
func guidList(key string) FieldSpec { return FieldSpec{Key: key, Kind: FieldGUIDList} }
func channelNames() FieldSpec       { return FieldSpec{Key: "ChannelNames", Kind: FieldChannelNames} }

func enum(key string, t *EnumTable) FieldSpec {
	return FieldSpec{Key: key, Kind: FieldEnum, Enum: t}
}

func fields(fs ...FieldSpec) []FieldSpec { return fs }

// ins builds one generic input per key, stored under the same name.
func ins(keys ...string) []InputSpec {
	specs := make([]InputSpec, len(keys))
	for i, k := range keys {
		specs[i] = InputSpec{Keys: []string{k}, Field: k}
	}
	return specs
}

// in builds one generic input stored under field, probing the given keys in
// order. With no keys the field name is the only key.
func in(field string, keys ...string) InputSpec {
	if len(keys) == 0 {
		keys = []string{field}
	}
	return InputSpec{Keys: keys, Field: field}
}

var mathKinds = map[Kind]Spec{
	"MaterialExpressionAbs": {Inputs: ins("Input")},
	"MaterialExpressionAdd": {
		Inputs: ins("A", "B"),
		Fields: fields(scalar("ConstA"), scalar("ConstB")),
	},
	"MaterialExpressionAppendVector":    {Inputs: ins("A", "B")},
	"MaterialExpressionArcsine":         {Inputs: ins("Input")},
	"MaterialExpressionArcsineFast":     {Inputs: ins("Input")},
	"MaterialExpressionArctangent":      {Inputs: ins("Input")},
	"MaterialExpressionArctangentFast":  {Inputs: ins("Input")},
	"MaterialExpressionArctangent2":     {Inputs: ins("Y", "X")},
	"MaterialExpressionArctangent2Fast": {Inputs: ins("Y", "X")},
	"MaterialExpressionCeil":            {Inputs: ins("Input")},
	"MaterialExpressionClamp": {
		Inputs: []InputSpec{in("Input"), in("Min", "min", "Min"), in("Max", "max", "Max")},
		Fields: fields(enum("ClampMode", ClampModes), scalar("MinDefault"), scalar("MaxDefault")),
	},
	"MaterialExpressionComponentMask": {
		Inputs: ins("Input"),
		Fields: fields(boolean("R"), boolean("G"), boolean("B"), boolean("A")),
	},
	"MaterialExpressionConstant":        {Fields: fields(scalar("R"))},
	"MaterialExpressionConstant2Vector": {Fields: fields(scalar("R"), scalar("G"))},
	"MaterialExpressionConstant3Vector": {Fields: fields(color("Constant"))},
	"MaterialExpressionConstant4Vector": {Fields: fields(color("Constant"))},
	"MaterialExpressionConstantBiasScale": {
		Inputs: ins("Input"),
		Fields: fields(scalar("Bias"), scalar("Scale")),
	},
	"MaterialExpressionCosine": {
		Inputs: ins("Input"),
		Fields: fields(scalar("Period")),
	},
	"MaterialExpressionCrossProduct": {Inputs: ins("A", "B")},
	"MaterialExpressionDDX":          {Inputs: ins("Value")},
	"MaterialExpressionDDY":          {Inputs: ins("Value")},
	"MaterialExpressionDesaturation": {
		Inputs: ins("Input", "Fraction"),
		Fields: fields(color("LuminanceFactors")),
	},
	"MaterialExpressionDistance": {Inputs: ins("A", "B")},
	"MaterialExpressionDivide": {
		Inputs: ins("A", "B"),
		Fields: fields(scalar("ConstA"), scalar("ConstB")),
	},
	"MaterialExpressionDotProduct": {Inputs: ins("A", "B")},
	"MaterialExpressionFloor":      {Inputs: ins("Input")},
	"MaterialExpressionFmod":       {Inputs: ins("A", "B")},
	"MaterialExpressionFrac":       {Inputs: ins("Input")},
	"MaterialExpressionFresnel": {
		Inputs: ins("ExponentIn", "BaseReflectFractionIn", "Normal"),
		Fields: fields(scalar("Exponent"), scalar("BaseReflectFraction")),
	},
	"MaterialExpressionIf": {
		Inputs: ins("A", "B", "AGreaterThanB", "AEqualsB", "ALessThanB"),
		Fields: fields(scalar("EqualsThreshold"), scalar("ConstB")),
	},
	"MaterialExpressionLength": {Namespace: NamespaceInterchange},
	"MaterialExpressionLinearInterpolate": {
		Inputs: ins("A", "B", "Alpha"),
		Fields: fields(scalar("ConstA"), scalar("ConstB"), scalar("ConstAlpha")),
	},
	"MaterialExpressionMax": {
		Inputs: ins("A", "B"),
		Fields: fields(scalar("ConstA"), scalar("ConstB")),
	},
	"MaterialExpressionMin": {
		Inputs: ins("A", "B"),
		Fields: fields(scalar("ConstA"), scalar("ConstB")),
	},
	"MaterialExpressionMultiply": {
		Inputs: ins("A", "B"),
		Fields: fields(scalar("ConstA"), scalar("ConstB")),
	},
	"MaterialExpressionNormalize": {Inputs: ins("VectorInput")},
	"MaterialExpressionOneMinus":  {Inputs: ins("Input")},
	"MaterialExpressionPower": {
		Inputs: ins("Base", "Exponent"),
		Fields: fields(scalar("ConstExponent")),
	},
	"MaterialExpressionRound":    {Inputs: ins("Input")},
	"MaterialExpressionSaturate": {Inputs: ins("Input")},
	"MaterialExpressionSign":     {Inputs: ins("Input")},
	"MaterialExpressionSine": {
		Inputs: ins("Input"),
		Fields: fields(scalar("Period")),
	},
	"MaterialExpressionSmoothStep": {
		Inputs: []InputSpec{in("Min", "Min", "min"), in("Max", "Max", "max"), in("Value")},
		Fields: fields(scalar("ConstMin"), scalar("ConstMax"), scalar("ConstValue")),
	},
	"MaterialExpressionSphereMask": {
		Inputs: ins("A", "B", "Radius", "Hardness"),
		Fields: fields(scalar("AttenuationRadius"), scalar("HardnessPercent")),
	},
	"MaterialExpressionSquareRoot": {Inputs: ins("Input")},
	"MaterialExpressionStep": {
		Inputs: ins("Y", "X"),
		Fields: fields(scalar("ConstY"), scalar("ConstX")),
	},
	"MaterialExpressionSubtract": {
		Inputs: ins("A", "B"),
		Fields: fields(scalar("ConstA"), scalar("ConstB")),
	},
	"MaterialExpressionTruncate": {Inputs: ins("Input")},
}
