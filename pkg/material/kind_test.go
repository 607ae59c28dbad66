package material

import "testing"

func TestEnumTableResolve(t *testing.T) {
	cases := []struct {
		name  string
		table *EnumTable
		in    string
		want  Enum
		ok    bool
	}{
		{"prefixed", TextureMipValueModes, "TMVM_MipLevel", Enum{"TMVM_MipLevel", 1}, true},
		{"scoped", TextureMipValueModes, "ETextureMipValueMode::TMVM_MipBias", Enum{"TMVM_MipBias", 2}, true},
		{"scoped type", ClampModes, "EClampMode::CMODE_ClampMin", Enum{"CMODE_ClampMin", 1}, true},
		{"bare", AttributeBlendTypes, "Blend", Enum{"Blend", 0}, true},
		{"bare color", ChannelMaskColors, "Alpha", Enum{"Alpha", 3}, true},
		{"unknown", TextureMipValueModes, "TMVM_Bogus", Enum{}, false},
		{"empty", SamplerTypes, "", Enum{}, false},
	}
	for _, tc := range cases {
		got, ok := tc.table.Resolve(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Errorf("%s: Resolve(%q) = %v, %v; want %v, %v", tc.name, tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestBuiltinLookup(t *testing.T) {
	r := Builtin()
	for _, k := range []Kind{
		"MaterialExpressionAdd",
		"MaterialExpressionTextureSample",
		"MaterialExpressionMaterialFunctionCall",
		"MaterialExpressionLandscapeLayerBlend",
	} {
		if _, ok := r.Lookup(k); !ok {
			t.Errorf("Lookup(%q) missing", k)
		}
	}
	if _, ok := r.Lookup("MaterialExpressionUnknownFutureNode"); ok {
		t.Error("Lookup accepted an unregistered kind")
	}
}

func TestFlattenBasesFirst(t *testing.T) {
	r := Builtin()
	chain := r.Flatten("MaterialExpressionChannelMaskParameter")
	if len(chain) != 2 {
		t.Fatalf("chain length = %d, want 2", len(chain))
	}
	base, own := chain[0], chain[1]
	if !base.Caps.Has(CapParameter) {
		t.Error("base spec lost the parameter tier")
	}
	found := false
	for _, f := range base.Fields {
		if f.Key == "DefaultValue" && f.Kind == FieldColor {
			found = true
		}
	}
	if !found {
		t.Error("base spec missing the DefaultValue color field")
	}
	if len(own.Inputs) != 1 || own.Inputs[0].Field != "Input" {
		t.Errorf("own spec inputs = %+v, want the single Input", own.Inputs)
	}
}

func TestCapsAcrossBases(t *testing.T) {
	r := Builtin()
	cases := []struct {
		kind Kind
		want CapSet
	}{
		{"MaterialExpressionTextureSample", CapTextureSample | CapTextureBase},
		{"MaterialExpressionTextureSampleParameter2D", CapTextureSample | CapTextureSampleParameter | CapTextureBase},
		{"MaterialExpressionTextureObject", CapTextureBase},
		{"MaterialExpressionScalarParameter", CapParameter},
		{"MaterialExpressionChannelMaskParameter", CapParameter},
		{"MaterialExpressionRuntimeVirtualTextureSampleParameter", 0},
		{"MaterialExpressionAdd", 0},
	}
	for _, tc := range cases {
		if got := r.Caps(tc.kind); got != tc.want {
			t.Errorf("Caps(%s) = %b, want %b", tc.kind, got, tc.want)
		}
	}
}

func TestBareSpec(t *testing.T) {
	r := Builtin()
	s, ok := r.Lookup("MaterialExpressionLength")
	if !ok {
		t.Fatal("length kind not registered")
	}
	if !s.Bare() {
		t.Error("length spec should be bare")
	}
	if s.Space() != NamespaceInterchange {
		t.Errorf("namespace = %q, want interchange", s.Space())
	}
	add, _ := r.Lookup("MaterialExpressionAdd")
	if add.Bare() {
		t.Error("add spec reported bare")
	}
	if add.Space() != NamespaceEngine {
		t.Errorf("add namespace = %q, want engine default", add.Space())
	}
}

func TestInputAliasOrder(t *testing.T) {
	r := Builtin()
	clamp, _ := r.Lookup("MaterialExpressionClamp")
	var minKeys []string
	for _, in := range clamp.Inputs {
		if in.Field == "Min" {
			minKeys = in.Keys
		}
	}
	if len(minKeys) != 2 || minKeys[0] != "min" || minKeys[1] != "Min" {
		t.Errorf("clamp Min keys = %v, want lowercase probed first", minKeys)
	}
	smooth, _ := r.Lookup("MaterialExpressionSmoothStep")
	for _, in := range smooth.Inputs {
		if in.Field == "Min" && (len(in.Keys) != 2 || in.Keys[0] != "Min") {
			t.Errorf("smoothstep Min keys = %v, want uppercase probed first", in.Keys)
		}
	}
}
