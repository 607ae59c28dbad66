package export

import (
	"errors"
	"strings"
	"testing"
)

func TestBagAccessors(t *testing.T) {
	b := Bag{
		"F":   1.5,
		"I":   3.0,
		"B":   true,
		"S":   "text",
		"O":   map[string]any{"K": "v"},
		"A":   []any{map[string]any{"X": 1.0}, nil, "skip", map[string]any{"Y": 2.0}},
		"Str": []any{"a", 1.0, "b"},
	}

	if v, ok := b.Float("F"); !ok || v != 1.5 {
		t.Errorf("Float(F) = %v, %v", v, ok)
	}
	if v, ok := b.Int("I"); !ok || v != 3 {
		t.Errorf("Int(I) = %v, %v", v, ok)
	}
	if v, ok := b.Bool("B"); !ok || !v {
		t.Errorf("Bool(B) = %v, %v", v, ok)
	}
	if v, ok := b.String("S"); !ok || v != "text" {
		t.Errorf("String(S) = %v, %v", v, ok)
	}
	if o, ok := b.Object("O"); !ok || o["K"] != "v" {
		t.Errorf("Object(O) = %v, %v", o, ok)
	}
	if objs, ok := b.Objects("A"); !ok || len(objs) != 2 {
		t.Errorf("Objects(A) = %v, %v, want 2 objects", objs, ok)
	}
	if ss, ok := b.Strings("Str"); !ok || len(ss) != 2 || ss[0] != "a" || ss[1] != "b" {
		t.Errorf("Strings(Str) = %v, %v", ss, ok)
	}

	// Wrong shapes read as absent
	if _, ok := b.Float("S"); ok {
		t.Error("Float over a string should report absent")
	}
	if _, ok := b.Object("F"); ok {
		t.Error("Object over a number should report absent")
	}
	if _, ok := b.Bool("missing"); ok {
		t.Error("missing key should report absent")
	}
}

func TestNormalizeKind(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"MaterialExpressionAdd", "MaterialExpressionAdd"},
		{"UScriptClass'MaterialExpressionAdd'", "MaterialExpressionAdd"},
		{"Class'Foo", "Foo"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeKind(tt.in); got != tt.want {
			t.Errorf("NormalizeKind(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSubobjectName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"MaterialExpressionAdd'MaterialExpressionAdd_13'", "MaterialExpressionAdd_13"},
		{"MaterialExpressionComment'MaterialExpressionComment_0'", "MaterialExpressionComment_0"},
		{"MaterialExpressionAdd'M_Base.M_Base:MaterialExpressionAdd_2'", "MaterialExpressionAdd_2"},
		{"/Game/M_Base.M_Base:Sub_0", "Sub_0"},
		{"PlainName", "PlainName"},
	}
	for _, tt := range tests {
		if got := SubobjectName(tt.in); got != tt.want {
			t.Errorf("SubobjectName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseDocument(t *testing.T) {
	doc := `[
		{"Type": "Material", "Name": "M_Base", "Properties": {"TwoSided": true}},
		{"Type": "MaterialExpressionAdd", "Name": "Add_0", "Outer": "M_Base"},
		null,
		{"Name": "NoKind"},
		7,
		{"Class": "UScriptClass'MaterialExpressionConstant'", "Name": "Const_0"}
	]`

	d, err := ParseDocument(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ParseDocument error: %v", err)
	}

	if len(d.Records) != 3 {
		t.Fatalf("Records = %d, want 3", len(d.Records))
	}
	if d.Dropped != 3 {
		t.Errorf("Dropped = %d, want 3", d.Dropped)
	}

	if d.Records[0].Name != "M_Base" || d.Records[0].Kind != "Material" {
		t.Errorf("record 0 = %+v", d.Records[0])
	}
	if v, ok := d.Records[0].Properties.Bool("TwoSided"); !ok || !v {
		t.Error("record 0 should carry its property bag")
	}
	if d.Records[1].Outer != "M_Base" {
		t.Errorf("record 1 Outer = %q, want M_Base", d.Records[1].Outer)
	}
	// Properties may be absent; the bag must still be usable
	if d.Records[1].Properties == nil {
		t.Error("record without Properties should get an empty bag")
	}
	// Kind derived from the Class wrapper
	if d.Records[2].Kind != "MaterialExpressionConstant" {
		t.Errorf("record 2 Kind = %q", d.Records[2].Kind)
	}
}

func TestParseDocumentRejectsNonArray(t *testing.T) {
	if _, err := ParseDocument(strings.NewReader(`{"Type": "Material"}`)); err == nil {
		t.Error("ParseDocument should reject a non-array document")
	}
}

func rec(name, kind, outer string) Record {
	return Record{Name: name, Kind: kind, Outer: outer, Properties: Bag{}}
}

func TestPartitionSplitsEditorMetadata(t *testing.T) {
	records := []Record{
		rec("M_Base", "Material", ""),
		rec("EOD", "MaterialEditorOnlyData", "M_Base"),
		rec("Add_0", "MaterialExpressionAdd", "M_Base"),
		rec("Const_0", "MaterialExpressionConstant", "M_Base"),
	}

	idx, err := Partition(records, PartitionOptions{UnitKind: "Material", Owner: "M_Base"})
	if err != nil {
		t.Fatalf("Partition error: %v", err)
	}

	if idx.Meta == nil || idx.Meta.Name != "EOD" {
		t.Fatalf("Meta = %+v, want the editor-only-data record", idx.Meta)
	}
	if idx.Len() != 3 {
		t.Errorf("Len = %d, want 3", idx.Len())
	}
	wantOrder := []string{"M_Base", "Add_0", "Const_0"}
	for i, name := range wantOrder {
		if idx.Order[i] != name {
			t.Errorf("Order[%d] = %q, want %q", i, idx.Order[i], name)
		}
	}
}

func TestPartitionOwnerFilter(t *testing.T) {
	records := []Record{
		rec("Add_0", "MaterialExpressionAdd", "M_Base"),
		rec("Sub_0", "MaterialExpressionSubtract", "MF_Nested"),
		rec("Mul_0", "MaterialExpressionMultiply", "M_Base"),
	}

	idx, err := Partition(records, PartitionOptions{
		UnitKind:      "Material",
		Owner:         "M_Base",
		FilterByOwner: true,
	})
	if err != nil {
		t.Fatalf("Partition error: %v", err)
	}

	if idx.Len() != 2 {
		t.Fatalf("Len = %d, want 2", idx.Len())
	}
	if _, ok := idx.Get("Sub_0"); ok {
		t.Error("record with foreign owner should be filtered out")
	}
}

func TestPartitionDuplicateLastWins(t *testing.T) {
	first := rec("Add_0", "MaterialExpressionAdd", "M")
	first.Properties = Bag{"ConstA": 1.0}
	second := rec("Add_0", "MaterialExpressionAdd", "M")
	second.Properties = Bag{"ConstA": 2.0}

	idx, err := Partition([]Record{first, second}, PartitionOptions{UnitKind: "Material"})
	if err != nil {
		t.Fatalf("Partition error: %v", err)
	}

	if len(idx.Duplicates) != 1 || idx.Duplicates[0] != "Add_0" {
		t.Errorf("Duplicates = %v", idx.Duplicates)
	}
	got, _ := idx.Get("Add_0")
	if v, _ := got.Properties.Float("ConstA"); v != 2.0 {
		t.Errorf("last record should win, ConstA = %v", v)
	}
	if len(idx.Order) != 1 {
		t.Errorf("Order should hold the name once, got %v", idx.Order)
	}
}

func TestPartitionDuplicateFail(t *testing.T) {
	first := rec("Add_0", "MaterialExpressionAdd", "M")
	first.Properties = Bag{"ConstA": 1.0}
	second := rec("Add_0", "MaterialExpressionAdd", "M")
	second.Properties = Bag{"ConstA": 2.0}

	idx, err := Partition([]Record{first, second}, PartitionOptions{
		UnitKind:        "Material",
		DuplicatePolicy: DuplicateFail,
	})
	if !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("Partition error = %v, want ErrDuplicateName", err)
	}

	// The index is still usable; the first record wins.
	got, ok := idx.Get("Add_0")
	if !ok {
		t.Fatal("index should still carry the record")
	}
	if v, _ := got.Properties.Float("ConstA"); v != 1.0 {
		t.Errorf("first record should win under fail policy, ConstA = %v", v)
	}
}
