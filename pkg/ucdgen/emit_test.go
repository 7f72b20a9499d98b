package ucdgen

import (
	"strings"
	"testing"
)

func TestEmitProducesValidGoSource(t *testing.T) {
	props := []CompiledProperty{
		{
			Spec:       PropertySpec{Name: "White_Space", Shape: ShapeBoolean},
			Boundaries: []int32{9, 14, 32, 33},
			Value0:     false,
		},
		{
			Spec:       PropertySpec{Name: "General_Category", Shape: ShapeEnum},
			Boundaries: []int32{0x41, 0x5B},
			Values:     []uint32{29, 0, 29},
			Width:      8,
		},
		{
			Spec:        PropertySpec{Name: "Name", Shape: ShapeString},
			Boundaries:  []int32{0x41, 0x42},
			Values:      []uint32{0, 1, 0},
			Width:       8,
			StringAtoms: []string{"", "LATIN CAPITAL LETTER A"},
		},
	}
	out, err := Emit("ucdgen_fixture", props)
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	src := string(out)
	for _, want := range []string{
		"package ucdgen_fixture",
		"WhiteSpaceBoundaries",
		"WhiteSpaceValue0 = false",
		"GeneralCategoryValues",
		"NameStringAtoms",
		"LATIN CAPITAL LETTER A",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("generated source missing %q; got:\n%s", want, src)
		}
	}
}

func TestEmitRejectsNothingButProducesHeader(t *testing.T) {
	out, err := Emit("empty", nil)
	if err != nil {
		t.Fatalf("Emit(nil): %v", err)
	}
	if !strings.Contains(string(out), "package empty") {
		t.Errorf("Emit(nil) = %s, want a package declaration", out)
	}
}

// TestEmitFullArtifact exercises the five pieces spec §4.5 requires
// beyond the raw literal arrays: the property-identifier enum, a
// catalog property's own value enum, its NBRanges constant, a typed
// accessor, and an alias-forwarding accessor (C8).
func TestEmitFullArtifact(t *testing.T) {
	props := []CompiledProperty{
		{
			Spec:       PropertySpec{Name: "White_Space", Shape: ShapeBoolean},
			Boundaries: []int32{9, 14, 32, 33},
			Value0:     false,
			Aliases:    []string{"WSpace"},
		},
		{
			Spec:       PropertySpec{Name: "General_Category", Shape: ShapeCatalog},
			Boundaries: []int32{0x41, 0x5B},
			Values:     []uint32{0, 1, 0},
			Width:      8,
			ValueNames: []string{"Control", "Uppercase_Letter"},
			Aliases:    []string{"gc"},
		},
	}
	out, err := Emit("ucdgen_fixture", props)
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	src := string(out)
	for _, want := range []string{
		"type Property int",
		"PropertyWhiteSpace Property = iota + 1",
		"PropertyWSpace = PropertyWhiteSpace",
		"PropertyGeneralCategory",
		"PropertyGc = PropertyGeneralCategory",
		"NBProperties = 2",
		"type GeneralCategoryValue uint8",
		"GeneralCategoryUppercaseLetter GeneralCategoryValue = 2",
		"GeneralCategoryNBValues = 2",
		"GeneralCategoryNBRanges = 3",
		"func GetGeneralCategory(c rune) GeneralCategoryValue",
		"func GetGc(c rune) GeneralCategoryValue { return GetGeneralCategory(c) }",
		"func GetWhiteSpace(c rune) bool",
		"func GetWSpace(c rune) bool { return GetWhiteSpace(c) }",
		"ucd.EnumTable[GeneralCategoryValue]",
		"ucd.BoolTable",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("generated source missing %q; got:\n%s", want, src)
		}
	}
}
