package ucd

import (
	"reflect"
	"testing"
)

func TestGetGeneralCategory(t *testing.T) {
	cases := map[rune]GeneralCategoryValue{
		'A':     GcUppercaseLetter,
		'a':     GcLowercaseLetter,
		'0':     GcDecimalNumber,
		' ':     GcSpaceSeparator,
		'\t':    GcControl,
		'_':     GcConnectorPunctuation,
		0xAA:    GcOtherLetter,
		0x391:   GcUppercaseLetter, // GREEK CAPITAL LETTER ALPHA
		0x3B1:   GcLowercaseLetter, // GREEK SMALL LETTER ALPHA
		0x4E2D:  GcOtherLetter,     // CJK "中"
		0xAC00:  GcOtherLetter,     // HANGUL SYLLABLE GA
		0xD800:  GcSurrogate,
		0xE000:  GcPrivateUse,
		MaxCodePoint: GcUnassigned,
	}
	for cp, want := range cases {
		if got := GetGeneralCategory(cp); got != want {
			t.Errorf("GetGeneralCategory(%#x) = %v, want %v", cp, got, want)
		}
	}
}

func TestGetGeneralCategoryClampsOutOfRange(t *testing.T) {
	if got, want := GetGeneralCategory(-1), GetGeneralCategory(0); got != want {
		t.Errorf("GetGeneralCategory(-1) = %v, want clamp to GetGeneralCategory(0) = %v", got, want)
	}
	if got, want := GetGeneralCategory(0x20_0000), GetGeneralCategory(MaxCodePoint); got != want {
		t.Errorf("GetGeneralCategory(overflow) = %v, want clamp to MaxCodePoint value %v", got, want)
	}
}

func TestGetWhiteSpace(t *testing.T) {
	for _, cp := range []rune{'\t', '\n', ' ', 0xA0} {
		if !GetWhiteSpace(cp) {
			t.Errorf("GetWhiteSpace(%#x) = false, want true", cp)
		}
	}
	for _, cp := range []rune{'A', '0', 0x21} {
		if GetWhiteSpace(cp) {
			t.Errorf("GetWhiteSpace(%#x) = true, want false", cp)
		}
	}
}

func TestGetAlphabeticAndCase(t *testing.T) {
	if !GetAlphabetic('A') || !GetAlphabetic('a') || GetAlphabetic('0') {
		t.Fatalf("Alphabetic mismatch for A/a/0")
	}
	if !GetUppercase('A') || GetUppercase('a') {
		t.Fatalf("Uppercase mismatch for A/a")
	}
	if !GetLowercase('a') || GetLowercase('A') {
		t.Fatalf("Lowercase mismatch for A/a")
	}
}

func TestGetBidiMirrored(t *testing.T) {
	for _, cp := range []rune{'(', ')', '[', ']', '{', '}'} {
		if !GetBidiMirrored(cp) {
			t.Errorf("GetBidiMirrored(%q) = false, want true", cp)
		}
	}
	if GetBidiMirrored('\\') {
		t.Errorf("GetBidiMirrored('\\\\') = true, want false")
	}
}

func TestGetNumericValue(t *testing.T) {
	cases := map[rune]string{
		'0': "0", '5': "5", '9': "9",
		0xBD:   "1/2",
		0x2160: "1",
		'A':    "NaN",
	}
	for cp, want := range cases {
		if got := GetNumericValue(cp); got != want {
			t.Errorf("GetNumericValue(%#x) = %q, want %q", cp, got, want)
		}
	}
}

func TestSimpleCaseMappings(t *testing.T) {
	if got := GetSimpleLowercaseMapping('A'); got != 'a' {
		t.Errorf("GetSimpleLowercaseMapping('A') = %q, want 'a'", got)
	}
	if got := GetSimpleUppercaseMapping('a'); got != 'A' {
		t.Errorf("GetSimpleUppercaseMapping('a') = %q, want 'A'", got)
	}
	if got := GetSimpleLowercaseMapping('0'); got != '0' {
		t.Errorf("GetSimpleLowercaseMapping('0') = %q, want identity '0'", got)
	}
	if got := GetSimpleLowercaseMapping(0x391); got != 0x3B1 {
		t.Errorf("GetSimpleLowercaseMapping(GREEK ALPHA) = %#x, want %#x", got, 0x3B1)
	}
}

func TestFullUppercaseMappingExpands(t *testing.T) {
	got := GetUppercaseMapping(0xDF) // LATIN SMALL LETTER SHARP S
	want := []rune{'S', 'S'}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GetUppercaseMapping(SHARP S) = %v, want %v", got, want)
	}
	if got := GetUppercaseMapping('a'); !reflect.DeepEqual(got, []rune{'A'}) {
		t.Errorf("GetUppercaseMapping('a') = %v, want ['A']", got)
	}
	if got := GetUppercaseMapping('0'); !reflect.DeepEqual(got, []rune{'0'}) {
		t.Errorf("GetUppercaseMapping('0') identity mismatch: %v", got)
	}
}

func TestScriptExtensionsFallsBackToScript(t *testing.T) {
	got := GetScriptExtensions('A')
	want := []ScriptValue{GetScript('A')}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GetScriptExtensions('A') = %v, want fallback %v", got, want)
	}
}

func TestScriptExtensionsMultiScript(t *testing.T) {
	got := GetScriptExtensions(0x640) // ARABIC TATWEEL
	if len(got) != 2 {
		t.Fatalf("GetScriptExtensions(TATWEEL) = %v, want 2 entries", got)
	}
	seen := map[ScriptValue]bool{}
	for _, s := range got {
		seen[s] = true
	}
	if !seen[1] || !seen[7] { // Common, Arabic
		t.Errorf("GetScriptExtensions(TATWEEL) = %v, want set containing Common and Arabic", got)
	}
}

func TestGetASCIIHexDigit(t *testing.T) {
	for _, cp := range []rune{'0', '9', 'A', 'F', 'a', 'f'} {
		if !GetASCIIHexDigit(cp) {
			t.Errorf("GetASCIIHexDigit(%q) = false, want true", cp)
		}
	}
	for _, cp := range []rune{'/', ';', '@', 'G', '`', 'g', 0xFF11} {
		if GetASCIIHexDigit(cp) {
			t.Errorf("GetASCIIHexDigit(%#x) = true, want false", cp)
		}
	}
}

func TestGetBidiMirroringGlyph(t *testing.T) {
	cases := map[rune]rune{
		'A': 'A', '(': ')', ')': '(', 0xAB: 0xBB, 0x2208: 0x220B,
	}
	for cp, want := range cases {
		if got := GetBidiMirroringGlyph(cp); got != want {
			t.Errorf("GetBidiMirroringGlyph(%#x) = %#x, want %#x", cp, got, want)
		}
	}
}

func TestGetDecompositionMapping(t *testing.T) {
	for _, cp := range []rune{'$', 'A', 'b', 0x0533} {
		if got := GetDecompositionMapping(cp); len(got) != 1 || got[0] != cp {
			t.Errorf("GetDecompositionMapping(%#x) = %v, want identity", cp, got)
		}
	}
	if got := GetDecompositionMapping(0xB5); len(got) != 1 || got[0] != 0x03BC {
		t.Errorf("GetDecompositionMapping(MICRO SIGN) = %v, want [0x3BC]", got)
	}
	if got := GetDecompositionMapping(0x2460); len(got) != 1 || got[0] != '1' {
		t.Errorf("GetDecompositionMapping(CIRCLED DIGIT ONE) = %v, want ['1']", got)
	}
	if got, want := GetDecompositionMapping(0xFB03), []rune{'f', 'f', 'i'}; !reflect.DeepEqual(got, want) {
		t.Errorf("GetDecompositionMapping(LATIN SMALL LIGATURE FFI) = %v, want %v", got, want)
	}
	if got, want := GetDecompositionMapping(0x1FFC), []rune{0x03A9, 0x0345}; !reflect.DeepEqual(got, want) {
		t.Errorf("GetDecompositionMapping(GREEK CAPITAL LETTER OMEGA WITH PROSGEGRAMMENI) = %v, want %v", got, want)
	}
}

func TestGetNFKCCasefold(t *testing.T) {
	if got := GetNFKCCasefold('c'); len(got) != 1 || got[0] != 'c' {
		t.Errorf("GetNFKCCasefold('c') = %v, want identity ['c']", got)
	}
	if got := GetNFKCCasefold('D'); len(got) != 1 || got[0] != 'd' {
		t.Errorf("GetNFKCCasefold('D') = %v, want ['d']", got)
	}
	if got, want := GetNFKCCasefold(0xBC), []rune{'1', 0x2044, '4'}; !reflect.DeepEqual(got, want) {
		t.Errorf("GetNFKCCasefold(VULGAR FRACTION ONE QUARTER) = %v, want %v", got, want)
	}
}

func TestQueryDispatchResolvesAliases(t *testing.T) {
	got, err := Query("gc", 'A')
	if err != nil {
		t.Fatalf("Query(gc, 'A') error: %v", err)
	}
	if got != GcUppercaseLetter {
		t.Errorf("Query(gc, 'A') = %v, want %v", got, GcUppercaseLetter)
	}
	if _, err := Query("General_Category", 'A'); err != nil {
		t.Errorf("Query(General_Category, 'A') error: %v", err)
	}
	if _, err := Query("not_a_property", 'A'); err == nil {
		t.Errorf("Query(not_a_property, ...) = nil error, want error")
	}
}

func TestResolveGeneralCategoryValueAliases(t *testing.T) {
	for _, name := range []string{"Lu", "Uppercase_Letter"} {
		v, ok := ResolveGeneralCategoryValue(name)
		if !ok || v != GcUppercaseLetter {
			t.Errorf("ResolveGeneralCategoryValue(%q) = (%v, %v), want (%v, true)", name, v, ok, GcUppercaseLetter)
		}
	}
}
