package ucd

// Remaining enum-shaped property tables. Several properties here are
// modeled as a single constant run over the curated codepoint universe
// this module covers (see DESIGN.md resolution 5): the representation
// and accessor mechanism are fully general and would gain additional
// runs from a real UCD release without any code change, only more
// table data.

var bidiClassTable = &EnumTable[BidiClassValue]{
	Ranges: &RuneRanges{Boundaries: []int32{
		0x09, 0x0E, 0x1C, 0x1F, 0x21, 0x30, 0x3A, 0x41, 0x5B,
		0x5E, 0x5D0, 0x5EB, 0x600, 0x61C, 0x61D,
	}},
	Values: []BidiClassValue{
		BcLeftToRight,    // [0,0x09)
		BcSegmentSeparator, // [0x09,0x0E) tab/newline-ish
		BcLeftToRight,    // [0x0E,0x1C)
		BcBoundaryNeutral, // [0x1C,0x1F) information separators
		BcWhiteSpace,     // [0x1F,0x21) including space
		BcOtherNeutral,   // [0x21,0x30) punctuation
		BcEuropeanNumber, // [0x30,0x3A) digits
		BcOtherNeutral,   // [0x3A,0x41)
		BcLeftToRight,    // [0x41,0x5B) upper latin
		BcOtherNeutral,   // [0x5B,0x5E)
		BcLeftToRight,    // [0x5E,0x5D0) including lower latin
		BcRightToLeft,    // [0x5D0,0x5EB) Hebrew block
		BcLeftToRight,    // [0x5EB,0x600)
		BcArabicNumber,   // [0x600,0x61C)
		BcArabicLetter,   // [0x61C,0x61D)
		BcLeftToRight,    // [0x61D, MaxCodePoint]
	},
}

// GetBidiClass returns the Bidi_Class property of cp.
func GetBidiClass(cp rune) BidiClassValue { return bidiClassTable.At(NormalizeCodePoint(cp)) }

var bptTable = &EnumTable[BidiPairedBracketTypeValue]{
	Ranges: &RuneRanges{Boundaries: []int32{0x28, 0x29, 0x2A, 0x5B, 0x5C, 0x5D, 0x5E, 0x7B, 0x7C, 0x7D, 0x7E}},
	Values: []BidiPairedBracketTypeValue{
		BptNone, BptOpen, BptClose, BptNone, BptOpen, BptNone,
		BptClose, BptNone, BptOpen, BptNone, BptClose, BptNone,
	},
}

// GetBidiPairedBracketType returns the Bidi_Paired_Bracket_Type of cp.
func GetBidiPairedBracketType(cp rune) BidiPairedBracketTypeValue {
	return bptTable.At(NormalizeCodePoint(cp))
}

// CanonicalCombiningClass is numeric (0-254), not a closed enum; stored
// as a plain uint8 table rather than a named-value enum.
var cccTable = &EnumTable[uint8]{
	Ranges: &RuneRanges{Boundaries: []int32{0x300, 0x315, 0x316}},
	Values: []uint8{0, 230, 220, 0},
}

// GetCanonicalCombiningClass returns the Canonical_Combining_Class of cp.
func GetCanonicalCombiningClass(cp rune) uint8 { return cccTable.At(NormalizeCodePoint(cp)) }

var dtTable = &EnumTable[DecompositionTypeValue]{
	Ranges: &RuneRanges{Boundaries: []int32{0xBC, 0xBF}},
	Values: []DecompositionTypeValue{DtNone, DtFraction, DtNone},
}

// GetDecompositionType returns the Decomposition_Type of cp.
func GetDecompositionType(cp rune) DecompositionTypeValue { return dtTable.At(NormalizeCodePoint(cp)) }

var eaTable = &EnumTable[EastAsianWidthValue]{
	Ranges: &RuneRanges{Boundaries: []int32{0x1100, 0x1160, 0x4E2D, 0x4E2E, 0xAC00, 0xAC01, 0xFF00, 0xFF61}},
	Values: []EastAsianWidthValue{
		EaNeutral, EaWide, EaNeutral, EaWide, EaNeutral, EaWide,
		EaNeutral, EaFull, EaNeutral,
	},
}

// GetEastAsianWidth returns the East_Asian_Width of cp.
func GetEastAsianWidth(cp rune) EastAsianWidthValue { return eaTable.At(NormalizeCodePoint(cp)) }

var gcbTable = &EnumTable[GraphemeClusterBreakValue]{
	Ranges: &RuneRanges{Boundaries: []int32{0x0A, 0x0B, 0x0D, 0x0E, 0x200D, 0x200E}},
	Values: []GraphemeClusterBreakValue{
		GCBOther, GCBLF, GCBOther, GCBCR, GCBOther, GCBZWJ, GCBOther,
	},
}

// GetGraphemeClusterBreak returns the Grapheme_Cluster_Break of cp.
func GetGraphemeClusterBreak(cp rune) GraphemeClusterBreakValue {
	return gcbTable.At(NormalizeCodePoint(cp))
}

var hstTable = &EnumTable[HangulSyllableTypeValue]{
	Ranges: &RuneRanges{Boundaries: []int32{0x1100, 0x1113, 0x1161, 0x1176, 0x11A8, 0x11C3, 0xAC00, 0xAC01}},
	Values: []HangulSyllableTypeValue{
		HstNotApplicable, HstLeadingJamo, HstNotApplicable, HstVowelJamo,
		HstNotApplicable, HstTrailingJamo, HstNotApplicable, HstLVSyllable,
		HstNotApplicable,
	},
}

// GetHangulSyllableType returns the Hangul_Syllable_Type of cp.
func GetHangulSyllableType(cp rune) HangulSyllableTypeValue {
	return hstTable.At(NormalizeCodePoint(cp))
}

var indicPositionalTable = &EnumTable[IndicPositionalCategoryValue]{
	Ranges: &RuneRanges{},
	Values: []IndicPositionalCategoryValue{0}, // NA constant over the curated universe
}

// GetIndicPositionalCategory returns the Indic_Positional_Category of cp.
func GetIndicPositionalCategory(cp rune) IndicPositionalCategoryValue {
	return indicPositionalTable.At(NormalizeCodePoint(cp))
}

var indicSyllabicTable = &EnumTable[IndicSyllabicCategoryValue]{
	Ranges: &RuneRanges{},
	Values: []IndicSyllabicCategoryValue{0}, // Other constant
}

// GetIndicSyllabicCategory returns the Indic_Syllabic_Category of cp.
func GetIndicSyllabicCategory(cp rune) IndicSyllabicCategoryValue {
	return indicSyllabicTable.At(NormalizeCodePoint(cp))
}

var jgTable = &EnumTable[JoiningGroupValue]{
	Ranges: &RuneRanges{Boundaries: []int32{0x627, 0x628, 0x629}},
	Values: []JoiningGroupValue{0, 3, 4, 0}, // No_Joining_Group, Alef, Beh, No_Joining_Group
}

// GetJoiningGroup returns the Joining_Group of cp.
func GetJoiningGroup(cp rune) JoiningGroupValue { return jgTable.At(NormalizeCodePoint(cp)) }

var jtTable = &EnumTable[JoiningTypeValue]{
	Ranges: &RuneRanges{Boundaries: []int32{0x627, 0x628, 0x629}},
	Values: []JoiningTypeValue{JtNonJoining, JtRightJoining, JtDualJoining, JtNonJoining},
}

// GetJoiningType returns the Joining_Type of cp.
func GetJoiningType(cp rune) JoiningTypeValue { return jtTable.At(NormalizeCodePoint(cp)) }

var lbTable = &EnumTable[LineBreakValue]{
	Ranges: &RuneRanges{Boundaries: []int32{0x0A, 0x0B, 0x0D, 0x0E, 0x20, 0x21, 0x30, 0x3A}},
	Values: []LineBreakValue{
		LbUnknown, LbLineFeed, LbUnknown, LbCarriageReturn, LbUnknown,
		LbSpace, LbUnknown, LbNumeric, LbUnknown,
	},
}

// GetLineBreak returns the Line_Break of cp.
func GetLineBreak(cp rune) LineBreakValue { return lbTable.At(NormalizeCodePoint(cp)) }

var nfcQcTable = &EnumTable[QuickCheckValue]{
	Ranges: &RuneRanges{Boundaries: []int32{0xC0, 0xC1}},
	Values: []QuickCheckValue{QcYes, QcMaybe, QcYes},
}

// GetNFCQuickCheck returns the NFC_Quick_Check of cp.
func GetNFCQuickCheck(cp rune) QuickCheckValue { return nfcQcTable.At(NormalizeCodePoint(cp)) }

var nfdQcTable = &EnumTable[QuickCheckValue]{
	Ranges: &RuneRanges{Boundaries: []int32{0xC0, 0xC1}},
	Values: []QuickCheckValue{QcYes, QcNo, QcYes},
}

// GetNFDQuickCheck returns the NFD_Quick_Check of cp.
func GetNFDQuickCheck(cp rune) QuickCheckValue { return nfdQcTable.At(NormalizeCodePoint(cp)) }

var nfkcQcTable = &EnumTable[QuickCheckValue]{
	Ranges: &RuneRanges{Boundaries: []int32{0xBC, 0xBD}},
	Values: []QuickCheckValue{QcYes, QcNo, QcYes},
}

// GetNFKCQuickCheck returns the NFKC_Quick_Check of cp.
func GetNFKCQuickCheck(cp rune) QuickCheckValue { return nfkcQcTable.At(NormalizeCodePoint(cp)) }

var nfkdQcTable = &EnumTable[QuickCheckValue]{
	Ranges: &RuneRanges{Boundaries: []int32{0xBC, 0xBD}},
	Values: []QuickCheckValue{QcYes, QcNo, QcYes},
}

// GetNFKDQuickCheck returns the NFKD_Quick_Check of cp.
func GetNFKDQuickCheck(cp rune) QuickCheckValue { return nfkdQcTable.At(NormalizeCodePoint(cp)) }

var ntTable = &EnumTable[NumericTypeValue]{
	Ranges: &RuneRanges{Boundaries: []int32{0x30, 0x3A, 0xBD, 0xBE, 0x2160, 0x2161}},
	Values: []NumericTypeValue{NtNone, NtDecimal, NtNone, NtNumeric, NtNone, NtNumeric, NtNone},
}

// GetNumericType returns the Numeric_Type of cp.
func GetNumericType(cp rune) NumericTypeValue { return ntTable.At(NormalizeCodePoint(cp)) }

var sbTable = &EnumTable[SentenceBreakValue]{
	Ranges: &RuneRanges{Boundaries: []int32{0x0D, 0x0E, 0x20, 0x21, 0x2E, 0x2F, 0x41, 0x5B, 0x61, 0x7B}},
	Values: []SentenceBreakValue{
		SBOther, SBCR, SBOther, SBSp, SBOther, SBATerm, SBOther,
		SBUpper, SBOther, SBLower, SBOther,
	},
}

// GetSentenceBreak returns the Sentence_Break of cp.
func GetSentenceBreak(cp rune) SentenceBreakValue { return sbTable.At(NormalizeCodePoint(cp)) }

var voTable = &EnumTable[VerticalOrientationValue]{
	Ranges: &RuneRanges{Boundaries: []int32{0x4E2D, 0x4E2E}},
	Values: []VerticalOrientationValue{VoRotated, VoUpright, VoRotated},
}

// GetVerticalOrientation returns the Vertical_Orientation of cp.
func GetVerticalOrientation(cp rune) VerticalOrientationValue {
	return voTable.At(NormalizeCodePoint(cp))
}

var wbTable = &EnumTable[WordBreakValue]{
	Ranges: &RuneRanges{Boundaries: []int32{0x0A, 0x0B, 0x0D, 0x0E, 0x30, 0x3A, 0x41, 0x5B, 0x61, 0x7B}},
	Values: []WordBreakValue{
		WBOther, WBLF, WBOther, WBCR, WBOther, WBNumeric, WBOther,
		WBALetter, WBOther, WBALetter, WBOther,
	},
}

// GetWordBreak returns the Word_Break of cp.
func GetWordBreak(cp rune) WordBreakValue { return wbTable.At(NormalizeCodePoint(cp)) }
