package ucd

// Value enums for catalog/enum-shaped properties. Each follows the
// teacher's dense iota-with-sentinel-count idiom (pkg/inst/instruction.go's
// OpCode/OpCodeCount), with a parallel short-name table for String() and
// for alias resolution in alias.go.

// GeneralCategoryValue is the General_Category enum (30 fixed values,
// not open — Unicode does not add new general categories).
type GeneralCategoryValue uint8

const (
	GcUppercaseLetter GeneralCategoryValue = iota
	GcLowercaseLetter
	GcTitlecaseLetter
	GcModifierLetter
	GcOtherLetter
	GcNonspacingMark
	GcSpacingMark
	GcEnclosingMark
	GcDecimalNumber
	GcLetterNumber
	GcOtherNumber
	GcConnectorPunctuation
	GcDashPunctuation
	GcOpenPunctuation
	GcClosePunctuation
	GcInitialPunctuation
	GcFinalPunctuation
	GcOtherPunctuation
	GcMathSymbol
	GcCurrencySymbol
	GcModifierSymbol
	GcOtherSymbol
	GcSpaceSeparator
	GcLineSeparator
	GcParagraphSeparator
	GcControl
	GcFormat
	GcSurrogate
	GcPrivateUse
	GcUnassigned
	gcCount
)

var gcShortNames = [gcCount]string{
	"Lu", "Ll", "Lt", "Lm", "Lo",
	"Mn", "Mc", "Me",
	"Nd", "Nl", "No",
	"Pc", "Pd", "Ps", "Pe", "Pi", "Pf", "Po",
	"Sm", "Sc", "Sk", "So",
	"Zs", "Zl", "Zp",
	"Cc", "Cf", "Cs", "Co", "Cn",
}

func (v GeneralCategoryValue) String() string {
	if int(v) < len(gcShortNames) {
		return gcShortNames[v]
	}
	return "Cn"
}

// BidiClassValue is the Bidi_Class enum.
type BidiClassValue uint8

const (
	BcLeftToRight BidiClassValue = iota
	BcRightToLeft
	BcArabicLetter
	BcEuropeanNumber
	BcEuropeanSeparator
	BcEuropeanTerminator
	BcArabicNumber
	BcCommonSeparator
	BcNonspacingMark
	BcBoundaryNeutral
	BcParagraphSeparator
	BcSegmentSeparator
	BcWhiteSpace
	BcOtherNeutral
	BcLeftToRightEmbedding
	BcLeftToRightOverride
	BcRightToLeftEmbedding
	BcRightToLeftOverride
	BcPopDirectionalFormat
	BcLeftToRightIsolate
	BcRightToLeftIsolate
	BcFirstStrongIsolate
	BcPopDirectionalIsolate
	bcCount
)

var bcShortNames = [bcCount]string{
	"L", "R", "AL", "EN", "ES", "ET", "AN", "CS", "NSM", "BN",
	"B", "S", "WS", "ON", "LRE", "LRO", "RLE", "RLO", "PDF",
	"LRI", "RLI", "FSI", "PDI",
}

func (v BidiClassValue) String() string {
	if int(v) < len(bcShortNames) {
		return bcShortNames[v]
	}
	return "L"
}

// BidiPairedBracketTypeValue is the Bidi_Paired_Bracket_Type enum.
type BidiPairedBracketTypeValue uint8

const (
	BptOpen BidiPairedBracketTypeValue = iota
	BptClose
	BptNone
	bptCount
)

func (v BidiPairedBracketTypeValue) String() string {
	switch v {
	case BptOpen:
		return "Open"
	case BptClose:
		return "Close"
	default:
		return "None"
	}
}

// DecompositionTypeValue is the Decomposition_Type enum.
type DecompositionTypeValue uint8

const (
	DtNone DecompositionTypeValue = iota
	DtCanonical
	DtFont
	DtNoBreak
	DtInitial
	DtMedial
	DtFinal
	DtIsolated
	DtCircle
	DtSuper
	DtSub
	DtVertical
	DtWide
	DtNarrow
	DtSmall
	DtSquare
	DtFraction
	DtCompat
	dtCount
)

var dtShortNames = [dtCount]string{
	"None", "Can", "Font", "NoBreak", "Init", "Med", "Fin", "Iso",
	"Circle", "Super", "Sub", "Vert", "Wide", "Narrow", "Small",
	"Sqr", "Fra", "Com",
}

func (v DecompositionTypeValue) String() string {
	if int(v) < len(dtShortNames) {
		return dtShortNames[v]
	}
	return "None"
}

// EastAsianWidthValue is the East_Asian_Width enum.
type EastAsianWidthValue uint8

const (
	EaNeutral EastAsianWidthValue = iota
	EaAmbiguous
	EaHalf
	EaFull
	EaNarrow
	EaWide
	eaCount
)

var eaShortNames = [eaCount]string{"N", "A", "H", "F", "Na", "W"}

func (v EastAsianWidthValue) String() string {
	if int(v) < len(eaShortNames) {
		return eaShortNames[v]
	}
	return "N"
}

// GraphemeClusterBreakValue is the Grapheme_Cluster_Break enum.
type GraphemeClusterBreakValue uint8

const (
	GCBOther GraphemeClusterBreakValue = iota
	GCBCR
	GCBLF
	GCBControl
	GCBExtend
	GCBZWJ
	GCBRegionalIndicator
	GCBPrepend
	GCBSpacingMark
	GCBL
	GCBV
	GCBT
	GCBLV
	GCBLVT
	gcbCount
)

func (v GraphemeClusterBreakValue) String() string {
	names := [gcbCount]string{
		"Other", "CR", "LF", "Control", "Extend", "ZWJ", "RI",
		"Prepend", "SpacingMark", "L", "V", "T", "LV", "LVT",
	}
	if int(v) < len(names) {
		return names[v]
	}
	return "Other"
}

// HangulSyllableTypeValue is the Hangul_Syllable_Type enum.
type HangulSyllableTypeValue uint8

const (
	HstNotApplicable HangulSyllableTypeValue = iota
	HstLeadingJamo
	HstVowelJamo
	HstTrailingJamo
	HstLVSyllable
	HstLVTSyllable
	hstCount
)

func (v HangulSyllableTypeValue) String() string {
	names := [hstCount]string{"NA", "L", "V", "T", "LV", "LVT"}
	if int(v) < len(names) {
		return names[v]
	}
	return "NA"
}

// JoiningTypeValue is the Joining_Type enum.
type JoiningTypeValue uint8

const (
	JtNonJoining JoiningTypeValue = iota
	JtJoinCausing
	JtDualJoining
	JtLeftJoining
	JtRightJoining
	JtTransparent
	jtCount
)

func (v JoiningTypeValue) String() string {
	names := [jtCount]string{"U", "C", "D", "L", "R", "T"}
	if int(v) < len(names) {
		return names[v]
	}
	return "U"
}

// LineBreakValue is the Line_Break enum (abbreviated subset in common use).
type LineBreakValue uint8

const (
	LbUnknown LineBreakValue = iota
	LbAlphabetic
	LbNumeric
	LbIdeographic
	LbCombiningMark
	LbMandatoryBreak
	LbLineFeed
	LbCarriageReturn
	LbSpace
	LbContingentBreak
	LbInfixSeparator
	LbGlue
	LbBreakAfter
	LbBreakBefore
	LbBreakBoth
	LbHyphen
	LbNonstarter
	LbOpenPunctuation
	LbClosePunctuation
	LbQuotation
	LbExclamation
	LbWordJoiner
	lbCount
)

func (v LineBreakValue) String() string {
	names := [lbCount]string{
		"XX", "AL", "NU", "ID", "CM", "BK", "LF", "CR", "SP", "CB",
		"IS", "GL", "BA", "BB", "B2", "HY", "NS", "OP", "CL", "QU",
		"EX", "WJ",
	}
	if int(v) < len(names) {
		return names[v]
	}
	return "XX"
}

// QuickCheckValue is the shared value type for NFC_QC/NFD_QC/NFKC_QC/NFKD_QC.
type QuickCheckValue uint8

const (
	QcYes QuickCheckValue = iota
	QcNo
	QcMaybe
	qcCount
)

func (v QuickCheckValue) String() string {
	switch v {
	case QcYes:
		return "Y"
	case QcNo:
		return "N"
	default:
		return "M"
	}
}

// NumericTypeValue is the Numeric_Type enum.
type NumericTypeValue uint8

const (
	NtNone NumericTypeValue = iota
	NtDecimal
	NtDigit
	NtNumeric
	ntCount
)

func (v NumericTypeValue) String() string {
	names := [ntCount]string{"None", "De", "Di", "Nu"}
	if int(v) < len(names) {
		return names[v]
	}
	return "None"
}

// VerticalOrientationValue is the Vertical_Orientation enum.
type VerticalOrientationValue uint8

const (
	VoRotated VerticalOrientationValue = iota
	VoTransformedRotated
	VoTransformedUpright
	VoUpright
	voCount
)

func (v VerticalOrientationValue) String() string {
	names := [voCount]string{"R", "Tr", "Tu", "U"}
	if int(v) < len(names) {
		return names[v]
	}
	return "R"
}

// SentenceBreakValue is the Sentence_Break enum.
type SentenceBreakValue uint8

const (
	SBOther SentenceBreakValue = iota
	SBCR
	SBLF
	SBExtend
	SBSep
	SBFormat
	SBSp
	SBLower
	SBUpper
	SBOLetter
	SBNumeric
	SBATerm
	SBSContinue
	SBSTerm
	SBClose
	sbCount
)

func (v SentenceBreakValue) String() string {
	names := [sbCount]string{
		"Other", "CR", "LF", "Extend", "Sep", "Format", "Sp", "Lower",
		"Upper", "OLetter", "Numeric", "ATerm", "SContinue", "STerm", "Close",
	}
	if int(v) < len(names) {
		return names[v]
	}
	return "Other"
}

// WordBreakValue is the Word_Break enum.
type WordBreakValue uint8

const (
	WBOther WordBreakValue = iota
	WBCR
	WBLF
	WBNewline
	WBExtend
	WBZWJ
	WBRegionalIndicator
	WBFormat
	WBKatakana
	WBHebrewLetter
	WBALetter
	WBSingleQuote
	WBDoubleQuote
	WBMidNumLet
	WBMidLetter
	WBMidNum
	WBNumeric
	WBExtendNumLet
	wbCount
)

func (v WordBreakValue) String() string {
	names := [wbCount]string{
		"Other", "CR", "LF", "Newline", "Extend", "ZWJ", "RI", "Format",
		"Katakana", "Hebrew_Letter", "ALetter", "Single_Quote",
		"Double_Quote", "MidNumLet", "MidLetter", "MidNum", "Numeric",
		"ExtendNumLet",
	}
	if int(v) < len(names) {
		return names[v]
	}
	return "Other"
}

// IndicPositionalCategoryValue and IndicSyllabicCategoryValue are open
// catalogs in real UCD releases; here they are represented the same way
// as Script below — a data-driven name table rather than a fixed const
// block — since catalog properties may gain values across Unicode
// versions without a compiled-enum change.
type IndicPositionalCategoryValue uint16
type IndicSyllabicCategoryValue uint16
type JoiningGroupValue uint16
type ScriptValue uint16
type BlockValue uint16
type AgeValue uint16

var indicPositionalNames = []string{
	"NA", "Right", "Left", "Visual_Order_Left", "Left_And_Right",
	"Top", "Bottom", "Top_And_Bottom", "Top_And_Right",
	"Top_And_Left", "Top_And_Left_And_Right", "Bottom_And_Right",
	"Top_And_Bottom_And_Right", "Overstruck",
}

var indicSyllabicNames = []string{
	"Other", "Bindu", "Visarga", "Avagraha", "Nukta", "Virama",
	"Vowel_Independent", "Vowel_Dependent", "Vowel", "Consonant",
	"Consonant_Dead", "Consonant_Final", "Consonant_Medial",
	"Consonant_Placeholder", "Consonant_Preceding_Repha",
	"Consonant_Succeeding_Repha", "Register_Shifter",
	"Syllable_Modifier", "Tone_Letter", "Tone_Mark", "Number",
}

var joiningGroupNames = []string{
	"No_Joining_Group", "Ain", "Alaph", "Alef", "Beh", "Beth",
	"Dal", "Feh", "Gaf", "Gamal", "Heh", "Heth", "Kaf", "Lam",
	"Meem", "Noon", "Qaf", "Reh", "Sad", "Seen", "Tah", "Waw", "Yeh",
}

var scriptNames = []string{
	"Unknown", "Common", "Latin", "Greek", "Cyrillic", "Armenian",
	"Hebrew", "Arabic", "Syriac", "Thaana", "Devanagari", "Bengali",
	"Gurmukhi", "Gujarati", "Oriya", "Tamil", "Telugu", "Kannada",
	"Malayalam", "Sinhala", "Thai", "Lao", "Tibetan", "Myanmar",
	"Georgian", "Hangul", "Ethiopic", "Cherokee", "Han", "Hiragana",
	"Katakana", "Bopomofo", "Inherited",
}

var blockNames = []string{
	"No_Block", "Basic_Latin", "Latin-1_Supplement",
	"Latin_Extended-A", "Latin_Extended-B", "Greek_and_Coptic",
	"Cyrillic", "Hebrew", "Arabic", "CJK_Unified_Ideographs",
	"Hiragana", "Katakana", "Hangul_Syllables", "Halfwidth_and_Fullwidth_Forms",
}

var ageNames = []string{
	"Unassigned", "1.1", "2.0", "2.1", "3.0", "3.1", "3.2", "4.0",
	"4.1", "5.0", "5.1", "5.2", "6.0", "6.1", "6.2", "6.3", "7.0",
	"8.0", "9.0", "10.0", "11.0", "12.0", "12.1", "13.0", "14.0", "15.0",
}

func (v IndicPositionalCategoryValue) String() string { return nameOrFallback(indicPositionalNames, int(v), "NA") }
func (v IndicSyllabicCategoryValue) String() string   { return nameOrFallback(indicSyllabicNames, int(v), "Other") }
func (v JoiningGroupValue) String() string            { return nameOrFallback(joiningGroupNames, int(v), "No_Joining_Group") }
func (v ScriptValue) String() string                  { return nameOrFallback(scriptNames, int(v), "Unknown") }
func (v BlockValue) String() string                   { return nameOrFallback(blockNames, int(v), "No_Block") }
func (v AgeValue) String() string                     { return nameOrFallback(ageNames, int(v), "Unassigned") }

func nameOrFallback(names []string, i int, fallback string) string {
	if i >= 0 && i < len(names) {
		return names[i]
	}
	return fallback
}
