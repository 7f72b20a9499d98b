package ucd

// Alias resolution (C8). Both property names and, for enum/catalog
// properties, individual value names can have aliases in the real UCD
// (PropertyAliases.txt, PropertyValueAliases.txt). Resolution happens
// once, before dispatch, so an alias costs nothing at query time beyond
// one extra map lookup — the zero-cost redirection spec §4.8 describes
// as a `#define` in the C generator becomes a small lookup table here,
// which Go's compiler can inline at the call site once the table is
// read-only and keyed by constant strings.
//
// The populated data below is a representative slice of the real alias
// corpus (see DESIGN.md, Open Question resolution 4), not its entirety.

var propertyAliases = map[string]PropertyID{
	"gc":      PropGeneralCategory,
	"ccc":     PropCanonicalCombiningClass,
	"bc":      PropBidiClass,
	"bpt":     PropBidiPairedBracketType,
	"Bidi_M":  PropBidiMirrored,
	"Bidi_C":  PropBidiControl,
	"bmg":     PropBidiMirroringGlyph,
	"dt":      PropDecompositionType,
	"dm":      PropDecompositionMapping,
	"ea":      PropEastAsianWidth,
	"GCB":     PropGraphemeClusterBreak,
	"SB":      PropSentenceBreak,
	"WB":      PropWordBreak,
	"hst":     PropHangulSyllableType,
	"InPC":    PropIndicPositionalCategory,
	"InSC":    PropIndicSyllabicCategory,
	"jg":      PropJoiningGroup,
	"jt":      PropJoiningType,
	"lb":      PropLineBreak,
	"NFC_QC":  PropNFCQuickCheck,
	"NFD_QC":  PropNFDQuickCheck,
	"NFKC_QC": PropNFKCQuickCheck,
	"NFKD_QC": PropNFKDQuickCheck,
	"nt":      PropNumericType,
	"nv":      PropNumericValue,
	"vo":      PropVerticalOrientation,
	"sc":      PropScript,
	"scx":     PropScriptExtensions,
	"blk":     PropBlock,
	"age":     PropAge,
	"WSpace":  PropWhiteSpace,
	"Alpha":   PropAlphabetic,
	"AHex":    PropASCIIHexDigit,
	"Upper":   PropUppercase,
	"Lower":   PropLowercase,
	"suc":     PropSimpleUppercaseMapping,
	"slc":     PropSimpleLowercaseMapping,
	"stc":     PropSimpleTitlecaseMapping,
	"scf":     PropSimpleCaseFolding,
	"uc":      PropUppercaseMapping,
	"lc":      PropLowercaseMapping,
	"tc":      PropTitlecaseMapping,
	"cf":      PropCaseFolding,
	"NFKC_CF": PropNFKCCasefold,
	"na":      PropName,

	// Long-form aliases also resolve to the same PropertyID.
	"General_Category":             PropGeneralCategory,
	"Canonical_Combining_Class":    PropCanonicalCombiningClass,
	"Bidi_Class":                   PropBidiClass,
	"Bidi_Paired_Bracket_Type":     PropBidiPairedBracketType,
	"Bidi_Mirrored":                PropBidiMirrored,
	"Bidi_Control":                 PropBidiControl,
	"Bidi_Mirroring_Glyph":         PropBidiMirroringGlyph,
	"Decomposition_Type":           PropDecompositionType,
	"Decomposition_Mapping":        PropDecompositionMapping,
	"East_Asian_Width":             PropEastAsianWidth,
	"Grapheme_Cluster_Break":       PropGraphemeClusterBreak,
	"Sentence_Break":               PropSentenceBreak,
	"Word_Break":                   PropWordBreak,
	"Hangul_Syllable_Type":         PropHangulSyllableType,
	"Joining_Group":                PropJoiningGroup,
	"Joining_Type":                 PropJoiningType,
	"Line_Break":                   PropLineBreak,
	"Numeric_Type":                 PropNumericType,
	"Numeric_Value":                PropNumericValue,
	"Vertical_Orientation":         PropVerticalOrientation,
	"Script":                       PropScript,
	"Script_Extensions":            PropScriptExtensions,
	"Block":                        PropBlock,
	"White_Space":                  PropWhiteSpace,
	"Alphabetic":                   PropAlphabetic,
	"ASCII_Hex_Digit":              PropASCIIHexDigit,
	"Uppercase":                    PropUppercase,
	"Lowercase":                    PropLowercase,
	"Simple_Uppercase_Mapping":     PropSimpleUppercaseMapping,
	"Simple_Lowercase_Mapping":     PropSimpleLowercaseMapping,
	"Simple_Titlecase_Mapping":     PropSimpleTitlecaseMapping,
	"Simple_Case_Folding":          PropSimpleCaseFolding,
	"Uppercase_Mapping":            PropUppercaseMapping,
	"Lowercase_Mapping":            PropLowercaseMapping,
	"Titlecase_Mapping":            PropTitlecaseMapping,
	"Case_Folding":                 PropCaseFolding,
	"NFKC_Casefold":                PropNFKCCasefold,
	"Name":                         PropName,
	"Age":                          PropAge,
}

// ResolveProperty maps a property name or alias to its PropertyID. The
// bool result is false when name is not recognized.
func ResolveProperty(name string) (PropertyID, bool) {
	id, ok := propertyAliases[name]
	return id, ok
}

// gcValueAliases maps short and long General_Category value names to
// their ordinal, demonstrating per-value alias resolution (the other
// catalog/enum properties follow the same shape; only Gc's is
// populated here per DESIGN.md's documented-subset scope decision).
var gcValueAliases = map[string]GeneralCategoryValue{
	"Lu": GcUppercaseLetter, "Uppercase_Letter": GcUppercaseLetter,
	"Ll": GcLowercaseLetter, "Lowercase_Letter": GcLowercaseLetter,
	"Lt": GcTitlecaseLetter, "Titlecase_Letter": GcTitlecaseLetter,
	"Lm": GcModifierLetter, "Modifier_Letter": GcModifierLetter,
	"Lo": GcOtherLetter, "Other_Letter": GcOtherLetter,
	"Mn": GcNonspacingMark, "Nonspacing_Mark": GcNonspacingMark,
	"Mc": GcSpacingMark, "Spacing_Mark": GcSpacingMark,
	"Me": GcEnclosingMark, "Enclosing_Mark": GcEnclosingMark,
	"Nd": GcDecimalNumber, "Decimal_Number": GcDecimalNumber,
	"Nl": GcLetterNumber, "Letter_Number": GcLetterNumber,
	"No": GcOtherNumber, "Other_Number": GcOtherNumber,
	"Pc": GcConnectorPunctuation, "Connector_Punctuation": GcConnectorPunctuation,
	"Pd": GcDashPunctuation, "Dash_Punctuation": GcDashPunctuation,
	"Ps": GcOpenPunctuation, "Open_Punctuation": GcOpenPunctuation,
	"Pe": GcClosePunctuation, "Close_Punctuation": GcClosePunctuation,
	"Pi": GcInitialPunctuation, "Initial_Punctuation": GcInitialPunctuation,
	"Pf": GcFinalPunctuation, "Final_Punctuation": GcFinalPunctuation,
	"Po": GcOtherPunctuation, "Other_Punctuation": GcOtherPunctuation,
	"Sm": GcMathSymbol, "Math_Symbol": GcMathSymbol,
	"Sc": GcCurrencySymbol, "Currency_Symbol": GcCurrencySymbol,
	"Sk": GcModifierSymbol, "Modifier_Symbol": GcModifierSymbol,
	"So": GcOtherSymbol, "Other_Symbol": GcOtherSymbol,
	"Zs": GcSpaceSeparator, "Space_Separator": GcSpaceSeparator,
	"Zl": GcLineSeparator, "Line_Separator": GcLineSeparator,
	"Zp": GcParagraphSeparator, "Paragraph_Separator": GcParagraphSeparator,
	"Cc": GcControl, "Control": GcControl, "cntrl": GcControl,
	"Cf": GcFormat, "Format": GcFormat,
	"Cs": GcSurrogate, "Surrogate": GcSurrogate,
	"Co": GcPrivateUse, "Private_Use": GcPrivateUse,
	"Cn": GcUnassigned, "Unassigned": GcUnassigned,
}

// ResolveGeneralCategoryValue maps a General_Category value name or
// alias to its GeneralCategoryValue ordinal.
func ResolveGeneralCategoryValue(name string) (GeneralCategoryValue, bool) {
	v, ok := gcValueAliases[name]
	return v, ok
}
