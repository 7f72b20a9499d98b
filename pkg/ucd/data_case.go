package ucd

// Simple_*_Mapping properties are cp-shaped: each always maps to
// exactly one codepoint, so a plain per-run offset suffices (no atom
// table needed). ASCII and the Greek upper/lower blocks happen to
// share the same +32/-32 offset, which is exactly the kind of reuse
// the cp shape is built to make cheap.

var simpleLowercaseOffsets = &CPTable{
	Ranges:  &RuneRanges{Boundaries: []int32{0x41, 0x5B, 0x391, 0x3AA}},
	Offsets: []int32{0, 32, 0, 32, 0},
}

// GetSimpleLowercaseMapping returns the Simple_Lowercase_Mapping of cp.
func GetSimpleLowercaseMapping(cp rune) rune {
	return simpleLowercaseOffsets.At(NormalizeCodePoint(cp))
}

var simpleUppercaseOffsets = &CPTable{
	Ranges:  &RuneRanges{Boundaries: []int32{0x61, 0x7B, 0x3B1, 0x3CA}},
	Offsets: []int32{0, -32, 0, -32, 0},
}

// GetSimpleUppercaseMapping returns the Simple_Uppercase_Mapping of cp.
func GetSimpleUppercaseMapping(cp rune) rune {
	return simpleUppercaseOffsets.At(NormalizeCodePoint(cp))
}

var simpleTitlecaseOffsets = &CPTable{
	Ranges:  &RuneRanges{Boundaries: []int32{0x61, 0x7B}},
	Offsets: []int32{0, -32, 0},
}

// GetSimpleTitlecaseMapping returns the Simple_Titlecase_Mapping of cp.
func GetSimpleTitlecaseMapping(cp rune) rune {
	return simpleTitlecaseOffsets.At(NormalizeCodePoint(cp))
}

var simpleCaseFoldingOffsets = &CPTable{
	Ranges:  &RuneRanges{Boundaries: []int32{0x41, 0x5B, 0x391, 0x3AA}},
	Offsets: []int32{0, 32, 0, 32, 0},
}

// GetSimpleCaseFolding returns the Simple_Case_Folding of cp.
func GetSimpleCaseFolding(cp rune) rune {
	return simpleCaseFoldingOffsets.At(NormalizeCodePoint(cp))
}

// Full Uppercase_Mapping/Lowercase_Mapping/Titlecase_Mapping/Case_Folding
// are mcp-shaped because, unlike their Simple_ counterparts, Unicode
// allows them to expand to more than one codepoint (e.g. U+00DF LATIN
// SMALL LETTER SHARP S uppercases to "SS"). Atom index 0 is the
// identity mapping; index 1 reuses the same +32/-32 offset atom as the
// cp tables above, wherever a run needs only a single-codepoint shift;
// higher indices hold explicit multi-codepoint expansions.

var lowercaseMappingAtoms = &MCPAtomTable{
	Atoms: []MCPAtom{
		{Len: 0},             // identity
		{Len: 1, Offset: 32}, // ASCII/Greek upper->lower shift
	},
}

var lowercaseMappingTable = &MCPTable{
	Ranges:  &RuneRanges{Boundaries: []int32{0x41, 0x5B, 0x391, 0x3AA}},
	Indices: []uint8{0, 1, 0, 1, 0},
	Atoms:   lowercaseMappingAtoms,
}

// GetLowercaseMapping returns the full Lowercase_Mapping of cp.
func GetLowercaseMapping(cp rune) []rune { return lowercaseMappingTable.At(NormalizeCodePoint(cp)) }

var uppercaseMappingAtoms = &MCPAtomTable{
	Atoms: []MCPAtom{
		{Len: 0},              // identity
		{Len: 1, Offset: -32}, // ASCII/Greek lower->upper shift
		{Len: 2, Abs: []int32{0x53, 0x53}}, // SHARP S -> "SS"
	},
}

var uppercaseMappingTable = &MCPTable{
	Ranges:  &RuneRanges{Boundaries: []int32{0x61, 0x7B, 0xDF, 0xE0, 0x3B1, 0x3CA}},
	Indices: []uint8{0, 1, 0, 2, 0, 1, 0},
	Atoms:   uppercaseMappingAtoms,
}

// GetUppercaseMapping returns the full Uppercase_Mapping of cp.
func GetUppercaseMapping(cp rune) []rune { return uppercaseMappingTable.At(NormalizeCodePoint(cp)) }

var titlecaseMappingTable = &MCPTable{
	Ranges:  &RuneRanges{Boundaries: []int32{0x61, 0x7B}},
	Indices: []uint8{0, 1, 0},
	Atoms:   uppercaseMappingAtoms,
}

// GetTitlecaseMapping returns the full Titlecase_Mapping of cp.
func GetTitlecaseMapping(cp rune) []rune { return titlecaseMappingTable.At(NormalizeCodePoint(cp)) }

var caseFoldingAtoms = &MCPAtomTable{
	Atoms: []MCPAtom{
		{Len: 0},
		{Len: 1, Offset: 32},
		{Len: 2, Abs: []int32{0x73, 0x73}}, // SHARP S folds to "ss"
	},
}

var caseFoldingTable = &MCPTable{
	Ranges:  &RuneRanges{Boundaries: []int32{0x41, 0x5B, 0xDF, 0xE0, 0x391, 0x3AA}},
	Indices: []uint8{0, 1, 0, 2, 0, 1, 0},
	Atoms:   caseFoldingAtoms,
}

// GetCaseFolding returns the full Case_Folding of cp.
func GetCaseFolding(cp rune) []rune { return caseFoldingTable.At(NormalizeCodePoint(cp)) }
