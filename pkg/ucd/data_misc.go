package ucd

// Bidi_Mirroring_Glyph, Decomposition_Mapping, and NFKC_Casefold round
// out the properties the original accessor test suite exercises
// individually rather than as part of a larger family: one cp-shaped
// mirror-glyph lookup, and two mcp-shaped mapping tables.

var bmgOffsets = &CPTable{
	Ranges: &RuneRanges{Boundaries: []int32{
		0x28, 0x29, 0x2A, 0xAB, 0xAC, 0xBB, 0xBC, 0x2208, 0x2209, 0x220B, 0x220C,
	}},
	Offsets: []int32{
		0,     // [0,0x28)
		1,     // [0x28,0x29) ( -> )
		-1,    // [0x29,0x2A) ) -> (
		0,     // [0x2A,0xAB)
		0x10,  // [0xAB,0xAC) « -> »
		0,     // [0xAC,0xBB)
		-0x10, // [0xBB,0xBC) » -> «
		0,     // [0xBC,0x2208)
		3,     // [0x2208,0x2209) ∈ -> ∋
		0,     // [0x2209,0x220B)
		-3,    // [0x220B,0x220C) ∋ -> ∈
		0,     // [0x220C, MaxCodePoint]
	},
}

// GetBidiMirroringGlyph returns the Bidi_Mirroring_Glyph of cp, or cp
// itself if cp has no mirror glyph.
func GetBidiMirroringGlyph(cp rune) rune { return bmgOffsets.At(NormalizeCodePoint(cp)) }

var decompositionMappingAtoms = &MCPAtomTable{
	Atoms: []MCPAtom{
		{Len: 0},                            // identity
		{Len: 1, Offset: 0x03BC - 0xB5},     // µ -> μ
		{Len: 1, Offset: 0x31 - 0x2460},     // ① -> 1
		{Len: 3, Abs: []int32{0x66, 0x66, 0x69}},    // ﬃ -> ffi
		{Len: 2, Abs: []int32{0x3A9, 0x345}}, // ῼ -> Ω◌ͅ
	},
}

var decompositionMappingTable = &MCPTable{
	Ranges: &RuneRanges{Boundaries: []int32{
		0xB5, 0xB6, 0x1FFC, 0x1FFD, 0x2460, 0x2461, 0xFB03, 0xFB04,
	}},
	Indices: []uint8{0, 1, 0, 4, 0, 2, 0, 3, 0},
	Atoms:   decompositionMappingAtoms,
}

// GetDecompositionMapping returns the Decomposition_Mapping of cp.
func GetDecompositionMapping(cp rune) []rune {
	return decompositionMappingTable.At(NormalizeCodePoint(cp))
}

var nfkcCasefoldAtoms = &MCPAtomTable{
	Atoms: []MCPAtom{
		{Len: 0},             // identity
		{Len: 1, Offset: 32}, // ASCII upper -> lower
		{Len: 3, Abs: []int32{0x31, 0x2044, 0x34}}, // ¼ -> 1⁄4
	},
}

var nfkcCasefoldTable = &MCPTable{
	Ranges:  &RuneRanges{Boundaries: []int32{0x41, 0x5B, 0xBC, 0xBD}},
	Indices: []uint8{0, 1, 0, 2, 0},
	Atoms:   nfkcCasefoldAtoms,
}

// GetNFKCCasefold returns the NFKC_Casefold of cp.
func GetNFKCCasefold(cp rune) []rune { return nfkcCasefoldTable.At(NormalizeCodePoint(cp)) }
