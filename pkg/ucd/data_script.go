package ucd

// Script, Block, and Age are catalog-shaped (open value sets — new
// scripts, blocks, and ages arrive with every Unicode release, so they
// are data-driven name tables, not closed enums; see values.go).
// Script_Extensions is enumList-shaped: each run holds a set of Script
// values.

var scriptTable = &EnumTable[ScriptValue]{
	Ranges: &RuneRanges{Boundaries: []int32{
		0x41, 0x5B, 0x61, 0x7B, 0x391, 0x3AA, 0x3B1, 0x3CA, 0x600,
		0x700, 0x4E2D, 0x4E2E, 0xAC00, 0xAC01,
	}},
	Values: []ScriptValue{
		0,  // Unknown [0,0x41)
		2,  // Latin [0x41,0x5B)
		0,  // Unknown [0x5B,0x61)
		2,  // Latin [0x61,0x7B)
		0,  // Unknown [0x7B,0x391)
		3,  // Greek [0x391,0x3AA)
		0,  // Unknown [0x3AA,0x3B1)
		3,  // Greek [0x3B1,0x3CA)
		0,  // Unknown [0x3CA,0x600)
		7,  // Arabic [0x600,0x700)
		0,  // Unknown [0x700,0x4E2D)
		28, // Han [0x4E2D,0x4E2E)
		0,  // Unknown [0x4E2E,0xAC00)
		25, // Hangul [0xAC00,0xAC01)
		0,  // Unknown [0xAC01, MaxCodePoint]
	},
}

// GetScript returns the Script of cp.
func GetScript(cp rune) ScriptValue { return scriptTable.At(NormalizeCodePoint(cp)) }

var scxAtoms = &EnumListAtomTable{
	Atoms: [][]uint16{
		nil,          // index 0 unused (fallback sentinel handled by Indices==0)
		{1, 7},       // Common, Arabic — e.g. U+0640 ARABIC TATWEEL
	},
}

var scxTable = &EnumListTable{
	Ranges:   &RuneRanges{Boundaries: []int32{0x640, 0x641}},
	Indices:  []uint8{0, 1, 0},
	Atoms:    scxAtoms,
	Fallback: func(cp rune) uint16 { return uint16(GetScript(cp)) },
}

// GetScriptExtensions returns the Script_Extensions of cp as a set of
// ScriptValue ordinals. Per DESIGN.md resolution 2, the returned order
// is not meaningful — treat this as a set, not a list.
func GetScriptExtensions(cp rune) []ScriptValue {
	ords := scxTable.At(NormalizeCodePoint(cp))
	out := make([]ScriptValue, len(ords))
	for i, o := range ords {
		out[i] = ScriptValue(o)
	}
	return out
}

var blockTable = &EnumTable[BlockValue]{
	Ranges: &RuneRanges{Boundaries: []int32{
		0x80, 0x100, 0x180, 0x250, 0x370, 0x400, 0x500, 0x590, 0x600,
		0x700, 0x3040, 0x30A0, 0x3100, 0x4E00, 0xA000, 0xAC00, 0xD7A4,
		0xFF00, 0xFFF0,
	}},
	Values: []BlockValue{
		1,  // Basic_Latin [0,0x80)
		2,  // Latin-1_Supplement [0x80,0x100)
		3,  // Latin_Extended-A [0x100,0x180)
		4,  // Latin_Extended-B [0x180,0x250)
		0,  // No_Block [0x250,0x370)
		5,  // Greek_and_Coptic [0x370,0x400)
		6,  // Cyrillic [0x400,0x500)
		0,  // No_Block [0x500,0x590)
		7,  // Hebrew [0x590,0x600)
		8,  // Arabic [0x600,0x700)
		0,  // No_Block [0x700,0x3040)
		10, // Hiragana [0x3040,0x30A0)
		11, // Katakana [0x30A0,0x3100)
		0,  // No_Block [0x3100,0x4E00)
		9,  // CJK_Unified_Ideographs [0x4E00,0xA000)
		0,  // No_Block [0xA000,0xAC00)
		12, // Hangul_Syllables [0xAC00,0xD7A4)
		0,  // No_Block [0xD7A4,0xFF00)
		13, // Halfwidth_and_Fullwidth_Forms [0xFF00,0xFFF0)
		0,  // No_Block [0xFFF0, MaxCodePoint]
	},
}

// GetBlock returns the Block of cp.
func GetBlock(cp rune) BlockValue { return blockTable.At(NormalizeCodePoint(cp)) }

var ageTable = &EnumTable[AgeValue]{
	Ranges: &RuneRanges{Boundaries: []int32{0x100, 0x2070, 0x2071}},
	Values: []AgeValue{1, 0, 9, 0}, // 1.1 for ASCII+Latin-1, 5.0 for U+2070, Unassigned elsewhere
}

// GetAge returns the Age of cp — the Unicode version in which it was
// first assigned.
func GetAge(cp rune) AgeValue { return ageTable.At(NormalizeCodePoint(cp)) }
