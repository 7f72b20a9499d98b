package ucd

// Numeric_Value and Name are both string-shaped: Numeric_Value because
// spec §3 represents numeric values as decimal/fraction/"NaN" text
// rather than a machine float (Unicode numeric values like 1/3 are not
// exactly representable in binary floating point), Name because it is
// a free-form string with no enumerable value set.

var numericValueAtoms = &StringAtomTable{
	Atoms: []string{
		"NaN", "0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "1/2",
	},
}

var numericValueTable = &StringTable{
	Ranges: &RuneRanges{Boundaries: []int32{
		0x30, 0x31, 0x32, 0x33, 0x34, 0x35, 0x36, 0x37, 0x38, 0x39,
		0x3A, 0xBD, 0xBE, 0x2160, 0x2161,
	}},
	Indices: []uint8{
		0,     // [0,0x30) NaN
		1,     // [0x30,0x31) "0"
		2,     // [0x31,0x32) "1"
		3,     // [0x32,0x33) "2"
		4,     // [0x33,0x34) "3"
		5,     // [0x34,0x35) "4"
		6,     // [0x35,0x36) "5"
		7,     // [0x36,0x37) "6"
		8,     // [0x37,0x38) "7"
		9,     // [0x38,0x39) "8"
		10,    // [0x39,0x3A) "9"
		0,     // [0x3A,0xBD) NaN
		11,    // [0xBD,0xBE) "1/2"
		0,     // [0xBE,0x2160) NaN
		2,     // [0x2160,0x2161) "1" — atom shared with DIGIT ONE
		0,     // [0x2161, MaxCodePoint] NaN
	},
	Atoms: numericValueAtoms,
}

// GetNumericValue returns the Numeric_Value of cp as Unicode represents
// it: a decimal digit string, a fraction "n/d", or "NaN" if cp has no
// numeric value.
func GetNumericValue(cp rune) string { return numericValueTable.At(NormalizeCodePoint(cp)) }

var nameAtoms = &StringAtomTable{
	Atoms: []string{"", "DIGIT ZERO", "LATIN CAPITAL LETTER A", "LATIN SMALL LETTER A"},
}

var nameTable = &StringTable{
	Ranges:  &RuneRanges{Boundaries: []int32{0x30, 0x31, 0x41, 0x42, 0x61, 0x62}},
	Indices: []uint8{0, 1, 0, 2, 0, 3, 0},
	Atoms:   nameAtoms,
}

// GetName returns the Name of cp, or "" if cp has no assigned name in
// this module's curated table.
func GetName(cp rune) string { return nameTable.At(NormalizeCodePoint(cp)) }
