package ucd

// Boolean-shaped property tables, all using the value0+parity encoding
// (spec §3). Boundaries are chosen so consecutive runs alternate
// true/false exactly, letting a single stored bit (Value0) answer
// every codepoint.

var whiteSpaceTable = &BoolTable{
	Ranges: &RuneRanges{Boundaries: []int32{0x09, 0x0E, 0x20, 0x21, 0xA0, 0xA1}},
	Value0: false,
}

// GetWhiteSpace returns the White_Space property of cp.
func GetWhiteSpace(cp rune) bool { return whiteSpaceTable.At(NormalizeCodePoint(cp)) }

var alphabeticTable = &BoolTable{
	Ranges: &RuneRanges{Boundaries: []int32{
		0x41, 0x5B, 0x61, 0x7B, 0xAA, 0xAB, 0x391, 0x3AA, 0x3B1, 0x3CA,
		0x4E2D, 0x4E2E, 0xAC00, 0xAC01,
	}},
	Value0: false,
}

// GetAlphabetic returns the Alphabetic property of cp.
func GetAlphabetic(cp rune) bool { return alphabeticTable.At(NormalizeCodePoint(cp)) }

var uppercaseTable = &BoolTable{
	Ranges: &RuneRanges{Boundaries: []int32{0x41, 0x5B, 0x391, 0x3AA}},
	Value0: false,
}

// GetUppercase returns the Uppercase property of cp.
func GetUppercase(cp rune) bool { return uppercaseTable.At(NormalizeCodePoint(cp)) }

var lowercaseTable = &BoolTable{
	Ranges: &RuneRanges{Boundaries: []int32{0x61, 0x7B, 0x3B1, 0x3CA}},
	Value0: false,
}

// GetLowercase returns the Lowercase property of cp.
func GetLowercase(cp rune) bool { return lowercaseTable.At(NormalizeCodePoint(cp)) }

var bidiMirroredTable = &BoolTable{
	Ranges: &RuneRanges{Boundaries: []int32{
		0x28, 0x2A, 0x5B, 0x5C, 0x5D, 0x5E, 0x7B, 0x7C, 0x7D, 0x7E,
	}},
	Value0: false,
}

// GetBidiMirrored returns the Bidi_Mirrored property of cp.
func GetBidiMirrored(cp rune) bool { return bidiMirroredTable.At(NormalizeCodePoint(cp)) }

var bidiControlTable = &BoolTable{
	Ranges: &RuneRanges{Boundaries: []int32{
		0x200E, 0x2010, 0x202A, 0x202F, 0x2066, 0x206A,
	}},
	Value0: false,
}

// GetBidiControl returns the Bidi_Control property of cp.
func GetBidiControl(cp rune) bool { return bidiControlTable.At(NormalizeCodePoint(cp)) }

var asciiHexDigitTable = &BoolTable{
	Ranges: &RuneRanges{Boundaries: []int32{0x30, 0x3A, 0x41, 0x47, 0x61, 0x67}},
	Value0: false,
}

// GetASCIIHexDigit returns the ASCII_Hex_Digit property of cp: true for
// 0-9, A-F, and a-f.
func GetASCIIHexDigit(cp rune) bool { return asciiHexDigitTable.At(NormalizeCodePoint(cp)) }
