package ucd

// MCPAtom is one entry in a multi-codepoint property's atom table (C3).
// It mirrors the original C generator's zero-terminated int-list atoms,
// but expresses the two encodings spec §4.3 describes as a tagged union
// instead of a sentinel-terminated array, since Go slices already carry
// their own length:
//
//   - Len == 0: identity mapping (the property maps cp to itself; this
//     is atom index 0, reserved exactly as in the C table).
//   - Len == 1: offset encoding. The mapped sequence is a single
//     codepoint, cp+Offset. This lets a long run of codepoints that all
//     shift by the same delta (e.g. an uppercase/lowercase case range)
//     share one atom regardless of how many codepoints use it.
//   - Len >= 2: absolute encoding. Abs holds the literal mapped
//     codepoints, independent of the query codepoint.
type MCPAtom struct {
	Len    int
	Offset int32
	Abs    []int32
}

// Decode expands the atom for query codepoint cp into the mapped
// sequence, or nil for the identity mapping (spec's "mcp length==0
// identity" edge case).
func (a MCPAtom) Decode(cp rune) []rune {
	switch a.Len {
	case 0:
		return nil
	case 1:
		return []rune{cp + rune(a.Offset)}
	default:
		out := make([]rune, len(a.Abs))
		for i, v := range a.Abs {
			out[i] = rune(v)
		}
		return out
	}
}

// StringAtomTable backs numeric/string-shaped properties: each run
// indexes into a deduplicated table of strings, with index 0 holding
// the property's default value ("NaN" for Numeric_Value, "" for Name).
type StringAtomTable struct {
	Atoms []string
}

// MCPAtomTable backs mcp-shaped properties.
type MCPAtomTable struct {
	Atoms []MCPAtom
}

// EnumListAtomTable backs enumList-shaped properties (e.g.
// Script_Extensions): each atom is a deduplicated, order-stable set of
// element-property ordinals. Per this module's resolution of spec's
// open question on enumList ordering, callers must treat the decoded
// slice as an unordered set, not a positionally meaningful list.
type EnumListAtomTable struct {
	Atoms [][]uint16
}
