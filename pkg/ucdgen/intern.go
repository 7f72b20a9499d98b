package ucdgen

import "strconv"

// Interner deduplicates non-scalar run values into a shared atom table
// (C3), per property, so that (for example) a case-mapping offset that
// recurs across an ASCII block and an unrelated Greek block is stored
// once. Index 0 is always reserved for the identity/empty value,
// matching the original C generator's convention.
type Interner struct {
	strings []string
	strIdx  map[string]uint32

	mcp    []MCPAtom
	mcpIdx map[string]uint32

	lists    [][]uint32
	listsIdx map[string]uint32
}

// NewInterner returns an Interner with index 0 already reserved in
// every table it maintains.
func NewInterner() *Interner {
	return &Interner{
		strings:  []string{""},
		strIdx:   map[string]uint32{"": 0},
		mcp:      []MCPAtom{{Len: 0}},
		mcpIdx:   map[string]uint32{"0:": 0},
		lists:    [][]uint32{nil},
		listsIdx: map[string]uint32{"": 0},
	}
}

// InternString returns s's atom index, adding s to the table if it is
// not already present.
func (in *Interner) InternString(s string) uint32 {
	if idx, ok := in.strIdx[s]; ok {
		return idx
	}
	idx := uint32(len(in.strings))
	in.strings = append(in.strings, s)
	in.strIdx[s] = idx
	return idx
}

// InternMCP returns the atom index for a multi-codepoint mapping,
// choosing offset encoding when the mapping is a single codepoint (so
// long uniformly-shifted ranges share one atom regardless of their
// length) and absolute encoding otherwise, per spec §4.3.
func (in *Interner) InternMCP(from rune, to []rune) uint32 {
	var atom MCPAtom
	var key string
	switch len(to) {
	case 0:
		atom = MCPAtom{Len: 0}
		key = "0:"
	case 1:
		offset := int32(to[0]) - int32(from)
		atom = MCPAtom{Len: 1, Offset: offset}
		key = "1:" + strconv.Itoa(int(offset))
	default:
		abs := make([]int32, len(to))
		for i, r := range to {
			abs[i] = int32(r)
		}
		atom = MCPAtom{Len: len(to), Abs: abs}
		key = "n:" + formatInt32s(abs)
	}
	if idx, ok := in.mcpIdx[key]; ok {
		return idx
	}
	idx := uint32(len(in.mcp))
	in.mcp = append(in.mcp, atom)
	in.mcpIdx[key] = idx
	return idx
}

// InternList returns the atom index for a deduplicated set of element
// ordinals (enumList shape, e.g. Script_Extensions), order-preserving
// as encountered so builds are deterministic, but — per this module's
// resolution of the enumList-ordering open question — callers must
// never depend on that order being semantically meaningful.
func (in *Interner) InternList(ordinals []uint32) uint32 {
	key := formatUint32s(ordinals)
	if idx, ok := in.listsIdx[key]; ok {
		return idx
	}
	idx := uint32(len(in.lists))
	in.lists = append(in.lists, ordinals)
	in.listsIdx[key] = idx
	return idx
}

func (in *Interner) StringAtoms() []string   { return in.strings }
func (in *Interner) MCPAtoms() []MCPAtom     { return in.mcp }
func (in *Interner) ListAtoms() [][]uint32   { return in.lists }

func formatInt32s(vs []int32) string {
	s := ""
	for i, v := range vs {
		if i > 0 {
			s += ","
		}
		s += strconv.Itoa(int(v))
	}
	return s
}

func formatUint32s(vs []uint32) string {
	s := ""
	for i, v := range vs {
		if i > 0 {
			s += ","
		}
		s += strconv.FormatUint(uint64(v), 10)
	}
	return s
}
