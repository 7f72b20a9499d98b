package ucdgen

import "testing"

func TestInternStringDedups(t *testing.T) {
	in := NewInterner()
	a := in.InternString("hello")
	b := in.InternString("world")
	c := in.InternString("hello")
	if a == b {
		t.Fatalf("distinct strings got the same atom index")
	}
	if a != c {
		t.Fatalf("InternString(\"hello\") twice gave different indices: %d vs %d", a, c)
	}
	if in.InternString("") != 0 {
		t.Fatalf("InternString(\"\") = %d, want reserved index 0", in.InternString(""))
	}
}

func TestInternMCPOffsetSharedAcrossRanges(t *testing.T) {
	in := NewInterner()
	// Two unrelated ranges that both shift by +32 should share one atom.
	a := in.InternMCP(0x41, []rune{0x61})
	b := in.InternMCP(0x391, []rune{0x3B1})
	if a != b {
		t.Fatalf("offset-encoded atoms with identical offsets were not shared: %d vs %d", a, b)
	}
}

func TestInternMCPAbsoluteForMultiCodepoint(t *testing.T) {
	in := NewInterner()
	idx := in.InternMCP(0xDF, []rune{'S', 'S'})
	if idx == 0 {
		t.Fatalf("multi-codepoint mapping collided with the identity atom")
	}
	atoms := in.MCPAtoms()
	if atoms[idx].Len != 2 || atoms[idx].Abs[0] != 'S' || atoms[idx].Abs[1] != 'S' {
		t.Fatalf("MCPAtoms()[%d] = %+v, want absolute-encoded 'S','S'", idx, atoms[idx])
	}
}

func TestInternMCPIdentityReservedAtZero(t *testing.T) {
	in := NewInterner()
	if idx := in.InternMCP(0x41, nil); idx != 0 {
		t.Fatalf("InternMCP(identity) = %d, want reserved index 0", idx)
	}
}

func TestInternListDedups(t *testing.T) {
	in := NewInterner()
	a := in.InternList([]uint32{1, 7})
	b := in.InternList([]uint32{1, 7})
	c := in.InternList([]uint32{7, 1})
	if a != b {
		t.Fatalf("identical ordinal lists got different atom indices")
	}
	if a == c {
		t.Fatalf("InternList treats [1,7] and [7,1] as equal; they are distinct encounter orders and must be interned separately")
	}
}
