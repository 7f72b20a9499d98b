package ucdgen

// Shape mirrors pkg/ucd.Shape; ucdgen depends only on this copy so the
// offline compiler has no import-time coupling to the runtime package
// it generates code for (the generated Go source is the only bridge
// between them, exactly as the original C generator's output .h file is
// the only bridge between miniucd.tmpl.ejs.h and its consumers).
type Shape int

const (
	ShapeBoolean Shape = iota
	ShapeEnum
	ShapeCatalog
	ShapeCodePoint
	ShapeNumeric
	ShapeString
	ShapeMultiCodePoint
	ShapeEnumList
)

// Record is one ingested (codepoint-range, value) fact for a single
// property, before coalescing. Multiple overlapping or adjacent
// Records for the same property are merged by the coalescer (C2).
type Record struct {
	From, To rune // inclusive
	Value    string
}

// PropertySpec describes one property being compiled: its shape, its
// default value for codepoints no input file mentions, and — for
// enumList — the element property its atoms are ordinals into.
type PropertySpec struct {
	Name         string
	Shape        Shape
	Default      string
	ElementProp  string // only meaningful for ShapeEnumList
}

// Ingested holds every record gathered for one property by C1, in
// input order (not yet sorted or merged).
type Ingested struct {
	Spec    PropertySpec
	Records []Record
}

// Run is one coalesced, non-overlapping interval produced by C2: [Start,
// End) with its resolved value, before atom interning.
type Run struct {
	Start, End rune
	Value      string
}

// CompiledProperty is the C4/C5-ready, fully resolved table for one
// property: boundaries, narrow-width-selected representation, and (for
// atom-bearing shapes) the deduplicated atom table.
type CompiledProperty struct {
	Spec       PropertySpec
	Boundaries []int32 // len(Runs)-1 boundaries, run 0 implicit
	// Values holds one entry per run. Its concrete meaning depends on
	// Spec.Shape:
	//   ShapeBoolean:           not used; Value0 below is used instead
	//   ShapeCodePoint:         not used; Offsets below is used instead
	//   ShapeEnum/ShapeCatalog: ordinal index into ValueNames (narrowed
	//                           to Width by the emitter)
	//   ShapeNumeric/ShapeString/ShapeMultiCodePoint/ShapeEnumList:
	//                           atom index into StringAtoms/MCPAtoms/ListAtoms
	Values []uint32
	Value0 bool    // only used for ShapeBoolean
	Offsets []int32 // only used for ShapeCodePoint: per-run signed codepoint offset

	// Width is the selected element width in bits (8/16/32) for Values,
	// per C4. It does not change Values' Go type (uint32 is used
	// uniformly in this in-memory model for simplicity); the emitter is
	// responsible for narrowing the literal array's declared element
	// type to match.
	Width int

	// ValueNames holds the ordered display names of an Enum/Catalog
	// property's value set (e.g. "Uppercase_Letter"), indexed by the
	// ordinal stored in Values. The emitter uses this to generate a
	// typed value enum and a typed accessor (C5); without it, only a
	// raw ordinal array is emitted (see DESIGN.md).
	ValueNames []string

	// Aliases lists the other property names (from PropertyAliases.txt)
	// this property is also known by. The emitter generates one
	// zero-cost forwarding accessor per alias (C8).
	Aliases []string

	// StringAtoms, MCPAtoms and ListAtoms hold the deduplicated,
	// order-stable atom table for atom-bearing shapes; which one is used
	// depends on Shape: ShapeNumeric/ShapeString -> StringAtoms;
	// ShapeMultiCodePoint -> MCPAtoms; ShapeEnumList -> ListAtoms
	// (element ordinals).
	StringAtoms []string
	MCPAtoms    []MCPAtom
	ListAtoms   [][]uint32
}

// MCPAtom mirrors pkg/ucd.MCPAtom — see that package for the encoding
// rules (identity/offset/absolute).
type MCPAtom struct {
	Len    int
	Offset int32
	Abs    []int32
}
