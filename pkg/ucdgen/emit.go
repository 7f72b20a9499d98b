package ucdgen

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"
	"strings"
	"text/template"
)

// Emit implements C5: it renders a CompiledProperty set into a single Go
// source file consumable standalone (it imports pkg/ucd for the table
// types BoolTable, EnumTable, CPTable, StringTable, MCPTable, and
// EnumListTable). This plays the same role the EJS template
// miniucd.tmpl.ejs.h plays for the original C generator: per property it
// emits the range/value/atom arrays, the NBRANGES_<P> constant, the
// property-identifier enum, each enum/catalog property's own value enum,
// a typed accessor function, and — for every name in Aliases — a
// zero-cost forwarding accessor (C8), exactly mirroring the original's
// `#define MiniUCD_GetProperty_<Alias>` macros.
//
// Heavy per-shape logic (which table type to instantiate, which literal
// shape to emit) lives in renderPropertyBody/renderPropertyEnum rather
// than in the template itself, the same way the EJS template embedded
// arbitrary JS for this — text/template's control flow is too limited to
// express it directly, so the template only stitches together
// pre-rendered chunks.
func Emit(pkgName string, props []CompiledProperty) ([]byte, error) {
	var propertyEnum string
	if len(props) > 0 {
		propertyEnum = renderPropertyEnum(props)
	}

	bodies := make([]string, 0, len(props))
	needsUCD := false
	for _, p := range props {
		body, usesUCD, err := renderPropertyBody(p)
		if err != nil {
			return nil, fmt.Errorf("ucdgen: rendering %s: %w", p.Spec.Name, err)
		}
		bodies = append(bodies, body)
		needsUCD = needsUCD || usesUCD
	}

	var buf bytes.Buffer
	data := struct {
		Package      string
		NeedsUCD     bool
		PropertyEnum string
		Bodies       []string
	}{Package: pkgName, NeedsUCD: needsUCD, PropertyEnum: propertyEnum, Bodies: bodies}
	if err := emitTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("ucdgen: template execution: %w", err)
	}
	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("ucdgen: generated source does not parse: %w", err)
	}
	return formatted, nil
}

var emitTmpl = template.Must(template.New("ucdgen").Parse(`// Code generated by ucdgen. DO NOT EDIT.

package {{.Package}}
{{if .NeedsUCD}}
import "github.com/oisee/miniucd/pkg/ucd"
{{end}}
{{.PropertyEnum}}
{{range .Bodies}}
{{.}}
{{end}}
`))

// identName converts a UCD-style property or value name ("White_Space",
// "Uppercase_Letter") into a Go exported identifier fragment
// ("WhiteSpace", "UppercaseLetter").
func identName(name string) string {
	var b strings.Builder
	upperNext := true
	for _, r := range name {
		if r == '_' || r == ' ' || r == '-' {
			upperNext = true
			continue
		}
		if upperNext {
			b.WriteRune(toUpper(r))
			upperNext = false
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}

func widthTypeName(bits int) string {
	switch bits {
	case 8:
		return "uint8"
	case 16:
		return "uint16"
	default:
		return "uint32"
	}
}

func int32sLit(vs []int32) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(int(v))
	}
	return strings.Join(parts, ", ")
}

func uint8sLit(vs []uint32) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.FormatUint(uint64(uint8(v)), 10)
	}
	return strings.Join(parts, ", ")
}

func uint32sLit(vs []uint32) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.FormatUint(uint64(v), 10)
	}
	return strings.Join(parts, ", ")
}

func stringsLit(vs []string) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Quote(v)
	}
	return strings.Join(parts, ", ")
}

// renderPropertyEnum emits the Property type with one dense constant per
// compiled property (1, 2, ...), followed by one constant per alias
// equal to its canonical constant, mirroring MiniUCD_Property in the
// original template.
func renderPropertyEnum(props []CompiledProperty) string {
	var b strings.Builder
	b.WriteString("// Property identifies one compiled UCD property.\ntype Property int\n\nconst (\n")
	for i, p := range props {
		if i == 0 {
			fmt.Fprintf(&b, "\tProperty%s Property = iota + 1\n", identName(p.Spec.Name))
		} else {
			fmt.Fprintf(&b, "\tProperty%s\n", identName(p.Spec.Name))
		}
	}
	b.WriteString(")\n\n")
	for _, p := range props {
		ident := identName(p.Spec.Name)
		for _, alias := range p.Aliases {
			aliasIdent := identName(alias)
			if aliasIdent == ident {
				continue
			}
			fmt.Fprintf(&b, "const Property%s = Property%s\n", aliasIdent, ident)
		}
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "// NBProperties is the number of distinct compiled properties (aliases excluded).\nconst NBProperties = %d\n", len(props))
	return b.String()
}

// renderPropertyBody emits one property's full compiled representation:
// boundary array, NBRANGES_<P> constant, shape-specific value/atom
// arrays, a table var using the matching pkg/ucd table type, a typed
// Get<Property> accessor, and one forwarding accessor per alias.
// usesUCD reports whether the body references the ucd package.
func renderPropertyBody(p CompiledProperty) (body string, usesUCD bool, err error) {
	ident := identName(p.Spec.Name)
	nbRanges := len(p.Boundaries) + 1

	var b strings.Builder
	fmt.Fprintf(&b, "// %sBoundaries are the codepoint range boundaries for %s.\n", ident, p.Spec.Name)
	fmt.Fprintf(&b, "var %sBoundaries = []int32{%s}\n", ident, int32sLit(p.Boundaries))
	fmt.Fprintf(&b, "\n// %sNBRanges is the number of runs %s is divided into.\nconst %sNBRanges = %d\n\n", ident, p.Spec.Name, ident, nbRanges)

	returnType := ""
	switch p.Spec.Shape {
	case ShapeBoolean:
		fmt.Fprintf(&b, "var %sValue0 = %t\n\n", ident, p.Value0)
		fmt.Fprintf(&b, "var %sTable = &ucd.BoolTable{Ranges: &ucd.RuneRanges{Boundaries: %sBoundaries}, Value0: %sValue0}\n\n", ident, ident, ident)
		fmt.Fprintf(&b, "// Get%s returns the %s property of c.\nfunc Get%s(c rune) bool { return %sTable.At(c) }\n", ident, p.Spec.Name, ident, ident)
		returnType = "bool"
		usesUCD = true

	case ShapeEnum, ShapeCatalog:
		if len(p.ValueNames) == 0 {
			fmt.Fprintf(&b, "// %sValues holds raw ordinals: no ValueNames were supplied for this\n// property, so no typed value enum or accessor is emitted.\n", ident)
			fmt.Fprintf(&b, "var %sValues = []%s{%s}\n", ident, widthTypeName(p.Width), uint32sLit(p.Values))
			break
		}
		fmt.Fprintf(&b, "type %sValue %s\n\nconst (\n", ident, widthTypeName(p.Width))
		for i, vn := range p.ValueNames {
			fmt.Fprintf(&b, "\t%s%s %sValue = %d\n", ident, identName(vn), ident, i+1)
		}
		fmt.Fprintf(&b, ")\n\nconst %sNBValues = %d\n\n", ident, len(p.ValueNames))
		vals := make([]string, len(p.Values))
		for i, v := range p.Values {
			if int(v) >= len(p.ValueNames) {
				return "", false, fmt.Errorf("%s: value ordinal %d out of range of %d ValueNames", p.Spec.Name, v, len(p.ValueNames))
			}
			vals[i] = fmt.Sprintf("%s%s", ident, identName(p.ValueNames[v]))
		}
		fmt.Fprintf(&b, "var %sValues = []%sValue{%s}\n\n", ident, ident, strings.Join(vals, ", "))
		fmt.Fprintf(&b, "var %sTable = &ucd.EnumTable[%sValue]{Ranges: &ucd.RuneRanges{Boundaries: %sBoundaries}, Values: %sValues}\n\n", ident, ident, ident, ident)
		fmt.Fprintf(&b, "// Get%s returns the %s property of c.\nfunc Get%s(c rune) %sValue { return %sTable.At(c) }\n", ident, p.Spec.Name, ident, ident, ident)
		returnType = ident + "Value"
		usesUCD = true

	case ShapeCodePoint:
		fmt.Fprintf(&b, "var %sOffsets = []int32{%s}\n\n", ident, int32sLit(p.Offsets))
		fmt.Fprintf(&b, "var %sTable = &ucd.CPTable{Ranges: &ucd.RuneRanges{Boundaries: %sBoundaries}, Offsets: %sOffsets}\n\n", ident, ident, ident)
		fmt.Fprintf(&b, "// Get%s returns the %s property of c.\nfunc Get%s(c rune) rune { return %sTable.At(c) }\n", ident, p.Spec.Name, ident, ident)
		returnType = "rune"
		usesUCD = true

	case ShapeNumeric, ShapeString:
		fmt.Fprintf(&b, "var %sIndices = []uint8{%s}\n\n", ident, uint8sLit(p.Values))
		if len(p.StringAtoms) == 0 {
			break
		}
		fmt.Fprintf(&b, "var %sStringAtoms = []string{%s}\n\n", ident, stringsLit(p.StringAtoms))
		fmt.Fprintf(&b, "var %sAtoms = &ucd.StringAtomTable{Atoms: %sStringAtoms}\n\n", ident, ident)
		fmt.Fprintf(&b, "var %sTable = &ucd.StringTable{Ranges: &ucd.RuneRanges{Boundaries: %sBoundaries}, Indices: %sIndices, Atoms: %sAtoms}\n\n", ident, ident, ident, ident)
		fmt.Fprintf(&b, "// Get%s returns the %s property of c.\nfunc Get%s(c rune) string { return %sTable.At(c) }\n", ident, p.Spec.Name, ident, ident)
		returnType = "string"
		usesUCD = true

	case ShapeMultiCodePoint:
		fmt.Fprintf(&b, "var %sIndices = []uint8{%s}\n\n", ident, uint8sLit(p.Values))
		if len(p.MCPAtoms) == 0 {
			break
		}
		atomLits := make([]string, len(p.MCPAtoms))
		for i, a := range p.MCPAtoms {
			atomLits[i] = fmt.Sprintf("{Len: %d, Offset: %d, Abs: []int32{%s}}", a.Len, a.Offset, int32sLit(a.Abs))
		}
		fmt.Fprintf(&b, "var %sAtoms = &ucd.MCPAtomTable{Atoms: []ucd.MCPAtom{%s}}\n\n", ident, strings.Join(atomLits, ", "))
		fmt.Fprintf(&b, "var %sTable = &ucd.MCPTable{Ranges: &ucd.RuneRanges{Boundaries: %sBoundaries}, Indices: %sIndices, Atoms: %sAtoms}\n\n", ident, ident, ident, ident)
		fmt.Fprintf(&b, "// Get%s returns the %s property of c.\nfunc Get%s(c rune) []rune { return %sTable.At(c) }\n", ident, p.Spec.Name, ident, ident)
		returnType = "[]rune"
		usesUCD = true

	case ShapeEnumList:
		fmt.Fprintf(&b, "var %sIndices = []uint8{%s}\n\n", ident, uint8sLit(p.Values))
		if len(p.ListAtoms) == 0 {
			break
		}
		atomLits := make([]string, len(p.ListAtoms))
		for i, list := range p.ListAtoms {
			parts := make([]string, len(list))
			for j, v := range list {
				parts[j] = strconv.FormatUint(uint64(uint16(v)), 10)
			}
			atomLits[i] = fmt.Sprintf("{%s}", strings.Join(parts, ", "))
		}
		fmt.Fprintf(&b, "var %sAtoms = &ucd.EnumListAtomTable{Atoms: [][]uint16{%s}}\n\n", ident, strings.Join(atomLits, ", "))
		if p.Spec.ElementProp == "" {
			return "", false, fmt.Errorf("%s: enumList property has no ElementProp to fall back to at atom index 0", p.Spec.Name)
		}
		fallback := fmt.Sprintf("func(c rune) uint16 { return uint16(Get%s(c)) }", identName(p.Spec.ElementProp))
		fmt.Fprintf(&b, "var %sTable = &ucd.EnumListTable{Ranges: &ucd.RuneRanges{Boundaries: %sBoundaries}, Indices: %sIndices, Atoms: %sAtoms, Fallback: %s}\n\n", ident, ident, ident, ident, fallback)
		fmt.Fprintf(&b, "// Get%s returns the %s property of c.\nfunc Get%s(c rune) []uint16 { return %sTable.At(c) }\n", ident, p.Spec.Name, ident, ident)
		returnType = "[]uint16"
		usesUCD = true

	default:
		return "", false, fmt.Errorf("%s: unknown shape %d", p.Spec.Name, p.Spec.Shape)
	}

	if returnType != "" {
		for _, alias := range p.Aliases {
			aliasIdent := identName(alias)
			if aliasIdent == ident {
				continue
			}
			fmt.Fprintf(&b, "\n// Get%s is an alias for Get%s (%s is another name for %s).\nfunc Get%s(c rune) %s { return Get%s(c) }\n",
				aliasIdent, ident, alias, p.Spec.Name, aliasIdent, returnType, ident)
		}
	}

	return b.String(), usesUCD, nil
}
