package ucdgen

import (
	"strings"
	"testing"
)

func TestParserSkipsCommentsAndBlankLines(t *testing.T) {
	input := "# a header comment\n\n0041;White_Space # inline comment\n"
	p := newParser("test.txt", strings.NewReader(input))
	fields, ok, err := p.next()
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if !ok {
		t.Fatalf("next returned ok=false, want a record")
	}
	if len(fields) != 2 || fields[0] != "0041" || fields[1] != "White_Space" {
		t.Fatalf("fields = %v, want [0041 White_Space]", fields)
	}
	_, ok, err = p.next()
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if ok {
		t.Fatalf("next returned ok=true at EOF")
	}
}

func TestParseCodePointRange(t *testing.T) {
	from, to, err := parseCodePointRange("t", 1, "0041..005A")
	if err != nil {
		t.Fatalf("parseCodePointRange: %v", err)
	}
	if from != 0x41 || to != 0x5A {
		t.Fatalf("parseCodePointRange = (%#x,%#x), want (0x41,0x5A)", from, to)
	}
	from, to, err = parseCodePointRange("t", 1, "0041")
	if err != nil {
		t.Fatalf("parseCodePointRange: %v", err)
	}
	if from != to || from != 0x41 {
		t.Fatalf("parseCodePointRange(single) = (%#x,%#x), want (0x41,0x41)", from, to)
	}
}

func TestParseCodePointRangeRejectsGarbage(t *testing.T) {
	if _, _, err := parseCodePointRange("t", 1, "zzzz"); err == nil {
		t.Fatalf("parseCodePointRange(garbage) returned nil error")
	}
}

func TestParseCodePointList(t *testing.T) {
	got, err := parseCodePointList("t", 1, "0053 0053")
	if err != nil {
		t.Fatalf("parseCodePointList: %v", err)
	}
	if len(got) != 2 || got[0] != 'S' || got[1] != 'S' {
		t.Fatalf("parseCodePointList = %v, want [S S]", got)
	}
	if got, err := parseCodePointList("t", 1, ""); err != nil || got != nil {
		t.Fatalf("parseCodePointList(\"\") = (%v, %v), want (nil, nil)", got, err)
	}
}

func TestIngestPropertyListFiltersWanted(t *testing.T) {
	input := "0009..000D ; White_Space\n0020 ; White_Space\n0041 ; Other_Property\n"
	out, err := IngestPropertyList("PropList.txt", strings.NewReader(input), map[string]bool{"White_Space": true})
	if err != nil {
		t.Fatalf("IngestPropertyList: %v", err)
	}
	recs, ok := out["White_Space"]
	if !ok || len(recs) != 2 {
		t.Fatalf("IngestPropertyList = %v, want 2 White_Space records", out)
	}
	if _, ok := out["Other_Property"]; ok {
		t.Fatalf("IngestPropertyList included an unwanted property")
	}
}

func TestIngestUnicodeDataHandlesFirstLastRange(t *testing.T) {
	input := strings.Join([]string{
		"3400;<CJK Ideograph Extension A, First>;Lo;0;L;;;;;N;;;;;",
		"4DB5;<CJK Ideograph Extension A, Last>;Lo;0;L;;;;;N;;;;;",
	}, "\n") + "\n"
	out, err := IngestUnicodeData("UnicodeData.txt", strings.NewReader(input))
	if err != nil {
		t.Fatalf("IngestUnicodeData: %v", err)
	}
	recs, ok := out["General_Category"]
	if !ok || len(recs) != 1 {
		t.Fatalf("IngestUnicodeData General_Category = %v, want one merged range record", out)
	}
	if recs[0].From != 0x3400 || recs[0].To != 0x4DB5 || recs[0].Value != "Lo" {
		t.Fatalf("merged range record = %+v, want From=0x3400 To=0x4DB5 Value=Lo", recs[0])
	}
}
