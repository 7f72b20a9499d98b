package ucdgen

import "testing"

func TestCoalesceEmptyInputUsesDefault(t *testing.T) {
	runs, err := Coalesce(PropertySpec{Name: "Test", Default: "N"}, nil, 10)
	if err != nil {
		t.Fatalf("Coalesce: %v", err)
	}
	if len(runs) != 1 || runs[0].Value != "N" || runs[0].Start != 0 || runs[0].End != 11 {
		t.Fatalf("Coalesce(empty) = %+v, want single default run [0,11)", runs)
	}
}

func TestCoalesceMergesAdjacentSameValue(t *testing.T) {
	records := []Record{
		{From: 5, To: 9, Value: "X"},
		{From: 10, To: 14, Value: "X"},
	}
	runs, err := Coalesce(PropertySpec{Name: "Test", Default: "N"}, records, 20)
	if err != nil {
		t.Fatalf("Coalesce: %v", err)
	}
	want := []Run{
		{Start: 0, End: 5, Value: "N"},
		{Start: 5, End: 15, Value: "X"},
		{Start: 15, End: 21, Value: "N"},
	}
	if !runsEqual(runs, want) {
		t.Fatalf("Coalesce = %+v, want %+v", runs, want)
	}
}

func TestCoalesceLaterRecordOverrides(t *testing.T) {
	records := []Record{
		{From: 0, To: 10, Value: "A"},
		{From: 4, To: 6, Value: "B"},
	}
	runs, err := Coalesce(PropertySpec{Name: "Test", Default: "N"}, records, 10)
	if err != nil {
		t.Fatalf("Coalesce: %v", err)
	}
	want := []Run{
		{Start: 0, End: 4, Value: "A"},
		{Start: 4, End: 7, Value: "B"},
		{Start: 7, End: 11, Value: "A"},
	}
	if !runsEqual(runs, want) {
		t.Fatalf("Coalesce = %+v, want %+v", runs, want)
	}
}

func TestBoundariesOmitsLastRun(t *testing.T) {
	runs := []Run{
		{Start: 0, End: 5, Value: "A"},
		{Start: 5, End: 10, Value: "B"},
		{Start: 10, End: 20, Value: "C"},
	}
	got := Boundaries(runs)
	want := []int32{5, 10}
	if len(got) != len(want) {
		t.Fatalf("Boundaries = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Boundaries = %v, want %v", got, want)
		}
	}
}

func runsEqual(a, b []Run) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
