package ucd

import "testing"

func TestLocateRunMonotonic(t *testing.T) {
	boundaries := []int32{10, 20, 30}
	prev := -1
	for c := int32(0); c < 40; c++ {
		run := locateRun(boundaries, c)
		if run < prev {
			t.Fatalf("run index not monotonic at c=%d: got %d after %d", c, run, prev)
		}
		prev = run
	}
}

func TestLocateRunInvariant(t *testing.T) {
	boundaries := []int32{5, 5, 12}
	cases := []struct {
		c    int32
		want int
	}{
		{0, 0}, {4, 0}, {5, 2}, {6, 2}, {11, 2}, {12, 3}, {100, 3},
	}
	for _, tc := range cases {
		if got := locateRun(boundaries, tc.c); got != tc.want {
			t.Errorf("locateRun(%v, %d) = %d, want %d", boundaries, tc.c, got, tc.want)
		}
	}
}

func TestLocateRunEmpty(t *testing.T) {
	if got := locateRun(nil, 42); got != 0 {
		t.Errorf("locateRun(nil, 42) = %d, want 0", got)
	}
}
