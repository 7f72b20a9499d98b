package ucdgen

import "testing"

func TestSelectWidthBoundaries(t *testing.T) {
	cases := []struct {
		count int
		want  int
	}{
		{0, 8}, {1, 8}, {255, 8},
		{256, 16}, {65535, 16},
		{65536, 32},
	}
	for _, tc := range cases {
		if got := SelectWidth(tc.count); got != tc.want {
			t.Errorf("SelectWidth(%d) = %d, want %d", tc.count, got, tc.want)
		}
	}
}

func TestSelectPropertyWidthBoolean(t *testing.T) {
	if got := SelectPropertyWidth(PropertySpec{Shape: ShapeBoolean}, 2); got != 1 {
		t.Errorf("SelectPropertyWidth(boolean) = %d, want 1", got)
	}
}

func TestSelectPropertyWidthCodePointIsAlways32(t *testing.T) {
	if got := SelectPropertyWidth(PropertySpec{Shape: ShapeCodePoint}, 3); got != 32 {
		t.Errorf("SelectPropertyWidth(cp) = %d, want 32", got)
	}
}

func TestSelectPropertyWidthEnumFollowsValueCount(t *testing.T) {
	if got := SelectPropertyWidth(PropertySpec{Shape: ShapeEnum}, 30); got != 8 {
		t.Errorf("SelectPropertyWidth(enum, 30 values) = %d, want 8", got)
	}
	if got := SelectPropertyWidth(PropertySpec{Shape: ShapeEnum}, 1000); got != 16 {
		t.Errorf("SelectPropertyWidth(enum, 1000 values) = %d, want 16", got)
	}
}
