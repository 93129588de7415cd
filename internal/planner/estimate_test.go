package planner

import (
	"reflect"
	"testing"
)

func TestNormalizeEstimate(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want int
	}{
		{"in range", "30", 30},
		{"lower bound", "15", 15},
		{"upper bound", "60", 60},
		{"below min clamps up", "5", 15},
		{"above max clamps down", "240", 60},
		{"leading digits", "45 minutes", 45},
		{"unparseable defaults", "about an hour", 30},
		{"empty defaults", "", 30},
		{"negative-looking defaults", "-10", 30},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeEstimate(tc.raw, 15, 60); got != tc.want {
				t.Errorf("NormalizeEstimate(%q) = %d, want %d", tc.raw, got, tc.want)
			}
		})
	}
}

func TestNormalizeEstimate_DefaultOutsideBoundsStillClamped(t *testing.T) {
	// With a 40..60 window the 30-minute default clamps to the lower bound.
	if got := NormalizeEstimate("garbage", 40, 60); got != 40 {
		t.Errorf("got %d, want 40", got)
	}
}

func TestPadAcceptanceCriteria(t *testing.T) {
	got := PadAcceptanceCriteria([]string{"Compiles"}, 3)
	want := []string{"Compiles", "Verify task 1 is complete", "Verify task 2 is complete"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("padded = %v, want %v", got, want)
	}
}

func TestPadAcceptanceCriteria_EmptyInput(t *testing.T) {
	got := PadAcceptanceCriteria(nil, 3)
	want := []string{
		"Verify task 1 is complete",
		"Verify task 2 is complete",
		"Verify task 3 is complete",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("padded = %v, want %v", got, want)
	}
}

func TestPadAcceptanceCriteria_NeverTruncates(t *testing.T) {
	in := []string{"a", "b", "c", "d"}
	got := PadAcceptanceCriteria(in, 3)
	if !reflect.DeepEqual(got, in) {
		t.Errorf("sufficient list must be unchanged, got %v", got)
	}
}
