package utils

import "testing"

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate(short, 10) = %q", got)
	}
	if got := Truncate("abcdefghij", 6); got != "abc..." {
		t.Errorf("Truncate = %q, want abc...", got)
	}
	if got := Truncate("héllo wörld", 8); len([]rune(got)) != 8 {
		t.Errorf("Truncate not rune-safe: %q", got)
	}
}

func TestClip(t *testing.T) {
	if got := Clip("abc", 50); got != "abc" {
		t.Errorf("Clip(abc, 50) = %q", got)
	}
	if got := Clip("abcdef", 3); got != "abc" {
		t.Errorf("Clip(abcdef, 3) = %q", got)
	}
	long := "Implement user authentication with refresh tokens and session rotation"
	if n := len([]rune(Clip(long, 50))); n != 50 {
		t.Errorf("Clip length = %d, want 50", n)
	}
}
