package tui

import "testing"

func TestStripANSIEscapes(t *testing.T) {
	in := "\x1b[1;31mred\x1b[0m plain"
	if got := stripANSIEscapes(in); got != "red plain" {
		t.Fatalf("stripANSIEscapes = %q", got)
	}
}

func TestVisibleLineCount_IgnoresBlankAndEscapeOnlyLines(t *testing.T) {
	in := "title\n\n   \n\x1b[2m\x1b[0m\nbody"
	if got := visibleLineCount(in); got != 2 {
		t.Fatalf("visibleLineCount = %d, want 2", got)
	}
}
