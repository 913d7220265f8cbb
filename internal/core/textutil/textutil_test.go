package textutil

import "testing"

func TestNormalizeWhitespace(t *testing.T) {
	got := NormalizeWhitespace("  एक \t दो\n\nतीन  ")
	if got != "एक दो तीन" {
		t.Fatalf("NormalizeWhitespace() = %q", got)
	}
}

func TestTruncateRunesKeepsShortStrings(t *testing.T) {
	if got := TruncateRunes("नमस्ते", 100); got != "नमस्ते" {
		t.Fatalf("TruncateRunes() = %q, want input unchanged", got)
	}
}

func TestTruncateRunesCutsOnRuneBoundary(t *testing.T) {
	got := TruncateRunes("नमस्ते", 3)
	if got != "नमस" {
		t.Fatalf("TruncateRunes() = %q, want नमस", got)
	}
}

func TestTruncateWithEllipsis(t *testing.T) {
	if got := TruncateWithEllipsis("abcdef", 4); got != "abcd..." {
		t.Fatalf("TruncateWithEllipsis() = %q", got)
	}
	if got := TruncateWithEllipsis("abc", 4); got != "abc" {
		t.Fatalf("TruncateWithEllipsis() = %q, want no ellipsis", got)
	}
}

func TestWordCount(t *testing.T) {
	if got := WordCount("यह एक परीक्षण है"); got != 4 {
		t.Fatalf("WordCount() = %d, want 4", got)
	}
	if got := WordCount("   "); got != 0 {
		t.Fatalf("WordCount() = %d, want 0", got)
	}
}
