package textsplit

import (
	"fmt"
	"strings"
	"testing"
)

func TestSplitTextShortInput(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"whitespace only", "   \n\n  ", 0},
		{"shorter than chunk size", "printer troubleshooting guide", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitText(tt.text, 1000, 150)
			if len(got) != tt.want {
				t.Errorf("SplitText() returned %d chunks, want %d", len(got), tt.want)
			}
			if tt.want == 1 && got[0] != tt.text {
				t.Errorf("single chunk = %q, want original text", got[0])
			}
		})
	}
}

func TestSplitTextLongInput(t *testing.T) {
	// Distinct numbered lines so every chunk maps to a unique position.
	var sb strings.Builder
	for i := 0; i < 200; i++ {
		fmt.Fprintf(&sb, "line %03d: reset the device and check the cable\n", i)
	}
	text := sb.String()

	chunks := SplitText(text, 1000, 150)
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks for %d chars, got %d", len(text), len(chunks))
	}

	prevEnd := 0
	for i, chunk := range chunks {
		if len([]rune(chunk)) > 1000 {
			t.Errorf("chunk %d exceeds chunk size: %d runes", i, len([]rune(chunk)))
		}
		idx := strings.Index(text, chunk)
		if idx < 0 {
			t.Fatalf("chunk %d is not a substring of the input", i)
		}
		if i > 0 && idx > prevEnd {
			t.Errorf("gap before chunk %d: starts at %d, previous ended at %d", i, idx, prevEnd)
		}
		prevEnd = idx + len(chunk)
	}
	if prevEnd != len(text) {
		t.Errorf("last chunk ends at %d, want %d", prevEnd, len(text))
	}
}

func TestSplitTextNonPositiveChunkSize(t *testing.T) {
	// A zero or negative size must not loop forever; there is no sensible
	// output, so nothing comes back.
	for _, size := range []int{0, -1} {
		if got := SplitText("some document text", size, 150); got != nil {
			t.Errorf("SplitText(size=%d) = %v, want nil", size, got)
		}
	}
}

func TestSplitTextOverlapGreaterThanChunkSize(t *testing.T) {
	text := strings.Repeat("abcdefghij", 20)
	chunks := SplitText(text, 50, 60)
	if len(chunks) == 0 {
		t.Fatal("expected chunks despite misconfigured overlap")
	}
	for i, chunk := range chunks {
		if len(chunk) > 50 {
			t.Errorf("chunk %d exceeds chunk size: %d", i, len(chunk))
		}
	}
}
