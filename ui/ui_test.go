package ui

import (
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

func TestWrap(t *testing.T) {
	face := loadFaces().body

	tests := []struct {
		name     string
		input    string
		maxWidth float64
		minLines int
	}{
		{"short line fits", "hello", 500, 1},
		{"long line wraps", strings.Repeat("word ", 40), 120, 3},
		{"paragraphs kept", "one\n\ntwo", 500, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := wrap(tt.input, face, tt.maxWidth)
			if len(lines) < tt.minLines {
				t.Errorf("expected at least %d lines, got %d", tt.minLines, len(lines))
			}
			for _, line := range lines {
				if strings.Contains(line, " ") {
					if w, _ := text.Measure(line, face, 0); w > tt.maxWidth {
						t.Errorf("expected line %q within %v px, got %v", line, tt.maxWidth, w)
					}
				}
			}
		})
	}
}

func TestWrapKeepsEveryWord(t *testing.T) {
	face := loadFaces().body
	input := "Pixel art portfolio with a small character who warps through doors"
	got := strings.Join(wrap(input, face, 100), " ")
	if got != input {
		t.Errorf("expected %q, got %q", input, got)
	}
}
