package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestApplyGradient_KeepsText(t *testing.T) {
	tests := []string{"", "R", "RentFlow", "Résumé ✓"}
	for _, text := range tests {
		got := ansi.Strip(ApplyGradient(text, T().Primary, T().Secondary))
		if got != text {
			t.Errorf("ApplyGradient(%q) stripped = %q", text, got)
		}
	}
}

func TestBlendColors_Endpoints(t *testing.T) {
	from, to := lipgloss.Color("#000000"), lipgloss.Color("#ffffff")
	colors := blendColors(5, from, to)
	if len(colors) != 5 {
		t.Fatalf("len = %d, want 5", len(colors))
	}
	if got := colorToHex(colors[0]); got != "#000000" {
		t.Errorf("first = %s, want #000000", got)
	}
	if got := colorToHex(colors[4]); got != "#ffffff" {
		t.Errorf("last = %s, want #ffffff", got)
	}
}

func TestGradientBar(t *testing.T) {
	tests := []struct {
		name          string
		width, filled int
		wantFilled    int
	}{
		{"empty", 10, 0, 0},
		{"partial", 10, 4, 4},
		{"full", 10, 10, 10},
		{"overflow clamps", 10, 15, 10},
		{"negative clamps", 10, -2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plain := ansi.Strip(GradientBar(tt.width, tt.filled, T().Primary, T().Secondary))
			if w := ansi.StringWidth(plain); w != tt.width {
				t.Errorf("width = %d, want %d", w, tt.width)
			}
			if n := strings.Count(plain, barFilled); n != tt.wantFilled {
				t.Errorf("filled cells = %d, want %d", n, tt.wantFilled)
			}
		})
	}

	if GradientBar(0, 0, T().Primary, T().Secondary) != "" {
		t.Error("zero width bar should be empty")
	}
}
