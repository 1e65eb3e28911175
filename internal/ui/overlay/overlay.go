// Package overlay composites a modal view over a base screen.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Compose overlays content on top of a base view.
// Non-space characters in overlay replace the base at the same position.
// This function is ANSI-aware and handles styled text correctly.
func Compose(base, overlay string, width int) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(overlay, "\n")

	for i, overlayLine := range overlayLines {
		if i >= len(baseLines) {
			break
		}

		// Strip ANSI to find visible content bounds
		plainOverlay := ansi.Strip(overlayLine)
		if strings.TrimSpace(plainOverlay) == "" {
			continue // empty line (visually)
		}

		startCol := 0
		for _, r := range plainOverlay {
			if r != ' ' {
				break
			}
			startCol++ // ASCII space is always 1 column
		}
		endCol := ansi.StringWidth(strings.TrimRight(plainOverlay, " "))

		overlayContent := ansi.Cut(overlayLine, startCol, endCol)

		baseLine := baseLines[i]
		if baseWidth := ansi.StringWidth(baseLine); baseWidth < width {
			baseLine += strings.Repeat(" ", width-baseWidth)
		}

		// Cutting through a wide character (emoji, CJK) can shift the
		// prefix or suffix by a column; pad or trim to keep alignment.
		prefix := ansi.Cut(baseLine, 0, startCol)
		if prefixWidth := ansi.StringWidth(prefix); prefixWidth < startCol {
			prefix += strings.Repeat(" ", startCol-prefixWidth)
		}

		result := prefix + overlayContent
		if endCol < width {
			suffix := ansi.Cut(baseLine, endCol, width)
			suffixWidth := ansi.StringWidth(suffix)
			expected := width - endCol
			switch {
			case suffixWidth > expected:
				suffix = " " + ansi.Cut(suffix, suffixWidth-expected+1, suffixWidth)
			case suffixWidth < expected:
				result += strings.Repeat(" ", expected-suffixWidth)
			}
			result += suffix
		}

		baseLines[i] = result
	}

	return strings.Join(baseLines, "\n")
}
