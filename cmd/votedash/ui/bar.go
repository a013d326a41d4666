package ui

import (
	"math"
	"strings"

	"votedash/internal/tally"
)

const (
	positiveGlyph = "█"
	negativeGlyph = "▓"
)

// BarSegments splits width cells between the two sides in proportion to
// their percentages. The segments always fill the bar exactly; an empty
// tally yields (0, 0).
func BarSegments(width int, s tally.Stats) (pos, neg int) {
	if width <= 0 || s.Total == 0 {
		return 0, 0
	}
	pos = int(math.Round(float64(width) * s.PositivePercentage / 100))
	if pos < 0 {
		pos = 0
	}
	if pos > width {
		pos = width
	}
	return pos, width - pos
}

// RenderBar draws the two-segment proportional bar, or nothing when no votes
// have been recorded.
func RenderBar(st Styles, width int, s tally.Stats) string {
	pos, neg := BarSegments(width, s)
	if pos+neg == 0 {
		return ""
	}
	return st.PositiveBar.Render(strings.Repeat(positiveGlyph, pos)) +
		st.NegativeBar.Render(strings.Repeat(negativeGlyph, neg))
}
