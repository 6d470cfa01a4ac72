package text

import "math"

// Metrics holds font metrics at a specific size, in CSS pixels.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the font.
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the
	// font, stored as a positive value.
	Descent float64

	// LineGap is the recommended gap between lines.
	LineGap float64
}

// LineHeight returns ascent + descent + line gap rounded up to whole
// pixels, the height one line of a label occupies.
func (m Metrics) LineHeight() float64 {
	return math.Ceil(m.Ascent + m.Descent + m.LineGap)
}
