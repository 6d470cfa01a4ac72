// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

// Point is a 2D point in user space.
type Point struct {
	X, Y float64
}

// LineCap specifies the shape of line endpoints.
type LineCap uint8

const (
	// LineCapButt ends the line flat at the endpoint.
	LineCapButt LineCap = iota

	// LineCapRound adds a semicircle at each endpoint.
	LineCapRound

	// LineCapSquare extends the line by half its width.
	LineCapSquare
)

// LineJoin specifies the shape of corners.
type LineJoin uint8

const (
	// LineJoinMiter extends the outer edges until they meet, up to the
	// miter limit.
	LineJoinMiter LineJoin = iota

	// LineJoinRound rounds the corner.
	LineJoinRound

	// LineJoinBevel cuts the corner off.
	LineJoinBevel
)

// LineStyle holds the stroke geometry parameters.
type LineStyle struct {
	Width      float64
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64
}

// DefaultLineStyle returns the canvas defaults: 1px, butt caps, miter joins
// with limit 10.
func DefaultLineStyle() LineStyle {
	return LineStyle{
		Width:      1,
		Cap:        LineCapButt,
		Join:       LineJoinMiter,
		MiterLimit: 10,
	}
}

// TextAlign positions text horizontally relative to the drawing point.
type TextAlign uint8

const (
	TextAlignStart TextAlign = iota
	TextAlignLeft
	TextAlignCenter
	TextAlignRight
	TextAlignEnd
)

// TextBaseline positions text vertically relative to the drawing point.
type TextBaseline uint8

const (
	TextBaselineAlphabetic TextBaseline = iota
	TextBaselineTop
	TextBaselineHanging
	TextBaselineMiddle
	TextBaselineIdeographic
	TextBaselineBottom
)

// Face is a font selected on a surface.
//
// Units are user-space pixels: the surface transform is applied to the
// outline afterwards.
type Face interface {
	// Advance returns the advance width of s.
	Advance(s string) float64

	// Extents returns the ascent and descent of the face, both positive.
	Extents() (ascent, descent float64)

	// AppendOutline adds the glyph outlines of s to p. The pen starts at
	// (x, y) on the alphabetic baseline.
	AppendOutline(p *Path, s string, x, y float64)
}

// alignOffset returns how far the drawing point sits from the left edge
// of a run of the given width.
func alignOffset(a TextAlign, width float64) float64 {
	switch a {
	case TextAlignCenter:
		return width / 2
	case TextAlignRight, TextAlignEnd:
		return width
	default:
		return 0
	}
}

// baselineOffset returns the distance from the drawing point down to the
// alphabetic baseline.
func baselineOffset(b TextBaseline, ascent, descent float64) float64 {
	switch b {
	case TextBaselineTop, TextBaselineHanging:
		return ascent
	case TextBaselineMiddle:
		return (ascent - descent) / 2
	case TextBaselineBottom, TextBaselineIdeographic:
		return -descent
	default:
		return 0
	}
}
