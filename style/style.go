package style

import (
	"fmt"
	"math"
)

// Canvas defaults applied to unset style fields.
const (
	DefaultFont           = "10px sans-serif"
	DefaultLineCap        = LineCapRound
	DefaultLineJoin       = LineJoinRound
	DefaultMiterLimit     = 10.0
	DefaultLineWidth      = 1.0
	DefaultLineDashOffset = 0.0
	DefaultTextBaseline   = BaselineMiddle
	DefaultScale          = 1.0
	DefaultMaxAngle       = math.Pi / 4
)

// Placement selects how a label follows its geometry.
type Placement uint8

const (
	// PlacementPoint draws the label as an image at anchor points.
	PlacementPoint Placement = iota
	// PlacementLine lays the characters out along the geometry.
	PlacementLine
)

func (p Placement) String() string {
	if p == PlacementLine {
		return "line"
	}
	return "point"
}

// ParsePlacement parses "point" or "line".
func ParsePlacement(s string) (Placement, error) {
	switch s {
	case "point", "":
		return PlacementPoint, nil
	case "line":
		return PlacementLine, nil
	}
	return PlacementPoint, fmt.Errorf("style: unknown placement %q", s)
}

// TextAlign is the horizontal text anchor. AlignUnset lets line labels be
// restricted to a straight run and renders as center.
type TextAlign uint8

const (
	AlignUnset TextAlign = iota
	AlignLeft
	AlignRight
	AlignCenter
	AlignStart
	AlignEnd
)

var textAlignNames = [...]string{"", "left", "right", "center", "start", "end"}

func (a TextAlign) String() string {
	if int(a) < len(textAlignNames) {
		return textAlignNames[a]
	}
	return fmt.Sprintf("TextAlign(%d)", a)
}

// Fraction returns the horizontal anchor as a fraction of the label
// width: 0 for left/start, 1 for right/end and 0.5 otherwise.
func (a TextAlign) Fraction() float64 {
	switch a {
	case AlignLeft, AlignStart:
		return 0
	case AlignRight, AlignEnd:
		return 1
	default:
		return 0.5
	}
}

// ParseTextAlign parses a canvas textAlign value; "" is AlignUnset.
func ParseTextAlign(s string) (TextAlign, error) {
	for i, name := range textAlignNames {
		if name == s {
			return TextAlign(i), nil
		}
	}
	return AlignUnset, fmt.Errorf("style: unknown text align %q", s)
}

// TextBaseline is the vertical text anchor.
type TextBaseline uint8

const (
	BaselineUnset TextBaseline = iota
	BaselineTop
	BaselineHanging
	BaselineMiddle
	BaselineAlphabetic
	BaselineIdeographic
	BaselineBottom
)

var textBaselineNames = [...]string{"", "top", "hanging", "middle", "alphabetic", "ideographic", "bottom"}

func (b TextBaseline) String() string {
	if int(b) < len(textBaselineNames) {
		return textBaselineNames[b]
	}
	return fmt.Sprintf("TextBaseline(%d)", b)
}

// Fraction returns the vertical anchor as a fraction of the label
// height: 0 for top/hanging, 1 for bottom/alphabetic/ideographic and 0.5
// for middle. BaselineUnset behaves like the middle default.
func (b TextBaseline) Fraction() float64 {
	switch b {
	case BaselineTop, BaselineHanging:
		return 0
	case BaselineBottom, BaselineAlphabetic, BaselineIdeographic:
		return 1
	default:
		return 0.5
	}
}

// ParseTextBaseline parses a canvas textBaseline value; "" is
// BaselineUnset.
func ParseTextBaseline(s string) (TextBaseline, error) {
	for i, name := range textBaselineNames {
		if name == s {
			return TextBaseline(i), nil
		}
	}
	return BaselineUnset, fmt.Errorf("style: unknown text baseline %q", s)
}

// LineCap is the stroke end shape.
type LineCap uint8

const (
	LineCapUnset LineCap = iota
	LineCapButt
	LineCapRound
	LineCapSquare
)

var lineCapNames = [...]string{"", "butt", "round", "square"}

func (c LineCap) String() string {
	if int(c) < len(lineCapNames) {
		return lineCapNames[c]
	}
	return fmt.Sprintf("LineCap(%d)", c)
}

// ParseLineCap parses a canvas lineCap value; "" is LineCapUnset.
func ParseLineCap(s string) (LineCap, error) {
	for i, name := range lineCapNames {
		if name == s {
			return LineCap(i), nil
		}
	}
	return LineCapUnset, fmt.Errorf("style: unknown line cap %q", s)
}

// LineJoin is the stroke corner shape.
type LineJoin uint8

const (
	LineJoinUnset LineJoin = iota
	LineJoinBevel
	LineJoinRound
	LineJoinMiter
)

var lineJoinNames = [...]string{"", "bevel", "round", "miter"}

func (j LineJoin) String() string {
	if int(j) < len(lineJoinNames) {
		return lineJoinNames[j]
	}
	return fmt.Sprintf("LineJoin(%d)", j)
}

// ParseLineJoin parses a canvas lineJoin value; "" is LineJoinUnset.
func ParseLineJoin(s string) (LineJoin, error) {
	for i, name := range lineJoinNames {
		if name == s {
			return LineJoin(i), nil
		}
	}
	return LineJoinUnset, fmt.Errorf("style: unknown line join %q", s)
}

// Fill paints the inside of glyphs. A nil Paint means black.
type Fill struct {
	Paint Paint
}

// Stroke outlines glyphs. Zero fields take the Default* values. A nil
// Width means DefaultLineWidth; an explicit zero draws no outline and
// adds no halo to the label size.
type Stroke struct {
	Paint          Paint
	LineCap        LineCap
	LineJoin       LineJoin
	MiterLimit     float64
	LineDash       []float64
	LineDashOffset float64
	Width          *float64
}

// LineWidth returns the width to stroke with: DefaultLineWidth when Width
// is nil, otherwise Width clamped at zero.
func (s *Stroke) LineWidth() float64 {
	if s.Width == nil {
		return DefaultLineWidth
	}
	return math.Max(*s.Width, 0)
}

// Width returns a pointer to w, for Stroke literals.
func Width(w float64) *float64 { return &w }

// Text is a label style.
//
// A zero Scale means 1 and a zero MaxAngle means DefaultMaxAngle; set
// MaxAngle to math.Inf(1) to allow any bend along a line.
type Text struct {
	Text   string
	Font   string
	Fill   *Fill
	Stroke *Stroke

	Scale        float64
	Placement    Placement
	MaxAngle     float64
	TextAlign    TextAlign
	TextBaseline TextBaseline
	ExceedLength bool

	OffsetX, OffsetY float64
	Rotation         float64
	RotateWithView   bool
}
