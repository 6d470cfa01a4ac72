package recording

import (
	"github.com/gogpu/replay/geom"
	"github.com/gogpu/replay/label"
)

// InstructionType identifies the kind of an instruction.
type InstructionType uint8

const (
	InstrBeginGeometry InstructionType = iota
	InstrEndGeometry
	InstrDrawImage
	InstrDrawChars
)

var instructionTypeNames = [...]string{
	InstrBeginGeometry: "BeginGeometry",
	InstrEndGeometry:   "EndGeometry",
	InstrDrawImage:     "DrawImage",
	InstrDrawChars:     "DrawChars",
}

// String returns the name of the instruction type.
func (t InstructionType) String() string {
	if int(t) < len(instructionTypeNames) {
		return instructionTypeNames[t]
	}
	return "Unknown"
}

// Instruction is one recorded drawing step.
type Instruction interface {
	Type() InstructionType
}

// Feature is the caller's handle for the feature a geometry belongs to.
// It is passed through unexamined.
type Feature any

// DeclutterGroup is an opaque collision-avoidance token shared by labels
// that must not overlap. It is passed through unexamined.
type DeclutterGroup any

// BeginGeometry starts the instructions of one feature. End is the index
// of the matching EndGeometry in the same stream, so executors can skip
// the whole feature.
type BeginGeometry struct {
	Feature  Feature
	Geometry geom.Geometry
	End      int
}

// Type implements Instruction.
func (*BeginGeometry) Type() InstructionType { return InstrBeginGeometry }

// EndGeometry closes the instructions of one feature.
type EndGeometry struct {
	Feature  Feature
	Geometry geom.Geometry
}

// Type implements Instruction.
func (*EndGeometry) Type() InstructionType { return InstrEndGeometry }

// DrawImage draws Image at every XY point in Coordinates[Begin:End].
//
// AnchorX and AnchorY are the image pixel placed on the point. Height and
// Width are the image size in device pixels. Scale is 1 in the paint
// stream, where the image already has device resolution, and
// 1/pixelRatio in the hit detection stream.
type DrawImage struct {
	Begin, End       int
	Image            *label.Image
	AnchorX, AnchorY float64
	DeclutterGroup   DeclutterGroup
	Height           float64
	Opacity          float64
	OriginX, OriginY float64
	RotateWithView   bool
	Rotation         float64
	Scale            float64
	Label            bool
	Width            float64
}

// Type implements Instruction.
func (*DrawImage) Type() InstructionType { return InstrDrawImage }

// DrawChars lays Text out along the line in Coordinates[Begin:End].
//
// Baseline and TextAlign are alignment fractions. Widths measures
// characters in the units of the stream: device pixels for paint,
// logical pixels for hit detection.
type DrawChars struct {
	Begin, End     int
	Baseline       float64
	DeclutterGroup DeclutterGroup
	ExceedLength   bool
	Fill           bool
	MaxAngle       float64
	Widths         WidthRequest
	OffsetY        float64
	Stroke         bool
	StrokeWidth    float64
	Text           string
	TextAlign      float64
	Scale          float64
}

// Type implements Instruction.
func (*DrawChars) Type() InstructionType { return InstrDrawChars }

// Widther measures text in logical pixels.
type Widther interface {
	Width(font, text string) float64
}

// WidthRequest is a deferred text measurement: the width of a string in
// Font, multiplied by Factor.
type WidthRequest struct {
	Font   string
	Factor float64
}

// Resolve measures s with w.
func (r WidthRequest) Resolve(w Widther, s string) float64 {
	return w.Width(r.Font, s) * r.Factor
}
