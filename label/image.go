package label

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/gogpu/replay/internal/logging"
	"github.com/gogpu/replay/style"
	"github.com/gogpu/replay/surface"
)

var (
	// ErrNoSurfaceFactory is returned by Render without a surface factory.
	ErrNoSurfaceFactory = errors.New("label: no surface factory")

	// ErrNoFace is returned by Render without a font face.
	ErrNoFace = errors.New("label: no font face")
)

// Image is a rendered label in device pixels.
type Image struct {
	rgba  *image.RGBA
	lines int
}

// NewImage wraps pixels drawn elsewhere as a one-line label image.
func NewImage(rgba *image.RGBA) *Image {
	return &Image{rgba: rgba, lines: 1}
}

// Width returns the image width in device pixels.
func (i *Image) Width() int { return i.rgba.Rect.Dx() }

// Height returns the image height in device pixels.
func (i *Image) Height() int { return i.rgba.Rect.Dy() }

// Lines returns the number of text lines drawn.
func (i *Image) Lines() int { return i.lines }

// RGBA returns the pixels. Callers must not modify them.
func (i *Image) RGBA() *image.RGBA { return i.rgba }

// Request describes one label to render. Widths and LineHeight are in
// logical pixels; Scale converts them to device pixels.
type Request struct {
	Lines      []string
	Widths     []float64
	LineHeight float64
	Face       surface.Face

	// Scale is the text scale times the device pixel ratio.
	Scale float64

	// Align is the horizontal alignment fraction: 0 left, 0.5 center,
	// 1 right.
	Align float64

	// Fill and Stroke are drawn when non-nil. Stroke fields must already
	// carry their defaults.
	Fill   *style.Fill
	Stroke *style.Stroke
}

// Size returns the device size of the image Render produces for r.
func (r *Request) Size() (width, height int) {
	sw := r.strokeWidth()
	var maxWidth float64
	for _, w := range r.Widths {
		maxWidth = math.Max(maxWidth, w)
	}
	s := r.scale()
	width = int(math.Ceil((maxWidth + sw) * s))
	height = int(math.Ceil((r.LineHeight*float64(len(r.Lines)) + sw) * s))
	return width, height
}

func (r *Request) strokeWidth() float64 {
	if r.Stroke == nil {
		return 0
	}
	return r.Stroke.LineWidth()
}

func (r *Request) scale() float64 {
	if r.Scale <= 0 {
		return 1
	}
	return r.Scale
}

// Render draws the label on a new surface from factory. Every line is
// stroked before any line is filled so fills sit on top of neighbouring
// strokes.
func Render(r Request, factory surface.Factory) (*Image, error) {
	if factory == nil {
		return nil, ErrNoSurfaceFactory
	}
	if r.Face == nil {
		return nil, ErrNoFace
	}

	w, h := r.Size()
	surf, err := factory(w, h)
	if err != nil {
		return nil, fmt.Errorf("label: allocate %dx%d surface: %w", w, h, err)
	}
	defer func() {
		if cerr := surf.Close(); cerr != nil {
			logging.Logger().Warn("label: close surface", "err", cerr)
		}
	}()

	s := r.scale()
	sw := r.strokeWidth()
	if s != 1 {
		surf.Scale(s, s)
	}
	surf.SetFont(r.Face)
	surf.SetTextAlign(surface.TextAlignCenter)
	surf.SetTextBaseline(surface.TextBaselineTop)

	x := r.Align*float64(w)/s + (0.5-r.Align)*sw
	lineX := func(i int) float64 {
		if i < len(r.Widths) {
			return x + (0.5-r.Align)*r.Widths[i]
		}
		return x
	}
	lineY := func(i int) float64 { return 0.5*sw + float64(i)*r.LineHeight }

	if r.Stroke != nil && sw > 0 {
		surf.SetStrokeStyle(source(r.Stroke.Paint))
		surf.SetLineStyle(LineStyleOf(r.Stroke))
		surf.SetLineDash(r.Stroke.LineDash, r.Stroke.LineDashOffset)
		for i, line := range r.Lines {
			surf.StrokeText(line, lineX(i), lineY(i))
		}
	}
	if r.Fill != nil {
		surf.SetFillStyle(source(r.Fill.Paint))
		for i, line := range r.Lines {
			surf.FillText(line, lineX(i), lineY(i))
		}
	}

	return &Image{rgba: surf.Snapshot(), lines: len(r.Lines)}, nil
}

func source(p style.Paint) image.Image {
	if p == nil {
		return image.NewUniform(color.Black)
	}
	return p.Source()
}

// LineStyleOf converts stroke attributes to surface line style. Unset
// caps and joins take the style defaults.
func LineStyleOf(s *style.Stroke) surface.LineStyle {
	ls := surface.LineStyle{
		Width:      s.LineWidth(),
		MiterLimit: s.MiterLimit,
	}
	if ls.MiterLimit <= 0 {
		ls.MiterLimit = style.DefaultMiterLimit
	}

	lineCap := s.LineCap
	if lineCap == style.LineCapUnset {
		lineCap = style.DefaultLineCap
	}
	switch lineCap {
	case style.LineCapButt:
		ls.Cap = surface.LineCapButt
	case style.LineCapSquare:
		ls.Cap = surface.LineCapSquare
	default:
		ls.Cap = surface.LineCapRound
	}

	join := s.LineJoin
	if join == style.LineJoinUnset {
		join = style.DefaultLineJoin
	}
	switch join {
	case style.LineJoinBevel:
		ls.Join = surface.LineJoinBevel
	case style.LineJoinMiter:
		ls.Join = surface.LineJoinMiter
	default:
		ls.Join = surface.LineJoinRound
	}
	return ls
}
