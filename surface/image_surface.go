// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"slices"

	"golang.org/x/image/vector"

	"github.com/gogpu/replay/internal/stroke"
)

// DefaultTolerance is the flattening tolerance in device pixels.
const DefaultTolerance = 0.1

// ImageSurface is a CPU surface that renders to an *image.RGBA.
//
// Coverage comes from the golang.org/x/image/vector rasterizer, which
// accumulates signed area and clamps its magnitude, so overlapping pieces
// of a stroke or glyph do not cancel out.
type ImageSurface struct {
	img  *image.RGBA
	rast *vector.Rasterizer

	sx, sy float64

	face       Face
	align      TextAlign
	baseline   TextBaseline
	fill       image.Image
	stroke     image.Image
	line       LineStyle
	dash       []float64
	dashOffset float64

	tolerance float64
	closed    bool
}

// NewImageSurface creates a transparent surface with the given size.
// Negative dimensions are treated as zero.
func NewImageSurface(width, height int) *ImageSurface {
	return NewImageSurfaceFromImage(image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0))))
}

// NewImageSurfaceFromImage creates a surface that draws into img.
func NewImageSurfaceFromImage(img *image.RGBA) *ImageSurface {
	black := image.NewUniform(color.Black)
	return &ImageSurface{
		img:       img,
		rast:      vector.NewRasterizer(img.Bounds().Dx(), img.Bounds().Dy()),
		sx:        1,
		sy:        1,
		fill:      black,
		stroke:    black,
		line:      DefaultLineStyle(),
		tolerance: DefaultTolerance,
	}
}

// Width returns the surface width.
func (s *ImageSurface) Width() int { return s.img.Bounds().Dx() }

// Height returns the surface height.
func (s *ImageSurface) Height() int { return s.img.Bounds().Dy() }

// Scale multiplies the current transform by a scaling.
func (s *ImageSurface) Scale(sx, sy float64) {
	s.sx *= sx
	s.sy *= sy
}

// SetFont selects the face used for text.
func (s *ImageSurface) SetFont(f Face) { s.face = f }

// SetTextAlign sets the horizontal text anchor.
func (s *ImageSurface) SetTextAlign(a TextAlign) { s.align = a }

// SetTextBaseline sets the vertical text anchor.
func (s *ImageSurface) SetTextBaseline(b TextBaseline) { s.baseline = b }

// SetFillStyle sets the fill source. nil keeps the previous source.
func (s *ImageSurface) SetFillStyle(src image.Image) {
	if src != nil {
		s.fill = src
	}
}

// SetStrokeStyle sets the stroke source. nil keeps the previous source.
func (s *ImageSurface) SetStrokeStyle(src image.Image) {
	if src != nil {
		s.stroke = src
	}
}

// SetLineStyle sets the stroke geometry.
func (s *ImageSurface) SetLineStyle(ls LineStyle) { s.line = ls }

// SetLineDash sets the dash pattern. A pattern with a negative or
// non-finite entry is ignored, as in the canvas API.
func (s *ImageSurface) SetLineDash(pattern []float64, offset float64) {
	for _, v := range pattern {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return
		}
	}
	s.dash = slices.Clone(pattern)
	s.dashOffset = offset
}

// SetTolerance sets the curve flattening tolerance in device pixels.
func (s *ImageSurface) SetTolerance(tolerance float64) {
	if tolerance > 0 {
		s.tolerance = tolerance
	}
}

// Fill fills p with the current fill source.
func (s *ImageSurface) Fill(p *Path) {
	if s.closed || p == nil || p.IsEmpty() {
		return
	}
	s.rast.Reset(s.Width(), s.Height())
	i := 0
	open := false
	for _, v := range p.verbs {
		pts := p.points[i : i+v.pointCount()]
		i += len(pts)
		switch v {
		case VerbMoveTo:
			if open {
				s.rast.ClosePath()
			}
			x, y := s.device(pts[0])
			s.rast.MoveTo(x, y)
			open = true
		case VerbLineTo:
			x, y := s.device(pts[0])
			s.rast.LineTo(x, y)
		case VerbQuadTo:
			bx, by := s.device(pts[0])
			cx, cy := s.device(pts[1])
			s.rast.QuadTo(bx, by, cx, cy)
		case VerbCubicTo:
			bx, by := s.device(pts[0])
			cx, cy := s.device(pts[1])
			dx, dy := s.device(pts[2])
			s.rast.CubeTo(bx, by, cx, cy, dx, dy)
		case VerbClose:
			// The pen returns to the subpath start.
			s.rast.ClosePath()
		}
	}
	if open {
		s.rast.ClosePath()
	}
	s.draw(s.fill)
}

// Stroke strokes p with the current stroke source, line style and dash.
// The stroke is built in user space and then transformed, so a
// non-uniform scale stretches it the way a canvas does.
func (s *ImageSurface) Stroke(p *Path) {
	if s.closed || p == nil || p.IsEmpty() || s.line.Width <= 0 {
		return
	}
	tol := s.tolerance / math.Max(math.Max(math.Abs(s.sx), math.Abs(s.sy)), 1e-9)
	lines := stroke.Dash(p.Polylines(tol), s.dash, s.dashOffset)
	polys := stroke.Expand(lines, stroke.Style{
		Width:      s.line.Width,
		Cap:        stroke.Cap(s.line.Cap),
		Join:       stroke.Join(s.line.Join),
		MiterLimit: s.line.MiterLimit,
	}, tol)
	if len(polys) == 0 {
		return
	}

	s.rast.Reset(s.Width(), s.Height())
	for _, poly := range polys {
		x, y := s.device(Point{poly[0].X, poly[0].Y})
		s.rast.MoveTo(x, y)
		for _, pt := range poly[1:] {
			x, y := s.device(Point{pt.X, pt.Y})
			s.rast.LineTo(x, y)
		}
		s.rast.ClosePath()
	}
	s.draw(s.stroke)
}

// FillText fills s at (x, y).
func (s *ImageSurface) FillText(text string, x, y float64) {
	if p := s.textPath(text, x, y); p != nil {
		s.Fill(p)
	}
}

// StrokeText strokes the glyph outlines of s at (x, y).
func (s *ImageSurface) StrokeText(text string, x, y float64) {
	if p := s.textPath(text, x, y); p != nil {
		s.Stroke(p)
	}
}

func (s *ImageSurface) textPath(text string, x, y float64) *Path {
	if s.closed || s.face == nil || text == "" {
		return nil
	}
	ascent, descent := s.face.Extents()
	x -= alignOffset(s.align, s.face.Advance(text))
	y += baselineOffset(s.baseline, ascent, descent)
	p := NewPath()
	s.face.AppendOutline(p, text, x, y)
	return p
}

// Clear fills the entire surface with c.
func (s *ImageSurface) Clear(c color.Color) {
	if s.closed {
		return
	}
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// Image returns the backing image.
func (s *ImageSurface) Image() *image.RGBA { return s.img }

// Snapshot returns a copy of the surface contents.
func (s *ImageSurface) Snapshot() *image.RGBA {
	out := image.NewRGBA(s.img.Bounds())
	copy(out.Pix, s.img.Pix)
	return out
}

// Close marks the surface closed.
func (s *ImageSurface) Close() error {
	s.closed = true
	return nil
}

func (s *ImageSurface) device(p Point) (float32, float32) {
	return float32(p.X * s.sx), float32(p.Y * s.sy)
}

func (s *ImageSurface) draw(src image.Image) {
	b := s.img.Bounds()
	if b.Empty() {
		return
	}
	s.rast.DrawOp = draw.Over
	s.rast.Draw(s.img, b, src, image.Point{})
}

var _ Surface = (*ImageSurface)(nil)
