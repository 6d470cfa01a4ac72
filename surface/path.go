// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"math"

	"github.com/gogpu/replay/internal/stroke"
)

// Verb identifies a path element.
type Verb uint8

const (
	VerbMoveTo Verb = iota
	VerbLineTo
	VerbQuadTo
	VerbCubicTo
	VerbClose
)

// pointCount returns how many points follow the verb.
func (v Verb) pointCount() int {
	switch v {
	case VerbMoveTo, VerbLineTo:
		return 1
	case VerbQuadTo:
		return 2
	case VerbCubicTo:
		return 3
	default:
		return 0
	}
}

// Path is a vector path in user space.
//
// Example:
//
//	p := surface.NewPath()
//	p.MoveTo(100, 100)
//	p.LineTo(200, 100)
//	p.LineTo(150, 200)
//	p.Close()
type Path struct {
	verbs  []Verb
	points []Point
	start  Point
	cur    Point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		verbs:  make([]Verb, 0, 16),
		points: make([]Point, 0, 32),
	}
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.verbs = append(p.verbs, VerbMoveTo)
	p.points = append(p.points, Point{x, y})
	p.start = Point{x, y}
	p.cur = p.start
}

// LineTo adds a line from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	if len(p.verbs) == 0 {
		p.MoveTo(x, y)
		return
	}
	p.verbs = append(p.verbs, VerbLineTo)
	p.points = append(p.points, Point{x, y})
	p.cur = Point{x, y}
}

// QuadTo adds a quadratic Bezier curve with control point (cx, cy).
func (p *Path) QuadTo(cx, cy, x, y float64) {
	if len(p.verbs) == 0 {
		p.MoveTo(cx, cy)
	}
	p.verbs = append(p.verbs, VerbQuadTo)
	p.points = append(p.points, Point{cx, cy}, Point{x, y})
	p.cur = Point{x, y}
}

// CubicTo adds a cubic Bezier curve with control points (c1x, c1y) and
// (c2x, c2y).
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	if len(p.verbs) == 0 {
		p.MoveTo(c1x, c1y)
	}
	p.verbs = append(p.verbs, VerbCubicTo)
	p.points = append(p.points, Point{c1x, c1y}, Point{c2x, c2y}, Point{x, y})
	p.cur = Point{x, y}
}

// Close closes the current subpath.
func (p *Path) Close() {
	if len(p.verbs) == 0 || p.verbs[len(p.verbs)-1] == VerbClose {
		return
	}
	p.verbs = append(p.verbs, VerbClose)
	p.cur = p.start
}

// Clear removes all elements from the path.
func (p *Path) Clear() {
	p.verbs = p.verbs[:0]
	p.points = p.points[:0]
	p.start, p.cur = Point{}, Point{}
}

// IsEmpty reports whether the path has no elements.
func (p *Path) IsEmpty() bool {
	return len(p.verbs) == 0
}

// Verbs returns the path verbs.
func (p *Path) Verbs() []Verb {
	return p.verbs
}

// Points returns the path points, consumed by the verbs in order.
func (p *Path) Points() []Point {
	return p.points
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.cur
}

// Rectangle adds a closed rectangle to the path.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// Circle adds a closed circle to the path.
func (p *Path) Circle(cx, cy, r float64) {
	const k = 0.5522847498307936 // Bezier circle approximation constant
	o := r * k

	p.MoveTo(cx+r, cy)
	p.CubicTo(cx+r, cy+o, cx+o, cy+r, cx, cy+r)
	p.CubicTo(cx-o, cy+r, cx-r, cy+o, cx-r, cy)
	p.CubicTo(cx-r, cy-o, cx-o, cy-r, cx, cy-r)
	p.CubicTo(cx+o, cy-r, cx+r, cy-o, cx+r, cy)
	p.Close()
}

// Bounds returns the bounding box of the path points, control points
// included. An empty path has zero bounds.
func (p *Path) Bounds() (minX, minY, maxX, maxY float64) {
	if len(p.points) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, pt := range p.points {
		minX = math.Min(minX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxX = math.Max(maxX, pt.X)
		maxY = math.Max(maxY, pt.Y)
	}
	return minX, minY, maxX, maxY
}

// Polylines flattens the path into one polyline per subpath. Curves are
// subdivided until they deviate less than tolerance from their chords.
func (p *Path) Polylines(tolerance float64) []stroke.Polyline {
	var out []stroke.Polyline
	var cur []stroke.Point
	flush := func(closed bool) {
		// A lone MoveTo draws nothing.
		if len(cur) > 1 {
			out = append(out, stroke.Polyline{Points: cur, Closed: closed})
		}
		cur = nil
	}

	i := 0
	for _, v := range p.verbs {
		pts := p.points[i : i+v.pointCount()]
		i += len(pts)
		switch v {
		case VerbMoveTo:
			flush(false)
			cur = []stroke.Point{toStroke(pts[0])}
		case VerbLineTo:
			cur = append(cur, toStroke(pts[0]))
		case VerbQuadTo:
			cur = stroke.FlattenQuad(cur, cur[len(cur)-1], toStroke(pts[0]), toStroke(pts[1]), tolerance)
		case VerbCubicTo:
			cur = stroke.FlattenCubic(cur, cur[len(cur)-1], toStroke(pts[0]), toStroke(pts[1]), toStroke(pts[2]), tolerance)
		case VerbClose:
			start := cur[0]
			flush(true)
			// Drawing after Close continues from the subpath start.
			cur = []stroke.Point{start}
		}
	}
	flush(false)
	return out
}

func toStroke(p Point) stroke.Point {
	return stroke.Point{X: p.X, Y: p.Y}
}
