package stroke

import "math"

// Point is a 2D point in device pixels.
type Point struct {
	X, Y float64
}

func (p Point) add(v Point) Point     { return Point{p.X + v.X, p.Y + v.Y} }
func (p Point) sub(q Point) Point     { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) scale(s float64) Point { return Point{p.X * s, p.Y * s} }
func (p Point) dot(q Point) float64   { return p.X*q.X + p.Y*q.Y }
func (p Point) cross(q Point) float64 { return p.X*q.Y - p.Y*q.X }
func (p Point) length() float64       { return math.Hypot(p.X, p.Y) }
func (p Point) perp() Point           { return Point{-p.Y, p.X} }
func (p Point) lerp(q Point, t float64) Point {
	return Point{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t}
}

// Cap specifies the shape of open polyline endpoints.
type Cap uint8

const (
	CapButt   Cap = iota // flat, ends at the endpoint
	CapRound             // semicircle of radius width/2
	CapSquare            // extends width/2 past the endpoint
)

// Join specifies the shape of polyline corners.
type Join uint8

const (
	JoinMiter Join = iota
	JoinRound
	JoinBevel
)

// Style defines the stroke geometry.
type Style struct {
	Width      float64
	Cap        Cap
	Join       Join
	MiterLimit float64
}

// Polyline is one flattened subpath.
type Polyline struct {
	Points []Point
	Closed bool
}

// Polygon is a closed ring; the closing edge is implicit.
type Polygon []Point

// Expand converts polylines into polygons covering the stroke.
// Every polygon has positive signed area, so overlapping pieces add up
// under the non-zero rule instead of cancelling.
// tolerance bounds the chord error of round caps and joins.
func Expand(lines []Polyline, style Style, tolerance float64) []Polygon {
	if style.Width <= 0 {
		return nil
	}
	if tolerance <= 0 {
		tolerance = 0.25
	}
	e := expander{style: style, hw: style.Width / 2, tolerance: tolerance}
	for _, l := range lines {
		e.polyline(l)
	}
	return e.out
}

type expander struct {
	style     Style
	hw        float64
	tolerance float64
	out       []Polygon
}

func (e *expander) emit(poly Polygon) {
	if len(poly) < 3 {
		return
	}
	if signedArea(poly) < 0 {
		for i, j := 0, len(poly)-1; i < j; i, j = i+1, j-1 {
			poly[i], poly[j] = poly[j], poly[i]
		}
	}
	e.out = append(e.out, poly)
}

func (e *expander) polyline(l Polyline) {
	pts := dedupe(l.Points)
	if l.Closed && len(pts) > 2 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	switch {
	case len(pts) == 0:
		return
	case len(pts) == 1:
		// Zero-length subpaths only show their caps.
		switch e.style.Cap {
		case CapRound:
			e.emit(e.circle(pts[0]))
		case CapSquare:
			hw := e.hw
			p := pts[0]
			e.emit(Polygon{{p.X - hw, p.Y - hw}, {p.X + hw, p.Y - hw}, {p.X + hw, p.Y + hw}, {p.X - hw, p.Y + hw}})
		}
		return
	}

	n := len(pts)
	segs := n - 1
	if l.Closed {
		segs = n
	}
	for i := 0; i < segs; i++ {
		e.segment(pts[i], pts[(i+1)%n])
	}

	if l.Closed {
		for i := 0; i < n; i++ {
			prev := pts[(i+n-1)%n]
			e.join(pts[i], pts[i].sub(prev), pts[(i+1)%n].sub(pts[i]))
		}
		return
	}
	for i := 1; i < n-1; i++ {
		e.join(pts[i], pts[i].sub(pts[i-1]), pts[i+1].sub(pts[i]))
	}
	e.cap(pts[0], pts[0].sub(pts[1]))
	e.cap(pts[n-1], pts[n-1].sub(pts[n-2]))
}

// normal returns the unit perpendicular of t scaled to half the width.
func (e *expander) normal(t Point) Point {
	return t.perp().scale(e.hw / t.length())
}

func (e *expander) segment(a, b Point) {
	n := e.normal(b.sub(a))
	e.emit(Polygon{a.add(n), b.add(n), b.sub(n), a.sub(n)})
}

// join fills the wedge on the outer side of the corner at p, where t0 is
// the incoming and t1 the outgoing tangent.
func (e *expander) join(p, t0, t1 Point) {
	cross := t0.cross(t1)
	dot := t0.dot(t1)
	hypot := math.Hypot(cross, dot)
	if dot > 0 && math.Abs(cross) < hypot*1e-9 {
		return
	}

	// A positive cross product turns toward the normal side, so the outer
	// side of the corner is the opposite one.
	side := -1.0
	if cross < 0 {
		side = 1
	}
	o0 := e.normal(t0).scale(side)
	o1 := e.normal(t1).scale(side)

	switch e.style.Join {
	case JoinRound:
		e.emit(e.circle(p))
	case JoinMiter:
		limitSq := e.style.MiterLimit * e.style.MiterLimit
		if 2*hypot < (hypot+dot)*limitSq {
			bisector := o0.add(o1)
			if l := bisector.length(); l > 1e-12 {
				cosHalf := math.Sqrt((1 + dot/hypot) / 2)
				m := p.add(bisector.scale(e.hw / cosHalf / l))
				e.emit(Polygon{p, p.add(o0), m, p.add(o1)})
				return
			}
		}
		e.emit(Polygon{p, p.add(o0), p.add(o1)})
	default:
		e.emit(Polygon{p, p.add(o0), p.add(o1)})
	}
}

// cap adds the end cap at p; dir points away from the polyline.
func (e *expander) cap(p, dir Point) {
	switch e.style.Cap {
	case CapRound:
		e.emit(e.circle(p))
	case CapSquare:
		d := dir.scale(e.hw / dir.length())
		n := d.perp()
		e.emit(Polygon{p.add(n), p.add(n).add(d), p.sub(n).add(d), p.sub(n)})
	}
}

func (e *expander) circle(c Point) Polygon {
	steps := 8
	if e.tolerance < e.hw {
		step := 2 * math.Acos(1-e.tolerance/e.hw)
		steps = max(steps, int(math.Ceil(2*math.Pi/step)))
	}
	steps = min(steps, 128)
	poly := make(Polygon, steps)
	for i := range poly {
		a := 2 * math.Pi * float64(i) / float64(steps)
		poly[i] = Point{c.X + e.hw*math.Cos(a), c.Y + e.hw*math.Sin(a)}
	}
	return poly
}

func dedupe(pts []Point) []Point {
	out := make([]Point, 0, len(pts))
	for _, p := range pts {
		if len(out) > 0 && out[len(out)-1].sub(p).length() < 1e-9 {
			continue
		}
		out = append(out, p)
	}
	return out
}

func signedArea(poly Polygon) float64 {
	var a float64
	for i := range poly {
		j := (i + 1) % len(poly)
		a += poly[i].X*poly[j].Y - poly[j].X*poly[i].Y
	}
	return a / 2
}
