package geom

import "math"

// flatGeom holds the shared flat-coordinate layout of the reference
// geometries.
type flatGeom struct {
	flat   []float64
	stride int
}

func newFlatGeom(flat []float64, stride int) flatGeom {
	if stride < 2 {
		stride = 2
	}
	return flatGeom{flat: flat, stride: stride}
}

func (g flatGeom) FlatCoordinates() []float64 { return g.flat }
func (g flatGeom) Stride() int                { return g.stride }
func (g flatGeom) Extent() Extent             { return ExtentOfFlat(g.flat, 0, len(g.flat), g.stride) }

// Point is a single position.
type Point struct{ flatGeom }

// NewPoint returns a 2D point.
func NewPoint(x, y float64) *Point {
	return &Point{newFlatGeom([]float64{x, y}, 2)}
}

func (*Point) Type() Type { return TypePoint }

// MultiPoint is a set of positions.
type MultiPoint struct{ flatGeom }

// NewMultiPoint returns a multi-point over flat with the given stride.
func NewMultiPoint(flat []float64, stride int) *MultiPoint {
	return &MultiPoint{newFlatGeom(flat, stride)}
}

func (*MultiPoint) Type() Type { return TypeMultiPoint }

// LineString is a polyline.
type LineString struct{ flatGeom }

// NewLineString returns a line string over flat with the given stride.
func NewLineString(flat []float64, stride int) *LineString {
	return &LineString{newFlatGeom(flat, stride)}
}

func (*LineString) Type() Type { return TypeLineString }

// FlatMidpoint returns the XY point at half the length of the line.
func (l *LineString) FlatMidpoint() []float64 {
	x, y := InterpolateFlat(l.flat, 0, len(l.flat), l.stride, 0.5)
	return []float64{x, y}
}

// Length returns the length of the line.
func (l *LineString) Length() float64 {
	return lengthOfFlat(l.flat, 0, len(l.flat), l.stride)
}

// MultiLineString is a set of polylines sharing one flat buffer.
type MultiLineString struct {
	flatGeom
	ends []int
}

// NewMultiLineString returns a multi-line string; ends holds the
// exclusive end offset of every line.
func NewMultiLineString(flat []float64, stride int, ends []int) *MultiLineString {
	return &MultiLineString{newFlatGeom(flat, stride), ends}
}

func (*MultiLineString) Type() Type    { return TypeMultiLineString }
func (m *MultiLineString) Ends() []int { return m.ends }

// FlatMidpoints returns the XY midpoint of every line.
func (m *MultiLineString) FlatMidpoints() []float64 {
	out := make([]float64, 0, 2*len(m.ends))
	offset := 0
	for _, end := range m.ends {
		x, y := InterpolateFlat(m.flat, offset, end, m.stride, 0.5)
		out = append(out, x, y)
		offset = end
	}
	return out
}

// Polygon is an outer ring followed by zero or more holes.
type Polygon struct {
	flatGeom
	ends []int
}

// NewPolygon returns a polygon; ends holds the exclusive end offset of
// every ring, the outer ring first.
func NewPolygon(flat []float64, stride int, ends []int) *Polygon {
	return &Polygon{newFlatGeom(flat, stride), ends}
}

func (*Polygon) Type() Type    { return TypePolygon }
func (p *Polygon) Ends() []int { return p.ends }

// FlatInteriorPoint returns (x, y, length) for a point inside the
// polygon on the horizontal line through the center of its extent.
func (p *Polygon) FlatInteriorPoint() []float64 {
	if len(p.ends) == 0 {
		return []float64{math.NaN(), math.NaN(), math.Inf(-1)}
	}
	cx, cy := p.Extent().Center()
	x, y, length := InteriorPointOfRings(p.flat, 0, p.ends, p.stride, cx, cy)
	return []float64{x, y, length}
}

// MultiPolygon is a set of polygons sharing one flat buffer.
type MultiPolygon struct {
	flatGeom
	endss [][]int
}

// NewMultiPolygon returns a multi-polygon; endss holds the ring ends of
// every polygon.
func NewMultiPolygon(flat []float64, stride int, endss [][]int) *MultiPolygon {
	return &MultiPolygon{newFlatGeom(flat, stride), endss}
}

func (*MultiPolygon) Type() Type       { return TypeMultiPolygon }
func (m *MultiPolygon) Endss() [][]int { return m.endss }

// FlatInteriorPoints returns one (x, y, length) triple per polygon. Each
// scanline runs through the center of that polygon's outer ring extent.
func (m *MultiPolygon) FlatInteriorPoints() []float64 {
	out := make([]float64, 0, 3*len(m.endss))
	offset := 0
	for _, ends := range m.endss {
		if len(ends) == 0 {
			continue
		}
		cx, cy := ExtentOfFlat(m.flat, offset, ends[0], m.stride).Center()
		x, y, length := InteriorPointOfRings(m.flat, offset, ends, m.stride, cx, cy)
		out = append(out, x, y, length)
		offset = ends[len(ends)-1]
	}
	return out
}

// Circle is stored as its center followed by a point on the circle.
type Circle struct{ flatGeom }

// NewCircle returns a circle around (x, y).
func NewCircle(x, y, radius float64) *Circle {
	return &Circle{newFlatGeom([]float64{x, y, x + radius, y}, 2)}
}

func (*Circle) Type() Type { return TypeCircle }

// Center returns the XY center.
func (c *Circle) Center() []float64 { return c.flat[:2:2] }

// Radius returns the radius.
func (c *Circle) Radius() float64 {
	return math.Hypot(c.flat[c.stride]-c.flat[0], c.flat[c.stride+1]-c.flat[1])
}

// Extent returns the bounding box of the whole disc.
func (c *Circle) Extent() Extent {
	r := c.Radius()
	return Extent{c.flat[0] - r, c.flat[1] - r, c.flat[0] + r, c.flat[1] + r}
}

func lengthOfFlat(flat []float64, offset, end, stride int) float64 {
	var length float64
	for i := offset + stride; i < end; i += stride {
		length += math.Hypot(flat[i]-flat[i-stride], flat[i+1]-flat[i-stride+1])
	}
	return length
}

var (
	_ Geometry         = (*Point)(nil)
	_ Geometry         = (*MultiPoint)(nil)
	_ Midpointer       = (*LineString)(nil)
	_ Midpointser      = (*MultiLineString)(nil)
	_ Ender            = (*MultiLineString)(nil)
	_ InteriorPointer  = (*Polygon)(nil)
	_ Ender            = (*Polygon)(nil)
	_ InteriorPointser = (*MultiPolygon)(nil)
	_ Enderer          = (*MultiPolygon)(nil)
	_ Centerer         = (*Circle)(nil)
	_ Geometry         = (*Circle)(nil)
)
