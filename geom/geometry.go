package geom

import "fmt"

// Type is the geometry type tag.
type Type uint8

const (
	TypePoint Type = iota
	TypeMultiPoint
	TypeLineString
	TypeMultiLineString
	TypePolygon
	TypeMultiPolygon
	TypeCircle
	TypeLinearRing
	TypeGeometryCollection
)

var typeNames = [...]string{
	"Point", "MultiPoint", "LineString", "MultiLineString",
	"Polygon", "MultiPolygon", "Circle", "LinearRing", "GeometryCollection",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", t)
}

// Geometry is the minimum a labelled geometry provides.
type Geometry interface {
	Type() Type
	FlatCoordinates() []float64
	Stride() int
	Extent() Extent
}

// Ender is implemented by geometries made of several rings or lines. Each
// end is the exclusive offset of a part in FlatCoordinates.
type Ender interface {
	Ends() []int
}

// Enderer is implemented by multi-polygons: one ends slice per polygon.
type Enderer interface {
	Endss() [][]int
}

// Midpointer is implemented by line strings. FlatMidpoint returns the XY
// point halfway along the line.
type Midpointer interface {
	FlatMidpoint() []float64
}

// Midpointser is implemented by multi-line strings: the XY midpoint of
// every line, flattened.
type Midpointser interface {
	FlatMidpoints() []float64
}

// Centerer is implemented by circles.
type Centerer interface {
	Center() []float64
}

// InteriorPointer is implemented by polygons. FlatInteriorPoint returns
// (x, y, length): a point inside the polygon and the length of the
// horizontal segment through it that lies inside.
type InteriorPointer interface {
	FlatInteriorPoint() []float64
}

// InteriorPointser is implemented by multi-polygons: one
// (x, y, length) triple per polygon, flattened.
type InteriorPointser interface {
	FlatInteriorPoints() []float64
}
