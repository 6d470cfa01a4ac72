package geom

import "math"

// Extent is a bounding box: minX, minY, maxX, maxY.
type Extent [4]float64

// EmptyExtent returns an extent that contains nothing and grows to fit
// the first point extended into it.
func EmptyExtent() Extent {
	return Extent{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
}

// ExtentOfFlat returns the extent of the points in flat[offset:end].
func ExtentOfFlat(flat []float64, offset, end, stride int) Extent {
	e := EmptyExtent()
	for i := offset; i < end; i += stride {
		e = e.ExtendXY(flat[i], flat[i+1])
	}
	return e
}

// IsEmpty reports whether e contains no point.
func (e Extent) IsEmpty() bool {
	return e[2] < e[0] || e[3] < e[1]
}

// ExtendXY returns e grown to contain (x, y).
func (e Extent) ExtendXY(x, y float64) Extent {
	return Extent{math.Min(e[0], x), math.Min(e[1], y), math.Max(e[2], x), math.Max(e[3], y)}
}

// Intersects reports whether e and o overlap; touching edges count.
func (e Extent) Intersects(o Extent) bool {
	return e[0] <= o[2] && e[2] >= o[0] && e[1] <= o[3] && e[3] >= o[1]
}

// Buffer returns e grown by d on every side.
func (e Extent) Buffer(d float64) Extent {
	return Extent{e[0] - d, e[1] - d, e[2] + d, e[3] + d}
}

// Center returns the center of e.
func (e Extent) Center() (x, y float64) {
	return (e[0] + e[2]) / 2, (e[1] + e[3]) / 2
}

// Width returns the horizontal size of e.
func (e Extent) Width() float64 { return e[2] - e[0] }

// Height returns the vertical size of e.
func (e Extent) Height() float64 { return e[3] - e[1] }

// Relationship describes where a point lies relative to an extent.
type Relationship uint8

// Relationship flags. A point outside can be both Left and Above.
const (
	Intersecting Relationship = 1 << iota
	Above
	Right
	Below
	Left
)

// Relationship returns where (x, y) lies relative to e.
func (e Extent) Relationship(x, y float64) Relationship {
	var r Relationship
	if x < e[0] {
		r |= Left
	} else if x > e[2] {
		r |= Right
	}
	if y < e[1] {
		r |= Below
	} else if y > e[3] {
		r |= Above
	}
	if r == 0 {
		r = Intersecting
	}
	return r
}

// InfiniteExtent returns an extent containing every point.
func InfiniteExtent() Extent {
	return Extent{math.Inf(-1), math.Inf(-1), math.Inf(1), math.Inf(1)}
}
