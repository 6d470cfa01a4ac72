package geom

import (
	"math"
	"sort"
)

// InterpolateFlat returns the XY point at fraction (0..1) of the arc
// length of the line in flat[offset:end]. A single point returns itself;
// an empty line returns NaNs.
func InterpolateFlat(flat []float64, offset, end, stride int, fraction float64) (x, y float64) {
	n := (end - offset) / stride
	switch n {
	case 0:
		return math.NaN(), math.NaN()
	case 1:
		return flat[offset], flat[offset+1]
	case 2:
		return (1-fraction)*flat[offset] + fraction*flat[offset+stride],
			(1-fraction)*flat[offset+1] + fraction*flat[offset+stride+1]
	}

	cumulative := make([]float64, 1, n)
	length := 0.0
	for i := offset + stride; i < end; i += stride {
		length += math.Hypot(flat[i]-flat[i-stride], flat[i+1]-flat[i-stride+1])
		cumulative = append(cumulative, length)
	}
	target := fraction * length
	idx := sort.SearchFloat64s(cumulative, target)
	if idx < len(cumulative) && cumulative[idx] == target {
		o := offset + idx*stride
		return flat[o], flat[o+1]
	}
	if idx == 0 {
		return flat[offset], flat[offset+1]
	}
	if idx == len(cumulative) {
		o := end - stride
		return flat[o], flat[o+1]
	}
	t := (target - cumulative[idx-1]) / (cumulative[idx] - cumulative[idx-1])
	o := offset + (idx-1)*stride
	return lerp(flat[o], flat[o+stride], t), lerp(flat[o+1], flat[o+stride+1], t)
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }

// RingContainsXY reports whether (x, y) lies inside the ring in
// flat[offset:end] by the non-zero winding rule. The ring may be open or
// closed. An empty ring contains nothing.
func RingContainsXY(flat []float64, offset, end, stride int, x, y float64) bool {
	if end-offset < stride {
		return false
	}
	wn := 0
	x1, y1 := flat[end-stride], flat[end-stride+1]
	for ; offset < end; offset += stride {
		x2, y2 := flat[offset], flat[offset+1]
		side := (x2-x1)*(y-y1) - (x-x1)*(y2-y1)
		if y1 <= y {
			if y2 > y && side > 0 {
				wn++
			}
		} else if y2 <= y && side < 0 {
			wn--
		}
		x1, y1 = x2, y2
	}
	return wn != 0
}

// RingsContainXY reports whether (x, y) is inside the first ring and
// outside every following ring (the holes).
func RingsContainXY(flat []float64, offset int, ends []int, stride int, x, y float64) bool {
	if len(ends) == 0 || !RingContainsXY(flat, offset, ends[0], stride, x, y) {
		return false
	}
	for i := 1; i < len(ends); i++ {
		if RingContainsXY(flat, ends[i-1], ends[i], stride, x, y) {
			return false
		}
	}
	return true
}

// InteriorPointOfRings finds a label point for the polygon with the given
// rings. It intersects the horizontal line at centerY with every ring
// edge and picks the midpoint of the longest gap between consecutive
// crossings that is inside the polygon. It returns (x, centerY, length);
// when no gap qualifies x is centerX and length is -Inf. Empty rings are
// skipped.
func InteriorPointOfRings(flat []float64, offset int, ends []int, stride int, centerX, centerY float64) (x, y, length float64) {
	y = centerY
	var crossings []float64
	start := offset
	for _, end := range ends {
		if end-start < stride {
			start = end
			continue
		}
		x1, y1 := flat[end-stride], flat[end-stride+1]
		for i := start; i < end; i += stride {
			x2, y2 := flat[i], flat[i+1]
			if y1 != y2 && ((y <= y1 && y2 <= y) || (y1 <= y && y <= y2)) {
				crossings = append(crossings, (y-y1)/(y2-y1)*(x2-x1)+x1)
			}
			x1, y1 = x2, y2
		}
		start = end
	}
	sort.Float64s(crossings)

	x = math.NaN()
	length = math.Inf(-1)
	for i := 1; i < len(crossings); i++ {
		seg := math.Abs(crossings[i] - crossings[i-1])
		if seg <= length {
			continue
		}
		mid := (crossings[i-1] + crossings[i]) / 2
		if RingsContainXY(flat, offset, ends, stride, mid, y) {
			x = mid
			length = seg
		}
	}
	if math.IsNaN(x) {
		x = centerX
	}
	return x, y, length
}
