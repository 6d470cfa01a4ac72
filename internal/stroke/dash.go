package stroke

import "math"

// Dash splits polylines into the "on" intervals of a dash pattern.
// The pattern alternates dash and gap lengths; an odd-length pattern is
// repeated once to make it even. offset shifts the start of the pattern
// along each polyline. A pattern with no positive length returns lines
// unchanged.
func Dash(lines []Polyline, pattern []float64, offset float64) []Polyline {
	array := effectiveArray(pattern)
	if array == nil {
		return lines
	}
	var total float64
	for _, l := range array {
		total += l
	}

	var out []Polyline
	for _, line := range lines {
		pts := line.Points
		if line.Closed && len(pts) > 1 {
			pts = append(append([]Point(nil), pts...), pts[0])
		}
		out = dashPolyline(out, pts, array, normalizeOffset(offset, total))
	}
	return out
}

func dashPolyline(out []Polyline, pts []Point, array []float64, offset float64) []Polyline {
	if len(pts) < 2 {
		return out
	}

	// Find the dash index and the distance left in it at the start.
	idx := 0
	for offset >= array[idx] {
		offset -= array[idx]
		idx = (idx + 1) % len(array)
	}
	remaining := array[idx] - offset
	on := idx%2 == 0

	var current []Point
	if on {
		current = []Point{pts[0]}
	}
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		segLen := b.sub(a).length()
		pos := 0.0
		for segLen-pos > remaining {
			pos += remaining
			p := a.lerp(b, pos/segLen)
			if on {
				current = append(current, p)
				out = append(out, Polyline{Points: current})
				current = nil
			} else {
				current = []Point{p}
			}
			on = !on
			idx = (idx + 1) % len(array)
			remaining = array[idx]
		}
		remaining -= segLen - pos
		if on {
			current = append(current, b)
		}
	}
	if on && len(current) > 1 {
		out = append(out, Polyline{Points: current})
	}
	return out
}

// effectiveArray returns the pattern with odd lengths duplicated, or nil
// when the pattern cannot produce a dash.
func effectiveArray(pattern []float64) []float64 {
	if len(pattern) == 0 {
		return nil
	}
	positive := false
	array := make([]float64, 0, 2*len(pattern))
	for _, l := range pattern {
		l = math.Abs(l)
		if l > 0 {
			positive = true
		}
		array = append(array, l)
	}
	if !positive {
		return nil
	}
	if len(array)%2 != 0 {
		array = append(array, array...)
	}
	return array
}

func normalizeOffset(offset, total float64) float64 {
	if total <= 0 {
		return 0
	}
	offset = math.Mod(offset, total)
	if offset < 0 {
		offset += total
	}
	return offset
}
