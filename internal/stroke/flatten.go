package stroke

import "math"

// FlattenQuad appends the points approximating the quadratic Bezier
// p0-p1-p2 to dst, excluding p0.
func FlattenQuad(dst []Point, p0, p1, p2 Point, tolerance float64) []Point {
	if distanceToLine(p1, p0, p2) < tolerance {
		return append(dst, p2)
	}
	q0 := p0.lerp(p1, 0.5)
	q1 := p1.lerp(p2, 0.5)
	q2 := q0.lerp(q1, 0.5)
	dst = FlattenQuad(dst, p0, q0, q2, tolerance)
	return FlattenQuad(dst, q2, q1, p2, tolerance)
}

// FlattenCubic appends the points approximating the cubic Bezier
// p0-p1-p2-p3 to dst, excluding p0.
func FlattenCubic(dst []Point, p0, p1, p2, p3 Point, tolerance float64) []Point {
	if math.Max(distanceToLine(p1, p0, p3), distanceToLine(p2, p0, p3)) < tolerance {
		return append(dst, p3)
	}
	// de Casteljau subdivision at t = 0.5.
	q0 := p0.lerp(p1, 0.5)
	q1 := p1.lerp(p2, 0.5)
	q2 := p2.lerp(p3, 0.5)
	r0 := q0.lerp(q1, 0.5)
	r1 := q1.lerp(q2, 0.5)
	s := r0.lerp(r1, 0.5)
	dst = FlattenCubic(dst, p0, q0, r0, s, tolerance)
	return FlattenCubic(dst, s, r1, q2, p3, tolerance)
}

// distanceToLine returns the distance from p to the segment a-b.
func distanceToLine(p, a, b Point) float64 {
	ab := b.sub(a)
	abLen := ab.length()
	if abLen < 1e-10 {
		return p.sub(a).length()
	}
	t := p.sub(a).dot(ab) / (abLen * abLen)
	switch {
	case t < 0:
		return p.sub(a).length()
	case t > 1:
		return p.sub(b).length()
	}
	return p.sub(a.add(ab.scale(t))).length()
}
