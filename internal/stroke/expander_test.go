package stroke

import (
	"math"
	"testing"
)

func totalArea(polys []Polygon) float64 {
	var a float64
	for _, p := range polys {
		a += signedArea(p)
	}
	return a
}

func TestExpandSimpleLineButt(t *testing.T) {
	lines := []Polyline{{Points: []Point{{0, 0}, {10, 0}}}}
	polys := Expand(lines, Style{Width: 2, Cap: CapButt, Join: JoinMiter, MiterLimit: 4}, 0.1)

	if len(polys) != 1 {
		t.Fatalf("len(polys) = %d, want 1", len(polys))
	}
	if a := totalArea(polys); math.Abs(a-20) > 1e-9 {
		t.Errorf("area = %v, want 20", a)
	}
}

func TestExpandPositiveOrientation(t *testing.T) {
	lines := []Polyline{
		{Points: []Point{{0, 0}, {10, 0}, {10, 10}}},
		{Points: []Point{{10, 10}, {10, 0}, {0, 0}}},
	}
	for _, p := range Expand(lines, Style{Width: 3, Cap: CapSquare, Join: JoinBevel}, 0.1) {
		if signedArea(p) <= 0 {
			t.Errorf("polygon %v has non-positive area", p)
		}
	}
}

func TestExpandCaps(t *testing.T) {
	line := []Polyline{{Points: []Point{{0, 0}, {10, 0}}}}
	tests := []struct {
		name string
		cap  Cap
		want int
	}{
		{"butt", CapButt, 1},
		{"square", CapSquare, 3},
		{"round", CapRound, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			polys := Expand(line, Style{Width: 2, Cap: tt.cap}, 0.1)
			if len(polys) != tt.want {
				t.Errorf("len(polys) = %d, want %d", len(polys), tt.want)
			}
		})
	}
}

func TestExpandMiterLimitFallsBackToBevel(t *testing.T) {
	// A very sharp corner: miter ratio far above 4.
	sharp := []Polyline{{Points: []Point{{0, 0}, {10, 0}, {0, 0.5}}}}
	miter := Expand(sharp, Style{Width: 2, Join: JoinMiter, MiterLimit: 4}, 0.1)
	bevel := Expand(sharp, Style{Width: 2, Join: JoinBevel}, 0.1)
	if len(miter) != len(bevel) {
		t.Fatalf("len = %d, want %d", len(miter), len(bevel))
	}
	for i := range miter {
		if len(miter[i]) != len(bevel[i]) {
			t.Errorf("polygon %d has %d points, want %d (bevel)", i, len(miter[i]), len(bevel[i]))
		}
	}

	// A right angle stays mitered (ratio sqrt(2) < 4).
	right := []Polyline{{Points: []Point{{0, 0}, {10, 0}, {10, 10}}}}
	polys := Expand(right, Style{Width: 2, Join: JoinMiter, MiterLimit: 4}, 0.1)
	join := polys[len(polys)-1]
	if len(join) != 4 {
		t.Fatalf("join has %d points, want 4", len(join))
	}
	found := false
	for _, p := range join {
		if math.Abs(p.X-11) < 1e-9 && math.Abs(p.Y+1) < 1e-9 {
			found = true
		}
	}
	if !found {
		t.Errorf("miter point (11,-1) missing from %v", join)
	}
}

func TestExpandClosedPolylineJoinsEveryVertex(t *testing.T) {
	square := []Polyline{{Points: []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}, Closed: true}}
	polys := Expand(square, Style{Width: 2, Cap: CapRound, Join: JoinBevel}, 0.1)
	// 4 segments + 4 joins, no caps.
	if len(polys) != 8 {
		t.Errorf("len(polys) = %d, want 8", len(polys))
	}
}

func TestExpandSinglePoint(t *testing.T) {
	dot := []Polyline{{Points: []Point{{5, 5}, {5, 5}}}}
	if got := Expand(dot, Style{Width: 2, Cap: CapButt}, 0.1); len(got) != 0 {
		t.Errorf("butt dot produced %d polygons, want 0", len(got))
	}
	if got := Expand(dot, Style{Width: 2, Cap: CapRound}, 0.1); len(got) != 1 {
		t.Errorf("round dot produced %d polygons, want 1", len(got))
	}
}

func TestExpandZeroWidth(t *testing.T) {
	if got := Expand([]Polyline{{Points: []Point{{0, 0}, {1, 1}}}}, Style{}, 0.1); got != nil {
		t.Errorf("Expand with zero width = %v, want nil", got)
	}
}

func TestDash(t *testing.T) {
	line := []Polyline{{Points: []Point{{0, 0}, {10, 0}}}}

	got := Dash(line, []float64{2, 3}, 0)
	// dashes at [0,2], [5,7]
	if len(got) != 2 {
		t.Fatalf("len(dashes) = %d, want 2", len(got))
	}
	want := [][2]float64{{0, 2}, {5, 7}}
	for i, d := range got {
		first, last := d.Points[0], d.Points[len(d.Points)-1]
		if math.Abs(first.X-want[i][0]) > 1e-9 || math.Abs(last.X-want[i][1]) > 1e-9 {
			t.Errorf("dash %d = [%v,%v], want %v", i, first.X, last.X, want[i])
		}
	}
}

func TestDashOffsetAndOddPattern(t *testing.T) {
	line := []Polyline{{Points: []Point{{0, 0}, {10, 0}}}}

	// [4] behaves like [4,4]; offset 2 starts halfway into the first dash.
	got := Dash(line, []float64{4}, 2)
	if len(got) != 2 {
		t.Fatalf("len(dashes) = %d, want 2", len(got))
	}
	if x := got[0].Points[len(got[0].Points)-1].X; math.Abs(x-2) > 1e-9 {
		t.Errorf("first dash ends at %v, want 2", x)
	}
	if x := got[1].Points[0].X; math.Abs(x-6) > 1e-9 {
		t.Errorf("second dash starts at %v, want 6", x)
	}

	// Negative offsets wrap around the pattern.
	neg := Dash(line, []float64{4}, -6)
	if len(neg) != len(got) {
		t.Errorf("offset -6 produced %d dashes, want %d", len(neg), len(got))
	}
}

func TestDashSpansCorners(t *testing.T) {
	corner := []Polyline{{Points: []Point{{0, 0}, {3, 0}, {3, 3}}}}
	got := Dash(corner, []float64{5, 1}, 0)
	if len(got) == 0 || len(got[0].Points) != 3 {
		t.Fatalf("first dash = %v, want 3 points around the corner", got)
	}
	if p := got[0].Points[2]; math.Abs(p.X-3) > 1e-9 || math.Abs(p.Y-2) > 1e-9 {
		t.Errorf("first dash ends at %v, want (3,2)", p)
	}
}

func TestDashWithoutPattern(t *testing.T) {
	line := []Polyline{{Points: []Point{{0, 0}, {10, 0}}}}
	if got := Dash(line, nil, 0); len(got) != 1 {
		t.Errorf("Dash(nil) = %v, want input unchanged", got)
	}
	if got := Dash(line, []float64{0, 0}, 0); len(got) != 1 {
		t.Errorf("Dash(zeros) = %v, want input unchanged", got)
	}
}

func TestFlattenCurves(t *testing.T) {
	quad := FlattenQuad(nil, Point{0, 0}, Point{5, 10}, Point{10, 0}, 0.1)
	if len(quad) < 4 {
		t.Errorf("FlattenQuad produced %d points, want several", len(quad))
	}
	if end := quad[len(quad)-1]; end != (Point{10, 0}) {
		t.Errorf("FlattenQuad ends at %v, want (10,0)", end)
	}

	straight := FlattenCubic(nil, Point{0, 0}, Point{1, 0}, Point{2, 0}, Point{3, 0}, 0.1)
	if len(straight) != 1 {
		t.Errorf("FlattenCubic of a straight cubic produced %d points, want 1", len(straight))
	}
}
