package style

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#000", Color{A: 1}},
		{"#fff", Color{255, 255, 255, 1}},
		{"#ff000080", Color{255, 0, 0, 128.0 / 255}},
		{"#0000ff", Color{0, 0, 255, 1}},
		{"#f008", Color{255, 0, 0, 136.0 / 255}},
		{"rgb(10, 20, 30)", Color{10, 20, 30, 1}},
		{"rgba(10,20,30,0.5)", Color{10, 20, 30, 0.5}},
		{"rgb(100% 0% 0% / 50%)", Color{255, 0, 0, 0.5}},
		{"RED", Color{255, 0, 0, 1}},
		{"transparent", Color{}},
		{"  navy ", Color{0, 0, 128, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, in := range []string{"", "#12", "#12345", "notacolor", "rgb(1,2)", "hsl(1,2,3)", "rgb(1,2,3"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q) succeeded, want error", in)
		}
	}
}

func TestColorFingerprintIsCanonical(t *testing.T) {
	want := MustParseColor("black").Fingerprint()
	for _, in := range []string{"#000", "#000000", "rgb(0,0,0)", "rgba(0, 0, 0, 1)"} {
		if got := MustParseColor(in).Fingerprint(); got != want {
			t.Errorf("Fingerprint(%q) = %q, want %q", in, got, want)
		}
	}
	if Black.Fingerprint() != "rgba(0,0,0,1)" {
		t.Errorf("Black.Fingerprint() = %q", Black.Fingerprint())
	}
	if MustParseColor("red").Fingerprint() == want {
		t.Error("red and black share a fingerprint")
	}
}

func TestNewColor(t *testing.T) {
	c := NewColor(color.RGBA{128, 0, 0, 128})
	if c.R != 255 || c.A != 128.0/255 {
		t.Errorf("NewColor(premultiplied) = %+v, want unpremultiplied red", c)
	}
	if got := c.NRGBA(); got != (color.NRGBA{255, 0, 0, 128}) {
		t.Errorf("NRGBA() = %v", got)
	}
}

func TestPatternIdentity(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	a, b := NewPattern(img), NewPattern(img)
	if a.Fingerprint() == b.Fingerprint() {
		t.Error("patterns over the same image share a fingerprint")
	}
	if a.Image() != img {
		t.Error("Image() does not return the tile")
	}
}

func TestPatternSourceRepeats(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.White)
	img.Set(1, 0, color.Black)
	src := NewPattern(img).Source()

	tests := []struct {
		x, y int
		want color.Color
	}{
		{0, 0, color.White},
		{2, 5, color.White},
		{3, 0, color.Black},
		{-1, -3, color.Black},
	}
	for _, tt := range tests {
		r, g, b, a := src.At(tt.x, tt.y).RGBA()
		wr, wg, wb, wa := tt.want.RGBA()
		if r != wr || g != wg || b != wb || a != wa {
			t.Errorf("At(%d,%d) = %v, want %v", tt.x, tt.y, src.At(tt.x, tt.y), tt.want)
		}
	}
}

func TestEnumsRoundTrip(t *testing.T) {
	for _, name := range textAlignNames {
		a, err := ParseTextAlign(name)
		if err != nil || a.String() != name {
			t.Errorf("ParseTextAlign(%q) = %v, %v", name, a, err)
		}
	}
	for _, name := range textBaselineNames {
		b, err := ParseTextBaseline(name)
		if err != nil || b.String() != name {
			t.Errorf("ParseTextBaseline(%q) = %v, %v", name, b, err)
		}
	}
	for _, name := range lineCapNames {
		c, err := ParseLineCap(name)
		if err != nil || c.String() != name {
			t.Errorf("ParseLineCap(%q) = %v, %v", name, c, err)
		}
	}
	for _, name := range lineJoinNames {
		j, err := ParseLineJoin(name)
		if err != nil || j.String() != name {
			t.Errorf("ParseLineJoin(%q) = %v, %v", name, j, err)
		}
	}
	if _, err := ParseTextAlign("middle"); err == nil {
		t.Error(`ParseTextAlign("middle") succeeded`)
	}
	if p, err := ParsePlacement("line"); err != nil || p != PlacementLine || p.String() != "line" {
		t.Errorf("ParsePlacement(line) = %v, %v", p, err)
	}
}

func TestFractions(t *testing.T) {
	aligns := map[TextAlign]float64{
		AlignUnset: 0.5, AlignLeft: 0, AlignStart: 0,
		AlignCenter: 0.5, AlignRight: 1, AlignEnd: 1,
	}
	for a, want := range aligns {
		if got := a.Fraction(); got != want {
			t.Errorf("%v.Fraction() = %v, want %v", a, got, want)
		}
	}
	baselines := map[TextBaseline]float64{
		BaselineTop: 0, BaselineHanging: 0, BaselineMiddle: 0.5,
		BaselineAlphabetic: 1, BaselineIdeographic: 1, BaselineBottom: 1,
	}
	for b, want := range baselines {
		if got := b.Fraction(); got != want {
			t.Errorf("%v.Fraction() = %v, want %v", b, got, want)
		}
	}
	if DefaultMaxAngle != math.Pi/4 {
		t.Errorf("DefaultMaxAngle = %v", DefaultMaxAngle)
	}
}
