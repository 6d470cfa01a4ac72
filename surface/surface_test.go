// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

// boxFace draws every rune as an 8x10 box on a 10px advance.
type boxFace struct{}

func (boxFace) Advance(s string) float64    { return 10 * float64(len([]rune(s))) }
func (boxFace) Extents() (float64, float64) { return 8, 2 }
func (boxFace) AppendOutline(p *Path, s string, x, y float64) {
	for i := range []rune(s) {
		p.Rectangle(x+10*float64(i), y-8, 8, 10)
	}
}

func alphaAt(img *image.RGBA, x, y int) uint8 {
	return img.RGBAAt(x, y).A
}

func TestNewImageSurface(t *testing.T) {
	s := NewImageSurface(100, 50)
	defer s.Close()

	if s.Width() != 100 || s.Height() != 50 {
		t.Errorf("size = %dx%d, want 100x50", s.Width(), s.Height())
	}

	empty := NewImageSurface(-1, 0)
	if empty.Width() != 0 || empty.Height() != 0 {
		t.Errorf("size = %dx%d, want 0x0", empty.Width(), empty.Height())
	}
	// Drawing on an empty surface must not panic.
	p := NewPath()
	p.Rectangle(0, 0, 5, 5)
	empty.Fill(p)
}

func TestImageSurfaceClear(t *testing.T) {
	s := NewImageSurface(10, 10)
	s.Clear(color.RGBA{255, 0, 0, 255})

	if c := s.Image().RGBAAt(5, 5); c != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("pixel = %v, want opaque red", c)
	}
}

func TestImageSurfaceFill(t *testing.T) {
	s := NewImageSurface(10, 10)
	p := NewPath()
	p.Rectangle(2, 2, 6, 6)
	s.Fill(p)

	img := s.Image()
	if a := alphaAt(img, 5, 5); a != 255 {
		t.Errorf("alpha inside = %d, want 255", a)
	}
	if a := alphaAt(img, 0, 0); a != 0 {
		t.Errorf("alpha outside = %d, want 0", a)
	}
}

func TestImageSurfaceScale(t *testing.T) {
	s := NewImageSurface(10, 10)
	s.Scale(2, 2)
	s.SetFillStyle(image.NewUniform(color.RGBA{0, 0, 255, 255}))

	p := NewPath()
	p.Rectangle(0, 0, 2, 2)
	s.Fill(p)

	img := s.Image()
	if c := img.RGBAAt(3, 3); c != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("pixel (3,3) = %v, want opaque blue", c)
	}
	if a := alphaAt(img, 5, 5); a != 0 {
		t.Errorf("alpha at (5,5) = %d, want 0", a)
	}
}

func TestImageSurfaceStroke(t *testing.T) {
	s := NewImageSurface(10, 10)
	s.SetLineStyle(LineStyle{Width: 2, Cap: LineCapButt, Join: LineJoinMiter, MiterLimit: 10})

	p := NewPath()
	p.MoveTo(1, 5)
	p.LineTo(9, 5)
	s.Stroke(p)

	img := s.Image()
	for _, y := range []int{4, 5} {
		if a := alphaAt(img, 5, y); a != 255 {
			t.Errorf("alpha at (5,%d) = %d, want 255", y, a)
		}
	}
	if a := alphaAt(img, 5, 8); a != 0 {
		t.Errorf("alpha at (5,8) = %d, want 0", a)
	}
	if a := alphaAt(img, 0, 5); a != 0 {
		t.Errorf("butt cap leaked: alpha at (0,5) = %d, want 0", a)
	}
}

func TestImageSurfaceStrokeDash(t *testing.T) {
	s := NewImageSurface(10, 10)
	s.SetLineStyle(LineStyle{Width: 2, Cap: LineCapButt})
	s.SetLineDash([]float64{2, 2}, 0)

	p := NewPath()
	p.MoveTo(0, 5)
	p.LineTo(10, 5)
	s.Stroke(p)

	img := s.Image()
	if a := alphaAt(img, 1, 4); a != 255 {
		t.Errorf("alpha in dash = %d, want 255", a)
	}
	if a := alphaAt(img, 3, 4); a != 0 {
		t.Errorf("alpha in gap = %d, want 0", a)
	}
}

func TestImageSurfaceLineDashRejectsNegative(t *testing.T) {
	s := NewImageSurface(1, 1)
	s.SetLineDash([]float64{2, 2}, 1)
	s.SetLineDash([]float64{2, -1}, 0)
	if len(s.dash) != 2 || s.dashOffset != 1 {
		t.Errorf("dash = %v offset %v, want previous pattern kept", s.dash, s.dashOffset)
	}
}

func TestImageSurfaceFillText(t *testing.T) {
	s := NewImageSurface(20, 10)
	s.SetFont(boxFace{})
	s.SetTextAlign(TextAlignCenter)
	s.SetTextBaseline(TextBaselineTop)
	s.FillText("ab", 10, 0)

	img := s.Image()
	tests := []struct {
		x, y int
		want uint8
	}{
		{5, 5, 255},
		{15, 5, 255},
		{9, 5, 0},
		{19, 5, 0},
	}
	for _, tt := range tests {
		if a := alphaAt(img, tt.x, tt.y); a != tt.want {
			t.Errorf("alpha at (%d,%d) = %d, want %d", tt.x, tt.y, a, tt.want)
		}
	}
}

func TestImageSurfaceTextWithoutFont(t *testing.T) {
	s := NewImageSurface(10, 10)
	s.FillText("a", 5, 5)
	s.StrokeText("a", 5, 5)
	for _, v := range s.Image().Pix {
		if v != 0 {
			t.Fatal("text drawn without a font")
		}
	}
}

func TestImageSurfaceClosed(t *testing.T) {
	s := NewImageSurface(10, 10)
	if err := s.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("second Close() = %v", err)
	}
	p := NewPath()
	p.Rectangle(0, 0, 10, 10)
	s.Fill(p)
	if a := alphaAt(s.Image(), 5, 5); a != 0 {
		t.Errorf("drawing after Close changed pixels")
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	s := NewImageSurface(4, 4)
	snap := s.Snapshot()
	s.Clear(color.White)
	if snap.RGBAAt(0, 0).A != 0 {
		t.Error("Snapshot shares pixels with the surface")
	}
}

func TestPathPolylines(t *testing.T) {
	p := NewPath()
	p.Rectangle(0, 0, 10, 5)
	p.MoveTo(20, 20) // lone MoveTo draws nothing
	lines := p.Polylines(0.1)
	if len(lines) != 1 {
		t.Fatalf("len(lines) = %d, want 1", len(lines))
	}
	if !lines[0].Closed || len(lines[0].Points) != 4 {
		t.Errorf("rectangle = %+v, want 4 closed points", lines[0])
	}

	c := NewPath()
	c.Circle(0, 0, 10)
	circle := c.Polylines(0.1)
	if len(circle) != 1 || len(circle[0].Points) < 16 {
		t.Errorf("circle flattened to %v", circle)
	}
}

func TestPathBounds(t *testing.T) {
	p := NewPath()
	if x0, y0, x1, y1 := p.Bounds(); x0 != 0 || y0 != 0 || x1 != 0 || y1 != 0 {
		t.Errorf("empty Bounds() = %v %v %v %v, want zeros", x0, y0, x1, y1)
	}
	p.MoveTo(-1, 2)
	p.LineTo(3, -4)
	x0, y0, x1, y1 := p.Bounds()
	if x0 != -1 || y0 != -4 || x1 != 3 || y1 != 2 {
		t.Errorf("Bounds() = %v %v %v %v, want -1 -4 3 2", x0, y0, x1, y1)
	}
	if cp := p.CurrentPoint(); cp != (Point{3, -4}) {
		t.Errorf("CurrentPoint() = %v, want (3,-4)", cp)
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	if _, err := r.New("image", 1, 1); !errors.Is(err, ErrUnknownSurface) {
		t.Errorf("New on empty registry = %v, want ErrUnknownSurface", err)
	}

	r.Register("image", ImageFactory)
	r.Register("alt", ImageFactory)
	if got := r.List(); len(got) != 2 || got[0] != "alt" || got[1] != "image" {
		t.Errorf("List() = %v, want [alt image]", got)
	}

	s, err := r.New("image", 3, 2)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if s.Width() != 3 || s.Height() != 2 {
		t.Errorf("size = %dx%d, want 3x2", s.Width(), s.Height())
	}

	r.Unregister("alt")
	if _, ok := r.Lookup("alt"); ok {
		t.Error("alt still registered after Unregister")
	}
}

func TestImageFactoryInvalidSize(t *testing.T) {
	if _, err := ImageFactory(-1, 4); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("ImageFactory(-1, 4) error = %v, want ErrInvalidSize", err)
	}
	s, err := ImageFactory(0, 4)
	if err != nil || s.Width() != 0 {
		t.Errorf("ImageFactory(0, 4) = %v, %v; want empty surface", s, err)
	}
}

func TestRegisterNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Register(nil) did not panic")
		}
	}()
	NewRegistry().Register("x", nil)
}

func TestGlobalDefault(t *testing.T) {
	if _, ok := Lookup(DefaultName); !ok {
		t.Fatalf("%q factory not registered by default", DefaultName)
	}
	s, err := New(DefaultName, 2, 2)
	if err != nil {
		t.Fatalf("New(%q) error = %v", DefaultName, err)
	}
	if _, ok := s.(*ImageSurface); !ok {
		t.Errorf("default surface is %T, want *ImageSurface", s)
	}
	if Default() == nil {
		t.Error("Default() returned nil")
	}
}
