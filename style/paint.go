package style

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"golang.org/x/image/colornames"
)

// Paint is a fill or stroke source.
type Paint interface {
	// Fingerprint identifies the paint in label cache keys. Equal
	// fingerprints must render identically.
	Fingerprint() string

	// Source returns the image sampled when painting.
	Source() image.Image
}

// Color is a solid paint. Alpha is kept as a fraction so that CSS alpha
// values survive unquantized in the fingerprint.
type Color struct {
	R, G, B uint8
	A       float64
}

// Black is the default fill and stroke color.
var Black = Color{A: 1}

// NewColor converts c to a Color.
func NewColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: float64(n.A) / 255}
}

// Fingerprint returns the canonical rgba() form, so "black", "#000" and
// "rgb(0,0,0)" share a fingerprint.
func (c Color) Fingerprint() string {
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", c.R, c.G, c.B, strconv.FormatFloat(c.A, 'f', -1, 64))
}

// String returns the fingerprint.
func (c Color) String() string { return c.Fingerprint() }

// NRGBA returns the color with alpha quantized to 8 bits.
func (c Color) NRGBA() color.NRGBA {
	a := math.Round(math.Max(0, math.Min(1, c.A)) * 255)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(a)}
}

// Source returns a uniform image of the color.
func (c Color) Source() image.Image {
	return image.NewUniform(c.NRGBA())
}

var (
	colorLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `\s+`},
		{Name: "Hex", Pattern: `#[0-9A-Fa-f]+`},
		{Name: "Number", Pattern: `[-+]?(?:\d+\.\d*|\.\d+|\d+)`},
		{Name: "Ident", Pattern: `[A-Za-z]+`},
		{Name: "Punct", Pattern: `[(),/%]`},
	})

	colorParser = participle.MustBuild[colorExpr](
		participle.Lexer(colorLexer),
		participle.Elide("Whitespace"),
	)
)

type colorExpr struct {
	Hex  string     `parser:"  @Hex"`
	Func *colorFunc `parser:"| @@"`
	Name string     `parser:"| @Ident"`
}

type colorFunc struct {
	Name string      `parser:"@Ident '('"`
	Args []*colorArg `parser:"@@ ( ( ',' | '/' )? @@ )* ')'"`
}

type colorArg struct {
	Value   float64 `parser:"@Number"`
	Percent bool    `parser:"@'%'?"`
}

// ParseColor parses a CSS color: a hex form (#rgb, #rgba, #rrggbb,
// #rrggbbaa), rgb()/rgba(), a named color or "transparent".
func ParseColor(s string) (Color, error) {
	expr, err := colorParser.ParseString("", strings.TrimSpace(s))
	if err != nil {
		return Color{}, fmt.Errorf("style: invalid color %q: %w", s, err)
	}
	switch {
	case expr.Hex != "":
		return parseHex(expr.Hex)
	case expr.Func != nil:
		return expr.Func.color()
	}
	name := strings.ToLower(expr.Name)
	if name == "transparent" {
		return Color{}, nil
	}
	if c, ok := colornames.Map[name]; ok {
		return NewColor(c), nil
	}
	return Color{}, fmt.Errorf("style: unknown color name %q", expr.Name)
}

// MustParseColor is like ParseColor but panics on error.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseHex(h string) (Color, error) {
	digits := h[1:]
	switch len(digits) {
	case 3, 4:
		var expanded strings.Builder
		for _, d := range digits {
			expanded.WriteRune(d)
			expanded.WriteRune(d)
		}
		digits = expanded.String()
	case 6, 8:
	default:
		return Color{}, fmt.Errorf("style: invalid hex color %q", h)
	}
	if len(digits) == 6 {
		digits += "ff"
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("style: invalid hex color %q: %w", h, err)
	}
	return Color{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: float64(uint8(v)) / 255,
	}, nil
}

func (f *colorFunc) color() (Color, error) {
	name := strings.ToLower(f.Name)
	if name != "rgb" && name != "rgba" {
		return Color{}, fmt.Errorf("style: unsupported color function %q", f.Name)
	}
	if len(f.Args) != 3 && len(f.Args) != 4 {
		return Color{}, fmt.Errorf("style: %s() takes 3 or 4 arguments, got %d", name, len(f.Args))
	}
	channel := func(a *colorArg) uint8 {
		v := a.Value
		if a.Percent {
			v = v * 255 / 100
		}
		return uint8(math.Round(math.Max(0, math.Min(255, v))))
	}
	c := Color{R: channel(f.Args[0]), G: channel(f.Args[1]), B: channel(f.Args[2]), A: 1}
	if len(f.Args) == 4 {
		a := f.Args[3].Value
		if f.Args[3].Percent {
			a /= 100
		}
		c.A = math.Max(0, math.Min(1, a))
	}
	return c, nil
}

var patternIDs atomic.Uint64

// Pattern is an image paint repeated across the plane. Patterns are
// compared by reference: two patterns over the same image still have
// different fingerprints.
type Pattern struct {
	img image.Image
	id  uint64
}

// NewPattern creates a repeating paint from img.
func NewPattern(img image.Image) *Pattern {
	return &Pattern{img: img, id: patternIDs.Add(1)}
}

// Fingerprint returns the process-unique id of the pattern.
func (p *Pattern) Fingerprint() string {
	return strconv.FormatUint(p.id, 10)
}

// Image returns the pattern tile.
func (p *Pattern) Image() image.Image { return p.img }

// Source returns an unbounded image that repeats the tile.
func (p *Pattern) Source() image.Image {
	return tiled{src: p.img}
}

type tiled struct {
	src image.Image
}

func (t tiled) ColorModel() color.Model { return t.src.ColorModel() }

func (t tiled) Bounds() image.Rectangle {
	return image.Rect(-1<<30, -1<<30, 1<<30, 1<<30)
}

func (t tiled) At(x, y int) color.Color {
	b := t.src.Bounds()
	if b.Empty() {
		return color.Transparent
	}
	return t.src.At(b.Min.X+mod(x-b.Min.X, b.Dx()), b.Min.Y+mod(y-b.Min.Y, b.Dy()))
}

func mod(a, n int) int {
	a %= n
	if a < 0 {
		a += n
	}
	return a
}
