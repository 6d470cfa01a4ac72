package text

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/replay/surface"
)

// Face is a Source at a fixed size in CSS pixels.
//
// Face is safe for concurrent use.
type Face struct {
	src     *Source
	size    float64
	metrics Metrics

	mu    sync.Mutex
	xface font.Face
	buf   sfnt.Buffer
}

// NewFace creates a face of src at size pixels.
func NewFace(src *Source, size float64) (*Face, error) {
	xf, err := opentype.NewFace(src.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("text: create face: %w", err)
	}
	m := xf.Metrics()
	ascent, descent := fixedToFloat64(m.Ascent), fixedToFloat64(m.Descent)
	return &Face{
		src:  src,
		size: size,
		metrics: Metrics{
			Ascent:  ascent,
			Descent: descent,
			LineGap: max(0, fixedToFloat64(m.Height)-ascent-descent),
		},
		xface: xf,
	}, nil
}

// Source returns the font the face was created from.
func (f *Face) Source() *Source { return f.src }

// Size returns the face size in CSS pixels.
func (f *Face) Size() float64 { return f.size }

// Metrics returns the face metrics.
func (f *Face) Metrics() Metrics { return f.metrics }

// Extents returns the ascent and descent.
func (f *Face) Extents() (ascent, descent float64) {
	return f.metrics.Ascent, f.metrics.Descent
}

// Advance returns the advance width of s, kerning included.
func (f *Face) Advance(s string) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fixedToFloat64(font.MeasureString(f.xface, s))
}

// AppendOutline adds the glyph outlines of s to p with the pen starting
// at (x, y) on the baseline. Glyphs are placed with the same advances and
// kerning as Advance.
func (f *Face) AppendOutline(p *surface.Path, s string, x, y float64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	upem := f.src.font.UnitsPerEm()
	scale := f.size / float64(upem)
	ppem := fixed.I(int(upem))

	pen := fixed.Int26_6(0)
	prev := rune(-1)
	for _, r := range s {
		if prev >= 0 {
			pen += f.xface.Kern(prev, r)
		}
		adv, ok := f.xface.GlyphAdvance(r)
		if !ok {
			continue
		}
		gid, err := f.src.font.GlyphIndex(&f.buf, r)
		if err == nil {
			segs, err := f.src.font.LoadGlyph(&f.buf, gid, ppem, nil)
			if err == nil {
				appendSegments(p, segs, x+fixedToFloat64(pen), y, scale)
			}
		}
		pen += adv
		prev = r
	}
}

// appendSegments adds font-unit segments to p, scaled and offset to the
// pen position. sfnt segments already have +Y pointing down.
func appendSegments(p *surface.Path, segs sfnt.Segments, x, y, scale float64) {
	pt := func(v fixed.Point26_6) (float64, float64) {
		return x + fixedToFloat64(v.X)*scale, y + fixedToFloat64(v.Y)*scale
	}
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			p.Close()
			p.MoveTo(pt(seg.Args[0]))
		case sfnt.SegmentOpLineTo:
			p.LineTo(pt(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			cx, cy := pt(seg.Args[0])
			ex, ey := pt(seg.Args[1])
			p.QuadTo(cx, cy, ex, ey)
		case sfnt.SegmentOpCubeTo:
			c1x, c1y := pt(seg.Args[0])
			c2x, c2y := pt(seg.Args[1])
			ex, ey := pt(seg.Args[2])
			p.CubicTo(c1x, c1y, c2x, c2y, ex, ey)
		}
	}
	p.Close()
}

func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64
}

var _ surface.Face = (*Face)(nil)
