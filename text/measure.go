package text

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// WidthMeasurer measures the advance width of a single line of text.
type WidthMeasurer interface {
	MeasureWidth(font, text string) float64
}

// LineHeighter reports the height of one line in a font.
type LineHeighter interface {
	LineHeight(font string) float64
}

// Measurer measures widths and line heights in CSS pixels.
type Measurer interface {
	WidthMeasurer
	LineHeighter
}

// FontChecker validates a font descriptor.
type FontChecker interface {
	CheckFont(font string) error
}

// FontCheckerFunc adapts a function to FontChecker.
type FontCheckerFunc func(font string) error

// CheckFont calls f(font).
func (f FontCheckerFunc) CheckFont(font string) error { return f(font) }

// MeasureTextWidths measures every line, appends the widths to widths in
// input order and returns the widest width with the extended slice.
func MeasureTextWidths(m WidthMeasurer, font string, lines []string, widths []float64) (float64, []float64) {
	var maxWidth float64
	for _, line := range lines {
		w := m.MeasureWidth(font, line)
		maxWidth = max(maxWidth, w)
		widths = append(widths, w)
	}
	return maxWidth, widths
}

// FaceMeasurer measures with the faces of a Library.
type FaceMeasurer struct {
	Library *Library
}

// NewFaceMeasurer returns a measurer over lib.
func NewFaceMeasurer(lib *Library) *FaceMeasurer {
	return &FaceMeasurer{Library: lib}
}

// MeasureWidth returns the kerned advance width of text.
func (m *FaceMeasurer) MeasureWidth(font, text string) float64 {
	return m.Library.FaceOrDefault(font).Advance(text)
}

// LineHeight returns the whole-pixel line height of font.
func (m *FaceMeasurer) LineHeight(font string) float64 {
	return m.Library.FaceOrDefault(font).Metrics().LineHeight()
}

// ShapingMeasurer measures widths by shaping text with HarfBuzz, which
// accounts for ligatures and contextual forms. Line heights come from the
// library faces.
//
// ShapingMeasurer is safe for concurrent use.
type ShapingMeasurer struct {
	FaceMeasurer

	mu    sync.Mutex
	fonts map[*Source]*gotext.Font

	shapers sync.Pool
}

// NewShapingMeasurer returns a shaping measurer over lib.
func NewShapingMeasurer(lib *Library) *ShapingMeasurer {
	return &ShapingMeasurer{
		FaceMeasurer: FaceMeasurer{Library: lib},
		fonts:        make(map[*Source]*gotext.Font),
		shapers: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
	}
}

// MeasureWidth returns the shaped advance of text. It falls back to the
// face advance if the font cannot be loaded for shaping.
func (m *ShapingMeasurer) MeasureWidth(font, text string) float64 {
	face := m.Library.FaceOrDefault(font)
	if text == "" {
		return 0
	}
	gf, err := m.goTextFont(face.Source())
	if err != nil {
		return face.Advance(text)
	}

	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      gotext.NewFace(gf),
		Size:      fixed.Int26_6(face.Size() * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	shaper := m.shapers.Get().(*shaping.HarfbuzzShaper)
	out := shaper.Shape(input)
	m.shapers.Put(shaper)

	return fixedToFloat64(out.Advance)
}

// goTextFont returns the go-text font for src, parsing it once.
func (m *ShapingMeasurer) goTextFont(src *Source) (*gotext.Font, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if f, ok := m.fonts[src]; ok {
		return f, nil
	}
	face, err := gotext.ParseTTF(bytes.NewReader(src.Data()))
	if err != nil {
		return nil, fmt.Errorf("text: parse font for shaping: %w", err)
	}
	m.fonts[src] = face.Font
	return face.Font, nil
}

// detectScript returns the script of the first non-space rune. Mixed
// script labels are shaped as a single run.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
