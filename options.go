package replay

import (
	"github.com/gogpu/replay/label"
	"github.com/gogpu/replay/surface"
	"github.com/gogpu/replay/text"
)

// ChunkStrategy selects how a line-placed label without a text alignment
// is restricted to the straight part of its line.
type ChunkStrategy uint8

const (
	// ChunkStraightRun keeps the prefix of the line whose total bend stays
	// within the style's max angle.
	ChunkStraightRun ChunkStrategy = iota

	// ChunkLongest keeps the longest part of the line in which no single
	// vertex bends more than the max angle.
	ChunkLongest
)

func (c ChunkStrategy) String() string {
	if c == ChunkLongest {
		return "longest"
	}
	return "straight-run"
}

// Option configures a TextReplay during creation.
//
// Example:
//
//	tr := s.NewTextReplay(extent, res, 2,
//	    replay.WithChunkStrategy(replay.ChunkLongest),
//	    replay.WithFontErrorHandler(func(font string, err error) { ... }))
type Option func(*options)

type options struct {
	tolerance      float64
	overlaps       bool
	recorder       Recorder
	chunk          ChunkStrategy
	onFontError    func(font string, err error)
	widthTableSize int
}

func defaultOptions() options {
	return options{
		widthTableSize: text.DefaultWidthTableSize,
	}
}

// WithTolerance sets the simplification tolerance recorded with the
// default recorder.
func WithTolerance(tolerance float64) Option {
	return func(o *options) {
		o.tolerance = tolerance
	}
}

// WithOverlaps marks the replay's geometries as possibly overlapping.
func WithOverlaps(overlaps bool) Option {
	return func(o *options) {
		o.overlaps = overlaps
	}
}

// WithRecorder replaces the default recording.Builder. WithTolerance and
// WithOverlaps do not apply to a custom recorder.
func WithRecorder(r Recorder) Option {
	return func(o *options) {
		o.recorder = r
	}
}

// WithChunkStrategy selects the line restriction. The default is
// ChunkStraightRun.
func WithChunkStrategy(c ChunkStrategy) Option {
	return func(o *options) {
		o.chunk = c
	}
}

// WithFontErrorHandler sets a hook called for every malformed font
// descriptor passed to SetTextStyle. Drawing continues with the default
// face either way.
func WithFontErrorHandler(fn func(font string, err error)) Option {
	return func(o *options) {
		o.onFontError = fn
	}
}

// WithWidthTableSize bounds the replay's text width table.
func WithWidthTableSize(n int) Option {
	return func(o *options) {
		o.widthTableSize = n
	}
}

// SessionOption configures a Session during creation.
type SessionOption func(*sessionOptions)

type sessionOptions struct {
	labels   *label.Cache
	library  *text.Library
	measurer text.Measurer
	surfaces surface.Factory
	checker  text.FontChecker
}

// WithLabelCache shares an existing label cache.
func WithLabelCache(c *label.Cache) SessionOption {
	return func(o *sessionOptions) {
		o.labels = c
	}
}

// WithFontLibrary sets the fonts used for measuring, checking and
// rasterizing labels.
func WithFontLibrary(lib *text.Library) SessionOption {
	return func(o *sessionOptions) {
		o.library = lib
	}
}

// WithMeasurer replaces the default text.FaceMeasurer, for example with a
// text.ShapingMeasurer.
func WithMeasurer(m text.Measurer) SessionOption {
	return func(o *sessionOptions) {
		o.measurer = m
	}
}

// WithSurfaceFactory sets where label images are drawn. The default is
// the "image" surface.
func WithSurfaceFactory(f surface.Factory) SessionOption {
	return func(o *sessionOptions) {
		o.surfaces = f
	}
}

// WithFontChecker replaces the font library as font validator.
func WithFontChecker(c text.FontChecker) SessionOption {
	return func(o *sessionOptions) {
		o.checker = c
	}
}
