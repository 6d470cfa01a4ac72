package replay

import (
	"github.com/gogpu/replay/geom"
	"github.com/gogpu/replay/label"
	"github.com/gogpu/replay/surface"
	"github.com/gogpu/replay/text"
)

// Session owns the caches shared by the replays of a render session:
// label images, line heights and font faces.
//
// Session is safe for concurrent use; the replays it creates are not.
type Session struct {
	labels   *label.Cache
	library  *text.Library
	measurer text.Measurer
	heights  *text.LineHeightCache
	surfaces surface.Factory
	checker  text.FontChecker
}

// NewSession creates a session. Without options it uses the built-in Go
// fonts, a FaceMeasurer and image surfaces.
func NewSession(opts ...SessionOption) *Session {
	var o sessionOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.library == nil {
		o.library = text.NewLibrary()
	}
	if o.measurer == nil {
		o.measurer = text.NewFaceMeasurer(o.library)
	}
	if o.labels == nil {
		o.labels = label.NewCache()
	}
	if o.surfaces == nil {
		o.surfaces = surface.Default()
	}
	if o.checker == nil {
		o.checker = o.library
	}
	return &Session{
		labels:   o.labels,
		library:  o.library,
		measurer: o.measurer,
		heights:  text.NewLineHeightCache(o.measurer),
		surfaces: o.surfaces,
		checker:  o.checker,
	}
}

// LabelCache returns the shared label image cache.
func (s *Session) LabelCache() *label.Cache { return s.labels }

// Library returns the font library.
func (s *Session) Library() *text.Library { return s.library }

// Measurer returns the text measurer.
func (s *Session) Measurer() text.Measurer { return s.measurer }

// LineHeights returns the shared line height cache.
func (s *Session) LineHeights() *text.LineHeightCache { return s.heights }

// NewTextReplay creates a replay for a view of maxExtent at resolution
// map units per logical pixel, drawn at pixelRatio device pixels per
// logical pixel.
func (s *Session) NewTextReplay(maxExtent geom.Extent, resolution, pixelRatio float64, opts ...Option) *TextReplay {
	return newTextReplay(s, maxExtent, resolution, pixelRatio, opts)
}
