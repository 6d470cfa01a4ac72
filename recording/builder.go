package recording

import (
	"github.com/gogpu/replay/geom"
	"github.com/gogpu/replay/internal/logging"
	"github.com/gogpu/replay/label"
)

// Builder records the instructions of one render pass.
//
// Builder is NOT thread-safe. Instructions are append-only and keep the
// order in which they were emitted.
type Builder struct {
	tolerance  float64
	maxExtent  geom.Extent
	resolution float64
	pixelRatio float64
	overlaps   bool

	maxLineWidth float64
	buffered     *geom.Extent

	coords       []float64
	instructions []Instruction
	hit          []Instruction

	openPaint, openHit *BeginGeometry
}

// NewBuilder creates a builder for a view with the given maximum extent
// and resolution in map units per logical pixel. Non-positive resolution
// and pixel ratio are treated as 1.
func NewBuilder(tolerance float64, maxExtent geom.Extent, resolution, pixelRatio float64, overlaps bool) *Builder {
	if resolution <= 0 {
		resolution = 1
	}
	if pixelRatio <= 0 {
		pixelRatio = 1
	}
	return &Builder{
		tolerance:  tolerance,
		maxExtent:  maxExtent,
		resolution: resolution,
		pixelRatio: pixelRatio,
		overlaps:   overlaps,
	}
}

// Tolerance returns the simplification tolerance.
func (b *Builder) Tolerance() float64 { return b.tolerance }

// Resolution returns the map units per logical pixel.
func (b *Builder) Resolution() float64 { return b.resolution }

// PixelRatio returns the device pixel ratio.
func (b *Builder) PixelRatio() float64 { return b.pixelRatio }

// Overlaps reports whether geometries of this pass may overlap.
func (b *Builder) Overlaps() bool { return b.overlaps }

// MaxExtent returns the extent of the view.
func (b *Builder) MaxExtent() geom.Extent { return b.maxExtent }

// GrowLineWidth widens the buffered max extent to fit strokes of width w.
func (b *Builder) GrowLineWidth(w float64) {
	if w > b.maxLineWidth {
		b.maxLineWidth = w
		b.buffered = nil
	}
}

// BufferedMaxExtent returns the max extent grown by half the widest stroke
// seen so far, plus half a pixel, in map units.
func (b *Builder) BufferedMaxExtent() geom.Extent {
	if b.buffered == nil {
		e := b.maxExtent
		if b.maxLineWidth > 0 {
			e = e.Buffer(b.resolution * (b.maxLineWidth + 1) / 2)
		}
		b.buffered = &e
	}
	return *b.buffered
}

// CoordinatesLen returns the length of the shared coordinate buffer.
func (b *Builder) CoordinatesLen() int { return len(b.coords) }

// AppendXY copies the XY part of every point in flat[offset:end] to the
// coordinate buffer and returns the new buffer length.
func (b *Builder) AppendXY(flat []float64, offset, end, stride int) int {
	for i := offset; i < end; i += stride {
		b.coords = append(b.coords, flat[i], flat[i+1])
	}
	return len(b.coords)
}

// AppendFlatCoordinates copies the XY part of the points in
// flat[offset:end] to the coordinate buffer, dropping points inside runs
// that stay outside the buffered max extent on the same side. The first
// two points, the points on both sides of a crossing and a single point
// are always kept, and so is the last point of a closed ring whose tail
// was dropped. It returns the new buffer length.
func (b *Builder) AppendFlatCoordinates(flat []float64, offset, end, stride int, closed, skipFirst bool) int {
	extent := b.BufferedMaxExtent()
	if skipFirst {
		offset += stride
	}
	if offset >= end {
		return len(b.coords)
	}

	lastX, lastY := flat[offset], flat[offset+1]
	var lastRel geom.Relationship // unknown: the first step always differs
	skipped := true
	i := offset + stride
	for ; i < end; i += stride {
		x, y := flat[i], flat[i+1]
		rel := extent.Relationship(x, y)
		switch {
		case rel != lastRel:
			if skipped {
				b.coords = append(b.coords, lastX, lastY)
			}
			b.coords = append(b.coords, x, y)
			skipped = false
		case rel == geom.Intersecting:
			b.coords = append(b.coords, x, y)
			skipped = false
		default:
			skipped = true
		}
		lastX, lastY, lastRel = x, y, rel
	}
	if (closed && skipped) || i == offset+stride {
		b.coords = append(b.coords, lastX, lastY)
	}
	return len(b.coords)
}

// BeginGeometry opens the instructions of one feature in both streams.
func (b *Builder) BeginGeometry(g geom.Geometry, f Feature) {
	b.openPaint = &BeginGeometry{Feature: f, Geometry: g}
	b.instructions = append(b.instructions, b.openPaint)
	b.openHit = &BeginGeometry{Feature: f, Geometry: g}
	b.hit = append(b.hit, b.openHit)
}

// EndGeometry closes the feature opened by BeginGeometry. Without an open
// feature it still appends the EndGeometry markers.
func (b *Builder) EndGeometry(g geom.Geometry, f Feature) {
	if b.openPaint != nil {
		b.openPaint.End = len(b.instructions)
		b.openPaint = nil
	}
	if b.openHit != nil {
		b.openHit.End = len(b.hit)
		b.openHit = nil
	}
	end := &EndGeometry{Feature: f, Geometry: g}
	b.instructions = append(b.instructions, end)
	b.hit = append(b.hit, end)
}

// Emit appends one instruction to each stream.
func (b *Builder) Emit(paint, hit Instruction) {
	b.instructions = append(b.instructions, paint)
	b.hit = append(b.hit, hit)
}

// Finish returns the recorded replay. The builder must not be used
// afterwards.
func (b *Builder) Finish() *Replay {
	logging.Logger().Debug("recording: finished replay",
		"instructions", len(b.instructions),
		"hitInstructions", len(b.hit),
		"coordinates", len(b.coords))
	return &Replay{
		Coordinates:              b.coords,
		Instructions:             b.instructions,
		HitDetectionInstructions: b.hit,
		Overlaps:                 b.overlaps,
	}
}

// Replay is the immutable result of a Builder.
type Replay struct {
	Coordinates              []float64
	Instructions             []Instruction
	HitDetectionInstructions []Instruction

	// Widths resolves the WidthRequest of DrawChars instructions.
	Widths Widther

	// Overlaps reports whether geometries of this pass may overlap.
	Overlaps bool
}

// Play replays the paint stream to exec.
func (r *Replay) Play(exec Executor) error {
	return Playback(r.Instructions, r.Coordinates, exec)
}

// PlayHitDetection replays the hit detection stream to exec.
func (r *Replay) PlayHitDetection(exec Executor) error {
	return Playback(r.HitDetectionInstructions, r.Coordinates, exec)
}

// Images returns the distinct label images of the paint stream in order
// of first use.
func (r *Replay) Images() []*label.Image {
	var out []*label.Image
	seen := make(map[*label.Image]struct{})
	for _, in := range r.Instructions {
		d, ok := in.(*DrawImage)
		if !ok || d.Image == nil {
			continue
		}
		if _, dup := seen[d.Image]; dup {
			continue
		}
		seen[d.Image] = struct{}{}
		out = append(out, d.Image)
	}
	return out
}
