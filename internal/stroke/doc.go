// Package stroke converts stroked polylines into filled outlines.
//
// Label halos are drawn by stroking the flattened glyph outlines of the
// label text. This package takes those outlines as polylines, optionally
// splits them into dashes, and expands every piece into closed polygons
// that share one orientation. Filling the polygons with the non-zero rule
// yields the stroke.
//
// # Line Caps
//
//   - CapButt: flat cap ending exactly at the endpoint
//   - CapRound: semicircular cap with radius = width/2
//   - CapSquare: square cap extending width/2 beyond the endpoint
//
// # Line Joins
//
//   - JoinMiter: sharp corner, falls back to bevel past the miter limit
//   - JoinRound: circular arc at corners
//   - JoinBevel: straight line across the corner
//
// # Usage
//
//	style := stroke.Style{Width: 2, Cap: stroke.CapRound, Join: stroke.JoinRound, MiterLimit: 10}
//	lines := stroke.Dash(outline, []float64{4, 2}, 0)
//	polygons := stroke.Expand(lines, style, 0.1)
//
// The join and cap geometry follows tiny-skia and kurbo.
package stroke
