// Package text resolves CSS font descriptors to font faces and measures
// label text.
//
// # Fonts
//
// A font descriptor uses the CSS font shorthand:
//
//	[style] [variant] [weight] [stretch] size[/line-height] family[, family]...
//
// for example "bold 12px/1.5 'Open Sans', sans-serif". ParseFont parses a
// descriptor and a Library maps it to a Face. The library ships the Go
// font family (golang.org/x/image/font/gofont) for the generic families;
// other TrueType/OpenType fonts are added with Library.Register.
//
// # Measuring
//
// Measurers report widths and line heights in logical (CSS) pixels:
//
//   - FaceMeasurer: advances from golang.org/x/image/font with kerning
//   - ShapingMeasurer: HarfBuzz shaping from github.com/go-text/typesetting
//
// LineHeightCache and WidthTable memoize measurements. A LineHeightCache
// is meant to be shared for the lifetime of a session; a WidthTable
// belongs to one replay.
package text
