// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides the offscreen raster targets labels are drawn on.
//
// A Surface behaves like a small 2D canvas context: it carries a current
// transform, font, text alignment, fill and stroke sources, line style and
// dash pattern, and draws paths or text with them.
//
// # Surface Types
//
//   - ImageSurface: CPU rendering into an *image.RGBA using the
//     golang.org/x/image/vector coverage rasterizer
//
// # Registry
//
// Surfaces are created through a Factory. Factories are registered by
// name so callers can swap the raster target without code changes:
//
//	surface.Register("image", surface.ImageFactory)
//
//	// Later:
//	s, err := surface.New("image", 64, 16)
//
// The "image" factory is registered by default.
//
// # Usage
//
//	s := surface.NewImageSurface(64, 16)
//	defer s.Close()
//
//	s.Scale(2, 2)
//	s.SetFont(face)
//	s.SetTextAlign(surface.TextAlignCenter)
//	s.SetTextBaseline(surface.TextBaselineTop)
//	s.SetFillStyle(image.NewUniform(color.Black))
//	s.FillText("Main St", 16, 0)
//
//	img := s.Image()
package surface
