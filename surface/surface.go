// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
)

// Surface is an offscreen raster target with canvas-style drawing state.
//
// Surfaces are NOT thread-safe. Each surface should be used from a single
// goroutine.
type Surface interface {
	// Width returns the surface width in device pixels.
	Width() int

	// Height returns the surface height in device pixels.
	Height() int

	// Scale multiplies the current transform by a scaling.
	Scale(sx, sy float64)

	// SetFont selects the face used by FillText and StrokeText.
	SetFont(f Face)

	// SetTextAlign sets the horizontal text anchor.
	SetTextAlign(a TextAlign)

	// SetTextBaseline sets the vertical text anchor.
	SetTextBaseline(b TextBaseline)

	// SetFillStyle sets the source painted by Fill and FillText.
	SetFillStyle(src image.Image)

	// SetStrokeStyle sets the source painted by Stroke and StrokeText.
	SetStrokeStyle(src image.Image)

	// SetLineStyle sets the stroke width, caps, joins and miter limit.
	SetLineStyle(ls LineStyle)

	// SetLineDash sets the dash pattern in user units. An empty pattern
	// draws solid lines.
	SetLineDash(pattern []float64, offset float64)

	// Fill fills the path with the non-zero rule.
	Fill(p *Path)

	// Stroke strokes the path with the current line style and dash.
	Stroke(p *Path)

	// FillText fills s at (x, y) with the current font and alignment.
	FillText(s string, x, y float64)

	// StrokeText strokes the outline of s at (x, y).
	StrokeText(s string, x, y float64)

	// Clear fills the entire surface with c, ignoring the transform.
	Clear(c color.Color)

	// Image returns the backing image. It stays owned by the surface
	// until Close.
	Image() *image.RGBA

	// Snapshot returns a copy of the current contents.
	Snapshot() *image.RGBA

	// Close releases the surface. Drawing after Close is a no-op and
	// Close is idempotent.
	Close() error
}
