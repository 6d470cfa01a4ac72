// Package replay records map labels as replayable draw instructions.
//
// # Overview
//
// A TextReplay turns point, line and polygon geometries plus a text style
// into instructions for a later paint pass. Point-placed labels are
// rasterized once per distinct style and text and shared through a label
// cache; line-placed labels are emitted as per-character layout requests
// along the straight part of the line.
//
// # Quick Start
//
//	s := replay.NewSession()
//	tr := s.NewTextReplay(geom.Extent{0, 0, 1000, 1000}, 1, 2)
//
//	tr.SetTextStyle(&style.Text{
//	    Text: "Main Street",
//	    Font: "bold 12px sans-serif",
//	    Fill: &style.Fill{Paint: style.MustParseColor("#333")},
//	}, nil)
//	if err := tr.DrawText(geom.NewPoint(100, 200), feature); err != nil {
//	    // a geometry that does not honour its type's contract
//	}
//
//	r := tr.Finish()
//	err := r.Play(recording.MustExecutor("trace", r.Widths))
//
// # Streams
//
// Every drawing instruction is emitted twice. The paint stream works in
// device pixels; the hit detection stream carries the same instruction
// with its scale-dependent fields in logical pixels, so pointer hit tests
// do not depend on the display density.
//
// # Sessions
//
// A Session owns the caches that outlive a single replay: rendered label
// images, line heights and font faces. Replays created from the same
// session share them. A TextReplay itself is not safe for concurrent use.
package replay
