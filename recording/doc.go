// Package recording holds replayable label instructions.
//
// A Builder collects instructions for one render pass into two parallel
// streams: the paint stream, drawn at device resolution, and the hit
// detection stream, used for pointer hit testing in logical pixels. Both
// streams reference ranges of one shared coordinate buffer.
//
// # Instructions
//
//   - BeginGeometry and EndGeometry bracket the instructions of one feature.
//   - DrawImage places a pre-rendered label image at every point of its range.
//   - DrawChars lays text out character by character along its range.
//
// # Playback
//
// Executors consume instructions in emission order:
//
//	r := builder.Finish()
//	err := r.Play(exec)
//
// Executors are registered by name, following the database/sql driver
// pattern:
//
//	func init() {
//	    recording.Register("canvas", func(w recording.Widther) recording.Executor {
//	        return newCanvasExecutor(w)
//	    })
//	}
//
// The package registers a "trace" executor that logs every instruction.
package recording
