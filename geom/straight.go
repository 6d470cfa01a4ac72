package geom

import "math"

// StraightRun finds where a label laid along the line in
// flat[offset:end] can run before the line bends too much.
//
// Starting at offset, it sums the absolute turning angle at every
// interior vertex. The run stops at the first vertex where the sum
// exceeds maxAngle; that vertex is the last one of the run. The result is
// [begin, stop) in flat offsets, so begin is always offset.
//
// maxAngle of +Inf or NaN means no restriction, and so does a line with
// fewer than two segments: both return [offset, end). Zero-length
// segments do not turn.
func StraightRun(maxAngle float64, flat []float64, offset, end, stride int) (begin, stop int) {
	if math.IsNaN(maxAngle) || math.IsInf(maxAngle, 1) || (end-offset)/stride < 3 {
		return offset, end
	}

	var turned float64
	var px, py float64 // previous non-degenerate segment direction
	havePrev := false
	for i := offset + stride; i < end; i += stride {
		dx, dy := flat[i]-flat[i-stride], flat[i+1]-flat[i-stride+1]
		if dx == 0 && dy == 0 {
			continue
		}
		if havePrev {
			turned += turnAngle(px, py, dx, dy)
			if turned > maxAngle {
				// The vertex at i-stride is where the bend happens.
				return offset, i
			}
		}
		px, py, havePrev = dx, dy, true
	}
	return offset, end
}

// LongestStraightChunk returns the longest part of the line in
// flat[offset:end] in which no single vertex turns by more than maxAngle,
// measured by length. Chunks share their bending vertex. The result is
// [begin, stop) in flat offsets.
func LongestStraightChunk(maxAngle float64, flat []float64, offset, end, stride int) (begin, stop int) {
	if math.IsNaN(maxAngle) || math.IsInf(maxAngle, 1) || (end-offset)/stride < 3 {
		return offset, end
	}

	chunkStart, chunkEnd := offset, offset
	chunkLen := 0.0
	start := offset
	length := 0.0
	var px, py float64
	havePrev := false
	for i := offset + stride; i < end; i += stride {
		dx, dy := flat[i]-flat[i-stride], flat[i+1]-flat[i-stride+1]
		segLen := math.Hypot(dx, dy)
		if segLen == 0 {
			continue
		}
		if havePrev && turnAngle(px, py, dx, dy) > maxAngle {
			if length > chunkLen {
				chunkLen = length
				chunkStart, chunkEnd = start, i
			}
			length = 0
			start = i - stride
		}
		length += segLen
		px, py, havePrev = dx, dy, true
	}
	if length > chunkLen {
		return start, end
	}
	return chunkStart, chunkEnd
}

// turnAngle returns the unsigned angle between two directions.
func turnAngle(x1, y1, x2, y2 float64) float64 {
	cos := (x1*x2 + y1*y2) / (math.Hypot(x1, y1) * math.Hypot(x2, y2))
	return math.Acos(math.Max(-1, math.Min(1, cos)))
}
