package recording

import (
	"errors"
	"fmt"
)

// ErrInvalidRange is returned by Playback when an instruction references
// coordinates outside the buffer.
var ErrInvalidRange = errors.New("recording: coordinate range out of bounds")

// Executor consumes instructions during playback.
//
// Coordinate arguments are the XY pairs of the instruction's range; they
// alias the replay's buffer and must not be modified.
type Executor interface {
	// Begin is called once before the first instruction.
	Begin() error

	// BeginGeometry starts a feature. Returning skip = true continues
	// playback after the matching EndGeometry.
	BeginGeometry(in *BeginGeometry) (skip bool, err error)

	// DrawImage draws in.Image at every point of coords.
	DrawImage(coords []float64, in *DrawImage) error

	// DrawChars lays in.Text out along the line in coords.
	DrawChars(coords []float64, in *DrawChars) error

	// EndGeometry ends a feature.
	EndGeometry(in *EndGeometry) error

	// End is called once after the last instruction.
	End() error
}

// Playback walks instructions in order and dispatches them to exec.
func Playback(instructions []Instruction, coords []float64, exec Executor) error {
	if err := exec.Begin(); err != nil {
		return fmt.Errorf("recording: begin playback: %w", err)
	}
	for i := 0; i < len(instructions); i++ {
		var err error
		switch in := instructions[i].(type) {
		case *BeginGeometry:
			var skip bool
			skip, err = exec.BeginGeometry(in)
			if err == nil && skip && in.End > i {
				// Resume at the EndGeometry so the executor still sees it.
				i = in.End - 1
			}
		case *EndGeometry:
			err = exec.EndGeometry(in)
		case *DrawImage:
			var xy []float64
			if xy, err = rangeOf(coords, in.Begin, in.End); err == nil {
				err = exec.DrawImage(xy, in)
			}
		case *DrawChars:
			var xy []float64
			if xy, err = rangeOf(coords, in.Begin, in.End); err == nil {
				err = exec.DrawChars(xy, in)
			}
		default:
			err = fmt.Errorf("recording: unknown instruction %T", in)
		}
		if err != nil {
			return fmt.Errorf("recording: instruction %d (%s): %w", i, typeName(instructions[i]), err)
		}
	}
	if err := exec.End(); err != nil {
		return fmt.Errorf("recording: end playback: %w", err)
	}
	return nil
}

func typeName(in Instruction) string {
	if in == nil {
		return "nil"
	}
	return in.Type().String()
}

func rangeOf(coords []float64, begin, end int) ([]float64, error) {
	if begin < 0 || end < begin || end > len(coords) {
		return nil, fmt.Errorf("%w: [%d, %d) of %d", ErrInvalidRange, begin, end, len(coords))
	}
	return coords[begin:end:end], nil
}
