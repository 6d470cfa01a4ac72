package recording

import (
	"log/slog"

	"github.com/gogpu/replay/internal/logging"
)

// TraceName is the registry name of the trace executor.
const TraceName = "trace"

func init() {
	Register(TraceName, func(w Widther) Executor {
		return NewTraceExecutor(nil, w)
	})
}

// TraceExecutor logs every instruction at info level.
type TraceExecutor struct {
	logger *slog.Logger
	widths Widther
	count  int
}

// NewTraceExecutor creates a trace executor. A nil logger uses the package
// logger at the time of each call; a nil widths leaves DrawChars widths
// unresolved.
func NewTraceExecutor(l *slog.Logger, widths Widther) *TraceExecutor {
	return &TraceExecutor{logger: l, widths: widths}
}

// Count returns the number of drawing instructions seen.
func (e *TraceExecutor) Count() int { return e.count }

func (e *TraceExecutor) log() *slog.Logger {
	if e.logger != nil {
		return e.logger
	}
	return logging.Logger()
}

// Begin implements Executor.
func (e *TraceExecutor) Begin() error {
	e.count = 0
	return nil
}

// BeginGeometry implements Executor.
func (e *TraceExecutor) BeginGeometry(in *BeginGeometry) (bool, error) {
	attrs := []any{"end", in.End}
	if in.Geometry != nil {
		attrs = append(attrs, "geometry", in.Geometry.Type().String())
	}
	e.log().Info("BeginGeometry", attrs...)
	return false, nil
}

// DrawImage implements Executor.
func (e *TraceExecutor) DrawImage(coords []float64, in *DrawImage) error {
	e.count++
	e.log().Info("DrawImage",
		"begin", in.Begin,
		"end", in.End,
		"points", len(coords)/2,
		"anchorX", in.AnchorX,
		"anchorY", in.AnchorY,
		"width", in.Width,
		"height", in.Height,
		"scale", in.Scale,
		"rotation", in.Rotation,
		"rotateWithView", in.RotateWithView)
	return nil
}

// DrawChars implements Executor.
func (e *TraceExecutor) DrawChars(coords []float64, in *DrawChars) error {
	e.count++
	attrs := []any{
		"begin", in.Begin,
		"end", in.End,
		"points", len(coords) / 2,
		"text", in.Text,
		"font", in.Widths.Font,
		"textAlign", in.TextAlign,
		"baseline", in.Baseline,
		"strokeWidth", in.StrokeWidth,
		"scale", in.Scale,
	}
	if e.widths != nil {
		attrs = append(attrs, "width", in.Widths.Resolve(e.widths, in.Text))
	}
	e.log().Info("DrawChars", attrs...)
	return nil
}

// EndGeometry implements Executor.
func (e *TraceExecutor) EndGeometry(*EndGeometry) error {
	e.log().Info("EndGeometry")
	return nil
}

// End implements Executor.
func (e *TraceExecutor) End() error {
	e.log().Debug("recording: trace done", "drawn", e.count)
	return nil
}
