package replay

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/gogpu/replay/geom"
	"github.com/gogpu/replay/label"
	"github.com/gogpu/replay/recording"
	"github.com/gogpu/replay/style"
	"github.com/gogpu/replay/text"
)

// ErrGeometryContract is returned by DrawText for a geometry that lacks an
// accessor its type requires, such as a polygon without Ends.
var ErrGeometryContract = errors.New("replay: geometry does not satisfy its type contract")

// Feature is the caller's handle for the feature being drawn.
type Feature = recording.Feature

// Recorder is the coordinate buffer and instruction sink a TextReplay
// writes to. recording.Builder is the default implementation.
type Recorder interface {
	Resolution() float64
	PixelRatio() float64
	BufferedMaxExtent() geom.Extent
	GrowLineWidth(w float64)
	CoordinatesLen() int
	AppendXY(flat []float64, offset, end, stride int) int
	AppendFlatCoordinates(flat []float64, offset, end, stride int, closed, skipFirst bool) int
	BeginGeometry(g geom.Geometry, f recording.Feature)
	EndGeometry(g geom.Geometry, f recording.Feature)
	Emit(paint, hit recording.Instruction)
	Finish() *recording.Replay
}

var _ Recorder = (*recording.Builder)(nil)

// TextReplay records label instructions for one layer and style pass.
//
// TextReplay is NOT thread-safe.
type TextReplay struct {
	session *Session
	rec     Recorder
	widths  *text.WidthTable
	opts    options

	group recording.DeclutterGroup
	text  string

	offsetX, offsetY float64
	rotateWithView   bool
	rotation         float64

	state  textState
	fill   *fillState
	stroke *strokeState

	textKey, fillKey, strokeKey string
}

func newTextReplay(s *Session, maxExtent geom.Extent, resolution, pixelRatio float64, opts []Option) *TextReplay {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	rec := o.recorder
	if rec == nil {
		rec = recording.NewBuilder(o.tolerance, maxExtent, resolution, pixelRatio, o.overlaps)
	}
	return &TextReplay{
		session: s,
		rec:     rec,
		widths:  text.NewWidthTable(s.measurer, o.widthTableSize),
		opts:    o,
	}
}

// Recorder returns the recorder the replay writes to.
func (r *TextReplay) Recorder() Recorder { return r.rec }

// WidthTable returns the replay's text width table.
func (r *TextReplay) WidthTable() *text.WidthTable { return r.widths }

// Text returns the normalized text of the current style.
func (r *TextReplay) Text() string { return r.text }

// Finish returns the recorded instructions. DrawChars widths resolve
// against the replay's width table.
func (r *TextReplay) Finish() *recording.Replay {
	out := r.rec.Finish()
	out.Widths = r.widths
	return out
}

// LabelKey returns the label cache key of s drawn with the current style.
// The stroke, text, label and fill parts are separated by NUL bytes.
func (r *TextReplay) LabelKey(s string, fill, stroke bool) string {
	var b strings.Builder
	if stroke {
		b.WriteString(r.strokeKey)
	}
	b.WriteString(keySep)
	b.WriteString(r.textKey)
	b.WriteString(keySep)
	b.WriteString(s)
	b.WriteString(keySep)
	if fill {
		b.WriteString(r.fillKey)
	}
	return b.String()
}

// Image returns the label image of s in the current style, rendering it
// on the first request for its key.
func (r *TextReplay) Image(s string, fill, stroke bool) (*label.Image, error) {
	key := r.LabelKey(s, fill, stroke)
	img, _, err := r.session.labels.GetOrRender(key, func() (*label.Image, error) {
		return r.render(s, fill, stroke)
	})
	return img, err
}

func (r *TextReplay) render(s string, fill, stroke bool) (*label.Image, error) {
	st := &r.state
	lines := strings.Split(s, "\n")
	_, widths := text.MeasureTextWidths(r.widths, st.font, lines, make([]float64, 0, len(lines)))

	req := label.Request{
		Lines:      lines,
		Widths:     widths,
		LineHeight: r.session.heights.LineHeight(st.font),
		Face:       r.session.library.FaceOrDefault(st.font),
		Scale:      st.scale * r.rec.PixelRatio(),
		Align:      st.textAlign.Fraction(),
	}
	if fill && r.fill != nil {
		req.Fill = &style.Fill{Paint: r.fill.paint}
	}
	if stroke && r.stroke != nil {
		req.Stroke = r.stroke.style()
	}
	return label.Render(req, r.session.surfaces)
}

// DrawText records the current label for g.
//
// Nothing is recorded when the style has no text, no fill and no stroke,
// when a line-placed geometry lies outside the view, or when a polygon
// is narrower than its label and the style does not allow exceeding it.
func (r *TextReplay) DrawText(g geom.Geometry, f Feature) error {
	if r.text == "" || (r.fill == nil && r.stroke == nil) {
		return nil
	}
	if g == nil {
		return fmt.Errorf("%w: nil geometry", ErrGeometryContract)
	}
	if g.Stride() < 2 {
		return fmt.Errorf("%w: %s with stride %d", ErrGeometryContract, g.Type(), g.Stride())
	}
	if r.state.placement == style.PlacementLine {
		return r.drawAlongLine(g, f)
	}
	return r.drawAtPoints(g, f)
}

// lineRun is the [start, end) offsets of one line to follow.
type lineRun struct{ start, end int }

func lineRuns(g geom.Geometry) ([]lineRun, error) {
	flat := g.FlatCoordinates()
	switch g.Type() {
	case geom.TypeLineString:
		return []lineRun{{0, len(flat)}}, nil
	case geom.TypeMultiLineString:
		e, ok := g.(geom.Ender)
		if !ok {
			return nil, contractError(g, "Ends")
		}
		runs := make([]lineRun, 0, len(e.Ends()))
		start := 0
		for _, end := range e.Ends() {
			runs = append(runs, lineRun{start, end})
			start = end
		}
		return runs, nil
	case geom.TypePolygon:
		e, ok := g.(geom.Ender)
		if !ok {
			return nil, contractError(g, "Ends")
		}
		if ends := e.Ends(); len(ends) > 0 {
			return []lineRun{{0, ends[0]}}, nil
		}
		return nil, nil
	case geom.TypeMultiPolygon:
		e, ok := g.(geom.Enderer)
		if !ok {
			return nil, contractError(g, "Endss")
		}
		runs := make([]lineRun, 0, len(e.Endss()))
		start := 0
		for _, ends := range e.Endss() {
			if len(ends) == 0 {
				continue
			}
			runs = append(runs, lineRun{start, ends[0]})
			start = ends[len(ends)-1]
		}
		return runs, nil
	}
	return nil, nil
}

func contractError(g geom.Geometry, accessor string) error {
	return fmt.Errorf("%w: %s without %s", ErrGeometryContract, g.Type(), accessor)
}

func (r *TextReplay) drawAlongLine(g geom.Geometry, f Feature) error {
	if !r.rec.BufferedMaxExtent().Intersects(g.Extent()) {
		return nil
	}
	runs, err := lineRuns(g)
	if err != nil || len(runs) == 0 {
		return err
	}

	flat := g.FlatCoordinates()
	stride := g.Stride()
	begin := r.rec.CoordinatesLen()
	r.rec.BeginGeometry(g, f)
	for _, run := range runs {
		start, end := run.start, run.end
		if r.state.textAlign == style.AlignUnset {
			start, end = r.chunk(flat, start, end, stride)
		}
		stop := r.rec.AppendXY(flat, start, end, stride)
		r.drawChars(begin, stop)
		begin = stop
	}
	r.rec.EndGeometry(g, f)
	return nil
}

func (r *TextReplay) chunk(flat []float64, offset, end, stride int) (int, int) {
	if r.opts.chunk == ChunkLongest {
		return geom.LongestStraightChunk(r.state.maxAngle, flat, offset, end, stride)
	}
	return geom.StraightRun(r.state.maxAngle, flat, offset, end, stride)
}

func (r *TextReplay) drawAtPoints(g geom.Geometry, f Feature) error {
	begin := r.rec.CoordinatesLen()
	img, err := r.Image(r.text, r.fill != nil, r.stroke != nil)
	if err != nil {
		return fmt.Errorf("replay: label %q: %w", r.text, err)
	}
	labelWidth := float64(img.Width()) / r.rec.PixelRatio()
	resolution := r.rec.Resolution()
	exceed := r.state.exceedLength

	var flat []float64
	stride := 2
	switch g.Type() {
	case geom.TypePoint, geom.TypeMultiPoint:
		flat = g.FlatCoordinates()
		stride = g.Stride()
	case geom.TypeLineString:
		m, ok := g.(geom.Midpointer)
		if !ok {
			return contractError(g, "FlatMidpoint")
		}
		flat = m.FlatMidpoint()
	case geom.TypeMultiLineString:
		m, ok := g.(geom.Midpointser)
		if !ok {
			return contractError(g, "FlatMidpoints")
		}
		flat = m.FlatMidpoints()
	case geom.TypeCircle:
		c, ok := g.(geom.Centerer)
		if !ok {
			return contractError(g, "Center")
		}
		flat = c.Center()
	case geom.TypePolygon:
		p, ok := g.(geom.InteriorPointer)
		if !ok {
			return contractError(g, "FlatInteriorPoint")
		}
		flat = p.FlatInteriorPoint()
		if len(flat) < 3 || math.IsNaN(flat[0]) || (!exceed && flat[2]/resolution < labelWidth) {
			return nil
		}
		stride = 3
	case geom.TypeMultiPolygon:
		p, ok := g.(geom.InteriorPointser)
		if !ok {
			return contractError(g, "FlatInteriorPoints")
		}
		points := p.FlatInteriorPoints()
		for i := 0; i+2 < len(points); i += 3 {
			if math.IsNaN(points[i]) {
				continue
			}
			if exceed || points[i+2]/resolution >= labelWidth {
				flat = append(flat, points[i], points[i+1])
			}
		}
	default:
		return nil
	}
	if len(flat) < 2 {
		return nil
	}

	end := r.rec.AppendFlatCoordinates(flat, 0, len(flat), stride, false, false)
	r.rec.BeginGeometry(g, f)
	r.drawImage(img, begin, end)
	r.rec.EndGeometry(g, f)
	return nil
}

// strokeWidth is the stroke line width, or 0 without a stroke.
func (r *TextReplay) strokeWidth() float64 {
	if r.stroke == nil {
		return 0
	}
	return r.stroke.lineWidth
}

func (r *TextReplay) drawImage(img *label.Image, begin, end int) {
	pr := r.rec.PixelRatio()
	align := r.state.textAlign.Fraction()
	baseline := r.state.textBaseline.Fraction()
	sw := r.strokeWidth()
	w, h := float64(img.Width()), float64(img.Height())

	anchorX := align*w/pr + 2*(0.5-align)*sw
	anchorY := baseline*h/pr + 2*(0.5-baseline)*sw

	paint := &recording.DrawImage{
		Begin:          begin,
		End:            end,
		Image:          img,
		AnchorX:        (anchorX - r.offsetX) * pr,
		AnchorY:        (anchorY - r.offsetY) * pr,
		DeclutterGroup: r.group,
		Height:         h,
		Opacity:        1,
		RotateWithView: r.rotateWithView,
		Rotation:       r.rotation,
		Scale:          1,
		Label:          true,
		Width:          w,
	}
	hit := *paint
	hit.Scale = 1 / pr
	r.rec.Emit(paint, &hit)
}

func (r *TextReplay) drawChars(begin, end int) {
	pr := r.rec.PixelRatio()
	st := &r.state
	var sw float64
	if r.stroke != nil {
		sw = r.stroke.lineWidth * st.scale / 2
	}

	paint := &recording.DrawChars{
		Begin:          begin,
		End:            end,
		Baseline:       st.textBaseline.Fraction(),
		DeclutterGroup: r.group,
		ExceedLength:   st.exceedLength,
		Fill:           r.fill != nil,
		MaxAngle:       st.maxAngle,
		Widths:         recording.WidthRequest{Font: st.font, Factor: st.scale * pr},
		OffsetY:        r.offsetY * pr,
		Stroke:         r.stroke != nil,
		StrokeWidth:    sw * pr,
		Text:           r.text,
		TextAlign:      st.textAlign.Fraction(),
		Scale:          1,
	}
	hit := *paint
	hit.Widths.Factor = st.scale
	hit.StrokeWidth = sw
	hit.Scale = 1 / pr
	r.rec.Emit(paint, &hit)
}
