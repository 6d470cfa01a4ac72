package replay

import (
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/replay/internal/logging"
	"github.com/gogpu/replay/recording"
	"github.com/gogpu/replay/style"
)

// textState is the text part of the current style with defaults applied.
type textState struct {
	font         string
	scale        float64
	placement    style.Placement
	maxAngle     float64
	textAlign    style.TextAlign
	textBaseline style.TextBaseline
	exceedLength bool
}

type fillState struct {
	paint style.Paint
}

type strokeState struct {
	paint          style.Paint
	lineCap        style.LineCap
	lineJoin       style.LineJoin
	miterLimit     float64
	lineDash       []float64
	lineDashOffset float64
	lineWidth      float64
}

// style returns the stroke with every field set.
func (s *strokeState) style() *style.Stroke {
	return &style.Stroke{
		Paint:          s.paint,
		LineCap:        s.lineCap,
		LineJoin:       s.lineJoin,
		MiterLimit:     s.miterLimit,
		LineDash:       s.lineDash,
		LineDashOffset: s.lineDashOffset,
		Width:          style.Width(s.lineWidth),
	}
}

// SetTextStyle makes s the style of the following DrawText calls. A nil
// style disables drawing until the next call. group is attached to every
// instruction emitted under this style.
//
// A malformed font is logged and reported to the WithFontErrorHandler
// hook; labels are then drawn with the default face.
func (r *TextReplay) SetTextStyle(s *style.Text, group recording.DeclutterGroup) {
	if s == nil {
		r.text = ""
		return
	}
	r.group = group

	if s.Fill == nil {
		r.fill = nil
	} else {
		if r.fill == nil {
			r.fill = &fillState{}
		}
		r.fill.paint = paintOrBlack(s.Fill.Paint)
	}

	if s.Stroke == nil {
		r.stroke = nil
	} else {
		if r.stroke == nil {
			r.stroke = &strokeState{}
		}
		setStroke(r.stroke, s.Stroke)
		r.rec.GrowLineWidth(r.stroke.lineWidth)
	}

	font := s.Font
	if font == "" {
		font = style.DefaultFont
	}
	if err := r.session.checker.CheckFont(font); err != nil {
		logging.Logger().Warn("replay: malformed font", "font", font, "err", err)
		if r.opts.onFontError != nil {
			r.opts.onFontError(font, err)
		}
	}

	st := &r.state
	st.font = font
	st.scale = s.Scale
	if st.scale == 0 {
		st.scale = style.DefaultScale
	}
	st.placement = s.Placement
	st.maxAngle = s.MaxAngle
	if st.maxAngle == 0 {
		st.maxAngle = style.DefaultMaxAngle
	}
	st.textAlign = s.TextAlign
	st.textBaseline = s.TextBaseline
	if st.textBaseline == style.BaselineUnset {
		st.textBaseline = style.DefaultTextBaseline
	}
	st.exceedLength = s.ExceedLength

	r.text = norm.NFC.String(s.Text)
	r.offsetX = s.OffsetX
	r.offsetY = s.OffsetY
	r.rotateWithView = s.RotateWithView
	r.rotation = s.Rotation

	r.strokeKey = strokeKey(r.stroke)
	r.textKey = textKey(st, r.rec.PixelRatio())
	r.fillKey = fillKey(r.fill)
}

func paintOrBlack(p style.Paint) style.Paint {
	if p == nil {
		return style.Black
	}
	return p
}

func setStroke(dst *strokeState, s *style.Stroke) {
	dst.paint = paintOrBlack(s.Paint)
	dst.lineCap = s.LineCap
	if dst.lineCap == style.LineCapUnset {
		dst.lineCap = style.DefaultLineCap
	}
	dst.lineJoin = s.LineJoin
	if dst.lineJoin == style.LineJoinUnset {
		dst.lineJoin = style.DefaultLineJoin
	}
	dst.miterLimit = s.MiterLimit
	if dst.miterLimit <= 0 {
		dst.miterLimit = style.DefaultMiterLimit
	}
	dst.lineDash = append(dst.lineDash[:0], s.LineDash...)
	dst.lineDashOffset = s.LineDashOffset
	dst.lineWidth = s.LineWidth()
}

// strokeKey covers every stroke attribute that changes label pixels.
func strokeKey(s *strokeState) string {
	if s == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(s.paint.Fingerprint())
	b.WriteString(s.lineCap.String())
	b.WriteString(formatNumber(s.lineDashOffset))
	b.WriteByte('|')
	b.WriteString(formatNumber(s.lineWidth))
	b.WriteString(s.lineJoin.String())
	b.WriteString(formatNumber(s.miterLimit))
	b.WriteByte('[')
	for i, d := range s.lineDash {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(formatNumber(d))
	}
	b.WriteByte(']')
	return b.String()
}

// keySep separates label key parts.
const keySep = "\x00"

// textKey includes the pixel ratio; replays sharing a label cache may
// differ in it.
func textKey(st *textState, pixelRatio float64) string {
	align := "?"
	if st.textAlign != style.AlignUnset {
		align = st.textAlign.String()
	}
	return st.font + keySep + align + keySep + formatNumber(st.scale) + keySep + formatNumber(pixelRatio)
}

// fillKey marks non-color paints with a leading "|" so a pattern id never
// reads as a color.
func fillKey(f *fillState) string {
	if f == nil {
		return ""
	}
	if _, ok := f.paint.(style.Color); ok {
		return f.paint.Fingerprint()
	}
	return "|" + f.paint.Fingerprint()
}

func formatNumber(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
