package text

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// DefaultFont is the descriptor used when a style names none.
const DefaultFont = "10px sans-serif"

// Generic family names understood by every Library.
const (
	FamilySansSerif = "sans-serif"
	FamilySerif     = "serif"
	FamilyMonospace = "monospace"
)

// Font is a parsed CSS font descriptor.
type Font struct {
	// Style is "normal", "italic" or "oblique".
	Style string

	// Variant is "normal" or "small-caps".
	Variant string

	// Weight is the numeric weight: 400 normal, 700 bold.
	Weight int

	// Stretch is a font-stretch keyword, "normal" by default.
	Stretch string

	// Size is the font size in CSS pixels.
	Size float64

	// LineHeight is the raw line-height token, empty when absent.
	LineHeight string

	// Families lists the family names in order of preference.
	Families []string
}

// Bold reports whether the weight selects a bold face.
func (f Font) Bold() bool { return f.Weight >= 600 }

// Italic reports whether the style selects an italic face.
func (f Font) Italic() bool { return f.Style == "italic" || f.Style == "oblique" }

var (
	fontLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `\s+`},
		{Name: "Dimension", Pattern: `(?:\d+\.\d*|\.\d+|\d+)(?i:px|pt|rem|em|%)`},
		{Name: "Number", Pattern: `(?:\d+\.\d*|\.\d+|\d+)`},
		{Name: "String", Pattern: `"[^"]*"`},
		{Name: "SQString", Pattern: `'[^']*'`},
		{Name: "Ident", Pattern: `-?[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Punct", Pattern: `[/,]`},
	})

	fontParser = participle.MustBuild[fontShorthand](
		participle.Lexer(fontLexer),
		participle.Elide("Whitespace"),
	)
)

type fontShorthand struct {
	Modifiers  []string      `parser:"@( Ident | Number )*"`
	Size       string        `parser:"@Dimension"`
	LineHeight string        `parser:"( '/' @( Dimension | Number | Ident ) )?"`
	Families   []*fontFamily `parser:"@@ ( ',' @@ )*"`
}

type fontFamily struct {
	Quoted string   `parser:"  @( String | SQString )"`
	Words  []string `parser:"| @Ident+"`
}

func (f *fontFamily) name() string {
	if f.Quoted != "" {
		return strings.TrimSpace(f.Quoted[1 : len(f.Quoted)-1])
	}
	return strings.Join(f.Words, " ")
}

var fontStretches = map[string]bool{
	"ultra-condensed": true, "extra-condensed": true, "condensed": true,
	"semi-condensed": true, "semi-expanded": true, "expanded": true,
	"extra-expanded": true, "ultra-expanded": true,
}

// ParseFont parses a CSS font shorthand. Errors are *FontError values.
func ParseFont(s string) (Font, error) {
	ast, err := fontParser.ParseString("", s)
	if err != nil {
		return Font{}, &FontError{Font: s, Reason: "syntax", Err: err}
	}

	f := Font{Style: "normal", Variant: "normal", Weight: 400, Stretch: "normal", LineHeight: ast.LineHeight}
	for _, m := range ast.Modifiers {
		if err := f.applyModifier(strings.ToLower(m)); err != nil {
			return Font{}, &FontError{Font: s, Reason: err.Error()}
		}
	}

	size, err := parseFontSize(ast.Size)
	if err != nil {
		return Font{}, &FontError{Font: s, Reason: "invalid size", Err: err}
	}
	f.Size = size

	for _, fam := range ast.Families {
		name := fam.name()
		if name == "" {
			return Font{}, &FontError{Font: s, Reason: "empty family name"}
		}
		f.Families = append(f.Families, name)
	}
	return f, nil
}

type modifierError string

func (e modifierError) Error() string { return "unknown modifier " + strconv.Quote(string(e)) }

func (f *Font) applyModifier(m string) error {
	switch m {
	case "normal":
	case "italic", "oblique":
		f.Style = m
	case "small-caps":
		f.Variant = m
	case "bold", "bolder":
		f.Weight = 700
	case "lighter":
		f.Weight = 300
	default:
		if fontStretches[m] {
			f.Stretch = m
			return nil
		}
		w, err := strconv.ParseFloat(m, 64)
		if err != nil || w < 1 || w > 1000 {
			return modifierError(m)
		}
		f.Weight = int(w)
	}
	return nil
}

// parseFontSize converts a CSS length to pixels. Relative units resolve
// against the 16px browser default.
func parseFontSize(tok string) (float64, error) {
	lower := strings.ToLower(tok)
	unit := ""
	for _, u := range []string{"px", "pt", "rem", "em", "%"} {
		if strings.HasSuffix(lower, u) {
			unit = u
			break
		}
	}
	v, err := strconv.ParseFloat(lower[:len(lower)-len(unit)], 64)
	if err != nil {
		return 0, err
	}
	switch unit {
	case "pt":
		return v * 4 / 3, nil
	case "em", "rem":
		return v * 16, nil
	case "%":
		return v * 16 / 100, nil
	}
	return v, nil
}
