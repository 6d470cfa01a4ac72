package text

import (
	"errors"
	"slices"
	"testing"
)

func TestParseFont(t *testing.T) {
	tests := []struct {
		in   string
		want Font
	}{
		{
			in:   "10px sans-serif",
			want: Font{Style: "normal", Variant: "normal", Weight: 400, Stretch: "normal", Size: 10, Families: []string{"sans-serif"}},
		},
		{
			in:   "bold italic 12pt/1.5 'Open Sans', serif",
			want: Font{Style: "italic", Variant: "normal", Weight: 700, Stretch: "normal", Size: 16, LineHeight: "1.5", Families: []string{"Open Sans", "serif"}},
		},
		{
			in:   `600 small-caps condensed 2em "Noto Sans"`,
			want: Font{Style: "normal", Variant: "small-caps", Weight: 600, Stretch: "condensed", Size: 32, Families: []string{"Noto Sans"}},
		},
		{
			in:   "Normal 50% Arial Black",
			want: Font{Style: "normal", Variant: "normal", Weight: 400, Stretch: "normal", Size: 8, Families: []string{"Arial Black"}},
		},
		{
			in:   "oblique lighter 9.5PX/normal monospace",
			want: Font{Style: "oblique", Variant: "normal", Weight: 300, Stretch: "normal", Size: 9.5, LineHeight: "normal", Families: []string{"monospace"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFont(tt.in)
			if err != nil {
				t.Fatalf("ParseFont(%q) error = %v", tt.in, err)
			}
			if got.Style != tt.want.Style || got.Variant != tt.want.Variant ||
				got.Weight != tt.want.Weight || got.Stretch != tt.want.Stretch ||
				got.Size != tt.want.Size || got.LineHeight != tt.want.LineHeight ||
				!slices.Equal(got.Families, tt.want.Families) {
				t.Errorf("ParseFont(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseFontErrors(t *testing.T) {
	for _, in := range []string{
		"",
		"sans-serif",
		"12px",
		"fancy 12px serif",
		"12px ,",
		"-1px serif",
		"1500 12px serif",
		"12px ''",
	} {
		_, err := ParseFont(in)
		if err == nil {
			t.Errorf("ParseFont(%q) succeeded, want error", in)
			continue
		}
		if !errors.Is(err, ErrMalformedFont) {
			t.Errorf("ParseFont(%q) error %v does not match ErrMalformedFont", in, err)
		}
		var fe *FontError
		if !errors.As(err, &fe) || fe.Font != in {
			t.Errorf("ParseFont(%q) error %v is not a *FontError for the input", in, err)
		}
	}
}

func TestFontStyleFlags(t *testing.T) {
	f, err := ParseFont("bold oblique 10px serif")
	if err != nil {
		t.Fatal(err)
	}
	if !f.Bold() || !f.Italic() {
		t.Errorf("Bold() = %v, Italic() = %v; want both true", f.Bold(), f.Italic())
	}
	f, _ = ParseFont("500 10px serif")
	if f.Bold() || f.Italic() {
		t.Errorf("500 normal: Bold() = %v, Italic() = %v; want both false", f.Bold(), f.Italic())
	}
}
