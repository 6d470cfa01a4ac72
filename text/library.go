package text

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/replay/internal/cache"
	"github.com/gogpu/replay/internal/logging"
)

// Built-in family names.
const (
	FamilyGo     = "go"
	FamilyGoMono = "go mono"
)

// DefaultFaceCacheSize is the number of faces a Library keeps.
const DefaultFaceCacheSize = 64

// family holds up to four styled sources of one family.
type family struct {
	regular, bold, italic, boldItalic *Source
}

// pick returns the closest styled source, preferring to keep the weight.
func (f *family) pick(bold, italic bool) *Source {
	candidates := []*Source{f.regular, f.bold, f.italic, f.boldItalic}
	switch {
	case bold && italic:
		candidates = []*Source{f.boldItalic, f.bold, f.italic, f.regular}
	case bold:
		candidates = []*Source{f.bold, f.regular, f.boldItalic, f.italic}
	case italic:
		candidates = []*Source{f.italic, f.regular, f.boldItalic, f.bold}
	}
	for _, s := range candidates {
		if s != nil {
			return s
		}
	}
	return nil
}

type libraryConfig struct {
	fallback      string
	faceCacheSize int
}

// LibraryOption configures a Library.
type LibraryOption func(*libraryConfig)

// WithFallbackFamily sets the family used when none of a descriptor's
// families is registered. The default is the Go font.
func WithFallbackFamily(name string) LibraryOption {
	return func(c *libraryConfig) {
		c.fallback = strings.ToLower(name)
	}
}

// WithFaceCacheSize bounds the number of faces kept by the library.
func WithFaceCacheSize(n int) LibraryOption {
	return func(c *libraryConfig) {
		c.faceCacheSize = n
	}
}

// Library resolves font descriptors to faces.
//
// Library is safe for concurrent use.
type Library struct {
	mu       sync.RWMutex
	families map[string]*family
	aliases  map[string]string
	fallback string

	faces *cache.Cache[string, *Face]
}

// NewLibrary creates a library preloaded with the Go fonts. The generic
// families sans-serif and serif map to the Go font, monospace to Go Mono.
func NewLibrary(opts ...LibraryOption) *Library {
	cfg := libraryConfig{fallback: FamilyGo, faceCacheSize: DefaultFaceCacheSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	l := &Library{
		families: make(map[string]*family),
		aliases: map[string]string{
			FamilySansSerif: FamilyGo,
			FamilySerif:     FamilyGo,
			FamilyMonospace: FamilyGoMono,
		},
		fallback: cfg.fallback,
		faces:    cache.New[string, *Face](cfg.faceCacheSize),
	}

	builtin := []struct {
		family       string
		bold, italic bool
		data         []byte
	}{
		{FamilyGo, false, false, goregular.TTF},
		{FamilyGo, true, false, gobold.TTF},
		{FamilyGo, false, true, goitalic.TTF},
		{FamilyGo, true, true, gobolditalic.TTF},
		{FamilyGoMono, false, false, gomono.TTF},
		{FamilyGoMono, true, false, gomonobold.TTF},
		{FamilyGoMono, false, true, gomonoitalic.TTF},
		{FamilyGoMono, true, true, gomonobolditalic.TTF},
	}
	for _, b := range builtin {
		if err := l.RegisterData(b.family, b.bold, b.italic, b.data); err != nil {
			// The embedded fonts are known to parse.
			panic(err)
		}
	}
	return l
}

// Register adds src as the styled variant of a family, replacing any
// previous source for that slot. Family names are case-insensitive.
func (l *Library) Register(familyName string, bold, italic bool, src *Source) {
	name := strings.ToLower(strings.TrimSpace(familyName))
	l.mu.Lock()
	fam := l.families[name]
	if fam == nil {
		fam = &family{}
		l.families[name] = fam
	}
	switch {
	case bold && italic:
		fam.boldItalic = src
	case bold:
		fam.bold = src
	case italic:
		fam.italic = src
	default:
		fam.regular = src
	}
	l.mu.Unlock()

	// Faces resolved before the registration may now pick another source.
	l.faces.Clear()
}

// RegisterData parses data and registers it like Register.
func (l *Library) RegisterData(familyName string, bold, italic bool, data []byte) error {
	src, err := NewSource(data)
	if err != nil {
		return fmt.Errorf("text: register %q: %w", familyName, err)
	}
	l.Register(familyName, bold, italic, src)
	return nil
}

// Alias maps a family name, such as a generic family, to a registered
// family.
func (l *Library) Alias(name, target string) {
	l.mu.Lock()
	l.aliases[strings.ToLower(name)] = strings.ToLower(target)
	l.mu.Unlock()
	l.faces.Clear()
}

// Families returns the registered family names, sorted.
func (l *Library) Families() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	names := make([]string, 0, len(l.families))
	for name := range l.families {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether name resolves to a registered family.
func (l *Library) Has(name string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.lookup(name) != nil
}

// lookup resolves a family name through the aliases. Caller must hold
// l.mu.
func (l *Library) lookup(name string) *family {
	name = strings.ToLower(name)
	if target, ok := l.aliases[name]; ok {
		name = target
	}
	return l.families[name]
}

// CheckFont reports whether desc is a well-formed font descriptor. The
// error is a *FontError. Unregistered families are not an error: they
// fall back to the library's fallback family.
func (l *Library) CheckFont(desc string) error {
	f, err := ParseFont(desc)
	if err != nil {
		return err
	}
	if f.Size <= 0 {
		return &FontError{Font: desc, Reason: "font size must be positive"}
	}
	return nil
}

// Face returns the face for a font descriptor. Faces are cached by
// descriptor. The error is a *FontError when desc is malformed.
func (l *Library) Face(desc string) (*Face, error) {
	face, hit, err := l.faces.GetOrCreateErr(desc, func() (*Face, error) {
		return l.resolve(desc)
	})
	if err == nil && !hit {
		logging.Logger().Debug("text: face created", "font", desc, "size", face.Size())
	}
	return face, err
}

// FaceOrDefault is like Face but falls back to the DefaultFont face when
// desc cannot be resolved.
func (l *Library) FaceOrDefault(desc string) *Face {
	face, err := l.Face(desc)
	if err == nil {
		return face
	}
	face, err = l.Face(DefaultFont)
	if err != nil {
		// Only reachable if the fallback family was removed.
		panic(fmt.Sprintf("text: default font unavailable: %v", err))
	}
	return face
}

func (l *Library) resolve(desc string) (*Face, error) {
	if err := l.CheckFont(desc); err != nil {
		return nil, err
	}
	f, _ := ParseFont(desc)

	l.mu.RLock()
	var src *Source
	for _, name := range f.Families {
		if fam := l.lookup(name); fam != nil {
			src = fam.pick(f.Bold(), f.Italic())
			if src != nil {
				break
			}
		}
	}
	if src == nil {
		logging.Logger().Debug("text: no registered family, using fallback",
			"font", desc, "fallback", l.fallback)
		if fam := l.lookup(l.fallback); fam != nil {
			src = fam.pick(f.Bold(), f.Italic())
		}
	}
	l.mu.RUnlock()

	if src == nil {
		return nil, &FontError{Font: desc, Reason: "no usable family", Err: errNoFamily}
	}
	return NewFace(src, f.Size)
}

var errNoFamily = errors.New("fallback family is not registered")
