package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrMalformedFont is matched by every FontError.
	ErrMalformedFont = errors.New("text: malformed font")
)

// FontError reports a font descriptor that could not be used.
type FontError struct {
	// Font is the offending descriptor.
	Font string

	// Reason describes the problem.
	Reason string

	// Err is the underlying parse error, if any.
	Err error
}

func (e *FontError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("text: malformed font %q: %s: %v", e.Font, e.Reason, e.Err)
	}
	return fmt.Sprintf("text: malformed font %q: %s", e.Font, e.Reason)
}

// Unwrap returns the underlying error.
func (e *FontError) Unwrap() error { return e.Err }

// Is reports whether target is ErrMalformedFont.
func (e *FontError) Is(target error) bool { return target == ErrMalformedFont }
