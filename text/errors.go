package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrFontParse matches every font construction failure via errors.Is.
	ErrFontParse = errors.New("text: font parse error")

	// ErrNoBackend is returned when no font backend is compiled in or registered.
	ErrNoBackend = errors.New("text: no font backend available")

	// ErrZeroUnitsPerEm is returned when a face reports zero units per em.
	ErrZeroUnitsPerEm = errors.New("text: units per em is zero")

	// ErrFaceIndexOutOfRange is returned when the face index exceeds the
	// number of faces in a collection.
	ErrFaceIndexOutOfRange = errors.New("text: face index out of range")

	// ErrUnknownFont is returned for a FontID not known to a Context.
	ErrUnknownFont = errors.New("text: unknown font id")

	// ErrContextClosed is returned when a closed Context is used.
	ErrContextClosed = errors.New("text: context closed")
)

// FontParseError is returned when a font blob cannot be turned into a Font.
type FontParseError struct {
	// Backend is the name of the backend that rejected the data.
	Backend string

	// FaceIndex is the requested face within the blob.
	FaceIndex uint32

	// Err is the underlying cause.
	Err error
}

func (e *FontParseError) Error() string {
	if e.Backend == "" {
		return fmt.Sprintf("text: parse face %d: %v", e.FaceIndex, e.Err)
	}
	return fmt.Sprintf("text: %s: parse face %d: %v", e.Backend, e.FaceIndex, e.Err)
}

// Unwrap returns the underlying cause.
func (e *FontParseError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrFontParse.
func (e *FontParseError) Is(target error) bool {
	return target == ErrFontParse
}

// panicError wraps a value recovered from a backend panic.
type panicError struct {
	value any
}

func (e *panicError) Error() string {
	return fmt.Sprintf("backend panic: %v", e.value)
}
