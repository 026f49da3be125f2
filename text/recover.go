package text

import (
	"github.com/slint-ui/femtovg"
)

// parseFace calls b.Parse, turning a backend panic into an error.
func parseFace(b Backend, data []byte, faceIndex uint32) (face Face, err error) {
	defer func() {
		if r := recover(); r != nil {
			femtovg.Logger().Warn("text: backend panicked while parsing",
				"backend", b.Name(), "face", faceIndex, "panic", r)
			face, err = nil, &panicError{value: r}
		}
	}()
	return b.Parse(data, faceIndex)
}

// lookup calls fn, treating a backend panic as absence. A malformed glyph
// must not make the rest of the font unusable.
func lookup[T any](backend string, id GlyphID, fn func() (T, bool)) (v T, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			femtovg.Logger().Warn("text: backend panicked during glyph lookup",
				"backend", backend, "glyph", id, "panic", r)
			var zero T
			v, ok = zero, false
		}
	}()
	return fn()
}
