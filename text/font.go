package text

import (
	"fmt"
	"io"
	"math"
	"sync"

	"github.com/slint-ui/femtovg"
	"github.com/slint-ui/femtovg/text/emoji"
)

// Font is one parsed face of a font blob together with its glyph cache.
//
// Construction parses the face and reads its metrics once; the metrics are
// stored in font design units and scaled on demand. Glyphs are extracted
// lazily and kept for the lifetime of the Font.
//
// Font is safe for concurrent use. Lookups on the same Font are serialized.
type Font struct {
	data       []byte
	faceIndex  uint32
	unitsPerEm uint16
	metrics    FontMetrics
	family     string
	backend    string

	// mu serializes glyph lookups and every access to face.
	mu     sync.Mutex
	face   Face
	glyphs *GlyphCache

	closeOnce sync.Once
}

// glyphRasterPPEM requests the largest available strike when only the
// strike metrics are needed.
const glyphRasterPPEM = math.MaxUint16

// NewFont parses the face at faceIndex within data using the backend of ctx.
// A nil ctx uses the package default context.
//
// data is copied; the caller may reuse it. Any failure is a *FontParseError
// and leaves nothing behind.
func NewFont(data []byte, faceIndex uint32, ctx *Context) (*Font, error) {
	if ctx == nil {
		var err error
		ctx, err = defaultContext()
		if err != nil {
			return nil, &FontParseError{FaceIndex: faceIndex, Err: err}
		}
	}

	b, err := ctx.activeBackend()
	if err != nil {
		return nil, &FontParseError{FaceIndex: faceIndex, Err: err}
	}
	return newFont(b, data, faceIndex)
}

func newFont(b Backend, data []byte, faceIndex uint32) (*Font, error) {
	fail := func(err error) (*Font, error) {
		femtovg.Logger().Warn("text: font construction failed",
			"backend", b.Name(), "face", faceIndex, "err", err)
		return nil, &FontParseError{Backend: b.Name(), FaceIndex: faceIndex, Err: err}
	}

	if len(data) == 0 {
		return fail(ErrEmptyFontData)
	}
	owned := make([]byte, len(data))
	copy(owned, data)

	face, err := parseFace(b, owned, faceIndex)
	if err != nil {
		return fail(err)
	}

	raw := face.Metrics()
	if raw.UnitsPerEm == 0 {
		closeFace(face)
		return fail(ErrZeroUnitsPerEm)
	}

	f := &Font{
		data:       owned,
		faceIndex:  faceIndex,
		unitsPerEm: raw.UnitsPerEm,
		metrics:    newFontMetrics(raw),
		family:     face.Family(),
		backend:    b.Name(),
		face:       face,
		glyphs:     NewGlyphCache(),
	}

	femtovg.Logger().Debug("text: font constructed",
		"backend", f.backend, "face", faceIndex, "family", f.family, "upem", f.unitsPerEm)
	return f, nil
}

// Data returns the font blob. The returned slice must not be modified.
func (f *Font) Data() []byte { return f.data }

// FaceIndex returns the index of the face within the font blob.
func (f *Font) FaceIndex() uint32 { return f.faceIndex }

// UnitsPerEm returns the size of the em square in font design units.
func (f *Font) UnitsPerEm() uint16 { return f.unitsPerEm }

// Family returns the family name, or "" if the font has none.
func (f *Font) Family() string { return f.family }

// Backend returns the name of the backend that parsed the font.
func (f *Font) Backend() string { return f.backend }

// Scale returns the factor converting font design units to the given size.
func (f *Font) Scale(size float32) float32 {
	return size / float32(f.unitsPerEm)
}

// Metrics returns the font metrics scaled to size.
func (f *Font) Metrics(size float32) FontMetrics {
	return f.metrics.scaled(f.Scale(size))
}

// Glyph returns the geometry of glyph id, extracting and caching it on first
// use. It reports false when the font has neither an outline nor a raster
// strike for id; such misses are not cached.
//
// The returned Glyph is a copy; modifying its Path does not affect the cache.
func (f *Font) Glyph(id GlyphID) (Glyph, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	g, ok := f.glyphs.GetOrExtract(id, func() (Glyph, bool) {
		return f.extractGlyph(id)
	})
	if !ok {
		return Glyph{}, false
	}
	return g.clone(), true
}

// extractGlyph asks the backend for an outline, then for raster strike
// metrics. Must be called with mu held.
func (f *Font) extractGlyph(id GlyphID) (Glyph, bool) {
	g, ok := lookup(f.backend, id, func() (Glyph, bool) {
		path, bounds, ok := f.face.GlyphOutline(id)
		if !ok {
			return Glyph{}, false
		}
		return Glyph{Path: path, Metrics: metricsFromBounds(bounds)}, true
	})
	if ok {
		return g, true
	}

	if bg, ok := f.raster(id, glyphRasterPPEM); ok {
		return Glyph{Metrics: metricsFromRaster(bg, f.unitsPerEm)}, true
	}

	femtovg.Logger().Debug("text: glyph not found", "family", f.family, "glyph", id)
	return Glyph{}, false
}

// raster returns the raster strike for id, if the backend has one.
// Must be called with mu held.
func (f *Font) raster(id GlyphID, pixelsPerEm uint16) (*emoji.BitmapGlyph, bool) {
	rf, ok := f.face.(RasterFace)
	if !ok {
		return nil, false
	}
	return lookup(f.backend, id, func() (*emoji.BitmapGlyph, bool) {
		return rf.GlyphRaster(id, pixelsPerEm)
	})
}

// CacheStats returns statistics of the font's glyph cache.
func (f *Font) CacheStats() GlyphCacheStats {
	return f.glyphs.Stats()
}

// CachedGlyphs returns the ids of cached glyphs in ascending order.
func (f *Font) CachedGlyphs() []GlyphID {
	return f.glyphs.IDs()
}

// Close releases backend resources held by the font, such as its reference
// on the shared ScaleContext. Cached glyphs stay readable.
func (f *Font) Close() error {
	var err error
	f.closeOnce.Do(func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		err = closeFace(f.face)
	})
	return err
}

func closeFace(face Face) error {
	if c, ok := face.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// String returns a debug representation that omits the font data.
func (f *Font) String() string {
	return fmt.Sprintf("Font{data: .., face: %d, upem: %d, family: %q, backend: %s, metrics: %v, glyphs: %d}",
		f.faceIndex, f.unitsPerEm, f.family, f.backend, f.metrics, f.glyphs.Len())
}
