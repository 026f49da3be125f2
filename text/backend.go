package text

import (
	"sort"
	"strings"
	"sync"

	"github.com/slint-ui/femtovg"
	"github.com/slint-ui/femtovg/text/emoji"
)

// Names of the built-in font backends.
const (
	// BackendOutline parses fonts with go-text/typesetting. It exposes
	// outlines, embedded raster strikes and OS/2 style flags.
	BackendOutline = "outline"

	// BackendScaling parses fonts with golang.org/x/image/font/sfnt through
	// a shared ScaleContext. It exposes outlines only.
	BackendScaling = "scaling"
)

// Backend parses font blobs into faces.
//
// Implementations must be safe for concurrent use; the faces they return
// are only used under the owning Font's lock.
type Backend interface {
	// Name returns the registry name of the backend.
	Name() string

	// Parse parses the face at faceIndex within data.
	// data is owned by the caller and outlives the returned Face.
	Parse(data []byte, faceIndex uint32) (Face, error)
}

// Face is one parsed font face as seen by a Backend.
type Face interface {
	// Metrics returns the unscaled face metrics in font design units.
	Metrics() RawMetrics

	// GlyphOutline returns the glyph outline in font units, y up, and its
	// bounding box. It reports false when the glyph has no outline.
	GlyphOutline(id GlyphID) (*femtovg.Path, femtovg.Rect, bool)

	// Family returns the family name, or "" if the face has none.
	Family() string
}

// RasterFace is a Face that can also return embedded raster strikes.
type RasterFace interface {
	Face

	// GlyphRaster returns the strike for id best matching pixelsPerEm.
	// It reports false when the face has no strike for the glyph.
	GlyphRaster(id GlyphID, pixelsPerEm uint16) (*emoji.BitmapGlyph, bool)
}

// RawMetrics are face metrics in font design units.
type RawMetrics struct {
	UnitsPerEm uint16

	// Ascender is positive, Descender is negative.
	Ascender  float32
	Descender float32
	Height    float32

	Flags  StyleFlags
	Weight uint16
	Width  uint16
}

// StyleFlags classifies a face's style.
type StyleFlags uint8

// Style flags.
const (
	FlagRegular StyleFlags = 1 << iota
	FlagItalic
	FlagBold
	FlagOblique
	FlagVariable
)

var styleFlagNames = [...]string{"regular", "italic", "bold", "oblique", "variable"}

// Has reports whether all flags in f2 are set in f.
func (f StyleFlags) Has(f2 StyleFlags) bool {
	return f&f2 == f2
}

// String returns the set flags joined by "|", or "none".
func (f StyleFlags) String() string {
	if f == 0 {
		return "none"
	}
	var parts []string
	for i, name := range styleFlagNames {
		if f&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, "|")
}

// Default weight and width classes.
const (
	DefaultWeight uint16 = 400
	DefaultWidth  uint16 = 5
)

// normalizeWeight clamps a weight class into [1, 1000]; 0 means unset.
func normalizeWeight(w uint16) uint16 {
	switch {
	case w == 0:
		return DefaultWeight
	case w > 1000:
		return 1000
	default:
		return w
	}
}

// normalizeWidth maps width classes outside [1, 9] to normal.
func normalizeWidth(w uint16) uint16 {
	if w < 1 || w > 9 {
		return DefaultWidth
	}
	return w
}

// widthClasses maps exact stretch ratios to OS/2 width classes.
var widthClasses = [...]struct {
	stretch float32
	class   uint16
}{
	{0.5, 1},
	{0.625, 2},
	{0.75, 3},
	{0.875, 4},
	{1.0, 5},
	{1.125, 6},
	{1.25, 7},
	{1.5, 8},
	{2.0, 9},
}

// WidthClass converts a stretch ratio into an OS/2 width class (1-9).
// Only the nine standard ratios map to their class; anything else is 5.
func WidthClass(stretch float32) uint16 {
	for _, wc := range widthClasses {
		if stretch == wc.stretch {
			return wc.class
		}
	}
	return DefaultWidth
}

// BackendFactory creates a backend bound to a text context.
// A factory may return nil when the backend is not compiled in.
type BackendFactory func(*Context) Backend

var (
	registryMu sync.RWMutex
	backends   = make(map[string]BackendFactory)
	// Priority order for backend selection (first available wins).
	backendPriority = []string{BackendOutline, BackendScaling}
)

// RegisterBackend registers a backend factory with the given name.
// If a backend with the same name is already registered, it is replaced.
func RegisterBackend(name string, factory BackendFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends[name] = factory
}

// UnregisterBackend removes a backend from the registry.
// This is useful for testing.
func UnregisterBackend(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// AvailableBackends returns the sorted names of registered backends whose
// factory produces a backend.
func AvailableBackends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name, factory := range backends {
		if factory(nil) != nil {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// newBackend returns the named backend bound to ctx, or nil.
func newBackend(name string, ctx *Context) Backend {
	registryMu.RLock()
	defer registryMu.RUnlock()

	factory, ok := backends[name]
	if !ok {
		return nil
	}
	return factory(ctx)
}

// defaultBackend returns the best available backend bound to ctx.
// Returns nil if no backend is available.
func defaultBackend(ctx *Context) Backend {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range backendPriority {
		if factory, ok := backends[name]; ok {
			if b := factory(ctx); b != nil {
				return b
			}
		}
	}

	// Fallback: first available in name order.
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if b := backends[name](ctx); b != nil {
			return b
		}
	}
	return nil
}

// DefaultBackend returns the name of the backend a new Context uses when
// WithBackend is not given, or "" if none is available.
func DefaultBackend() string {
	if b := defaultBackend(nil); b != nil {
		return b.Name()
	}
	return ""
}
