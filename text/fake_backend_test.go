package text

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"sync"
	"testing"

	"github.com/slint-ui/femtovg"
	"github.com/slint-ui/femtovg/text/emoji"
)

const fakeBackendName = "fake"

// fakeBackend is an instrumented Backend returning a prepared face.
type fakeBackend struct {
	face     *fakeFace
	err      error
	panicVal any
}

func (b *fakeBackend) Name() string { return fakeBackendName }

func (b *fakeBackend) Parse(data []byte, faceIndex uint32) (Face, error) {
	if b.panicVal != nil {
		panic(b.panicVal)
	}
	if b.err != nil {
		return nil, b.err
	}
	if faceIndex != 0 {
		return nil, ErrFaceIndexOutOfRange
	}
	if b.face.noRaster {
		return outlineOnlyFace{b.face}, nil
	}
	return b.face, nil
}

// fakeFace counts extraction calls per glyph.
type fakeFace struct {
	metrics  RawMetrics
	family   string
	outlines map[GlyphID]*femtovg.Path
	rasters  map[GlyphID]*emoji.BitmapGlyph
	panicOn  map[GlyphID]bool
	noRaster bool

	mu           sync.Mutex
	outlineCalls map[GlyphID]int
	rasterCalls  map[GlyphID]int
	rasterPPEMs  []uint16
	closed       int
}

func newFakeFace(m RawMetrics) *fakeFace {
	return &fakeFace{
		metrics:      m,
		family:       "Fake Sans",
		outlines:     make(map[GlyphID]*femtovg.Path),
		rasters:      make(map[GlyphID]*emoji.BitmapGlyph),
		panicOn:      make(map[GlyphID]bool),
		outlineCalls: make(map[GlyphID]int),
		rasterCalls:  make(map[GlyphID]int),
	}
}

func (f *fakeFace) Metrics() RawMetrics { return f.metrics }
func (f *fakeFace) Family() string      { return f.family }

func (f *fakeFace) GlyphOutline(id GlyphID) (*femtovg.Path, femtovg.Rect, bool) {
	f.mu.Lock()
	f.outlineCalls[id]++
	f.mu.Unlock()

	if f.panicOn[id] {
		panic("malformed glyph")
	}
	p, ok := f.outlines[id]
	if !ok {
		return nil, femtovg.Rect{}, false
	}
	// Hand out a fresh path like a real backend does.
	p = p.Clone()
	return p, p.Bounds(), true
}

func (f *fakeFace) GlyphRaster(id GlyphID, ppem uint16) (*emoji.BitmapGlyph, bool) {
	f.mu.Lock()
	f.rasterCalls[id]++
	f.rasterPPEMs = append(f.rasterPPEMs, ppem)
	f.mu.Unlock()

	bg, ok := f.rasters[id]
	return bg, ok
}

func (f *fakeFace) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed++
	return nil
}

func (f *fakeFace) outlineCount(id GlyphID) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.outlineCalls[id]
}

func (f *fakeFace) rasterCount(id GlyphID) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rasterCalls[id]
}

// outlineOnlyFace hides the raster capability of a fakeFace.
type outlineOnlyFace struct {
	f *fakeFace
}

func (o outlineOnlyFace) Metrics() RawMetrics { return o.f.Metrics() }
func (o outlineOnlyFace) Family() string      { return o.f.Family() }
func (o outlineOnlyFace) GlyphOutline(id GlyphID) (*femtovg.Path, femtovg.Rect, bool) {
	return o.f.GlyphOutline(id)
}

// testMetrics is a face with upem 1000, ascender 800 and descender -200.
func testMetrics() RawMetrics {
	return RawMetrics{
		UnitsPerEm: 1000,
		Ascender:   800,
		Descender:  -200,
		Height:     1000,
		Flags:      FlagRegular,
		Weight:     400,
		Width:      5,
	}
}

// trianglePath returns a closed triangle spanning (x0,0)-(x0+w,h).
func trianglePath(x0, w, h float32) *femtovg.Path {
	p := femtovg.NewPath()
	p.MoveTo(x0, 0)
	p.LineTo(x0+w, 0)
	p.LineTo(x0+w/2, h)
	p.Close()
	return p
}

// encodePNG encodes a solid w x h PNG image.
func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{G: 0xff, A: 0xff})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

// pngStrike returns a solid w x h PNG strike.
func pngStrike(t *testing.T, id GlyphID, w, h int, ppem uint16) *emoji.BitmapGlyph {
	t.Helper()

	return &emoji.BitmapGlyph{
		GlyphID: uint16(id),
		Data:    encodePNG(t, w, h),
		Format:  emoji.FormatPNG,
		Width:   w,
		Height:  h,
		OriginX: 1,
		OriginY: -2,
		PPEM:    ppem,
	}
}

// newFakeFont builds a Font over face through the fake backend.
func newFakeFont(t *testing.T, face *fakeFace) *Font {
	t.Helper()

	f, err := newFont(&fakeBackend{face: face}, []byte{0}, 0)
	if err != nil {
		t.Fatalf("newFont() error = %v", err)
	}
	return f
}

// registerFake installs b as the "fake" backend for the duration of the test.
func registerFake(t *testing.T, b *fakeBackend) {
	t.Helper()

	RegisterBackend(fakeBackendName, func(*Context) Backend { return b })
	t.Cleanup(func() { UnregisterBackend(fakeBackendName) })
}

func requireParseError(t *testing.T, err error, want error) {
	t.Helper()

	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, ErrFontParse) {
		t.Errorf("errors.Is(%v, ErrFontParse) = false", err)
	}
	var pe *FontParseError
	if !errors.As(err, &pe) {
		t.Errorf("error %T is not *FontParseError", err)
	}
	if want != nil && !errors.Is(err, want) {
		t.Errorf("error = %v, want wrapping %v", err, want)
	}
}
