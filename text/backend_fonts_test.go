//go:build !nooutlinefont && !noscalingfont

package text

import (
	"bytes"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

var realBackends = []string{BackendOutline, BackendScaling}

// newRealFont parses data through the named backend.
func newRealFont(t *testing.T, backend string, data []byte) *Font {
	t.Helper()

	ctx, err := NewContext(WithBackend(backend))
	if err != nil {
		t.Fatalf("NewContext(%s) error = %v", backend, err)
	}
	t.Cleanup(func() { ctx.Close() })

	f, err := NewFont(data, 0, ctx)
	if err != nil {
		t.Fatalf("NewFont(%s) error = %v", backend, err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

// glyphIndex maps r to a glyph id of data.
func glyphIndex(t *testing.T, data []byte, r rune) GlyphID {
	t.Helper()

	f, err := sfnt.Parse(data)
	if err != nil {
		t.Fatalf("sfnt.Parse: %v", err)
	}
	var buf sfnt.Buffer
	gi, err := f.GlyphIndex(&buf, r)
	if err != nil || gi == 0 {
		t.Fatalf("GlyphIndex(%q) = %d, %v", r, gi, err)
	}
	return GlyphID(gi)
}

func TestDefaultBackend(t *testing.T) {
	if got := DefaultBackend(); got != BackendOutline {
		t.Errorf("DefaultBackend() = %q, want %q", got, BackendOutline)
	}

	ctx, err := NewContext()
	if err != nil {
		t.Fatal(err)
	}
	defer ctx.Close()
	if ctx.Backend() != BackendOutline {
		t.Errorf("NewContext().Backend() = %q, want %q", ctx.Backend(), BackendOutline)
	}
}

func TestBackends_GoRegularMetrics(t *testing.T) {
	for _, backend := range realBackends {
		t.Run(backend, func(t *testing.T) {
			f := newRealFont(t, backend, goregular.TTF)

			if f.UnitsPerEm() != 2048 {
				t.Errorf("UnitsPerEm() = %d, want 2048", f.UnitsPerEm())
			}
			if f.Backend() != backend {
				t.Errorf("Backend() = %q, want %q", f.Backend(), backend)
			}
			if !strings.HasPrefix(f.Family(), "Go") {
				t.Errorf("Family() = %q, want Go family", f.Family())
			}

			// At size == upem the metrics are the raw design units.
			m := f.Metrics(2048)
			if m.Ascender() != 1935 || m.Descender() != -432 || m.Height() != 2367 {
				t.Errorf("Metrics(2048) = %v, want ascender 1935, descender -432, height 2367", m)
			}

			m = f.Metrics(16)
			if !approxEqual(m.Ascender(), 1935*16/2048.0, 1e-3) {
				t.Errorf("Metrics(16).Ascender() = %v", m.Ascender())
			}
			if m.Height() != 18 { // 18.49
				t.Errorf("Metrics(16).Height() = %v, want 18", m.Height())
			}

			if !m.Regular() || m.Italic() || m.Bold() || m.Oblique() || m.Variable() {
				t.Errorf("flags = %v, want regular", m.Flags())
			}
			if m.Weight() != 400 || m.Width() != 5 {
				t.Errorf("weight/width = %d/%d, want 400/5", m.Weight(), m.Width())
			}
		})
	}
}

func TestBackends_StyleClassification(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		backend string
		bold    bool
		italic  bool
		regular bool
		weight  uint16
	}{
		// The outline backend reads fsSelection; the scaling backend
		// derives bold from the weight class.
		{"bold/outline", gobold.TTF, BackendOutline, true, false, false, 600},
		{"bold/scaling", gobold.TTF, BackendScaling, false, false, false, 600},
		{"italic/outline", goitalic.TTF, BackendOutline, false, true, false, 400},
		{"italic/scaling", goitalic.TTF, BackendScaling, false, true, false, 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newRealFont(t, tt.backend, tt.data).Metrics(12)

			if m.Bold() != tt.bold || m.Italic() != tt.italic || m.Regular() != tt.regular {
				t.Errorf("flags = %v, want bold=%v italic=%v regular=%v",
					m.Flags(), tt.bold, tt.italic, tt.regular)
			}
			if m.Weight() != tt.weight {
				t.Errorf("Weight() = %d, want %d", m.Weight(), tt.weight)
			}
		})
	}
}

func TestBackends_Glyphs(t *testing.T) {
	idA := glyphIndex(t, goregular.TTF, 'A')
	idSpace := glyphIndex(t, goregular.TTF, ' ')

	for _, backend := range realBackends {
		t.Run(backend, func(t *testing.T) {
			f := newRealFont(t, backend, goregular.TTF)

			g, ok := f.Glyph(idA)
			if !ok {
				t.Fatal("Glyph('A') not found")
			}
			if g.IsRaster() || g.Path.IsEmpty() {
				t.Fatalf("Glyph('A') = %v, want outline", g)
			}
			// 'A' sits on the baseline and rises toward the cap height.
			if g.Metrics.Width <= 0 || g.Metrics.Height <= 0 {
				t.Errorf("Metrics = %+v, want positive extent", g.Metrics)
			}
			if g.Metrics.BearingY <= 1000 || g.Metrics.BearingY > 1935 {
				t.Errorf("BearingY = %v, want cap height in font units", g.Metrics.BearingY)
			}
			b := g.Path.Bounds()
			if b.MinY < -1 {
				t.Errorf("Bounds().MinY = %v, want glyph above the baseline (y up)", b.MinY)
			}

			again, _ := f.Glyph(idA)
			if !again.Path.Equal(g.Path) {
				t.Error("second lookup returned different geometry")
			}

			if _, ok := f.Glyph(idSpace); ok {
				t.Error("Glyph(' ') found, want absent (no contours)")
			}
			if _, ok := f.Glyph(5000); ok {
				t.Error("Glyph(5000) found beyond the glyph count")
			}

			r, ok := f.GlyphRenderingRepresentation(idA, 32)
			if !ok {
				t.Fatal("GlyphRenderingRepresentation('A') not found")
			}
			if _, isPath := r.(RenderAsPath); !isPath {
				t.Errorf("got %T, want RenderAsPath", r)
			}
			if _, ok := f.GlyphRenderingRepresentation(idSpace, 32); ok {
				t.Error("GlyphRenderingRepresentation(' ') found")
			}
		})
	}
}

func TestBackends_SameOutline(t *testing.T) {
	id := glyphIndex(t, goregular.TTF, 'H')

	outline, _ := newRealFont(t, BackendOutline, goregular.TTF).Glyph(id)
	scaling, _ := newRealFont(t, BackendScaling, goregular.TTF).Glyph(id)

	if outline.Path == nil || scaling.Path == nil {
		t.Fatal("Glyph('H') missing from a backend")
	}
	const tol = 0.5
	if !approxEqual(outline.Metrics.Width, scaling.Metrics.Width, tol) ||
		!approxEqual(outline.Metrics.Height, scaling.Metrics.Height, tol) ||
		!approxEqual(outline.Metrics.BearingX, scaling.Metrics.BearingX, tol) ||
		!approxEqual(outline.Metrics.BearingY, scaling.Metrics.BearingY, tol) {
		t.Errorf("metrics differ: outline %+v, scaling %+v", outline.Metrics, scaling.Metrics)
	}
}

func TestBackends_ParseErrors(t *testing.T) {
	corrupt := append([]byte(nil), goregular.TTF...)
	copy(corrupt, "XXXX")

	tests := []struct {
		name      string
		data      []byte
		faceIndex uint32
		want      error
	}{
		{"garbage", []byte("definitely not a font"), 0, nil},
		{"truncated", goregular.TTF[:64], 0, nil},
		{"bad magic", corrupt, 0, nil},
		{"empty", nil, 0, ErrEmptyFontData},
		{"face index", goregular.TTF, 3, ErrFaceIndexOutOfRange},
	}

	for _, backend := range realBackends {
		for _, tt := range tests {
			t.Run(backend+"/"+tt.name, func(t *testing.T) {
				ctx, err := NewContext(WithBackend(backend))
				if err != nil {
					t.Fatal(err)
				}
				defer ctx.Close()

				f, err := NewFont(tt.data, tt.faceIndex, ctx)
				if f != nil {
					t.Error("NewFont returned a font on failure")
				}
				requireParseError(t, err, tt.want)
			})
		}
	}
}

func TestBackends_StrikeSupport(t *testing.T) {
	data, space, _ := strikeFont(t)

	outline := newRealFont(t, BackendOutline, data)
	if r, ok := outline.GlyphRenderingRepresentation(space, 32); !ok {
		t.Error("outline backend: strike-only glyph not found")
	} else if _, isImage := r.(RenderAsImage); !isImage {
		t.Errorf("outline backend: got %T, want RenderAsImage", r)
	}

	// The scaling backend reads outlines only.
	scaling := newRealFont(t, BackendScaling, data)
	if r, ok := scaling.GlyphRenderingRepresentation(space, 32); ok {
		t.Errorf("scaling backend: got %T for a strike-only glyph", r)
	}
	if _, ok := scaling.Glyph(space); ok {
		t.Error("scaling backend: Glyph(' ') found")
	}
}

func TestBackends_CorruptedFonts(t *testing.T) {
	if testing.Short() {
		t.Skip("parses many corrupted fonts")
	}

	rng := rand.New(rand.NewPCG(1, 2))
	for _, backend := range realBackends {
		t.Run(backend, func(t *testing.T) {
			ctx, err := NewContext(WithBackend(backend))
			if err != nil {
				t.Fatal(err)
			}
			defer ctx.Close()

			parsed := 0
			for round := 0; round < 40; round++ {
				data := bytes.Clone(goregular.TTF)
				for i := 0; i < 64; i++ {
					data[rng.IntN(len(data))] = byte(rng.Uint32())
				}
				f, err := NewFont(data, 0, ctx)
				if err != nil {
					continue
				}
				parsed++

				// A raster lookup follows every outline lookup, so a panic in
				// one is followed by a call that needs the same face.
				done := make(chan struct{})
				go func() {
					defer close(done)
					for id := GlyphID(0); id < 800; id++ {
						f.Glyph(id)
						f.GlyphRenderingRepresentation(id, 32)
					}
				}()
				select {
				case <-done:
				case <-time.After(10 * time.Second):
					t.Fatalf("round %d: glyph lookups blocked on a corrupted font", round)
				}
				f.Close()
			}
			if parsed == 0 {
				t.Skip("no corrupted font survived parsing")
			}
		})
	}
}
