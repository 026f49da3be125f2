package text

import (
	"image"

	"github.com/slint-ui/femtovg"
)

// GlyphRendering tells the renderer how to draw one glyph.
// It is either RenderAsPath or RenderAsImage.
type GlyphRendering interface {
	isGlyphRendering()
}

// RenderAsPath draws the glyph by filling its outline. Path is in font
// design units with the Y axis up.
type RenderAsPath struct {
	Path *femtovg.Path
}

func (RenderAsPath) isGlyphRendering() {}

// RenderAsImage draws the glyph from a decoded raster strike.
type RenderAsImage struct {
	Image image.Image
}

func (RenderAsImage) isGlyphRendering() {}

// GlyphRenderingRepresentation selects how glyph id is drawn at pixelsPerEm.
//
// A raster strike, when the backend has one for the glyph, wins and is
// decoded on every call. Otherwise the glyph's cached outline is used. It
// reports false when there is neither, including for glyphs that only have
// a strike the backend cannot provide or decode.
func (f *Font) GlyphRenderingRepresentation(id GlyphID, pixelsPerEm uint16) (GlyphRendering, bool) {
	f.mu.Lock()
	bg, ok := f.raster(id, pixelsPerEm)
	f.mu.Unlock()

	if ok {
		img, err := bg.Decode()
		if err == nil {
			femtovg.Logger().Debug("text: raster strike found",
				"glyph", id, "ppem", bg.PPEM, "format", bg.Format)
			return RenderAsImage{Image: img}, true
		}
		femtovg.Logger().Warn("text: raster strike decode failed, falling back to outline",
			"glyph", id, "format", bg.Format, "err", err)
	}

	g, ok := f.Glyph(id)
	if !ok || g.Path == nil {
		return nil, false
	}
	return RenderAsPath{Path: g.Path}, true
}
