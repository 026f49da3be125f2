package text

import (
	"fmt"

	"github.com/slint-ui/femtovg"
	"github.com/slint-ui/femtovg/text/emoji"
)

// GlyphID is a unique identifier for a glyph within a font.
// The glyph ID is assigned by the font file and is font-specific.
type GlyphID uint16

// GlyphMetrics describes the placement of a glyph in font design units.
type GlyphMetrics struct {
	Width    float32
	Height   float32
	BearingX float32
	// BearingY is the top of the glyph above the baseline.
	BearingY float32
}

// Glyph is the cached geometry of one glyph.
//
// Path holds the outline in font units with the Y axis up. A nil Path marks
// a glyph that only exists as an embedded raster strike; Metrics then carry
// the strike's placement converted to font units.
type Glyph struct {
	Path    *femtovg.Path
	Metrics GlyphMetrics
}

// IsRaster reports whether the glyph has no outline and must be drawn from
// its raster strike.
func (g Glyph) IsRaster() bool {
	return g.Path == nil
}

// clone returns a copy that shares no mutable state with g.
func (g Glyph) clone() Glyph {
	return Glyph{Path: g.Path.Clone(), Metrics: g.Metrics}
}

func (g Glyph) String() string {
	kind := "outline"
	if g.IsRaster() {
		kind = "raster"
	}
	return fmt.Sprintf("Glyph{%s %gx%g bearing=(%g,%g)}",
		kind, g.Metrics.Width, g.Metrics.Height, g.Metrics.BearingX, g.Metrics.BearingY)
}

// metricsFromBounds derives glyph metrics from an outline bounding box.
func metricsFromBounds(b femtovg.Rect) GlyphMetrics {
	return GlyphMetrics{
		Width:    b.Width(),
		Height:   b.Height(),
		BearingX: b.MinX,
		BearingY: b.MaxY,
	}
}

// metricsFromRaster converts strike placement into font units.
func metricsFromRaster(bg *emoji.BitmapGlyph, unitsPerEm uint16) GlyphMetrics {
	scale := bg.Scale(unitsPerEm)
	return GlyphMetrics{
		Width:    float32(bg.Width) * scale,
		Height:   float32(bg.Height) * scale,
		BearingX: bg.OriginX * scale,
		BearingY: (bg.OriginY + float32(bg.Height)) * scale,
	}
}
