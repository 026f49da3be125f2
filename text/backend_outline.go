//go:build !nooutlinefont

package text

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/font/opentype/tables"

	"github.com/slint-ui/femtovg"
	"github.com/slint-ui/femtovg/text/emoji"
)

// init registers the outline backend on package import.
func init() {
	RegisterBackend(BackendOutline, func(*Context) Backend {
		return outlineBackend{}
	})
}

// outlineBackend implements Backend using go-text/typesetting.
type outlineBackend struct{}

// Name implements Backend.Name.
func (outlineBackend) Name() string { return BackendOutline }

// Parse implements Backend.Parse.
func (outlineBackend) Parse(data []byte, faceIndex uint32) (Face, error) {
	loaders, err := ot.NewLoaders(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if int64(faceIndex) >= int64(len(loaders)) {
		return nil, fmt.Errorf("%w: %d of %d", ErrFaceIndexOutOfRange, faceIndex, len(loaders))
	}
	ld := loaders[faceIndex]

	rawHead, err := ld.RawTable(tagHead)
	if err != nil {
		return nil, err
	}
	head, _, err := tables.ParseHead(rawHead)
	if err != nil {
		return nil, err
	}
	if head.UnitsPerEm == 0 {
		return nil, ErrZeroUnitsPerEm
	}

	ft, err := font.NewFont(ld)
	if err != nil {
		return nil, err
	}

	f := &outlineFace{
		face:   font.NewFace(ft),
		family: ft.Describe().Family,
	}
	f.metrics = f.readMetrics(ld)
	return f, nil
}

// outlineFace is a go-text face. font.Face keeps internal caches and is not
// safe for concurrent use, so every access goes through mu.
type outlineFace struct {
	mu      sync.Mutex
	face    *font.Face
	family  string
	metrics RawMetrics
}

// readMetrics reads vertical metrics and the OS/2 style classification.
func (f *outlineFace) readMetrics(ld *ot.Loader) RawMetrics {
	m := RawMetrics{
		UnitsPerEm: f.face.Upem(),
		Weight:     DefaultWeight,
		Width:      DefaultWidth,
	}

	if ext, ok := f.face.FontHExtents(); ok {
		m.Ascender = ext.Ascender
		m.Descender = ext.Descender
		m.Height = ext.Ascender - ext.Descender + ext.LineGap
	}

	if os2, ok := readOS2(ld); ok {
		m.Weight = os2.USWeightClass
		m.Width = os2.USWidthClass
		m.Flags |= flagsFromSelection(os2.FsSelection)
	}

	if hasVariationAxes(ld) {
		m.Flags |= FlagVariable
	}
	return m
}

// Metrics implements Face.Metrics.
func (f *outlineFace) Metrics() RawMetrics { return f.metrics }

// Family implements Face.Family.
func (f *outlineFace) Family() string { return f.family }

// GlyphOutline implements Face.GlyphOutline.
func (f *outlineFace) GlyphOutline(id GlyphID) (*femtovg.Path, femtovg.Rect, bool) {
	outline, ok := f.outline(id)
	if !ok || len(outline.Segments) == 0 {
		return nil, femtovg.Rect{}, false
	}

	path := femtovg.NewPath()
	open := false
	for _, seg := range outline.Segments {
		a := seg.Args
		switch seg.Op {
		case ot.SegmentOpMoveTo:
			if open {
				path.Close()
			}
			path.MoveTo(a[0].X, a[0].Y)
			open = true
		case ot.SegmentOpLineTo:
			path.LineTo(a[0].X, a[0].Y)
		case ot.SegmentOpQuadTo:
			path.QuadTo(a[0].X, a[0].Y, a[1].X, a[1].Y)
		case ot.SegmentOpCubeTo:
			path.CubicTo(a[0].X, a[0].Y, a[1].X, a[1].Y, a[2].X, a[2].Y)
		}
	}
	if open {
		path.Close()
	}
	if path.IsEmpty() {
		return nil, femtovg.Rect{}, false
	}
	return path, path.Bounds(), true
}

// outline reads the segments of glyph id. go-text may panic on malformed
// glyph data; mu is released either way.
func (f *outlineFace) outline(id GlyphID) (font.GlyphOutline, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.face.GlyphDataOutline(tables.GlyphID(id))
}

// GlyphRaster implements RasterFace.GlyphRaster.
func (f *outlineFace) GlyphRaster(id GlyphID, pixelsPerEm uint16) (*emoji.BitmapGlyph, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	sizes := f.face.BitmapSizes()
	ppems := make([]uint16, len(sizes))
	for i, s := range sizes {
		ppems[i] = s.YPpem
	}
	i, err := emoji.SelectStrike(ppems, pixelsPerEm, emoji.StrikeBestFit)
	if err != nil {
		return nil, false
	}
	strike := sizes[i]

	// Extents depend on the ppem; restore the outline extents afterwards.
	f.face.SetPpem(strike.XPpem, strike.YPpem)
	defer f.face.SetPpem(0, 0)

	bm, ok := f.face.GlyphDataBitmap(tables.GlyphID(id))
	if !ok {
		return nil, false
	}
	format, ok := bitmapFormat(bm.Format)
	if !ok {
		return nil, false
	}
	ext, ok := f.face.GlyphExtents(font.GID(id))
	if !ok {
		return nil, false
	}

	// Extents are in font units; convert back to strike pixels.
	toPixels := float32(1)
	if upem := f.face.Upem(); upem != 0 && strike.YPpem != 0 {
		toPixels = float32(strike.YPpem) / float32(upem)
	}
	return &emoji.BitmapGlyph{
		GlyphID: uint16(id),
		Data:    bm.Data,
		Format:  format,
		Width:   bm.Width,
		Height:  bm.Height,
		OriginX: ext.XBearing * toPixels,
		OriginY: (ext.YBearing + ext.Height) * toPixels,
		PPEM:    strike.YPpem,
	}, true
}

func bitmapFormat(f font.BitmapFormat) (emoji.BitmapFormat, bool) {
	switch f {
	case font.PNG:
		return emoji.FormatPNG, true
	case font.JPG:
		return emoji.FormatJPEG, true
	case font.TIFF:
		return emoji.FormatTIFF, true
	case font.BlackAndWhite:
		return emoji.FormatBlackAndWhite, true
	default:
		return 0, false
	}
}
