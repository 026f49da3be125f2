//go:build !noscalingfont

package text

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"sync"

	gtfont "github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/slint-ui/femtovg"
)

// init registers the scaling backend on package import.
func init() {
	RegisterBackend(BackendScaling, func(ctx *Context) Backend {
		b := scalingBackend{}
		if ctx != nil {
			b.scale = ctx.scale
		}
		return b
	})
}

// scalingBackend implements Backend using golang.org/x/image/font/sfnt.
// Every face it parses shares the context's ScaleContext.
type scalingBackend struct {
	scale *ScaleContext
}

// Name implements Backend.Name.
func (scalingBackend) Name() string { return BackendScaling }

// Parse implements Backend.Parse.
func (b scalingBackend) Parse(data []byte, faceIndex uint32) (Face, error) {
	coll, err := sfnt.ParseCollection(data)
	if err != nil {
		return nil, err
	}
	if int64(faceIndex) >= int64(coll.NumFonts()) {
		return nil, fmt.Errorf("%w: %d of %d", ErrFaceIndexOutOfRange, faceIndex, coll.NumFonts())
	}
	f, err := coll.Font(int(faceIndex))
	if err != nil {
		return nil, err
	}
	upem := f.UnitsPerEm()
	if upem <= 0 {
		return nil, ErrZeroUnitsPerEm
	}
	if upem > math.MaxUint16 {
		return nil, fmt.Errorf("units per em %d out of range", upem)
	}

	sc := b.scale
	if sc == nil {
		sc = NewScaleContext()
	} else {
		sc.Acquire()
	}

	face := &scalingFace{
		font:  f,
		scale: sc,
		ppem:  fixed.I(int(upem)),
	}

	var metricsErr error
	sc.Do(func(buf *sfnt.Buffer) {
		face.metrics, metricsErr = face.readMetrics(buf, uint16(upem))
		face.family, _ = f.Name(buf, sfnt.NameIDFamily)
	})
	if metricsErr != nil {
		sc.Release()
		return nil, metricsErr
	}
	face.metrics.Flags, face.metrics.Weight, face.metrics.Width = describeAspect(data, faceIndex)
	return face, nil
}

// scalingFace is an sfnt face. Glyph loading borrows the shared scratch
// buffer through its ScaleContext.
type scalingFace struct {
	font    *sfnt.Font
	scale   *ScaleContext
	ppem    fixed.Int26_6 // units per em, so loaded values are in font units
	family  string
	metrics RawMetrics

	closeOnce sync.Once
}

// readMetrics reads vertical metrics. sfnt reports ascent and descent as
// positive distances from the baseline, so the height is their sum.
func (f *scalingFace) readMetrics(buf *sfnt.Buffer, upem uint16) (RawMetrics, error) {
	m, err := f.font.Metrics(buf, f.ppem, font.HintingNone)
	if err != nil {
		return RawMetrics{}, err
	}
	ascent := fixedToFloat32(m.Ascent)
	descent := fixedToFloat32(m.Descent)
	leading := fixedToFloat32(m.Height) - ascent - descent

	return RawMetrics{
		UnitsPerEm: upem,
		Ascender:   ascent,
		Descender:  -descent,
		Height:     ascent + descent + leading,
	}, nil
}

// describeAspect approximates the style classification from the font's
// aspect description: regular means weight 400, upright and normal width.
func describeAspect(data []byte, faceIndex uint32) (StyleFlags, uint16, uint16) {
	loaders, err := ot.NewLoaders(bytes.NewReader(data))
	if err != nil || int64(faceIndex) >= int64(len(loaders)) {
		return FlagRegular, DefaultWeight, DefaultWidth
	}
	ld := loaders[faceIndex]
	desc, _ := gtfont.Describe(ld, nil)
	aspect := desc.Aspect

	weight := uint16(math.Round(float64(aspect.Weight)))
	stretch := float32(aspect.Stretch)

	var flags StyleFlags
	if os2, ok := readOS2(ld); ok && os2.FsSelection&fsSelectionOblique != 0 {
		flags |= FlagOblique
	} else if aspect.Style == gtfont.StyleItalic {
		flags |= FlagItalic
	}
	if weight >= 700 {
		flags |= FlagBold
	}
	if weight == 400 && aspect.Style == gtfont.StyleNormal && aspect.Stretch == gtfont.StretchNormal {
		flags |= FlagRegular
	}
	if hasVariationAxes(ld) {
		flags |= FlagVariable
	}
	return flags, weight, WidthClass(stretch)
}

// Metrics implements Face.Metrics.
func (f *scalingFace) Metrics() RawMetrics { return f.metrics }

// Family implements Face.Family.
func (f *scalingFace) Family() string { return f.family }

// GlyphOutline implements Face.GlyphOutline.
func (f *scalingFace) GlyphOutline(id GlyphID) (*femtovg.Path, femtovg.Rect, bool) {
	var (
		path *femtovg.Path
		err  error
	)
	f.scale.Do(func(buf *sfnt.Buffer) {
		var segments sfnt.Segments
		segments, err = f.font.LoadGlyph(buf, sfnt.GlyphIndex(id), f.ppem, nil)
		if err == nil {
			// Segments alias buf; convert before Do returns.
			path = pathFromSegments(segments)
		}
	})
	if err != nil {
		if !errors.Is(err, sfnt.ErrNotFound) && !errors.Is(err, sfnt.ErrColoredGlyph) {
			femtovg.Logger().Debug("text: glyph outline unavailable", "glyph", id, "err", err)
		}
		return nil, femtovg.Rect{}, false
	}
	if path == nil || path.IsEmpty() {
		return nil, femtovg.Rect{}, false
	}
	return path, path.Bounds(), true
}

// Close releases the face's reference on the shared ScaleContext.
func (f *scalingFace) Close() error {
	f.closeOnce.Do(f.scale.Release)
	return nil
}

// pathFromSegments converts sfnt segments (y down) into a y-up path.
func pathFromSegments(segments sfnt.Segments) *femtovg.Path {
	path := femtovg.NewPath()
	open := false
	for _, seg := range segments {
		a := seg.Args
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				path.Close()
			}
			path.MoveTo(fixedToFloat32(a[0].X), -fixedToFloat32(a[0].Y))
			open = true
		case sfnt.SegmentOpLineTo:
			path.LineTo(fixedToFloat32(a[0].X), -fixedToFloat32(a[0].Y))
		case sfnt.SegmentOpQuadTo:
			path.QuadTo(
				fixedToFloat32(a[0].X), -fixedToFloat32(a[0].Y),
				fixedToFloat32(a[1].X), -fixedToFloat32(a[1].Y),
			)
		case sfnt.SegmentOpCubeTo:
			path.CubicTo(
				fixedToFloat32(a[0].X), -fixedToFloat32(a[0].Y),
				fixedToFloat32(a[1].X), -fixedToFloat32(a[1].Y),
				fixedToFloat32(a[2].X), -fixedToFloat32(a[2].Y),
			)
		}
	}
	if open {
		path.Close()
	}
	return path
}

// fixedToFloat32 converts fixed.Int26_6 to float32.
func fixedToFloat32(x fixed.Int26_6) float32 {
	return float32(x) / 64.0
}
