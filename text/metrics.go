package text

import (
	"fmt"
	"math"
)

// FontMetrics describes a font face, either in font design units or scaled
// to a size by Font.Metrics. Only the vertical lengths scale; the style
// classification is the same at every size.
type FontMetrics struct {
	ascender  float32
	descender float32
	height    float32
	flags     StyleFlags
	weight    uint16
	width     uint16
}

func newFontMetrics(raw RawMetrics) FontMetrics {
	return FontMetrics{
		ascender:  raw.Ascender,
		descender: raw.Descender,
		height:    raw.Height,
		flags:     raw.Flags,
		weight:    normalizeWeight(raw.Weight),
		width:     normalizeWidth(raw.Width),
	}
}

// scaled returns m with its lengths multiplied by s.
func (m FontMetrics) scaled(s float32) FontMetrics {
	m.ascender *= s
	m.descender *= s
	m.height *= s
	return m
}

// Ascender returns the distance from the baseline to the top of the highest glyph.
func (m FontMetrics) Ascender() float32 { return m.ascender }

// Descender returns the distance from the baseline to the bottom of the
// lowest descender. It is negative for glyphs reaching below the baseline.
func (m FontMetrics) Descender() float32 { return m.descender }

// Height returns the line height rounded to the nearest integer.
// It is never negative.
func (m FontMetrics) Height() float32 {
	h := float32(math.Round(float64(m.height)))
	if h < 0 || math.IsNaN(float64(h)) {
		return 0
	}
	return h
}

// Regular reports whether the face is the regular style of its family.
func (m FontMetrics) Regular() bool { return m.flags.Has(FlagRegular) }

// Italic reports whether the face is italic.
func (m FontMetrics) Italic() bool { return m.flags.Has(FlagItalic) }

// Bold reports whether the face is bold.
func (m FontMetrics) Bold() bool { return m.flags.Has(FlagBold) }

// Oblique reports whether the face is oblique.
func (m FontMetrics) Oblique() bool { return m.flags.Has(FlagOblique) }

// Variable reports whether the face has variation axes.
func (m FontMetrics) Variable() bool { return m.flags.Has(FlagVariable) }

// Flags returns the style flag set.
func (m FontMetrics) Flags() StyleFlags { return m.flags }

// Weight returns the weight class, 1 to 1000.
func (m FontMetrics) Weight() uint16 { return m.weight }

// Width returns the width class, 1 to 9.
func (m FontMetrics) Width() uint16 { return m.width }

func (m FontMetrics) String() string {
	return fmt.Sprintf("FontMetrics{ascender=%g descender=%g height=%g flags=%v weight=%d width=%d}",
		m.ascender, m.descender, m.height, m.flags, m.weight, m.width)
}
