package emoji

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/tiff"
)

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Bitmap strike errors.
var (
	// ErrUnsupportedBitmapFormat indicates an unsupported bitmap format.
	ErrUnsupportedBitmapFormat = errors.New("emoji: unsupported bitmap format")

	// ErrInvalidBitmapData indicates the strike data is shorter than its
	// declared dimensions or has no pixels.
	ErrInvalidBitmapData = errors.New("emoji: invalid bitmap data")

	// ErrNoStrikeAvailable indicates no bitmap strike is available.
	ErrNoStrikeAvailable = errors.New("emoji: no bitmap strike available")
)

// BitmapFormat indicates the format of embedded bitmap data.
type BitmapFormat int

const (
	// FormatPNG is PNG-compressed bitmap data.
	FormatPNG BitmapFormat = iota

	// FormatJPEG is JPEG-compressed bitmap data.
	FormatJPEG

	// FormatTIFF is TIFF-compressed bitmap data.
	FormatTIFF

	// FormatBlackAndWhite is a packed 1-bit image, most significant bit
	// first, rows not padded.
	FormatBlackAndWhite
)

// bitmapFormatNames maps BitmapFormat to string names.
var bitmapFormatNames = [...]string{
	FormatPNG:           "PNG",
	FormatJPEG:          "JPEG",
	FormatTIFF:          "TIFF",
	FormatBlackAndWhite: "BlackAndWhite",
}

// String returns the string name of the bitmap format.
func (f BitmapFormat) String() string {
	if f >= 0 && int(f) < len(bitmapFormatNames) {
		return bitmapFormatNames[f]
	}
	return unknownStr
}

// BitmapGlyph is a pre-rendered glyph image taken from an embedded strike.
type BitmapGlyph struct {
	// GlyphID is the glyph ID this bitmap represents.
	GlyphID uint16

	// Data contains the encoded bitmap bytes.
	Data []byte

	// Format indicates how Data is encoded.
	Format BitmapFormat

	// Width is the bitmap width in pixels.
	Width int

	// Height is the bitmap height in pixels.
	Height int

	// OriginX is the horizontal bearing of the bitmap's left edge, in pixels.
	OriginX float32

	// OriginY is the vertical position of the bitmap's bottom edge relative
	// to the baseline, in pixels, y up.
	OriginY float32

	// PPEM is the pixels-per-em of the strike the bitmap was taken from.
	PPEM uint16
}

// Scale returns the factor converting strike pixels into font units for a
// font with the given units per em. It returns 1 when PPEM is unknown.
func (b *BitmapGlyph) Scale(unitsPerEm uint16) float32 {
	if b.PPEM == 0 {
		return 1
	}
	return float32(unitsPerEm) / float32(b.PPEM)
}

// Decode decodes the bitmap data to an image.Image.
// Every call decodes again; nothing is cached.
func (b *BitmapGlyph) Decode() (image.Image, error) {
	switch b.Format {
	case FormatPNG:
		return png.Decode(bytes.NewReader(b.Data))
	case FormatJPEG:
		return jpeg.Decode(bytes.NewReader(b.Data))
	case FormatTIFF:
		return tiff.Decode(bytes.NewReader(b.Data))
	case FormatBlackAndWhite:
		return decodeMonochrome(b.Data, b.Width, b.Height)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedBitmapFormat, b.Format)
	}
}

// decodeMonochrome expands a packed 1-bit image. Set bits are ink and
// become black on a white background.
func decodeMonochrome(data []byte, width, height int) (image.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidBitmapData
	}
	if len(data)*8 < width*height {
		return nil, fmt.Errorf("%w: %d bytes for %dx%d", ErrInvalidBitmapData, len(data), width, height)
	}

	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			bit := y*width + x
			v := uint8(0xff)
			if data[bit>>3]&(0x80>>(bit&7)) != 0 {
				v = 0
			}
			img.SetGray(x, y, color.Gray{Y: v})
		}
	}
	return img, nil
}
