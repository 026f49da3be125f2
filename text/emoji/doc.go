// Package emoji handles pre-rendered glyph images embedded in fonts.
//
// Color emoji fonts (sbix, CBDT/CBLC) and some older bitmap fonts (EBDT)
// store glyphs as images at one or more fixed pixel sizes, called strikes.
// The font backends in package text return such glyphs as BitmapGlyph
// values; this package decodes them and picks the strike to use.
//
// # Decoding
//
//	img, err := glyph.Decode()
//
// PNG, JPEG and TIFF data is decoded with the matching image decoder.
// Packed 1-bit data becomes an *image.Gray with black ink.
//
// # Strike Selection
//
//	i, err := emoji.SelectStrike([]uint16{20, 64, 160}, 48, emoji.StrikeBestFit) // 1, nil
//
// StrikeBestFit picks the smallest strike at least as large as requested,
// falling back to the largest one. An empty size list, or an Exact request
// with no matching size, returns ErrNoStrikeAvailable.
package emoji
