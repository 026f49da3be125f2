// Package text turns font blobs into scaled metrics and reusable glyph
// geometry for the femtovg renderer.
//
// The pipeline has four parts:
//
//   - Backend: pluggable font parsing. The outline backend (go-text) reads
//     outlines, embedded raster strikes and exact OS/2 style flags. The
//     scaling backend (x/image sfnt) reads outlines only, through a shared
//     ScaleContext, and approximates the style flags.
//   - Font: one parsed face with metrics in font design units and a lazily
//     filled, append-only glyph cache.
//   - GlyphRenderingRepresentation: per call choice between a raster strike
//     image and the cached outline.
//   - Context: owns the backend, the ScaleContext and a font registry.
//
// # Example usage
//
//	ctx, err := text.NewContext()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer ctx.Close()
//
//	id, err := ctx.AddFontFile("Roboto-Regular.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	font, _ := ctx.Font(id)
//
//	m := font.Metrics(16)
//	lineHeight := m.Height()
//
//	switch r, _ := font.GlyphRenderingRepresentation(gid, 32); r := r.(type) {
//	case text.RenderAsPath:
//	    s := font.Scale(16)
//	    fill(r.Path.Scale(s, -s))
//	case text.RenderAsImage:
//	    blit(r.Image)
//	}
//
// # Backends
//
// Both backends are compiled in by default and the outline backend wins.
// Build tags remove them:
//
//	go build -tags nooutlinefont   // scaling backend only
//	go build -tags noscalingfont   // outline backend only
//
// With both tags set NewContext fails with ErrNoBackend and every font
// construction fails. Other implementations can be installed with
// RegisterBackend and selected with WithBackend.
//
// # Metrics
//
// The backends report vertical metrics differently. The outline backend
// reads a signed descender and computes height as ascender - descender +
// line gap. The scaling backend reads ascent and descent as positive
// distances, stores the descender negated and computes height as
// ascent + descent + leading.
package text
