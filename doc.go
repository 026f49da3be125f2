// Package femtovg holds the vector types shared by the font and glyph
// subsystem of the femtovg 2D renderer.
//
// # Overview
//
// The root package is intentionally small:
//   - Path, Point, Rect: the geometry handed to the path rasterizer
//   - SetLogger / Logger: the structured logger shared by all sub-packages
//
// Font parsing, glyph caching and glyph rendering selection live in the
// text sub-package:
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
//	font := ctx.Font(id)
//
//	m := font.Metrics(16)
//	if g, ok := font.Glyph(36); ok && g.Path != nil {
//	    s := font.Scale(16)
//	    rasterize(g.Path.Scale(s, -s))
//	}
//
// # Logging
//
// femtovg is silent by default. Enable logging with SetLogger:
//
//	femtovg.SetLogger(slog.Default())
package femtovg
