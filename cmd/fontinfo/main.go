// Command fontinfo prints the metrics and glyph geometry femtovg extracts
// from a font file.
//
// Usage:
//
//	fontinfo [-font file] [-face n] [-backend name] [-size px] [-ppem n] [-text s] [-out dir] [-v]
//
// Without -font the embedded Go Regular font is used. With -out every glyph
// drawn from a raster strike is written to dir as a PNG file.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"

	"github.com/slint-ui/femtovg"
	"github.com/slint-ui/femtovg/text"
)

func main() {
	var (
		fontPath = flag.String("font", "", "font file (default: embedded Go Regular)")
		face     = flag.Uint("face", 0, "face index within a collection")
		backend  = flag.String("backend", "", "font backend (default: "+text.DefaultBackend()+")")
		size     = flag.Float64("size", 16, "font size in pixels")
		ppem     = flag.Uint("ppem", 32, "pixels per em for raster strikes")
		sample   = flag.String("text", "Hello, World!", "characters to inspect")
		outDir   = flag.String("out", "", "directory for raster strike images")
		verbose  = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		femtovg.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	data := goregular.TTF
	if *fontPath != "" {
		var err error
		// #nosec G304 -- Font file path is provided by the user
		data, err = os.ReadFile(*fontPath)
		if err != nil {
			log.Fatalf("Failed to read font: %v", err)
		}
	}

	var opts []text.ContextOption
	if *backend != "" {
		opts = append(opts, text.WithBackend(*backend))
	}
	ctx, err := text.NewContext(opts...)
	if err != nil {
		log.Fatalf("Failed to create text context: %v (available: %v)", err, text.AvailableBackends())
	}
	defer ctx.Close()

	id, err := ctx.AddFontMem(data, uint32(*face))
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}
	font, err := ctx.Font(id)
	if err != nil {
		log.Fatalf("Failed to get font: %v", err)
	}

	cmap, err := newCharMap(data, int(*face))
	if err != nil {
		log.Fatalf("Failed to read character map: %v", err)
	}

	m := font.Metrics(float32(*size))
	fmt.Printf("%s\n", font)
	fmt.Printf("size %.1f: ascender %.2f descender %.2f height %.0f\n",
		*size, m.Ascender(), m.Descender(), m.Height())
	fmt.Printf("style %v weight %d width %d\n\n", m.Flags(), m.Weight(), m.Width())

	for _, r := range *sample {
		gid, ok := cmap.glyph(r)
		if !ok {
			fmt.Printf("%q: not mapped\n", r)
			continue
		}
		printGlyph(font, r, gid, uint16(*ppem), *outDir)
	}

	stats := font.CacheStats()
	fmt.Printf("\ncache: %d glyphs, %d hits, %d misses (%.0f%% hit rate)\n",
		stats.Entries, stats.Hits, stats.Misses, stats.HitRate())
}

func printGlyph(font *text.Font, r rune, id text.GlyphID, ppem uint16, outDir string) {
	g, ok := font.Glyph(id)
	if !ok {
		fmt.Printf("%q glyph %d: no geometry\n", r, id)
		return
	}
	fmt.Printf("%q glyph %d: %v\n", r, id, g)

	rendering, ok := font.GlyphRenderingRepresentation(id, ppem)
	if !ok {
		return
	}
	switch rr := rendering.(type) {
	case text.RenderAsPath:
		fmt.Printf("    path: %d elements\n", rr.Path.Len())
	case text.RenderAsImage:
		b := rr.Image.Bounds()
		fmt.Printf("    image: %dx%d\n", b.Dx(), b.Dy())
		if outDir != "" {
			if err := savePNG(filepath.Join(outDir, fmt.Sprintf("glyph-%d.png", id)), rr); err != nil {
				log.Printf("Failed to save glyph %d: %v", id, err)
			}
		}
	}
}

func savePNG(path string, img text.RenderAsImage) error {
	// #nosec G304 -- Output path is provided by the user
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img.Image); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// charMap maps characters to glyph ids through the font's cmap.
type charMap struct {
	font *sfnt.Font
	buf  sfnt.Buffer
}

func newCharMap(data []byte, face int) (*charMap, error) {
	coll, err := sfnt.ParseCollection(data)
	if err != nil {
		return nil, err
	}
	f, err := coll.Font(face)
	if err != nil {
		return nil, err
	}
	return &charMap{font: f}, nil
}

func (c *charMap) glyph(r rune) (text.GlyphID, bool) {
	gi, err := c.font.GlyphIndex(&c.buf, r)
	if err != nil || gi == 0 {
		return 0, false
	}
	return text.GlyphID(gi), true
}
