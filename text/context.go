package text

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/text/cases"

	"github.com/slint-ui/femtovg"
)

// FontID identifies a font registered with a Context.
type FontID int

// Context owns the font backend, the ScaleContext shared by scaling-backend
// fonts, and a registry of loaded fonts.
//
// Context is safe for concurrent use.
// Context must not be copied after creation (enforced by copyCheck).
type Context struct {
	// addr is used for copy protection.
	addr *Context

	backend Backend
	scale   *ScaleContext

	mu     sync.RWMutex
	fonts  []*Font
	closed bool
}

// NewContext creates a text context. It fails with ErrNoBackend when the
// requested backend, or any backend if none was requested, is unavailable.
func NewContext(opts ...ContextOption) (*Context, error) {
	config := defaultContextConfig()
	for _, opt := range opts {
		opt(&config)
	}

	c := &Context{}
	c.addr = c

	if config.scale != nil {
		config.scale.Acquire()
		c.scale = config.scale
	} else {
		c.scale = NewScaleContext()
	}

	if config.backendName != "" {
		c.backend = newBackend(config.backendName, c)
	} else {
		c.backend = defaultBackend(c)
	}
	if c.backend == nil {
		c.scale.Release()
		if config.backendName != "" {
			return nil, fmt.Errorf("%w: %q", ErrNoBackend, config.backendName)
		}
		return nil, ErrNoBackend
	}
	return c, nil
}

var (
	defaultCtxOnce sync.Once
	defaultCtx     *Context
	defaultCtxErr  error
)

// defaultContext returns the process-wide context used by NewFont(…, nil).
func defaultContext() (*Context, error) {
	defaultCtxOnce.Do(func() {
		defaultCtx, defaultCtxErr = NewContext()
	})
	return defaultCtx, defaultCtxErr
}

// Backend returns the name of the context's font backend.
func (c *Context) Backend() string {
	c.copyCheck()
	return c.backend.Name()
}

// ScaleContext returns the scale context shared by the context's fonts.
func (c *Context) ScaleContext() *ScaleContext {
	c.copyCheck()
	return c.scale
}

func (c *Context) activeBackend() (Backend, error) {
	c.copyCheck()

	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return nil, ErrContextClosed
	}
	return c.backend, nil
}

// AddFontMem parses the face at faceIndex of data and registers it.
func (c *Context) AddFontMem(data []byte, faceIndex uint32) (FontID, error) {
	f, err := NewFont(data, faceIndex, c)
	if err != nil {
		return 0, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		_ = f.Close()
		return 0, ErrContextClosed
	}
	c.fonts = append(c.fonts, f)
	return FontID(len(c.fonts) - 1), nil
}

// AddFontFile loads the first face of the font file at path and registers it.
func (c *Context) AddFontFile(path string) (FontID, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return c.AddFontMem(data, 0)
}

// fontExtensions lists the file extensions AddFontDir loads.
var fontExtensions = map[string]bool{
	".ttf": true,
	".otf": true,
	".ttc": true,
	".otc": true,
}

// AddFontDir walks dir recursively and registers the first face of every
// font file in it. Files that fail to parse are skipped with a warning.
func (c *Context) AddFontDir(dir string) ([]FontID, error) {
	var ids []FontID
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !fontExtensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		id, err := c.AddFontFile(path)
		if err != nil {
			if errors.Is(err, ErrContextClosed) {
				return err
			}
			femtovg.Logger().Warn("text: skipping font file", "path", path, "err", err)
			return nil
		}
		ids = append(ids, id)
		return nil
	})
	return ids, err
}

// Font returns the registered font with the given id.
func (c *Context) Font(id FontID) (*Font, error) {
	c.copyCheck()

	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return nil, ErrContextClosed
	}
	if id < 0 || int(id) >= len(c.fonts) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFont, id)
	}
	return c.fonts[id], nil
}

// FindFont returns the first registered font whose family matches family,
// ignoring case.
func (c *Context) FindFont(family string) (FontID, bool) {
	c.copyCheck()

	fold := cases.Fold()
	want := fold.String(family)

	c.mu.RLock()
	defer c.mu.RUnlock()
	for i, f := range c.fonts {
		if fold.String(f.Family()) == want {
			return FontID(i), true
		}
	}
	return 0, false
}

// NumFonts returns the number of registered fonts.
func (c *Context) NumFonts() int {
	c.copyCheck()

	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.fonts)
}

// Close closes every registered font and releases the context's reference
// on its ScaleContext. Fonts obtained earlier keep their cached glyphs.
func (c *Context) Close() error {
	c.copyCheck()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true

	for _, f := range c.fonts {
		_ = f.Close()
	}
	c.fonts = nil
	c.scale.Release()
	return nil
}

// copyCheck panics if Context was copied by value.
func (c *Context) copyCheck() {
	if c.addr != c {
		panic("text: Context must not be copied by value")
	}
}
