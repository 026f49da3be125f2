package text

import (
	"sync"

	"golang.org/x/image/font/sfnt"
)

// ScaleContext is the scratch state shared by every face of the scaling
// backend. Glyph extraction through it is serialized: Do holds a mutex for
// the duration of the callback.
//
// A ScaleContext is reference counted. NewScaleContext returns it with one
// reference owned by the caller; each scaling face acquires another and
// releases it on Close. When the count drops to zero the scratch buffer is
// dropped; a later Acquire allocates a fresh one.
type ScaleContext struct {
	mu   sync.Mutex
	buf  *sfnt.Buffer
	refs int
}

// NewScaleContext creates a scale context holding one reference.
func NewScaleContext() *ScaleContext {
	return &ScaleContext{
		buf:  new(sfnt.Buffer),
		refs: 1,
	}
}

// Acquire adds a reference.
func (sc *ScaleContext) Acquire() {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.refs == 0 {
		sc.buf = new(sfnt.Buffer)
	}
	sc.refs++
}

// Release drops a reference. Releasing an unreferenced context is a no-op.
func (sc *ScaleContext) Release() {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.refs == 0 {
		return
	}
	sc.refs--
	if sc.refs == 0 {
		sc.buf = nil
	}
}

// Refs returns the current reference count.
func (sc *ScaleContext) Refs() int {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.refs
}

// Do runs fn with exclusive access to the scratch buffer. Concurrent callers
// wait for each other. Segments and other values fn obtains from the buffer
// must not be retained after fn returns.
func (sc *ScaleContext) Do(fn func(buf *sfnt.Buffer)) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.buf == nil {
		sc.buf = new(sfnt.Buffer)
	}
	fn(sc.buf)
}
