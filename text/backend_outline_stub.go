//go:build nooutlinefont

package text

// init registers a nil-returning factory when the outline backend is
// compiled out, so WithBackend(BackendOutline) fails with ErrNoBackend.
func init() {
	RegisterBackend(BackendOutline, func(*Context) Backend {
		return nil
	})
}
