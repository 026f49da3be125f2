//go:build noscalingfont

package text

// init registers a nil-returning factory when the scaling backend is
// compiled out, so WithBackend(BackendScaling) fails with ErrNoBackend.
func init() {
	RegisterBackend(BackendScaling, func(*Context) Backend {
		return nil
	})
}
