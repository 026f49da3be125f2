package text

// ContextOption configures Context creation.
type ContextOption func(*contextConfig)

// contextConfig holds configuration for Context.
type contextConfig struct {
	backendName string
	scale       *ScaleContext
}

// defaultContextConfig returns the default context configuration.
func defaultContextConfig() contextConfig {
	return contextConfig{}
}

// WithBackend selects a registered backend by name, for example
// BackendOutline or BackendScaling. Without it the first available backend
// in priority order is used.
//
// Custom backends can be registered with RegisterBackend.
func WithBackend(name string) ContextOption {
	return func(c *contextConfig) {
		c.backendName = name
	}
}

// WithScaleContext shares sc with the new Context instead of creating a
// private one. The Context takes its own reference on sc.
func WithScaleContext(sc *ScaleContext) ContextOption {
	return func(c *contextConfig) {
		c.scale = sc
	}
}
