// File: option.go
// Role: functional options for Reachable, trimmed from package bfs's
// BFSOptions/Option to the one knob this domain's callers use.
package reach

// Option configures a Reachable traversal.
type Option func(cfg *config)

type config struct {
	maxDepth int // 0 means unbounded
}

// WithMaxDepth bounds the traversal to gates/events within d edges of the
// starting gate. d <= 0 is treated as unbounded, matching bfs.WithMaxDepth's
// "0 means no limit" convention.
func WithMaxDepth(d int) Option {
	return func(cfg *config) {
		if d > 0 {
			cfg.maxDepth = d
		}
	}
}

func newConfig(opts ...Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
