// File: option.go
// Role: functional options for Parse, resolved once into an immutable
// parseConfig before scanning begins, trimmed to the one knob this
// format's grammar actually needs.
package parser

// Option customizes Parse's leniency. The zero value of every Option
// field is the strict, literal behavior.
type Option func(*parseConfig)

// parseConfig holds the resolved options for a single Parse call.
type parseConfig struct {
	allowUnknownGlobal bool
}

// newParseConfig resolves defaults then applies opts in order, later
// options overriding earlier ones.
func newParseConfig(opts ...Option) *parseConfig {
	cfg := &parseConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// AllowUnknownGlobal makes Parse silently ignore unrecognised global
// property keys instead of failing with ErrUnknownKey. Off by default:
// only "time_unit" is recognised at global scope.
func AllowUnknownGlobal() Option {
	return func(cfg *parseConfig) {
		cfg.allowUnknownGlobal = true
	}
}
