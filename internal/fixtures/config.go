// File: config.go
// Role: functional options resolving into an immutable genConfig.
package fixtures

import "math/rand"

// Option customizes Generate's output. Option constructors never panic
// and ignore out-of-range inputs by clamping to the nearest valid value.
type Option func(cfg *genConfig)

type genConfig struct {
	seed         int64
	eventCount   int
	gateCount    int
	maxFanIn     int
	rateFraction float64 // probability an Event is Rate-kinded, in [0,1]
}

func newGenConfig(opts ...Option) *genConfig {
	cfg := &genConfig{
		seed:         1,
		eventCount:   8,
		gateCount:    5,
		maxFanIn:     3,
		rateFraction: 0.2,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.eventCount < 1 {
		cfg.eventCount = 1
	}
	if cfg.gateCount < 1 {
		cfg.gateCount = 1
	}
	if cfg.maxFanIn < 2 {
		cfg.maxFanIn = 2
	}
	return cfg
}

func (cfg *genConfig) newRand() *rand.Rand {
	return rand.New(rand.NewSource(cfg.seed))
}

// WithSeed fixes the RNG seed. Same seed, same options: identical output.
func WithSeed(seed int64) Option {
	return func(cfg *genConfig) { cfg.seed = seed }
}

// WithEventCount sets how many Event declarations Generate emits.
func WithEventCount(n int) Option {
	return func(cfg *genConfig) { cfg.eventCount = n }
}

// WithGateCount sets how many Gate declarations Generate emits.
func WithGateCount(n int) Option {
	return func(cfg *genConfig) { cfg.gateCount = n }
}

// WithMaxGateFanIn bounds the number of inputs any single Gate draws.
// Generate gives a Gate at least 2 inputs whenever at least 2 earlier
// declarations exist to draw from.
func WithMaxGateFanIn(n int) Option {
	return func(cfg *genConfig) { cfg.maxFanIn = n }
}

// WithRateFraction sets the probability that a generated Event is
// Rate-kinded rather than Probability-kinded.
func WithRateFraction(f float64) Option {
	return func(cfg *genConfig) {
		if f < 0 {
			f = 0
		}
		if f > 1 {
			f = 1
		}
		cfg.rateFraction = f
	}
}
