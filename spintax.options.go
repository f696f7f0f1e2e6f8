package spintax

import (
	"math/rand"
	"sync"

	"go.uber.org/zap"
)

// Option is a functional option for configuring the Engine.
type Option func(*engineConfig)

// engineConfig holds the internal configuration for an Engine.
type engineConfig struct {
	logger            *zap.Logger
	randIntn          func(n int) int
	attemptMultiplier int
}

// defaultEngineConfig returns the default engine configuration.
func defaultEngineConfig() *engineConfig {
	return &engineConfig{
		logger:            nil,
		randIntn:          nil,
		attemptMultiplier: DefaultAttemptMultiplier,
	}
}

// WithLogger sets the logger for the engine.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *engineConfig) {
		c.logger = logger
	}
}

// WithRandSource sets the randomness source used by sampling, enabling
// reproducible output in tests. The source is serialized behind a mutex
// so the engine stays safe for concurrent use.
// Default: the shared math/rand source.
func WithRandSource(src rand.Source) Option {
	return func(c *engineConfig) {
		if src == nil {
			return
		}
		rng := rand.New(src)
		var mu sync.Mutex
		c.randIntn = func(n int) int {
			mu.Lock()
			defer mu.Unlock()
			return rng.Intn(n)
		}
	}
}

// WithAttemptMultiplier sets the sampling attempt budget multiplier.
// Values below 1 are ignored.
// Default: 10
func WithAttemptMultiplier(multiplier int) Option {
	return func(c *engineConfig) {
		if multiplier > 0 {
			c.attemptMultiplier = multiplier
		}
	}
}
