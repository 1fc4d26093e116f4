package bench

import (
	"io"
	"os"
	"time"

	"github.com/cwbudde/algo-alignbench/internal/cpu"
)

// Config controls a Runner.
type Config struct {
	// Writer receives one report line per strategy run.
	Writer io.Writer

	// Features decides which strategies are eligible.
	Features cpu.Features

	// Verify checks every result against a float64 reference.
	Verify bool

	// Clock is read before and after each timed run.
	Clock func() time.Time
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig writes to stdout, uses the detected CPU features and the
// wall clock, and does not verify.
func DefaultConfig() Config {
	return Config{
		Writer:   os.Stdout,
		Features: cpu.DetectFeatures(),
		Clock:    time.Now,
	}
}

// WithWriter sets the report destination.
func WithWriter(w io.Writer) Option {
	return func(cfg *Config) {
		if w != nil {
			cfg.Writer = w
		}
	}
}

// WithFeatures overrides the detected CPU features.
func WithFeatures(f cpu.Features) Option {
	return func(cfg *Config) {
		cfg.Features = f
	}
}

// WithVerify enables element-wise verification.
func WithVerify(verify bool) Option {
	return func(cfg *Config) {
		cfg.Verify = verify
	}
}

// WithClock replaces the wall clock.
func WithClock(clock func() time.Time) Option {
	return func(cfg *Config) {
		if clock != nil {
			cfg.Clock = clock
		}
	}
}

func applyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
