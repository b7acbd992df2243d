// SPDX-License-Identifier: EPL-2.0

package echo

import "time"

// Config holds the settings of a Canceller.
type Config struct {
	// FilterSize is the number of taps. Ignored when FilterLength is set.
	FilterSize int
	// FilterLength sizes the filter in time at the microphone sample rate.
	FilterLength time.Duration
	Mu           float32
	// Int16 runs the filter on 16-bit quantized samples, as a 16-bit capture
	// device would deliver them.
	Int16 bool
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the settings used when no option is given.
func DefaultConfig() Config {
	return Config{
		FilterSize: DefaultFilterSize,
		Mu:         DefaultMu,
	}
}

// WithFilterSize sets the number of taps.
func WithFilterSize(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.FilterSize = n
			cfg.FilterLength = 0
		}
	}
}

// WithFilterLength sets the time span covered by the filter.
func WithFilterLength(d time.Duration) Option {
	return func(cfg *Config) {
		if d > 0 {
			cfg.FilterLength = d
		}
	}
}

// WithMu sets the step size. It is not range checked.
func WithMu(mu float32) Option {
	return func(cfg *Config) {
		cfg.Mu = mu
	}
}

// WithInt16 selects the 16-bit processing path.
func WithInt16(enabled bool) Option {
	return func(cfg *Config) {
		cfg.Int16 = enabled
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Taps resolves the filter size for sampleRate.
func (c Config) Taps(sampleRate int) int {
	if c.FilterLength > 0 {
		return TapsFor(sampleRate, c.FilterLength)
	}
	return c.FilterSize
}
