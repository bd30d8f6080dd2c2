package core

// Config defines the precision and randomness settings shared by signals and engines.
type Config struct {
	// XPrecision is the number of decimal places kept for x coordinates.
	XPrecision int
	// YPrecision is the number of decimal places kept for y values stored in a signal.
	YPrecision int
	// Seed seeds the default random source of noise generators.
	Seed uint64
}

// Option mutates a Config.
type Option func(*Config)

const (
	DefaultXPrecision = 2
	DefaultYPrecision = 4

	maxPrecision = 9
)

// DefaultConfig returns the defaults used by the visualizer.
func DefaultConfig() Config {
	return Config{
		XPrecision: DefaultXPrecision,
		YPrecision: DefaultYPrecision,
		Seed:       1,
	}
}

// WithXPrecision sets the number of decimal places for x coordinates.
func WithXPrecision(places int) Option {
	return func(cfg *Config) {
		if places >= 0 && places <= maxPrecision {
			cfg.XPrecision = places
		}
	}
}

// WithYPrecision sets the number of decimal places for stored y values.
func WithYPrecision(places int) Option {
	return func(cfg *Config) {
		if places >= 0 && places <= maxPrecision {
			cfg.YPrecision = places
		}
	}
}

// WithSeed sets the seed of the default random source.
func WithSeed(seed uint64) Option {
	return func(cfg *Config) {
		cfg.Seed = seed
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

// WithConfig copies every setting of cfg.
func WithConfig(cfg Config) Option {
	return func(dst *Config) {
		*dst = cfg
	}
}
