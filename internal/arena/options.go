package arena

const (
	// Alignment is the default base alignment: one 256-bit vector.
	Alignment = 32

	// Slack is the default number of bytes allocated beyond the elements.
	Slack = 64

	// MaxOffset is the default largest offset View accepts.
	MaxOffset = 16

	// ElemSize is the size of one float32 in bytes.
	ElemSize = 4
)

// Config controls arena geometry.
type Config struct {
	Alignment int
	Slack     int
	MaxOffset int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the geometry of the alignment benchmark: a 32-byte
// base, 64 bytes of slack and offsets up to 16 bytes.
func DefaultConfig() Config {
	return Config{
		Alignment: Alignment,
		Slack:     Slack,
		MaxOffset: MaxOffset,
	}
}

// WithAlignment sets the base alignment. New rejects values that are not a
// power of two.
func WithAlignment(alignment int) Option {
	return func(cfg *Config) {
		if alignment > 0 {
			cfg.Alignment = alignment
		}
	}
}

// WithSlack sets the number of extra bytes per arena.
func WithSlack(slack int) Option {
	return func(cfg *Config) {
		if slack >= 0 {
			cfg.Slack = slack
		}
	}
}

// WithMaxOffset sets the largest offset View accepts.
func WithMaxOffset(offset int) Option {
	return func(cfg *Config) {
		if offset >= 0 {
			cfg.MaxOffset = offset
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
