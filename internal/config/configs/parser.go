package configs

import "vast-core/internal/core/vast"

// Parser limits the size and nesting of accepted VAST documents. Zero values
// fall back to the parser defaults.
type Parser struct {
	MaxInputBytes int `env:"MAX_INPUT_BYTES" envDefault:"4194304"`
	MaxDepth      int `env:"MAX_DEPTH" envDefault:"256"`
}

// Limits converts the configuration into parser limits.
func (c Parser) Limits() vast.Limits {
	return vast.Limits{
		MaxInputBytes: c.MaxInputBytes,
		MaxDepth:      c.MaxDepth,
	}
}
