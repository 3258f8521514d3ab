package engine

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the engine's own tunable-limits configuration, distinct from
// any platform-level function/library/store configuration a host manages
// on its own.
type Config struct {
	MaxOps       int64 `yaml:"max_ops"`
	MaxRecurse   int   `yaml:"max_recurse"`
	MaxDepth     int   `yaml:"max_depth"`
	MaxSymbols   int   `yaml:"max_symbols"`
	RegisterSize int   `yaml:"register_size"`
	Secure       bool  `yaml:"secure"`
	Audit        bool  `yaml:"audit"`
}

func DefaultConfig() Config {
	d := DefaultLimits()
	return Config{
		MaxOps:       d.MaxOps,
		MaxRecurse:   d.MaxRecurse,
		MaxDepth:     d.MaxDepth,
		MaxSymbols:   d.MaxSymbols,
		RegisterSize: d.RegisterSize,
	}
}

func (c Config) Limits() Limits {
	return Limits{
		MaxOps:       c.MaxOps,
		MaxRecurse:   c.MaxRecurse,
		MaxDepth:     c.MaxDepth,
		MaxSymbols:   c.MaxSymbols,
		RegisterSize: c.RegisterSize,
	}
}

// LoadConfig reads a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
