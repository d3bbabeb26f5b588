// Package config loads montecarlopi settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds defaults for the CLI. Command line flags override them.
type Config struct {
	Points      int64  `env:"MONTECARLOPI_POINTS"       envDefault:"1000000"`
	Threads     int32  `env:"MONTECARLOPI_THREADS"      envDefault:"0"`
	Sequential  bool   `env:"MONTECARLOPI_SEQUENTIAL"`
	Debug       bool   `env:"MONTECARLOPI_DEBUG"`
	Profile     string `env:"MONTECARLOPI_PROFILE"`      // CPU profile output path
	MetricsFile string `env:"MONTECARLOPI_METRICS_FILE"` // Prometheus textfile output path
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
