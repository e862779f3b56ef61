package app

import "github.com/caarlos0/env/v11"

// Config holds runtime wiring options for building the app. Every field
// has an environment override so CI sweeps can run without flags.
type Config struct {
	// WorkDir is where experiments are materialized and manifests kept.
	WorkDir string `env:"VECTORGEN_WORKDIR"`

	// SimulatorPath is the simulator binary run per simulation; empty
	// means materialize only.
	SimulatorPath string `env:"VECTORGEN_SIMULATOR"`

	// SchemaPath records the simulator schema campaigns are generated
	// against.
	SchemaPath string `env:"VECTORGEN_SCHEMA"`

	// PlatformURL selects the remote orchestration service; empty selects
	// the local platform.
	PlatformURL string `env:"VECTORGEN_PLATFORM_URL"`

	// Jobs bounds local simulator parallelism.
	Jobs int `env:"VECTORGEN_JOBS" envDefault:"4"`

	Verbose bool `env:"VECTORGEN_VERBOSE"`
}

// FromEnv loads configuration from environment variables.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
