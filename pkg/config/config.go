// Package config provides configuration management for nmrpath.
//
// This package has no I/O dependencies (no file operations, no network
// calls). Validation functions may write user-facing warnings via
// gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml >
// defaults.
//
// # Design Principles
//
//   - Default config (from New()) is always valid - no validation needed
//   - All mutations go through Option functions - the only way to
//     modify Config
//   - Invalid options are rejected with gn.Warn() - config remains in a
//     valid state
//   - ToOptions() converts persistent fields (those in config.yaml)
//   - Environment variables match ToOptions() fields exactly
//
// # Environment Variables
//
// Use the NMRPATH_ prefix with underscores for nesting:
//
//	NMRPATH_RESOLVE_MAX_STATES=4096
//	NMRPATH_LOG_LEVEL=info
//	NMRPATH_JOBS_NUMBER=8
package config

import (
	"runtime"
)

// Config represents the complete nmrpath configuration.
type Config struct {
	// Resolve contains settings for the pathway resolution engine.
	Resolve ResolveConfig `mapstructure:"resolve" yaml:"resolve"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent workers for ensemble
	// resolution. Default value is set according to the number of
	// available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, cache and logs directories
	// reside. It must be set by the CLI during init, there is no
	// default value for it.
	HomeDir string
}

// ResolveConfig contains pathway resolution settings.
type ResolveConfig struct {
	// MaxStates caps the number of Zeeman product states a spin
	// system may have before resolution is refused. The transition
	// universe grows with the square of this number; the cap keeps
	// the resolver from allocating unbounded memory.
	MaxStates int `mapstructure:"max_states" yaml:"max_states"`

	// UniverseCache enables memoization of transition universes
	// across systems of the same shape.
	UniverseCache bool `mapstructure:"universe_cache" yaml:"universe_cache"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or
	// STDOUT.
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Resolve: ResolveConfig{
			MaxStates:     2048,
			UniverseCache: true,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}
