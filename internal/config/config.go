// Package config provides layered configuration: built-in defaults,
// then an optional YAML file, then TRACKSAW_* environment variables.
package config

import (
	"context"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/sethvargo/go-envconfig"
	"gopkg.in/yaml.v3"

	"tracksaw/internal/silence"
)

// Config holds the tunable processing parameters. CLI flags override
// these values last.
type Config struct {
	// OutputDir is where exported track files land.
	OutputDir string `yaml:"output_dir" env:"TRACKSAW_OUTPUT_DIR" validate:"required"`

	// ToleranceMillis loosens the expected-duration check when matching
	// tracks to silence boundaries.
	ToleranceMillis int64 `yaml:"tolerance_millis" env:"TRACKSAW_TOLERANCE_MILLIS" validate:"min=0"`

	// SilenceThresholdDBFS is the level below which audio counts as silent.
	SilenceThresholdDBFS float64 `yaml:"silence_threshold_dbfs" env:"TRACKSAW_SILENCE_THRESHOLD_DBFS" validate:"max=0"`

	// MinSilenceMillis is the shortest silent run treated as a gap
	// between tracks.
	MinSilenceMillis int64 `yaml:"min_silence_millis" env:"TRACKSAW_MIN_SILENCE_MILLIS" validate:"min=1"`

	// SeekStepMillis is the window size used when scanning for silence.
	SeekStepMillis int64 `yaml:"seek_step_millis" env:"TRACKSAW_SEEK_STEP_MILLIS" validate:"min=1"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		OutputDir:            "./out",
		ToleranceMillis:      0,
		SilenceThresholdDBFS: silence.DefaultThresholdDBFS,
		MinSilenceMillis:     silence.DefaultMinLenMillis,
		SeekStepMillis:       silence.DefaultSeekStepMillis,
	}
}

// Load builds the effective configuration. If path is empty no file is
// read and only defaults plus environment variables apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parsing %s: %w", path, err)
		}
	}

	if err := envconfig.Process(context.Background(), cfg); err != nil {
		return nil, fmt.Errorf("config: environment: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config: validation: %w", err)
	}
	return cfg, nil
}
