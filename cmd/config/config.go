// SPDX-License-Identifier: MIT

// Package config resolves bootci settings from flags, BOOTCI_* environment
// variables and an optional YAML config file, in viper's precedence order.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/bootci/bootstrap"
	"github.com/katalvlaran/bootci/stats"
)

// Output formats accepted by --output.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
	OutputTOML = "toml"
)

// ErrInvalidConfig reports settings that fail validation.
var ErrInvalidConfig = errors.New("invalid configuration")

func Load() error {
	return LoadFile(viper.GetString("config"))
}

func LoadFile(file string) error {
	if file == "" {
		return nil
	}
	ext := strings.TrimPrefix(filepath.Ext(file), ".")
	if ext == "" {
		return fmt.Errorf("%w: config file %q has no extension", ErrInvalidConfig, file)
	}
	viper.SetConfigFile(file)
	viper.SetConfigType(ext)
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

// RunConfig holds the settings of the run command.
type RunConfig struct {
	Input      string   `mapstructure:"input" yaml:"input"`
	Statistics []string `mapstructure:"stat" yaml:"stat"`
	Column     int      `mapstructure:"column" yaml:"column"`
	Replicates int      `mapstructure:"replicates" yaml:"replicates"`
	Seed       int64    `mapstructure:"seed" yaml:"seed"`
	Workers    int      `mapstructure:"workers" yaml:"workers"`
	ChunkSize  int      `mapstructure:"chunk-size" yaml:"chunk-size"`
	Types      []string `mapstructure:"type" yaml:"type"`
	Alpha      float64  `mapstructure:"alpha" yaml:"alpha"`
	Level      float64  `mapstructure:"level" yaml:"level"`
	Output     string   `mapstructure:"output" yaml:"output"`

	// Set when the value came from a flag, the environment or the config
	// file rather than from a flag default.
	SeedSet  bool `mapstructure:"-" yaml:"-"`
	AlphaSet bool `mapstructure:"-" yaml:"-"`
	LevelSet bool `mapstructure:"-" yaml:"-"`
}

// ParseRunConfig decodes and validates the run settings.
func ParseRunConfig() (*RunConfig, error) {
	cfg := &RunConfig{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding run config: %w", err)
	}
	cfg.SeedSet = viper.IsSet("seed")
	cfg.AlphaSet = viper.IsSet("alpha")
	cfg.LevelSet = viper.IsSet("level")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *RunConfig) validate() error {
	switch {
	case c.Replicates < 1:
		return fmt.Errorf("%w: replicates must be >= 1, got %d", ErrInvalidConfig, c.Replicates)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalidConfig, c.Workers)
	case c.ChunkSize < 0:
		return fmt.Errorf("%w: chunk-size must be >= 0, got %d", ErrInvalidConfig, c.ChunkSize)
	case len(c.Statistics) == 0:
		return fmt.Errorf("%w: at least one statistic is required", ErrInvalidConfig)
	case len(c.Types) == 0:
		return fmt.Errorf("%w: at least one interval type is required", ErrInvalidConfig)
	}

	switch c.Output {
	case OutputText, OutputJSON, OutputYAML, OutputTOML:
	default:
		return fmt.Errorf("%w: unsupported output %q", ErrInvalidConfig, c.Output)
	}

	for _, name := range c.Statistics {
		if name == "corr" {
			if len(c.Statistics) > 1 {
				return fmt.Errorf("%w: corr cannot be combined with other statistics", ErrInvalidConfig)
			}
			continue
		}
		if _, err := stats.ByName(name); err != nil {
			return err
		}
	}
	for _, name := range c.Types {
		if _, err := bootstrap.ParseType(name); err != nil {
			return err
		}
	}
	return nil
}

// IntervalTypes returns the parsed interval methods, in the order given.
func (c *RunConfig) IntervalTypes() ([]bootstrap.Type, error) {
	out := make([]bootstrap.Type, 0, len(c.Types))
	for _, name := range c.Types {
		t, err := bootstrap.ParseType(name)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// CIOptions maps alpha/level onto interval options. When neither was set
// explicitly the level flag default applies.
func (c *RunConfig) CIOptions() []bootstrap.CIOption {
	var opts []bootstrap.CIOption
	if c.AlphaSet {
		opts = append(opts, bootstrap.WithAlpha(c.Alpha))
	}
	if c.LevelSet || !c.AlphaSet {
		opts = append(opts, bootstrap.WithLevel(c.Level))
	}
	return opts
}

// ConfidenceLevel is the level reported alongside the intervals.
func (c *RunConfig) ConfidenceLevel() float64 {
	if c.AlphaSet && !c.LevelSet {
		return 1 - c.Alpha
	}
	return c.Level
}
