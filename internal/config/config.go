package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/proxyprint/proxyprint/internal/layout"
)

// Config holds the layout defaults a user can keep in a config file
// instead of repeating flags on every run.
type Config struct {
	Paper        string  `mapstructure:"paper"`
	MarginMM     float64 `mapstructure:"margin_mm"`
	GapMM        float64 `mapstructure:"gap_mm"`
	Orientation  string  `mapstructure:"orientation"`
	CropMarks    bool    `mapstructure:"crop_marks"`
	BlackBorders bool    `mapstructure:"black_borders"`
	Output       string  `mapstructure:"output"`
}

// Load loads configuration from an optional YAML file, environment
// variables (PROXYPRINT_*), and defaults. An empty configPath means
// defaults and environment only.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("paper", "a4")
	v.SetDefault("margin_mm", 5.0)
	v.SetDefault("gap_mm", 3.0)
	v.SetDefault("orientation", string(layout.OrientationAuto))
	v.SetDefault("crop_marks", false)
	v.SetDefault("black_borders", false)
	v.SetDefault("output", "cards_print.pdf")

	v.SetEnvPrefix("proxyprint")
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch layout.Orientation(strings.ToLower(c.Orientation)) {
	case layout.OrientationAuto, layout.OrientationPortrait, layout.OrientationLandscape:
	default:
		return fmt.Errorf("invalid orientation %q (allowed: auto, portrait, landscape)", c.Orientation)
	}
	if c.MarginMM < 0 {
		return fmt.Errorf("margin_mm must not be negative")
	}
	if c.GapMM < 0 {
		return fmt.Errorf("gap_mm must not be negative")
	}
	return nil
}

// LayoutOrientation returns the configured orientation as a layout value.
func (c *Config) LayoutOrientation() layout.Orientation {
	return layout.Orientation(strings.ToLower(c.Orientation))
}
