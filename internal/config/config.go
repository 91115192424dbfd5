// Package config loads the application settings from an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// Window themes.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Config represents the application configuration.
type Config struct {
	App    ApplicationConfig `yaml:"app"`
	Window WindowConfig      `yaml:"window"`
	Usage  UsageConfig       `yaml:"usage"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Window.Validate(); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	if err := c.Usage.Validate(); err != nil {
		return fmt.Errorf("usage: %w", err)
	}
	return nil
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
}

// WindowConfig describes the main window.
type WindowConfig struct {
	Title  string  `yaml:"title"`
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
	Theme  string  `yaml:"theme"`
}

// Validate validates the window configuration.
func (c *WindowConfig) Validate() error {
	if c.Theme == "" {
		c.Theme = ThemeLight
	}
	return validation.ValidateStruct(c,
		validation.Field(&c.Title, validation.Required),
		validation.Field(&c.Width, validation.Required, validation.Min(float32(100))),
		validation.Field(&c.Height, validation.Required, validation.Min(float32(100))),
		validation.Field(&c.Theme, validation.In(ThemeLight, ThemeDark)),
	)
}

// UsageConfig controls how often the process memory is sampled for the
// header bar.
type UsageConfig struct {
	Interval time.Duration `yaml:"interval"`
}

// Validate validates the usage configuration.
func (c *UsageConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Interval, validation.Required, validation.Min(100*time.Millisecond)),
	)
}

// NewDefaultConfig returns a Config with the values used when no file is given.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
		},
		Window: WindowConfig{
			Title:  "draw",
			Width:  1024,
			Height: 768,
			Theme:  ThemeLight,
		},
		Usage: UsageConfig{
			Interval: time.Second,
		},
	}
}

// Load reads filename over the values already in cfg, expanding ${VAR}
// references from the environment, and validates the result. A missing
// file leaves cfg untouched apart from validation and reports found=false.
func Load(filename string, cfg *Config) (found bool, err error) {
	data, err := os.ReadFile(filename)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return false, fmt.Errorf("failed to read config file %s: %w", filename, err)
	default:
		found = true
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return found, fmt.Errorf("failed to parse config file %s: %w", filename, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return found, fmt.Errorf("config validation failed: %w", err)
	}
	return found, nil
}
