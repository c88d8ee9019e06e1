package config

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/viper"
)

// Config holds process-wide settings loaded from defaults and the
// FERRET_* environment. CLI flags override these after loading.
type Config struct {
	// Color controls colored output: auto, always, never.
	Color string `mapstructure:"color"`

	// Exclude lists directory names the walker never enters.
	Exclude []string `mapstructure:"exclude"`

	// OrganizeRules optionally points to a YAML file overriding the
	// built-in extension-to-category table.
	OrganizeRules string `mapstructure:"organize_rules"`

	// ConfigPatterns optionally points to a YAML file overriding the
	// built-in filename patterns used by the configs scan.
	ConfigPatterns string `mapstructure:"config_patterns"`
}

// Load reads configuration from environment variables and defaults.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("color", "auto")
	v.SetDefault("exclude", []string{})
	v.SetDefault("organize_rules", "")
	v.SetDefault("config_patterns", "")

	v.SetEnvPrefix("FERRET")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Color {
	case "auto", "always", "never":
		return nil
	}
	return fmt.Errorf("invalid color mode %q: must be auto, always or never", c.Color)
}

// ColorEnabled resolves the color mode once, so output sinks receive
// an explicit flag instead of probing the terminal at print time.
func (c *Config) ColorEnabled() bool {
	switch c.Color {
	case "always":
		return true
	case "never":
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
