package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Output  OutputConfig
	Catalog CatalogConfig
}

// OutputConfig holds presentation settings.
type OutputConfig struct {
	// Width is the rule/banner width of the report. Data columns are
	// fixed and unaffected by it.
	Width int
	// Color is one of "auto", "always", "never".
	Color string
}

// CatalogConfig points at an optional YAML catalog override.
type CatalogConfig struct {
	Path string
}

const (
	minWidth = 60
	maxWidth = 160
)

// Load reads configuration from file and env. Env var overrides use prefix QECSCOPE_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("output.width", 100)
	v.SetDefault("output.color", "auto")
	v.SetDefault("catalog.path", "")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("QECSCOPE_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "qecscope"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("QECSCOPE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := validate(c); err != nil {
		return Config{}, err
	}
	return c, nil
}

// validate rejects malformed settings at startup rather than letting
// them surface mid-render.
func validate(c Config) error {
	if c.Output.Width < minWidth || c.Output.Width > maxWidth {
		return fmt.Errorf("output.width %d out of range [%d, %d]", c.Output.Width, minWidth, maxWidth)
	}
	switch strings.ToLower(strings.TrimSpace(c.Output.Color)) {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("output.color %q: must be auto, always or never", c.Output.Color)
	}
	return nil
}
