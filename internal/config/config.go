// Package config loads themegen configuration from file, environment and flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g. THEMEGEN_OUTPUT_DIR.
const EnvPrefix = "THEMEGEN"

// Config is the resolved configuration for a themegen run.
type Config struct {
	// OutputDir receives one <variant>.json per built variant.
	OutputDir string `mapstructure:"output_dir"`

	// CreateOutputDir creates OutputDir before building when it is missing.
	CreateOutputDir bool `mapstructure:"create_output_dir"`

	// Indent is the JSON indent string. Empty writes compact JSON.
	Indent string `mapstructure:"indent"`

	// Jobs bounds concurrent variant builds. Zero means one goroutine per variant.
	Jobs int `mapstructure:"jobs"`

	// ProjectDir is the root searched for .themegen/palettes and .themegen/templates.
	ProjectDir string `mapstructure:"project_dir"`

	Logging LoggingConfig `mapstructure:"logging"`
}

// LoggingConfig configures the process logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() *Config {
	return &Config{
		OutputDir:       "dist",
		CreateOutputDir: true,
		Indent:          "",
		Jobs:            0,
		ProjectDir:      ".",
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.OutputDir) == "" {
		return errors.New("output_dir is required")
	}
	if c.Jobs < 0 {
		return fmt.Errorf("jobs must be >= 0, got %d", c.Jobs)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	return nil
}

// SetDefaults registers defaults on a viper instance.
func SetDefaults(v *viper.Viper) {
	def := DefaultConfig()
	v.SetDefault("output_dir", def.OutputDir)
	v.SetDefault("create_output_dir", def.CreateOutputDir)
	v.SetDefault("indent", def.Indent)
	v.SetDefault("jobs", def.Jobs)
	v.SetDefault("project_dir", def.ProjectDir)
	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.format", def.Logging.Format)
}

// Load reads configuration into v and decodes it. An explicit path must exist;
// otherwise the default search locations are optional.
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else if err := readOptional(v); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// readOptional looks for ./themegen.yaml first, then <config dir>/config.yaml.
func readOptional(v *viper.Viper) error {
	candidates := []string{"themegen.yaml"}
	if dir := ConfigDir(); dir != "" {
		candidates = append(candidates, filepath.Join(dir, "config.yaml"))
	}
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		v.SetConfigFile(candidate)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config %s: %w", candidate, err)
		}
		return nil
	}
	return nil
}

// ConfigDir returns the themegen config directory, honoring XDG_CONFIG_HOME.
func ConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "themegen")
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".config", "themegen")
}
