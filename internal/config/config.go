// Package config resolves settings for the challenge commands.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFile is read from the working directory when no path is given.
const DefaultFile = "cryptopals.yml"

// Config captures settings resolved from defaults, an optional YAML file
// and environment overrides.
type Config struct {
	// Key is the repeating-XOR key.
	Key      string    `yaml:"key"`
	Parallel bool      `yaml:"parallel"`
	Log      LogConfig `yaml:"log"`
}

// LogConfig controls the command logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Key: "ICE",
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load resolves the configuration. If path is empty, DefaultFile is used
// when it exists. Environment variables prefixed with CRYPTOPALS_ have the
// highest precedence.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := applyFile(&cfg, data); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports settings that cannot be used.
func (c Config) Validate() error {
	if c.Key == "" {
		return errors.New("key must not be empty")
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("unsupported log format %q", c.Log.Format)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unsupported log level %q", c.Log.Level)
	}
	return nil
}

// fileConfig distinguishes unset fields from zero values.
type fileConfig struct {
	Key      *string `yaml:"key"`
	Parallel *bool   `yaml:"parallel"`
	Log      *struct {
		Level  *string `yaml:"level"`
		Format *string `yaml:"format"`
	} `yaml:"log"`
}

func applyFile(cfg *Config, data []byte) error {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return err
	}
	if fc.Key != nil {
		cfg.Key = *fc.Key
	}
	if fc.Parallel != nil {
		cfg.Parallel = *fc.Parallel
	}
	if fc.Log != nil {
		if fc.Log.Level != nil {
			cfg.Log.Level = strings.TrimSpace(*fc.Log.Level)
		}
		if fc.Log.Format != nil {
			cfg.Log.Format = strings.TrimSpace(*fc.Log.Format)
		}
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if val, ok := os.LookupEnv("CRYPTOPALS_KEY"); ok && val != "" {
		cfg.Key = val
	}
	if val := strings.TrimSpace(os.Getenv("CRYPTOPALS_PARALLEL")); val != "" {
		parsed, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("CRYPTOPALS_PARALLEL: %w", err)
		}
		cfg.Parallel = parsed
	}
	if val := strings.TrimSpace(os.Getenv("CRYPTOPALS_LOG_LEVEL")); val != "" {
		cfg.Log.Level = val
	}
	if val := strings.TrimSpace(os.Getenv("CRYPTOPALS_LOG_FORMAT")); val != "" {
		cfg.Log.Format = val
	}
	return nil
}
