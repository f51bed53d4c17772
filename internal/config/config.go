// Package config resolves CLI settings from flags, UGRAPH_* environment
// variables and an optional YAML config file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/ugraph/dijkstra"
	"github.com/katalvlaran/ugraph/internal/logging"
)

// Keys shared by viper, flags and the config file.
const (
	KeyLogLevel    = "log-level"
	KeyLogFormat   = "log-format"
	KeyOutput      = "output"
	KeyMode        = "mode"
	KeyConcurrency = "concurrency"
)

// EnvPrefix prefixes environment overrides, e.g. UGRAPH_LOG_LEVEL.
const EnvPrefix = "UGRAPH"

// DefaultFile is the config file name looked up in the home directory.
const DefaultFile = ".ugraph.yaml"

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// ErrInvalidConfig is returned when a resolved setting is out of range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the validated, typed view of the settings.
type Config struct {
	LogLevel    string
	LogFormat   string
	Output      string
	Mode        dijkstra.Mode
	Concurrency int
}

// New returns a viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, logging.FormatText)
	v.SetDefault(KeyOutput, OutputText)
	v.SetDefault(KeyMode, dijkstra.FinalizeOnPop.String())
	v.SetDefault(KeyConcurrency, 4)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// ReadFile merges a config file into v. An explicit path must exist; with
// an empty path, $HOME/.ugraph.yaml is read only if present.
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		path = filepath.Join(home, DefaultFile)
		if _, err := os.Stat(path); err != nil {
			return nil
		}
	}

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	return nil
}

// Load validates the settings held by v.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		LogLevel:    v.GetString(KeyLogLevel),
		LogFormat:   v.GetString(KeyLogFormat),
		Output:      strings.ToLower(v.GetString(KeyOutput)),
		Concurrency: v.GetInt(KeyConcurrency),
	}

	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	switch strings.ToLower(cfg.LogFormat) {
	case logging.FormatText, logging.FormatJSON:
	default:
		return Config{}, fmt.Errorf("%w: log-format %q", ErrInvalidConfig, cfg.LogFormat)
	}
	switch cfg.Output {
	case OutputText, OutputJSON:
	default:
		return Config{}, fmt.Errorf("%w: output %q", ErrInvalidConfig, cfg.Output)
	}
	mode, err := dijkstra.ParseMode(v.GetString(KeyMode))
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	cfg.Mode = mode
	if cfg.Concurrency < 1 {
		return Config{}, fmt.Errorf("%w: concurrency %d < 1", ErrInvalidConfig, cfg.Concurrency)
	}

	return cfg, nil
}
