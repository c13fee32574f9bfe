// Package config resolves socialnet settings from defaults, an optional YAML
// file, SOCIALNET_* environment variables and finally command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/socialnet/core"
)

const (
	// ConfigDir is the directory name under XDG_CONFIG_HOME.
	ConfigDir = "socialnet"
	// ConfigFile is the config file name.
	ConfigFile = "config.yml"
	// EnvPrefix prefixes every environment override.
	EnvPrefix = "SOCIALNET_"
)

// ErrInvalidConfig is returned when a file, variable or flag holds a bad value.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds every tunable of an analysis run.
type Config struct {
	Dataset        string `yaml:"dataset,omitempty"`
	Source         int    `yaml:"source" validate:"gte=0"`
	TopK           int    `yaml:"top_k" validate:"gte=0"`
	Workers        int    `yaml:"workers" validate:"gte=0,lte=1024"`
	Exhaustive     bool   `yaml:"exhaustive,omitempty"`
	HistogramWidth int    `yaml:"histogram_width" validate:"gte=1,lte=500"`
	Lenient        bool   `yaml:"lenient,omitempty"`
	Loops          string `yaml:"loops" validate:"oneof=ignore reject"`
	LogLevel       string `yaml:"log_level" validate:"oneof=debug info warn error"`
	Environment    string `yaml:"environment" validate:"oneof=development production"`
}

// Default returns the settings used when nothing overrides them.
func Default() *Config {
	return &Config{
		Source:         0,
		TopK:           5,
		Workers:        1,
		HistogramWidth: 50,
		Loops:          core.LoopsIgnore.String(),
		LogLevel:       "info",
		Environment:    "production",
	}
}

// Path returns the default config file location.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/socialnet/config.yml.
func Path() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, ConfigDir, ConfigFile)
}

// Load builds a Config from defaults, the YAML file and the environment, then
// validates it. An explicit path must exist; with path == "" the default
// location is tried and silently skipped when absent.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = Path()
	}
	if path != "" {
		if err := cfg.mergeFile(path, explicit); err != nil {
			return nil, err
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) mergeFile(path string, mustExist bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !mustExist {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("%w: parsing %s: %v", ErrInvalidConfig, path, err)
	}
	c.Dataset = ExpandTilde(c.Dataset)

	return nil
}

// ApplyEnv overrides fields from SOCIALNET_* variables found by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(EnvPrefix + key); ok && v != "" {
			*dst = v
		}
	}
	num := func(key string, dst *int) error {
		v, ok := lookup(EnvPrefix + key)
		if !ok || v == "" {
			return nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q is not an integer", ErrInvalidConfig, EnvPrefix, key, v)
		}
		*dst = n
		return nil
	}
	flag := func(key string, dst *bool) error {
		v, ok := lookup(EnvPrefix + key)
		if !ok || v == "" {
			return nil
		}
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q is not a boolean", ErrInvalidConfig, EnvPrefix, key, v)
		}
		*dst = b
		return nil
	}

	str("DATASET", &c.Dataset)
	str("LOOPS", &c.Loops)
	str("LOG_LEVEL", &c.LogLevel)
	str("ENV", &c.Environment)
	c.Dataset = ExpandTilde(c.Dataset)

	for _, err := range []error{
		num("SOURCE", &c.Source),
		num("TOP_K", &c.TopK),
		num("WORKERS", &c.Workers),
		num("HISTOGRAM_WIDTH", &c.HistogramWidth),
		flag("LENIENT", &c.Lenient),
		flag("EXHAUSTIVE", &c.Exhaustive),
	} {
		if err != nil {
			return err
		}
	}

	return nil
}

// LoopPolicy maps the Loops setting onto core.LoopPolicy.
func (c *Config) LoopPolicy() core.LoopPolicy {
	if c.Loops == core.LoopsReject.String() {
		return core.LoopsReject
	}
	return core.LoopsIgnore
}

// Development reports whether logs should use the console encoder.
func (c *Config) Development() bool {
	return c.Environment == "development" || c.LogLevel == "debug"
}

// ExpandTilde replaces a leading ~ with the user's home directory.
func ExpandTilde(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
