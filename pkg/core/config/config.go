package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	coreerror "github.com/msto63/isotime/foundation/core/error"
	"github.com/msto63/isotime/foundation/utils/timex"
)

// EnvConfigPath names the environment variable holding the config file path
const EnvConfigPath = "ISOTIME_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General   GeneralConfig             `toml:"general" yaml:"general"`
	Formats   map[string]string         `toml:"formats" yaml:"formats"`
	Durations map[string]timex.Duration `toml:"durations" yaml:"durations"`

	// Path of the file the configuration was read from, empty for defaults
	Path string `toml:"-" yaml:"-"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
	Timezone  string `toml:"timezone" yaml:"timezone"`
}

// builtinFormats are always available as presets unless overridden
var builtinFormats = map[string]string{
	"date":     "%F",
	"time":     "%T",
	"datetime": "%F %T",
	"isoweek":  "%G-W%V-%u",
	"us":       "%D %r",
	"long":     "%A, %d %B %Y",
}

// Default returns the configuration used when no file is found
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file. Files ending in .yaml
// or .yml are read as YAML, everything else as TOML.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, coreerror.Newf("config file not found: %s", path).
				WithCode(coreerror.CodeMissingConfig).
				WithDetail("path", path)
		}
		return nil, coreerror.Wrap(err, "failed to read config").
			WithCode(coreerror.CodeConfigError).
			WithDetail("path", path)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, parseError(path, err)
		}
	default:
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return nil, parseError(path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, coreerror.Newf("unknown config key %q", undecoded[0].String()).
				WithCode(coreerror.CodeConfigError).
				WithDetail("path", path)
		}
	}

	cfg.Path = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func parseError(path string, err error) *coreerror.Error {
	return coreerror.Wrap(err, "failed to parse config").
		WithCode(coreerror.CodeConfigError).
		WithDetail("path", path)
}

// LoadFromEnv loads configuration from the ISOTIME_CONFIG environment
// variable or the first existing default location. Without any file the
// defaults are returned.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}

	for _, p := range DefaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}

	return Default(), nil
}

// DefaultPaths lists the locations searched by LoadFromEnv, in order
func DefaultPaths() []string {
	paths := []string{
		"./isotime.toml",
		"./isotime.yaml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", "isotime", "config.toml"),
			filepath.Join(home, ".config", "isotime", "config.yaml"),
		)
	}
	return paths
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}
	if c.General.Timezone == "" {
		c.General.Timezone = "Local"
	}

	if c.Formats == nil {
		c.Formats = make(map[string]string, len(builtinFormats))
	}
	for name, format := range builtinFormats {
		if _, ok := c.Formats[name]; !ok {
			c.Formats[name] = format
		}
	}

	if c.Durations == nil {
		c.Durations = make(map[string]timex.Duration)
	}
}

// Validate checks the timezone and compiles every format preset
func (c *Config) Validate() error {
	if _, err := c.Location(); err != nil {
		return err
	}

	for _, name := range c.FormatNames() {
		if _, err := timex.NewPosixFormat(c.Formats[name]); err != nil {
			return coreerror.Wrap(err, "invalid format preset "+name).
				WithCode(coreerror.CodeConfigError).
				WithDetail("preset", name)
		}
	}

	return nil
}

// Location returns the configured time zone
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.General.Timezone)
	if err != nil {
		return nil, coreerror.Wrap(err, "invalid timezone").
			WithCode(coreerror.CodeConfigError).
			WithDetail("timezone", c.General.Timezone)
	}
	return loc, nil
}

// Format returns the translated preset with the given name
func (c *Config) Format(name string) (*timex.PosixFormat, error) {
	posix, ok := c.Formats[name]
	if !ok {
		return nil, coreerror.Newf("unknown format preset %q", name).
			WithCode(coreerror.CodeInvalidInput).
			WithDetail("preset", name)
	}
	return timex.NewPosixFormat(posix)
}

// FormatNames returns the preset names in sorted order
func (c *Config) FormatNames() []string {
	names := make([]string, 0, len(c.Formats))
	for name := range c.Formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Duration returns the named duration
func (c *Config) Duration(name string) (timex.Duration, bool) {
	d, ok := c.Durations[name]
	return d, ok
}
