// ============================================================================
// currencyedit - Currency input for the terminal
// ============================================================================
//
// Package:     config
// Description: Application and field configuration from TOML or YAML files
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/currencyedit/foundation/core/error"
	mdwlog "github.com/msto63/currencyedit/foundation/core/log"
	"github.com/msto63/currencyedit/foundation/utils/mathx"
	"github.com/msto63/currencyedit/internal/field"
	"github.com/msto63/currencyedit/internal/format"
)

// EnvConfigPath names the environment variable holding the config path
const EnvConfigPath = "CURRENCYEDIT_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Logging LoggingConfig `toml:"logging" yaml:"logging"`
	UI      UIConfig      `toml:"ui" yaml:"ui"`
	Fields  []FieldConfig `toml:"fields" yaml:"fields"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name        string `toml:"name" yaml:"name"`
	Environment string `toml:"environment" yaml:"environment"`
}

// LoggingConfig holds logger settings. An empty file discards TUI logs.
type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
	File   string `toml:"file" yaml:"file"`
}

// UIConfig holds settings of the terminal demo
type UIConfig struct {
	Title          string   `toml:"title" yaml:"title"`
	EventLogSize   int      `toml:"event_log_size" yaml:"event_log_size"`
	ReloadDebounce Duration `toml:"reload_debounce" yaml:"reload_debounce"`
}

// FieldConfig is the attribute set of one currency field. Amounts are best
// written as strings in TOML, which has no exact decimal type.
type FieldConfig struct {
	Name     string             `toml:"name" yaml:"name"`
	Label    string             `toml:"label" yaml:"label"`
	Min      *mathx.Decimal     `toml:"min_value" yaml:"min_value"`
	Max      *mathx.Decimal     `toml:"max_value" yaml:"max_value"`
	Digits   *int               `toml:"digits_after_dot" yaml:"digits_after_dot"`
	Start    *mathx.Decimal     `toml:"start_value" yaml:"start_value"`
	Currency mathx.CurrencyType `toml:"currency_type" yaml:"currency_type"`
	Spacing  *int               `toml:"currency_spacing" yaml:"currency_spacing"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Build turns the attributes into a field configuration. Missing digits
// mean unlimited, missing spacing the default gap, missing start zero.
func (fc FieldConfig) Build() (field.Config, error) {
	cfg := field.DefaultConfig()
	cfg.Min = fc.Min
	cfg.Max = fc.Max
	cfg.Currency = fc.Currency
	if fc.Digits != nil {
		cfg.Digits = format.Digits(*fc.Digits)
	}
	if fc.Start != nil {
		cfg.Start = *fc.Start
	}
	if fc.Spacing != nil {
		cfg.Spacing = *fc.Spacing
	}

	if err := cfg.Validate(); err != nil {
		return field.Config{}, mdwerror.Wrap(err, "invalid field "+quote(fc.Name)).
			WithOperation("config.FieldConfig.Build").
			WithDetail("field", fc.Name)
	}
	return cfg, nil
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, mdwerror.Wrap(err, "config file not found: "+path).
				WithCode(mdwerror.CodeNotFound).
				WithOperation("config.Load").
				WithDetail("path", path)
		}
		return nil, mdwerror.Wrap(err, "failed to read config: "+path).
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	cfg, err := Parse(content, FormatFromPath(path))
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to load config: "+path).
			WithOperation("config.Load").
			WithDetail("path", path)
	}
	return cfg, nil
}

// LoadFromEnv loads configuration from CURRENCYEDIT_CONFIG or the first
// existing default location
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		for _, p := range DefaultPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return nil, mdwerror.New("no config file found, set " + EnvConfigPath + " or create configs/config.toml").
			WithCode(mdwerror.CodeNotFound).
			WithOperation("config.LoadFromEnv")
	}

	return Load(path)
}

// DefaultPaths lists the locations LoadFromEnv searches
func DefaultPaths() []string {
	return []string{
		"./configs/config.toml",
		"./configs/config.yaml",
		"./config.toml",
		"./config.yaml",
		filepath.Join(os.Getenv("HOME"), ".config/currencyedit/config.toml"),
	}
}

// FileFormat is the encoding of a config file
type FileFormat int

const (
	// FormatTOML is the default encoding
	FormatTOML FileFormat = iota
	// FormatYAML is selected by .yaml and .yml
	FormatYAML
)

// String returns the name of the encoding
func (f FileFormat) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "toml"
}

// FormatFromPath picks the encoding by file extension
func FormatFromPath(path string) FileFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Parse decodes content, applies defaults and validates the result
func Parse(content []byte, fileFormat FileFormat) (*Config, error) {
	var cfg Config
	switch fileFormat {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, mdwerror.Wrap(err, "failed to parse yaml config").
				WithCode(mdwerror.CodeInvalidFormat).
				WithOperation("config.Parse")
		}
	default:
		md, err := toml.Decode(string(content), &cfg)
		if err != nil {
			return nil, mdwerror.Wrap(err, "failed to parse toml config").
				WithCode(mdwerror.CodeInvalidFormat).
				WithOperation("config.Parse")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, mdwerror.New("unknown config key: "+undecoded[0].String()).
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.Parse")
		}
	}

	cfg.applyDefaults()
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Encode writes cfg in the given encoding
func Encode(cfg *Config, fileFormat FileFormat) ([]byte, error) {
	var buf bytes.Buffer
	switch fileFormat {
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return nil, mdwerror.Wrap(err, "failed to encode yaml config").
				WithCode(mdwerror.CodeInternal).
				WithOperation("config.Encode")
		}
		enc.Close()
	default:
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, mdwerror.Wrap(err, "failed to encode toml config").
				WithCode(mdwerror.CodeInternal).
				WithOperation("config.Encode")
		}
	}
	return buf.Bytes(), nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.Name == "" {
		c.General.Name = "currencyedit"
	}
	if c.General.Environment == "" {
		c.General.Environment = "development"
	}

	// Logging
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}

	// UI
	if c.UI.Title == "" {
		c.UI.Title = "Currency Input"
	}
	if c.UI.EventLogSize == 0 {
		c.UI.EventLogSize = 8
	}
	if c.UI.ReloadDebounce.Duration == 0 {
		c.UI.ReloadDebounce.Duration = 200 * time.Millisecond
	}

	// Fields
	if len(c.Fields) == 0 {
		digits := 2
		c.Fields = []FieldConfig{{Name: "amount", Label: "Amount", Digits: &digits}}
	}
	for i := range c.Fields {
		if c.Fields[i].Name == "" {
			c.Fields[i].Name = "field-" + strconv.Itoa(i+1)
		}
		if c.Fields[i].Label == "" {
			c.Fields[i].Label = c.Fields[i].Name
		}
	}
}

// expandEnvVars expands environment variables in configuration values
func (c *Config) expandEnvVars() {
	c.Logging.File = os.ExpandEnv(c.Logging.File)
}

// Validate checks logging settings and every field
func (c *Config) Validate() error {
	if _, err := mdwlog.ParseLevel(c.Logging.Level); err != nil {
		return mdwerror.Wrap(err, "invalid log level").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithDetail("level", c.Logging.Level)
	}
	if _, err := mdwlog.ParseFormat(c.Logging.Format); err != nil {
		return mdwerror.Wrap(err, "invalid log format").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithDetail("format", c.Logging.Format)
	}
	if c.UI.EventLogSize < 0 {
		return mdwerror.New("event log size must not be negative").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Validate")
	}

	seen := make(map[string]bool, len(c.Fields))
	for _, fc := range c.Fields {
		if seen[fc.Name] {
			return mdwerror.New("duplicate field name " + quote(fc.Name)).
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.Validate").
				WithDetail("field", fc.Name)
		}
		seen[fc.Name] = true
		if _, err := fc.Build(); err != nil {
			return err
		}
	}
	return nil
}

// FieldByName returns the field attributes with the given name
func (c *Config) FieldByName(name string) (FieldConfig, bool) {
	for _, fc := range c.Fields {
		if fc.Name == name {
			return fc, true
		}
	}
	return FieldConfig{}, false
}

func quote(s string) string {
	return "\"" + s + "\""
}
