// =============================================================================
// Locator Check - Configuration Module
// =============================================================================
//
// This module loads the optional YAML configuration file. The tool runs with
// zero configuration: when the default file is absent, every setting takes
// its default value and the report reads MP.txt from the working directory.
//
// CONFIGURATION FILE (locheck.yaml):
//
//   input_file: MP.txt
//   encoding: ISO-8859-1
//   sheet: ""
//   log_level: warn
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap/zapcore"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file read when --config is not given.
const DefaultPath = "locheck.yaml"

// ErrUnknownEncoding is returned when the configured encoding has no decoder.
var ErrUnknownEncoding = errors.New("unknown encoding")

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// InputFile is the export to report on.
	// Files ending in .xlsx or .xlsm are read as workbooks, anything else
	// as tab-separated text.
	// Default: "MP.txt"
	InputFile string `yaml:"input_file"`

	// Encoding is the character encoding of tab-separated input.
	// The export is written by a legacy system in a single-byte code page,
	// so the default is Latin-1. Bytes that would be invalid UTF-8 are
	// decoded as-is instead of failing.
	// Common values: "ISO-8859-1", "Windows-1252", "UTF-8"
	// Default: "ISO-8859-1"
	Encoding string `yaml:"encoding"`

	// Sheet is the worksheet read from workbook inputs.
	// Default: the first sheet of the workbook.
	Sheet string `yaml:"sheet"`

	// LogLevel controls the verbosity of logging on stderr.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "warn"
	LogLevel string `yaml:"log_level"`
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load loads the configuration from a YAML file.
//
// PARAMETERS:
//   - path: The path to the configuration file.
//   - required: Whether a missing file is an error. When false, a missing
//     file yields the default configuration.
//
// RETURNS:
//   - A pointer to the Config struct.
//   - An error if the file cannot be read, parsed, or validated.
func Load(path string, required bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if cfg.InputFile == "" {
		cfg.InputFile = "MP.txt"
	}
	if cfg.Encoding == "" {
		cfg.Encoding = "ISO-8859-1"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
}

// validate checks the settings that can be checked without touching the input.
func validate(cfg *Config) error {
	if _, err := Decoder(cfg.Encoding); err != nil {
		return err
	}
	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", cfg.LogLevel, err)
	}
	return nil
}

// =============================================================================
// ENCODINGS
// =============================================================================

// Decoder resolves an encoding name to a text encoding.
//
// The common names are mapped directly so that "latin1" really means
// ISO-8859-1. Other names go through the IANA registry.
func Decoder(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "latin1", "latin-1", "iso-8859-1", "iso8859-1":
		return charmap.ISO8859_1, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252, nil
	case "utf-8", "utf8":
		return unicode.UTF8, nil
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	return enc, nil
}

// Level returns the zap level for the configured log level.
func (c *Config) Level() zapcore.Level {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.WarnLevel
	}
	return level
}
