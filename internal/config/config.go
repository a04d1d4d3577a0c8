// Package config loads the YAML configuration of the binowl command.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/arloliu/binowl/document"
	"github.com/arloliu/binowl/endian"
	"github.com/arloliu/binowl/errs"
	"github.com/arloliu/binowl/format"
	"gopkg.in/yaml.v3"
)

// Config is the complete command configuration.
type Config struct {
	// ByteOrder is "big" or "little".
	ByteOrder string `yaml:"byte_order"`
	// Compression is one of "none", "zstd", "s2" or "lz4".
	Compression      string        `yaml:"compression"`
	SortedDictionary bool          `yaml:"sorted_dictionary"`
	LiteralInterning bool          `yaml:"literal_interning"`
	Log              LogConfig     `yaml:"log"`
	Archive          ArchiveConfig `yaml:"archive"`
}

// LogConfig configures the slog handler.
type LogConfig struct {
	// Level is "debug", "info", "warn" or "error".
	Level string `yaml:"level"`
	// Format is "text" or "json".
	Format string `yaml:"format"`
}

// ArchiveConfig configures the snapshot archive.
type ArchiveConfig struct {
	// Path is the Badger directory. Empty means an in-memory archive.
	Path string `yaml:"path"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		ByteOrder:        "big",
		Compression:      "none",
		SortedDictionary: false,
		LiteralInterning: true,
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Load reads the YAML file at path over the defaults and validates the result.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML data over the defaults. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: failed to parse config: %v", errs.ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every enumerated field.
func (c *Config) Validate() error {
	if _, ok := endian.Parse(c.ByteOrder); !ok {
		return fmt.Errorf("%w: byte_order must be big or little, got %q", errs.ErrInvalidConfig, c.ByteOrder)
	}
	if _, ok := format.ParseCompression(c.Compression); !ok {
		return fmt.Errorf("%w: unknown compression %q", errs.ErrInvalidConfig, c.Compression)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format must be text or json, got %q", errs.ErrInvalidConfig, c.Log.Format)
	}

	return nil
}

// EncoderOptions translates the configuration into document encoder options.
func (c *Config) EncoderOptions(logger *slog.Logger) []document.EncoderOption {
	comp, _ := format.ParseCompression(c.Compression)

	opts := []document.EncoderOption{
		document.WithCompression(comp),
		document.WithSortedDictionary(c.SortedDictionary),
		document.WithLiteralInterning(c.LiteralInterning),
		document.WithLogger(logger),
	}
	if engine, _ := endian.Parse(c.ByteOrder); !endian.IsBigEndian(engine) {
		opts = append(opts, document.WithLittleEndian())
	}

	return opts
}

// NewLogger builds the slog logger described by the log section.
func (c *Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := parseLevel(c.Log.Level)
	if err != nil {
		return nil, err
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, handlerOpts)), nil
	}

	return slog.New(slog.NewTextHandler(w, handlerOpts)), nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("%w: invalid log.level %q", errs.ErrInvalidConfig, s)
	}

	return level, nil
}
