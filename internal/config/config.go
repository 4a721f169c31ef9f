// Package config loads the service configuration from an HCL file, SWATCH_*
// environment variables and command-line flags, in increasing precedence.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/swatch/internal/color"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. SWATCH_SERVER_ADDRESS.
const EnvPrefix = "SWATCH"

// Config is the fully-resolved service configuration.
type Config struct {
	Server    ServerConfig `mapstructure:"server"`
	Swatch    SwatchConfig `mapstructure:"swatch"`
	Templates string       `mapstructure:"templates"`
	Log       LogConfig    `mapstructure:"log"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Address         string        `mapstructure:"address"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	Gzip            bool          `mapstructure:"gzip"`
}

// SwatchConfig holds image rendering settings.
type SwatchConfig struct {
	Size    int    `mapstructure:"size"`
	MaxSize int    `mapstructure:"max_size"`
	Favicon string `mapstructure:"favicon"` // canonical hex; empty means a random colour per request
}

// LogConfig holds commonlog settings.
type LogConfig struct {
	Verbosity int    `mapstructure:"verbosity"`
	File      string `mapstructure:"file"`
}

var defaults = map[string]any{
	"server.address":          "0.0.0.0:8383",
	"server.read_timeout":     10 * time.Second,
	"server.write_timeout":    10 * time.Second,
	"server.shutdown_timeout": 5 * time.Second,
	"server.gzip":             true,
	"swatch.size":             1,
	"swatch.max_size":         512,
	"swatch.favicon":          "",
	"templates":               "",
	"log.verbosity":           1,
	"log.file":                "",
}

// Loader layers defaults, an HCL file, environment variables and bound flags.
type Loader struct {
	v *viper.Viper
}

// NewLoader returns a Loader with defaults and environment overrides set up.
func NewLoader() *Loader {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return &Loader{v: v}
}

// BindFlag makes flag f override the config key when it is set on the command line.
func (l *Loader) BindFlag(key string, f *pflag.Flag) error {
	if f == nil {
		return fmt.Errorf("binding %s: flag not defined", key)
	}
	if err := l.v.BindPFlag(key, f); err != nil {
		return fmt.Errorf("binding %s: %w", key, err)
	}
	return nil
}

// Load reads the HCL file at path, if path is non-empty, and returns the
// merged and validated configuration.
func (l *Loader) Load(path string) (*Config, error) {
	if path != "" {
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		values, err := Parse(src, path)
		if err != nil {
			return nil, err
		}
		if err := l.v.MergeConfigMap(values); err != nil {
			return nil, fmt.Errorf("merging config file: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that cannot be expressed as defaults.
func (c *Config) Validate() error {
	if c.Server.Address == "" {
		return fmt.Errorf("server.address must not be empty")
	}
	if c.Swatch.MaxSize < 1 {
		return fmt.Errorf("swatch.max_size must be at least 1, got %d", c.Swatch.MaxSize)
	}
	if c.Swatch.Size < 1 || c.Swatch.Size > c.Swatch.MaxSize {
		return fmt.Errorf("swatch.size must be between 1 and %d, got %d", c.Swatch.MaxSize, c.Swatch.Size)
	}
	if c.Swatch.Favicon != "" {
		if _, err := color.ParseHex(c.Swatch.Favicon); err != nil {
			return fmt.Errorf("swatch.favicon: %w", err)
		}
	}
	return nil
}

// FaviconColor returns the configured favicon colour, or false if the favicon
// should be random.
func (c *Config) FaviconColor() (color.Color, bool) {
	if c.Swatch.Favicon == "" {
		return color.Color{}, false
	}
	fav, err := color.ParseHex(c.Swatch.Favicon)
	if err != nil {
		return color.Color{}, false
	}
	return fav, true
}

// fileConfig mirrors the HCL file layout. Pointer fields distinguish unset
// attributes from zero values so that only explicit settings reach viper.
type fileConfig struct {
	Templates *string      `hcl:"templates,optional"`
	Server    *serverBlock `hcl:"server,block"`
	Swatch    *swatchBlock `hcl:"swatch,block"`
	Log       *logBlock    `hcl:"log,block"`
}

type serverBlock struct {
	Address         *string `hcl:"address,optional"`
	ReadTimeout     *string `hcl:"read_timeout,optional"`
	WriteTimeout    *string `hcl:"write_timeout,optional"`
	ShutdownTimeout *string `hcl:"shutdown_timeout,optional"`
	Gzip            *bool   `hcl:"gzip,optional"`
}

type swatchBlock struct {
	Size    *int    `hcl:"size,optional"`
	MaxSize *int    `hcl:"max_size,optional"`
	Favicon *string `hcl:"favicon,optional"`
}

type logBlock struct {
	Verbosity *int    `hcl:"verbosity,optional"`
	File      *string `hcl:"file,optional"`
}

// Parse decodes HCL config source into a nested map of the explicitly set
// values, keyed like the viper keys ("server" → {"address": ...}).
func Parse(src []byte, filename string) (map[string]any, error) {
	file, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing HCL: %s", diags.Error())
	}

	var fc fileConfig
	if diags := gohcl.DecodeBody(file.Body, BuildEvalContext(), &fc); diags.HasErrors() {
		return nil, fmt.Errorf("decoding HCL: %s", diags.Error())
	}

	out := make(map[string]any)
	if fc.Templates != nil {
		out["templates"] = *fc.Templates
	}
	if b := fc.Server; b != nil {
		m := make(map[string]any)
		setIf(m, "address", b.Address)
		setIf(m, "read_timeout", b.ReadTimeout)
		setIf(m, "write_timeout", b.WriteTimeout)
		setIf(m, "shutdown_timeout", b.ShutdownTimeout)
		setIf(m, "gzip", b.Gzip)
		out["server"] = m
	}
	if b := fc.Swatch; b != nil {
		m := make(map[string]any)
		setIf(m, "size", b.Size)
		setIf(m, "max_size", b.MaxSize)
		setIf(m, "favicon", b.Favicon)
		out["swatch"] = m
	}
	if b := fc.Log; b != nil {
		m := make(map[string]any)
		setIf(m, "verbosity", b.Verbosity)
		setIf(m, "file", b.File)
		out["log"] = m
	}
	return out, nil
}

func setIf[T any](m map[string]any, key string, v *T) {
	if v != nil {
		m[key] = *v
	}
}
