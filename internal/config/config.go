package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/rs/zerolog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/ironsheep/css-resemble-image/internal/gradient"
	"github.com/ironsheep/css-resemble-image/internal/imaging"
	"github.com/ironsheep/css-resemble-image/internal/resemble"
)

// Environment variables read by Load. They override the config file.
const (
	EnvFidelity  = "RESEMBLE_FIDELITY"
	EnvGenerator = "RESEMBLE_GENERATOR"
	EnvDirection = "RESEMBLE_DIRECTION"
	EnvBaseDir   = "RESEMBLE_BASE_DIR"
	EnvTimeout   = "RESEMBLE_TIMEOUT"
	EnvLogLevel  = "RESEMBLE_LOG_LEVEL"
)

const defaultTimeout = 30 * time.Second

// Config holds the settings shared by the CLI and the MCP server.
type Config struct {
	Fidelity  string
	Generator string
	// Direction is the leading gradient argument. Empty omits it.
	Direction string
	BaseDir   string
	Timeout   time.Duration
	LogLevel  zerolog.Level
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Fidelity:  gradient.DefaultFidelity,
		Generator: "default",
		Direction: resemble.DefaultDirection,
		Timeout:   defaultTimeout,
		LogLevel:  zerolog.InfoLevel,
	}
}

// hclConfigFile is the decoding target for a config file. Every attribute
// is optional.
type hclConfigFile struct {
	// Fidelity accepts a number (100) or a string ("25%").
	Fidelity  cty.Value `hcl:"fidelity,optional"`
	Generator *string   `hcl:"generator,optional"`
	Direction *string   `hcl:"direction,optional"`
	BaseDir   *string   `hcl:"base_dir,optional"`
	Timeout   *string   `hcl:"timeout,optional"`
}

// Load builds a Config from the defaults, the HCL file at path (skipped when
// path is empty) and then the environment, and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		src, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := cfg.decodeHCL(src, path); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse decodes HCL source over the defaults without consulting the
// environment. filename is used in diagnostics only.
func Parse(src []byte, filename string) (Config, error) {
	cfg := Default()
	if err := cfg.decodeHCL(src, filename); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) decodeHCL(src []byte, filename string) error {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse config file %s: %w", filename, diags)
	}

	var raw hclConfigFile
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return fmt.Errorf("failed to decode config file %s: %w", filename, diags)
	}

	if !raw.Fidelity.IsNull() {
		v, err := convert.Convert(raw.Fidelity, cty.String)
		if err != nil {
			return fmt.Errorf("%s: fidelity must be a number or a string: %w", filename, err)
		}
		if !v.IsKnown() || v.IsNull() {
			return fmt.Errorf("%s: fidelity must be a known value", filename)
		}
		c.Fidelity = v.AsString()
	}
	if raw.Generator != nil {
		c.Generator = *raw.Generator
	}
	if raw.Direction != nil {
		c.Direction = *raw.Direction
	}
	if raw.BaseDir != nil {
		c.BaseDir = *raw.BaseDir
	}
	if raw.Timeout != nil {
		d, err := time.ParseDuration(*raw.Timeout)
		if err != nil {
			return fmt.Errorf("%s: timeout must be a valid duration: %w", filename, err)
		}
		c.Timeout = d
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvFidelity); ok {
		c.Fidelity = strings.TrimSpace(v)
	}
	if v, ok := os.LookupEnv(EnvGenerator); ok {
		c.Generator = strings.TrimSpace(v)
	}
	// An empty direction is meaningful, so only presence matters.
	if v, ok := os.LookupEnv(EnvDirection); ok {
		c.Direction = strings.TrimSpace(v)
	}
	if v, ok := os.LookupEnv(EnvBaseDir); ok {
		c.BaseDir = v
	}
	if v, ok := os.LookupEnv(EnvTimeout); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s must be a valid duration: %w", EnvTimeout, err)
		}
		c.Timeout = d
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		level, err := ParseLogLevel(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
		c.LogLevel = level
	}
	return nil
}

// Validate checks every field that would otherwise fail later, at first use.
func (c Config) Validate() error {
	if _, err := gradient.ParseSpacing(c.Fidelity); err != nil {
		return fmt.Errorf("fidelity: %w", err)
	}
	if _, err := gradient.ByName(c.Generator); err != nil {
		return fmt.Errorf("generator: %w", err)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be greater than 0, got %s", c.Timeout)
	}
	return nil
}

// Options converts the configuration into transformer options.
func (c Config) Options() (resemble.Options, error) {
	g, err := gradient.ByName(c.Generator)
	if err != nil {
		return resemble.Options{}, err
	}
	direction := c.Direction
	if direction == "" {
		direction = resemble.NoDirection
	}
	return resemble.Options{
		Fidelity:  c.Fidelity,
		Generator: g,
		Direction: direction,
	}, nil
}

// Loader returns an image loader rooted at BaseDir.
func (c Config) Loader() *imaging.Loader {
	return &imaging.Loader{BaseDir: c.BaseDir, Timeout: c.Timeout}
}

// Transformer is shorthand for resemble.New(c.Options(), c.Loader()).
func (c Config) Transformer() (*resemble.Transformer, error) {
	opts, err := c.Options()
	if err != nil {
		return nil, err
	}
	return resemble.New(opts, c.Loader())
}

// ParseLogLevel maps a level name to a zerolog level. Matching is
// case-insensitive and "warning" is accepted for "warn". Empty means info.
func ParseLogLevel(s string) (zerolog.Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "":
		return zerolog.InfoLevel, nil
	case "warning":
		return zerolog.WarnLevel, nil
	}
	level, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q", s)
	}
	return level, nil
}
