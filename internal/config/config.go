package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"ising/pkg/ising"
)

const (
	DefaultSize     = 256
	DefaultCoupling = 0.44
	DefaultSeed     = 42
	DefaultTPS      = 60
	DefaultScale    = 3
	DefaultPixels   = 512
)

var (
	// ErrInvalid reports a configuration value outside its valid range.
	ErrInvalid = errors.New("config: invalid value")

	// ErrUnknownKey reports a key that maps to no configuration field.
	ErrUnknownKey = errors.New("config: unknown key")
)

// Config holds everything needed to build and drive a lattice.
type Config struct {
	Size     int     `yaml:"size"`
	Coupling float64 `yaml:"coupling"`
	// Seed 0 selects an entropy-seeded source.
	Seed int64 `yaml:"seed"`

	Sweeps int `yaml:"sweeps"`
	TPS    int `yaml:"tps"`
	Scale  int `yaml:"scale"`

	Output string `yaml:"output"`
	Every  int    `yaml:"every"`
	Pixels int    `yaml:"pixels"`

	MetricsAddr string    `yaml:"metrics_addr"`
	Log         LogConfig `yaml:"log"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() *Config {
	return &Config{
		Size:     DefaultSize,
		Coupling: DefaultCoupling,
		Seed:     DefaultSeed,
		Sweeps:   1000,
		TPS:      DefaultTPS,
		Scale:    DefaultScale,
		Pixels:   DefaultPixels,
		Log:      LogConfig{Level: "info", Format: "text"},
	}
}

func loadInto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// Save writes cfg as yaml.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Resolve layers defaults, an optional preset and an optional file, in that
// order; fields present in the file override the preset.
func Resolve(path, preset string) (*Config, error) {
	cfg := DefaultConfig()
	if preset != "" {
		p, ok := GetPreset(preset)
		if !ok {
			return nil, fmt.Errorf("unknown preset %q (available: %v)", preset, ListPresets())
		}
		cfg.Coupling = p.Coupling
	}
	if path != "" {
		if err := loadInto(path, cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// Validate checks every field that a front end relies on.
func (c *Config) Validate() error {
	switch {
	case c.Size <= 0:
		return fmt.Errorf("%w: size %d", ErrInvalid, c.Size)
	case math.IsNaN(c.Coupling) || math.IsInf(c.Coupling, 0):
		return fmt.Errorf("%w: coupling %v", ErrInvalid, c.Coupling)
	case c.Sweeps < 0:
		return fmt.Errorf("%w: sweeps %d", ErrInvalid, c.Sweeps)
	case c.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalid, c.TPS)
	case c.Scale <= 0:
		return fmt.Errorf("%w: scale %d", ErrInvalid, c.Scale)
	case c.Every < 0:
		return fmt.Errorf("%w: every %d", ErrInvalid, c.Every)
	case c.Pixels <= 0:
		return fmt.Errorf("%w: pixels %d", ErrInvalid, c.Pixels)
	}
	return nil
}

// NewLattice builds the lattice described by c. A zero seed draws from
// process entropy.
func (c *Config) NewLattice() (*ising.Lattice, error) {
	return c.LatticeWith(c.Seed, c.Coupling)
}

// LatticeWith builds a lattice of side c.Size from an explicit seed and
// coupling. A zero seed draws from process entropy.
func (c *Config) LatticeWith(seed int64, coupling float64) (*ising.Lattice, error) {
	if seed == 0 {
		return ising.New(c.Size, coupling)
	}
	return ising.New(c.Size, coupling, ising.WithSeed(seed))
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVar(&c.Size, "size", c.Size, "lattice side length")
	fs.Float64Var(&c.Coupling, "coupling", c.Coupling, "coupling βJ")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 for entropy)")
	fs.IntVar(&c.Sweeps, "sweeps", c.Sweeps, "sweeps to run (0 runs until interrupted)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "sweeps per second for interactive views")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.StringVar(&c.Output, "output", c.Output, "PNG snapshot path")
	fs.IntVar(&c.Every, "every", c.Every, "write a numbered snapshot every N sweeps")
	fs.IntVar(&c.Pixels, "pixels", c.Pixels, "PNG snapshot side in pixels")
	fs.StringVar(&c.MetricsAddr, "metrics-addr", c.MetricsAddr, "serve prometheus metrics on this address")
	fs.StringVar(&c.Log.Level, "log-level", c.Log.Level, "log level (debug, info, warn, error)")
	fs.StringVar(&c.Log.Format, "log-format", c.Log.Format, "log format (text, json)")
}

// ApplyFlags copies every explicitly set flag of fs that names a config key
// onto c, so command-line values win over presets and files.
func (c *Config) ApplyFlags(fs *pflag.FlagSet) error {
	var err error
	fs.Visit(func(f *pflag.Flag) {
		if err != nil || !IsKey(f.Name) {
			return
		}
		err = c.Set(f.Name, f.Value.String())
	})
	return err
}

var keys = map[string]bool{
	"size": true, "coupling": true, "temperature": true, "seed": true,
	"sweeps": true, "tps": true, "scale": true, "output": true,
	"every": true, "pixels": true, "metrics-addr": true,
	"log-level": true, "log-format": true,
}

// IsKey reports whether key names a configuration field.
func IsKey(key string) bool { return keys[key] }

// Set parses value into the field named by key. "temperature" sets the
// coupling to 1/T.
func (c *Config) Set(key, value string) error {
	var err error
	switch key {
	case "size":
		c.Size, err = strconv.Atoi(value)
	case "coupling":
		c.Coupling, err = strconv.ParseFloat(value, 64)
	case "temperature":
		var t float64
		if t, err = strconv.ParseFloat(value, 64); err == nil {
			if t == 0 {
				return fmt.Errorf("%w: temperature must be non-zero", ErrInvalid)
			}
			c.Coupling = 1 / t
		}
	case "seed":
		c.Seed, err = strconv.ParseInt(value, 10, 64)
	case "sweeps":
		c.Sweeps, err = strconv.Atoi(value)
	case "tps":
		c.TPS, err = strconv.Atoi(value)
	case "scale":
		c.Scale, err = strconv.Atoi(value)
	case "output":
		c.Output = value
	case "every":
		c.Every, err = strconv.Atoi(value)
	case "pixels":
		c.Pixels, err = strconv.Atoi(value)
	case "metrics-addr":
		c.MetricsAddr = value
	case "log-level":
		c.Log.Level = value
	case "log-format":
		c.Log.Format = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	if err != nil {
		return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, key, value, err)
	}
	return nil
}

// ApplyOverrides applies key=value pairs such as those collected from
// repeated --set flags.
func (c *Config) ApplyOverrides(kvs []string) error {
	for _, kv := range kvs {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("%w: override %q is not key=value", ErrInvalid, kv)
		}
		if err := c.Set(strings.TrimSpace(key), strings.TrimSpace(value)); err != nil {
			return err
		}
	}
	return nil
}
