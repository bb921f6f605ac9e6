// Package config holds the generation settings for a run, loaded from YAML
// and overridden by command-line flags.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/litescript/skysim/internal/astro"
	"github.com/litescript/skysim/internal/catalog"
	"github.com/litescript/skysim/internal/logging"
)

// DefaultOutput is the catalog path used when none is given.
const DefaultOutput = "catalog.csv"

// Config is the full set of inputs for one generation run.
type Config struct {
	// Center is an explicit decimal center. Both fields must be set for it
	// to take effect; otherwise DefaultCenter is converted.
	Center CenterConfig `yaml:"center"`

	// DefaultCenter is the sexagesimal fallback (Andromeda unless overridden).
	DefaultCenter SexagesimalCenter `yaml:"default_center"`

	Count    int        `yaml:"count"`
	Seed     *uint64    `yaml:"seed,omitempty"`
	Clip     ClipConfig `yaml:"clip"`
	Output   string     `yaml:"output"`
	LogLevel string     `yaml:"log_level"`
}

// CenterConfig is an explicit center in decimal degrees. RA is a true right
// ascension; it is projected by 1/cos(Dec) like a converted sexagesimal center.
type CenterConfig struct {
	RA  *float64 `yaml:"ra,omitempty"`
	Dec *float64 `yaml:"dec,omitempty"`
}

// SexagesimalCenter is a center as RA hours and Dec degrees strings.
type SexagesimalCenter struct {
	RA  string `yaml:"ra"`
	Dec string `yaml:"dec"`
}

// ClipConfig configures the radial clipper.
type ClipConfig struct {
	Enabled bool    `yaml:"enabled"`
	Mode    string  `yaml:"mode"`
	Radius  float64 `yaml:"radius"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		DefaultCenter: SexagesimalCenter{
			RA:  astro.DefaultRA,
			Dec: astro.DefaultDec,
		},
		Count: catalog.DefaultCount,
		Clip: ClipConfig{
			Enabled: false,
			Mode:    catalog.ClipCenter.String(),
			Radius:  catalog.DefaultRadius,
		},
		Output:   DefaultOutput,
		LogLevel: logging.LevelInfo.String(),
	}
}

// LoadFromFile loads configuration from a YAML file on top of the defaults.
// Unknown keys are rejected.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// WriteYAML writes the configuration as YAML.
func (c *Config) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return enc.Close()
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Count < 0 {
		return fmt.Errorf("%w: count must be >= 0, got %d", catalog.ErrInvalidArgument, c.Count)
	}
	if ra := c.Center.RA; ra != nil && !(*ra >= 0 && *ra < 360) {
		return fmt.Errorf("%w: center.ra must be in [0, 360), got %v", catalog.ErrInvalidArgument, *ra)
	}
	if dec := c.Center.Dec; dec != nil && !(*dec > -90 && *dec < 90) {
		return fmt.Errorf("%w: center.dec must be in (-90, 90), got %v", catalog.ErrInvalidArgument, *dec)
	}
	if !(c.Clip.Radius > 0) {
		return fmt.Errorf("%w: clip.radius must be > 0, got %v", catalog.ErrInvalidArgument, c.Clip.Radius)
	}
	if _, err := catalog.ParseClipMode(c.Clip.Mode); err != nil {
		return fmt.Errorf("clip.mode: %w", err)
	}
	if _, err := logging.LookupLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %v", catalog.ErrInvalidArgument, err)
	}
	if c.Output == "" {
		return fmt.Errorf("%w: output path is required", catalog.ErrInvalidArgument)
	}
	return nil
}

// HasExplicitCenter reports whether both center.ra and center.dec are set.
func (c *Config) HasExplicitCenter() bool {
	return c.Center.RA != nil && c.Center.Dec != nil
}

// ResolveCenter returns the projected explicit center when both coordinates
// are set, and the converted sexagesimal default otherwise.
func (c *Config) ResolveCenter() (astro.Center, error) {
	if c.HasExplicitCenter() {
		center, err := astro.Project(*c.Center.RA, *c.Center.Dec)
		if err != nil {
			return astro.Center{}, fmt.Errorf("center: %w", err)
		}
		return center, nil
	}
	center, err := astro.Convert(c.DefaultCenter.RA, c.DefaultCenter.Dec)
	if err != nil {
		return astro.Center{}, fmt.Errorf("default center: %w", err)
	}
	return center, nil
}

// Options converts the sampling and clipping settings.
func (c *Config) Options() (catalog.Options, error) {
	mode, err := catalog.ParseClipMode(c.Clip.Mode)
	if err != nil {
		return catalog.Options{}, err
	}
	return catalog.Options{
		Count: c.Count,
		Clip:  c.Clip.Enabled,
		ClipOptions: catalog.ClipOptions{
			Mode:   mode,
			Radius: c.Clip.Radius,
		},
	}, nil
}
