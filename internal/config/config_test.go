package config

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litescript/skysim/internal/astro"
	"github.com/litescript/skysim/internal/catalog"
)

func ptr[T any](v T) *T { return &v }

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "00:42:44.3", cfg.DefaultCenter.RA)
	assert.Equal(t, "41:16:09", cfg.DefaultCenter.Dec)
	assert.Equal(t, 1000, cfg.Count)
	assert.Equal(t, "catalog.csv", cfg.Output)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.False(t, cfg.Clip.Enabled)
	assert.Nil(t, cfg.Seed)
	require.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"valid default config", func(c *Config) {}, false},
		{"zero count", func(c *Config) { c.Count = 0 }, false},
		{"negative count", func(c *Config) { c.Count = -1 }, true},
		{"explicit center", func(c *Config) { c.Center = CenterConfig{RA: ptr(10.0), Dec: ptr(-20.0)} }, false},
		{"ra too large", func(c *Config) { c.Center.RA = ptr(360.0) }, true},
		{"ra negative", func(c *Config) { c.Center.RA = ptr(-0.1) }, true},
		{"dec too large", func(c *Config) { c.Center.Dec = ptr(90.5) }, true},
		{"dec too small", func(c *Config) { c.Center.Dec = ptr(-91.0) }, true},
		{"dec at pole", func(c *Config) { c.Center.Dec = ptr(90.0) }, true},
		{"zero radius", func(c *Config) { c.Clip.Radius = 0 }, true},
		{"bad clip mode", func(c *Config) { c.Clip.Mode = "square" }, true},
		{"origin clip mode", func(c *Config) { c.Clip.Mode = "origin" }, false},
		{"bad log level", func(c *Config) { c.LogLevel = "LOUD" }, true},
		{"empty output", func(c *Config) { c.Output = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, catalog.ErrInvalidArgument)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestResolveCenter(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		center, err := DefaultConfig().ResolveCenter()
		require.NoError(t, err)
		assert.Equal(t, astro.DefaultCenter(), center)
	})

	t.Run("explicit", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Center = CenterConfig{RA: ptr(120.0), Dec: ptr(-45.0)}
		center, err := cfg.ResolveCenter()
		require.NoError(t, err)
		assert.InDelta(t, 120/math.Cos(45*math.Pi/180), center.RAdeg, 1e-9)
		assert.InDelta(t, -45.0, center.DecDeg, 1e-12)
		assert.InDelta(t, 120.0, center.TrueRAdeg(), 1e-9)
	})

	t.Run("explicit matches sexagesimal", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Center = CenterConfig{RA: ptr(83.82), Dec: ptr(-5.39)}
		center, err := cfg.ResolveCenter()
		require.NoError(t, err)

		want, err := astro.Convert("05:35:16.8", "-05:23:24")
		require.NoError(t, err)
		assert.InDelta(t, 83.82, center.TrueRAdeg(), 1e-9)
		assert.InDelta(t, want.RAdeg, center.RAdeg, 1e-9)
		assert.Equal(t, want.Label(), center.Label())
	})

	t.Run("explicit at pole", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Center = CenterConfig{RA: ptr(10.0), Dec: ptr(-90.0)}
		_, err := cfg.ResolveCenter()
		assert.ErrorIs(t, err, astro.ErrRange)
	})

	t.Run("only one coordinate falls back", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Center.RA = ptr(120.0)
		assert.False(t, cfg.HasExplicitCenter())
		center, err := cfg.ResolveCenter()
		require.NoError(t, err)
		assert.Equal(t, astro.DefaultCenter(), center)
	})

	t.Run("bad default", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.DefaultCenter.Dec = "41:16"
		_, err := cfg.ResolveCenter()
		assert.ErrorIs(t, err, astro.ErrParse)
	})
}

func TestOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Count = 42
	cfg.Clip = ClipConfig{Enabled: true, Mode: "origin", Radius: 0.5}

	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Equal(t, catalog.Options{
		Count:       42,
		Clip:        true,
		ClipOptions: catalog.ClipOptions{Mode: catalog.ClipOrigin, Radius: 0.5},
	}, opts)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skysim.yaml")
	content := `
center:
  ra: 10.5
  dec: -5
count: 250
seed: 77
clip:
  enabled: true
  mode: origin
output: stars.csv
log_level: DEBUG
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	require.NotNil(t, cfg.Center.RA)
	assert.Equal(t, 10.5, *cfg.Center.RA)
	assert.Equal(t, -5.0, *cfg.Center.Dec)
	assert.Equal(t, 250, cfg.Count)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, uint64(77), *cfg.Seed)
	assert.True(t, cfg.Clip.Enabled)
	assert.Equal(t, "origin", cfg.Clip.Mode)
	assert.Equal(t, 1.0, cfg.Clip.Radius, "unset keys keep their defaults")
	assert.Equal(t, "stars.csv", cfg.Output)
	assert.Equal(t, astro.DefaultRA, cfg.DefaultCenter.RA)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromFile_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFromFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFromFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	unknown := filepath.Join(dir, "unknown.yaml")
	require.NoError(t, os.WriteFile(unknown, []byte("stars: 5\n"), 0o644))
	_, err = LoadFromFile(unknown)
	assert.Error(t, err)

	malformed := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(malformed, []byte("count: [1, 2\n"), 0o644))
	_, err = LoadFromFile(malformed)
	assert.Error(t, err)
}

func TestWriteYAML_RoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = ptr(uint64(9))
	cfg.Center = CenterConfig{RA: ptr(1.5), Dec: ptr(2.5)}

	var buf bytes.Buffer
	require.NoError(t, cfg.WriteYAML(&buf))

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
