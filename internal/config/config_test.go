package config

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/kk-code-lab/mdbullet/internal/bullet"
	"github.com/kk-code-lab/mdbullet/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFillsDefaults(t *testing.T) {
	path := writeConfig(t, `
bullets:
  style: classic
width: 72
theme:
  bullet: "#ff8800"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "classic", cfg.Bullets.Style)
	assert.Equal(t, DefaultLabelWidth, cfg.Bullets.LabelWidth)
	assert.Equal(t, 72, cfg.Width)
	assert.Equal(t, 1.0, cfg.TextScale)
	assert.Equal(t, EngineNative, cfg.Engine)
	assert.Equal(t, "#ff8800", cfg.Theme.Bullet)
	assert.Equal(t, Default().Theme.Heading, cfg.Theme.Heading)
}

func TestLoadMissingDefaultFileUsesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMissingExplicitFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.yaml")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "bullets: [unclosed\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "negative width", mutate: func(c *Config) { c.Width = -1 }},
		{name: "negative scale", mutate: func(c *Config) { c.TextScale = -2 }},
		{name: "huge scale", mutate: func(c *Config) { c.TextScale = 1e7 }},
		{name: "NaN scale", mutate: func(c *Config) { c.TextScale = math.NaN() }},
		{name: "negative label width", mutate: func(c *Config) { c.Bullets.LabelWidth = -3 }},
		{name: "huge label width", mutate: func(c *Config) { c.Bullets.LabelWidth = MaxLabelWidth + 1 }},
		{name: "unknown engine", mutate: func(c *Config) { c.Engine = "lynx" }},
		{name: "unknown style", mutate: func(c *Config) { c.Bullets.Style = "sparkles" }},
		{name: "unknown quote style", mutate: func(c *Config) { c.Bullets.QuoteStyle = "sparkles" }},
	}

	require.NoError(t, Default().Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestParseReportsInvalidValues(t *testing.T) {
	_, err := Parse([]byte("engine: lynx\n"))
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "engine")

	_, err = Parse([]byte("text_scale: 10000000\n"))
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "text_scale")

	cfg, err := Parse([]byte("text_scale: 16\n"))
	require.NoError(t, err)
	assert.Equal(t, 16.0, cfg.TextScale)
}

func TestBulletStyle(t *testing.T) {
	ctx := context.Background()
	label := func(s bullet.Style, level int) string {
		return s.MakeLabel(bullet.Configuration{Level: level}).Render(ctx)
	}

	t.Run("named style", func(t *testing.T) {
		cfg := Default()
		cfg.Bullets.Style = "ascii"
		s, err := cfg.BulletStyle()
		require.NoError(t, err)
		assert.Equal(t, "* ", label(s, 0))
		assert.Equal(t, "- ", label(s, 1))
	})

	t.Run("glyph table wins", func(t *testing.T) {
		cfg := Default()
		cfg.Bullets.Style = "ascii"
		cfg.Bullets.Glyphs = []string{"→", "⇢"}
		s, err := cfg.BulletStyle()
		require.NoError(t, err)
		assert.Equal(t, "→ ", label(s, 0))
		assert.Equal(t, "⇢ ", label(s, 5))
	})

	t.Run("wider labels", func(t *testing.T) {
		cfg := Default()
		cfg.Bullets.LabelWidth = 4
		s, err := cfg.BulletStyle()
		require.NoError(t, err)
		for level := 0; level <= 2; level++ {
			assert.Equal(t, 4, view.Width(label(s, level)))
		}
	})
}

func TestQuoteStyle(t *testing.T) {
	cfg := Default()
	s, err := cfg.QuoteStyle()
	require.NoError(t, err)
	assert.Nil(t, s)

	cfg.Bullets.QuoteStyle = "classic"
	s, err = cfg.QuoteStyle()
	require.NoError(t, err)
	assert.Equal(t, bullet.Classic, s)
}

func TestPalette(t *testing.T) {
	cfg := Default()
	cfg.Theme.Link = "99"

	p := cfg.Palette()
	assert.Equal(t, "99", p.Link)
	assert.Equal(t, cfg.Theme.Bullet, p.Bullet)
}
