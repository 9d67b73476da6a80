// Package config loads mdbullet settings from a YAML file.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/kk-code-lab/mdbullet/internal/bullet"
	"github.com/kk-code-lab/mdbullet/internal/ui/printer"
	"github.com/kk-code-lab/mdbullet/internal/view"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = zerr.New("invalid configuration")

const (
	// EngineNative lays documents out with the built-in renderer.
	EngineNative = "native"
	// EngineGlamour hands documents to glamour.
	EngineGlamour = "glamour"
)

const (
	// DefaultLabelWidth matches bullet.LabelWidth.
	DefaultLabelWidth = 2
	// MaxLabelWidth bounds bullets.label_width.
	MaxLabelWidth = 64
)

// Config is the on-disk configuration.
type Config struct {
	Bullets   Bullets `yaml:"bullets"`
	TextScale float64 `yaml:"text_scale"`
	// Width is the wrap width; 0 means the terminal width.
	Width  int    `yaml:"width"`
	Engine string `yaml:"engine"`
	Theme  Theme  `yaml:"theme"`
}

// Bullets configures the list bullet style.
type Bullets struct {
	Style string `yaml:"style"`
	// Glyphs overrides Style with a per-level table when set.
	Glyphs     []string `yaml:"glyphs"`
	QuoteStyle string   `yaml:"quote_style"`
	// LabelWidth widens labels; values at or below 2 keep the default.
	LabelWidth int `yaml:"label_width"`
}

// Theme holds colours for the ANSI printer and the viewer.
type Theme struct {
	Bullet  string `yaml:"bullet"`
	Heading string `yaml:"heading"`
	Code    string `yaml:"code"`
	Link    string `yaml:"link"`
	Quote   string `yaml:"quote"`
	Rule    string `yaml:"rule"`
}

// Default returns the built-in configuration.
func Default() Config {
	p := printer.DefaultPalette()
	return Config{
		Bullets:   Bullets{Style: "automatic", LabelWidth: DefaultLabelWidth},
		TextScale: 1,
		Engine:    EngineNative,
		Theme: Theme{
			Bullet:  p.Bullet,
			Heading: p.Heading,
			Code:    p.Code,
			Link:    p.Link,
			Quote:   p.Quote,
			Rule:    p.Rule,
		},
	}
}

// DefaultPath returns ~/.config/mdbullet/config.yaml, honouring
// XDG_CONFIG_HOME.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", zerr.Wrap(err, "locate config directory")
	}
	return filepath.Join(dir, "mdbullet", "config.yaml"), nil
}

// Load reads the file at path. An empty path means DefaultPath, and a
// missing default file yields Default. A missing explicit file is an
// error.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, zerr.With(zerr.Wrap(err, "read config"), "path", path)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, zerr.With(err, "path", path)
	}
	return cfg, nil
}

// Parse decodes YAML, fills unset fields from Default and validates the
// result.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, zerr.Wrap(err, "parse config")
	}
	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) fillDefaults() {
	def := Default()
	if c.Bullets.Style == "" {
		c.Bullets.Style = def.Bullets.Style
	}
	if c.Bullets.LabelWidth == 0 {
		c.Bullets.LabelWidth = def.Bullets.LabelWidth
	}
	if c.TextScale == 0 {
		c.TextScale = def.TextScale
	}
	if c.Engine == "" {
		c.Engine = def.Engine
	}
	c.Engine = strings.ToLower(c.Engine)

	fill := func(dst *string, v string) {
		if *dst == "" {
			*dst = v
		}
	}
	fill(&c.Theme.Bullet, def.Theme.Bullet)
	fill(&c.Theme.Heading, def.Theme.Heading)
	fill(&c.Theme.Code, def.Theme.Code)
	fill(&c.Theme.Link, def.Theme.Link)
	fill(&c.Theme.Quote, def.Theme.Quote)
	fill(&c.Theme.Rule, def.Theme.Rule)
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	invalid := func(field string, value any) error {
		return zerr.With(zerr.Wrap(ErrInvalid, field), field, value)
	}

	if c.Width < 0 {
		return invalid("width", c.Width)
	}
	if !(c.TextScale >= 0 && c.TextScale <= view.MaxTextScale) {
		return invalid("text_scale", c.TextScale)
	}
	if c.Bullets.LabelWidth < 0 || c.Bullets.LabelWidth > MaxLabelWidth {
		return invalid("bullets.label_width", c.Bullets.LabelWidth)
	}
	if !slices.Contains([]string{EngineNative, EngineGlamour}, c.Engine) {
		return invalid("engine", c.Engine)
	}
	if _, err := bullet.Lookup(c.Bullets.Style); err != nil {
		return zerr.With(zerr.Wrap(ErrInvalid, "bullets.style: "+err.Error()), "bullets.style", c.Bullets.Style)
	}
	if c.Bullets.QuoteStyle != "" {
		if _, err := bullet.Lookup(c.Bullets.QuoteStyle); err != nil {
			return zerr.With(zerr.Wrap(ErrInvalid, "bullets.quote_style: "+err.Error()), "bullets.quote_style", c.Bullets.QuoteStyle)
		}
	}
	return nil
}

// BulletStyle builds the style for list bullets. A glyph table wins over
// the named style; a label width other than the default pads every label.
func (c Config) BulletStyle() (bullet.Style, error) {
	var s bullet.Style
	if len(c.Bullets.Glyphs) > 0 {
		glyphs := make([]bullet.Glyph, len(c.Bullets.Glyphs))
		for i, g := range c.Bullets.Glyphs {
			glyphs[i] = bullet.Glyph(g)
		}
		s = bullet.Glyphs(glyphs...)
	} else {
		named, err := bullet.Lookup(c.Bullets.Style)
		if err != nil {
			return nil, zerr.Wrap(ErrInvalid, err.Error())
		}
		s = named
	}

	if c.Bullets.LabelWidth > DefaultLabelWidth {
		s = bullet.Padded(s, view.Scaled(c.Bullets.LabelWidth))
	}
	return s, nil
}

// QuoteStyle returns the style for bullets inside blockquotes, or nil
// when quotes inherit the surrounding style.
func (c Config) QuoteStyle() (bullet.Style, error) {
	if c.Bullets.QuoteStyle == "" {
		return nil, nil
	}
	s, err := bullet.Lookup(c.Bullets.QuoteStyle)
	if err != nil {
		return nil, zerr.Wrap(ErrInvalid, err.Error())
	}
	return s, nil
}

// Palette converts the theme for the printer and the viewer.
func (c Config) Palette() printer.Palette {
	return printer.Palette{
		Bullet:  c.Theme.Bullet,
		Heading: c.Theme.Heading,
		Code:    c.Theme.Code,
		Link:    c.Theme.Link,
		Quote:   c.Theme.Quote,
		Rule:    c.Theme.Rule,
	}
}
