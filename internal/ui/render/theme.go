package render

import (
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/mdbullet/internal/ui/printer"
)

// ColorTheme defines viewer colors.
type ColorTheme struct {
	Background  tcell.Color
	Foreground  tcell.Color
	HeaderBg    tcell.Color
	HeaderFg    tcell.Color
	FooterBg    tcell.Color
	FooterFg    tcell.Color
	BulletFg    tcell.Color
	HeadingFg   tcell.Color
	CodeFg      tcell.Color
	CodeBlockBg tcell.Color
	CodeBlockFg tcell.Color
	LinkFg      tcell.Color
	QuoteFg     tcell.Color
	RuleFg      tcell.Color
	MatchBg     tcell.Color
	MatchFg     tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Background:  tcell.ColorDefault,
		Foreground:  tcell.ColorDefault,
		HeaderBg:    tcell.Color33,
		HeaderFg:    tcell.ColorWhite,
		FooterBg:    tcell.ColorDefault,
		FooterFg:    tcell.ColorDefault,
		BulletFg:    tcell.Color212,
		HeadingFg:   tcell.Color39,
		CodeFg:      tcell.Color44,  // brighter cyan text for code
		CodeBlockBg: tcell.Color234, // darker grey background for fenced code
		CodeBlockFg: tcell.Color252, // light grey text for fenced code
		LinkFg:      tcell.Color33,
		QuoteFg:     tcell.Color244,
		RuleFg:      tcell.Color240,
		MatchBg:     tcell.Color220,
		MatchFg:     tcell.ColorBlack,
	}
}

// ThemeFromPalette overrides the default foreground colors with the
// configured palette. Empty or unparsable entries keep the default.
func ThemeFromPalette(p printer.Palette) ColorTheme {
	theme := GetColorTheme()
	overrides := []struct {
		value string
		dst   *tcell.Color
	}{
		{p.Bullet, &theme.BulletFg},
		{p.Heading, &theme.HeadingFg},
		{p.Code, &theme.CodeFg},
		{p.Link, &theme.LinkFg},
		{p.Quote, &theme.QuoteFg},
		{p.Rule, &theme.RuleFg},
	}
	for _, o := range overrides {
		if c, ok := parseColor(o.value); ok {
			*o.dst = c
		}
	}
	return theme
}

// parseColor accepts ANSI palette indexes ("212"), "#rrggbb" and W3C names.
func parseColor(value string) (tcell.Color, bool) {
	if value == "" {
		return tcell.ColorDefault, false
	}
	if n, err := strconv.Atoi(value); err == nil {
		if n < 0 || n > 255 {
			return tcell.ColorDefault, false
		}
		return tcell.PaletteColor(n), true
	}
	c := tcell.GetColor(value)
	return c, c != tcell.ColorDefault
}
