package bullet

import "github.com/kk-code-lab/mdbullet/internal/view"

// Style makes the label for one list item.
type Style interface {
	MakeLabel(c Configuration) view.Renderable
}

// StyleFunc adapts a function to Style.
type StyleFunc func(c Configuration) view.Renderable

func (f StyleFunc) MakeLabel(c Configuration) view.Renderable { return f(c) }

// AutomaticStyle uses each configuration's DefaultLabel.
type AutomaticStyle struct{}

func (AutomaticStyle) MakeLabel(c Configuration) view.Renderable { return c.DefaultLabel() }

// Automatic is the style in effect when nothing else was set.
var Automatic Style = AutomaticStyle{}
