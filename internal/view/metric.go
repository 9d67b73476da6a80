package view

import (
	"context"
	"math"
)

type textScaleKey struct{}

const (
	// MaxTextScale is the largest scale TextScale reports. Larger values
	// are clamped.
	MaxTextScale = 16
	// MaxScaledCells caps what a Scaled metric resolves to.
	MaxScaledCells = 1024
)

// WithTextScale returns a context whose scaled metrics are multiplied by
// scale. It is the terminal stand-in for an accessibility text size.
func WithTextScale(ctx context.Context, scale float64) context.Context {
	return context.WithValue(ctx, textScaleKey{}, scale)
}

// TextScale returns the scale carried by ctx. Missing, zero, negative,
// infinite and NaN scales read as 1; scales above MaxTextScale read as
// MaxTextScale.
func TextScale(ctx context.Context) float64 {
	if ctx == nil {
		return 1
	}
	scale, ok := ctx.Value(textScaleKey{}).(float64)
	if !ok || !(scale > 0) || math.IsInf(scale, 0) {
		return 1
	}
	return min(scale, MaxTextScale)
}

// Metric is a horizontal size in terminal cells resolved at render time.
type Metric interface {
	Resolve(ctx context.Context) int
}

// Fixed is a metric that ignores the text scale.
type Fixed int

func (f Fixed) Resolve(context.Context) int { return int(f) }

// Scaled is a nominal cell count that grows with the text scale. Partial
// cells round up so a scaled label is never narrower than its glyph.
// Results are kept within 0..MaxScaledCells.
type Scaled float64

func (s Scaled) Resolve(ctx context.Context) int {
	cells := math.Ceil(float64(s) * TextScale(ctx))
	switch {
	case !(cells > 0):
		return 0
	case cells > MaxScaledCells:
		return MaxScaledCells
	}
	return int(cells)
}
