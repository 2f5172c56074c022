package router

import (
	"github.com/physdes/recti/interval"
	"github.com/physdes/recti/recti"
)

// Default knobs.
const (
	// DefaultBudgetFactor is a reference alpha for
	// RouteWithConstraints, kept as the documented source of truth for
	// the "worst single-terminal distance" margin convention.
	// RouteWithConstraints itself always takes alpha explicitly.
	DefaultBudgetFactor = 1.1
)

// config holds GlobalRouter construction-time knobs.
type config struct {
	keepouts []recti.Rectangle
}

func newConfig() config {
	return config{}
}

// Option customizes a GlobalRouter before it routes any terminal.
type Option func(*config)

// WithKeepouts installs the axis-aligned keep-out rectangles a route must
// avoid. Passing it more than once replaces the previous list rather than
// appending, so the last WithKeepouts wins.
func WithKeepouts(keepouts []recti.Rectangle) Option {
	return func(c *config) {
		c.keepouts = keepouts
	}
}

// NewKeepout builds a keep-out rectangle by enlarging the degenerate
// rectangle at center by margin on every side. A zero margin yields a
// degenerate (single-point) rectangle and a negative one yields an
// invalid (empty) rectangle that never blocks anything, rather than
// panicking: both are a configuration choice, not a programmer error.
func NewKeepout(center recti.Point2D, margin int64) recti.Rectangle {
	r := recti.NewRectangle(interval.Point(center.X), interval.Point(center.Y))
	r.EnlargeWith(margin)
	return r
}
