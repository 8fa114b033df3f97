package overlay

import "math"

// Limits are the valid domains of the numeric configuration fields.
// Observed values differ between product revisions, so they are policy
// values rather than constants.
type Limits struct {
	MinScale, MaxScale           float64
	MinWidth                     float64
	MinThickness                 float64
	MinBottomArch                float64
	MinSpacing                   float64
	MinOpacity, MaxOpacity       float64
	MinHandleSize, MaxHandleSize float64
}

// DefaultLimits returns the factory limits
func DefaultLimits() Limits {
	return Limits{
		MinScale:      0.2,
		MaxScale:      5.0,
		MinWidth:      30,
		MinThickness:  1,
		MinBottomArch: -30,
		MinSpacing:    0,
		MinOpacity:    0.05,
		MaxOpacity:    1,
		MinHandleSize: 2,
		MaxHandleSize: 16,
	}
}

// Policy selects between behaviors that differ across product revisions
type Policy struct {
	// MirrorGlobalEdits copies position/scale/rotation edits made with
	// TargetBoth into both side offsets as well as the global transform.
	MirrorGlobalEdits bool
}

// ClampScale clamps a scale factor. NaN collapses to the minimum.
func (l Limits) ClampScale(v float64) float64 {
	return clamp(v, l.MinScale, l.MaxScale)
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func atLeast(v, lo float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if math.IsInf(v, 1) {
		return math.MaxFloat64
	}
	return v
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// bound describes which limits a field has
type bound int

const (
	unbounded bound = iota
	lowerBound
	bothBounds
)

// admits reports whether an edit value may be written into a field with
// bound b. NaN never is. An infinity is admitted only toward a finite
// limit, where Sanitize clamps it.
func (b bound) admits(v float64) bool {
	switch {
	case math.IsNaN(v):
		return false
	case math.IsInf(v, -1):
		return b != unbounded
	case math.IsInf(v, 1):
		return b == bothBounds
	}
	return true
}

// finiteOr returns v when it is a finite number and prev otherwise
func finiteOr(v, prev float64) float64 {
	if finite(v) {
		return v
	}
	return prev
}

func (l Limits) clampShape(s SideShape) SideShape {
	s.Width = atLeast(s.Width, l.MinWidth)
	s.ArchHeight = atLeast(s.ArchHeight, 0)
	s.BottomArch = atLeast(s.BottomArch, l.MinBottomArch)
	s.Thickness = atLeast(s.Thickness, l.MinThickness)
	s.Curvature = atLeast(s.Curvature, 0)
	return s
}

func (l Limits) clampOffset(o SideOffset) SideOffset {
	o.SideShape = l.clampShape(o.SideShape)
	o.X = finiteOr(o.X, 0)
	o.Y = finiteOr(o.Y, 0)
	o.Scale = l.ClampScale(o.Scale)
	o.Rotation = finiteOr(o.Rotation, 0)
	return o
}

// Sanitize clamps every numeric field of cfg into its valid domain.
// Non-finite translations and rotations reset to zero.
func Sanitize(cfg Config, l Limits) Config {
	cfg.PosX = finiteOr(cfg.PosX, 0)
	cfg.PosY = finiteOr(cfg.PosY, 0)
	cfg.Scale = l.ClampScale(cfg.Scale)
	cfg.Rotation = finiteOr(cfg.Rotation, 0)
	cfg.SideShape = l.clampShape(cfg.SideShape)
	cfg.Spacing = atLeast(cfg.Spacing, l.MinSpacing)
	cfg.Opacity = clamp(cfg.Opacity, l.MinOpacity, l.MaxOpacity)
	cfg.HandleSize = clamp(cfg.HandleSize, l.MinHandleSize, l.MaxHandleSize)
	if cfg.TargetSide < TargetBoth || cfg.TargetSide > TargetRight {
		cfg.TargetSide = TargetBoth
	}
	cfg.LeftOffset = l.clampOffset(cfg.LeftOffset)
	cfg.RightOffset = l.clampOffset(cfg.RightOffset)
	return cfg
}
