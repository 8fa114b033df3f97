// Package overlay holds the overlay configuration and the pure update
// operations that keep it valid.
package overlay

import (
	"fmt"
	"strings"
)

// Side identifies one of the two molds
type Side int

const (
	Left Side = iota
	Right
)

// Sides lists both sides in hit-test and render order
var Sides = [2]Side{Left, Right}

// Dir returns -1 for the left side and +1 for the right side
func (s Side) Dir() float64 {
	if s == Left {
		return -1
	}
	return 1
}

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// TargetSide selects which side(s) gestures and discrete edits affect
type TargetSide int

const (
	TargetBoth TargetSide = iota
	TargetLeft
	TargetRight
)

// ParseTargetSide parses "left", "right" or "both"
func ParseTargetSide(s string) (TargetSide, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "both":
		return TargetBoth, nil
	case "left":
		return TargetLeft, nil
	case "right":
		return TargetRight, nil
	}
	return TargetBoth, fmt.Errorf("unknown target side %q", s)
}

func (t TargetSide) String() string {
	switch t {
	case TargetLeft:
		return "left"
	case TargetRight:
		return "right"
	default:
		return "both"
	}
}

// Side returns the single side a left/right target refers to.
// ok is false for TargetBoth.
func (t TargetSide) Side() (side Side, ok bool) {
	switch t {
	case TargetLeft:
		return Left, true
	case TargetRight:
		return Right, true
	}
	return Left, false
}

// Targets reports whether edits with this target reach the given side
func (t TargetSide) Targets(s Side) bool {
	side, single := t.Side()
	return !single || side == s
}

// MarshalText encodes the target side as its enumerated string
func (t TargetSide) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes "left", "right" or "both"
func (t *TargetSide) UnmarshalText(text []byte) error {
	v, err := ParseTargetSide(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// GlobalTransform moves both molds as one rigid unit
type GlobalTransform struct {
	PosX     float64 `json:"posX"`
	PosY     float64 `json:"posY"`
	Scale    float64 `json:"scale"`
	Rotation float64 `json:"rotation"` // degrees
}

// SideShape is the per-side mold geometry
type SideShape struct {
	Width      float64 `json:"width"`
	ArchHeight float64 `json:"archHeight"`
	BottomArch float64 `json:"bottomArch"`
	Thickness  float64 `json:"thickness"`
	Curvature  float64 `json:"curvature"`
}

// SideOffset positions one mold independently of the global transform
type SideOffset struct {
	SideShape
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Scale    float64 `json:"scale"`
	Rotation float64 `json:"rotation"` // degrees
}

// Display holds the presentation flags of the overlay
type Display struct {
	ShowGuides       bool    `json:"showGuides"`
	ShowVisagismGrid bool    `json:"showVisagismGrid"`
	Opacity          float64 `json:"opacity"`
	Color            string  `json:"color"`
	HandleSize       float64 `json:"handleSize"`
	Mirror           bool    `json:"mirror"`
}

// Config is the complete overlay configuration.
// Embedded structs flatten into the persisted JSON snapshot.
type Config struct {
	GlobalTransform
	SideShape
	Display

	Spacing     float64    `json:"spacing"`
	TargetSide  TargetSide `json:"targetSide"`
	LeftOffset  SideOffset `json:"leftOffset"`
	RightOffset SideOffset `json:"rightOffset"`
}

// Offset returns the offset of the given side
func (c Config) Offset(s Side) SideOffset {
	if s == Left {
		return c.LeftOffset
	}
	return c.RightOffset
}

// offsetPtr returns a pointer to the offset of the given side
func (c *Config) offsetPtr(s Side) *SideOffset {
	if s == Left {
		return &c.LeftOffset
	}
	return &c.RightOffset
}

// EditScaleRotation returns the scale and rotation that pinch gestures edit
// for the given target: the global transform for both, else the side offset.
func (c Config) EditScaleRotation(t TargetSide) (scale, rotation float64) {
	if side, ok := t.Side(); ok {
		off := c.Offset(side)
		return off.Scale, off.Rotation
	}
	return c.Scale, c.Rotation
}
