package anchor

import (
	"github.com/philipparndt/browmap/internal/overlay"
	"github.com/philipparndt/browmap/pkg/geometry"
)

// SpacingOffset returns the horizontal distance of a side's mold origin
// from the overlay center.
func SpacingOffset(cfg overlay.Config, side overlay.Side) float64 {
	return side.Dir() * cfg.Spacing / 2
}

// LocalTransform maps a side's local space into overlay space:
// translate(spacingOffset+x, y) ∘ rotate(rotation) ∘ scale(scale).
func LocalTransform(cfg overlay.Config, side overlay.Side) geometry.Affine {
	off := cfg.Offset(side)
	return geometry.Scale(off.Scale).
		Then(geometry.Rotate(off.Rotation)).
		Then(geometry.Translate(SpacingOffset(cfg, side)+off.X, off.Y))
}

// GlobalTransform maps overlay space onto the render surface whose overlay
// center sits at origin.
func GlobalTransform(cfg overlay.Config, origin geometry.Point) geometry.Affine {
	return geometry.Scale(cfg.Scale).
		Then(geometry.Rotate(cfg.Rotation)).
		Then(geometry.Translate(cfg.PosX+origin.X, cfg.PosY+origin.Y))
}

// ScreenTransform is the full composition from a side's local space to the
// render surface.
func ScreenTransform(cfg overlay.Config, side overlay.Side, origin geometry.Point) geometry.Affine {
	return LocalTransform(cfg, side).Then(GlobalTransform(cfg, origin))
}

// ScreenAnchors computes a side's anchors in render-surface coordinates
func ScreenAnchors(cfg overlay.Config, side overlay.Side, sh Shape, origin geometry.Point) Anchors {
	return Compute(cfg.Offset(side), side, sh).Transform(ScreenTransform(cfg, side, origin))
}
