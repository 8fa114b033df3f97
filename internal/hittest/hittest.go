// Package hittest maps a pointer position to the mold handle under it.
package hittest

import (
	"github.com/philipparndt/browmap/internal/anchor"
	"github.com/philipparndt/browmap/internal/overlay"
	"github.com/philipparndt/browmap/pkg/geometry"
)

// DefaultThreshold is the pick radius in screen units
const DefaultThreshold = 44.0

// Tester finds handles near a pointer
type Tester struct {
	Threshold float64
	Shape     anchor.Shape
}

// New returns a tester with the default threshold and mold proportions
func New() Tester {
	return Tester{Threshold: DefaultThreshold, Shape: anchor.DefaultShape()}
}

// Handle is a handle together with its position on the render surface
type Handle struct {
	anchor.HandleRef
	Pos geometry.Point
}

// Positions returns every handle in hit-test order: left side first, and
// within a side pos, thickness, arch, bottomArch, width.
func (t Tester) Positions(cfg overlay.Config, origin geometry.Point) []Handle {
	handles := make([]Handle, 0, len(overlay.Sides)*len(anchor.HandleTypes))
	for _, side := range overlay.Sides {
		a := anchor.ScreenAnchors(cfg, side, t.Shape, origin)
		for _, typ := range anchor.HandleTypes {
			handles = append(handles, Handle{
				HandleRef: anchor.HandleRef{Side: side, Type: typ},
				Pos:       a.Point(typ),
			})
		}
	}
	return handles
}

// Test returns the first handle, in hit-test order, closer to pointer than
// the threshold. It is not the nearest handle when several qualify.
// Handles are not pickable while guides are hidden.
func (t Tester) Test(cfg overlay.Config, pointer, origin geometry.Point) (anchor.HandleRef, bool) {
	if !cfg.ShowGuides {
		return anchor.HandleRef{}, false
	}
	for _, h := range t.Positions(cfg, origin) {
		if h.Pos.Distance(pointer) < t.Threshold {
			return h.HandleRef, true
		}
	}
	return anchor.HandleRef{}, false
}
