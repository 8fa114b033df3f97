// Package anchor derives the named control points of a mold from its
// shape parameters, and the transforms that place them on screen.
package anchor

import (
	"github.com/philipparndt/browmap/internal/overlay"
	"github.com/philipparndt/browmap/pkg/geometry"
)

// Shape holds the constants that fix the proportions of a mold.
// They vary between shape revisions and can be overridden.
type Shape struct {
	ArchRatio       float64 // position of the arch peak along the width
	TailDrop        float64 // tail height as a fraction of the arch height, in [0.1, 0.4]
	BottomArchRatio float64 // bottom arch position relative to ArchRatio
}

// DefaultShape returns the golden-ratio mold proportions
func DefaultShape() Shape {
	return Shape{
		ArchRatio:       0.618,
		TailDrop:        0.3,
		BottomArchRatio: 0.95,
	}
}

// Anchors are the five named points of one mold in the side's local space
type Anchors struct {
	TopStart    geometry.Point
	TopArch     geometry.Point
	Tail        geometry.Point
	BottomArch  geometry.Point
	BottomStart geometry.Point
}

// Compute returns the anchors of a side offset. dir comes from the side so
// identical offsets on both sides are exact mirror images.
func Compute(off overlay.SideOffset, side overlay.Side, sh Shape) Anchors {
	dir := side.Dir()
	w, h := off.Width, off.ArchHeight
	return Anchors{
		TopStart:    geometry.Pt(0, 0),
		TopArch:     geometry.Pt(w*sh.ArchRatio*dir, -h),
		Tail:        geometry.Pt(w*dir, h*sh.TailDrop),
		BottomArch:  geometry.Pt(w*sh.ArchRatio*sh.BottomArchRatio*dir, -h+off.Thickness+off.BottomArch),
		BottomStart: geometry.Pt(0, off.Thickness),
	}
}

// Ring returns the anchors in contour order, starting at TopStart
func (a Anchors) Ring() [5]geometry.Point {
	return [5]geometry.Point{a.TopStart, a.TopArch, a.Tail, a.BottomArch, a.BottomStart}
}

// Transform returns the anchors with t applied to every point
func (a Anchors) Transform(t geometry.Affine) Anchors {
	return Anchors{
		TopStart:    t.Apply(a.TopStart),
		TopArch:     t.Apply(a.TopArch),
		Tail:        t.Apply(a.Tail),
		BottomArch:  t.Apply(a.BottomArch),
		BottomStart: t.Apply(a.BottomStart),
	}
}
