// Package contour turns mold anchors into a closed drawable outline.
package contour

import (
	"github.com/philipparndt/browmap/internal/anchor"
	"github.com/philipparndt/browmap/internal/overlay"
	"github.com/philipparndt/browmap/pkg/geometry"
)

// Kind tells a renderer how to draw a segment
type Kind int

const (
	Line Kind = iota
	Quad      // quadratic bezier through Ctrl
)

// Segment is one edge of a contour. Ctrl is only meaningful for Quad.
type Segment struct {
	Kind Kind
	From geometry.Point
	Ctrl geometry.Point
	To   geometry.Point
}

// Contour is a closed outline: the last segment ends where the first starts
type Contour struct {
	Segments []Segment
}

// Bend controls how curvature turns chords into curves
type Bend struct {
	// Threshold is the curvature below which segments stay straight
	Threshold float64
	// PerUnit is the control point offset, in local units, per unit of curvature
	PerUnit float64
}

// DefaultBend returns the factory smoothing constants
func DefaultBend() Bend {
	return Bend{Threshold: 0.01, PerUnit: 15}
}

// Generate builds the closed contour through the anchors in ring order.
// Anchors are always segment endpoints; curvature only moves the control
// points, offset along each chord's outward normal.
func Generate(a anchor.Anchors, curvature float64, b Bend) Contour {
	ring := a.Ring()
	segs := make([]Segment, 0, len(ring))
	curved := curvature >= b.Threshold && curvature > 0
	center := geometry.Centroid(ring[:])

	for i := range ring {
		from, to := ring[i], ring[(i+1)%len(ring)]
		seg := Segment{Kind: Line, From: from, To: to}
		if curved {
			if ctrl, ok := bendControl(from, to, center, curvature*b.PerUnit); ok {
				seg.Kind = Quad
				seg.Ctrl = ctrl
			}
		}
		segs = append(segs, seg)
	}
	return Contour{Segments: segs}
}

// bendControl returns the control point for a chord bent outward from
// center by amount. Degenerate chords stay straight.
func bendControl(from, to, center geometry.Point, amount float64) (geometry.Point, bool) {
	chord := to.Sub(from)
	if chord.Length() == 0 {
		return geometry.Point{}, false
	}
	mid := from.Midpoint(to)
	normal := chord.Perp().Normalize()
	if normal.Dot(mid.Sub(center)) < 0 {
		normal = normal.Mul(-1)
	}
	return mid.Add(normal.Mul(amount)), true
}

// ForSide generates the contour of one side in its local space
func ForSide(cfg overlay.Config, side overlay.Side, sh anchor.Shape, b Bend) Contour {
	off := cfg.Offset(side)
	return Generate(anchor.Compute(off, side, sh), off.Curvature, b)
}

// Transform returns the contour with t applied to every point.
// Affine maps preserve quadratic beziers, so control points map directly.
func (c Contour) Transform(t geometry.Affine) Contour {
	out := Contour{Segments: make([]Segment, len(c.Segments))}
	for i, s := range c.Segments {
		out.Segments[i] = Segment{Kind: s.Kind, From: t.Apply(s.From), Ctrl: t.Apply(s.Ctrl), To: t.Apply(s.To)}
	}
	return out
}

// Points returns the segment start points, which are the anchors
func (c Contour) Points() []geometry.Point {
	pts := make([]geometry.Point, len(c.Segments))
	for i, s := range c.Segments {
		pts[i] = s.From
	}
	return pts
}

// Closed reports whether every segment starts where the previous one ended
func (c Contour) Closed() bool {
	n := len(c.Segments)
	if n == 0 {
		return false
	}
	for i, s := range c.Segments {
		if c.Segments[(i+n-1)%n].To != s.From {
			return false
		}
	}
	return true
}
