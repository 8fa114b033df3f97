package render

import (
	"github.com/philipparndt/browmap/internal/anchor"
	"github.com/philipparndt/browmap/internal/overlay"
	"github.com/philipparndt/browmap/pkg/geometry"
)

const (
	gridStroke   = 0.3
	axisStroke   = 0.8
	heightStroke = 1.0
	gridReach    = 250.0
	axisReach    = 300.0
	gridSpan     = 200.0
	tailApex     = 200.0
)

// VisagismGrid returns the construction lines of the brow mapping technique
// in overlay space. The lines follow the current molds: start and arch
// verticals, base/thickness/arch horizontals, the crossed start-to-arch
// diagonals, the tail V from below the face and the brow height line.
func VisagismGrid(cfg overlay.Config, sh anchor.Shape) []Line {
	var l, r anchor.Anchors
	for _, side := range overlay.Sides {
		a := anchor.Compute(cfg.Offset(side), side, sh).Transform(anchor.LocalTransform(cfg, side))
		if side == overlay.Left {
			l = a
		} else {
			r = a
		}
	}

	line := func(x1, y1, x2, y2, w float64) Line {
		return Line{From: geometry.Pt(x1, y1), To: geometry.Pt(x2, y2), Width: w}
	}
	vertical := func(x float64) Line { return line(x, -gridReach, x, gridReach, gridStroke) }
	dashed := func(x float64) Line {
		v := vertical(x)
		v.Dashed = true
		return v
	}
	horizontal := func(yl, yr float64) Line { return line(-gridSpan, yl, gridSpan, yr, gridStroke) }

	return []Line{
		line(0, -axisReach, 0, axisReach, axisStroke),

		vertical(l.TopStart.X),
		vertical(r.TopStart.X),
		dashed(l.TopArch.X),
		dashed(r.TopArch.X),

		horizontal(l.TopStart.Y, r.TopStart.Y),
		horizontal(l.BottomStart.Y, r.BottomStart.Y),
		horizontal(l.TopArch.Y, r.TopArch.Y),

		line(l.TopStart.X, l.TopStart.Y, r.TopStart.X, r.TopArch.Y, gridStroke),
		line(r.TopStart.X, r.TopStart.Y, l.TopStart.X, l.TopArch.Y, gridStroke),

		line(0, tailApex, l.Tail.X, l.Tail.Y, gridStroke),
		line(0, tailApex, r.Tail.X, r.Tail.Y, gridStroke),

		line(l.TopStart.X, l.TopStart.Y, r.TopStart.X, r.TopStart.Y, heightStroke),
	}
}
