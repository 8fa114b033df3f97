package contour

import (
	"testing"

	"github.com/philipparndt/browmap/internal/anchor"
	"github.com/philipparndt/browmap/internal/overlay"
	"github.com/philipparndt/browmap/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func anchorsFor(off overlay.SideOffset, side overlay.Side) anchor.Anchors {
	return anchor.Compute(off, side, anchor.DefaultShape())
}

func TestGenerateIsIdempotent(t *testing.T) {
	cfg := overlay.Default()
	a := ForSide(cfg, overlay.Left, anchor.DefaultShape(), DefaultBend())
	b := ForSide(cfg, overlay.Left, anchor.DefaultShape(), DefaultBend())
	assert.Equal(t, a, b)
}

func TestZeroCurvatureIsPolygon(t *testing.T) {
	off := overlay.Default().RightOffset
	off.Curvature = 0
	a := anchorsFor(off, overlay.Right)

	c := Generate(a, off.Curvature, DefaultBend())

	require.Len(t, c.Segments, 5)
	assert.True(t, c.Closed())
	ring := a.Ring()
	for i, s := range c.Segments {
		assert.Equal(t, Line, s.Kind)
		assert.Equal(t, ring[i], s.From)
		assert.Equal(t, ring[(i+1)%5], s.To)
	}
}

func TestBelowThresholdStaysStraight(t *testing.T) {
	a := anchorsFor(overlay.Default().RightOffset, overlay.Right)
	c := Generate(a, 0.005, DefaultBend())
	for _, s := range c.Segments {
		assert.Equal(t, Line, s.Kind)
	}
}

func TestCurvatureKeepsAnchors(t *testing.T) {
	off := overlay.Default().RightOffset
	a := anchorsFor(off, overlay.Right)

	soft := Generate(a, 0.3, DefaultBend())
	hard := Generate(a, 1.2, DefaultBend())

	ring := a.Ring()
	assert.Equal(t, ring[:], soft.Points())
	assert.Equal(t, ring[:], hard.Points())
	assert.True(t, hard.Closed())

	for i := range hard.Segments {
		s, h := soft.Segments[i], hard.Segments[i]
		require.Equal(t, Quad, h.Kind)
		mid := h.From.Midpoint(h.To)
		assert.Greater(t, h.Ctrl.Distance(mid), s.Ctrl.Distance(mid), "segment %d should bend more", i)
	}
}

func TestBendIsProportional(t *testing.T) {
	a := anchorsFor(overlay.Default().LeftOffset, overlay.Left)
	c := Generate(a, 2, Bend{Threshold: 0.01, PerUnit: 10})

	for _, s := range c.Segments {
		assert.InDelta(t, 20, s.Ctrl.Distance(s.From.Midpoint(s.To)), 1e-9)
	}
}

func TestContourMirrorSymmetry(t *testing.T) {
	off := overlay.Default().LeftOffset
	left := Generate(anchorsFor(off, overlay.Left), off.Curvature, DefaultBend())
	right := Generate(anchorsFor(off, overlay.Right), off.Curvature, DefaultBend())

	for i := range left.Segments {
		l, r := left.Segments[i], right.Segments[i]
		assert.Equal(t, r.From, l.From.MirrorX())
		assert.InDelta(t, r.Ctrl.X, -l.Ctrl.X, 1e-9)
		assert.InDelta(t, r.Ctrl.Y, l.Ctrl.Y, 1e-9)
	}
}

func TestDegenerateChordStaysStraight(t *testing.T) {
	a := anchor.Anchors{
		TopStart:    geometry.Pt(0, 0),
		TopArch:     geometry.Pt(0, 0),
		Tail:        geometry.Pt(10, 0),
		BottomArch:  geometry.Pt(5, 5),
		BottomStart: geometry.Pt(0, 5),
	}
	c := Generate(a, 1, DefaultBend())
	assert.Equal(t, Line, c.Segments[0].Kind)
	assert.Equal(t, Quad, c.Segments[1].Kind)
}

func TestTransformMapsEndpoints(t *testing.T) {
	a := anchorsFor(overlay.Default().RightOffset, overlay.Right)
	c := Generate(a, 0.6, DefaultBend())
	tr := geometry.Scale(2).Then(geometry.Translate(100, 50))

	moved := c.Transform(tr)
	for i, s := range moved.Segments {
		assert.Equal(t, tr.Apply(c.Segments[i].From), s.From)
		assert.Equal(t, tr.Apply(c.Segments[i].Ctrl), s.Ctrl)
	}
}
