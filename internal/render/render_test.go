package render

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"github.com/philipparndt/browmap/internal/anchor"
	"github.com/philipparndt/browmap/internal/contour"
	"github.com/philipparndt/browmap/internal/hittest"
	"github.com/philipparndt/browmap/internal/overlay"
	"github.com/philipparndt/browmap/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var vp = Viewport{Width: 800, Height: 600}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#ffff00")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 255, G: 255, A: 255}, c)

	c, err = ParseHex("0f0")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{G: 255, A: 255}, c)
	assert.Equal(t, "#00ff00", Hex(c))

	_, err = ParseHex("#12345")
	assert.Error(t, err)
	_, err = ParseHex("#gggggg")
	assert.Error(t, err)
}

func TestBuildMatchesHitTester(t *testing.T) {
	cfg := overlay.Default()
	cfg.Rotation = 12
	cfg.RightOffset.Scale = 1.3
	scene := Build(cfg, vp, DefaultOptions())

	want := hittest.New().Positions(cfg, vp.Origin())
	require.Len(t, scene.Handles, len(want))
	for i, h := range want {
		assert.Equal(t, h.HandleRef, scene.Handles[i].HandleRef)
		assert.InDelta(t, h.Pos.X, scene.Handles[i].Center.X, 1e-9)
		assert.InDelta(t, h.Pos.Y, scene.Handles[i].Center.Y, 1e-9)
	}
}

func TestBuildHidesGuidesAndGrid(t *testing.T) {
	cfg := overlay.Default()
	cfg.ShowGuides = false
	cfg.ShowVisagismGrid = false
	scene := Build(cfg, vp, DefaultOptions())

	assert.Empty(t, scene.Handles)
	assert.Empty(t, scene.Grid)
	assert.Len(t, scene.Molds, 2)
}

func TestBuildEmphasizesTargetSide(t *testing.T) {
	cfg := overlay.Default()
	cfg.Scale = 1
	cfg.TargetSide = overlay.TargetLeft
	scene := Build(cfg, vp, DefaultOptions())

	assert.Equal(t, 2.5, scene.Molds[0].Width)
	assert.Equal(t, 1.0, scene.Molds[1].Width)
	for _, h := range scene.Handles {
		if h.Side == overlay.Left {
			assert.Equal(t, 1.0, h.Alpha)
		} else {
			assert.Equal(t, 0.2, h.Alpha)
		}
	}

	cfg.TargetSide = overlay.TargetBoth
	scene = Build(cfg, vp, DefaultOptions())
	assert.Equal(t, 1.0, scene.Molds[0].Width)
	assert.Equal(t, 1.0, scene.Molds[1].Width)
}

func TestBuildMarksActiveHandle(t *testing.T) {
	active := anchor.HandleRef{Side: overlay.Right, Type: anchor.HandleArch}
	opts := DefaultOptions()
	opts.Active = &active
	scene := Build(overlay.Default(), vp, opts)

	count := 0
	for _, h := range scene.Handles {
		if h.Active {
			count++
			assert.Equal(t, active, h.HandleRef)
		}
	}
	assert.Equal(t, 1, count)
}

func TestViewportScale(t *testing.T) {
	cfg := overlay.Default()
	small := Build(cfg, vp, DefaultOptions())
	big := Build(cfg, Viewport{Width: 1600, Height: 1200, Scale: 2}, DefaultOptions())

	for i := range small.Handles {
		assert.InDelta(t, small.Handles[i].Center.X*2, big.Handles[i].Center.X, 1e-9)
		assert.InDelta(t, small.Handles[i].Center.Y*2, big.Handles[i].Center.Y, 1e-9)
	}
}

func TestVisagismGridIsSymmetric(t *testing.T) {
	cfg := overlay.Default()
	lines := VisagismGrid(cfg, anchor.DefaultShape())
	require.Len(t, lines, 13)

	// start verticals
	assert.InDelta(t, -lines[1].From.X, lines[2].From.X, 1e-9)
	// arch verticals
	assert.True(t, lines[3].Dashed)
	assert.InDelta(t, -lines[3].From.X, lines[4].From.X, 1e-9)
	// tail V
	assert.Equal(t, geometry.Pt(0, 200), lines[10].From)
	assert.InDelta(t, -lines[10].To.X, lines[11].To.X, 1e-9)
	assert.InDelta(t, lines[10].To.Y, lines[11].To.Y, 1e-9)
}

func TestVisagismGridFollowsOffsets(t *testing.T) {
	cfg := overlay.Default()
	before := VisagismGrid(cfg, anchor.DefaultShape())
	cfg.LeftOffset.X = -10
	after := VisagismGrid(cfg, anchor.DefaultShape())
	assert.InDelta(t, before[1].From.X-10, after[1].From.X, 1e-9)
	assert.Equal(t, before[2], after[2])
}

func TestPathData(t *testing.T) {
	c := contour.Contour{Segments: []contour.Segment{
		{Kind: contour.Line, From: geometry.Pt(0, 0), To: geometry.Pt(10, 0)},
		{Kind: contour.Quad, From: geometry.Pt(10, 0), Ctrl: geometry.Pt(5, 5), To: geometry.Pt(0, 0)},
	}}
	assert.Equal(t, "M 0 0 L 10 0 Q 5 5, 0 0 Z", PathData(c))
	assert.Equal(t, "", PathData(contour.Contour{}))
}

func TestWriteSVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, Build(overlay.Default(), vp, DefaultOptions())))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<svg"))
	assert.Contains(t, out, `stroke="#ffff00"`)
	assert.Contains(t, out, `<path id="left"`)
	assert.Contains(t, out, `<path id="right"`)
	assert.Contains(t, out, `id="right.bottomArch"`)
	assert.Contains(t, out, `stroke-dasharray="2,2"`)
	assert.Equal(t, 10, strings.Count(out, "<circle"))
}

func TestRasterizeDrawsMolds(t *testing.T) {
	cfg := overlay.Default()
	cfg.ShowVisagismGrid = false
	cfg.ShowGuides = false
	cfg.Opacity = 1
	scene := Build(cfg, vp, DefaultOptions())
	img := Rasterize(scene)

	require.Equal(t, 800, img.Bounds().Dx())
	start := scene.Molds[0].Contour.Segments[0].From
	px := img.NRGBAAt(int(start.X), int(start.Y))
	assert.NotZero(t, px.A, "mold outline should be painted at its start anchor")

	corner := img.NRGBAAt(0, 0)
	assert.Zero(t, corner.A)
}

func TestRasterizeHandles(t *testing.T) {
	cfg := overlay.Default()
	cfg.ShowVisagismGrid = false
	scene := Build(cfg, vp, DefaultOptions())
	img := Rasterize(scene)

	c := scene.Handles[2].Center
	px := img.NRGBAAt(int(c.X+0.5), int(c.Y+0.5))
	assert.Equal(t, uint8(255), px.R)
	assert.Equal(t, uint8(255), px.G)
}
