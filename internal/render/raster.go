package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/philipparndt/browmap/internal/contour"
	"github.com/philipparndt/browmap/pkg/geometry"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

var (
	gridDash     = []float64{2, 2}
	handleBorder = color.NRGBA{A: 0xff}
)

// Rasterizer draws scenes onto an image
type Rasterizer struct {
	img    draw.Image
	dasher *rasterx.Dasher
	filler *rasterx.Filler
}

// NewRasterizer creates a rasterizer drawing into img
func NewRasterizer(img draw.Image) *Rasterizer {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	scanner := rasterx.NewScannerGV(width, height, img, b)
	return &Rasterizer{
		img:    img,
		dasher: rasterx.NewDasher(width, height, scanner),
		filler: rasterx.NewFiller(width, height, scanner),
	}
}

func (r *Rasterizer) fix(p geometry.Point) fixed.Point26_6 {
	o := r.img.Bounds().Min
	return rasterx.ToFixedP(p.X-float64(o.X), p.Y-float64(o.Y))
}

func (r *Rasterizer) stroke(width float64, dashes []float64, c color.Color) {
	r.dasher.Clear()
	r.dasher.SetStroke(fixed.Int26_6(width*64), 0, rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.ArcClip, dashes, 0)
	r.dasher.SetColor(c)
}

// Line strokes a straight line
func (r *Rasterizer) Line(l Line, c color.Color) {
	var dashes []float64
	if l.Dashed {
		dashes = gridDash
	}
	r.stroke(l.Width, dashes, c)
	r.dasher.Start(r.fix(l.From))
	r.dasher.Line(r.fix(l.To))
	r.dasher.Stop(false)
	r.dasher.Draw()
}

// Contour strokes a closed contour
func (r *Rasterizer) Contour(ct contour.Contour, width float64, c color.Color) {
	if len(ct.Segments) == 0 {
		return
	}
	r.stroke(width, nil, c)
	r.dasher.Start(r.fix(ct.Segments[0].From))
	for _, s := range ct.Segments {
		switch s.Kind {
		case contour.Quad:
			r.dasher.QuadBezier(r.fix(s.Ctrl), r.fix(s.To))
		default:
			r.dasher.Line(r.fix(s.To))
		}
	}
	r.dasher.Stop(true)
	r.dasher.Draw()
}

// Circle fills a disc
func (r *Rasterizer) Circle(center geometry.Point, radius float64, c color.Color) {
	if radius <= 0 {
		return
	}
	o := r.img.Bounds().Min
	r.filler.Clear()
	r.filler.SetColor(c)
	rasterx.AddCircle(center.X-float64(o.X), center.Y-float64(o.Y), radius, r.filler)
	r.filler.Draw()
}

// Draw renders the whole scene: grid, then molds, then handles on top
func (r *Rasterizer) Draw(s Scene) {
	gridColor := withAlpha(s.Color, s.GridOpacity)
	for _, l := range s.Grid {
		r.Line(l, gridColor)
	}

	moldColor := withAlpha(s.Color, s.Opacity)
	for _, m := range s.Molds {
		r.Contour(m.Contour, m.Width, moldColor)
	}

	for _, h := range s.Handles {
		radius := h.Radius
		if h.Active {
			radius *= 1.5
		}
		r.Circle(h.Center, radius+h.Outline, withAlpha(handleBorder, h.Alpha))
		r.Circle(h.Center, radius, withAlpha(s.Color, h.Alpha))
	}
}

// Rasterize draws the scene onto a new transparent image of the scene size
func Rasterize(s Scene) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, int(s.Width+0.5), int(s.Height+0.5)))
	NewRasterizer(img).Draw(s)
	return img
}
