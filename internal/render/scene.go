// Package render lays the overlay out in screen space and draws it, either
// onto an image with rasterx or as an SVG document.
package render

import (
	"image/color"

	"github.com/philipparndt/browmap/internal/anchor"
	"github.com/philipparndt/browmap/internal/contour"
	"github.com/philipparndt/browmap/internal/overlay"
	"github.com/philipparndt/browmap/pkg/geometry"
)

const (
	targetStroke   = 2.5
	regularStroke  = 1.0
	dimmedHandles  = 0.2
	handleOutline  = 0.3
	gridOpacityMul = 0.5
)

// Viewport is the drawing surface. Width and Height are in pixels; Scale is
// pixels per overlay unit, 0 meaning 1.
type Viewport struct {
	Width, Height float64
	Scale         float64
}

// Origin returns the surface center where the overlay is anchored
func (v Viewport) Origin() geometry.Point {
	return geometry.Pt(v.Width/2, v.Height/2)
}

func (v Viewport) scale() float64 {
	if v.Scale <= 0 {
		return 1
	}
	return v.Scale
}

// Transform maps overlay space onto the viewport
func (v Viewport) Transform(cfg overlay.Config) geometry.Affine {
	return anchor.GlobalTransform(cfg, geometry.Point{}).
		Then(geometry.Scale(v.scale())).
		Then(geometry.Translate(v.Width/2, v.Height/2))
}

// Options tune the scene
type Options struct {
	Shape anchor.Shape
	Bend  contour.Bend
	// Active highlights the handle being dragged
	Active    *anchor.HandleRef
	HideGrid  bool
	HideMolds bool
}

// DefaultOptions returns the factory mold proportions and smoothing
func DefaultOptions() Options {
	return Options{Shape: anchor.DefaultShape(), Bend: contour.DefaultBend()}
}

// Mold is one side's outline in screen space
type Mold struct {
	Side    overlay.Side
	Contour contour.Contour
	Width   float64
	Target  bool
}

// Line is a straight grid line in screen space
type Line struct {
	From, To geometry.Point
	Width    float64
	Dashed   bool
}

// Dot is a handle marker in screen space
type Dot struct {
	anchor.HandleRef
	Center  geometry.Point
	Radius  float64
	Outline float64
	Alpha   float64
	Active  bool
}

// Scene is everything to draw for one configuration, in screen space
type Scene struct {
	Width, Height float64
	Color         color.NRGBA
	Opacity       float64
	GridOpacity   float64
	Grid          []Line
	Molds         []Mold
	Handles       []Dot
}

// Build lays out the overlay for cfg on the viewport
func Build(cfg overlay.Config, vp Viewport, opts Options) Scene {
	c, err := ParseHex(cfg.Color)
	if err != nil {
		c = Fallback
	}
	view := vp.Transform(cfg)
	unit := cfg.Scale * vp.scale()

	s := Scene{
		Width:       vp.Width,
		Height:      vp.Height,
		Color:       c,
		Opacity:     cfg.Opacity,
		GridOpacity: cfg.Opacity * gridOpacityMul,
	}

	if cfg.ShowVisagismGrid && !opts.HideGrid {
		for _, l := range VisagismGrid(cfg, opts.Shape) {
			s.Grid = append(s.Grid, Line{
				From:   view.Apply(l.From),
				To:     view.Apply(l.To),
				Width:  l.Width * unit,
				Dashed: l.Dashed,
			})
		}
	}

	for _, side := range overlay.Sides {
		local := anchor.LocalTransform(cfg, side)
		toScreen := local.Then(view)
		off := cfg.Offset(side)
		target := cfg.TargetSide.Targets(side)
		sideUnit := unit * off.Scale

		if !opts.HideMolds {
			width := regularStroke
			if cfg.TargetSide != overlay.TargetBoth && target {
				width = targetStroke
			}
			s.Molds = append(s.Molds, Mold{
				Side:    side,
				Contour: contour.ForSide(cfg, side, opts.Shape, opts.Bend).Transform(toScreen),
				Width:   width * sideUnit,
				Target:  target,
			})
		}

		if !cfg.ShowGuides {
			continue
		}
		alpha := 1.0
		if !target {
			alpha = dimmedHandles
		}
		a := anchor.Compute(off, side, opts.Shape).Transform(toScreen)
		for _, typ := range anchor.HandleTypes {
			ref := anchor.HandleRef{Side: side, Type: typ}
			s.Handles = append(s.Handles, Dot{
				HandleRef: ref,
				Center:    a.Point(typ),
				Radius:    cfg.HandleSize * sideUnit,
				Outline:   handleOutline * sideUnit,
				Alpha:     alpha,
				Active:    opts.Active != nil && *opts.Active == ref,
			})
		}
	}
	return s
}
