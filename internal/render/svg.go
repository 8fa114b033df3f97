package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/philipparndt/browmap/internal/contour"
	"github.com/philipparndt/browmap/pkg/geometry"
)

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func pt(p geometry.Point) string {
	return num(p.X) + " " + num(p.Y)
}

// PathData returns the SVG path data of a contour
func PathData(c contour.Contour) string {
	if len(c.Segments) == 0 {
		return ""
	}
	d := "M " + pt(c.Segments[0].From)
	for _, s := range c.Segments {
		if s.Kind == contour.Quad {
			d += " Q " + pt(s.Ctrl) + ", " + pt(s.To)
		} else {
			d += " L " + pt(s.To)
		}
	}
	return d + " Z"
}

// WriteSVG writes the scene as a standalone SVG document
func WriteSVG(w io.Writer, s Scene) error {
	bw := bufio.NewWriter(w)
	hex := Hex(s.Color)

	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n",
		num(s.Width), num(s.Height), num(s.Width), num(s.Height))

	if len(s.Grid) > 0 {
		fmt.Fprintf(bw, `  <g id="grid" stroke="%s" opacity="%s">`+"\n", hex, num(s.GridOpacity))
		for _, l := range s.Grid {
			dash := ""
			if l.Dashed {
				dash = ` stroke-dasharray="2,2"`
			}
			fmt.Fprintf(bw, `    <line x1="%s" y1="%s" x2="%s" y2="%s" stroke-width="%s"%s/>`+"\n",
				num(l.From.X), num(l.From.Y), num(l.To.X), num(l.To.Y), num(l.Width), dash)
		}
		fmt.Fprintln(bw, `  </g>`)
	}

	fmt.Fprintf(bw, `  <g id="molds" fill="none" stroke="%s" opacity="%s">`+"\n", hex, num(s.Opacity))
	for _, m := range s.Molds {
		fmt.Fprintf(bw, `    <path id="%s" d="%s" stroke-width="%s"/>`+"\n", m.Side, PathData(m.Contour), num(m.Width))
	}
	fmt.Fprintln(bw, `  </g>`)

	if len(s.Handles) > 0 {
		fmt.Fprintf(bw, `  <g id="handles" fill="%s" stroke="#000">`+"\n", hex)
		for _, h := range s.Handles {
			fmt.Fprintf(bw, `    <circle id="%s" cx="%s" cy="%s" r="%s" stroke-width="%s" opacity="%s"/>`+"\n",
				h.HandleRef, num(h.Center.X), num(h.Center.Y), num(h.Radius), num(h.Outline), num(h.Alpha))
		}
		fmt.Fprintln(bw, `  </g>`)
	}

	fmt.Fprintln(bw, `</svg>`)
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write svg: %w", err)
	}
	return nil
}
