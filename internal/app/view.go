package app

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/browmap/internal/camera"
	"github.com/philipparndt/browmap/internal/export"
	"github.com/philipparndt/browmap/internal/gesture"
	"github.com/philipparndt/browmap/internal/overlay"
	"github.com/philipparndt/browmap/internal/render"
	"github.com/philipparndt/browmap/pkg/geometry"
	"golang.org/x/image/draw"
)

// pointerID is the contact id of the mouse; fyne reports a single pointer
const pointerID = 0

// scrollStep is the scale change per scroll unit
const scrollStep = 0.001

// OverlayView shows the camera frame with the overlay on top and turns
// pointer input into gesture events.
type OverlayView struct {
	widget.BaseWidget
	model   *overlay.Model
	machine *gesture.Machine
	latest  *camera.Latest
	raster  *canvas.Raster
	toolbar fyne.CanvasObject
	size    fyne.Size
	onEdit  func()
}

// NewOverlayView creates the view. toolbar floats over the top-left corner
// and is excluded from gestures.
func NewOverlayView(model *overlay.Model, machine *gesture.Machine, latest *camera.Latest, toolbar fyne.CanvasObject) *OverlayView {
	v := &OverlayView{
		model:   model,
		machine: machine,
		latest:  latest,
		toolbar: toolbar,
	}
	v.raster = canvas.NewRaster(v.draw)
	v.ExtendBaseWidget(v)
	return v
}

// SetOnEdit sets the callback run after the view changed the model
func (v *OverlayView) SetOnEdit(fn func()) {
	v.onEdit = fn
}

// draw renders frame and overlay at pixel size w x h
func (v *OverlayView) draw(w, h int) image.Image {
	var frame image.Image
	if v.latest != nil {
		if f, ok := v.latest.Get(); ok {
			frame = f.Image
		}
	}

	opts := export.DefaultOptions()
	opts.Size = image.Pt(w, h)
	opts.Scaler = draw.ApproxBiLinear
	if v.size.Width > 0 {
		opts.Scale = float64(w) / float64(v.size.Width)
	}
	if ref, ok := v.machine.ActiveHandle(); ok {
		opts.Render.Active = &ref
	}
	return export.Compose(frame, v.model.Config(), opts)
}

func (v *OverlayView) handle(ev gesture.Event) {
	if v.machine.Handle(ev) {
		v.changed()
	}
}

func (v *OverlayView) changed() {
	v.raster.Refresh()
	if v.onEdit != nil {
		v.onEdit()
	}
}

func point(p fyne.Position) geometry.Point {
	return geometry.Pt(float64(p.X), float64(p.Y))
}

// MouseDown starts a contact
func (v *OverlayView) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	v.handle(gesture.Event{Type: gesture.Start, ID: pointerID, Pos: point(ev.Position)})
	v.raster.Refresh()
}

// MouseUp ends the contact; a second end after DragEnd is ignored
func (v *OverlayView) MouseUp(ev *desktop.MouseEvent) {
	v.handle(gesture.Event{Type: gesture.End, ID: pointerID, Pos: point(ev.Position)})
	v.raster.Refresh()
}

// Dragged moves the contact
func (v *OverlayView) Dragged(ev *fyne.DragEvent) {
	v.handle(gesture.Event{Type: gesture.Move, ID: pointerID, Pos: point(ev.Position)})
}

// DragEnd ends the contact
func (v *OverlayView) DragEnd() {
	v.handle(gesture.Event{Type: gesture.End, ID: pointerID})
	v.raster.Refresh()
}

// Scrolled zooms the edit target
func (v *OverlayView) Scrolled(ev *fyne.ScrollEvent) {
	cfg := v.model.Config()
	scale := overlay.FieldValue(cfg, overlay.FieldScale, cfg.TargetSide)
	scale *= 1 + float64(ev.Scrolled.DY)*scrollStep
	if v.model.SetField(overlay.FieldScale, scale) {
		v.changed()
	}
}

// Refresh redraws the frame and overlay
func (v *OverlayView) Refresh() {
	v.raster.Refresh()
	v.BaseWidget.Refresh()
}

// CreateRenderer creates the renderer for the widget
func (v *OverlayView) CreateRenderer() fyne.WidgetRenderer {
	objects := []fyne.CanvasObject{v.raster}
	if v.toolbar != nil {
		objects = append(objects, v.toolbar)
	}
	return &overlayViewRenderer{view: v, objects: objects}
}

type overlayViewRenderer struct {
	view    *OverlayView
	objects []fyne.CanvasObject
}

func (r *overlayViewRenderer) Layout(size fyne.Size) {
	v := r.view
	v.size = size
	v.raster.Resize(size)
	v.raster.Move(fyne.NewPos(0, 0))
	v.machine.SetOrigin(geometry.Pt(float64(size.Width)/2, float64(size.Height)/2))

	if v.toolbar != nil {
		tb := v.toolbar.MinSize()
		v.toolbar.Move(fyne.NewPos(0, 0))
		v.toolbar.Resize(tb)
		v.machine.SetReserved(geometry.Rect{Width: float64(tb.Width), Height: float64(tb.Height)})
	}
}

func (r *overlayViewRenderer) MinSize() fyne.Size {
	return fyne.NewSize(480, 360)
}

func (r *overlayViewRenderer) Refresh() {
	r.view.raster.Refresh()
	canvas.Refresh(r.view)
}

func (r *overlayViewRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *overlayViewRenderer) Destroy() {}
