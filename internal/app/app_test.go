package app

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/philipparndt/browmap/internal/camera"
	"github.com/philipparndt/browmap/internal/gesture"
	"github.com/philipparndt/browmap/internal/overlay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newView(t *testing.T) (*OverlayView, *overlay.Model) {
	test.NewTempApp(t)
	model := overlay.NewModel(overlay.Default())
	v := NewOverlayView(model, gesture.New(model), &camera.Latest{}, nil)
	w := test.NewWindow(v)
	t.Cleanup(w.Close)
	w.Resize(fyne.NewSize(800, 600))
	return v, model
}

func mouse(x, y float32) *desktop.MouseEvent {
	ev := &desktop.MouseEvent{Button: desktop.MouseButtonPrimary}
	ev.Position = fyne.NewPos(x, y)
	return ev
}

func drag(x, y float32) *fyne.DragEvent {
	ev := &fyne.DragEvent{}
	ev.Position = fyne.NewPos(x, y)
	return ev
}

func TestViewPansOverlay(t *testing.T) {
	v, model := newView(t)
	edits := 0
	v.SetOnEdit(func() { edits++ })

	v.MouseDown(mouse(20, 20))
	v.Dragged(drag(30, 35))
	v.DragEnd()
	v.MouseUp(mouse(30, 35))

	assert.Equal(t, 10.0, model.Config().PosX)
	assert.Equal(t, -45.0, model.Config().PosY)
	assert.Equal(t, 1, edits)
}

func TestViewScrollZooms(t *testing.T) {
	v, model := newView(t)
	v.Scrolled(&fyne.ScrollEvent{Scrolled: fyne.Delta{DY: 100}})
	assert.InDelta(t, 1.1*1.1, model.Config().Scale, 1e-9)
}

func TestViewDrawsAtPixelSize(t *testing.T) {
	v, _ := newView(t)
	img := v.draw(400, 300)
	require.NotNil(t, img)
	assert.Equal(t, 400, img.Bounds().Dx())
}

func TestSidebarWritesThroughModel(t *testing.T) {
	test.NewTempApp(t)
	model := overlay.NewModel(overlay.Default())
	edits := 0
	s := NewSidebar(model, SidebarActions{}, func() { edits++ })
	assert.Equal(t, 0, edits, "initial sync must not edit the model")
	assert.Equal(t, overlay.Default(), model.Config())

	s.target.SetSelected("Right")
	assert.Equal(t, overlay.TargetRight, model.Config().TargetSide)

	for _, b := range s.sliders {
		if b.spec.field == overlay.FieldArchHeight {
			b.slider.SetValue(40)
		}
	}
	assert.Equal(t, 40.0, model.Config().RightOffset.ArchHeight)
	assert.Equal(t, 22.0, model.Config().LeftOffset.ArchHeight)

	s.mirror.SetChecked(false)
	assert.False(t, model.Config().Mirror)
	assert.Equal(t, 3, edits)
}

func TestSidebarSyncFollowsTarget(t *testing.T) {
	test.NewTempApp(t)
	cfg := overlay.Default()
	cfg.LeftOffset.Width = 90
	model := overlay.NewModel(cfg)
	s := NewSidebar(model, SidebarActions{}, nil)

	width := func() float64 {
		for _, b := range s.sliders {
			if b.spec.field == overlay.FieldWidth {
				return b.slider.Value
			}
		}
		t.Fatal("no width slider")
		return 0
	}

	model.SetTargetSide(overlay.TargetLeft)
	s.Sync()
	assert.Equal(t, 90.0, width())

	model.SetTargetSide(overlay.TargetRight)
	s.Sync()
	assert.Equal(t, 120.0, width())
}
