package app

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/browmap/internal/overlay"
)

// sliderSpec describes the range of one sidebar slider
type sliderSpec struct {
	field     overlay.FieldID
	label     string
	min, max  float64
	step      float64
	precision int
}

var (
	positionSliders = []sliderSpec{
		{overlay.FieldPosY, "Vertical", -500, 500, 1, 0},
		{overlay.FieldPosX, "Horizontal", -500, 500, 1, 0},
		{overlay.FieldScale, "Scale", 0.2, 5, 0.01, 2},
		{overlay.FieldRotation, "Rotation", -90, 90, 0.5, 1},
		{overlay.FieldSpacing, "Spacing", 0, 300, 1, 0},
	}
	shapeSliders = []sliderSpec{
		{overlay.FieldWidth, "Length", 30, 350, 1, 0},
		{overlay.FieldArchHeight, "Arch height", 0, 120, 1, 0},
		{overlay.FieldBottomArch, "Lower arch", -30, 80, 1, 0},
		{overlay.FieldThickness, "Thickness", 1, 50, 0.5, 1},
		{overlay.FieldCurvature, "Curvature", 0, 2, 0.05, 2},
	}
	styleSliders = []sliderSpec{
		{overlay.FieldOpacity, "Opacity", 0.05, 1, 0.05, 2},
		{overlay.FieldHandleSize, "Handle size", 2, 16, 0.5, 1},
	}
)

var targetLabels = map[overlay.TargetSide]string{
	overlay.TargetLeft:  "Left",
	overlay.TargetBoth:  "Both",
	overlay.TargetRight: "Right",
}

type boundSlider struct {
	spec   sliderSpec
	slider *widget.Slider
	value  *widget.Label
}

// Sidebar holds the discrete edit controls. Every control writes through
// the model and Sync pulls the model back into the controls.
type Sidebar struct {
	model   *overlay.Model
	onEdit  func()
	syncing bool

	target  *widget.RadioGroup
	sliders []*boundSlider
	color   *widget.Select
	mirror  *widget.Check
	grid    *widget.Check
	guides  *widget.Check

	content fyne.CanvasObject
}

// SidebarActions are the buttons at the bottom of the sidebar
type SidebarActions struct {
	Save     func()
	Reset    func()
	Snapshot func()
}

// NewSidebar builds the controls; onEdit runs after every model change
func NewSidebar(model *overlay.Model, actions SidebarActions, onEdit func()) *Sidebar {
	s := &Sidebar{model: model, onEdit: onEdit}

	s.target = widget.NewRadioGroup([]string{
		targetLabels[overlay.TargetLeft],
		targetLabels[overlay.TargetBoth],
		targetLabels[overlay.TargetRight],
	}, func(label string) {
		for t, l := range targetLabels {
			if l == label {
				s.edit(func() bool { return s.model.SetTargetSide(t) })
				return
			}
		}
	})
	s.target.Horizontal = true
	s.target.Required = true

	s.color = widget.NewSelect(overlay.Palette, func(c string) {
		s.edit(func() bool { return s.model.SetDisplay(overlay.DisplayPatch{Color: &c}) })
	})
	s.mirror = widget.NewCheck("Mirror camera", func(on bool) {
		s.edit(func() bool { return s.model.SetDisplay(overlay.DisplayPatch{Mirror: overlay.B(on)}) })
	})
	s.grid = widget.NewCheck("Visagism grid", func(on bool) {
		s.edit(func() bool { return s.model.SetDisplay(overlay.DisplayPatch{ShowVisagismGrid: overlay.B(on)}) })
	})
	s.guides = widget.NewCheck("Handles", func(on bool) {
		s.edit(func() bool { return s.model.SetDisplay(overlay.DisplayPatch{ShowGuides: overlay.B(on)}) })
	})

	saveButton := widget.NewButton("Save", actions.Save)
	resetButton := widget.NewButton("Reset", actions.Reset)
	snapshotButton := widget.NewButton("Snapshot", actions.Snapshot)

	title := widget.NewLabel("Edit side")
	title.TextStyle = fyne.TextStyle{Bold: true}

	panel := container.NewVBox(
		title,
		s.target,
		widget.NewSeparator(),
		s.section("Position", positionSliders),
		widget.NewSeparator(),
		s.section("Shape", shapeSliders),
		widget.NewSeparator(),
		s.section("Style", styleSliders),
		s.color,
		s.mirror,
		s.grid,
		s.guides,
		widget.NewSeparator(),
		container.NewGridWithColumns(3, saveButton, resetButton, snapshotButton),
	)

	scroll := container.NewVScroll(panel)
	scroll.SetMinSize(fyne.NewSize(300, 0))
	s.content = scroll

	s.Sync()
	return s
}

func (s *Sidebar) section(title string, specs []sliderSpec) fyne.CanvasObject {
	header := widget.NewLabel(title)
	header.TextStyle = fyne.TextStyle{Bold: true}
	box := container.NewVBox(header)

	for _, spec := range specs {
		b := &boundSlider{
			spec:   spec,
			slider: widget.NewSlider(spec.min, spec.max),
			value:  widget.NewLabel(""),
		}
		b.slider.Step = spec.step
		b.slider.OnChanged = func(v float64) {
			b.value.SetText(format(b.spec, v))
			s.edit(func() bool { return s.model.SetField(b.spec.field, v) })
		}
		s.sliders = append(s.sliders, b)
		box.Add(container.NewBorder(nil, nil, widget.NewLabel(spec.label), b.value))
		box.Add(b.slider)
	}
	return box
}

func format(spec sliderSpec, v float64) string {
	return fmt.Sprintf("%.*f", spec.precision, v)
}

// edit runs a model mutation triggered by a control. Control callbacks
// fired by Sync itself are ignored.
func (s *Sidebar) edit(mutate func() bool) {
	if s.syncing || !mutate() {
		return
	}
	s.Sync()
	if s.onEdit != nil {
		s.onEdit()
	}
}

// Sync updates every control from the model. Slider values reflect the
// current edit target.
func (s *Sidebar) Sync() {
	s.syncing = true
	defer func() { s.syncing = false }()

	cfg := s.model.Config()
	s.target.SetSelected(targetLabels[cfg.TargetSide])
	for _, b := range s.sliders {
		v := overlay.FieldValue(cfg, b.spec.field, cfg.TargetSide)
		b.slider.SetValue(v)
		b.value.SetText(format(b.spec, v))
	}
	s.color.SetSelected(cfg.Color)
	s.mirror.SetChecked(cfg.Mirror)
	s.grid.SetChecked(cfg.ShowVisagismGrid)
	s.guides.SetChecked(cfg.ShowGuides)
}

// Content returns the sidebar container
func (s *Sidebar) Content() fyne.CanvasObject {
	return s.content
}
