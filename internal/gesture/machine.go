package gesture

import (
	"log/slog"
	"math"

	"github.com/philipparndt/browmap/internal/anchor"
	"github.com/philipparndt/browmap/internal/hittest"
	"github.com/philipparndt/browmap/internal/overlay"
	"github.com/philipparndt/browmap/pkg/geometry"
)

// Policy selects between gesture behaviors that differ across product revisions
type Policy struct {
	// FlipPanWhenMirrored negates the horizontal pan delta while the
	// preview is mirrored, so the mold follows the finger on screen.
	FlipPanWhenMirrored bool
	// ResumePanAfterPinch continues as a pan with the remaining contact
	// when one finger of a pinch lifts. Otherwise the session ends and
	// the remaining contact is ignored until every contact is up.
	ResumePanAfterPinch bool
}

type contact struct {
	id  int
	pos geometry.Point
}

// pinch is the baseline captured when a pinch starts
type pinch struct {
	ids      [2]int
	distance float64
	angle    float64
	scale    float64
	rotation float64
	target   overlay.TargetSide
}

// session is the transient state of the current gesture
type session struct {
	mode    Mode
	primary int
	last    geometry.Point
	handle  anchor.HandleRef
	pinch   pinch
	// ignored is set when the gesture started in a reserved region or
	// its pinch ended; events are dropped until every contact lifts.
	ignored bool
}

// Machine turns contact events into model edits.
// It is driven from the host's input goroutine and is not safe for
// concurrent use.
type Machine struct {
	model    *overlay.Model
	tester   hittest.Tester
	policy   Policy
	origin   geometry.Point
	reserved []geometry.Rect
	log      *slog.Logger

	contacts []contact
	s        session
}

// Option configures a Machine
type Option func(*Machine)

// WithTester overrides the hit tester used to pick handles
func WithTester(t hittest.Tester) Option {
	return func(m *Machine) { m.tester = t }
}

// WithPolicy overrides the gesture policy
func WithPolicy(p Policy) Option {
	return func(m *Machine) { m.policy = p }
}

// WithOrigin sets the render-surface point the overlay is centered on
func WithOrigin(p geometry.Point) Option {
	return func(m *Machine) { m.origin = p }
}

// WithReserved sets regions covered by UI controls
func WithReserved(rects ...geometry.Rect) Option {
	return func(m *Machine) { m.reserved = rects }
}

// WithLogger sets the logger used for sequence anomalies
func WithLogger(l *slog.Logger) Option {
	return func(m *Machine) { m.log = l }
}

// New creates a machine editing model
func New(model *overlay.Model, opts ...Option) *Machine {
	m := &Machine{
		model:  model,
		tester: hittest.New(),
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SetOrigin moves the overlay center, e.g. after the surface was resized
func (m *Machine) SetOrigin(p geometry.Point) { m.origin = p }

// SetReserved replaces the reserved regions
func (m *Machine) SetReserved(rects ...geometry.Rect) { m.reserved = rects }

// Mode returns the current gesture mode
func (m *Machine) Mode() Mode { return m.s.mode }

// ActiveHandle returns the handle being dragged, if any
func (m *Machine) ActiveHandle() (anchor.HandleRef, bool) {
	if m.s.mode != HandleDrag {
		return anchor.HandleRef{}, false
	}
	return m.s.handle, true
}

// Contacts returns the number of contacts currently down
func (m *Machine) Contacts() int { return len(m.contacts) }

// Reset drops all contacts and returns to Idle
func (m *Machine) Reset() {
	m.contacts = m.contacts[:0]
	m.s = session{}
}

// Handle processes one event and reports whether the model changed
func (m *Machine) Handle(ev Event) bool {
	switch ev.Type {
	case Start:
		return m.start(ev)
	case Move:
		return m.move(ev)
	case End:
		return m.end(ev)
	case Cancel:
		m.Reset()
		return false
	}
	m.log.Debug("ignoring unknown event", "type", ev.Type, "id", ev.ID)
	return false
}

func (m *Machine) find(id int) int {
	for i, c := range m.contacts {
		if c.id == id {
			return i
		}
	}
	return -1
}

func (m *Machine) inReserved(p geometry.Point) bool {
	for _, r := range m.reserved {
		if r.Contains(p) {
			return true
		}
	}
	return false
}

func (m *Machine) start(ev Event) bool {
	if !ev.Pos.IsFinite() {
		m.log.Debug("ignoring start with invalid position", "id", ev.ID)
		return false
	}
	if m.find(ev.ID) >= 0 {
		m.log.Debug("ignoring duplicate start", "id", ev.ID, "mode", m.s.mode)
		return false
	}
	m.contacts = append(m.contacts, contact{id: ev.ID, pos: ev.Pos})

	if len(m.contacts) == 1 {
		m.s = session{primary: ev.ID, last: ev.Pos}
		if m.inReserved(ev.Pos) {
			m.s.ignored = true
			return false
		}
		if ref, ok := m.tester.Test(m.model.Config(), ev.Pos, m.origin); ok {
			m.s.mode = HandleDrag
			m.s.handle = ref
			return false
		}
		m.s.mode = Pan
		return false
	}

	if m.s.ignored {
		return false
	}
	if m.s.mode == Pan && len(m.contacts) == 2 {
		m.beginPinch(m.contacts[0], m.contacts[1])
		return false
	}
	m.log.Debug("ignoring extra contact", "id", ev.ID, "mode", m.s.mode, "contacts", len(m.contacts))
	return false
}

func (m *Machine) beginPinch(a, b contact) {
	cfg := m.model.Config()
	scale, rotation := cfg.EditScaleRotation(cfg.TargetSide)
	m.s.mode = PinchRotate
	m.s.pinch = pinch{
		ids:      [2]int{a.id, b.id},
		distance: a.pos.Distance(b.pos),
		angle:    a.pos.AngleTo(b.pos),
		scale:    scale,
		rotation: rotation,
		target:   cfg.TargetSide,
	}
}

func (m *Machine) move(ev Event) bool {
	i := m.find(ev.ID)
	if i < 0 {
		m.log.Debug("ignoring move without start", "id", ev.ID)
		return false
	}
	if !ev.Pos.IsFinite() {
		m.log.Debug("ignoring move with invalid position", "id", ev.ID)
		return false
	}
	m.contacts[i].pos = ev.Pos
	if m.s.ignored {
		return false
	}

	switch m.s.mode {
	case Pan:
		if ev.ID != m.s.primary {
			return false
		}
		return m.pan(m.step(ev.Pos))
	case HandleDrag:
		if ev.ID != m.s.primary {
			return false
		}
		return m.drag(m.step(ev.Pos))
	case PinchRotate:
		if ev.ID != m.s.pinch.ids[0] && ev.ID != m.s.pinch.ids[1] {
			return false
		}
		return m.rotate()
	}
	return false
}

func (m *Machine) end(ev Event) bool {
	i := m.find(ev.ID)
	if i < 0 {
		m.log.Debug("ignoring end without start", "id", ev.ID)
		return false
	}
	m.contacts = append(m.contacts[:i], m.contacts[i+1:]...)

	if len(m.contacts) == 0 {
		m.s = session{}
		return false
	}
	if m.s.ignored {
		return false
	}

	switch m.s.mode {
	case PinchRotate:
		ids := m.s.pinch.ids
		if ev.ID != ids[0] && ev.ID != ids[1] {
			return false
		}
		rest := ids[0]
		if ev.ID == rest {
			rest = ids[1]
		}
		if j := m.find(rest); m.policy.ResumePanAfterPinch && j >= 0 {
			m.s = session{mode: Pan, primary: rest, last: m.contacts[j].pos}
			return false
		}
		m.s = session{ignored: true}
	case Pan, HandleDrag:
		if ev.ID == m.s.primary {
			m.s = session{ignored: true}
		}
	}
	return false
}

// step returns the movement of the primary contact since the last event
func (m *Machine) step(p geometry.Point) geometry.Point {
	d := p.Sub(m.s.last)
	m.s.last = p
	return d
}

func (m *Machine) pan(d geometry.Point) bool {
	cfg := m.model.Config()
	if m.policy.FlipPanWhenMirrored && cfg.Mirror {
		d.X = -d.X
	}
	if side, ok := cfg.TargetSide.Side(); ok {
		off := cfg.Offset(side)
		return m.model.SetSideOffset(side, overlay.OffsetPatch{
			X: overlay.F(off.X + d.X),
			Y: overlay.F(off.Y + d.Y),
		})
	}
	return m.model.SetGlobal(overlay.GlobalPatch{
		PosX: overlay.F(cfg.PosX + d.X),
		PosY: overlay.F(cfg.PosY + d.Y),
	})
}

func (m *Machine) rotate() bool {
	p := m.s.pinch
	a := m.contacts[m.find(p.ids[0])].pos
	b := m.contacts[m.find(p.ids[1])].pos

	d := a.Distance(b)
	var scale float64
	switch {
	case p.distance > 0:
		scale = p.scale * d / p.distance
	case d > 0:
		scale = math.Inf(1)
	default:
		scale = p.scale
	}
	scale = m.model.Limits().ClampScale(scale)
	rotation := p.rotation + math.Remainder(a.AngleTo(b)-p.angle, 360)

	if side, ok := p.target.Side(); ok {
		return m.model.SetSideOffset(side, overlay.OffsetPatch{
			Scale:    overlay.F(scale),
			Rotation: overlay.F(rotation),
		})
	}
	return m.model.SetGlobal(overlay.GlobalPatch{
		Scale:    overlay.F(scale),
		Rotation: overlay.F(rotation),
	})
}

// drag applies a screen delta to the field bound to the grabbed handle.
// Only the grabbed side changes, whatever the target side is.
func (m *Machine) drag(d geometry.Point) bool {
	side := m.s.handle.Side
	cfg := m.model.Config()
	l := m.model.Limits()
	off := cfg.Offset(side)

	var p overlay.OffsetPatch
	switch m.s.handle.Type {
	case anchor.HandlePos:
		p.X = overlay.F(off.X + d.X)
		p.Y = overlay.F(off.Y + d.Y)
	case anchor.HandleWidth:
		p.Width = overlay.F(math.Max(l.MinWidth, off.Width+d.X*side.Dir()))
	case anchor.HandleArch:
		p.ArchHeight = overlay.F(math.Max(0, off.ArchHeight-d.Y))
	case anchor.HandleBottomArch:
		p.BottomArch = overlay.F(math.Max(l.MinBottomArch, off.BottomArch+d.Y))
	case anchor.HandleThickness:
		p.Thickness = overlay.F(math.Max(l.MinThickness, off.Thickness+d.Y))
	default:
		m.log.Debug("ignoring drag of unknown handle", "handle", m.s.handle)
		return false
	}
	return m.model.SetSideOffset(side, p)
}
