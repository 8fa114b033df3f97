// Package gesture interprets raw contact events as pan, pinch-rotate and
// handle-drag gestures and turns them into overlay model edits.
package gesture

import (
	"fmt"
	"strings"

	"github.com/philipparndt/browmap/pkg/geometry"
)

// EventType is the phase of a single contact
type EventType int

const (
	Start EventType = iota
	Move
	End
	// Cancel aborts the whole gesture, whatever contacts are down
	Cancel
)

func (t EventType) String() string {
	switch t {
	case Start:
		return "start"
	case Move:
		return "move"
	case End:
		return "end"
	case Cancel:
		return "cancel"
	}
	return fmt.Sprintf("EventType(%d)", int(t))
}

// MarshalText encodes the event type by name
func (t EventType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes start, move, end or cancel
func (t *EventType) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "start":
		*t = Start
	case "move":
		*t = Move
	case "end":
		*t = End
	case "cancel":
		*t = Cancel
	default:
		return fmt.Errorf("unknown event type %q", text)
	}
	return nil
}

// Event is one contact (finger or pointer) changing state.
// ID distinguishes simultaneous contacts; Pos is in render-surface units.
type Event struct {
	Type EventType      `json:"type"`
	ID   int            `json:"id"`
	Pos  geometry.Point `json:"pos"`
}

// Mode is the state of the gesture session
type Mode int

const (
	Idle Mode = iota
	Pan
	PinchRotate
	HandleDrag
)

func (m Mode) String() string {
	switch m {
	case Idle:
		return "IDLE"
	case Pan:
		return "PAN"
	case PinchRotate:
		return "PINCH_ROTATE"
	case HandleDrag:
		return "HANDLE_DRAG"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}
