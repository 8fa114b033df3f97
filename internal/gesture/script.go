package gesture

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/philipparndt/browmap/pkg/geometry"
)

// Script is a recorded sequence of contact events
type Script struct {
	// Origin overrides the overlay center the events were recorded against
	Origin *geometry.Point `json:"origin,omitempty"`
	Events []Event         `json:"events"`
}

// ReadScript decodes a JSON gesture script
func ReadScript(r io.Reader) (Script, error) {
	var s Script
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return Script{}, fmt.Errorf("failed to parse gesture script: %w", err)
	}
	return s, nil
}

// Replay feeds events through m and returns how many of them changed the model
func Replay(m *Machine, events []Event) int {
	changed := 0
	for _, ev := range events {
		if m.Handle(ev) {
			changed++
		}
	}
	return changed
}
