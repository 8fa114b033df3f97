package gesture

import (
	"strings"
	"testing"

	"github.com/philipparndt/browmap/internal/overlay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadAndReplayScript(t *testing.T) {
	src := `{
		"events": [
			{"type": "start", "id": 1, "pos": {"x": 100, "y": 100}},
			{"type": "move", "id": 1, "pos": {"x": 110, "y": 115}},
			{"type": "move", "id": 1, "pos": {"x": 110, "y": 115}},
			{"type": "end", "id": 1}
		]
	}`
	script, err := ReadScript(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, script.Events, 4)
	assert.Nil(t, script.Origin)

	m, model := newMachine(overlay.Default())
	assert.Equal(t, 1, Replay(m, script.Events))
	assert.Equal(t, 10.0, model.Config().PosX)
	assert.Equal(t, Idle, m.Mode())
}

func TestReadScriptRejectsUnknownType(t *testing.T) {
	_, err := ReadScript(strings.NewReader(`{"events": [{"type": "hover", "id": 1}]}`))
	assert.Error(t, err)
}
