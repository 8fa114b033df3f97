package overlay

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsSane(t *testing.T) {
	cfg := Default()
	assert.Equal(t, cfg, Sanitize(cfg, DefaultLimits()))
	assert.Equal(t, TargetBoth, cfg.TargetSide)
	assert.Equal(t, 120.0, cfg.LeftOffset.Width)
	assert.Equal(t, 1.0, cfg.RightOffset.Scale)
}

func TestSanitizeClampsEverything(t *testing.T) {
	cfg := Default()
	cfg.Scale = 12
	cfg.Width = 3
	cfg.LeftOffset.Thickness = -4
	cfg.LeftOffset.ArchHeight = -1
	cfg.RightOffset.BottomArch = -100
	cfg.RightOffset.Scale = 0
	cfg.RightOffset.Curvature = -0.2
	cfg.Opacity = 2
	cfg.PosX = math.NaN()

	got := Sanitize(cfg, DefaultLimits())

	assert.Equal(t, 5.0, got.Scale)
	assert.Equal(t, 30.0, got.Width)
	assert.Equal(t, 1.0, got.LeftOffset.Thickness)
	assert.Equal(t, 0.0, got.LeftOffset.ArchHeight)
	assert.Equal(t, -30.0, got.RightOffset.BottomArch)
	assert.Equal(t, 0.2, got.RightOffset.Scale)
	assert.Equal(t, 0.0, got.RightOffset.Curvature)
	assert.Equal(t, 1.0, got.Opacity)
	assert.Equal(t, 0.0, got.PosX)
}

func TestSetGlobalClampsScale(t *testing.T) {
	m := NewModel(Default())

	require.True(t, m.SetGlobal(GlobalPatch{Scale: F(9)}))
	assert.Equal(t, 5.0, m.Config().Scale)

	require.True(t, m.SetGlobal(GlobalPatch{Scale: F(-1)}))
	assert.Equal(t, 0.2, m.Config().Scale)

	// NaN is dropped, not applied
	assert.False(t, m.SetGlobal(GlobalPatch{Scale: F(math.NaN())}))
	assert.Equal(t, 0.2, m.Config().Scale)
}

func TestInfiniteEditsClampToLimits(t *testing.T) {
	m := NewModel(Default())
	before := m.Config()

	require.True(t, m.SetGlobal(GlobalPatch{Scale: F(math.Inf(1))}))
	assert.Equal(t, 5.0, m.Config().Scale)
	require.True(t, m.SetGlobal(GlobalPatch{Scale: F(math.Inf(-1))}))
	assert.Equal(t, 0.2, m.Config().Scale)

	// no finite limit to clamp to
	assert.False(t, m.SetGlobal(GlobalPatch{PosX: F(math.Inf(1)), Rotation: F(math.Inf(-1))}))
	assert.Equal(t, before.PosX, m.Config().PosX)
	assert.Equal(t, before.Rotation, m.Config().Rotation)

	require.True(t, m.SetSideOffset(Left, OffsetPatch{Width: F(math.Inf(-1))}))
	assert.Equal(t, 30.0, m.Config().LeftOffset.Width)
	assert.False(t, m.SetSideOffset(Left, OffsetPatch{Width: F(math.Inf(1))}))
	assert.Equal(t, 30.0, m.Config().LeftOffset.Width)

	cfg := ApplyField(Default(), FieldOpacity, math.Inf(1), TargetBoth, DefaultLimits(), Policy{})
	assert.Equal(t, 1.0, cfg.Opacity)
	cfg = ApplyField(Default(), FieldPosY, math.Inf(1), TargetLeft, DefaultLimits(), Policy{})
	assert.Equal(t, Default(), cfg)
}

func TestSetGlobalLeavesSidesUnlessMirrored(t *testing.T) {
	m := NewModel(Default())
	m.SetGlobal(GlobalPatch{PosX: F(40)})
	assert.Equal(t, 40.0, m.Config().PosX)
	assert.Equal(t, 0.0, m.Config().LeftOffset.X)

	mirrored := NewModel(Default(), WithPolicy(Policy{MirrorGlobalEdits: true}))
	mirrored.SetGlobal(GlobalPatch{PosX: F(40), Rotation: F(12)})
	cfg := mirrored.Config()
	assert.Equal(t, 40.0, cfg.LeftOffset.X)
	assert.Equal(t, 40.0, cfg.RightOffset.X)
	assert.Equal(t, 12.0, cfg.RightOffset.Rotation)
}

func TestSetSideOffsetTouchesOneSide(t *testing.T) {
	m := NewModel(Default())
	m.SetSideOffset(Right, OffsetPatch{Width: F(10), Y: F(-3)})

	cfg := m.Config()
	assert.Equal(t, 30.0, cfg.RightOffset.Width, "width clamps to minimum")
	assert.Equal(t, -3.0, cfg.RightOffset.Y)
	assert.Equal(t, Default().LeftOffset, cfg.LeftOffset)
}

func TestUnchangedEditReportsNoChange(t *testing.T) {
	m := NewModel(Default())
	assert.False(t, m.SetTargetSide(TargetBoth))
	assert.True(t, m.SetTargetSide(TargetLeft))
	assert.False(t, m.SetGlobal(GlobalPatch{}))
}

func TestResetRestoresDefault(t *testing.T) {
	m := NewModel(Default())
	m.SetField(FieldArchHeight, 70)
	m.SetTargetSide(TargetRight)

	require.True(t, m.Reset())
	assert.Equal(t, Default(), m.Config())
}

func TestApplyFieldBothWritesShapeEverywhere(t *testing.T) {
	cfg := ApplyField(Default(), FieldArchHeight, 40, TargetBoth, DefaultLimits(), Policy{})

	assert.Equal(t, 40.0, cfg.ArchHeight)
	assert.Equal(t, 40.0, cfg.LeftOffset.ArchHeight)
	assert.Equal(t, 40.0, cfg.RightOffset.ArchHeight)
}

func TestApplyFieldBothTransformStaysGlobal(t *testing.T) {
	cfg := ApplyField(Default(), FieldPosY, 25, TargetBoth, DefaultLimits(), Policy{})

	assert.Equal(t, 25.0, cfg.PosY)
	assert.Equal(t, 0.0, cfg.LeftOffset.Y)
	assert.Equal(t, 0.0, cfg.RightOffset.Y)
}

func TestApplyFieldSingleSide(t *testing.T) {
	cfg := ApplyField(Default(), FieldScale, 2.5, TargetLeft, DefaultLimits(), Policy{})
	assert.Equal(t, 2.5, cfg.LeftOffset.Scale)
	assert.Equal(t, 1.0, cfg.RightOffset.Scale)
	assert.Equal(t, 1.1, cfg.Scale)

	// fields without a side counterpart fall back to the global value
	cfg = ApplyField(cfg, FieldSpacing, 80, TargetLeft, DefaultLimits(), Policy{})
	assert.Equal(t, 80.0, cfg.Spacing)

	assert.Equal(t, 2.5, FieldValue(cfg, FieldScale, TargetLeft))
	assert.Equal(t, 1.1, FieldValue(cfg, FieldScale, TargetBoth))
}

func TestParseField(t *testing.T) {
	id, err := ParseField("bottomArch")
	require.NoError(t, err)
	assert.Equal(t, FieldBottomArch, id)
	assert.Equal(t, "bottomArch", id.String())

	_, err = ParseField("nope")
	assert.Error(t, err)
}

func TestSnapshotKeys(t *testing.T) {
	data, err := json.Marshal(Default())
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	for _, key := range []string{"posX", "posY", "scale", "rotation", "width", "archHeight", "thickness",
		"curvature", "spacing", "showGuides", "showVisagismGrid", "opacity", "color", "mirror",
		"handleSize", "targetSide", "leftOffset", "rightOffset"} {
		assert.Contains(t, raw, key)
	}
	assert.Equal(t, "both", raw["targetSide"])
}

func TestTargetSideUnmarshalRejectsUnknown(t *testing.T) {
	var cfg Config
	err := json.Unmarshal([]byte(`{"targetSide":"middle"}`), &cfg)
	assert.Error(t, err)
}
