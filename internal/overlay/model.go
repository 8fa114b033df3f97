package overlay

// Model is the single owner of the live overlay configuration.
// It is not safe for concurrent use: every mutation happens on the host's
// input/UI goroutine. Each setter reports whether the configuration changed
// so the host redraws only on real mutations.
type Model struct {
	cfg      Config
	defaults Config
	limits   Limits
	policy   Policy
}

// ModelOption configures a Model
type ModelOption func(*Model)

// WithLimits overrides the clamping limits
func WithLimits(l Limits) ModelOption {
	return func(m *Model) { m.limits = l }
}

// WithPolicy overrides the edit policy
func WithPolicy(p Policy) ModelOption {
	return func(m *Model) { m.policy = p }
}

// NewModel creates a model holding the sanitized initial configuration
func NewModel(initial Config, opts ...ModelOption) *Model {
	m := &Model{
		defaults: Default(),
		limits:   DefaultLimits(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.defaults = Sanitize(m.defaults, m.limits)
	m.cfg = Sanitize(initial, m.limits)
	return m
}

// Config returns a copy of the current configuration
func (m *Model) Config() Config { return m.cfg }

// Limits returns the clamping limits in use
func (m *Model) Limits() Limits { return m.limits }

// Policy returns the edit policy in use
func (m *Model) Policy() Policy { return m.policy }

func (m *Model) swap(next Config) bool {
	if next == m.cfg {
		return false
	}
	m.cfg = next
	return true
}

// SetGlobal applies a partial update to the global transform
func (m *Model) SetGlobal(p GlobalPatch) bool {
	return m.swap(ApplyGlobal(m.cfg, p, m.limits, m.policy))
}

// SetSideOffset applies a partial update to one side offset
func (m *Model) SetSideOffset(side Side, p OffsetPatch) bool {
	return m.swap(ApplySideOffset(m.cfg, side, p, m.limits))
}

// SetTargetSide changes which side(s) edits affect
func (m *Model) SetTargetSide(t TargetSide) bool {
	return m.swap(ApplyTargetSide(m.cfg, t))
}

// SetDisplay applies a partial update to the display flags
func (m *Model) SetDisplay(p DisplayPatch) bool {
	return m.swap(ApplyDisplay(m.cfg, p, m.limits))
}

// SetField sets one field for the current target side
func (m *Model) SetField(id FieldID, value float64) bool {
	return m.swap(ApplyField(m.cfg, id, value, m.cfg.TargetSide, m.limits, m.policy))
}

// Replace installs a whole configuration, e.g. a reloaded snapshot
func (m *Model) Replace(cfg Config) bool {
	return m.swap(Sanitize(cfg, m.limits))
}

// Reset restores the default configuration
func (m *Model) Reset() bool {
	return m.swap(m.defaults)
}
