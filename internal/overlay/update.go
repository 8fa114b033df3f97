package overlay

// GlobalPatch is a partial update of the global transform.
// Nil fields are left unchanged.
type GlobalPatch struct {
	PosX     *float64
	PosY     *float64
	Scale    *float64
	Rotation *float64
}

// OffsetPatch is a partial update of one side offset.
// Nil fields are left unchanged.
type OffsetPatch struct {
	X          *float64
	Y          *float64
	Scale      *float64
	Rotation   *float64
	Width      *float64
	ArchHeight *float64
	BottomArch *float64
	Thickness  *float64
	Curvature  *float64
}

// DisplayPatch is a partial update of the display flags
type DisplayPatch struct {
	ShowGuides       *bool
	ShowVisagismGrid *bool
	Opacity          *float64
	Color            *string
	HandleSize       *float64
	Mirror           *bool
}

// F returns a pointer to v, for building patches inline
func F(v float64) *float64 { return &v }

// B returns a pointer to v, for building patches inline
func B(v bool) *bool { return &v }

func set(dst *float64, v *float64, b bound) {
	if v != nil && b.admits(*v) {
		*dst = *v
	}
}

// ApplyGlobal returns cfg with the global transform patch applied and clamped.
// With Policy.MirrorGlobalEdits the same values are written into both side offsets.
func ApplyGlobal(cfg Config, p GlobalPatch, l Limits, pol Policy) Config {
	set(&cfg.PosX, p.PosX, unbounded)
	set(&cfg.PosY, p.PosY, unbounded)
	set(&cfg.Scale, p.Scale, bothBounds)
	set(&cfg.Rotation, p.Rotation, unbounded)
	if pol.MirrorGlobalEdits {
		mirrored := OffsetPatch{X: p.PosX, Y: p.PosY, Scale: p.Scale, Rotation: p.Rotation}
		for _, s := range Sides {
			applyOffset(cfg.offsetPtr(s), mirrored)
		}
	}
	return Sanitize(cfg, l)
}

func applyOffset(o *SideOffset, p OffsetPatch) {
	set(&o.X, p.X, unbounded)
	set(&o.Y, p.Y, unbounded)
	set(&o.Scale, p.Scale, bothBounds)
	set(&o.Rotation, p.Rotation, unbounded)
	set(&o.Width, p.Width, lowerBound)
	set(&o.ArchHeight, p.ArchHeight, lowerBound)
	set(&o.BottomArch, p.BottomArch, lowerBound)
	set(&o.Thickness, p.Thickness, lowerBound)
	set(&o.Curvature, p.Curvature, lowerBound)
}

// ApplySideOffset returns cfg with the patch applied to one side only
func ApplySideOffset(cfg Config, side Side, p OffsetPatch, l Limits) Config {
	applyOffset(cfg.offsetPtr(side), p)
	return Sanitize(cfg, l)
}

// ApplyTargetSide returns cfg with the edit scope changed
func ApplyTargetSide(cfg Config, t TargetSide) Config {
	if t < TargetBoth || t > TargetRight {
		t = TargetBoth
	}
	cfg.TargetSide = t
	return cfg
}

// ApplyDisplay returns cfg with the display patch applied and clamped
func ApplyDisplay(cfg Config, p DisplayPatch, l Limits) Config {
	if p.ShowGuides != nil {
		cfg.ShowGuides = *p.ShowGuides
	}
	if p.ShowVisagismGrid != nil {
		cfg.ShowVisagismGrid = *p.ShowVisagismGrid
	}
	if p.Mirror != nil {
		cfg.Mirror = *p.Mirror
	}
	if p.Color != nil {
		cfg.Color = *p.Color
	}
	set(&cfg.Opacity, p.Opacity, bothBounds)
	set(&cfg.HandleSize, p.HandleSize, bothBounds)
	return Sanitize(cfg, l)
}
