package overlay

import (
	"fmt"
	"sort"
)

// FieldID identifies one numeric field for discrete edits (sliders, CLI)
type FieldID int

const (
	FieldPosX FieldID = iota
	FieldPosY
	FieldScale
	FieldRotation
	FieldWidth
	FieldArchHeight
	FieldBottomArch
	FieldThickness
	FieldCurvature
	FieldSpacing
	FieldOpacity
	FieldHandleSize
)

// fieldBinding routes a field to the global config and, where one exists,
// to the matching side offset field.
type fieldBinding struct {
	name string
	// transform fields only reach the side offsets in TargetBoth mode
	// when Policy.MirrorGlobalEdits is set; shape fields always do.
	transform bool
	bound     bound
	global    func(c *Config) *float64
	side      func(o *SideOffset) *float64
}

var fieldTable = map[FieldID]fieldBinding{
	FieldPosX: {
		name: "posX", transform: true,
		global: func(c *Config) *float64 { return &c.PosX },
		side:   func(o *SideOffset) *float64 { return &o.X },
	},
	FieldPosY: {
		name: "posY", transform: true,
		global: func(c *Config) *float64 { return &c.PosY },
		side:   func(o *SideOffset) *float64 { return &o.Y },
	},
	FieldScale: {
		name: "scale", transform: true, bound: bothBounds,
		global: func(c *Config) *float64 { return &c.Scale },
		side:   func(o *SideOffset) *float64 { return &o.Scale },
	},
	FieldRotation: {
		name: "rotation", transform: true,
		global: func(c *Config) *float64 { return &c.Rotation },
		side:   func(o *SideOffset) *float64 { return &o.Rotation },
	},
	FieldWidth: {
		name:   "width",
		bound:  lowerBound,
		global: func(c *Config) *float64 { return &c.Width },
		side:   func(o *SideOffset) *float64 { return &o.Width },
	},
	FieldArchHeight: {
		name:   "archHeight",
		bound:  lowerBound,
		global: func(c *Config) *float64 { return &c.ArchHeight },
		side:   func(o *SideOffset) *float64 { return &o.ArchHeight },
	},
	FieldBottomArch: {
		name:   "bottomArch",
		bound:  lowerBound,
		global: func(c *Config) *float64 { return &c.BottomArch },
		side:   func(o *SideOffset) *float64 { return &o.BottomArch },
	},
	FieldThickness: {
		name:   "thickness",
		bound:  lowerBound,
		global: func(c *Config) *float64 { return &c.Thickness },
		side:   func(o *SideOffset) *float64 { return &o.Thickness },
	},
	FieldCurvature: {
		name:   "curvature",
		bound:  lowerBound,
		global: func(c *Config) *float64 { return &c.Curvature },
		side:   func(o *SideOffset) *float64 { return &o.Curvature },
	},
	FieldSpacing: {
		name:   "spacing",
		bound:  lowerBound,
		global: func(c *Config) *float64 { return &c.Spacing },
	},
	FieldOpacity: {
		name:   "opacity",
		bound:  bothBounds,
		global: func(c *Config) *float64 { return &c.Opacity },
	},
	FieldHandleSize: {
		name:   "handleSize",
		bound:  bothBounds,
		global: func(c *Config) *float64 { return &c.HandleSize },
	},
}

func (f FieldID) String() string {
	if b, ok := fieldTable[f]; ok {
		return b.name
	}
	return fmt.Sprintf("FieldID(%d)", int(f))
}

// ParseField looks a field up by its snapshot key name
func ParseField(name string) (FieldID, error) {
	for id, b := range fieldTable {
		if b.name == name {
			return id, nil
		}
	}
	return 0, fmt.Errorf("unknown field %q (known: %v)", name, FieldNames())
}

// FieldNames returns the key names of all editable fields, sorted
func FieldNames() []string {
	names := make([]string, 0, len(fieldTable))
	for _, b := range fieldTable {
		names = append(names, b.name)
	}
	sort.Strings(names)
	return names
}

// ApplyField sets one field for the given edit target.
// TargetBoth writes the global field (and the side offsets, see fieldBinding);
// a single side writes only that side's offset, falling back to the global
// field for fields a side does not have.
func ApplyField(cfg Config, id FieldID, value float64, target TargetSide, l Limits, pol Policy) Config {
	b, ok := fieldTable[id]
	if !ok || !b.bound.admits(value) {
		return cfg
	}

	if side, single := target.Side(); single {
		if b.side != nil {
			*b.side(cfg.offsetPtr(side)) = value
		} else {
			*b.global(&cfg) = value
		}
		return Sanitize(cfg, l)
	}

	*b.global(&cfg) = value
	if b.side != nil && (!b.transform || pol.MirrorGlobalEdits) {
		for _, s := range Sides {
			*b.side(cfg.offsetPtr(s)) = value
		}
	}
	return Sanitize(cfg, l)
}

// FieldValue returns the value a slider for the field shows under target
func FieldValue(cfg Config, id FieldID, target TargetSide) float64 {
	b, ok := fieldTable[id]
	if !ok {
		return 0
	}
	if side, single := target.Side(); single && b.side != nil {
		return *b.side(cfg.offsetPtr(side))
	}
	return *b.global(&cfg)
}
