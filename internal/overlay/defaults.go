package overlay

// DefaultShape is the factory mold geometry shared by both sides
var DefaultShape = SideShape{
	Width:      120,
	ArchHeight: 22,
	BottomArch: 0,
	Thickness:  10,
	Curvature:  0.6,
}

// Palette is the set of overlay colors offered by the host UI
var Palette = []string{
	"#ffff00",
	"#ffffff",
	"#00ff00",
	"#ff00ff",
	"#00ffff",
	"#ff4400",
}

// Default returns the built-in factory configuration
func Default() Config {
	side := SideOffset{SideShape: DefaultShape, Scale: 1}
	return Config{
		GlobalTransform: GlobalTransform{
			PosX:  0,
			PosY:  -60,
			Scale: 1.1,
		},
		SideShape: DefaultShape,
		Display: Display{
			ShowGuides:       true,
			ShowVisagismGrid: true,
			Opacity:          0.8,
			Color:            Palette[0],
			HandleSize:       6,
			Mirror:           true,
		},
		Spacing:     50,
		TargetSide:  TargetBoth,
		LeftOffset:  side,
		RightOffset: side,
	}
}
