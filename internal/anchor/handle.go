package anchor

import (
	"fmt"

	"github.com/philipparndt/browmap/internal/overlay"
	"github.com/philipparndt/browmap/pkg/geometry"
)

// HandleType names the shape parameter a handle edits
type HandleType int

const (
	HandlePos HandleType = iota
	HandleThickness
	HandleArch
	HandleBottomArch
	HandleWidth
)

// HandleTypes lists the handle types in hit-test order
var HandleTypes = [5]HandleType{HandlePos, HandleThickness, HandleArch, HandleBottomArch, HandleWidth}

func (h HandleType) String() string {
	switch h {
	case HandlePos:
		return "pos"
	case HandleThickness:
		return "thickness"
	case HandleArch:
		return "arch"
	case HandleBottomArch:
		return "bottomArch"
	case HandleWidth:
		return "width"
	}
	return fmt.Sprintf("HandleType(%d)", int(h))
}

// HandleRef identifies one handle: the active handle of a drag
type HandleRef struct {
	Side overlay.Side
	Type HandleType
}

func (r HandleRef) String() string {
	return r.Side.String() + "." + r.Type.String()
}

// Point returns the anchor a handle type sits on
func (a Anchors) Point(h HandleType) geometry.Point {
	switch h {
	case HandleThickness:
		return a.BottomStart
	case HandleArch:
		return a.TopArch
	case HandleBottomArch:
		return a.BottomArch
	case HandleWidth:
		return a.Tail
	default:
		return a.TopStart
	}
}
