package geometry

import "math"

// Affine represents a 2x3 affine transformation matrix.
// [a b tx]
// [c d ty]
type Affine struct {
	A, B, TX float64
	C, D, TY float64
}

// Translate returns a translation transform
func Translate(tx, ty float64) Affine {
	return Affine{A: 1, D: 1, TX: tx, TY: ty}
}

// Rotate returns a rotation around the origin, in degrees.
// With y pointing down, positive angles turn clockwise on screen.
func Rotate(degrees float64) Affine {
	sin, cos := math.Sincos(Radians(degrees))
	return Affine{A: cos, B: -sin, C: sin, D: cos}
}

// Scale returns a uniform scaling transform
func Scale(s float64) Affine {
	return Affine{A: s, D: s}
}

// Apply applies the transform to a point
func (t Affine) Apply(p Point) Point {
	return Point{
		X: t.A*p.X + t.B*p.Y + t.TX,
		Y: t.C*p.X + t.D*p.Y + t.TY,
	}
}

// Then returns the transform that applies t first and then next
func (t Affine) Then(next Affine) Affine {
	return next.Mul(t)
}

// Mul returns t * other, i.e. other is applied first
func (t Affine) Mul(other Affine) Affine {
	return Affine{
		A:  t.A*other.A + t.B*other.C,
		B:  t.A*other.B + t.B*other.D,
		TX: t.A*other.TX + t.B*other.TY + t.TX,
		C:  t.C*other.A + t.D*other.C,
		D:  t.C*other.B + t.D*other.D,
		TY: t.C*other.TX + t.D*other.TY + t.TY,
	}
}

// Rect is an axis-aligned rectangle in screen units
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Contains returns true if the point is inside the rectangle
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Empty reports whether the rectangle has no area
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}
