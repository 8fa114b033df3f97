package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point represents a 2D point or vector in overlay units
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt creates a new 2D point
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) vec() r2.Vec { return r2.Vec(p) }

// Add returns the sum of two points
func (p Point) Add(other Point) Point {
	return Point(r2.Add(p.vec(), other.vec()))
}

// Sub returns the difference between two points
func (p Point) Sub(other Point) Point {
	return Point(r2.Sub(p.vec(), other.vec()))
}

// Mul multiplies the point by a scalar
func (p Point) Mul(scalar float64) Point {
	return Point(r2.Scale(scalar, p.vec()))
}

// Dot returns the dot product of two vectors
func (p Point) Dot(other Point) float64 {
	return r2.Dot(p.vec(), other.vec())
}

// Length returns the magnitude of the vector
func (p Point) Length() float64 {
	return r2.Norm(p.vec())
}

// Distance returns the distance between two points
func (p Point) Distance(other Point) float64 {
	return p.Sub(other).Length()
}

// Normalize returns a unit vector in the same direction
func (p Point) Normalize() Point {
	if p.X == 0 && p.Y == 0 {
		return Point{}
	}
	return Point(r2.Unit(p.vec()))
}

// Perp returns the vector rotated by +90 degrees (y axis pointing down: clockwise on screen)
func (p Point) Perp() Point {
	return Point{X: -p.Y, Y: p.X}
}

// MirrorX reflects the point across the vertical axis
func (p Point) MirrorX() Point {
	return Point{X: -p.X, Y: p.Y}
}

// Lerp interpolates between p and other; t=0 yields p, t=1 yields other
func (p Point) Lerp(other Point, t float64) Point {
	return p.Add(other.Sub(p).Mul(t))
}

// Midpoint returns the point halfway between p and other
func (p Point) Midpoint(other Point) Point {
	return Point{X: (p.X + other.X) / 2, Y: (p.Y + other.Y) / 2}
}

// AngleTo returns the direction from p to other in degrees, measured with atan2
func (p Point) AngleTo(other Point) float64 {
	d := other.Sub(p)
	return math.Atan2(d.Y, d.X) * 180 / math.Pi
}

// IsFinite reports whether both coordinates are finite numbers
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Centroid computes the average position of a set of points
func Centroid(points []Point) Point {
	if len(points) == 0 {
		return Point{}
	}
	var sum Point
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Mul(1 / float64(len(points)))
}

// Radians converts degrees to radians
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}
