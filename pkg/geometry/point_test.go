package geometry

import (
	"math"
	"testing"
)

func TestPointAdd(t *testing.T) {
	result := Pt(1, 2).Add(Pt(4, 5))

	expected := Pt(5, 7)
	if result != expected {
		t.Errorf("Add failed: expected %v, got %v", expected, result)
	}
}

func TestPointSub(t *testing.T) {
	result := Pt(5, 7).Sub(Pt(1, 2))

	expected := Pt(4, 5)
	if result != expected {
		t.Errorf("Sub failed: expected %v, got %v", expected, result)
	}
}

func TestPointDistance(t *testing.T) {
	distance := Pt(0, 0).Distance(Pt(3, 4))

	expected := 5.0
	if math.Abs(distance-expected) > 1e-10 {
		t.Errorf("Distance failed: expected %v, got %v", expected, distance)
	}
}

func TestPointNormalize(t *testing.T) {
	normalized := Pt(3, 4).Normalize()

	if math.Abs(normalized.Length()-1) > 1e-10 {
		t.Errorf("Normalize failed: expected length 1, got %v", normalized.Length())
	}

	if zero := (Point{}).Normalize(); zero != (Point{}) {
		t.Errorf("Normalize of zero vector should stay zero, got %v", zero)
	}
}

func TestPointAngleTo(t *testing.T) {
	angle := Pt(0, 0).AngleTo(Pt(0, 10))

	if math.Abs(angle-90) > 1e-10 {
		t.Errorf("AngleTo failed: expected 90, got %v", angle)
	}
}

func TestCentroidMirrors(t *testing.T) {
	points := []Point{Pt(1, 2), Pt(3.3, -1), Pt(7.1, 0.5)}
	mirrored := make([]Point, len(points))
	for i, p := range points {
		mirrored[i] = p.MirrorX()
	}

	c := Centroid(points)
	m := Centroid(mirrored)
	if m != c.MirrorX() {
		t.Errorf("Centroid of mirrored points: expected %v, got %v", c.MirrorX(), m)
	}
}
