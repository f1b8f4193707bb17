package cartesian

import (
	"math"
	"testing"
)

func TestSerie_Materialize(t *testing.T) {
	var points []Point[float64, float64]
	for i := 0; i <= 30; i++ {
		points = append(points, NumberPoint(float64(i), float64(i*2)))
	}
	ser := NewSerie("highTmp", points)
	ser.X = NumberScaler(NumberDomain(0, 30), NewRange(0, 300))
	ser.Y = NumberScaler(NumberDomain(0, 60), NewRange(0, 600))

	pts := ser.Materialize()
	if len(pts) != 31 {
		t.Fatalf("want 31 screen points, got %d", len(pts))
	}
	for i, pt := range pts {
		if want := float64(i * 10); pt.X != want {
			t.Errorf("point %d: want x %f, got %f", i, want, pt.X)
		}
		if want := float64(i * 20); pt.Y != want {
			t.Errorf("point %d: want y %f, got %f", i, want, pt.Y)
		}
	}
}

func TestSerie_MaterializeMissing(t *testing.T) {
	points := []Point[float64, float64]{
		NumberPoint(0, 1),
		NumberPoint(1, math.NaN()),
		NumberPoint(2, 3),
	}
	ser := NewSerie("gaps", points)
	ser.X = NumberScaler(NumberDomain(0, 2), NewRange(0, 200))
	ser.Y = NumberScaler(NumberDomain(0, 4), NewRange(0, 400))

	pts := ser.Materialize()
	if len(pts) != len(points) {
		t.Fatalf("missing values must keep their slot: want %d, got %d", len(points), len(pts))
	}
	if !pts[1].Missing() {
		t.Errorf("point 1 should be missing")
	}
	if pts[1].X != 100 {
		t.Errorf("missing point keeps its x position, got %f", pts[1].X)
	}
	if pts[0].Missing() || pts[2].Missing() {
		t.Errorf("plain points reported missing")
	}
}

func TestSerie_MaterializeEmpty(t *testing.T) {
	ser := NewSerie[float64, float64]("empty", nil)
	ser.X = NumberScaler(NumberDomain(0, 0), NewRange(0, 100))
	ser.Y = NumberScaler(NumberDomain(0, 0), NewRange(0, 100))

	if pts := ser.Materialize(); len(pts) != 0 {
		t.Errorf("empty serie: want no points, got %d", len(pts))
	}
}
