package cartesian

import (
	"math"
	"time"
)

// Point is one input record: an independent value X and a dependent
// value Y. A NaN dependent value marks a missing measurement.
type Point[T, U ScalerConstraint] struct {
	X T
	Y U
}

func NumberPoint(x, y float64) Point[float64, float64] {
	return Point[float64, float64]{
		X: x,
		Y: y,
	}
}

func TimePoint(x time.Time, y float64) Point[time.Time, float64] {
	return Point[time.Time, float64]{
		X: x,
		Y: y,
	}
}

func CategoryPoint(x string, y float64) Point[string, float64] {
	return Point[string, float64]{
		X: x,
		Y: y,
	}
}

func (p Point[T, U]) Reverse() Point[U, T] {
	return Point[U, T]{
		X: p.Y,
		Y: p.X,
	}
}

// ScreenPoint is a record translated into pixel coordinates. It is owned
// by the pass that produced it and recomputed whenever the data or the
// viewport changes.
type ScreenPoint struct {
	X float64
	Y float64
}

func (p ScreenPoint) Missing() bool {
	return math.IsNaN(p.Y)
}

func isFloat[T any](v T) (float64, bool) {
	x, ok := any(v).(float64)
	return x, ok
}
