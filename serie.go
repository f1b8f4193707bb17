package cartesian

import (
	"github.com/midbel/svg"
)

// Data is any materialized serie a chart can draw.
type Data interface {
	Render() svg.Element
}

type Serie[T, U ScalerConstraint] struct {
	Color         string
	Title         string
	IgnoreMissing bool

	X      Scaler[T]
	Y      Scaler[U]
	Points []Point[T, U]

	Renderer Renderer[T, U]
}

func NewSerie[T, U ScalerConstraint](title string, points []Point[T, U]) Serie[T, U] {
	return Serie[T, U]{
		Title:  title,
		Points: points,
	}
}

func (s Serie[T, U]) Render() svg.Element {
	return s.Renderer.Render(s)
}

func (s Serie[T, U]) Len() int {
	return len(s.Points)
}

// Materialize translates every record into screen space through the
// serie scalers. The result has exactly one ScreenPoint per record, in
// input order. A missing dependent value carries through as NaN and is
// left to the renderer to bridge or break on.
func (s Serie[T, U]) Materialize() []ScreenPoint {
	list := make([]ScreenPoint, 0, len(s.Points))
	for _, pt := range s.Points {
		sp := ScreenPoint{
			X: s.X.Scale(pt.X),
			Y: s.Y.Scale(pt.Y),
		}
		list = append(list, sp)
	}
	return list
}
