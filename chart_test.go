package cartesian

import (
	"strings"
	"testing"
)

func TestChart_Render(t *testing.T) {
	ser := testSerie()
	ser.Renderer = LinearRenderer[float64, float64]{
		Color: "blue",
	}
	ch := Chart[float64, float64]{
		Title:  "temperatures",
		Width:  400,
		Height: 400,
		Padding: Padding{
			Top:    50,
			Right:  50,
			Bottom: 50,
			Left:   50,
		},
	}
	ch.Bottom = &Axis[float64]{
		Ticks:          5,
		Scaler:         ser.X,
		Orientation:    OrientBottom,
		WithInnerTicks: true,
		WithLabelTicks: true,
	}
	ch.Left = &Axis[float64]{
		Ticks:          5,
		Scaler:         ser.Y,
		Orientation:    OrientLeft,
		WithInnerTicks: true,
		WithLabelTicks: true,
	}

	var w strings.Builder
	ch.Render(&w, ser)

	doc := w.String()
	if !strings.Contains(doc, "<svg") {
		t.Fatalf("no svg document produced: %q", doc)
	}
	if !strings.Contains(doc, "highTmp") {
		t.Errorf("serie group missing from document")
	}
}

func TestChart_RenderOverlay(t *testing.T) {
	ser := testSerie()
	ser.Renderer = LinearRenderer[float64, float64]{
		Color: "blue",
	}
	var (
		state = NewPressState()
		track = NewTracker(state, ser)
	)
	ch := Chart[float64, float64]{
		Width:  400,
		Height: 400,
		Press:  state,
		Crosshair: CrosshairRenderer{
			Color:  "black",
			Length: 400,
		},
	}
	track.Move(ch.Locate(150, 100))

	var w strings.Builder
	ch.Render(&w, ser)
	if doc := w.String(); !strings.Contains(doc, "crosshair") {
		t.Errorf("active press state should draw the crosshair overlay")
	}

	track.Release()
	w.Reset()
	ch.Render(&w, ser)
	if doc := w.String(); strings.Contains(doc, "circle") {
		t.Errorf("inactive press state should not draw markers")
	}
}

func TestChart_Locate(t *testing.T) {
	ch := Chart[float64, float64]{
		Width:  400,
		Height: 400,
		Padding: Padding{
			Top:  50,
			Left: 80,
		},
	}
	x, y := ch.Locate(100, 100)
	if x != 20 || y != 50 {
		t.Errorf("locate: want (20, 50), got (%f, %f)", x, y)
	}
}
