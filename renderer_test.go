package cartesian

import (
	"math"
	"strings"
	"testing"

	"github.com/midbel/svg"
)

func gapSerie() Serie[float64, float64] {
	ser := NewSerie("gaps", []Point[float64, float64]{
		{X: 0, Y: math.NaN()},
		{X: 1, Y: 12},
		{X: 2, Y: 14},
		{X: 3, Y: 11},
	})
	ser.X = NumberScaler(NumberDomain(0, 3), NewRange(0, 300))
	ser.Y = NumberScaler(NumberDomain(0, 20), NewRange(0, 200))
	return ser
}

func renderToString(el svg.Element) string {
	var w strings.Builder
	el.Render(&w)
	return w.String()
}

func pathData(t *testing.T, doc string) string {
	t.Helper()
	_, rest, ok := strings.Cut(doc, ` d="`)
	if !ok {
		t.Fatalf("no path data in %q", doc)
	}
	d, _, _ := strings.Cut(rest, `"`)
	return d
}

func TestLinearRenderer_LeadingMissing(t *testing.T) {
	rdr := LinearRenderer[float64, float64]{
		Color: "blue",
	}
	doc := renderToString(rdr.Render(gapSerie()))
	d := pathData(t, doc)
	if !strings.HasPrefix(d, "M") {
		t.Errorf("path must open at the first drawn point, got %q", d)
	}
}

func TestCubicRenderer(t *testing.T) {
	rdr := CubicRenderer[float64, float64]{
		Color:   "blue",
		Stretch: 0.5,
	}
	doc := renderToString(rdr.Render(gapSerie()))
	d := pathData(t, doc)
	if !strings.HasPrefix(d, "M") {
		t.Errorf("path must open at the first drawn point, got %q", d)
	}
	if !strings.Contains(d, "C") {
		t.Errorf("cubic path must carry curve commands, got %q", d)
	}
}

func TestStepRenderers(t *testing.T) {
	data := []struct {
		Renderer Renderer[float64, float64]
		Class    string
	}{
		{Renderer: StepRenderer[float64, float64]{Color: "blue"}, Class: "line-step"},
		{Renderer: StepAfterRenderer[float64, float64]{Color: "blue"}, Class: "line-step-after"},
		{Renderer: StepBeforeRenderer[float64, float64]{Color: "blue"}, Class: "line-step-before"},
	}
	for _, d := range data {
		doc := renderToString(d.Renderer.Render(gapSerie()))
		if !strings.Contains(doc, d.Class) {
			t.Errorf("%s: class missing from group", d.Class)
		}
		if pd := pathData(t, doc); !strings.HasPrefix(pd, "M") {
			t.Errorf("%s: path must open at the first drawn point, got %q", d.Class, pd)
		}
	}
}

func TestPointRenderer_Markers(t *testing.T) {
	ser := gapSerie()
	doc := renderToString(PointRenderer[float64, float64]{Point: GetSquare}.Render(ser))
	if !strings.Contains(doc, "<rect") {
		t.Errorf("square marker must draw a rect")
	}
	doc = renderToString(PointRenderer[float64, float64]{Point: GetDiamond}.Render(ser))
	if !strings.Contains(doc, "rotate") {
		t.Errorf("diamond marker must draw a rotated rect")
	}
}
