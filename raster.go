package cartesian

import (
	"io"
	"math"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
)

// RenderPNG rasterizes number series through go-chart. Missing points
// are dropped from the rasterized path since the raster backend has no
// gap notion. When state holds an active press, its resolved values are
// drawn as annotations.
func RenderPNG(w io.Writer, title string, width, height float64, state *PressState, series ...Serie[float64, float64]) error {
	graph := chart.Chart{
		Title:  title,
		Width:  int(width),
		Height: int(height),
	}
	for _, s := range series {
		var cs chart.ContinuousSeries
		cs.Name = s.Title
		for _, pt := range s.Points {
			if math.IsNaN(pt.Y) {
				continue
			}
			cs.XValues = append(cs.XValues, pt.X)
			cs.YValues = append(cs.YValues, pt.Y)
		}
		graph.Series = append(graph.Series, cs)
	}
	if an := pressAnnotations(state); an != nil {
		graph.Series = append(graph.Series, an)
	}
	return graph.Render(chart.PNG, w)
}

// RenderTimePNG is RenderPNG for time indexed series. Press values
// carry times as epoch nanoseconds in At, matching the scale time
// series plot on.
func RenderTimePNG(w io.Writer, title string, width, height float64, state *PressState, series ...Serie[time.Time, float64]) error {
	graph := chart.Chart{
		Title:  title,
		Width:  int(width),
		Height: int(height),
	}
	for _, s := range series {
		var cs chart.TimeSeries
		cs.Name = s.Title
		for _, pt := range s.Points {
			if math.IsNaN(pt.Y) {
				continue
			}
			cs.XValues = append(cs.XValues, pt.X)
			cs.YValues = append(cs.YValues, pt.Y)
		}
		graph.Series = append(graph.Series, cs)
	}
	if an := pressAnnotations(state); an != nil {
		graph.Series = append(graph.Series, an)
	}
	return graph.Render(chart.PNG, w)
}

func pressAnnotations(state *PressState) chart.Series {
	if state == nil {
		return nil
	}
	snap := state.Snapshot()
	if !snap.Active || len(snap.Values) == 0 {
		return nil
	}
	var an chart.AnnotationSeries
	for _, v := range snap.Values {
		an.Annotations = append(an.Annotations, chart.Value2{
			XValue: v.At,
			YValue: v.Value,
			Label:  v.Label,
		})
	}
	return an
}
