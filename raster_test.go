package cartesian

import (
	"bytes"
	"testing"
	"time"
)

func TestRenderTimePNG_PressAnnotations(t *testing.T) {
	day := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	var pts []Point[time.Time, float64]
	for i := 0; i < 10; i++ {
		pts = append(pts, Point[time.Time, float64]{X: day.AddDate(0, 0, i), Y: float64(10 + i)})
	}
	ser := NewSerie("visits", pts)
	ser.X = TimeScaler(TimeDomain(day, day.AddDate(0, 0, 9)), NewRange(0, 300))
	ser.Y = NumberScaler(NumberDomain(0, 20), NewRange(0, 200))

	var (
		state = NewPressState()
		track = NewTracker(state, ser)
	)
	track.Move(150, 100)

	var buf bytes.Buffer
	if err := RenderTimePNG(&buf, "visits", 400, 300, state, ser); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Errorf("no png document produced")
	}
}
