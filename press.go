package cartesian

import (
	"fmt"
	"math"
	"sort"
	"sync/atomic"
	"time"
)

// PressValue is the nearest record of one serie, resolved for the
// current pointer position.
type PressValue struct {
	Serie string
	Index int
	X     float64
	Y     float64
	// At and Value are the record coordinates in data space; At is
	// only set for numeric and time independent values (times as
	// nanoseconds since the epoch), Label always is.
	At    float64
	Value float64
	Label string
}

// Snapshot is one consistent view of the press state. Position and
// values survive the end of a gesture so overlays do not snap back;
// only Active drops.
type Snapshot struct {
	Active bool
	X      float64
	Y      float64
	Values []PressValue
}

// PressState is written by a single gesture source and read by any
// number of overlays. Writers publish immutable snapshots; readers
// never block and may be one frame behind.
type PressState struct {
	cur atomic.Pointer[Snapshot]
}

func NewPressState() *PressState {
	var p PressState
	p.cur.Store(new(Snapshot))
	return &p
}

func (p *PressState) Active() bool {
	return p.cur.Load().Active
}

func (p *PressState) Snapshot() Snapshot {
	return *p.cur.Load()
}

func (p *PressState) publish(s Snapshot) {
	p.cur.Store(&s)
}

// Tracker resolves pointer positions to the nearest record of every
// bound serie and publishes the result. Move and Release must be
// called from a single goroutine.
type Tracker[T, U ScalerConstraint] struct {
	state  *PressState
	format func(T) string
	series []tracked[T, U]
}

type tracked[T, U ScalerConstraint] struct {
	serie Serie[T, U]
	pts   []ScreenPoint
}

func NewTracker[T, U ScalerConstraint](state *PressState, series ...Serie[T, U]) *Tracker[T, U] {
	t := Tracker[T, U]{
		state: state,
		format: func(v T) string {
			return fmt.Sprint(v)
		},
	}
	for _, s := range series {
		t.Attach(s)
	}
	return &t
}

func (t *Tracker[T, U]) State() *PressState {
	return t.state
}

// Format replaces the label formatter applied to independent values.
func (t *Tracker[T, U]) Format(fn func(T) string) {
	if fn != nil {
		t.format = fn
	}
}

// Attach binds a serie and materializes it once. Call again after the
// serie data or scalers change.
func (t *Tracker[T, U]) Attach(s Serie[T, U]) {
	for i := range t.series {
		if t.series[i].serie.Title == s.Title {
			t.series[i] = tracked[T, U]{serie: s, pts: s.Materialize()}
			return
		}
	}
	t.series = append(t.series, tracked[T, U]{serie: s, pts: s.Materialize()})
}

// Move resolves the records nearest to the pointer along the
// independent axis and publishes them with the active flag raised.
func (t *Tracker[T, U]) Move(px, py float64) {
	snap := Snapshot{
		Active: true,
		X:      px,
		Y:      py,
	}
	for _, tr := range t.series {
		i := nearestIndex(tr.pts, px)
		if i < 0 {
			continue
		}
		var (
			pt = tr.serie.Points[i]
			sp = tr.pts[i]
		)
		val := PressValue{
			Serie: tr.serie.Title,
			Index: i,
			X:     sp.X,
			Y:     sp.Y,
			Label: t.format(pt.X),
		}
		if f, ok := isFloat(pt.Y); ok {
			val.Value = f
		}
		if f, ok := isFloat(pt.X); ok {
			val.At = f
		} else if at, ok := any(pt.X).(time.Time); ok {
			val.At = float64(at.UnixNano())
		}
		snap.Values = append(snap.Values, val)
	}
	t.state.publish(snap)
}

// Release drops the active flag. The last position and values stay in
// place.
func (t *Tracker[T, U]) Release() {
	snap := t.state.Snapshot()
	snap.Active = false
	t.state.publish(snap)
}

// nearestIndex finds the record whose screen X is closest to px. The
// materialized points are expected in non decreasing X order. An exact
// tie between two neighbours goes to the earlier record. Returns -1
// for an empty serie.
func nearestIndex(pts []ScreenPoint, px float64) int {
	if len(pts) == 0 {
		return -1
	}
	i := sort.Search(len(pts), func(i int) bool {
		return pts[i].X >= px
	})
	if i == 0 {
		return 0
	}
	if i == len(pts) {
		return len(pts) - 1
	}
	if math.Abs(pts[i-1].X-px) <= math.Abs(pts[i].X-px) {
		return i - 1
	}
	return i
}
