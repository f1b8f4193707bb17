package cartesian

import (
	"math"
	"testing"
	"time"
)

func TestNumberScaler_Scale(t *testing.T) {
	scale := NumberScaler(NumberDomain(0, 30), NewRange(0, 300))

	data := []struct {
		Value float64
		Want  float64
	}{
		{Value: 0, Want: 0},
		{Value: 30, Want: 300},
		{Value: 15, Want: 150},
		{Value: 3, Want: 30},
	}
	for _, d := range data {
		if got := scale.Scale(d.Value); got != d.Want {
			t.Errorf("scale(%f): want %f, got %f", d.Value, d.Want, got)
		}
	}
}

func TestNumberScaler_Invert(t *testing.T) {
	scale := NumberScaler(NumberDomain(10, 40), NewRange(0, 300))
	for _, v := range []float64{10, 17.5, 25, 40} {
		got := scale.Invert(scale.Scale(v))
		if math.Abs(got-v) > 1e-9 {
			t.Errorf("invert(scale(%f)): got %f", v, got)
		}
	}
}

func TestNumberScaler_DegenerateDomain(t *testing.T) {
	scale := NumberScaler(NumberDomain(5, 5), NewRange(0, 300))
	if got := scale.Scale(5); got != 0 {
		t.Errorf("degenerate scale: want 0, got %f", got)
	}
	if got := scale.Scale(17); math.IsNaN(got) || math.IsInf(got, 0) {
		t.Errorf("degenerate scale must stay finite, got %f", got)
	}
	if got := scale.Invert(150); got != 5 {
		t.Errorf("degenerate invert: want 5, got %f", got)
	}
}

func TestTimeScaler(t *testing.T) {
	var (
		fst   = time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
		lst   = fst.AddDate(0, 0, 30)
		scale = TimeScaler(TimeDomain(fst, lst), NewRange(0, 300))
	)
	if got := scale.Scale(fst); got != 0 {
		t.Errorf("scale(fst): want 0, got %f", got)
	}
	if got := scale.Scale(lst); got != 300 {
		t.Errorf("scale(lst): want 300, got %f", got)
	}
	mid := fst.AddDate(0, 0, 15)
	if got := scale.Scale(mid); got != 150 {
		t.Errorf("scale(mid): want 150, got %f", got)
	}
	if got := scale.Invert(150); !got.Equal(mid) {
		t.Errorf("invert(150): want %s, got %s", mid, got)
	}
}

func TestStringScaler(t *testing.T) {
	var (
		days  = []string{"mon", "tue", "wed", "thu", "fri"}
		scale = StringScaler(days, NewRange(0, 500))
	)
	if got := scale.Space(); got != 100 {
		t.Errorf("space: want 100, got %f", got)
	}
	if got := scale.Scale("wed"); got != 200 {
		t.Errorf("scale(wed): want 200, got %f", got)
	}
	if got := scale.Invert(250); got != "wed" {
		t.Errorf("invert(250): want wed, got %s", got)
	}
	if got := scale.Invert(9999); got != "fri" {
		t.Errorf("invert past the range clamps to last, got %s", got)
	}
}

func TestNumberDomain_Merge(t *testing.T) {
	fst := NumberDomain(10, 20)
	lst := NumberDomain(0, 15)

	dom, err := fst.Merge(lst)
	if err != nil {
		t.Fatal(err)
	}
	if got := dom.Extend(); got != 20 {
		t.Errorf("merged extend: want 20, got %f", got)
	}
	if got := dom.Diff(0); got != 0 {
		t.Errorf("merged lower bound should be 0, diff(0) = %f", got)
	}
}

func TestTimeDomain_Merge(t *testing.T) {
	var (
		d1 = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
		d2 = d1.AddDate(0, 1, 0)
		d3 = d1.AddDate(0, 2, 0)
	)
	dom, err := TimeDomain(d2, d3).Merge(TimeDomain(d1, d2))
	if err != nil {
		t.Fatal(err)
	}
	want := d3.Sub(d1)
	if got := dom.Extend(); got != float64(want) {
		t.Errorf("merged extend: want %f, got %f", float64(want), got)
	}
}

func TestDomainValues(t *testing.T) {
	dom := NumberDomain(0, 10)
	values := dom.Values(5)
	if len(values) != 6 {
		t.Fatalf("values(5): want 6 ticks, got %d", len(values))
	}
	if values[0] != 0 || values[len(values)-1] != 10 {
		t.Errorf("values must span the domain, got %v", values)
	}
}
