package source

import (
	"errors"
	"math"
	"testing"

	"github.com/midbel/cartesian"
)

func TestSelectors(t *testing.T) {
	row := []string{"x", "1.5", "2.5", "4"}

	data := []struct {
		Name string
		Selector
		Want []float64
	}{
		{Name: "single", Selector: SelectSingle(1), Want: []float64{1.5}},
		{Name: "multi", Selector: SelectMulti([]int{1, 3}), Want: []float64{1.5, 4}},
		{Name: "sum", Selector: SelectSum(ExpandRange(1, 3)), Want: []float64{8}},
		{Name: "combined", Selector: Combined(SelectSingle(3), SelectSingle(1)), Want: []float64{4, 1.5}},
	}
	for _, d := range data {
		got, err := d.Select(row)
		if err != nil {
			t.Errorf("%s: %s", d.Name, err)
			continue
		}
		if len(got) != len(d.Want) {
			t.Errorf("%s: want %v, got %v", d.Name, d.Want, got)
			continue
		}
		for i := range got {
			if got[i] != d.Want[i] {
				t.Errorf("%s: want %v, got %v", d.Name, d.Want, got)
			}
		}
	}
}

func TestSelector_EmptyCell(t *testing.T) {
	got, err := SelectSingle(1).Select([]string{"x", ""})
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsNaN(got[0]) {
		t.Errorf("empty cell must read as NaN, got %f", got[0])
	}
}

func TestSelector_BadIndex(t *testing.T) {
	_, err := SelectSingle(7).Select([]string{"x", "1"})
	if !errors.Is(err, ErrIndex) {
		t.Errorf("want ErrIndex, got %v", err)
	}
}

func TestSelector_BadValue(t *testing.T) {
	if _, err := SelectSingle(1).Select([]string{"x", "not-a-number"}); err == nil {
		t.Error("garbage cell must be an error")
	}
}

func TestExpandRange(t *testing.T) {
	got := ExpandRange(2, 5)
	if len(got) != 4 || got[0] != 2 || got[3] != 5 {
		t.Errorf("expand(2, 5): got %v", got)
	}
}

func TestNumberExtent(t *testing.T) {
	ser := cartesian.NewSerie("t", []cartesian.Point[float64, float64]{
		cartesian.NumberPoint(0, 5),
		cartesian.NumberPoint(10, math.NaN()),
		cartesian.NumberPoint(20, -3),
	})
	xdom, ydom := NumberExtent(ser)
	if got := xdom.Extend(); got != 20 {
		t.Errorf("x extend: want 20, got %f", got)
	}
	if got := ydom.Extend(); got != 8 {
		t.Errorf("y extend skips missing values: want 8, got %f", got)
	}
}

func TestNumberExtent_Empty(t *testing.T) {
	xdom, ydom := NumberExtent()
	if xdom.Extend() != 0 || ydom.Extend() != 0 {
		t.Error("no data must give degenerate domains")
	}
}

func TestCategoryExtent(t *testing.T) {
	ser := cartesian.NewSerie("t", []cartesian.Point[string, float64]{
		cartesian.CategoryPoint("north", 1),
		cartesian.CategoryPoint("south", 2),
		cartesian.CategoryPoint("north", 3),
	})
	cats, _ := CategoryExtent(ser)
	if len(cats) != 2 || cats[0] != "north" || cats[1] != "south" {
		t.Errorf("categories in first-seen order: got %v", cats)
	}
}
