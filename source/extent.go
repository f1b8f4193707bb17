package source

import (
	"math"
	"time"

	"github.com/aclements/go-moremath/stats"
	"github.com/midbel/cartesian"
)

// NumberExtent derives the X and Y domains spanned by the given series.
// Missing values do not contribute. Series with no usable value give
// the degenerate (0, 0) domain, which scalers accept.
func NumberExtent(series ...cartesian.Serie[float64, float64]) (cartesian.Domain[float64], cartesian.Domain[float64]) {
	var xs, ys []float64
	for _, s := range series {
		for _, pt := range s.Points {
			if !math.IsNaN(pt.X) {
				xs = append(xs, pt.X)
			}
			if !math.IsNaN(pt.Y) {
				ys = append(ys, pt.Y)
			}
		}
	}
	return numberDomainOf(xs), numberDomainOf(ys)
}

// TimeExtent derives the time domain and the Y domain of time series.
func TimeExtent(series ...cartesian.Serie[time.Time, float64]) (cartesian.Domain[time.Time], cartesian.Domain[float64]) {
	var (
		fst time.Time
		lst time.Time
		set bool
		ys  []float64
	)
	for _, s := range series {
		for _, pt := range s.Points {
			if !set {
				fst, lst, set = pt.X, pt.X, true
			}
			if pt.X.Before(fst) {
				fst = pt.X
			}
			if pt.X.After(lst) {
				lst = pt.X
			}
			if !math.IsNaN(pt.Y) {
				ys = append(ys, pt.Y)
			}
		}
	}
	return cartesian.TimeDomain(fst, lst), numberDomainOf(ys)
}

// CategoryExtent collects the distinct categories in first-seen order
// and the Y domain of category series.
func CategoryExtent(series ...cartesian.Serie[string, float64]) ([]string, cartesian.Domain[float64]) {
	var (
		list []string
		seen = make(map[string]struct{})
		ys   []float64
	)
	for _, s := range series {
		for _, pt := range s.Points {
			if _, ok := seen[pt.X]; !ok {
				list = append(list, pt.X)
				seen[pt.X] = struct{}{}
			}
			if !math.IsNaN(pt.Y) {
				ys = append(ys, pt.Y)
			}
		}
	}
	return list, numberDomainOf(ys)
}

func numberDomainOf(vs []float64) cartesian.Domain[float64] {
	if len(vs) == 0 {
		return cartesian.NumberDomain(0, 0)
	}
	sample := stats.Sample{Xs: vs}
	min, max := sample.Bounds()
	return cartesian.NumberDomain(min, max)
}
