package source

import (
	"context"
	"time"

	"github.com/midbel/cartesian"
	"golang.org/x/sync/errgroup"
)

const maxFetch = 4

// LoadAll fetches every source concurrently through load and flattens
// the resulting series in source order. The first failure wins; fetches
// still queued behind the concurrency limit are skipped.
func LoadAll[T cartesian.ScalerConstraint](load func(DataSource) ([]cartesian.Serie[T, float64], error), srcs ...DataSource) ([]cartesian.Serie[T, float64], error) {
	var (
		grp, ctx = errgroup.WithContext(context.Background())
		out      = make([][]cartesian.Serie[T, float64], len(srcs))
	)
	grp.SetLimit(maxFetch)
	for i, src := range srcs {
		i, src := i, src
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			series, err := load(src)
			if err != nil {
				return err
			}
			out[i] = series
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	var list []cartesian.Serie[T, float64]
	for _, s := range out {
		list = append(list, s...)
	}
	return list, nil
}

// LoadNumbers loads number series from every source.
func LoadNumbers(srcs ...DataSource) ([]cartesian.Serie[float64, float64], error) {
	return LoadAll(DataSource.NumberSeries, srcs...)
}

// LoadTimes loads time series from every source.
func LoadTimes(srcs ...DataSource) ([]cartesian.Serie[time.Time, float64], error) {
	return LoadAll(DataSource.TimeSeries, srcs...)
}

// LoadCategories loads category series from every source.
func LoadCategories(srcs ...DataSource) ([]cartesian.Serie[string, float64], error) {
	return LoadAll(DataSource.CategorySeries, srcs...)
}
