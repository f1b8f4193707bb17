package cartesian

import (
	"fmt"
	"math"
	"time"
)

type ScalerConstraint interface {
	~float64 | ~string | time.Time
}

// Domain is the extent spanned by a variable. Diff gives the offset of
// a value from the low bound, Invert gives the value back at a given
// offset.
type Domain[T ScalerConstraint] interface {
	Diff(T) float64
	Invert(float64) T
	Extend() float64
	Values(int) []T
	Merge(Domain[T]) (Domain[T], error)
}

type numberDomain struct {
	fst float64
	lst float64
}

func NumberDomain(f, t float64) Domain[float64] {
	return numberDomain{
		fst: f,
		lst: t,
	}
}

func (n numberDomain) Merge(other Domain[float64]) (Domain[float64], error) {
	d, ok := other.(numberDomain)
	if !ok {
		return nil, fmt.Errorf("domain can not be merged")
	}
	x := n
	if d.fst < x.fst {
		x.fst = d.fst
	}
	if d.lst > x.lst {
		x.lst = d.lst
	}
	return x, nil
}

func (n numberDomain) Diff(v float64) float64 {
	return v - n.fst
}

func (n numberDomain) Invert(d float64) float64 {
	return n.fst + d
}

func (n numberDomain) Extend() float64 {
	return n.lst - n.fst
}

func (n numberDomain) Values(c int) []float64 {
	var (
		all  = make([]float64, c)
		step = n.Extend() / float64(c)
	)
	for i := 0; i < c; i++ {
		all[i] = n.fst + float64(i)*step
	}
	all = append(all, n.lst)
	return all
}

type timeDomain struct {
	fst time.Time
	lst time.Time
}

func TimeDomain(f, t time.Time) Domain[time.Time] {
	return timeDomain{
		fst: f,
		lst: t,
	}
}

func (t timeDomain) Merge(other Domain[time.Time]) (Domain[time.Time], error) {
	d, ok := other.(timeDomain)
	if !ok {
		return nil, fmt.Errorf("domain can not be merged")
	}
	n := t
	if d.fst.Before(n.fst) {
		n.fst = d.fst
	}
	if d.lst.After(n.lst) {
		n.lst = d.lst
	}
	return n, nil
}

func (t timeDomain) Diff(v time.Time) float64 {
	diff := v.Sub(t.fst)
	return float64(diff)
}

func (t timeDomain) Invert(d float64) time.Time {
	return t.fst.Add(time.Duration(d))
}

func (t timeDomain) Extend() float64 {
	diff := t.lst.Sub(t.fst)
	return float64(diff)
}

func (t timeDomain) Values(c int) []time.Time {
	var (
		all  = make([]time.Time, c)
		step = t.Extend() / float64(c)
	)
	for i := 0; i < c; i++ {
		all[i] = t.fst.Add(time.Duration(float64(i) * step))
	}
	all = append(all, t.lst)
	return all
}

type Range struct {
	F float64
	T float64
}

func NewRange(f, t float64) Range {
	return Range{
		F: f,
		T: t,
	}
}

func (r Range) Len() float64 {
	return r.T - r.F
}

func (r Range) Max() float64 {
	return r.T
}

func (r Range) Min() float64 {
	return r.F
}

// Scaler maps values of a domain onto pixel offsets of a Range and
// back. A degenerate domain (single value) does not divide by zero:
// Scale collapses every value onto the low end of the Range and Invert
// gives the single value back.
type Scaler[T ScalerConstraint] interface {
	Scale(T) float64
	Invert(float64) T
	Space() float64
	Values(int) []T
	Max() float64
	Min() float64

	replace(Range) Scaler[T]
}

type numberScaler struct {
	Range
	Domain[float64]
}

func NumberScaler(dom Domain[float64], rg Range) Scaler[float64] {
	return numberScaler{
		Range:  rg,
		Domain: dom,
	}
}

func (n numberScaler) Scale(v float64) float64 {
	return n.Diff(v) * n.Space()
}

func (n numberScaler) Invert(p float64) float64 {
	s := n.Space()
	if s == 0 {
		return n.Domain.Invert(0)
	}
	return n.Domain.Invert(p / s)
}

func (n numberScaler) Space() float64 {
	e := n.Extend()
	if e == 0 {
		return 0
	}
	return n.Len() / e
}

func (n numberScaler) replace(rg Range) Scaler[float64] {
	x := n
	x.Range = rg
	return x
}

type timeScaler struct {
	Range
	Domain[time.Time]
}

func TimeScaler(dom Domain[time.Time], rg Range) Scaler[time.Time] {
	return timeScaler{
		Range:  rg,
		Domain: dom,
	}
}

func (s timeScaler) Scale(v time.Time) float64 {
	return s.Diff(v) * s.Space()
}

func (s timeScaler) Invert(p float64) time.Time {
	sp := s.Space()
	if sp == 0 {
		return s.Domain.Invert(0)
	}
	return s.Domain.Invert(p / sp)
}

func (s timeScaler) Space() float64 {
	e := s.Extend()
	if e == 0 {
		return 0
	}
	return s.Len() / e
}

func (s timeScaler) replace(rg Range) Scaler[time.Time] {
	x := s
	x.Range = rg
	return x
}

type stringScaler struct {
	Range
	Strings []string
}

func StringScaler(str []string, rg Range) Scaler[string] {
	return stringScaler{
		Range:   rg,
		Strings: str,
	}
}

func (s stringScaler) Scale(v string) float64 {
	var x int
	for i := range s.Strings {
		if s.Strings[i] == v {
			x = i
			break
		}
	}
	return float64(x) * s.Space()
}

func (s stringScaler) Invert(p float64) string {
	if len(s.Strings) == 0 {
		return ""
	}
	sp := s.Space()
	if sp == 0 {
		return s.Strings[0]
	}
	x := int(math.Floor(p / sp))
	if x < 0 {
		x = 0
	}
	if x >= len(s.Strings) {
		x = len(s.Strings) - 1
	}
	return s.Strings[x]
}

func (s stringScaler) Space() float64 {
	if len(s.Strings) == 0 {
		return 0
	}
	return s.Len() / float64(len(s.Strings))
}

func (s stringScaler) Values(c int) []string {
	if c > 0 && c < len(s.Strings) {
		return s.Strings[:c]
	}
	return s.Strings
}

func (s stringScaler) Merge(values []string) Scaler[string] {
	var (
		list  []string
		seen  = make(map[string]struct{})
		empty = struct{}{}
	)
	merge := func(values []string) {
		for _, v := range values {
			_, ok := seen[v]
			if ok {
				continue
			}
			list = append(list, v)
			seen[v] = empty
		}
	}
	merge(s.Strings)
	merge(values)
	return StringScaler(list, s.Range)
}

func (s stringScaler) replace(rg Range) Scaler[string] {
	x := s
	x.Range = rg
	x.Strings = make([]string, len(s.Strings))
	copy(x.Strings, s.Strings)
	return x
}
