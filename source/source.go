package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/midbel/cartesian"
)

// DataSource yields series from tabular input. Series come back without
// scalers attached; the caller binds scalers once the domains are known
// (see Extent helpers). One serie is produced per selected dependent
// column, in column order, named from the header when one is present.
type DataSource interface {
	NumberSeries() ([]cartesian.Serie[float64, float64], error)
	TimeSeries() ([]cartesian.Serie[time.Time, float64], error)
	CategorySeries() ([]cartesian.Serie[string, float64], error)
}

type Limit struct {
	Offset int
	Count  int
}

func (l Limit) apply(rows [][]string) [][]string {
	z := len(rows)
	if l.Offset < 0 {
		l.Offset = z + l.Offset
	}
	if l.Offset > 0 && l.Offset < z {
		rows = rows[l.Offset:]
	}
	if l.Count > 0 && l.Count < len(rows) {
		rows = rows[:l.Count]
	}
	return rows
}

type LocalFile struct {
	Path       string
	Ident      string
	X          int
	Y          Selector
	TimeFormat string
	Limit
}

func (f LocalFile) Name() string {
	if f.Ident != "" {
		return f.Ident
	}
	return strings.TrimSuffix(filepath.Base(f.Path), filepath.Ext(f.Path))
}

func (f LocalFile) NumberSeries() ([]cartesian.Serie[float64, float64], error) {
	header, rows, err := f.load()
	if err != nil {
		return nil, err
	}
	return buildSeries(f.Name(), header, rows, f.Y, numberValue(f.X))
}

func (f LocalFile) TimeSeries() ([]cartesian.Serie[time.Time, float64], error) {
	header, rows, err := f.load()
	if err != nil {
		return nil, err
	}
	get, err := timeValue(f.X, f.TimeFormat)
	if err != nil {
		return nil, err
	}
	return buildSeries(f.Name(), header, rows, f.Y, get)
}

func (f LocalFile) CategorySeries() ([]cartesian.Serie[string, float64], error) {
	header, rows, err := f.load()
	if err != nil {
		return nil, err
	}
	return buildSeries(f.Name(), header, rows, f.Y, categoryValue(f.X))
}

func (f LocalFile) load() ([]string, [][]string, error) {
	r, err := readFrom(f.Path)
	if err != nil {
		return nil, nil, err
	}
	defer r.Close()
	header, rows, err := loadTable(r)
	if err != nil {
		return nil, nil, err
	}
	return header, f.Limit.apply(rows), nil
}

type HttpFile struct {
	Url        string
	Ident      string
	X          int
	Y          Selector
	TimeFormat string

	Method   string
	Body     string
	Username string
	Password string
	Headers  http.Header

	Limit
}

func (f HttpFile) Name() string {
	if f.Ident != "" {
		return f.Ident
	}
	u, err := url.Parse(f.Url)
	if err != nil {
		return f.Url
	}
	return strings.TrimSuffix(filepath.Base(u.Path), filepath.Ext(u.Path))
}

func (f HttpFile) NumberSeries() ([]cartesian.Serie[float64, float64], error) {
	header, rows, err := f.load()
	if err != nil {
		return nil, err
	}
	return buildSeries(f.Name(), header, rows, f.Y, numberValue(f.X))
}

func (f HttpFile) TimeSeries() ([]cartesian.Serie[time.Time, float64], error) {
	header, rows, err := f.load()
	if err != nil {
		return nil, err
	}
	get, err := timeValue(f.X, f.TimeFormat)
	if err != nil {
		return nil, err
	}
	return buildSeries(f.Name(), header, rows, f.Y, get)
}

func (f HttpFile) CategorySeries() ([]cartesian.Serie[string, float64], error) {
	header, rows, err := f.load()
	if err != nil {
		return nil, err
	}
	return buildSeries(f.Name(), header, rows, f.Y, categoryValue(f.X))
}

func (f HttpFile) load() ([]string, [][]string, error) {
	var body io.Reader
	if f.Body != "" {
		body = strings.NewReader(f.Body)
	}
	method := f.Method
	if method == "" {
		method = http.MethodGet
	}
	req, err := http.NewRequest(method, f.Url, body)
	if err != nil {
		return nil, nil, err
	}
	for k, vs := range f.Headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if f.Username != "" {
		req.SetBasicAuth(f.Username, f.Password)
	}
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("%s: request does not end with success result code", f.Url)
	}
	header, rows, err := loadTable(res.Body)
	if err != nil {
		return nil, nil, err
	}
	return header, f.Limit.apply(rows), nil
}

// Inline holds the document content itself instead of a location.
type Inline struct {
	Ident      string
	Content    string
	X          int
	Y          Selector
	TimeFormat string
}

func (d Inline) NumberSeries() ([]cartesian.Serie[float64, float64], error) {
	header, rows, err := loadTable(strings.NewReader(d.Content))
	if err != nil {
		return nil, err
	}
	return buildSeries(d.Ident, header, rows, d.Y, numberValue(d.X))
}

func (d Inline) TimeSeries() ([]cartesian.Serie[time.Time, float64], error) {
	header, rows, err := loadTable(strings.NewReader(d.Content))
	if err != nil {
		return nil, err
	}
	get, err := timeValue(d.X, d.TimeFormat)
	if err != nil {
		return nil, err
	}
	return buildSeries(d.Ident, header, rows, d.Y, get)
}

func (d Inline) CategorySeries() ([]cartesian.Serie[string, float64], error) {
	header, rows, err := loadTable(strings.NewReader(d.Content))
	if err != nil {
		return nil, err
	}
	return buildSeries(d.Ident, header, rows, d.Y, categoryValue(d.X))
}

func readFrom(location string) (io.ReadCloser, error) {
	u, err := url.Parse(location)
	if err != nil {
		return nil, err
	}
	switch u.Scheme {
	case "http", "https":
		req, err := http.NewRequest(http.MethodGet, u.String(), nil)
		if err != nil {
			return nil, err
		}
		res, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, err
		}
		if res.StatusCode != http.StatusOK {
			res.Body.Close()
			return nil, fmt.Errorf("request does not end with success result code")
		}
		return res.Body, nil
	case "", "file":
		return os.Open(u.Path)
	default:
		return nil, fmt.Errorf("%s: unsupported scheme", u.Scheme)
	}
}

// loadTable reads a whole CSV document. The first line is the header.
// An empty document gives an empty, valid table.
func loadTable(r io.Reader) ([]string, [][]string, error) {
	var (
		rs   = csv.NewReader(r)
		rows [][]string
	)
	header, err := rs.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, nil
		}
		return nil, nil, err
	}
	for {
		row, err := rs.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, nil, err
		}
		rows = append(rows, row)
	}
	return header, rows, nil
}

type xFunc[T cartesian.ScalerConstraint] func([]string) (T, error)

func numberValue(x int) xFunc[float64] {
	return func(row []string) (float64, error) {
		if x < 0 || x >= len(row) {
			return 0, ErrIndex
		}
		return strconv.ParseFloat(row[x], 64)
	}
}

func categoryValue(x int) xFunc[string] {
	return func(row []string) (string, error) {
		if x < 0 || x >= len(row) {
			return "", ErrIndex
		}
		return row[x], nil
	}
}

func timeValue(x int, timefmt string) (xFunc[time.Time], error) {
	parseTime, err := MakeParseTime(timefmt)
	if err != nil {
		return nil, err
	}
	return func(row []string) (time.Time, error) {
		if x < 0 || x >= len(row) {
			return time.Time{}, ErrIndex
		}
		return parseTime(row[x])
	}, nil
}

// buildSeries fans the selected dependent columns out into one serie per
// column, preserving row order.
func buildSeries[T cartesian.ScalerConstraint](ident string, header []string, rows [][]string, sel Selector, getx xFunc[T]) ([]cartesian.Serie[T, float64], error) {
	if sel == nil {
		sel = SelectSingle(1)
	}
	var series []cartesian.Serie[T, float64]
	for _, row := range rows {
		xv, err := getx(row)
		if err != nil {
			return nil, err
		}
		values, err := sel.Select(row)
		if err != nil {
			return nil, err
		}
		if series == nil {
			series = makeSeries[T](ident, header, sel, len(values))
		}
		if len(values) != len(series) {
			return nil, fmt.Errorf("%s: rows select a varying number of values", ident)
		}
		for i, v := range values {
			pt := cartesian.Point[T, float64]{X: xv, Y: v}
			series[i].Points = append(series[i].Points, pt)
		}
	}
	if series == nil {
		series = []cartesian.Serie[T, float64]{cartesian.NewSerie[T, float64](ident, nil)}
	}
	return series, nil
}

func makeSeries[T cartesian.ScalerConstraint](ident string, header []string, sel Selector, count int) []cartesian.Serie[T, float64] {
	var (
		series = make([]cartesian.Serie[T, float64], count)
		cols   = sel.columns()
	)
	for i := range series {
		title := ident
		if count > 1 {
			title = fmt.Sprintf("%s.%d", ident, i)
		}
		if i < len(cols) && len(cols) == count && cols[i] < len(header) {
			title = header[cols[i]]
		}
		series[i] = cartesian.NewSerie[T, float64](title, nil)
	}
	return series
}
