package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/midbel/cartesian"
	"github.com/midbel/cartesian/source"
	"github.com/midbel/slices"
)

const (
	defaultWidth  = 800
	defaultHeight = 600
	defaultTicks  = 7
)

var defaultPad = cartesian.Padding{
	Top:    80,
	Right:  80,
	Bottom: 80,
	Left:   80,
}

type scalerConstraint = cartesian.ScalerConstraint

type options struct {
	Title   string
	Kind    string
	XData   string
	XCol    int
	YCol    string
	TimeFmt string
	XDom    string
	YDom    string
	XTics   int
	YTics   int
	Width   float64
	Height  float64
	NoAxis  bool
	Format  string
	Press   string
	Marker  string
	Palette string
	File    string
}

func main() {
	var opt options
	flag.StringVar(&opt.Title, "title", "", "chart title")
	flag.StringVar(&opt.Kind, "type", "", "chart type (line, cubic, step, step-after, step-before, scatter, bar)")
	flag.StringVar(&opt.XData, "xdata", "number", "x data type (number, time, string)")
	flag.IntVar(&opt.XCol, "xcol", 0, "index of x column")
	flag.StringVar(&opt.YCol, "ycol", "1", "y columns (N, N,M, N-M, sum:N-M)")
	flag.StringVar(&opt.TimeFmt, "timefmt", "%F", "format of time values")
	flag.StringVar(&opt.XDom, "xdom", "", "domain for x values (min:max)")
	flag.StringVar(&opt.YDom, "ydom", "", "domain for y values (min:max)")
	flag.IntVar(&opt.XTics, "xtics", defaultTicks, "ticks on x axis")
	flag.IntVar(&opt.YTics, "ytics", defaultTicks, "ticks on y axis")
	flag.Float64Var(&opt.Width, "width", defaultWidth, "chart width")
	flag.Float64Var(&opt.Height, "height", defaultHeight, "chart height")
	flag.BoolVar(&opt.NoAxis, "no-axis", false, "remove axis")
	flag.StringVar(&opt.Format, "format", "svg", "output format (svg, png)")
	flag.StringVar(&opt.Press, "press", "", "pointer position (X,Y) to resolve and overlay")
	flag.StringVar(&opt.Marker, "marker", "", "marker shape (circle, square, diamond)")
	flag.StringVar(&opt.Palette, "palette", "", "bar fill palette (tableau10, category10)")
	flag.StringVar(&opt.File, "file", "", "output file")
	flag.Parse()

	var err error
	switch opt.XData {
	case "number", "":
		err = drawNumbers(opt, flag.Args())
	case "time":
		err = drawTimes(opt, flag.Args())
	case "string":
		err = drawCategories(opt, flag.Args())
	default:
		err = fmt.Errorf("%s: unsupported x data type", opt.XData)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func drawNumbers(opt options, files []string) error {
	series, err := source.LoadNumbers(sources(opt, files)...)
	if err != nil {
		return err
	}
	xdom, ydom := source.NumberExtent(series...)
	if xdom, err = overrideNumber(xdom, opt.XDom, false); err != nil {
		return err
	}
	if ydom, err = overrideNumber(ydom, opt.YDom, false); err != nil {
		return err
	}
	point, err := markerFunc(opt.Marker)
	if err != nil {
		return err
	}
	var (
		xscale = cartesian.NumberScaler(xdom, cartesian.NewRange(0, opt.Width-defaultPad.Horizontal()))
		yscale = cartesian.NumberScaler(reverseNumber(ydom), cartesian.NewRange(0, opt.Height-defaultPad.Vertical()))
	)
	for i := range series {
		series[i].X = xscale
		series[i].Y = yscale
		if series[i].Renderer, err = numberRenderer[float64, float64](opt.Kind, "blue", point); err != nil {
			return err
		}
	}
	if opt.Format == "png" {
		return writeOut(opt.File, func(w io.Writer) error {
			return cartesian.RenderPNG(w, opt.Title, opt.Width, opt.Height, pressState(opt, series), series...)
		})
	}
	ch := cartesian.Chart[float64, float64]{
		Title:   opt.Title,
		Width:   opt.Width,
		Height:  opt.Height,
		Padding: defaultPad,
	}
	if !opt.NoAxis {
		ch.Bottom = axis(xscale, opt.XTics, cartesian.OrientBottom)
		ch.Left = axis(yscale, opt.YTics, cartesian.OrientLeft)
	}
	attachPress(&ch, opt, series...)
	return renderChart(opt.File, ch, asData(series))
}

func drawTimes(opt options, files []string) error {
	series, err := source.LoadTimes(sources(opt, files)...)
	if err != nil {
		return err
	}
	xdom, ydom := source.TimeExtent(series...)
	if xdom, err = overrideTime(xdom, opt.XDom, opt.TimeFmt); err != nil {
		return err
	}
	if ydom, err = overrideNumber(ydom, opt.YDom, false); err != nil {
		return err
	}
	point, err := markerFunc(opt.Marker)
	if err != nil {
		return err
	}
	var (
		xscale = cartesian.TimeScaler(xdom, cartesian.NewRange(0, opt.Width-defaultPad.Horizontal()))
		yscale = cartesian.NumberScaler(reverseNumber(ydom), cartesian.NewRange(0, opt.Height-defaultPad.Vertical()))
	)
	for i := range series {
		series[i].X = xscale
		series[i].Y = yscale
		if series[i].Renderer, err = numberRenderer[time.Time, float64](opt.Kind, "blue", point); err != nil {
			return err
		}
	}
	if opt.Format == "png" {
		return writeOut(opt.File, func(w io.Writer) error {
			return cartesian.RenderTimePNG(w, opt.Title, opt.Width, opt.Height, pressState(opt, series), series...)
		})
	}
	ch := cartesian.Chart[time.Time, float64]{
		Title:   opt.Title,
		Width:   opt.Width,
		Height:  opt.Height,
		Padding: defaultPad,
	}
	if !opt.NoAxis {
		ch.Bottom = axis(xscale, opt.XTics, cartesian.OrientBottom)
		ch.Left = axis(yscale, opt.YTics, cartesian.OrientLeft)
		if ch.Bottom.Format, err = source.MakeTimeFormat(opt.TimeFmt); err != nil {
			return err
		}
	}
	attachPress(&ch, opt, series...)
	return renderChart(opt.File, ch, asData(series))
}

func drawCategories(opt options, files []string) error {
	series, err := source.LoadCategories(sources(opt, files)...)
	if err != nil {
		return err
	}
	cats, ydom := source.CategoryExtent(series...)
	if ydom, err = overrideNumber(ydom, opt.YDom, false); err != nil {
		return err
	}
	var (
		xscale = cartesian.StringScaler(cats, cartesian.NewRange(0, opt.Width-defaultPad.Horizontal()))
		yscale = cartesian.NumberScaler(reverseNumber(ydom), cartesian.NewRange(0, opt.Height-defaultPad.Vertical()))
	)
	fill, err := paletteColors(opt.Palette)
	if err != nil {
		return err
	}
	for i := range series {
		series[i].X = xscale
		series[i].Y = yscale
		series[i].Renderer = cartesian.BarRenderer[string, float64]{
			Width: 0.9,
			Fill:  fill,
		}
	}
	if opt.Format == "png" {
		return fmt.Errorf("png output not available for category data")
	}
	ch := cartesian.Chart[string, float64]{
		Title:   opt.Title,
		Width:   opt.Width,
		Height:  opt.Height,
		Padding: defaultPad,
	}
	if !opt.NoAxis {
		ch.Bottom = axis(xscale, 0, cartesian.OrientBottom)
		ch.Left = axis(yscale, opt.YTics, cartesian.OrientLeft)
	}
	attachPress(&ch, opt, series...)
	return renderChart(opt.File, ch, asData(series))
}

func sources(opt options, files []string) []source.DataSource {
	var list []source.DataSource
	for _, f := range files {
		list = append(list, source.LocalFile{
			Path:       f,
			X:          opt.XCol,
			Y:          parseSelector(opt.YCol),
			TimeFormat: opt.TimeFmt,
		})
	}
	return list
}

// attachPress resolves the -press position against the loaded series
// and bakes the crosshair overlay into the chart.
func attachPress[T, U scalerConstraint](ch *cartesian.Chart[T, U], opt options, series ...cartesian.Serie[T, U]) {
	px, py, ok := parsePress(opt.Press)
	if !ok {
		return
	}
	state := cartesian.NewPressState()
	track := cartesian.NewTracker(state, series...)
	track.Move(ch.Locate(px, py))

	ch.Press = state
	ch.Crosshair = cartesian.CrosshairRenderer{
		Color:  "black",
		Length: ch.DrawingHeight(),
	}
}

func pressState[T, U scalerConstraint](opt options, series []cartesian.Serie[T, U]) *cartesian.PressState {
	px, py, ok := parsePress(opt.Press)
	if !ok {
		return nil
	}
	state := cartesian.NewPressState()
	track := cartesian.NewTracker(state, series...)
	track.Move(px-defaultPad.Left, py-defaultPad.Top)
	return state
}

func parsePress(str string) (float64, float64, bool) {
	if str == "" {
		return 0, 0, false
	}
	vs := strings.Split(str, ",")
	if len(vs) != 2 {
		return 0, 0, false
	}
	x, err1 := strconv.ParseFloat(strings.TrimSpace(slices.Fst(vs)), 64)
	y, err2 := strconv.ParseFloat(strings.TrimSpace(slices.Lst(vs)), 64)
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return x, y, true
}

// parseSelector understands "N" (single column), "N,M" (several),
// "N-M" (range) and "sum:N-M" (range summed into one serie).
func parseSelector(str string) source.Selector {
	var sum bool
	if rest, ok := strings.CutPrefix(str, "sum:"); ok {
		str, sum = rest, true
	}
	var index []int
	for _, part := range strings.Split(str, ",") {
		if fst, lst, ok := strings.Cut(part, "-"); ok {
			f, err1 := strconv.Atoi(fst)
			t, err2 := strconv.Atoi(lst)
			if err1 == nil && err2 == nil {
				index = append(index, source.ExpandRange(f, t)...)
			}
			continue
		}
		if i, err := strconv.Atoi(part); err == nil {
			index = append(index, i)
		}
	}
	if len(index) == 0 {
		index = []int{1}
	}
	if sum {
		return source.SelectSum(index)
	}
	return source.SelectMulti(index)
}

func axis[T scalerConstraint](scale cartesian.Scaler[T], ticks int, orient cartesian.Orientation) *cartesian.Axis[T] {
	return &cartesian.Axis[T]{
		Ticks:          ticks,
		WithOuterTicks: true,
		WithInnerTicks: true,
		WithLabelTicks: true,
		Scaler:         scale,
		Orientation:    orient,
	}
}

func numberRenderer[T, U scalerConstraint](kind, color string, point cartesian.PointFunc) (cartesian.Renderer[T, U], error) {
	var rdr cartesian.Renderer[T, U]
	switch kind {
	case "line", "":
		rdr = cartesian.LinearRenderer[T, U]{
			Color: color,
			Point: point,
		}
	case "cubic":
		rdr = cartesian.CubicRenderer[T, U]{
			Color:   color,
			Point:   point,
			Stretch: 0.5,
		}
	case "step":
		rdr = cartesian.StepRenderer[T, U]{
			Color: color,
			Point: point,
		}
	case "step-after":
		rdr = cartesian.StepAfterRenderer[T, U]{
			Color: color,
			Point: point,
		}
	case "step-before":
		rdr = cartesian.StepBeforeRenderer[T, U]{
			Color: color,
			Point: point,
		}
	case "scatter":
		rdr = cartesian.PointRenderer[T, U]{
			Color: color,
			Point: point,
		}
	default:
		return nil, fmt.Errorf("%s: unrecognized chart renderer", kind)
	}
	return rdr, nil
}

func markerFunc(name string) (cartesian.PointFunc, error) {
	switch name {
	case "":
		return nil, nil
	case "circle":
		return cartesian.GetCircle, nil
	case "square":
		return cartesian.GetSquare, nil
	case "diamond":
		return cartesian.GetDiamond, nil
	default:
		return nil, fmt.Errorf("%s: unrecognized marker shape", name)
	}
}

func paletteColors(name string) ([]string, error) {
	switch name {
	case "", "tableau10":
		return cartesian.Tableau10, nil
	case "category10":
		return cartesian.Category10, nil
	default:
		return nil, fmt.Errorf("%s: unrecognized palette", name)
	}
}

func overrideNumber(dom cartesian.Domain[float64], str string, reverse bool) (cartesian.Domain[float64], error) {
	if str == "" {
		return dom, nil
	}
	vs := strings.Split(str, ":")
	if len(vs) != 2 {
		return nil, fmt.Errorf("invalid number of values given for domain")
	}
	fn, err := strconv.ParseFloat(slices.Fst(vs), 64)
	if err != nil {
		return nil, err
	}
	tn, err := strconv.ParseFloat(slices.Lst(vs), 64)
	if err != nil {
		return nil, err
	}
	if reverse {
		fn, tn = tn, fn
	}
	return cartesian.NumberDomain(fn, tn), nil
}

func overrideTime(dom cartesian.Domain[time.Time], str, timefmt string) (cartesian.Domain[time.Time], error) {
	if str == "" {
		return dom, nil
	}
	parseTime, err := source.MakeParseTime(timefmt)
	if err != nil {
		return nil, err
	}
	vs := strings.Split(str, ":")
	if len(vs) != 2 {
		return nil, fmt.Errorf("invalid number of values given for domain")
	}
	fd, err := parseTime(slices.Fst(vs))
	if err != nil {
		return nil, err
	}
	td, err := parseTime(slices.Lst(vs))
	if err != nil {
		return nil, err
	}
	return cartesian.TimeDomain(fd, td), nil
}

// reverseNumber flips a Y domain so larger values land nearer the top
// of the drawing area.
func reverseNumber(dom cartesian.Domain[float64]) cartesian.Domain[float64] {
	vs := dom.Values(1)
	return cartesian.NumberDomain(slices.Lst(vs), slices.Fst(vs))
}

func asData[T, U scalerConstraint](series []cartesian.Serie[T, U]) []cartesian.Data {
	list := make([]cartesian.Data, 0, len(series))
	for _, s := range series {
		list = append(list, s)
	}
	return list
}

type chartRenderer interface {
	Render(io.Writer, ...cartesian.Data)
}

func renderChart(file string, ch chartRenderer, series []cartesian.Data) error {
	return writeOut(file, func(w io.Writer) error {
		ch.Render(w, series...)
		return nil
	})
}

func writeOut(file string, render func(io.Writer) error) error {
	var w io.Writer = os.Stdout
	if file != "" {
		f, err := os.Create(file)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return render(w)
}
