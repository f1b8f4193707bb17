package cartesian

import (
	"fmt"

	"github.com/midbel/slices"
	"github.com/midbel/svg"
)

type TextPosition int

const (
	TextBefore TextPosition = 1 << iota
	TextAfter
)

const currentColour = "currentColour"

type Renderer[T, U ScalerConstraint] interface {
	Render(Serie[T, U]) svg.Element
}

// LinearRenderer joins the materialized points of a serie with straight
// segments. A missing point breaks the path when IgnoreMissing is set
// and is bridged over otherwise. The path always opens at the first
// drawn point.
type LinearRenderer[T, U ScalerConstraint] struct {
	Fill          bool
	Color         string
	Skip          int
	Point         PointFunc
	Text          TextPosition
	IgnoreMissing bool
}

func (r LinearRenderer[T, U]) Render(serie Serie[T, U]) svg.Element {
	var (
		grp     = getBaseGroup(r.Color, "line")
		pat     = getBasePath(r.Fill)
		pts     = serie.Materialize()
		pos     svg.Pos
		gap     bool
		started bool
	)
	grp.Id = serie.Title
	for i, pt := range pts {
		if r.Skip != 0 && i > 0 && i%r.Skip == 0 {
			continue
		}
		if pt.Missing() {
			gap = true
			continue
		}
		pos.X = pt.X
		pos.Y = pt.Y
		if !started || (gap && (r.IgnoreMissing || serie.IgnoreMissing)) {
			pat.AbsMoveTo(pos)
		} else {
			pat.AbsLineTo(pos)
		}
		started = true
		gap = false
		if r.Point != nil {
			if el := r.Point(pos); el != nil {
				grp.Append(el)
			}
		}
	}
	appendSerieText(&grp, r.Text, serie, pts)
	if r.Fill && started {
		pos.Y = serie.Y.Max()
		pat.AbsLineTo(pos)
	}
	grp.Append(pat.AsElement())
	return grp.AsElement()
}

// CubicRenderer joins the materialized points with cubic bezier
// segments. Stretch controls how far the control points reach towards
// the next record.
type CubicRenderer[T, U ScalerConstraint] struct {
	Stretch       float64
	Color         string
	Skip          int
	Point         PointFunc
	IgnoreMissing bool
}

func (r CubicRenderer[T, U]) Render(serie Serie[T, U]) svg.Element {
	var (
		grp     = getBaseGroup(r.Color, "line", "line-cubic")
		pat     = getBasePath(false)
		pts     = serie.Materialize()
		pos     svg.Pos
		ori     svg.Pos
		gap     bool
		started bool
	)
	grp.Id = serie.Title
	for i, pt := range pts {
		if r.Skip != 0 && i > 0 && i%r.Skip != 0 {
			continue
		}
		if pt.Missing() {
			gap = true
			continue
		}
		pos.X = pt.X
		pos.Y = pt.Y
		if !started || (gap && (r.IgnoreMissing || serie.IgnoreMissing)) {
			pat.AbsMoveTo(pos)
		} else {
			var (
				ctrl1 = ori
				ctrl2 = pos
				diff  = (pos.X - ori.X) * r.Stretch
			)
			ctrl1.X += diff
			ctrl2.X -= diff
			pat.AbsCubicCurve(pos, ctrl1, ctrl2)
		}
		started = true
		gap = false
		ori = pos
		if r.Point != nil {
			grp.Append(r.Point(pos))
		}
	}
	grp.Append(pat.AsElement())
	return grp.AsElement()
}

// StepRenderer draws a mid step line: each segment turns halfway
// between two consecutive points.
type StepRenderer[T, U ScalerConstraint] struct {
	Color         string
	Fill          bool
	Point         PointFunc
	Text          TextPosition
	IgnoreMissing bool
}

func (r StepRenderer[T, U]) Render(serie Serie[T, U]) svg.Element {
	var (
		grp     = getBaseGroup(r.Color, "line", "line-step")
		pat     = getBasePath(r.Fill)
		pts     = serie.Materialize()
		pos     svg.Pos
		ori     svg.Pos
		gap     bool
		started bool
	)
	grp.Id = serie.Title
	for _, pt := range pts {
		if pt.Missing() {
			gap = true
			continue
		}
		pos.X = pt.X
		pos.Y = pt.Y
		if !started || (gap && (r.IgnoreMissing || serie.IgnoreMissing)) {
			pat.AbsMoveTo(pos)
		} else {
			ori.X += (pos.X - ori.X) / 2
			pat.AbsLineTo(ori)
			ori.Y = pos.Y
			pat.AbsLineTo(ori)
			pat.AbsLineTo(pos)
		}
		started = true
		gap = false
		ori = pos
		if r.Point != nil {
			grp.Append(r.Point(pos))
		}
	}
	appendSerieText(&grp, r.Text, serie, pts)
	if r.Fill && started {
		pos.Y = serie.Y.Max()
		pat.AbsLineTo(pos)
	}
	grp.Append(pat.AsElement())
	return grp.AsElement()
}

// StepAfterRenderer holds the previous value until the next record
// before stepping to it.
type StepAfterRenderer[T, U ScalerConstraint] struct {
	Color         string
	Fill          bool
	Point         PointFunc
	Text          TextPosition
	IgnoreMissing bool
}

func (r StepAfterRenderer[T, U]) Render(serie Serie[T, U]) svg.Element {
	var (
		grp     = getBaseGroup(r.Color, "line", "line-step-after")
		pat     = getBasePath(r.Fill)
		pts     = serie.Materialize()
		pos     svg.Pos
		ori     svg.Pos
		gap     bool
		started bool
	)
	grp.Id = serie.Title
	for _, pt := range pts {
		if pt.Missing() {
			gap = true
			continue
		}
		pos.X = pt.X
		pos.Y = pt.Y
		if !started || (gap && (r.IgnoreMissing || serie.IgnoreMissing)) {
			pat.AbsMoveTo(pos)
		} else {
			ori.X = pos.X
			pat.AbsLineTo(ori)
			ori.Y = pos.Y
			pat.AbsLineTo(ori)
			pat.AbsLineTo(pos)
		}
		started = true
		gap = false
		ori = pos
		if r.Point != nil {
			grp.Append(r.Point(pos))
		}
	}
	appendSerieText(&grp, r.Text, serie, pts)
	if r.Fill && started {
		pos.X = serie.X.Max()
		pat.AbsLineTo(pos)
		pos.Y = serie.Y.Max()
		pat.AbsLineTo(pos)
	}
	grp.Append(pat.AsElement())
	return grp.AsElement()
}

// StepBeforeRenderer steps to the next value as soon as the previous
// record ends.
type StepBeforeRenderer[T, U ScalerConstraint] struct {
	Color         string
	Fill          bool
	Point         PointFunc
	Text          TextPosition
	IgnoreMissing bool
}

func (r StepBeforeRenderer[T, U]) Render(serie Serie[T, U]) svg.Element {
	var (
		grp     = getBaseGroup(r.Color, "line", "line-step-before")
		pat     = getBasePath(r.Fill)
		pts     = serie.Materialize()
		pos     svg.Pos
		ori     svg.Pos
		gap     bool
		started bool
	)
	grp.Id = serie.Title
	for _, pt := range pts {
		if pt.Missing() {
			gap = true
			continue
		}
		pos.X = pt.X
		pos.Y = pt.Y
		if !started || (gap && (r.IgnoreMissing || serie.IgnoreMissing)) {
			pat.AbsMoveTo(pos)
		} else {
			ori.Y = pos.Y
			pat.AbsLineTo(ori)
			ori.X = pos.X
			pat.AbsLineTo(ori)
			pat.AbsLineTo(pos)
		}
		started = true
		gap = false
		ori = pos
		if r.Point != nil {
			grp.Append(r.Point(pos))
		}
	}
	appendSerieText(&grp, r.Text, serie, pts)
	if r.Fill && started {
		pos.Y = serie.Y.Max()
		pat.AbsLineTo(pos)
	}
	grp.Append(pat.AsElement())
	return grp.AsElement()
}

// PointRenderer draws one marker per materialized point.
type PointRenderer[T, U ScalerConstraint] struct {
	Color string
	Skip  int
	Point PointFunc
}

func (r PointRenderer[T, U]) Render(serie Serie[T, U]) svg.Element {
	grp := getBaseGroup(r.Color, "scatter")
	get := r.Point
	if get == nil {
		get = GetCircle
	}
	for i, pt := range serie.Materialize() {
		if r.Skip > 0 && i > 0 && i%r.Skip != 0 {
			continue
		}
		if pt.Missing() {
			continue
		}
		grp.Append(get(svg.NewPos(pt.X, pt.Y)))
	}
	return grp.AsElement()
}

// BarRenderer draws one bar per category.
type BarRenderer[T ~string, U ~float64] struct {
	Fill  []string
	Width float64
}

func (r BarRenderer[T, U]) Render(serie Serie[T, U]) svg.Element {
	if r.Width <= 0 {
		r.Width = 1
	}
	if len(r.Fill) == 0 {
		r.Fill = Tableau10
	}
	grp := getBaseGroup("")
	for i, pt := range serie.Materialize() {
		if pt.Missing() {
			continue
		}
		var (
			w   = serie.X.Space() * r.Width
			o   = (serie.X.Space() - w) / 2
			pos = svg.NewPos(pt.X+o, pt.Y)
			dim = svg.NewDim(w, serie.Y.Max()-pt.Y)
		)
		var el svg.Rect
		el.Pos = pos
		el.Dim = dim
		el.Fill = svg.NewFill(r.Fill[i%len(r.Fill)])
		grp.Append(el.AsElement())
	}
	return grp.AsElement()
}

// CrosshairRenderer turns the latest press snapshot into overlay
// geometry: a vertical rule snapped to the nearest record, a marker per
// serie and a value label. Nothing is drawn while no gesture is active;
// the retained values stay in the state for the next gesture.
type CrosshairRenderer struct {
	Color  string
	Length float64
}

func (r CrosshairRenderer) Render(state *PressState) svg.Element {
	grp := getBaseGroup(r.Color, "crosshair")
	snap := state.Snapshot()
	if !snap.Active || len(snap.Values) == 0 {
		return grp.AsElement()
	}
	fst := slices.Fst(snap.Values)
	rule := svg.NewLine(svg.NewPos(fst.X, 0), svg.NewPos(fst.X, r.Length))
	rule.Stroke = svg.NewStroke(currentColour, 1)
	rule.Stroke.DashArray = []int{4}
	grp.Append(rule.AsElement())

	for i, v := range snap.Values {
		grp.Append(GetCircle(svg.NewPos(v.X, v.Y)))

		txt := svg.NewText(fmt.Sprintf("%s: %s, %.2f", v.Serie, v.Label, v.Value))
		txt.Pos = svg.NewPos(v.X+FontSize*0.4, v.Y-float64(i+1)*FontSize*1.2)
		txt.Font = svg.NewFont(FontSize)
		txt.Anchor = "start"
		txt.Baseline = "middle"
		grp.Append(txt.AsElement())
	}
	return grp.AsElement()
}

func appendSerieText[T, U ScalerConstraint](grp *svg.Group, where TextPosition, serie Serie[T, U], pts []ScreenPoint) {
	if len(pts) == 0 {
		return
	}
	switch where {
	case TextBefore:
		pt := slices.Fst(pts)
		txt := getLineText(serie.Title, 0, pt.Y, true)
		grp.Append(txt.AsElement())
	case TextAfter:
		pt := slices.Lst(pts)
		txt := getLineText(serie.Title, pt.X, pt.Y, false)
		grp.Append(txt.AsElement())
	default:
	}
}

func getLineText(str string, x, y float64, before bool) svg.Text {
	txt := svg.NewText(str)
	txt.Font = svg.NewFont(FontSize)
	txt.Pos = svg.NewPos(x, y)
	txt.Anchor = "end"
	txt.Baseline = "middle"
	if !before {
		txt.Anchor = "start"
		txt.Pos.X += FontSize * 0.4
	} else {
		txt.Pos.X -= FontSize * 0.4
	}
	return txt
}

func getBasePath(fill bool) svg.Path {
	var pat svg.Path
	pat.Rendering = "geometricPrecision"
	pat.Stroke = svg.NewStroke(currentColour, 1)
	if fill {
		pat.Fill = svg.NewFill(currentColour)
		pat.Fill.Opacity = 0.5
	} else {
		pat.Fill = svg.NewFill("none")
	}
	return pat
}

func getBaseGroup(color string, class ...string) svg.Group {
	var g svg.Group
	if color != "" {
		g.Fill = svg.NewFill(color)
		g.Stroke = svg.NewStroke(color, 1)
	}
	g.Class = class
	return g
}
