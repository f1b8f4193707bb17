package cartesian

import (
	"bufio"
	"io"

	"github.com/midbel/svg"
)

type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

// Chart composes axes, series geometry and the optional press overlay
// into one SVG document.
type Chart[T, U ScalerConstraint] struct {
	Title  string
	Width  float64
	Height float64

	Padding

	Left   *Axis[U]
	Right  *Axis[U]
	Top    *Axis[T]
	Bottom *Axis[T]

	// Press, when set, is read once per render pass to draw the
	// crosshair overlay on top of the series.
	Press     *PressState
	Crosshair CrosshairRenderer
}

func (c Chart[T, U]) DrawingWidth() float64 {
	return c.Width - c.Padding.Horizontal()
}

func (c Chart[T, U]) DrawingHeight() float64 {
	return c.Height - c.Padding.Vertical()
}

// Locate translates a pointer position from document space into drawing
// space, the space materialized points live in.
func (c Chart[T, U]) Locate(x, y float64) (float64, float64) {
	return x - c.Padding.Left, y - c.Padding.Top
}

func (c Chart[T, U]) Render(w io.Writer, set ...Data) {
	el := svg.NewSVG()
	el.Dim = svg.NewDim(c.Width, c.Height)
	el.OmitProlog = true

	el.Append(c.drawAxis())
	for _, s := range set {
		ar := c.getArea()
		ar.Append(s.Render())
		el.Append(ar.AsElement())
	}
	if c.Press != nil {
		ar := c.getArea()
		ar.Class = append(ar.Class, "overlay")
		ar.Append(c.Crosshair.Render(c.Press))
		el.Append(ar.AsElement())
	}

	bw := bufio.NewWriter(w)
	defer bw.Flush()
	el.Render(bw)
}

func (c Chart[T, U]) getArea() svg.Group {
	var g svg.Group
	g.Class = append(g.Class, "area")
	g.Transform = svg.Translate(c.Padding.Left, c.Padding.Top)
	return g
}

func (c Chart[T, U]) drawAxis() svg.Element {
	var g svg.Group
	g.Id = "axis"
	if c.Left != nil {
		el := c.Left.Render(c.DrawingHeight(), c.DrawingWidth(), c.Padding.Left, c.Padding.Top)
		g.Append(el)
	}
	if c.Right != nil {
		el := c.Right.Render(c.DrawingHeight(), c.DrawingWidth(), c.Width-c.Padding.Right, c.Padding.Top)
		g.Append(el)
	}
	if c.Top != nil {
		el := c.Top.Render(c.DrawingWidth(), c.DrawingHeight(), c.Padding.Left, c.Padding.Top)
		g.Append(el)
	}
	if c.Bottom != nil {
		el := c.Bottom.Render(c.DrawingWidth(), c.DrawingHeight(), c.Padding.Left, c.Height-c.Padding.Bottom)
		g.Append(el)
	}
	return g.AsElement()
}
