package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/midbel/cartesian"
	"github.com/midbel/cartesian/source"
)

func main() {
	var (
		xcol = flag.Int("xcol", 0, "index of x column")
		ycol = flag.Int("ycol", 1, "index of y column")
	)
	flag.Parse()

	var srcs []source.DataSource
	for _, f := range flag.Args() {
		srcs = append(srcs, source.LocalFile{
			Path: f,
			X:    *xcol,
			Y:    source.SelectSingle(*ycol),
		})
	}
	if len(srcs) == 0 {
		fmt.Fprintln(os.Stderr, "no data file given")
		os.Exit(1)
	}
	series, err := source.LoadNumbers(srcs...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	p := tea.NewProgram(newModel(series), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

var (
	plotStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	axisStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	idleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

var marks = []rune{'•', '▪', '◆', '○'}

// model plots the loaded series into a rune grid sized to the terminal.
// Mouse motion feeds the tracker, which publishes the nearest records
// into the press state read back by View.
type model struct {
	series []cartesian.Serie[float64, float64]
	state  *cartesian.PressState
	track  *cartesian.Tracker[float64, float64]

	width  int
	height int
}

func newModel(series []cartesian.Serie[float64, float64]) *model {
	return &model{
		series: series,
		state:  cartesian.NewPressState(),
	}
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.rescale()
	case tea.MouseMsg:
		switch msg.Action {
		case tea.MouseActionMotion, tea.MouseActionPress:
			if m.track != nil {
				m.track.Move(float64(msg.X-plotLeft), float64(msg.Y))
			}
		case tea.MouseActionRelease:
			if m.track != nil {
				m.track.Release()
			}
		}
	}
	return m, nil
}

const (
	plotLeft   = 1 // y axis column
	statusRows = 2 // x axis and status line
)

// rescale rebinds the series scalers onto the current grid and
// rematerializes every tracked serie.
func (m *model) rescale() {
	w, h := m.plotSize()
	if w <= 0 || h <= 0 {
		return
	}
	var (
		xdom, ydom = source.NumberExtent(m.series...)
		xscale     = cartesian.NumberScaler(xdom, cartesian.NewRange(0, float64(w-1)))
		yscale     = cartesian.NumberScaler(flip(ydom), cartesian.NewRange(0, float64(h-1)))
	)
	for i := range m.series {
		m.series[i].X = xscale
		m.series[i].Y = yscale
	}
	m.track = cartesian.NewTracker(m.state, m.series...)
}

func (m *model) plotSize() (int, int) {
	return m.width - plotLeft, m.height - statusRows
}

func (m *model) View() string {
	w, h := m.plotSize()
	if w <= 0 || h <= 0 || m.track == nil {
		return "terminal too small"
	}
	grid := make([][]rune, h)
	for i := range grid {
		grid[i] = make([]rune, w)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	snap := m.state.Snapshot()
	if snap.Active && len(snap.Values) > 0 {
		col := clamp(int(math.Round(snap.Values[0].X)), 0, w-1)
		for row := 0; row < h; row++ {
			grid[row][col] = '┊'
		}
	}
	for i, s := range m.series {
		plot(grid, s.Materialize(), marks[i%len(marks)])
	}
	if snap.Active {
		for _, v := range snap.Values {
			var (
				col = clamp(int(math.Round(v.X)), 0, w-1)
				row = clamp(int(math.Round(v.Y)), 0, h-1)
			)
			grid[row][col] = '█'
		}
	}

	var b strings.Builder
	for _, row := range grid {
		b.WriteString(axisStyle.Render("│"))
		b.WriteString(plotStyle.Render(string(row)))
		b.WriteByte('\n')
	}
	b.WriteString(axisStyle.Render("└" + strings.Repeat("─", w)))
	b.WriteByte('\n')
	b.WriteString(m.status(snap))
	return b.String()
}

func (m *model) status(snap cartesian.Snapshot) string {
	if len(snap.Values) == 0 {
		return idleStyle.Render("move the mouse over the chart, q to quit")
	}
	var parts []string
	for _, v := range snap.Values {
		parts = append(parts, fmt.Sprintf("%s: %s, %.2f", v.Serie, v.Label, v.Value))
	}
	line := strings.Join(parts, " | ")
	if snap.Active {
		return activeStyle.Render(line)
	}
	return idleStyle.Render(line)
}

// plot marks every point cell and joins consecutive points column by
// column so the serie reads as a line.
func plot(grid [][]rune, pts []cartesian.ScreenPoint, mark rune) {
	var (
		h    = len(grid)
		w    = len(grid[0])
		prev cartesian.ScreenPoint
		ok   bool
	)
	for _, pt := range pts {
		if pt.Missing() {
			ok = false
			continue
		}
		if ok {
			joinColumns(grid, prev, pt)
		}
		var (
			col = clamp(int(math.Round(pt.X)), 0, w-1)
			row = clamp(int(math.Round(pt.Y)), 0, h-1)
		)
		grid[row][col] = mark
		prev, ok = pt, true
	}
}

func joinColumns(grid [][]rune, from, to cartesian.ScreenPoint) {
	var (
		h  = len(grid)
		w  = len(grid[0])
		c1 = clamp(int(math.Round(from.X)), 0, w-1)
		c2 = clamp(int(math.Round(to.X)), 0, w-1)
	)
	if c2 <= c1+1 {
		return
	}
	for col := c1 + 1; col < c2; col++ {
		frac := float64(col-c1) / float64(c2-c1)
		y := from.Y + (to.Y-from.Y)*frac
		row := clamp(int(math.Round(y)), 0, h-1)
		if grid[row][col] == ' ' {
			grid[row][col] = '·'
		}
	}
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func flip(dom cartesian.Domain[float64]) cartesian.Domain[float64] {
	vs := dom.Values(1)
	return cartesian.NumberDomain(vs[len(vs)-1], vs[0])
}
