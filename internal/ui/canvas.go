package ui

import (
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olivier-w/rope/internal/anim"
	"github.com/olivier-w/rope/internal/carousel"
)

// Camera sits on the +Z axis looking back at the origin.
const (
	cameraZ      = 5.0
	cameraY      = 0.25
	minCameraGap = 0.5
	cardLabelMax = 12
)

// Hull placement. Anchors are in model space and are stretched to land on
// the yacht art.
const (
	yachtY     = -0.2
	hullBaseY  = -0.3
	hullScaleX = 1.8
	hullDepth  = 1e-3

	hotspotGlyph    = '◉'
	hotspotDimGlyph = '○'
)

// hotspot marks a system on the hull.
type hotspot struct {
	anchor [3]float64
	color  string
}

func hullPoint(a [3]float64) carousel.Vec3 {
	return carousel.Vec3{X: a[0] * hullScaleX, Y: hullBaseY + a[1], Z: a[2]}
}

var yachtArt = []string{
	`            __|__`,
	`      _____/_____\______`,
	`  ___/  o  o  o  o     |___`,
	`  \_______________________/`,
	`~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~`,
}

type cell struct {
	r    rune
	fg   string
	bold bool
}

// grid is a fixed-size character canvas. Writes outside it are clipped.
type grid struct {
	w, h  int
	cells []cell
}

func newGrid(w, h int) *grid {
	g := &grid{w: w, h: h, cells: make([]cell, w*h)}
	for i := range g.cells {
		g.cells[i].r = ' '
	}
	return g
}

func (g *grid) set(col, row int, r rune, fg string, bold bool) {
	if col < 0 || row < 0 || col >= g.w || row >= g.h {
		return
	}
	g.cells[row*g.w+col] = cell{r: r, fg: fg, bold: bold}
}

// text writes s starting at col. Spaces in s are transparent when skipSpace
// is set so overlapping art shows through.
func (g *grid) text(col, row int, s, fg string, bold, skipSpace bool) {
	for i, r := range []rune(s) {
		if skipSpace && r == ' ' {
			continue
		}
		g.set(col+i, row, r, fg, bold)
	}
}

// plain returns the canvas without colour, one line per row.
func (g *grid) plain() string {
	var b strings.Builder
	for row := range g.h {
		for col := range g.w {
			b.WriteRune(g.cells[row*g.w+col].r)
		}
		if row < g.h-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// render returns the canvas with runs of equal colour styled together.
func (g *grid) render() string {
	var b strings.Builder
	var run strings.Builder
	for row := range g.h {
		cur := g.cells[row*g.w]
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if cur.fg == "" {
				b.WriteString(run.String())
			} else {
				b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(cur.fg)).Bold(cur.bold).Render(run.String()))
			}
			run.Reset()
		}
		for col := range g.w {
			c := g.cells[row*g.w+col]
			if c.fg != cur.fg || c.bold != cur.bold {
				flush()
				cur = c
			}
			run.WriteRune(c.r)
		}
		flush()
		if row < g.h-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// projector maps scene space onto grid cells with a simple perspective
// divide. Terminal cells are about twice as tall as wide, so one scene unit
// spans twice as many columns as rows.
type projector struct {
	w, h     int
	unitCols float64
	unitRows float64
}

func newProjector(w, h int) projector {
	rows := float64(h) / 3.2
	cols := rows * 2
	if limit := float64(w/2-cardLabelMax/2-2) / carousel.RingRadius; cols > limit {
		cols = math.Max(limit, 1)
		rows = cols / 2
	}
	return projector{w: w, h: h, unitCols: cols, unitRows: rows}
}

func (p projector) project(v carousel.Vec3) (col, row int) {
	d := math.Max(cameraZ-v.Z, minCameraGap)
	k := cameraZ / d
	col = p.w/2 + int(math.Round(v.X*k*p.unitCols))
	row = p.h/2 - int(math.Round((v.Y-cameraY)*k*p.unitRows))
	return col, row
}

// ringView is everything needed to draw the ring for one frame.
type ringView struct {
	width, height int
	systems       []carousel.System
	positions     []carousel.Vec3
	active        int
	visible       int
	hotspots      []hotspot
	pulse         bool // dims the hotspot markers
}

type drawable struct {
	depth float64
	draw  func(g *grid)
}

func (v ringView) grid() *grid {
	g := newGrid(v.width, v.height)
	p := newProjector(v.width, v.height)

	near := anim.ParseHex(cardHex)
	far := anim.ParseHex(cardFarHex)

	items := []drawable{{depth: 0, draw: func(g *grid) {
		col, row := p.project(carousel.Vec3{Y: yachtY})
		top := row - len(yachtArt)/2
		for i, line := range yachtArt {
			g.text(col-len([]rune(line))/2, top+i, line, yachtHex, false, true)
		}
	}}}

	glyph := hotspotGlyph
	if v.pulse {
		glyph = hotspotDimGlyph
	}
	for _, h := range v.hotspots {
		items = append(items, drawable{depth: hullDepth, draw: func(g *grid) {
			col, row := p.project(hullPoint(h.anchor))
			g.set(col, row, glyph, h.color, true)
		}})
	}

	for i, sys := range v.systems {
		if i >= v.visible || i >= len(v.positions) {
			break
		}
		pos := v.positions[i]
		if i == v.active {
			items = append(items, drawable{depth: pos.Z, draw: func(g *grid) {
				col, row := p.project(pos)
				lines := focusBox(sys)
				top := row - len(lines)/2
				for j, line := range lines {
					g.text(col-len([]rune(line))/2, top+j, line, focusHex, true, false)
				}
			}})
			continue
		}
		label := cardLabel(sys)
		fg := anim.DepthShade(near, far, pos.Z, carousel.RingRadius, -carousel.RingRadius).Hex()
		items = append(items, drawable{depth: pos.Z, draw: func(g *grid) {
			col, row := p.project(pos)
			g.text(col-len([]rune(label))/2, row, label, fg, false, false)
		}})
	}

	sort.SliceStable(items, func(a, b int) bool { return items[a].depth < items[b].depth })
	for _, it := range items {
		it.draw(g)
	}
	return g
}

func (v ringView) View() string {
	if v.width <= 0 || v.height <= 0 {
		return ""
	}
	return v.grid().render()
}

func cardLabel(sys carousel.System) string {
	label := truncate(sys.Label, cardLabelMax)
	if sys.Icon == "" {
		return label
	}
	return sys.Icon + " " + label
}

func focusBox(sys carousel.System) []string {
	head := sys.Label
	if sys.Icon != "" {
		head = sys.Icon + " " + head
	}
	detail := sys.Status
	if sys.Value != "" {
		if detail != "" {
			detail += " · "
		}
		detail += sys.Value
	}

	inner := len([]rune(head))
	if n := len([]rune(detail)); n > inner {
		inner = n
	}
	inner += 2

	pad := func(s string) string {
		return "│ " + s + strings.Repeat(" ", inner-len([]rune(s))-1) + "│"
	}
	lines := []string{"╭" + strings.Repeat("─", inner) + "╮", pad(head)}
	if detail != "" {
		lines = append(lines, pad(detail))
	}
	return append(lines, "╰"+strings.Repeat("─", inner)+"╯")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
