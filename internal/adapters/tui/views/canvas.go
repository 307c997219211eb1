package views

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"logicgrid/internal/adapters/tui/styles"
	"logicgrid/internal/circuit"
	"logicgrid/internal/domain"
)

// Cell is a character position on the canvas, in grid steps from the
// world origin.
type Cell struct {
	X, Y int
}

// World returns the world position of c. Cell positions are always on the
// grid, so the result needs no further snapping.
func (c Cell) World(grid float64) domain.Point {
	return domain.Pt(float64(c.X)*grid, float64(c.Y)*grid)
}

// cellLimit bounds cell coordinates so far-off geometry stays in int range.
const cellLimit = 1 << 30

// CellOf returns the cell nearest to p, clamped to ±cellLimit.
func CellOf(p domain.Point, grid float64) Cell {
	return Cell{X: toCell(p.X / grid), Y: toCell(p.Y / grid)}
}

func toCell(v float64) int {
	switch {
	case math.IsNaN(v):
		return 0
	case v > cellLimit:
		return cellLimit
	case v < -cellLimit:
		return -cellLimit
	}
	return int(math.Round(v))
}

// Canvas rasterizes a circuit onto a character grid. One character covers
// one grid step of world space.
type Canvas struct {
	Cols, Rows int
	Grid       float64
	Origin     Cell // top-left cell shown
}

// Draw layers; a higher layer hides a lower one in the same cell.
const (
	layerGrid = iota
	layerWire
	layerPending
	layerGate
	layerLamp
)

type glyph struct {
	ch    rune
	style lipgloss.Style
	layer int
}

type raster struct {
	c     Canvas
	cells [][]glyph
}

func newRaster(c Canvas) *raster {
	r := &raster{c: c, cells: make([][]glyph, c.Rows)}
	for y := range r.cells {
		row := make([]glyph, c.Cols)
		for x := range row {
			row[x] = glyph{ch: '·', style: styles.GridDot, layer: layerGrid}
		}
		r.cells[y] = row
	}
	return r
}

func (r *raster) put(at Cell, ch rune, style lipgloss.Style, layer int) {
	x, y := at.X-r.c.Origin.X, at.Y-r.c.Origin.Y
	if x < 0 || y < 0 || x >= r.c.Cols || y >= r.c.Rows {
		return
	}
	if g := &r.cells[y][x]; layer >= g.layer {
		*g = glyph{ch: ch, style: style, layer: layer}
	}
}

// line draws the cells between a and b, ends included.
func (r *raster) line(a, b Cell, style lipgloss.Style, layer int) {
	var ch rune
	switch {
	case a.Y == b.Y:
		ch = '─'
	case a.X == b.X:
		ch = '│'
	case (b.X-a.X)*(b.Y-a.Y) > 0:
		ch = '╲'
	default:
		ch = '╱'
	}

	a, b, ok := r.clip(a, b)
	if !ok {
		return
	}

	dx, dy := abs(b.X-a.X), -abs(b.Y-a.Y)
	sx, sy := sign(b.X-a.X), sign(b.Y-a.Y)
	e := dx + dy
	for p := a; ; {
		r.put(p, ch, style, layer)
		if p == b {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			p.X += sx
		}
		if e2 <= dx {
			e += dx
			p.Y += sy
		}
	}
}

// clip trims the segment a-b to the visible window grown by one cell, so
// the line walk never steps through off-screen cells. ok is false when the
// segment misses the window.
func (r *raster) clip(a, b Cell) (Cell, Cell, bool) {
	lo := Cell{X: r.c.Origin.X - 1, Y: r.c.Origin.Y - 1}
	hi := Cell{X: r.c.Origin.X + r.c.Cols, Y: r.c.Origin.Y + r.c.Rows}

	x0, y0 := float64(a.X), float64(a.Y)
	dx, dy := float64(b.X-a.X), float64(b.Y-a.Y)
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, x0 - float64(lo.X)},
		{dx, float64(hi.X) - x0},
		{-dy, y0 - float64(lo.Y)},
		{dy, float64(hi.Y) - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return a, b, false
			}
			t0 = max(t0, t)
		} else {
			if t < t0 {
				return a, b, false
			}
			t1 = min(t1, t)
		}
	}

	at := func(t float64) Cell {
		return Cell{X: int(math.Round(x0 + t*dx)), Y: int(math.Round(y0 + t*dy))}
	}
	if t0 > 0 {
		a = at(t0)
	}
	if t1 < 1 {
		b = at(t1)
	}
	return a, b, true
}

func (r *raster) polyline(pts []domain.Point, style lipgloss.Style, layer int) {
	cells := make([]Cell, len(pts))
	for i, p := range pts {
		cells[i] = CellOf(p, r.c.Grid)
	}
	for i := 0; i+1 < len(cells); i++ {
		r.line(cells[i], cells[i+1], style, layer)
	}
	for i, c := range cells {
		ch := '+'
		if i == 0 || i == len(cells)-1 {
			ch = '•'
		}
		r.put(c, ch, style, layer)
	}
}

func (r *raster) String(cursor Cell) string {
	var b strings.Builder
	for y, row := range r.cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x, g := range row {
			if x+r.c.Origin.X == cursor.X && y+r.c.Origin.Y == cursor.Y {
				ch := g.ch
				if g.layer == layerGrid {
					ch = '+'
				}
				b.WriteString(styles.Cursor.Render(string(ch)))
				continue
			}
			b.WriteString(g.style.Render(string(g.ch)))
		}
	}
	return b.String()
}

// Render draws snap with the cursor and any wire points still being
// placed. The selected entity is highlighted.
func (c Canvas) Render(snap circuit.Snapshot, cursor Cell, pending []domain.Point) string {
	r := newRaster(c)
	sel := snap.Selection

	for _, w := range snap.Wires {
		style := styles.Signal(w.Signal)
		if id, ok := sel.Wire(); ok && id == w.ID {
			style = styles.Selected
		}
		r.polyline(w.Points, style, layerWire)
	}

	if len(pending) > 0 {
		band := append(append([]domain.Point(nil), pending...), cursor.World(c.Grid))
		r.polyline(band, styles.Pending, layerPending)
	}

	for _, g := range snap.Gates {
		style := styles.GateBody
		if id, ok := sel.Gate(); ok && id == g.ID {
			style = styles.Selected
		}
		lo := CellOf(g.Body.Min, c.Grid)
		hi := CellOf(domain.Pt(g.Body.Min.X+g.Body.Size.X, g.Body.Min.Y+g.Body.Size.Y), c.Grid)
		label := []rune(g.Kind.String())
		for y := lo.Y; y <= hi.Y; y++ {
			for x := lo.X; x <= hi.X; x++ {
				ch := '▒'
				if i := x - lo.X; y == lo.Y && i < len(label) {
					ch = label[i]
				}
				r.put(Cell{X: x, Y: y}, ch, style, layerGate)
			}
		}
	}

	for _, l := range snap.Lamps {
		style := styles.Signal(l.Signal)
		if id, ok := sel.Lamp(); ok && id == l.ID {
			style = styles.Selected
		}
		ch := '○'
		if l.Signal == domain.High {
			ch = '●'
		}
		r.put(CellOf(l.Pos, c.Grid), ch, style, layerLamp)
	}

	return r.String(cursor)
}

// Follow returns the origin that keeps cursor inside the canvas, moving
// it as little as possible.
func (c Canvas) Follow(cursor Cell) Cell {
	o := c.Origin
	if cursor.X < o.X {
		o.X = cursor.X
	} else if c.Cols > 0 && cursor.X >= o.X+c.Cols {
		o.X = cursor.X - c.Cols + 1
	}
	if cursor.Y < o.Y {
		o.Y = cursor.Y
	} else if c.Rows > 0 && cursor.Y >= o.Y+c.Rows {
		o.Y = cursor.Y - c.Rows + 1
	}
	return o
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
