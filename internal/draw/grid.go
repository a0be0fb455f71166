package draw

import "strings"

// Cell is a single glyph with its attribute.
type Cell struct {
	Rune rune
	Attr Attr
}

// Grid is an in-memory Surface. It backs the ANSI terminal and is used
// directly wherever no real terminal is attached.
type Grid struct {
	height  int
	width   int
	cells   []Cell // Flat slice: [row * width + col]
	flushes int
	beeps   int
}

// NewGrid creates a blank grid.
func NewGrid(height, width int) *Grid {
	if height < 0 {
		height = 0
	}
	if width < 0 {
		width = 0
	}
	g := &Grid{
		height: height,
		width:  width,
		cells:  make([]Cell, height*width),
	}
	g.Clear()
	return g
}

// Size implements Surface.
func (g *Grid) Size() (int, int) {
	return g.height, g.width
}

// SetCell implements Surface.
func (g *Grid) SetCell(row, col int, r rune, attr Attr) {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		return
	}
	g.cells[row*g.width+col] = Cell{Rune: r, Attr: attr}
}

// Flush implements Surface. It only counts calls.
func (g *Grid) Flush() error {
	g.flushes++
	return nil
}

// Beep implements Surface. It only counts calls.
func (g *Grid) Beep() {
	g.beeps++
}

// Clear blanks every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Cell{Rune: Blank}
	}
}

// Cell returns the cell at (row, col); out-of-range cells read as blank.
func (g *Grid) Cell(row, col int) Cell {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		return Cell{Rune: Blank}
	}
	return g.cells[row*g.width+col]
}

// Rune returns the glyph at (row, col).
func (g *Grid) Rune(row, col int) rune {
	return g.Cell(row, col).Rune
}

// Row returns one row as a string.
func (g *Grid) Row(row int) string {
	var b strings.Builder
	for col := 0; col < g.width; col++ {
		b.WriteRune(g.Rune(row, col))
	}
	return b.String()
}

// String renders the grid, one line per row.
func (g *Grid) String() string {
	rows := make([]string, g.height)
	for r := range rows {
		rows[r] = g.Row(r)
	}
	return strings.Join(rows, "\n")
}

// Flushes returns how many times Flush was called.
func (g *Grid) Flushes() int {
	return g.flushes
}

// Beeps returns how many times Beep was called.
func (g *Grid) Beeps() int {
	return g.beeps
}

// copyFrom overwrites g with src. Both grids must share dimensions.
func (g *Grid) copyFrom(src *Grid) {
	copy(g.cells, src.cells)
}
