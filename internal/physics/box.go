package physics

// Box is an axis-aligned rectangle of cells. It covers rows
// [Row, Row+Height-1] and columns [Column, Column+Width-1].
type Box struct {
	Row, Column   int
	Height, Width int
}

// Point is a 1x1 box.
func Point(row, column int) Box {
	return Box{Row: row, Column: column, Height: 1, Width: 1}
}

// Bottom is the last covered row.
func (b Box) Bottom() int {
	return b.Row + b.Height - 1
}

// Right is the last covered column.
func (b Box) Right() int {
	return b.Column + b.Width - 1
}

// Contains reports whether the cell (row, column) lies inside b.
func (b Box) Contains(row, column int) bool {
	return row >= b.Row && row <= b.Bottom() && column >= b.Column && column <= b.Right()
}

// Overlaps reports whether b and o share at least one cell.
// Boxes with no area never overlap anything.
func (b Box) Overlaps(o Box) bool {
	if b.Height <= 0 || b.Width <= 0 || o.Height <= 0 || o.Width <= 0 {
		return false
	}
	return b.Row <= o.Bottom() && o.Row <= b.Bottom() &&
		b.Column <= o.Right() && o.Column <= b.Right()
}

// Inside reports whether b lies entirely within the rows [top, bottom] and
// columns [left, right].
func (b Box) Inside(top, left, bottom, right int) bool {
	return b.Row >= top && b.Column >= left && b.Bottom() <= bottom && b.Right() <= right
}
