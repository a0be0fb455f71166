package object

import (
	"strings"

	"github.com/tomz197/spacegarbage/internal/draw"
	"github.com/tomz197/spacegarbage/internal/frame"
)

// ShowObstacles outlines every registered obstacle's collision box.
// Debug aid only.
type ShowObstacles struct {
	drawn []outline
}

type outline struct {
	row, column int
	frame       frame.Frame
}

// NewShowObstacles creates the overlay task.
func NewShowObstacles() *ShowObstacles {
	return &ShowObstacles{}
}

// Step implements Task.
func (s *ShowObstacles) Step(w *World) (bool, error) {
	for _, o := range s.drawn {
		draw.DrawFrame(w.Surface, float64(o.row), float64(o.column), o.frame, true)
	}
	s.drawn = s.drawn[:0]

	for _, o := range w.Obstacles.Obstacles() {
		b := o.Box()
		out := outline{
			row:    b.Row - 1,
			column: b.Column - 1,
			frame:  boxFrame(b.Height+2, b.Width+2),
		}
		draw.DrawFrame(w.Surface, float64(out.row), float64(out.column), out.frame, false)
		s.drawn = append(s.drawn, out)
	}
	return false, nil
}

// boxFrame builds a hollow rectangle frame of the given outer size.
func boxFrame(rows, columns int) frame.Frame {
	if rows < 2 || columns < 2 {
		return frame.Frame{}
	}
	edge := "+" + strings.Repeat("-", columns-2) + "+"
	side := "|" + strings.Repeat(" ", columns-2) + "|"

	lines := make([]string, 0, rows)
	lines = append(lines, edge)
	for i := 0; i < rows-2; i++ {
		lines = append(lines, side)
	}
	lines = append(lines, edge)
	return frame.Parse(strings.Join(lines, "\n"))
}
