// Package draw provides the render surface contract and glyph drawing helpers.
package draw

import (
	"math"

	"github.com/mattn/go-runewidth"
	"github.com/tomz197/spacegarbage/internal/frame"
)

// Attr is a monochrome cell attribute.
type Attr int

const (
	AttrNormal Attr = iota
	AttrDim
	AttrBold
)

// Blank is the glyph written by negative draws.
const Blank = ' '

// Surface is a fixed-size character grid with its origin at the top-left.
// Writes are buffered until Flush.
type Surface interface {
	// Size returns the grid dimensions as (rows, columns).
	Size() (height, width int)
	// SetCell writes one glyph. Out-of-range cells are ignored.
	SetCell(row, col int, r rune, attr Attr)
	// Flush makes pending writes visible.
	Flush() error
	// Beep issues an audible cue on the surface's host.
	Beep()
}

// Round maps a fractional coordinate to its cell.
func Round(v float64) int {
	return int(math.Round(v))
}

// writable reports whether (row, col) may be written. The bottom-right cell
// is never written: terminals scroll when the cursor lands there.
func writable(row, col, height, width int) bool {
	if row < 0 || row >= height || col < 0 || col >= width {
		return false
	}
	return !(row == height-1 && col == width-1)
}

// DrawFrame draws f with its top-left corner at (row, col). Spaces in the
// frame are transparent. With negative set, every cell the frame would have
// drawn is blanked instead.
func DrawFrame(s Surface, row, col float64, f frame.Frame, negative bool) {
	height, width := s.Size()
	startRow, startCol := Round(row), Round(col)

	for i, line := range f.Lines {
		r := startRow + i
		if r < 0 {
			continue
		}
		if r >= height {
			break
		}

		c := startCol
		for _, ch := range line {
			if c >= width {
				break
			}
			if ch != ' ' && writable(r, c, height, width) {
				glyph := ch
				if negative {
					glyph = Blank
				}
				s.SetCell(r, c, glyph, AttrNormal)
			}
			c += runewidth.RuneWidth(ch)
		}
	}
}

// DrawText writes text on a single row, spaces included.
func DrawText(s Surface, row, col int, text string, attr Attr) {
	height, width := s.Size()
	c := col
	for _, ch := range text {
		if c >= width {
			break
		}
		if writable(row, c, height, width) {
			s.SetCell(row, c, ch, attr)
		}
		c += runewidth.RuneWidth(ch)
	}
}

// EraseText blanks the cells DrawText would have written for text.
func EraseText(s Surface, row, col int, text string) {
	DrawText(s, row, col, blankOf(text), AttrNormal)
}

func blankOf(text string) string {
	n := runewidth.StringWidth(text)
	b := make([]rune, n)
	for i := range b {
		b[i] = Blank
	}
	return string(b)
}

// DrawBorder outlines the whole surface. The bottom-right corner is skipped.
func DrawBorder(s Surface) {
	height, width := s.Size()
	if height < 2 || width < 2 {
		return
	}
	for c := 1; c < width-1; c++ {
		s.SetCell(0, c, '─', AttrNormal)
		s.SetCell(height-1, c, '─', AttrNormal)
	}
	for r := 1; r < height-1; r++ {
		s.SetCell(r, 0, '│', AttrNormal)
		s.SetCell(r, width-1, '│', AttrNormal)
	}
	s.SetCell(0, 0, '┌', AttrNormal)
	s.SetCell(0, width-1, '┐', AttrNormal)
	s.SetCell(height-1, 0, '└', AttrNormal)
}
