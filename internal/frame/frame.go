// Package frame loads and holds the static glyph blocks used to draw entities.
package frame

import (
	"errors"
	"strings"

	"github.com/mattn/go-runewidth"
)

// ErrEmptyFrame is returned when a frame file holds no glyphs.
var ErrEmptyFrame = errors.New("frame: empty frame")

// Frame is an immutable rectangular block of glyphs.
// Spaces are transparent when drawn.
type Frame struct {
	Lines  []string
	Height int // Rows
	Width  int // Columns (display width of the widest line)
}

// Parse splits text into lines and measures its bounding box.
// A single trailing newline does not add a row; leading blank lines do.
func Parse(text string) Frame {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return Frame{}
	}

	lines := strings.Split(text, "\n")
	width := 0
	for _, line := range lines {
		if w := runewidth.StringWidth(line); w > width {
			width = w
		}
	}
	return Frame{Lines: lines, Height: len(lines), Width: width}
}

// Size returns the frame's bounding box as (rows, columns).
func (f Frame) Size() (rows, columns int) {
	return f.Height, f.Width
}

// Empty reports whether the frame has no visible glyphs.
func (f Frame) Empty() bool {
	for _, line := range f.Lines {
		if strings.TrimSpace(line) != "" {
			return false
		}
	}
	return true
}
