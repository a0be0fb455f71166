package draw

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// maxChunkSize is the maximum bytes handed to the underlying writer at once.
const maxChunkSize = 1400

// SGR sequences for cell attributes.
const (
	sgrReset = "\033[0m"
	sgrBold  = "\033[1m"
	sgrDim   = "\033[2m"
)

// ChunkWriter accumulates terminal output and writes it in chunks on Flush.
type ChunkWriter struct {
	buf    strings.Builder
	bufw   *bufio.Writer // Buffers writes to underlying writer for fewer syscalls
	numBuf [20]byte      // Scratch buffer for allocation-free integer formatting
}

// NewChunkWriter creates a ChunkWriter that writes to w.
func NewChunkWriter(w io.Writer) *ChunkWriter {
	return &ChunkWriter{
		bufw: bufio.NewWriterSize(w, 8192),
	}
}

// MoveCursor appends an ANSI cursor position sequence. col and row are 1-based.
func (cw *ChunkWriter) MoveCursor(col, row int) {
	cw.buf.WriteString("\033[")
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(row), 10))
	cw.buf.WriteByte(';')
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(col), 10))
	cw.buf.WriteByte('H')
}

// WriteString appends a string to the buffer.
func (cw *ChunkWriter) WriteString(s string) {
	cw.buf.WriteString(s)
}

// WriteRune appends a rune to the buffer.
func (cw *ChunkWriter) WriteRune(r rune) {
	cw.buf.WriteRune(r)
}

// Pending reports the number of buffered bytes.
func (cw *ChunkWriter) Pending() int {
	return cw.buf.Len()
}

// Flush writes the accumulated buffer to the underlying writer in chunks,
// then resets the buffer.
func (cw *ChunkWriter) Flush() error {
	data := cw.buf.String()
	cw.buf.Reset()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := cw.bufw.WriteString(chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return cw.bufw.Flush()
}

// TermSizeFunc is a function that returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// Terminal is a Surface that drives a raw-mode terminal with ANSI sequences.
// Writes land in a back buffer; Flush emits only the cells that changed.
type Terminal struct {
	out   *ChunkWriter
	front *Grid // What the terminal currently shows
	back  *Grid // Pending frame
}

// NewTerminal sizes the surface from sizeFunc, clears the screen and hides
// the cursor. Call Close to restore the cursor.
func NewTerminal(w io.Writer, sizeFunc TermSizeFunc) (*Terminal, error) {
	if sizeFunc == nil {
		sizeFunc = DefaultTermSizeFunc
	}
	width, height, err := sizeFunc()
	if err != nil {
		return nil, fmt.Errorf("terminal size: %w", err)
	}

	t := &Terminal{
		out:   NewChunkWriter(w),
		front: NewGrid(height, width),
		back:  NewGrid(height, width),
	}
	t.out.WriteString("\033[?25l\033[H\033[2J")
	return t, t.out.Flush()
}

// Size implements Surface.
func (t *Terminal) Size() (int, int) {
	return t.back.Size()
}

// SetCell implements Surface.
func (t *Terminal) SetCell(row, col int, r rune, attr Attr) {
	t.back.SetCell(row, col, r, attr)
}

// Beep implements Surface by queueing a BEL for the next flush.
func (t *Terminal) Beep() {
	t.out.WriteString("\a")
}

// Flush implements Surface.
func (t *Terminal) Flush() error {
	height, width := t.back.Size()
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			cell := t.back.Cell(row, col)
			if cell == t.front.Cell(row, col) {
				continue
			}
			t.out.MoveCursor(col+1, row+1)
			switch cell.Attr {
			case AttrBold:
				t.out.WriteString(sgrBold)
			case AttrDim:
				t.out.WriteString(sgrDim)
			}
			t.out.WriteRune(cell.Rune)
			if cell.Attr != AttrNormal {
				t.out.WriteString(sgrReset)
			}
		}
	}
	t.front.copyFrom(t.back)
	return t.out.Flush()
}

// Close shows the cursor and clears the screen.
func (t *Terminal) Close() error {
	t.out.WriteString(sgrReset + "\033[H\033[2J\033[?25h")
	return t.out.Flush()
}
