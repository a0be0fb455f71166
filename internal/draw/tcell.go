package draw

import "github.com/gdamore/tcell/v2"

// TcellSurface adapts a tcell.Screen to Surface.
type TcellSurface struct {
	screen tcell.Screen
	styles [3]tcell.Style
}

// NewTcellSurface wraps an initialized screen.
func NewTcellSurface(screen tcell.Screen) *TcellSurface {
	return &TcellSurface{
		screen: screen,
		styles: [3]tcell.Style{
			AttrNormal: tcell.StyleDefault,
			AttrDim:    tcell.StyleDefault.Dim(true),
			AttrBold:   tcell.StyleDefault.Bold(true),
		},
	}
}

// Size implements Surface.
func (s *TcellSurface) Size() (int, int) {
	width, height := s.screen.Size()
	return height, width
}

// SetCell implements Surface.
func (s *TcellSurface) SetCell(row, col int, r rune, attr Attr) {
	if attr < AttrNormal || attr > AttrBold {
		attr = AttrNormal
	}
	s.screen.SetContent(col, row, r, nil, s.styles[attr])
}

// Flush implements Surface.
func (s *TcellSurface) Flush() error {
	s.screen.Show()
	return nil
}

// Beep implements Surface.
func (s *TcellSurface) Beep() {
	_ = s.screen.Beep()
}
