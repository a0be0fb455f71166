package object

import "github.com/tomz197/spacegarbage/internal/draw"

// GameOver keeps the game over banner centered on screen forever.
type GameOver struct{}

// NewGameOver creates the banner task.
func NewGameOver() *GameOver {
	return &GameOver{}
}

// Step implements Task.
func (g *GameOver) Step(w *World) (bool, error) {
	banner := w.Frames.GameOver
	height, width := w.Surface.Size()
	row := float64(height-banner.Height) / 2
	column := float64(width-banner.Width) / 2
	draw.DrawFrame(w.Surface, row, column, banner, false)
	return false, nil
}
