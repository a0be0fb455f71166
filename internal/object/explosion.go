package object

import (
	"github.com/tomz197/spacegarbage/internal/draw"
)

// Explosion plays the explosion frames once around a center point.
type Explosion struct {
	CenterRow, CenterColumn float64

	frame int
	drawn bool
}

// NewExplosion creates an explosion centered on (row, column).
func NewExplosion(row, column float64) *Explosion {
	return &Explosion{CenterRow: row, CenterColumn: column}
}

// Step implements Task.
func (e *Explosion) Step(w *World) (bool, error) {
	frames := w.Frames.Explosion
	if len(frames) == 0 {
		return true, nil
	}
	row := e.CenterRow - float64(frames[0].Height)/2
	column := e.CenterColumn - float64(frames[0].Width)/2

	if e.drawn {
		draw.DrawFrame(w.Surface, row, column, frames[e.frame], true)
		e.drawn = false
		e.frame++
	} else {
		w.Cue.Play()
	}

	if e.frame >= len(frames) {
		return true, nil
	}
	draw.DrawFrame(w.Surface, row, column, frames[e.frame], false)
	e.drawn = true
	return false, nil
}
