package object

import (
	"github.com/tomz197/spacegarbage/internal/scenario"
)

// GarbageSpawner fills the orbit with garbage at the pace the current year
// dictates.
type GarbageSpawner struct {
	speed float64
	wait  int // Tics left before the next spawn attempt
}

// NewGarbageSpawner creates a spawner whose garbage falls at speed rows per tic.
func NewGarbageSpawner(speed float64) *GarbageSpawner {
	return &GarbageSpawner{speed: speed}
}

// Step implements Task. The spawner never finishes.
func (s *GarbageSpawner) Step(w *World) (bool, error) {
	if s.wait > 0 {
		s.wait--
		return false, nil
	}

	delay := scenario.GarbageDelayTics(w.Year)
	if delay <= 0 || len(w.Frames.Garbage) == 0 {
		return false, nil
	}

	f := w.Frames.Garbage[w.Rand.Intn(len(w.Frames.Garbage))]
	LaunchGarbage(w, s.column(w, f.Width), f, s.speed)
	s.wait = delay - 1
	return false, nil
}

// column picks a random column that keeps the frame clear of the border.
func (s *GarbageSpawner) column(w *World, frameWidth int) int {
	_, width := w.Surface.Size()
	span := width - 1 - frameWidth
	if span <= 0 {
		return 0
	}
	return 1 + w.Rand.Intn(span)
}
