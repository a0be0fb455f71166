package object

import (
	"github.com/tomz197/spacegarbage/internal/draw"
	"github.com/tomz197/spacegarbage/internal/frame"
)

// Garbage is a piece of space junk falling down the screen. Its obstacle is
// registered for exactly as long as the task is alive.
type Garbage struct {
	Speed    float64 // Rows per tic
	frame    frame.Frame
	obstacle *Obstacle
	started  bool
	drawn    bool
}

// LaunchGarbage registers a new obstacle at the top row and queues the task
// that flies it. The column is clamped so the whole frame stays on screen.
func LaunchGarbage(w *World, column int, f frame.Frame, speed float64) *Garbage {
	_, width := w.Surface.Size()
	column = min(column, width-f.Width)
	column = max(column, 0)

	g := &Garbage{
		Speed:    speed,
		frame:    f,
		obstacle: &Obstacle{Row: 0, Column: column, Height: f.Height, Width: f.Width},
	}
	w.Obstacles.Add(g.obstacle)
	w.Spawn(g)
	return g
}

// Obstacle returns the collision rectangle owned by g.
func (g *Garbage) Obstacle() *Obstacle {
	return g.obstacle
}

// Step implements Task.
func (g *Garbage) Step(w *World) (bool, error) {
	o := g.obstacle
	if g.drawn {
		draw.DrawFrame(w.Surface, o.Row, float64(o.Column), g.frame, true)
		g.drawn = false
	}

	if w.Obstacles.TakeHit(o) {
		w.Obstacles.Remove(o)
		w.Spawn(NewExplosion(o.Row+float64(o.Height)/2, float64(o.Column)+float64(o.Width)/2))
		return true, nil
	}

	if g.started {
		o.Row += g.Speed
	}
	g.started = true

	height, _ := w.Surface.Size()
	if o.Row >= float64(height) {
		w.Obstacles.Remove(o)
		return true, nil
	}

	draw.DrawFrame(w.Surface, o.Row, float64(o.Column), g.frame, false)
	g.drawn = true
	return false, nil
}
