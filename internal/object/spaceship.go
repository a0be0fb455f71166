package object

import (
	"fmt"

	"github.com/tomz197/spacegarbage/internal/draw"
	"github.com/tomz197/spacegarbage/internal/frame"
	cfg "github.com/tomz197/spacegarbage/internal/loop/config"
	"github.com/tomz197/spacegarbage/internal/physics"
	"github.com/tomz197/spacegarbage/internal/scenario"
)

// Spaceship is the player-controlled rocket.
type Spaceship struct {
	Row, Column float64 // Top-left corner
	Speed       physics.Velocity
	Params      physics.Params

	drawn bool
	frame frame.Frame // Pose drawn on the previous tic
}

// NewSpaceship creates a spaceship with its top-left corner at (row, column).
func NewSpaceship(row, column float64) *Spaceship {
	return &Spaceship{
		Row:    row,
		Column: column,
		Params: physics.Params{
			Acceleration: cfg.ShipAcceleration,
			Limit:        cfg.ShipSpeedLimit,
			Fading:       cfg.ShipFading,
		},
	}
}

// Box returns the cells covered by f drawn at the ship's position.
func (s *Spaceship) Box(f frame.Frame) physics.Box {
	return physics.Box{Row: draw.Round(s.Row), Column: draw.Round(s.Column), Height: f.Height, Width: f.Width}
}

// Step implements Task. Resuming erases the previous pose and checks for a
// crash; then controls are read, the ship moves and is drawn again.
func (s *Spaceship) Step(w *World) (bool, error) {
	if s.drawn {
		draw.DrawFrame(w.Surface, s.Row, s.Column, s.frame, true)
		s.drawn = false

		if w.Obstacles.Collides(s.Box(s.frame)) {
			w.Spawn(NewGameOver())
			return true, nil
		}
	}

	controls := w.Input.Poll()
	speed, err := physics.UpdateSpeed(s.Speed, controls.Rows, controls.Columns, s.Params)
	if err != nil {
		return true, fmt.Errorf("spaceship: %w", err)
	}
	s.Speed = speed

	pose := w.ShipFrame
	s.move(w.Surface, pose)

	if controls.Fire && w.Year >= scenario.WeaponYear {
		w.Spawn(NewFire(s.Row, s.Column+float64(pose.Width/2)))
	}

	draw.DrawFrame(w.Surface, s.Row, s.Column, pose, false)
	s.drawn = true
	s.frame = pose
	return false, nil
}

// move applies the current speed. A move that would push any part of the
// ship onto or past the border is discarded whole.
func (s *Spaceship) move(surface draw.Surface, pose frame.Frame) {
	height, width := surface.Size()
	row, column := s.Row+s.Speed.Rows, s.Column+s.Speed.Columns
	box := physics.Box{Row: draw.Round(row), Column: draw.Round(column), Height: pose.Height, Width: pose.Width}
	if box.Inside(1, 1, height-2, width-2) {
		s.Row, s.Column = row, column
	}
}
