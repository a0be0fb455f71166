package object

import "github.com/tomz197/spacegarbage/internal/frame"

// ShipAnimator cycles the spaceship's pose on its own timer. It only
// writes World.ShipFrame; the spaceship reads it when drawing.
type ShipAnimator struct {
	poses    []frame.Frame
	ticsEach int
	pose     int
	shown    int // Tics the current pose has been shown
}

// NewShipAnimator shows each pose for ticsEach tics.
func NewShipAnimator(poses []frame.Frame, ticsEach int) *ShipAnimator {
	return &ShipAnimator{poses: poses, ticsEach: max(ticsEach, 1)}
}

// Step implements Task.
func (a *ShipAnimator) Step(w *World) (bool, error) {
	if len(a.poses) == 0 {
		return true, nil
	}
	w.ShipFrame = a.poses[a.pose]
	a.shown++
	if a.shown >= a.ticsEach {
		a.shown = 0
		a.pose = (a.pose + 1) % len(a.poses)
	}
	return false, nil
}
