// Package physics provides spaceship speed updates and box collision tests.
package physics

import (
	"errors"
	"math"
)

// ErrDirection is returned for a direction intent outside {-1, 0, 1}.
var ErrDirection = errors.New("physics: direction must be -1, 0 or 1")

// Velocity is a per-axis speed in cells per tic.
type Velocity struct {
	Rows    float64
	Columns float64
}

// Params tunes UpdateSpeed.
type Params struct {
	Acceleration float64 // Added per tic toward the intent
	Limit        float64 // Maximum magnitude per axis
	Fading       float64 // Multiplier applied when the axis has no intent (0..1)
}

// DefaultParams matches the spaceship's handling.
var DefaultParams = Params{
	Acceleration: 0.75,
	Limit:        2,
	Fading:       0.8,
}

// stopThreshold snaps near-zero speeds to a full stop.
const stopThreshold = 0.1

// UpdateSpeed returns the next velocity for the given direction intents.
// An axis with an intent accelerates toward it; an axis without one keeps
// its momentum but fades toward zero.
func UpdateSpeed(v Velocity, rows, columns int, p Params) (Velocity, error) {
	if !validDirection(rows) || !validDirection(columns) {
		return v, ErrDirection
	}
	limit := math.Abs(p.Limit)
	fading := math.Min(math.Max(p.Fading, 0), 1)

	return Velocity{
		Rows:    axisSpeed(v.Rows, rows, p.Acceleration, limit, fading),
		Columns: axisSpeed(v.Columns, columns, p.Acceleration, limit, fading),
	}, nil
}

func axisSpeed(speed float64, direction int, accel, limit, fading float64) float64 {
	if direction == 0 {
		speed *= fading
	} else {
		speed += accel * float64(direction)
	}
	speed = math.Max(-limit, math.Min(limit, speed))
	if math.Abs(speed) < stopThreshold {
		return 0
	}
	return speed
}

func validDirection(d int) bool {
	return d >= -1 && d <= 1
}
