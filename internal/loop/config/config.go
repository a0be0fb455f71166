// Package config centralizes all tunable game parameters.
package config

import "time"

// Scheduler timing
const (
	TicDuration = 100 * time.Millisecond // One scheduler pass
)

// Scenario pacing
const (
	TicsPerYear = 15 // Year counter advances every 1.5s at the default tic
)

// Stars
const (
	StarsCount     = 100
	StarMaxOffset  = 20 // Upper bound of a star's random initial delay, in tics
	StarDimTics    = 20
	StarNormalTics = 3
	StarBoldTics   = 5
	StarSymbols    = "+*.:"
)

// Spaceship
const (
	ShipPoseTics     = 2   // Tics each rocket pose stays on screen
	ShipSpeedLimit   = 2.0 // Cells per tic, per axis
	ShipAcceleration = 0.75
	ShipFading       = 0.8
)

// Projectiles
const (
	FireRowSpeed    = -1.0
	FireColumnSpeed = 0.0
)

// Garbage
const (
	GarbageSpeed = 0.5 // Rows per tic
)

// Info line
const (
	InfoRowFromBottom = 2
	InfoColumn        = 2
)
