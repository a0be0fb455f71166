// Package scenario maps simulated years to narrative phrases and garbage
// spawn intervals.
package scenario

import "fmt"

const (
	// StartYear is the first simulated year and the floor of phrase lookups.
	StartYear = 1957
	// WeaponYear is the year the plasma gun becomes available.
	WeaponYear = 2020
)

var phrases = map[int]string{
	1957: "First Sputnik",
	1961: "Gagarin flew!",
	1969: "Armstrong got on the moon!",
	1971: "First orbital space station Salute-1",
	1981: "Flight of the Shuttle Columbia",
	1998: "ISS start building",
	2011: "Messenger launch to Mercury",
	2020: "Take the plasma gun! Shoot the garbage!",
}

// Phrase returns the phrase recorded for exactly this year.
func Phrase(year int) (string, bool) {
	p, ok := phrases[year]
	return p, ok
}

// Info returns the text shown for year: its own phrase, else the phrase of
// the nearest prior year back to StartYear, else just the year label.
func Info(year int) string {
	for y := year; y >= StartYear; y-- {
		if p, ok := Phrase(y); ok {
			return fmt.Sprintf("Year %d: %s", year, p)
		}
	}
	return fmt.Sprintf("Year %d", year)
}

// delayStep is one row of the spawn table: years below Before use Tics.
type delayStep struct {
	Before int
	Tics   int
}

var garbageDelays = []delayStep{
	{Before: 1961, Tics: 0},
	{Before: 1969, Tics: 20},
	{Before: 1981, Tics: 14},
	{Before: 1995, Tics: 10},
	{Before: 2010, Tics: 8},
	{Before: 2020, Tics: 6},
}

// lateDelay applies from 2020 onward.
const lateDelay = 2

// GarbageDelayTics returns how many tics to wait between garbage spawns in
// the given year. Zero means no garbage is spawned that year.
func GarbageDelayTics(year int) int {
	for _, step := range garbageDelays {
		if year < step.Before {
			return step.Tics
		}
	}
	return lateDelay
}
