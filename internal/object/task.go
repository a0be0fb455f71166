// Package object implements the cooperative tasks that animate the game and
// the shared world state they step against.
package object

import (
	"math/rand"

	"github.com/tomz197/spacegarbage/internal/audio"
	"github.com/tomz197/spacegarbage/internal/draw"
	"github.com/tomz197/spacegarbage/internal/frame"
	"github.com/tomz197/spacegarbage/internal/input"
	"github.com/tomz197/spacegarbage/internal/scenario"
)

// Task is a resumable unit of per-entity behavior.
type Task interface {
	// Step runs the task from its last suspension point to the next one.
	// Returns true once the task has finished; it is never stepped again.
	Step(w *World) (done bool, err error)
}

// TaskFunc adapts a plain function to Task.
type TaskFunc func(w *World) (bool, error)

// Step implements Task.
func (f TaskFunc) Step(w *World) (bool, error) {
	return f(w)
}

// World is the state shared by every task. It is only touched from the
// scheduler's goroutine, between suspension points.
type World struct {
	Surface   draw.Surface
	Input     input.Source
	Cue       audio.Cue
	Frames    *frame.Store
	Obstacles *Registry
	Rand      *rand.Rand
	Year      int
	ShipFrame frame.Frame // Written by ShipAnimator, read by Spaceship

	toSpawn []Task // Tasks to add after the current tic
}

// NewWorld creates a world at the first scenario year.
func NewWorld(surface draw.Surface, src input.Source, cue audio.Cue, frames *frame.Store, rng *rand.Rand) *World {
	if cue == nil {
		cue = audio.Silent{}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &World{
		Surface:   surface,
		Input:     src,
		Cue:       cue,
		Frames:    frames,
		Obstacles: NewRegistry(),
		Rand:      rng,
		Year:      scenario.StartYear,
		ShipFrame: frames.Rocket[0],
	}
}

// Spawn queues a task. It becomes eligible on the next tic.
func (w *World) Spawn(t Task) {
	w.toSpawn = append(w.toSpawn, t)
}

// TakeSpawned returns the queued tasks and clears the queue.
func (w *World) TakeSpawned() []Task {
	spawned := w.toSpawn
	w.toSpawn = nil
	return spawned
}

// delayed waits a number of tics before handing control to its task.
type delayed struct {
	left int
	task Task
}

// Delay returns a task that sleeps for tics and then behaves like t.
func Delay(tics int, t Task) Task {
	return &delayed{left: tics, task: t}
}

// Step implements Task.
func (d *delayed) Step(w *World) (bool, error) {
	if d.left > 0 {
		d.left--
		return false, nil
	}
	return d.task.Step(w)
}
