// Package loop runs the cooperative tic scheduler that drives every task in
// the game.
package loop

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/tomz197/spacegarbage/internal/loop/config"
	"github.com/tomz197/spacegarbage/internal/object"
)

// Scheduler steps every live task once per tic, in insertion order, then
// flushes the surface and sleeps out the rest of the tic.
type Scheduler struct {
	world    *object.World
	tasks    []object.Task
	tic      time.Duration
	logger   *log.Logger
	failFast bool
	tics     int
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithTic sets the tic duration.
func WithTic(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.tic = d
		}
	}
}

// WithLogger sets the logger task faults are reported to.
func WithLogger(l *log.Logger) Option {
	return func(s *Scheduler) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithFailFast makes a task fault stop the scheduler instead of only
// dropping the faulty task.
func WithFailFast(failFast bool) Option {
	return func(s *Scheduler) {
		s.failFast = failFast
	}
}

// NewScheduler creates a scheduler over w with no tasks.
func NewScheduler(w *object.World, opts ...Option) *Scheduler {
	s := &Scheduler{
		world:  w,
		tic:    config.TicDuration,
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add appends tasks. They run from the next tic on.
func (s *Scheduler) Add(tasks ...object.Task) {
	s.tasks = append(s.tasks, tasks...)
}

// Len returns the number of live tasks.
func (s *Scheduler) Len() int {
	return len(s.tasks)
}

// Tasks returns a copy of the live tasks in run order.
func (s *Scheduler) Tasks() []object.Task {
	return append([]object.Task(nil), s.tasks...)
}

// World returns the world the tasks step against.
func (s *Scheduler) World() *object.World {
	return s.world
}

// Tick runs one tic: every live task is stepped once, finished and faulty
// tasks are dropped, tasks spawned during the tic are appended, and the
// surface is flushed.
func (s *Scheduler) Tick() error {
	s.tics++

	kept := s.tasks[:0]
	for _, task := range s.tasks {
		done, err := s.step(task)
		if err != nil {
			if s.failFast {
				return errors.Wrapf(err, "tic %d", s.tics)
			}
			s.logger.Error("task dropped", "tic", s.tics, "task", fmt.Sprintf("%T", task), "err", fmt.Sprintf("%+v", err))
			continue
		}
		if !done {
			kept = append(kept, task)
		}
	}
	clear(s.tasks[len(kept):])
	s.tasks = append(kept, s.world.TakeSpawned()...)

	if err := s.world.Surface.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}

// step runs one task, turning a panic into an error.
func (s *Scheduler) step(task object.Task) (done bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("task panicked: %v", r)
		}
	}()
	return task.Step(s.world)
}

// Run ticks until ctx is cancelled or a tic fails. Each tic is followed by
// a sleep of the tic duration less the time the tic took; a slow tic is not
// made up for.
func (s *Scheduler) Run(ctx context.Context) error {
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
		}

		start := time.Now()
		if err := s.Tick(); err != nil {
			return err
		}

		wait := s.tic - time.Since(start)
		if wait < 0 {
			wait = 0
		}
		timer.Reset(wait)
	}
}
