package loop

import (
	"context"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/spacegarbage/internal/audio"
	"github.com/tomz197/spacegarbage/internal/draw"
	"github.com/tomz197/spacegarbage/internal/frame"
	"github.com/tomz197/spacegarbage/internal/input"
	"github.com/tomz197/spacegarbage/internal/loop/config"
	"github.com/tomz197/spacegarbage/internal/object"
)

// Options tunes a new game. Zero values fall back to the defaults in
// internal/loop/config.
type Options struct {
	Stars         int
	Tic           time.Duration
	StartYear     int
	ShowObstacles bool
	FailFast      bool
	Logger        *log.Logger
	Rand          *rand.Rand
}

// NewGame draws the border and returns a scheduler loaded with the
// starting tasks: stars, garbage spawner, year driver, info line, ship
// animation, the spaceship and, optionally, the obstacle overlay.
func NewGame(surface draw.Surface, src input.Source, cue audio.Cue, frames *frame.Store, opts Options) *Scheduler {
	w := object.NewWorld(surface, src, cue, frames, opts.Rand)
	if opts.StartYear != 0 {
		w.Year = opts.StartYear
	}

	s := NewScheduler(w,
		WithTic(opts.Tic),
		WithLogger(opts.Logger),
		WithFailFast(opts.FailFast),
	)

	draw.DrawBorder(surface)

	stars := opts.Stars
	if stars <= 0 {
		stars = config.StarsCount
	}
	s.Add(newStars(w, stars)...)

	height, width := surface.Size()
	ship := w.ShipFrame
	row := float64(height-ship.Height) / 2
	column := float64(width-ship.Width) / 2

	s.Add(
		object.NewGarbageSpawner(config.GarbageSpeed),
		object.NewYearDriver(config.TicsPerYear),
		object.NewInfo(-config.InfoRowFromBottom, config.InfoColumn),
		object.NewShipAnimator(frames.Rocket[:], config.ShipPoseTics),
		object.NewSpaceship(row, column),
	)
	if opts.ShowObstacles {
		s.Add(object.NewShowObstacles())
	}

	s.logger.Info("game ready",
		"height", height,
		"width", width,
		"stars", stars,
		"year", w.Year,
		"tasks", s.Len(),
	)
	return s
}

// newStars scatters count stars strictly inside the border, each starting
// its blink after a random delay.
func newStars(w *object.World, count int) []object.Task {
	height, width := w.Surface.Size()
	if height < 3 || width < 3 {
		return nil
	}
	symbols := []rune(config.StarSymbols)

	tasks := make([]object.Task, 0, count)
	for i := 0; i < count; i++ {
		star := object.NewStar(
			1+w.Rand.Intn(height-2),
			1+w.Rand.Intn(width-2),
			symbols[w.Rand.Intn(len(symbols))],
		)
		tasks = append(tasks, object.Delay(w.Rand.Intn(config.StarMaxOffset), star))
	}
	return tasks
}

// Run builds a game and ticks it until ctx is cancelled.
func Run(ctx context.Context, surface draw.Surface, src input.Source, cue audio.Cue, frames *frame.Store, opts Options) error {
	s := NewGame(surface, src, cue, frames, opts)
	err := s.Run(ctx)
	s.logger.Info("game stopped", "tics", s.tics, "year", s.world.Year, "err", err)
	return err
}
