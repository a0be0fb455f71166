package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/tomz197/spacegarbage/internal/audio"
	"github.com/tomz197/spacegarbage/internal/config"
	"github.com/tomz197/spacegarbage/internal/draw"
	"github.com/tomz197/spacegarbage/internal/frame"
	"github.com/tomz197/spacegarbage/internal/input"
	"github.com/tomz197/spacegarbage/internal/loop"
	loopcfg "github.com/tomz197/spacegarbage/internal/loop/config"
	"github.com/tomz197/spacegarbage/internal/scenario"
	"golang.org/x/term"
)

const (
	backendTcell = "tcell"
	backendANSI  = "ansi"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger, closeLog, err := newLogger(config.GetEnv("LOG_FILE", ""), config.GetEnv("LOG_LEVEL", "info"))
	if err != nil {
		return err
	}
	defer closeLog()

	frames, err := loadFrames(config.GetEnv("FRAMES_DIR", ""))
	if err != nil {
		return err
	}

	opts := loop.Options{
		Stars:         config.GetEnvInt("SPACE_STARS", loopcfg.StarsCount),
		Tic:           config.GetEnvDuration("SPACE_TIC", loopcfg.TicDuration),
		StartYear:     config.GetEnvInt("SPACE_START_YEAR", scenario.StartYear),
		ShowObstacles: config.GetEnvBool("SPACE_SHOW_OBSTACLES", false),
		FailFast:      config.GetEnvBool("SPACE_FAIL_FAST", false),
		Logger:        logger,
	}
	backend := config.GetEnv("SPACE_BACKEND", backendTcell)
	sound := config.GetEnv("SPACE_SOUND", audio.ModeBell)
	logger.Info("starting", "backend", backend, "sound", sound, "tic", opts.Tic, "year", opts.StartYear)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	switch backend {
	case backendTcell:
		return runTcell(ctx, cancel, logger, sound, frames, opts)
	case backendANSI:
		return runANSI(ctx, cancel, logger, sound, frames, opts)
	}
	return fmt.Errorf("unknown backend %q", backend)
}

func runTcell(ctx context.Context, cancel func(), logger *log.Logger, sound string, frames *frame.Store, opts loop.Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()
	screen.Clear()

	surface := draw.NewTcellSurface(screen)
	cue, closeCue := newCue(logger, sound, surface)
	defer closeCue()

	src := input.StartTcell(screen, cancel)
	return loop.Run(ctx, surface, src, cue, frames, opts)
}

func runANSI(ctx context.Context, cancel func(), logger *log.Logger, sound string, frames *frame.Store, opts loop.Options) error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	surface, err := draw.NewTerminal(os.Stdout, draw.DefaultTermSizeFunc)
	if err != nil {
		return err
	}
	defer func() {
		_ = surface.Close()
	}()

	cue, closeCue := newCue(logger, sound, surface)
	defer closeCue()

	src := input.StartStream(bufio.NewReader(os.Stdin), cancel)
	return loop.Run(ctx, surface, src, cue, frames, opts)
}

// newCue builds the sound cue. Setup failures degrade to the bell.
func newCue(logger *log.Logger, mode string, surface draw.Surface) (audio.Cue, func()) {
	cue, closeCue, err := audio.New(mode, surface)
	if err != nil {
		logger.Warn("sound unavailable, using bell", "mode", mode, "err", err)
	}
	return cue, closeCue
}

// newLogger writes to path, or nowhere when path is empty: the terminal
// belongs to the game.
func newLogger(path, level string) (*log.Logger, func(), error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	var w io.Writer = io.Discard
	closeLog := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeLog = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          "spacegarbage",
		ReportTimestamp: true,
	})
	return logger, closeLog, nil
}

func loadFrames(dir string) (*frame.Store, error) {
	if dir == "" {
		return frame.Default()
	}
	return frame.Load(os.DirFS(dir))
}
