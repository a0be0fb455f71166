package frame

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed frames/*.txt
var embedded embed.FS

// File names expected inside a frame directory.
var (
	rocketFiles    = []string{"rocket_frame_1.txt", "rocket_frame_2.txt"}
	garbageFiles   = []string{"duck.txt", "hubble.txt", "lamp.txt", "trash_large.txt", "trash_small.txt", "trash_xl.txt"}
	explosionFiles = []string{"explosion_1.txt", "explosion_2.txt", "explosion_3.txt", "explosion_4.txt"}
	gameOverFile   = "game_over.txt"
)

// Store holds every frame the game draws. It is loaded once at startup and
// shared read-only by all tasks.
type Store struct {
	Rocket    [2]Frame
	Garbage   []Frame
	Explosion []Frame
	GameOver  Frame
}

// Default loads the frames compiled into the binary.
func Default() (*Store, error) {
	sub, err := fs.Sub(embedded, "frames")
	if err != nil {
		return nil, err
	}
	return Load(sub)
}

// Load reads all frames from fsys. Every file must exist and hold glyphs.
func Load(fsys fs.FS) (*Store, error) {
	rockets, err := loadAll(fsys, rocketFiles)
	if err != nil {
		return nil, err
	}
	garbage, err := loadAll(fsys, garbageFiles)
	if err != nil {
		return nil, err
	}
	explosion, err := loadAll(fsys, explosionFiles)
	if err != nil {
		return nil, err
	}
	gameOver, err := load(fsys, gameOverFile)
	if err != nil {
		return nil, err
	}

	return &Store{
		Rocket:    [2]Frame{rockets[0], rockets[1]},
		Garbage:   garbage,
		Explosion: explosion,
		GameOver:  gameOver,
	}, nil
}

func loadAll(fsys fs.FS, names []string) ([]Frame, error) {
	frames := make([]Frame, 0, len(names))
	for _, name := range names {
		f, err := load(fsys, name)
		if err != nil {
			return nil, err
		}
		frames = append(frames, f)
	}
	return frames, nil
}

func load(fsys fs.FS, name string) (Frame, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Frame{}, fmt.Errorf("load frame %s: %w", name, err)
	}
	f := Parse(string(data))
	if f.Empty() {
		return Frame{}, fmt.Errorf("load frame %s: %w", name, ErrEmptyFrame)
	}
	return f, nil
}
