package object

import (
	"github.com/tomz197/spacegarbage/internal/draw"
	cfg "github.com/tomz197/spacegarbage/internal/loop/config"
)

// Muzzle flash glyphs, one per tic before the shot starts moving.
var muzzleFlash = []rune{'*', 'O'}

// Fire is a single projectile. It flashes at the muzzle, then flies in a
// straight line until it hits an obstacle or leaves the playfield.
type Fire struct {
	Row, Column           float64
	RowSpeed, ColumnSpeed float64

	steps int
	drawn bool
}

// NewFire creates a shot flying straight up from (row, column).
func NewFire(row, column float64) *Fire {
	return &Fire{
		Row:         row,
		Column:      column,
		RowSpeed:    cfg.FireRowSpeed,
		ColumnSpeed: cfg.FireColumnSpeed,
	}
}

// Step implements Task.
func (f *Fire) Step(w *World) (bool, error) {
	if f.drawn {
		f.put(w, draw.Blank)
		f.drawn = false
		if f.hit(w) {
			return true, nil
		}
	}

	if f.steps == 0 {
		w.Cue.Play()
	}
	if f.steps >= len(muzzleFlash) {
		f.Row += f.RowSpeed
		f.Column += f.ColumnSpeed
	}
	f.steps++

	if !f.inside(w.Surface) {
		return true, nil
	}
	if f.hit(w) {
		return true, nil
	}

	f.put(w, f.glyph())
	f.drawn = true
	return false, nil
}

// hit flags the obstacle under the shot, if any.
func (f *Fire) hit(w *World) bool {
	o := w.Obstacles.HitAt(draw.Round(f.Row), draw.Round(f.Column))
	if o == nil {
		return false
	}
	w.Obstacles.MarkHit(o)
	return true
}

// inside reports whether the shot is strictly within the border.
func (f *Fire) inside(s draw.Surface) bool {
	height, width := s.Size()
	row, column := draw.Round(f.Row), draw.Round(f.Column)
	return row > 0 && row < height-1 && column > 0 && column < width-1
}

func (f *Fire) glyph() rune {
	if f.steps <= len(muzzleFlash) {
		return muzzleFlash[f.steps-1]
	}
	if f.ColumnSpeed != 0 {
		return '-'
	}
	return '|'
}

func (f *Fire) put(w *World, r rune) {
	draw.DrawText(w.Surface, draw.Round(f.Row), draw.Round(f.Column), string(r), draw.AttrNormal)
}
