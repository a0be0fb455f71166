package object

import (
	"github.com/tomz197/spacegarbage/internal/draw"
	"github.com/tomz197/spacegarbage/internal/scenario"
)

// YearDriver advances the world's year once every TicsPerYear tics.
type YearDriver struct {
	TicsPerYear int
	elapsed     int
}

// NewYearDriver creates a driver advancing one year per ticsPerYear tics.
func NewYearDriver(ticsPerYear int) *YearDriver {
	return &YearDriver{TicsPerYear: max(ticsPerYear, 1)}
}

// Step implements Task. The driver never finishes.
func (d *YearDriver) Step(w *World) (bool, error) {
	d.elapsed++
	if d.elapsed >= d.TicsPerYear {
		w.Year++
		d.elapsed = 0
	}
	return false, nil
}

// Info shows the current year and its phrase on a fixed line.
// A negative Row counts up from the bottom edge.
type Info struct {
	Row, Column int
	shown       string
}

// NewInfo creates the info line.
func NewInfo(row, column int) *Info {
	return &Info{Row: row, Column: column}
}

// Step implements Task. The text is redrawn every tic so falling garbage
// never leaves holes in it.
func (i *Info) Step(w *World) (bool, error) {
	row := i.Row
	if row < 0 {
		height, _ := w.Surface.Size()
		row += height
	}

	text := scenario.Info(w.Year)
	if i.shown != "" && i.shown != text {
		draw.EraseText(w.Surface, row, i.Column, i.shown)
	}
	draw.DrawText(w.Surface, row, i.Column, text, draw.AttrNormal)
	i.shown = text
	return false, nil
}
