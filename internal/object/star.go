package object

import (
	"github.com/tomz197/spacegarbage/internal/draw"
	cfg "github.com/tomz197/spacegarbage/internal/loop/config"
)

type blinkPhase struct {
	attr draw.Attr
	tics int
}

var blinkCycle = []blinkPhase{
	{draw.AttrDim, cfg.StarDimTics},
	{draw.AttrNormal, cfg.StarNormalTics},
	{draw.AttrBold, cfg.StarBoldTics},
	{draw.AttrNormal, cfg.StarNormalTics},
}

// Star blinks forever: dim, normal, bold, normal.
type Star struct {
	Row, Column int
	Symbol      rune

	phase int
	wait  int
}

// NewStar creates a star at (row, column).
func NewStar(row, column int, symbol rune) *Star {
	return &Star{Row: row, Column: column, Symbol: symbol}
}

// Step implements Task. Each phase holds its attribute for its tic count.
func (s *Star) Step(w *World) (bool, error) {
	if s.wait > 0 {
		s.wait--
		return false, nil
	}

	p := blinkCycle[s.phase]
	draw.DrawText(w.Surface, s.Row, s.Column, string(s.Symbol), p.attr)
	s.wait = p.tics - 1
	s.phase = (s.phase + 1) % len(blinkCycle)
	return false, nil
}
