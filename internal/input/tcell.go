package input

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// TcellSource collects key events from a tcell screen.
// Events are gathered by a goroutine and folded into Controls on Poll.
type TcellSource struct {
	mu      sync.Mutex
	pending Controls
}

// StartTcell spawns the event pump. It stops when the screen is finalized.
// onInterrupt is called for Ctrl-C, since raw mode swallows SIGINT.
func StartTcell(screen tcell.Screen, onInterrupt func()) *TcellSource {
	s := &TcellSource{}
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC {
					if onInterrupt != nil {
						onInterrupt()
					}
					continue
				}
				s.push(keyOf(ev))
			}
		}
	}()
	return s
}

func (s *TcellSource) push(k Key) {
	if k == KeyNone {
		return
	}
	s.mu.Lock()
	s.pending.apply(k)
	s.mu.Unlock()
}

// Poll implements Source.
func (s *TcellSource) Poll() Controls {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.pending
	s.pending = Controls{}
	return c
}

func keyOf(ev *tcell.EventKey) Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	case tcell.KeyRune:
		r := ev.Rune()
		if r > 0 && r < 128 {
			return byteKey(byte(r))
		}
	}
	return KeyNone
}
