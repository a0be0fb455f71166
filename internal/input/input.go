// Package input turns raw key presses into spaceship controls.
package input

import (
	"bufio"
)

// Controls is the union of everything pressed since the previous poll.
// Rows and Columns are direction intents in {-1, 0, 1}.
type Controls struct {
	Rows    int
	Columns int
	Fire    bool
}

// Source is a non-blocking control poller.
type Source interface {
	Poll() Controls
}

// Key is a recognized control key.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyFire
)

// apply folds a key into c. The latest key on an axis wins.
func (c *Controls) apply(k Key) {
	switch k {
	case KeyUp:
		c.Rows = -1
	case KeyDown:
		c.Rows = 1
	case KeyLeft:
		c.Columns = -1
	case KeyRight:
		c.Columns = 1
	case KeyFire:
		c.Fire = true
	}
}

// Stream delivers input bytes via a channel and parses them on Poll.
type Stream struct {
	ch      chan byte
	partial []byte // Incomplete escape sequence carried to the next poll
}

// keyInterrupt is Ctrl-C, which raw mode delivers as a byte instead of SIGINT.
const keyInterrupt = 0x03

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// onInterrupt is called when Ctrl-C is read.
func StartStream(r *bufio.Reader, onInterrupt func()) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			if b == keyInterrupt {
				if onInterrupt != nil {
					onInterrupt()
				}
				continue
			}
			s.ch <- b
		}
	}()
	return s
}

// Poll drains all available bytes from the stream without blocking.
func (s *Stream) Poll() Controls {
	buf := s.partial
	s.partial = nil

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	n := len(buf)
	switch {
	case n >= 1 && buf[n-1] == '\x1b':
		s.partial = append([]byte(nil), buf[n-1:]...)
		buf = buf[:n-1]
	case n >= 2 && buf[n-2] == '\x1b' && buf[n-1] == '[':
		s.partial = append([]byte(nil), buf[n-2:]...)
		buf = buf[:n-2]
	}

	return ParseBytes(buf)
}

// ParseBytes decodes arrow-key CSI sequences and single-byte keys.
func ParseBytes(buf []byte) Controls {
	var c Controls
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				c.apply(KeyUp)
			case 'B':
				c.apply(KeyDown)
			case 'C':
				c.apply(KeyRight)
			case 'D':
				c.apply(KeyLeft)
			}
			i += 2
			continue
		}

		c.apply(byteKey(b))
	}
	return c
}

func byteKey(b byte) Key {
	switch b {
	case 'w', 'W', 'k', 'K':
		return KeyUp
	case 's', 'S', 'j', 'J':
		return KeyDown
	case 'a', 'A', 'h', 'H':
		return KeyLeft
	case 'd', 'D', 'l', 'L':
		return KeyRight
	case ' ':
		return KeyFire
	}
	return KeyNone
}
