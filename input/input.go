package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/mongoose/core"
)

// Reader polls terminal events and translates movement keys into
// direction values for the game loop. Arrow keys and hjkl both steer.
type Reader struct {
	screen     tcell.Screen
	directions chan int
	quit       chan struct{}
}

func NewReader(screen tcell.Screen) *Reader {
	return &Reader{
		screen:     screen,
		directions: make(chan int, 16),
		quit:       make(chan struct{}),
	}
}

// Directions delivers one value per movement keypress
func (r *Reader) Directions() <-chan int { return r.directions }

// Quit is closed when the player asks to leave
func (r *Reader) Quit() <-chan struct{} { return r.quit }

// Poll blocks reading terminal events until quit. Run it on its own
// goroutine; it returns after signaling quit.
func (r *Reader) Poll() {
	for {
		ev := r.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if dir, ok := translateKey(ev); ok {
				select {
				case r.directions <- dir:
				default: // loop is behind; drop rather than stall
				}
				continue
			}
			if isQuitKey(ev) {
				close(r.quit)
				return
			}
		case *tcell.EventResize:
			r.screen.Sync()
		case nil:
			// screen finalized under us
			close(r.quit)
			return
		}
	}
}

func translateKey(ev *tcell.EventKey) (int, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return core.DirLeft, true
	case tcell.KeyUp:
		return core.DirUp, true
	case tcell.KeyRight:
		return core.DirRight, true
	case tcell.KeyDown:
		return core.DirDown, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'h':
			return core.DirLeft, true
		case 'k':
			return core.DirUp, true
		case 'l':
			return core.DirRight, true
		case 'j':
			return core.DirDown, true
		}
	}
	return 0, false
}

func isQuitKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return true
	}
	return ev.Key() == tcell.KeyRune && ev.Rune() == 'q'
}
