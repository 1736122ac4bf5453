package window

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/threenigma/marsx/internal/core"
	"github.com/threenigma/marsx/internal/engine/input"
)

// Terminal is a tcell-backed window. In windowed mode the viewport is the
// configured logical size clipped to the terminal; fullscreen uses the whole
// terminal. It implements both Window and the renderer's Surface.
type Terminal struct {
	screen     tcell.Screen
	title      string
	width      int
	height     int
	fullscreen bool

	// Terminals report no key releases, so a key is considered held until
	// it stops auto-repeating for holdTimeout.
	holdTimeout time.Duration
	heldKeys    map[input.Key]time.Time
	prevButtons tcell.ButtonMask
	now         func() time.Time
}

// NewTerminal creates and initializes a terminal window with the given
// title and logical viewport size.
func NewTerminal(title string, width, height int, holdTimeout time.Duration) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("window: cannot create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("window: cannot initialize terminal screen: %w", err)
	}

	screen.EnableMouse()
	screen.HideCursor()
	screen.SetTitle(title)
	screen.Clear()

	if holdTimeout <= 0 {
		holdTimeout = 150 * time.Millisecond
	}

	return &Terminal{
		screen:      screen,
		title:       title,
		width:       width,
		height:      height,
		holdTimeout: holdTimeout,
		heldKeys:    make(map[input.Key]time.Time),
		now:         time.Now,
	}, nil
}

// Size returns the current viewport dimensions in cells.
func (t *Terminal) Size() (int, int) {
	if t.screen == nil {
		return t.width, t.height
	}
	termW, termH := t.screen.Size()
	if t.fullscreen {
		return termW, termH
	}
	return core.Min(t.width, termW), core.Min(t.height, termH)
}

// ToggleFullscreen switches between the logical viewport and the whole
// terminal. Returns whether the toggle was applied.
func (t *Terminal) ToggleFullscreen() bool {
	if t.screen == nil {
		return false
	}
	t.fullscreen = !t.fullscreen
	t.screen.Clear()
	return true
}

// Events returns the window itself: it is the platform event source.
func (t *Terminal) Events() input.Source {
	return t
}

// PollEvent implements input.Source. It synthesizes key-up events for keys
// that stopped repeating, then translates pending tcell events.
func (t *Terminal) PollEvent() (input.Event, bool) {
	if ev, ok := t.expireHeldKey(); ok {
		return ev, true
	}

	for t.screen != nil && t.screen.HasPendingEvent() {
		tev := t.screen.PollEvent()
		if ev, ok := t.translate(tev); ok {
			return ev, true
		}
	}
	return input.Event{}, false
}

func (t *Terminal) expireHeldKey() (input.Event, bool) {
	now := t.now()
	for key, last := range t.heldKeys {
		if now.Sub(last) > t.holdTimeout {
			delete(t.heldKeys, key)
			return input.Event{Kind: input.EventKeyUp, Key: key}, true
		}
	}
	return input.Event{}, false
}

func (t *Terminal) translate(tev tcell.Event) (input.Event, bool) {
	switch ev := tev.(type) {
	case *tcell.EventKey:
		// Ctrl+C is the terminal's window-close gesture.
		if ev.Key() == tcell.KeyCtrlC {
			return input.Event{Kind: input.EventWindowClose}, true
		}
		key := translateKey(ev)
		if key == input.KeyNone {
			return input.Event{}, false
		}
		t.heldKeys[key] = t.now()
		return input.Event{Kind: input.EventKeyDown, Key: key}, true

	case *tcell.EventMouse:
		x, y := ev.Position()
		buttons := ev.Buttons() & tcell.ButtonMask(0xff)
		if changed, down, btn := t.buttonTransition(buttons); changed {
			kind := input.EventMouseButtonUp
			if down {
				kind = input.EventMouseButtonDown
			}
			return input.Event{Kind: kind, X: x, Y: y, Button: btn}, true
		}
		return input.Event{Kind: input.EventMouseMotion, X: x, Y: y}, true

	case *tcell.EventResize:
		w, h := ev.Size()
		t.screen.Sync()
		return input.Event{Kind: input.EventResize, Width: w, Height: h}, true
	}
	return input.Event{}, false
}

func translateKey(ev *tcell.EventKey) input.Key {
	switch ev.Key() {
	case tcell.KeyRune:
		return input.KeyRune(ev.Rune())
	case tcell.KeyEscape:
		return input.KeyEscape
	case tcell.KeyEnter:
		return input.KeyEnter
	case tcell.KeyTab:
		return input.KeyTab
	case tcell.KeyUp:
		return input.KeyUp
	case tcell.KeyDown:
		return input.KeyDown
	case tcell.KeyLeft:
		return input.KeyLeft
	case tcell.KeyRight:
		return input.KeyRight
	case tcell.KeyF11:
		return input.KeyF11
	}
	return input.KeyNone
}

// buttonTransition diffs the current button mask against the previous one
// and reports the first changed button.
func (t *Terminal) buttonTransition(buttons tcell.ButtonMask) (changed, down bool, button int) {
	prev := t.prevButtons
	t.prevButtons = buttons

	masks := []tcell.ButtonMask{tcell.Button1, tcell.Button2, tcell.Button3}
	for i, m := range masks {
		was := prev&m != 0
		is := buttons&m != 0
		if was != is {
			return true, is, i + 1
		}
	}
	return false, false, 0
}

// Blit copies a screen buffer into the terminal at the viewport origin.
func (t *Terminal) Blit(s *core.Screen) {
	if t.screen == nil {
		return
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			cell := s.Get(x, y)
			style := tcell.StyleDefault.Foreground(tcell.PaletteColor(int(cell.Color.ANSI256())))
			t.screen.SetContent(x, y, cell.Rune, nil, style)
		}
	}
}

// Present flushes the blitted frame to the terminal.
func (t *Terminal) Present() error {
	if t.screen == nil {
		return fmt.Errorf("window: present on released terminal")
	}
	t.screen.Show()
	return nil
}

// Cleanup releases the terminal. Safe to call more than once.
func (t *Terminal) Cleanup() {
	if t.screen != nil {
		t.screen.Fini()
		t.screen = nil
	}
}
