package window

import "github.com/threenigma/marsx/internal/engine/input"

// Headless is a window without a presentation device. It is used by tests
// and by --headless runs where no TTY is available; the renderer falls back
// to its raster backend when the window cannot present.
type Headless struct {
	width      int
	height     int
	fullWidth  int
	fullHeight int
	fullscreen bool
	queue      *input.Queue
	released   bool
}

// NewHeadless creates a headless window. fullW/fullH are the dimensions
// reported in fullscreen mode, standing in for the physical display size.
func NewHeadless(width, height, fullW, fullH int) *Headless {
	return &Headless{
		width:      width,
		height:     height,
		fullWidth:  fullW,
		fullHeight: fullH,
		queue:      input.NewQueue(),
	}
}

// Size returns the current viewport dimensions.
func (h *Headless) Size() (int, int) {
	if h.fullscreen {
		return h.fullWidth, h.fullHeight
	}
	return h.width, h.height
}

// ToggleFullscreen flips the tracked mode. Always applies.
func (h *Headless) ToggleFullscreen() bool {
	if h.released {
		return false
	}
	h.fullscreen = !h.fullscreen
	return true
}

// Fullscreen reports the current mode.
func (h *Headless) Fullscreen() bool {
	return h.fullscreen
}

// Events returns the window's event queue.
func (h *Headless) Events() input.Source {
	return h.queue
}

// Push enqueues a synthetic platform event.
func (h *Headless) Push(ev input.Event) {
	h.queue.Push(ev)
}

// Cleanup marks the window released. Safe to call more than once.
func (h *Headless) Cleanup() {
	h.released = true
}
