// Package window owns the presentation surface and the platform event queue.
// The terminal implementation adapts tcell to the engine's event model; the
// headless implementation serves tests and environments without a TTY.
package window

import "github.com/threenigma/marsx/internal/engine/input"

// Window is the surface provider the frame loop depends on. Size is the
// logical viewport in cells and must be re-queried after a fullscreen
// toggle. Cleanup is idempotent.
type Window interface {
	Size() (int, int)
	ToggleFullscreen() bool
	Events() input.Source
	Cleanup()
}
