package renderer

import (
	"fmt"

	"github.com/threenigma/marsx/internal/core"
)

const fillRune = '█'

// cellRenderer composes frames in a cell buffer scaled from world pixels and
// presents them through a Surface.
type cellRenderer struct {
	surface Surface
	screen  *core.Screen
	worldW  float64
	worldH  float64
	open    bool
}

func newCellRenderer(surface Surface, worldW, worldH float64) *cellRenderer {
	w, h := surface.Size()
	return &cellRenderer{
		surface: surface,
		screen:  core.NewScreen(w, h),
		worldW:  worldW,
		worldH:  worldH,
		open:    true,
	}
}

// BeginFrame resyncs the buffer with the surface size and clears it.
func (r *cellRenderer) BeginFrame() {
	if !r.open {
		return
	}
	w, h := r.surface.Size()
	r.screen.Resize(w, h)
	r.screen.Clear()
}

// DrawRect rasterizes a world-space rect into the cell buffer.
func (r *cellRenderer) DrawRect(rect core.Rect, c core.Color) {
	if !r.open || c.Transparent() {
		return
	}
	x, y, w, h := scaleRect(rect, r.worldW, r.worldH, r.screen.Width(), r.screen.Height())
	r.screen.FillRect(x, y, w, h, fillRune, c)
}

// EndFrame blits the composed buffer to the surface and presents it.
func (r *cellRenderer) EndFrame() error {
	if !r.open {
		return fmt.Errorf("renderer: end frame on released renderer")
	}
	r.surface.Blit(r.screen)
	return r.surface.Present()
}

// Cleanup releases the backend. The surface belongs to the window and is
// not touched here.
func (r *cellRenderer) Cleanup() {
	r.open = false
}

// scaleRect maps a world-space rect onto a cols x rows cell grid. Anything
// visible in world space stays at least one cell large so small entities do
// not vanish.
func scaleRect(rect core.Rect, worldW, worldH float64, cols, rows int) (x, y, w, h int) {
	if worldW <= 0 || worldH <= 0 || cols <= 0 || rows <= 0 {
		return 0, 0, 0, 0
	}
	sx := float64(cols) / worldW
	sy := float64(rows) / worldH

	x = int(rect.X * sx)
	y = int(rect.Y * sy)
	w = core.Max(1, int(rect.W*sx))
	h = core.Max(1, int(rect.H*sy))
	return x, y, w, h
}
