package renderer

import "github.com/threenigma/marsx/internal/core"

// Fallback raster dimensions when no surface reports a size.
const (
	rasterCols = 80
	rasterRows = 24
)

// Raster is the fallback backend: it composes frames into the same cell
// buffer as the primary backend but presents nothing. The last completed
// frame stays available as text, which also makes it the test backend.
type Raster struct {
	screen *core.Screen
	worldW float64
	worldH float64
	frame  string
	rects  int
	open   bool
}

// NewRaster creates a raster renderer mapping worldW x worldH pixels onto a
// cols x rows text grid.
func NewRaster(worldW, worldH float64, cols, rows int) *Raster {
	return &Raster{
		screen: core.NewScreen(cols, rows),
		worldW: worldW,
		worldH: worldH,
		open:   true,
	}
}

// BeginFrame clears the buffer for a new frame.
func (r *Raster) BeginFrame() {
	if !r.open {
		return
	}
	r.screen.Clear()
	r.rects = 0
}

// DrawRect rasterizes a world-space rect into the text grid.
func (r *Raster) DrawRect(rect core.Rect, c core.Color) {
	if !r.open || c.Transparent() {
		return
	}
	x, y, w, h := scaleRect(rect, r.worldW, r.worldH, r.screen.Width(), r.screen.Height())
	r.screen.FillRect(x, y, w, h, fillRune, c)
	r.rects++
}

// EndFrame finalizes the frame. Presentation is a no-op by definition.
func (r *Raster) EndFrame() error {
	if !r.open {
		return nil
	}
	r.frame = r.screen.String()
	return nil
}

// Frame returns the last completed frame as text.
func (r *Raster) Frame() string {
	return r.frame
}

// RectCount returns how many rects the current frame has received.
func (r *Raster) RectCount() int {
	return r.rects
}

// Cleanup releases the backend.
func (r *Raster) Cleanup() {
	r.open = false
}
