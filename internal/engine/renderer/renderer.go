// Package renderer implements the frame submission protocol: begin-frame,
// draw calls, end-frame (present). The world and entities only ever see the
// Renderer interface; which backend presents the frame is invisible to them.
package renderer

import (
	"github.com/charmbracelet/log"

	"github.com/threenigma/marsx/internal/core"
)

// Renderer is the drawing contract the world renders through. BeginFrame
// starts a frame, EndFrame presents it, Cleanup releases the backend and is
// idempotent. DrawRect takes world pixel coordinates.
type Renderer interface {
	BeginFrame()
	DrawRect(r core.Rect, c core.Color)
	EndFrame() error
	Cleanup()
}

// Surface is a presentation target a backend can blit frames to. The
// terminal window implements it; headless windows do not.
type Surface interface {
	Size() (int, int)
	Blit(s *core.Screen)
	Present() error
}

// New creates a renderer for the given surface, mapping a worldW x worldH
// pixel space onto the surface's cells. When no usable surface is available
// the raster fallback is returned instead; callers cannot tell the
// difference and should not try.
func New(surface Surface, worldW, worldH float64, logger *log.Logger) Renderer {
	if logger == nil {
		logger = log.Default()
	}

	if surface != nil {
		if w, h := surface.Size(); w > 0 && h > 0 {
			logger.Debug("renderer: cell backend initialized", "cols", w, "rows", h)
			return newCellRenderer(surface, worldW, worldH)
		}
	}

	logger.Warn("renderer: no presentable surface, falling back to raster backend")
	return NewRaster(worldW, worldH, rasterCols, rasterRows)
}
