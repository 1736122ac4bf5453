package renderer

import (
	"errors"
	"strings"
	"testing"

	"github.com/threenigma/marsx/internal/core"
)

// fakeSurface records blits for inspection.
type fakeSurface struct {
	cols, rows int
	blits      int
	presents   int
	presentErr error
	last       *core.Screen
}

func (f *fakeSurface) Size() (int, int) { return f.cols, f.rows }
func (f *fakeSurface) Blit(s *core.Screen) {
	f.blits++
	f.last = s
}
func (f *fakeSurface) Present() error {
	f.presents++
	return f.presentErr
}

func TestNewPicksCellBackend(t *testing.T) {
	surface := &fakeSurface{cols: 80, rows: 24}
	r := New(surface, 800, 600, nil)

	if _, ok := r.(*cellRenderer); !ok {
		t.Fatalf("New with a usable surface returned %T, expected the cell backend", r)
	}
}

func TestNewFallsBackToRaster(t *testing.T) {
	if _, ok := New(nil, 800, 600, nil).(*Raster); !ok {
		t.Error("New(nil) should return the raster fallback")
	}
	if _, ok := New(&fakeSurface{}, 800, 600, nil).(*Raster); !ok {
		t.Error("New with a zero-size surface should return the raster fallback")
	}
}

func TestCellRendererFrameCycle(t *testing.T) {
	surface := &fakeSurface{cols: 80, rows: 24}
	r := New(surface, 800, 600, nil)

	r.BeginFrame()
	r.DrawRect(core.NewRect(0, 0, 100, 100), core.ColorWhite)
	if err := r.EndFrame(); err != nil {
		t.Fatalf("EndFrame: %v", err)
	}

	if surface.blits != 1 || surface.presents != 1 {
		t.Errorf("blits=%d presents=%d, expected 1/1", surface.blits, surface.presents)
	}
	// 100x100 world pixels on an 80x24 grid over 800x600 world: 10x4 cells.
	if got := surface.last.Get(0, 0).Rune; got != '█' {
		t.Errorf("top-left cell = %q, expected the fill rune", got)
	}
	if got := surface.last.Get(9, 3).Rune; got != '█' {
		t.Errorf("cell (9, 3) = %q, expected the fill rune", got)
	}
	if got := surface.last.Get(10, 0).Rune; got != ' ' {
		t.Errorf("cell (10, 0) = %q, expected blank", got)
	}
}

func TestCellRendererPropagatesPresentError(t *testing.T) {
	surface := &fakeSurface{cols: 10, rows: 10, presentErr: errors.New("device lost")}
	r := New(surface, 800, 600, nil)

	r.BeginFrame()
	if err := r.EndFrame(); err == nil {
		t.Error("EndFrame should surface the present error")
	}
}

func TestCellRendererCleanupIdempotent(t *testing.T) {
	surface := &fakeSurface{cols: 10, rows: 10}
	r := New(surface, 800, 600, nil)

	r.Cleanup()
	r.Cleanup() // must not panic

	r.BeginFrame()
	r.DrawRect(core.NewRect(0, 0, 10, 10), core.ColorWhite)
	if err := r.EndFrame(); err == nil {
		t.Error("EndFrame after Cleanup should fail")
	}
	if surface.blits != 0 {
		t.Error("a released renderer must not touch the surface")
	}
}

func TestRasterFrame(t *testing.T) {
	r := NewRaster(800, 600, 80, 24)

	r.BeginFrame()
	r.DrawRect(core.NewRect(0, 0, 800, 600), core.ColorGreen)
	if err := r.EndFrame(); err != nil {
		t.Fatalf("EndFrame: %v", err)
	}

	if r.RectCount() != 1 {
		t.Errorf("RectCount() = %d, expected 1", r.RectCount())
	}
	if !strings.Contains(r.Frame(), "█") {
		t.Error("frame text should contain fill runes")
	}

	// Transparent fills are skipped.
	r.BeginFrame()
	r.DrawRect(core.NewRect(0, 0, 10, 10), core.RGBA(255, 0, 0, 0))
	if r.RectCount() != 0 {
		t.Errorf("RectCount() = %d, expected 0 for a transparent rect", r.RectCount())
	}
}

func TestScaleRect(t *testing.T) {
	tests := []struct {
		name       string
		rect       core.Rect
		x, y, w, h int
	}{
		{"origin block", core.NewRect(0, 0, 100, 100), 0, 0, 10, 4},
		{"tiny rect stays visible", core.NewRect(400, 300, 1, 1), 40, 12, 1, 1},
		{"player rect", core.NewRect(380, 275, 50, 50), 38, 11, 5, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y, w, h := scaleRect(tc.rect, 800, 600, 80, 24)
			if x != tc.x || y != tc.y || w != tc.w || h != tc.h {
				t.Errorf("scaleRect() = (%d, %d, %d, %d), expected (%d, %d, %d, %d)",
					x, y, w, h, tc.x, tc.y, tc.w, tc.h)
			}
		})
	}
}
