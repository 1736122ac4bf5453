// Package loop implements the frame loop: delta timing, input sampling,
// world update, render submission, and frame throttling, plus the
// initialization and cleanup lifecycle around it.
package loop

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/threenigma/marsx/internal/config"
	"github.com/threenigma/marsx/internal/engine/input"
	"github.com/threenigma/marsx/internal/engine/renderer"
	"github.com/threenigma/marsx/internal/engine/window"
	"github.com/threenigma/marsx/internal/game"
	"github.com/threenigma/marsx/internal/storage"
)

// State tracks the loop lifecycle.
type State int

const (
	StateUninitialized State = iota
	StateInitialized
	StateRunning
	StateStopping
	StateCleanedUp
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitialized:
		return "initialized"
	case StateRunning:
		return "running"
	case StateStopping:
		return "stopping"
	case StateCleanedUp:
		return "cleaned_up"
	default:
		return "unknown"
	}
}

// A stalled frame (breakpoint, OS suspend) must not integrate as one giant
// step, so delta time is capped at this multiple of the target frame time.
const maxDeltaFactor = 4.0

// Loop drives the game: one thread, one iteration per frame, cooperative
// cancellation through the quit flag checked once per iteration.
type Loop struct {
	cfg    config.Config
	logger *log.Logger
	store  *storage.Store
	title  string

	window   window.Window
	renderer renderer.Renderer
	sampler  *input.Sampler
	world    *game.World

	state         State
	frameDuration time.Duration
	maxDelta      float64
	frames        int64
	maxFrames     int64
	startedAt     time.Time
	endReason     string

	// Swapped out by tests.
	newWindow   func() (window.Window, error)
	newRenderer func(win window.Window) (renderer.Renderer, error)
	now         func() time.Time
	sleep       func(time.Duration)
}

// New creates an uninitialized loop. The store is optional; when present a
// session record is written on exit. headless forces the presentation-free
// window, which in turn selects the raster renderer.
func New(cfg config.Config, logger *log.Logger, store *storage.Store, title string, headless bool) *Loop {
	if logger == nil {
		logger = log.Default()
	}

	fps := cfg.Graphics.MaxFPS
	if fps <= 0 {
		fps = 60
	}
	frameDuration := time.Second / time.Duration(fps)

	l := &Loop{
		cfg:           cfg,
		logger:        logger,
		store:         store,
		title:         title,
		state:         StateUninitialized,
		frameDuration: frameDuration,
		maxDelta:      maxDeltaFactor * frameDuration.Seconds(),
		endReason:     "quit",
		now:           time.Now,
		sleep:         time.Sleep,
	}

	l.newWindow = func() (window.Window, error) {
		if headless {
			return window.NewHeadless(80, 24, 200, 60), nil
		}
		hold := time.Duration(cfg.Input.HoldMs) * time.Millisecond
		return window.NewTerminal(title, 120, 36, hold)
	}

	l.newRenderer = func(win window.Window) (renderer.Renderer, error) {
		// The renderer falls back to its raster backend when the window
		// cannot present; world and entities never learn which backend
		// they got, so this constructor cannot fail.
		surface, _ := win.(renderer.Surface)
		return renderer.New(
			surface,
			float64(cfg.Graphics.Width),
			float64(cfg.Graphics.Height),
			logger,
		), nil
	}

	return l
}

// SetMaxFrames bounds the run to n frames; 0 means unbounded. Headless
// runs use this to terminate without a window-close event.
func (l *Loop) SetMaxFrames(n int64) {
	l.maxFrames = n
}

// State returns the loop's lifecycle state.
func (l *Loop) State() State {
	return l.state
}

// World returns the world once the loop is initialized.
func (l *Loop) World() *game.World {
	return l.world
}

// Initialize acquires the window, renderer, input sampler, and world, in
// that dependency order. Any failure releases whatever was already acquired
// in reverse order and the loop never runs.
func (l *Loop) Initialize() (err error) {
	if l.state != StateUninitialized {
		return fmt.Errorf("loop: initialize from state %s", l.state)
	}

	l.logger.Info("initializing engine", "title", l.title, "target_fps", int(time.Second/l.frameDuration))

	// Release whatever was acquired, in reverse order, if any later step
	// fails: the loop must never start half-built.
	defer func() {
		if err != nil {
			l.releaseResources()
			l.state = StateUninitialized
		}
	}()

	win, err := l.newWindow()
	if err != nil {
		return fmt.Errorf("loop: window creation failed: %w", err)
	}
	l.window = win

	rend, err := l.newRenderer(win)
	if err != nil {
		return fmt.Errorf("loop: renderer creation failed: %w", err)
	}
	l.renderer = rend

	l.sampler = input.NewSampler(win.Events(), input.DefaultBindings())

	l.world = game.NewWorld(l.renderer, l.logger)
	if l.cfg.Physics.MaxBodies > 0 {
		l.world.SetMaxBodies(l.cfg.Physics.MaxBodies)
	}
	l.world.AddEntity(game.NewPlayer())

	l.state = StateInitialized
	l.logger.Info("engine initialized")
	return nil
}

// Run executes the frame loop until quit is requested, then cleans up.
// Cleanup also runs when the loop exits through an error path.
func (l *Loop) Run() error {
	if l.state != StateInitialized {
		return fmt.Errorf("loop: run from state %s", l.state)
	}
	defer l.Cleanup()

	l.state = StateRunning
	l.startedAt = l.now()
	last := l.startedAt
	lastFPSLog := l.startedAt

	l.logger.Info("entering main loop")

	for l.state == StateRunning {
		frameStart := l.now()
		dt := frameStart.Sub(last).Seconds()
		last = frameStart
		if dt > l.maxDelta {
			l.logger.Debug("clamping stalled frame", "delta", dt, "max", l.maxDelta)
			dt = l.maxDelta
		}

		if quit := l.sampler.Poll(); quit {
			l.endReason = "window_close"
			l.state = StateStopping
			break
		}

		l.handleWindowActions()

		l.world.Update(l.sampler, dt)

		l.renderer.BeginFrame()
		l.world.Render()
		if err := l.renderer.EndFrame(); err != nil {
			// Steady-state presentation errors degrade, never abort.
			l.logger.Error("frame present failed", "error", err)
		}
		l.frames++

		if l.maxFrames > 0 && l.frames >= l.maxFrames {
			l.state = StateStopping
			break
		}

		if elapsed := l.now().Sub(frameStart); elapsed < l.frameDuration {
			l.sleep(l.frameDuration - elapsed)
		}

		if frameStart.Sub(lastFPSLog) >= time.Second {
			lastFPSLog = frameStart
			if dt > 0 {
				l.logger.Debug("fps", "current", fmt.Sprintf("%.1f", 1.0/dt))
			}
		}
	}

	l.logger.Info("exiting main loop", "frames", l.frames, "reason", l.endReason)
	l.recordSession()
	return nil
}

// Stop requests a cooperative shutdown before the next iteration.
func (l *Loop) Stop() {
	if l.state == StateRunning {
		l.state = StateStopping
	}
}

func (l *Loop) handleWindowActions() {
	if l.sampler.IsActionJustPressed(input.ActionToggleFullscreen) {
		if l.window.ToggleFullscreen() {
			// Re-query after the toggle so tracked dimensions stay honest.
			w, h := l.window.Size()
			l.logger.Info("window mode toggled", "width", w, "height", h)
		} else {
			l.logger.Warn("fullscreen toggle not applied")
		}
	}

	if l.sampler.IsActionJustPressed(input.ActionOpenSettings) {
		l.logger.Debug("settings requested")
	}
}

func (l *Loop) recordSession() {
	if l.store == nil || l.frames == 0 {
		return
	}
	duration := l.now().Sub(l.startedAt).Seconds()
	avgFPS := 0.0
	if duration > 0 {
		avgFPS = float64(l.frames) / duration
	}
	// Best-effort: a failed save never disturbs shutdown.
	if _, err := l.store.SaveSession(storage.Session{
		Duration:  duration,
		Frames:    l.frames,
		AvgFPS:    avgFPS,
		EndReason: l.endReason,
	}); err != nil {
		l.logger.Warn("could not record session", "error", err)
	}
}

// Cleanup releases all resources in reverse acquisition order: world,
// sampler, renderer, window. Each release is independently guarded, so a
// partially initialized loop cleans up exactly what it acquired. Calling
// Cleanup twice is a no-op.
func (l *Loop) Cleanup() {
	if l.state == StateCleanedUp {
		return
	}

	l.logger.Info("cleaning up resources")
	l.releaseResources()
	l.state = StateCleanedUp
	l.logger.Info("cleanup complete")
}

// releaseResources frees components in reverse acquisition order. Handles
// are nil'd immediately after release so a second pass is a no-op.
func (l *Loop) releaseResources() {
	if l.world != nil {
		l.world = nil
	}
	if l.sampler != nil {
		l.sampler = nil
	}
	if l.renderer != nil {
		l.renderer.Cleanup()
		l.renderer = nil
	}
	if l.window != nil {
		l.window.Cleanup()
		l.window = nil
	}
}
