package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/threenigma/marsx/internal/engine/loop"
	"github.com/threenigma/marsx/internal/storage"
)

var (
	flagFPS      int
	flagWidth    int
	flagHeight   int
	flagHeadless bool
	flagFrames   int64
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the game",
	Long: `Start the Mars-X game loop.

Controls:
  W/A/S/D    - Move the ship
  F11        - Toggle fullscreen
  Esc        - Open settings
  Ctrl+C     - Quit (close the window)

Examples:
  marsx run
  marsx run --fps 120
  marsx run --headless --log-level debug`,
	RunE: runGame,
}

func init() {
	runCmd.Flags().IntVar(&flagFPS, "fps", 0, "Target frame rate (overrides graphics.max_fps)")
	runCmd.Flags().IntVar(&flagWidth, "width", 0, "World width in pixels (overrides graphics.resolution_width)")
	runCmd.Flags().IntVar(&flagHeight, "height", 0, "World height in pixels (overrides graphics.resolution_height)")
	runCmd.Flags().BoolVar(&flagHeadless, "headless", false, "Run without a terminal display")
	runCmd.Flags().Int64Var(&flagFrames, "frames", 0, "Stop after this many frames (0 = run until quit)")
}

func runGame(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if flagFPS > 0 {
		cfg.Graphics.MaxFPS = flagFPS
	}
	if flagWidth > 0 {
		cfg.Graphics.Width = flagWidth
	}
	if flagHeight > 0 {
		cfg.Graphics.Height = flagHeight
	}

	logger := newLogger(cfg)
	logger.Info("starting", "game", gameName, "version", gameVersion)

	// Without a TTY the terminal window cannot initialize; fall back to a
	// headless run instead of failing startup.
	headless := flagHeadless
	if !headless && !term.IsTerminal(int(os.Stdout.Fd())) {
		logger.Warn("stdout is not a terminal, running headless")
		headless = true
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open session database", "error", err)
		store = nil // the game runs fine without persistence
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	l := loop.New(cfg, logger, store, gameName, headless)
	if flagFrames > 0 {
		l.SetMaxFrames(flagFrames)
	} else if headless {
		// A headless run has no window-close event; bound it.
		l.SetMaxFrames(600)
	}
	if err := l.Initialize(); err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}
	if err := l.Run(); err != nil {
		return fmt.Errorf("game loop failed: %w", err)
	}
	return nil
}
