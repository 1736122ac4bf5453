package config

import (
	"os"
	"path/filepath"
	"testing"
)

// chdir changes into dir for the duration of the test, mirroring
// testing.T.Chdir which requires a newer Go toolchain.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1280 || cfg.Graphics.Height != 720 {
		t.Errorf("default resolution = %dx%d, expected 1280x720", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if cfg.Graphics.MaxFPS != 60 {
		t.Errorf("default max_fps = %d, expected 60", cfg.Graphics.MaxFPS)
	}
	if cfg.Input.HoldMs != 150 {
		t.Errorf("default hold_ms = %d, expected 150", cfg.Input.HoldMs)
	}
	if cfg.Physics.MaxBodies != 1024 {
		t.Errorf("default max_bodies = %d, expected 1024", cfg.Physics.MaxBodies)
	}
	if cfg.Debug.LoggingLevel != "info" {
		t.Errorf("default logging_level = %q, expected info", cfg.Debug.LoggingLevel)
	}
	if cfg.Build.Compiler.ParallelJobs != 4 {
		t.Errorf("default parallel_jobs = %d, expected 4", cfg.Build.Compiler.ParallelJobs)
	}
}

func TestLoadPrecedence(t *testing.T) {
	workDir := t.TempDir()
	homeDir := t.TempDir()
	chdir(t, workDir)
	t.Setenv("HOME", homeDir)

	// Local layer overrides the resolution only.
	local := "graphics:\n  resolution_width: 1920\n  resolution_height: 1080\n"
	if err := os.WriteFile(filepath.Join(workDir, "marsx.yaml"), []byte(local), 0o644); err != nil {
		t.Fatal(err)
	}

	// User layer overrides fps, and wins over local on width.
	user := "graphics:\n  resolution_width: 800\n  max_fps: 120\n"
	if err := os.MkdirAll(filepath.Join(homeDir, ".marsx"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(homeDir, ".marsx", "config.yaml"), []byte(user), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Graphics.Width != 800 {
		t.Errorf("width = %d, expected 800 (user layer wins)", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 1080 {
		t.Errorf("height = %d, expected 1080 (local layer)", cfg.Graphics.Height)
	}
	if cfg.Graphics.MaxFPS != 120 {
		t.Errorf("max_fps = %d, expected 120 (user layer)", cfg.Graphics.MaxFPS)
	}
	// Untouched keys keep their defaults.
	if cfg.Input.HoldMs != 150 {
		t.Errorf("hold_ms = %d, expected the default 150", cfg.Input.HoldMs)
	}
}

func TestLoadMissingLayersSkipped(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load with no layer files: %v", err)
	}
	if cfg.Graphics.Width != 1280 {
		t.Errorf("width = %d, expected the default 1280", cfg.Graphics.Width)
	}
}

func TestLoadUnparsableLayerFails(t *testing.T) {
	workDir := t.TempDir()
	chdir(t, workDir)
	t.Setenv("HOME", t.TempDir())

	if err := os.WriteFile(filepath.Join(workDir, "marsx.yaml"), []byte("graphics: ["), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(""); err == nil {
		t.Error("Load should fail on an unparsable layer")
	}
}

func TestLoadCustomPath(t *testing.T) {
	workDir := t.TempDir()
	chdir(t, workDir)
	t.Setenv("HOME", t.TempDir())

	// A local file exists, but the custom path replaces the search order.
	if err := os.WriteFile(filepath.Join(workDir, "marsx.yaml"), []byte("graphics:\n  max_fps: 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	customPath := filepath.Join(workDir, "custom.yaml")
	if err := os.WriteFile(customPath, []byte("graphics:\n  max_fps: 144\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(customPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Graphics.MaxFPS != 144 {
		t.Errorf("max_fps = %d, expected 144 from the custom path", cfg.Graphics.MaxFPS)
	}

	if _, err := Load(filepath.Join(workDir, "absent.yaml")); err == nil {
		t.Error("Load should fail when the custom path does not exist")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := Default()
	cfg.Graphics.MaxFPS = 90
	cfg.Debug.ShowFPS = true

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(UserPath()); err != nil {
		t.Fatalf("user config file missing: %v", err)
	}

	chdir(t, t.TempDir()) // no local layer
	loaded, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Graphics.MaxFPS != 90 || !loaded.Debug.ShowFPS {
		t.Errorf("round trip lost values: %+v", loaded.Graphics)
	}
}
