// Package config provides the YAML engine configuration: sectioned settings
// loaded once at startup with default < local < user precedence, and saved
// back to the user file. The loaded value is passed explicitly to the
// components that need it; there is no global configuration state.
package config

// Config is the full engine configuration, grouped by section.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Audio    AudioConfig    `yaml:"audio"`
	Input    InputConfig    `yaml:"input"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Debug    DebugConfig    `yaml:"debug"`
	Build    BuildConfig    `yaml:"build"`
}

// GraphicsConfig covers resolution and presentation.
type GraphicsConfig struct {
	Width      int  `yaml:"resolution_width"`
	Height     int  `yaml:"resolution_height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	MaxFPS     int  `yaml:"max_fps"`
}

// AudioConfig covers mixer volumes. Audio playback itself is out of scope;
// the section is carried so user files round-trip intact.
type AudioConfig struct {
	MasterVolume float64 `yaml:"master_volume"`
	MusicVolume  float64 `yaml:"music_volume"`
	SFXVolume    float64 `yaml:"sfx_volume"`
	Mute         bool    `yaml:"mute"`
}

// InputConfig covers input device tuning.
type InputConfig struct {
	MouseSensitivity float64 `yaml:"mouse_sensitivity"`
	InvertY          bool    `yaml:"invert_y"`
	// HoldMs is how long a key without repeat events counts as held,
	// compensating for terminals reporting no key releases.
	HoldMs int `yaml:"hold_ms"`
}

// PhysicsConfig covers the simulation step.
type PhysicsConfig struct {
	Timestep          float64 `yaml:"timestep"`
	Gravity           float64 `yaml:"gravity"`
	SimulationQuality string  `yaml:"simulation_quality"`
	MaxBodies         int     `yaml:"max_bodies"`
}

// DebugConfig covers diagnostics.
type DebugConfig struct {
	LoggingLevel  string `yaml:"logging_level"`
	ShowFPS       bool   `yaml:"show_fps"`
	ShowDebugInfo bool   `yaml:"show_debug_info"`
}

// BuildConfig covers the setup/build tooling, read by `marsx setup`.
type BuildConfig struct {
	Compiler CompilerConfig `yaml:"compiler"`
	Packager PackagerConfig `yaml:"packager"`
	Version  VersionConfig  `yaml:"version"`
}

// CompilerConfig tunes the build invocation.
type CompilerConfig struct {
	OptimizationLevel string `yaml:"optimization_level"`
	DebugSymbols      bool   `yaml:"debug_symbols"`
	ParallelJobs      int    `yaml:"parallel_jobs"`
}

// PackagerConfig tunes release packaging.
type PackagerConfig struct {
	OneFile          bool `yaml:"onefile"`
	CompressionLevel int  `yaml:"compression_level"`
}

// VersionConfig is the release version stamped into builds.
type VersionConfig struct {
	Major       int    `yaml:"major"`
	Minor       int    `yaml:"minor"`
	Patch       int    `yaml:"patch"`
	ReleaseType string `yaml:"release_type"`
}
