package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/engine.yaml
var defaultEngineYAML []byte

// Well-known config file locations. The local file sits next to the working
// directory for development; the user file is the single writable location.
const (
	localFileName = "marsx.yaml"
	userDirName   = ".marsx"
	userFileName  = "config.yaml"
)

// Load builds the effective configuration: embedded defaults, overridden
// per-key by the local file, overridden per-key by the user file. A missing
// layer is skipped silently; a present but unparsable layer is an error.
// When customPath is non-empty it replaces the whole search order.
func Load(customPath string) (Config, error) {
	var cfg Config

	if err := yaml.Unmarshal(defaultEngineYAML, &cfg); err != nil {
		return cfg, fmt.Errorf("config: corrupt embedded defaults: %w", err)
	}

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{localFileName, UserPath()} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		// Sequential unmarshal into the same struct: only keys present in
		// this layer override, everything else keeps the earlier value.
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: cannot parse %s: %w", path, err)
		}
	}

	return cfg, nil
}

// Save writes the configuration to the user file, creating the directory
// as needed.
func Save(cfg Config) error {
	path := UserPath()
	if path == "" {
		return fmt.Errorf("config: cannot resolve user config path")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: cannot create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: cannot encode config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: cannot write %s: %w", path, err)
	}
	return nil
}

// UserPath returns the user config file location, or empty when the home
// directory is unavailable.
func UserPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, userDirName, userFileName)
}

// Default returns the embedded default configuration.
func Default() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultEngineYAML, &cfg); err != nil {
		// Embedded defaults are compiled in; failure here is a build defect.
		panic(fmt.Sprintf("config: corrupt embedded defaults: %v", err))
	}
	return cfg
}
