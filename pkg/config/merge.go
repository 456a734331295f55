// merge.go — Layer JSON overrides onto a named preset.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// ForPreset returns a copy of the named preset. An empty name selects DefaultPreset.
func ForPreset(name string) (Config, error) {
	if name == "" {
		name = DefaultPreset
	}
	cfg, ok := Presets[strings.ToLower(name)]
	if !ok {
		return Config{}, fmt.Errorf("unknown preset %q (available: %s)", name, strings.Join(PresetNames(), ", "))
	}
	return cfg, nil
}

// Merge decodes data on top of the preset it names (or fallback when it
// names none). Only keys present in data replace preset values.
// Returns warnings for non-fatal issues.
func Merge(fallback string, data []byte) (Config, []string, error) {
	var head struct {
		Preset string `json:"preset"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return Config{}, nil, fmt.Errorf("parse config: %w", err)
	}

	name := head.Preset
	if name == "" {
		name = fallback
	}
	cfg, err := ForPreset(name)
	if err != nil {
		return Config{}, nil, err
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, nil, fmt.Errorf("parse config: %w", err)
	}

	warnings := resolveDevice(&cfg)
	return cfg, warnings, nil
}

// Load reads a JSON config file and merges it onto its preset.
func Load(path, fallback string) (Config, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, nil, fmt.Errorf("read config: %w", err)
	}
	return Merge(fallback, data)
}

// resolveDevice applies Canvas.Device dimensions when the name is known.
func resolveDevice(cfg *Config) []string {
	if cfg.Canvas.Device == "" {
		return nil
	}
	dims, ok := Devices[strings.ToLower(cfg.Canvas.Device)]
	if !ok {
		return []string{fmt.Sprintf("unknown device %q — keeping %dx%d", cfg.Canvas.Device, cfg.Canvas.Width, cfg.Canvas.Height)}
	}
	cfg.Canvas.Width, cfg.Canvas.Height = dims[0], dims[1]
	return nil
}
