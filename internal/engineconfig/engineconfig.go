package engineconfig

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// EngineConfigPath is the path to the engine config file, relative to the process working directory.
const EngineConfigPath = "config/engine.json"

// EnginePrefs holds viewer-only preferences (debug overlays, grid, zoom). Persisted across runs.
// Scene content is separate and lives in YAML scene files.
type EnginePrefs struct {
	ShowFPS       bool    `json:"show_fps"`
	ShowBodyCount bool    `json:"show_body_count"`
	GridVisible   bool    `json:"grid_visible"`
	PixelsPerUnit float64 `json:"pixels_per_unit,omitempty"`
	StartPaused   bool    `json:"start_paused"`
}

// Default returns default engine preferences (debug overlays off, grid on, 8 px per world unit).
func Default() EnginePrefs {
	return EnginePrefs{
		ShowFPS:       false,
		ShowBodyCount: false,
		GridVisible:   true,
		PixelsPerUnit: 8,
		StartPaused:   false,
	}
}

// Load reads engine preferences from config/engine.json. If the file is missing or invalid,
// returns Default() and does not create a file.
func Load() (EnginePrefs, error) {
	data, err := os.ReadFile(EngineConfigPath)
	if err != nil {
		return Default(), nil
	}
	var p EnginePrefs
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	if p.PixelsPerUnit <= 0 {
		p.PixelsPerUnit = Default().PixelsPerUnit
	}
	return p, nil
}

// Save writes engine preferences to config/engine.json, creating the config directory if needed.
func Save(p EnginePrefs) error {
	dir := filepath.Dir(EngineConfigPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(EngineConfigPath, data, 0644)
}
