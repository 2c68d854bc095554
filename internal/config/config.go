// ABOUTME: Settings loading with global + project config merge.
// ABOUTME: JSON-based configuration using encoding/json; project values win.

package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Settings holds the merged configuration.
type Settings struct {
	// DefaultApp is the profile used when --app is not given.
	DefaultApp string `json:"default_app,omitempty"`
	// DefaultMux is the multiplexer used when --mux is not given.
	DefaultMux string `json:"default_mux,omitempty"`
	// Lossy permits the plain-CR fallback when no scheme fits.
	Lossy bool `json:"lossy,omitempty"`
	// EscTimeoutMs overrides the lone-ESC flush timeout in milliseconds.
	EscTimeoutMs int `json:"esc_timeout_ms,omitempty"`
	// Verbose enables debug logging.
	Verbose bool `json:"verbose,omitempty"`
}

// Load reads and merges global and project-local settings.
// Project settings override global settings.
func Load(projectRoot string) (*Settings, error) {
	global, err := loadFile(GlobalConfigFile())
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := loadFile(ProjectConfigFile(projectRoot))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	return merge(global, project), nil
}

// loadFile reads a Settings from a JSON file. Returns zero Settings if the
// file does not exist.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge overlays project settings onto global settings.
// Non-zero project values override global values.
func merge(global, project *Settings) *Settings {
	if global == nil {
		global = &Settings{}
	}
	if project == nil {
		return global
	}

	result := *global

	if project.DefaultApp != "" {
		result.DefaultApp = project.DefaultApp
	}
	if project.DefaultMux != "" {
		result.DefaultMux = project.DefaultMux
	}
	if project.Lossy {
		result.Lossy = true
	}
	if project.EscTimeoutMs != 0 {
		result.EscTimeoutMs = project.EscTimeoutMs
	}
	if project.Verbose {
		result.Verbose = true
	}

	return &result
}
