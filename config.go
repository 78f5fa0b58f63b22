package fluxblock

import (
	"fmt"

	"github.com/viant/fluxblock/model/graph"
)

// Config is a serialisable representation of the service configuration.
// The zero value is usable; empty fields inherit defaults or settings.
type Config struct {
	// EditorMode enables category tree maintenance, nil defers to settings
	EditorMode *bool `json:"editorMode,omitempty" yaml:"editorMode,omitempty"`
	// Platform filters blocks, empty defers to settings
	Platform string `json:"platform,omitempty" yaml:"platform,omitempty"`
	// SettingsURL is an afs URL of a YAML settings document; empty keeps settings in memory
	SettingsURL string `json:"settingsURL,omitempty" yaml:"settingsURL,omitempty"`
	// PackBaseURL resolves relative pack locations
	PackBaseURL string `json:"packBaseURL,omitempty" yaml:"packBaseURL,omitempty"`
	// Packs lists pack documents loaded on start
	Packs   []string      `json:"packs,omitempty" yaml:"packs,omitempty"`
	Tracing TracingConfig `json:"tracing" yaml:"tracing"`
}

type TracingConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
	// Output is a trace file path, empty writes to stdout
	Output string `json:"output,omitempty" yaml:"output,omitempty"`
}

// DefaultConfig returns a Config with the editor enabled for every platform
func DefaultConfig() *Config {
	editorMode := true
	return &Config{
		EditorMode: &editorMode,
		Platform:   string(graph.PlatformAll),
	}
}

// Validate returns an error describing the first invalid setting, or nil
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.Platform != "" && !graph.Platform(c.Platform).Known() {
		return fmt.Errorf("platform %q is not one of %v", c.Platform, graph.Platforms())
	}
	for i, URL := range c.Packs {
		if URL == "" {
			return fmt.Errorf("packs[%d] is empty", i)
		}
	}
	if !c.Tracing.Enabled && c.Tracing.Output != "" {
		return fmt.Errorf("tracing.output is set but tracing is disabled")
	}
	return nil
}
