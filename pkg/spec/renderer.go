package spec

import (
	"encoding/json"
	"slices"
)

// RendererConfig carries options for the client-side charting library.
// Unknown fields are ignored when decoding.
type RendererConfig struct {
	Responsive             bool     `json:"responsive"`
	DisplayModeBar         bool     `json:"displayModeBar"`
	DisplayLogo            bool     `json:"displaylogo"`
	ScrollZoom             bool     `json:"scrollZoom"`
	ModeBarButtonsToRemove []string `json:"modeBarButtonsToRemove,omitempty"`
}

// DefaultRendererConfig returns the renderer defaults
func DefaultRendererConfig() RendererConfig {
	return RendererConfig{
		Responsive:     true,
		DisplayModeBar: true,
	}
}

// UnmarshalJSON fills unset fields with defaults and drops unknown keys,
// even when the enclosing decoder rejects unknown fields.
func (c *RendererConfig) UnmarshalJSON(data []byte) error {
	type plain RendererConfig
	cfg := plain(DefaultRendererConfig())
	if err := json.Unmarshal(data, &cfg); err != nil {
		return err
	}
	*c = RendererConfig(cfg)
	return nil
}

// Map returns the config as a JSON-ready mapping
func (c RendererConfig) Map() map[string]any {
	out := map[string]any{
		"responsive":     c.Responsive,
		"displayModeBar": c.DisplayModeBar,
		"displaylogo":    c.DisplayLogo,
		"scrollZoom":     c.ScrollZoom,
	}
	if c.ModeBarButtonsToRemove != nil {
		out["modeBarButtonsToRemove"] = slices.Clone(c.ModeBarButtonsToRemove)
	}
	return out
}
