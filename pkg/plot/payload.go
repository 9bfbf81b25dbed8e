package plot

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/raykavin/plotspec/pkg/spec"
)

// Payload is the wire document handed to renderers
type Payload struct {
	Figure         Figure         `json:"figure"`
	RendererConfig map[string]any `json:"renderer_config"`
	VizSpecVersion string         `json:"viz_spec_version"`
}

// NewPayload wraps a compiled figure. The payload is round-tripped through the
// JSON encoder and decoder before it is returned; failure there is a
// *CompileError.
func NewPayload(figure *Figure, s *spec.VizSpec) (*Payload, error) {
	config := map[string]any{}
	if s.RendererConfig != nil {
		config = s.RendererConfig.Map()
	}

	payload := &Payload{
		Figure:         *figure,
		RendererConfig: config,
		VizSpecVersion: s.Version,
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, &CompileError{ChartType: s.Chart.Type, Reason: "encode payload", Err: err}
	}
	if _, err := DecodePayload(encoded); err != nil {
		return nil, &CompileError{ChartType: s.Chart.Type, Reason: "decode payload", Err: err}
	}

	return payload, nil
}

// JSON returns the compact wire form of the payload
func (p *Payload) JSON() ([]byte, error) {
	return json.Marshal(p)
}

// wirePayload accepts the legacy plotly_config key and bare figures
type wirePayload struct {
	Figure         *Figure        `json:"figure"`
	RendererConfig map[string]any `json:"renderer_config"`
	PlotlyConfig   map[string]any `json:"plotly_config"`
	VizSpecVersion string         `json:"viz_spec_version"`

	Data   []Trace `json:"data"`
	Layout *Layout `json:"layout"`
}

// DecodePayload parses a wire payload. A bare figure document
// ({"data": [...], "layout": {...}}) is accepted as well and gets an empty
// renderer config.
func DecodePayload(data []byte) (*Payload, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("plot: payload must be a JSON object")
	}

	var wire wirePayload
	if err := json.Unmarshal(trimmed, &wire); err != nil {
		return nil, fmt.Errorf("plot: decode payload: %w", err)
	}

	payload := &Payload{
		RendererConfig: wire.RendererConfig,
		VizSpecVersion: wire.VizSpecVersion,
	}
	if payload.RendererConfig == nil {
		payload.RendererConfig = wire.PlotlyConfig
	}
	if payload.RendererConfig == nil {
		payload.RendererConfig = map[string]any{}
	}

	switch {
	case wire.Figure != nil:
		payload.Figure = *wire.Figure
	case wire.Data != nil || wire.Layout != nil:
		payload.Figure.Data = wire.Data
		if wire.Layout != nil {
			payload.Figure.Layout = *wire.Layout
		}
	default:
		return nil, fmt.Errorf("plot: payload holds neither a figure nor figure data")
	}

	if payload.Figure.Data == nil {
		payload.Figure.Data = []Trace{}
	}
	return payload, nil
}
