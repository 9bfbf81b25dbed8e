package spec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// wireSpec accepts the legacy plotly_config key next to renderer_config
type wireSpec struct {
	VizSpec
	PlotlyConfig *RendererConfig `json:"plotly_config,omitempty"`
}

// Parse builds a validated spec from raw input. Accepted inputs are *VizSpec
// and VizSpec values, JSON text as string, []byte or json.RawMessage, generic
// mappings and io.Reader streams of JSON. The input is never modified.
func Parse(raw any) (*VizSpec, error) {
	switch v := raw.(type) {
	case nil:
		return nil, &ParseError{Reason: "no spec given"}
	case *VizSpec:
		if v == nil {
			return nil, &ParseError{Reason: "no spec given"}
		}
		if v.validated {
			return v, nil
		}
		return finalize(v.Clone())
	case VizSpec:
		return finalize(v.Clone())
	case string:
		return ParseJSON([]byte(v))
	case []byte:
		return ParseJSON(v)
	case json.RawMessage:
		return ParseJSON(v)
	case map[string]any:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, &ParseError{Reason: "mapping is not JSON encodable", Err: err}
		}
		return ParseJSON(data)
	case io.Reader:
		data, err := io.ReadAll(v)
		if err != nil {
			return nil, &ParseError{Reason: "read spec", Err: err}
		}
		return ParseJSON(data)
	default:
		return nil, &ParseError{Reason: fmt.Sprintf("unsupported spec input %T", raw)}
	}
}

// MustParse is like Parse but panics on error
func MustParse(raw any) *VizSpec {
	s, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return s
}

// ParseJSON decodes a JSON document into a validated spec. Unknown top-level
// (and nested, except renderer config) fields are rejected.
func ParseJSON(data []byte) (*VizSpec, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, &ParseError{Reason: "empty document"}
	}
	if trimmed[0] != '{' {
		return nil, &ParseError{Reason: "spec must be a JSON object"}
	}

	decoder := json.NewDecoder(bytes.NewReader(trimmed))
	decoder.DisallowUnknownFields()

	var wire wireSpec
	if err := decoder.Decode(&wire); err != nil {
		return nil, &ParseError{Reason: "invalid JSON spec", Err: err}
	}
	if decoder.More() {
		return nil, &ParseError{Reason: "trailing data after spec object"}
	}

	var sections struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(trimmed, &sections); err != nil {
		return nil, &ParseError{Reason: "invalid JSON spec", Err: err}
	}
	if data := bytes.TrimSpace(sections.Data); len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, &ParseError{Reason: "data section is required"}
	}

	if wire.PlotlyConfig != nil {
		if wire.RendererConfig != nil {
			return nil, &ParseError{Reason: "renderer_config and plotly_config are mutually exclusive"}
		}
		wire.RendererConfig = wire.PlotlyConfig
	}

	s := wire.VizSpec
	return finalize(&s)
}

// finalize checks fields, normalizes and checks cross-field rules. Field
// checks run on the spec as given; every violation is reported at once.
func finalize(s *VizSpec) (*VizSpec, error) {
	violations := checkFields(s)

	normalize(s)
	violations = append(violations, checkSemantics(s)...)

	if len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	s.validated = true
	return s, nil
}

// normalize applies defaults and clears options the chart type ignores
func normalize(s *VizSpec) {
	if s.Version == "" {
		s.Version = Version
	}

	chart := &s.Chart
	if chart.Mode == "" {
		switch chart.Type {
		case ChartLine, ChartArea:
			chart.Mode = ModeLines
		case ChartScatter:
			chart.Mode = ModeMarkers
		}
	}
	if !chart.Type.ScatterFamily() {
		chart.Mode = ""
	}
	if chart.Type != ChartBar {
		chart.Orientation = ""
		chart.BarMode = ""
	} else if chart.Orientation == "" {
		chart.Orientation = OrientationVertical
	}
	if chart.Type != ChartHistogram {
		chart.HistNorm = ""
	}

	if s.Layout != nil && s.Layout.Height == nil {
		height := DefaultHeight
		s.Layout.Height = &height
	}
}
