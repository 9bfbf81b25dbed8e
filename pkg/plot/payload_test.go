package plot

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/raykavin/plotspec/pkg/core"
	"github.com/raykavin/plotspec/pkg/spec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompilePayload(t *testing.T) {
	table := core.MustTable(
		core.Column{Name: "x", Values: []any{1, 2, 3}},
		core.Column{Name: "A", Values: []any{1, math.NaN(), 3}},
		core.Column{Name: "B", Values: []any{3, 2, 1}},
	)

	payload, err := CompilePayload(table,
		`{"chart":{"type":"bar","barmode":"group"},"data":{"x":"x","y":["A","B"]},"renderer_config":{"scrollZoom":true}}`)
	require.NoError(t, err)
	assert.Equal(t, spec.Version, payload.VizSpecVersion)
	assert.Equal(t, true, payload.RendererConfig["scrollZoom"])
	assert.Equal(t, true, payload.RendererConfig["responsive"])

	encoded, err := payload.JSON()
	require.NoError(t, err)

	var wire map[string]any
	require.NoError(t, json.Unmarshal(encoded, &wire))
	assert.Equal(t, "1.0", wire["viz_spec_version"])
	assert.Contains(t, wire, "renderer_config")
	figure := wire["figure"].(map[string]any)
	traces := figure["data"].([]any)
	require.Len(t, traces, 2)
	assert.Equal(t, []any{1.0, nil, 3.0}, traces[0].(map[string]any)["y"])
	assert.Equal(t, "group", figure["layout"].(map[string]any)["barmode"])
}

func TestCompilePayload_EmptyRendererConfig(t *testing.T) {
	table := core.MustTable(core.Column{Name: "y", Values: []any{1}})

	payload, err := CompilePayload(table, `{"chart":{"type":"line"},"data":{"y":"y"}}`)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{}, payload.RendererConfig)

	encoded, err := payload.JSON()
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"renderer_config":{}`)
}

func TestPayload_RoundTrip(t *testing.T) {
	table := core.MustTable(
		core.Column{Name: "day", Values: []any{"2024-01-01", "2024-01-02"}},
		core.Column{Name: "a", Values: []any{1, 2}},
		core.Column{Name: "b", Values: []any{3, 4}},
	)

	raws := []string{
		`{"chart":{"type":"line"},"data":{"x":"day","y":["a","b"],"axis":{"y2_for":["b"]}},"layout":{"title":"T"}}`,
		`{"chart":{"type":"bar","orientation":"h"},"data":{"x":"day","y":"a"}}`,
		`{"chart":{"type":"pie"},"data":{"x":"day","y":"a"}}`,
		`{"chart":{"type":"histogram"},"data":{"x":"a"}}`,
		`{"chart":{"type":"box"},"data":{"y":["a","b"]}}`,
		`{"chart":{"type":"heatmap"},"data":{"x":"day","y":"a","z":"b"}}`,
	}

	for _, raw := range raws {
		payload, err := CompilePayload(table, raw)
		require.NoError(t, err, raw)

		encoded, err := payload.JSON()
		require.NoError(t, err)

		decoded, err := DecodePayload(encoded)
		require.NoError(t, err)

		assert.Equal(t, payload.Figure.Types(), decoded.Figure.Types(), raw)
		assert.Equal(t, payload.Figure.Names(), decoded.Figure.Names(), raw)
		assert.Equal(t, payload.Figure.Layout, decoded.Figure.Layout, raw)
		assert.Equal(t, payload.VizSpecVersion, decoded.VizSpecVersion)
	}
}

func TestDecodePayload(t *testing.T) {
	bare, err := DecodePayload([]byte(`{"data":[{"type":"bar","name":"A","y":[1,2]}],"layout":{"height":500}}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, bare.Figure.Names())
	assert.Equal(t, 500, bare.Figure.Layout.Height)
	assert.Equal(t, map[string]any{}, bare.RendererConfig)

	legacy, err := DecodePayload([]byte(`{"figure":{"data":[]},"plotly_config":{"responsive":false},"viz_spec_version":"1.0"}`))
	require.NoError(t, err)
	assert.Equal(t, false, legacy.RendererConfig["responsive"])
	assert.Empty(t, legacy.Figure.Data)

	_, err = DecodePayload([]byte(`[]`))
	require.Error(t, err)

	_, err = DecodePayload([]byte(`{"viz_spec_version":"1.0"}`))
	require.Error(t, err)

	_, err = DecodePayload([]byte(`{"figure":`))
	require.Error(t, err)
}

func TestNewPayload_GuardFailure(t *testing.T) {
	s := spec.MustParse(`{"chart":{"type":"line"},"data":{"y":"y"},"layout":{"legend":{"x":1}}}`)
	figure := &Figure{
		Data:   []Trace{},
		Layout: Layout{Legend: map[string]any{"x": math.Inf(1)}},
	}

	_, err := NewPayload(figure, s)
	compileError(t, err)
}
