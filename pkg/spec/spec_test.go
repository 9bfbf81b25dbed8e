package spec

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validationError(t *testing.T, err error) *ValidationError {
	t.Helper()
	require.Error(t, err)
	require.ErrorIs(t, err, ErrValidation)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	return verr
}

func TestParse_Defaults(t *testing.T) {
	s, err := Parse(`{"chart":{"type":"line"},"data":{"x":"x","y":"y"}}`)
	require.NoError(t, err)

	assert.True(t, s.Validated())
	assert.Equal(t, Version, s.Version)
	assert.Equal(t, ModeLines, s.Chart.Mode)
	assert.Empty(t, s.Chart.Orientation)
	assert.Nil(t, s.Layout)
	assert.Nil(t, s.RendererConfig)

	enc := s.Data.ResolvedEncodings()
	assert.Equal(t, DefaultMarkerSize, enc.MarkerSize)
	assert.InDelta(t, DefaultOpacity, enc.Opacity, 1e-9)
	assert.Empty(t, enc.LineShape)
}

func TestParse_ModeDefaults(t *testing.T) {
	scatter := MustParse(`{"chart":{"type":"scatter"},"data":{"x":"x","y":"y"}}`)
	assert.Equal(t, ModeMarkers, scatter.Chart.Mode)

	area := MustParse(`{"chart":{"type":"area"},"data":{"x":"x","y":"y"}}`)
	assert.Equal(t, ModeLines, area.Chart.Mode)

	bar := MustParse(`{"chart":{"type":"bar","mode":"markers"},"data":{"x":"x","y":"y"}}`)
	assert.Empty(t, bar.Chart.Mode)
	assert.Equal(t, OrientationVertical, bar.Chart.Orientation)
}

func TestParse_ClearsIrrelevantOptions(t *testing.T) {
	s := MustParse(`{
		"chart": {"type": "line", "orientation": "h", "barmode": "stack", "histnorm": "percent"},
		"data": {"x": "x", "y": "y"}
	}`)
	assert.Empty(t, s.Chart.Orientation)
	assert.Empty(t, s.Chart.BarMode)
	assert.Empty(t, s.Chart.HistNorm)

	hist := MustParse(`{"chart":{"type":"histogram","histnorm":"none"},"data":{"x":"x"}}`)
	assert.Equal(t, HistNormNone, hist.Chart.HistNorm)
}

func TestParse_LayoutHeightDefault(t *testing.T) {
	s := MustParse(`{"chart":{"type":"line"},"data":{"y":"y"},"layout":{"title":"T"}}`)
	require.NotNil(t, s.Layout)
	require.NotNil(t, s.Layout.Height)
	assert.Equal(t, DefaultHeight, *s.Layout.Height)
}

func TestParse_ListY(t *testing.T) {
	s := MustParse(`{"chart":{"type":"bar","orientation":"v","barmode":"group"},"data":{"x":"x","y":["A","B"]}}`)
	assert.True(t, s.Data.Y.IsList())
	assert.Equal(t, []string{"A", "B"}, s.Data.Y.Names())
	assert.Equal(t, BarModeGroup, s.Chart.BarMode)
	assert.Equal(t, []string{"x", "A", "B"}, s.Data.ReferencedColumns())
}

func TestParse_ListYWithSeries(t *testing.T) {
	_, err := Parse(`{"chart":{"type":"line"},"data":{"x":"x","y":["A","B"],"series":{"by":"g"}}}`)
	verr := validationError(t, err)
	assert.True(t, verr.HasRule(RuleYListSeries))
}

func TestParse_HistogramWithoutXY(t *testing.T) {
	_, err := Parse(`{"chart":{"type":"histogram"},"data":{}}`)
	verr := validationError(t, err)
	assert.Equal(t, []Rule{RuleHistogramXY}, verr.Rules())
}

func TestParse_SemanticRules(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		rule Rule
	}{
		{
			name: "heatmap without z",
			raw:  `{"chart":{"type":"heatmap"},"data":{"x":"x","y":"y"}}`,
			rule: RuleHeatmapXYZ,
		},
		{
			name: "y2_for outside y",
			raw:  `{"chart":{"type":"line"},"data":{"x":"x","y":["a","b"],"axis":{"y2_for":["c"]}}}`,
			rule: RuleY2ForSubset,
		},
		{
			name: "empty y list",
			raw:  `{"chart":{"type":"line"},"data":{"x":"x","y":[]}}`,
			rule: RuleYListEmpty,
		},
		{
			name: "duplicate y list",
			raw:  `{"chart":{"type":"line"},"data":{"x":"x","y":["a","a"]}}`,
			rule: RuleYListDup,
		},
		{
			name: "area with markers",
			raw:  `{"chart":{"type":"area","mode":"markers"},"data":{"x":"x","y":"y"}}`,
			rule: RuleAreaMode,
		},
		{
			name: "unknown chart type",
			raw:  `{"chart":{"type":"donut"},"data":{"y":"y"}}`,
			rule: RuleEnum,
		},
		{
			name: "missing chart type",
			raw:  `{"chart":{},"data":{"y":"y"}}`,
			rule: RuleRequired,
		},
		{
			name: "marker size out of range",
			raw:  `{"chart":{"type":"scatter"},"data":{"y":"y","encodings":{"marker_size":0}}}`,
			rule: RuleRange,
		},
		{
			name: "opacity out of range",
			raw:  `{"chart":{"type":"scatter"},"data":{"y":"y","encodings":{"opacity":1.5}}}`,
			rule: RuleRange,
		},
		{
			name: "height out of range",
			raw:  `{"chart":{"type":"line"},"data":{"y":"y"},"layout":{"height":100}}`,
			rule: RuleRange,
		},
		{
			name: "bad hex color",
			raw:  `{"chart":{"type":"line"},"data":{"y":"y","colors":{"color_map":{"A":"#12"}}}}`,
			rule: RuleColor,
		},
		{
			name: "bad colorway entry",
			raw:  `{"chart":{"type":"line"},"data":{"y":"y"},"layout":{"colorway":["#zzzzzz"]}}`,
			rule: RuleColor,
		},
		{
			name: "unsupported version",
			raw:  `{"version":"2.0","chart":{"type":"line"},"data":{"y":"y"}}`,
			rule: RuleLiteral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.raw)
			verr := validationError(t, err)
			assert.True(t, verr.HasRule(tt.rule), "rules: %v", verr.Rules())
		})
	}
}

func TestParse_CollectsAllViolations(t *testing.T) {
	_, err := Parse(`{
		"chart": {"type": "line", "mode": "dots"},
		"data": {"y": "y", "encodings": {"marker_size": 99, "opacity": -1}}
	}`)
	verr := validationError(t, err)
	assert.Equal(t, []Rule{RuleEnum, RuleRange, RuleRange}, verr.Rules())
	assert.Contains(t, verr.Error(), "chart.mode")
}

func TestParse_CollectsFieldAndCrossFieldViolations(t *testing.T) {
	_, err := Parse(`{
		"chart": {"type": "line"},
		"data": {"y": ["a", "b"], "series": {"by": "g"}, "encodings": {"marker_size": 0}}
	}`)
	verr := validationError(t, err)
	assert.Equal(t, []Rule{RuleRange, RuleYListSeries}, verr.Rules())

	_, err = Parse(`{
		"chart": {"type": "heatmap"},
		"data": {"x": "x", "y": ["a", "a"], "axis": {"y2_for": ["c"]}},
		"layout": {"width": 10}
	}`)
	verr = validationError(t, err)
	assert.Equal(t, []Rule{RuleYListDup, RuleRange, RuleHeatmapXYZ, RuleY2ForSubset}, verr.Rules())
}

func TestParse_ParseErrors(t *testing.T) {
	inputs := map[string]any{
		"malformed json":      `{"chart":`,
		"not an object":       `["line"]`,
		"unknown field":       `{"chart":{"type":"line"},"data":{"y":"y"},"extra":1}`,
		"wrong y type":        `{"chart":{"type":"line"},"data":{"y":5}}`,
		"trailing data":       `{"chart":{"type":"line"},"data":{"y":"y"}} {}`,
		"empty":               "  ",
		"unsupported input":   42,
		"nil input":           nil,
		"both renderer keys":  `{"chart":{"type":"line"},"data":{"y":"y"},"renderer_config":{},"plotly_config":{}}`,
		"unknown data field":  `{"chart":{"type":"line"},"data":{"y":"y","color":"red"}}`,
		"wrong encoding type": `{"chart":{"type":"line"},"data":{"y":"y","encodings":{"opacity":"high"}}}`,
		"missing data":        `{"chart":{"type":"line"}}`,
		"null data":           `{"chart":{"type":"line"},"data":null}`,
		"null y entry":        `{"chart":{"type":"line"},"data":{"y":["a",null]}}`,
		"empty y entry":       `{"chart":{"type":"line"},"data":{"y":["a"," "]}}`,
		"empty y name":        `{"chart":{"type":"line"},"data":{"y":""}}`,
		"yaml without data":   map[string]any{"chart": map[string]any{"type": "bar"}},
	}

	for name, raw := range inputs {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(raw)
			require.Error(t, err)
			require.ErrorIs(t, err, ErrParse)
			require.NotErrorIs(t, err, ErrValidation)
		})
	}
}

func TestParse_RendererConfig(t *testing.T) {
	s := MustParse(`{
		"chart": {"type": "line"},
		"data": {"y": "y"},
		"renderer_config": {"scrollZoom": true, "somethingElse": 1}
	}`)
	require.NotNil(t, s.RendererConfig)
	assert.True(t, s.RendererConfig.Responsive)
	assert.True(t, s.RendererConfig.DisplayModeBar)
	assert.False(t, s.RendererConfig.DisplayLogo)
	assert.True(t, s.RendererConfig.ScrollZoom)

	legacy := MustParse(`{"chart":{"type":"line"},"data":{"y":"y"},"plotly_config":{"displaylogo":true}}`)
	require.NotNil(t, legacy.RendererConfig)
	assert.True(t, legacy.RendererConfig.DisplayLogo)
	assert.Equal(t, map[string]any{
		"responsive":     true,
		"displayModeBar": true,
		"displaylogo":    true,
		"scrollZoom":     false,
	}, legacy.RendererConfig.Map())
}

func TestParse_InputForms(t *testing.T) {
	raw := `{"chart":{"type":"scatter"},"data":{"x":"x","y":"y"}}`

	fromMap, err := Parse(map[string]any{
		"chart": map[string]any{"type": "scatter"},
		"data":  map[string]any{"x": "x", "y": "y"},
	})
	require.NoError(t, err)

	fromReader, err := Parse(strings.NewReader(raw))
	require.NoError(t, err)

	fromBytes, err := Parse([]byte(raw))
	require.NoError(t, err)

	assert.Equal(t, fromMap.Chart, fromReader.Chart)
	assert.Equal(t, fromBytes.Data.ReferencedColumns(), fromReader.Data.ReferencedColumns())
}

func TestParse_ValidatedPassThrough(t *testing.T) {
	s := MustParse(`{"chart":{"type":"line"},"data":{"y":"y"}}`)

	again, err := Parse(s)
	require.NoError(t, err)
	assert.Same(t, s, again)

	unvalidated := &VizSpec{
		Chart: ChartSpec{Type: ChartScatter},
		Data:  DataSpec{X: "x", Y: Column("y")},
	}
	parsed, err := Parse(unvalidated)
	require.NoError(t, err)
	assert.NotSame(t, unvalidated, parsed)
	assert.False(t, unvalidated.Validated())
	assert.Empty(t, unvalidated.Chart.Mode)
	assert.Equal(t, ModeMarkers, parsed.Chart.Mode)

	_, err = Parse(VizSpec{
		Chart: ChartSpec{Type: ChartLine},
		Data:  DataSpec{Y: ColumnList("a", "b"), Series: &SeriesSpec{By: "g"}},
	})
	validationError(t, err)
}

func TestParseYAML(t *testing.T) {
	s, err := ParseYAML([]byte(`
chart:
  type: bar
  orientation: h
data:
  x: region
  y: [sales, cost]
  axis:
    y2_for: [cost]
layout:
  title: Sales
  height: 600
`))
	require.NoError(t, err)
	assert.Equal(t, OrientationHorizontal, s.Chart.Orientation)
	assert.Equal(t, []string{"cost"}, s.Data.Y2For())
	assert.Equal(t, 600, *s.Layout.Height)

	_, err = ParseYAML([]byte("- a\n- b\n"))
	require.ErrorIs(t, err, ErrParse)
}

func TestVizSpec_Clone(t *testing.T) {
	s := MustParse(`{
		"chart": {"type": "line"},
		"data": {"x": "x", "y": ["a", "b"], "labels": {"y": {"a": "Alpha"}}},
		"layout": {"colorway": ["#112233"]}
	}`)

	clone := s.Clone()
	clone.Data.Labels.Y["a"] = "changed"
	clone.Layout.Colorway[0] = "red"

	assert.Equal(t, "Alpha", s.Data.YLabels()["a"])
	assert.Equal(t, "#112233", s.Layout.Colorway[0])
	assert.False(t, clone.Validated())
}

func TestVizSpec_JSON(t *testing.T) {
	s := MustParse(`{"chart":{"type":"line"},"data":{"x":"x","y":["a"]}}`)

	data, err := s.JSON()
	require.NoError(t, err)

	again, err := ParseJSON(data)
	require.NoError(t, err)
	assert.Equal(t, s.Chart, again.Chart)
	assert.True(t, again.Data.Y.IsList())
}

func TestValidColor(t *testing.T) {
	assert.True(t, ValidColor("#aabbcc"))
	assert.True(t, ValidColor("#AABBCCDD"))
	assert.True(t, ValidColor("steelblue"))
	assert.False(t, ValidColor("#abc"))
	assert.False(t, ValidColor(" "))
}
