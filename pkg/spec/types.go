package spec

import "slices"

// Version is the only spec version understood by this package
const Version = "1.0"

// ChartType identifies the chart family requested by a spec
type ChartType string

const (
	ChartLine      ChartType = "line"
	ChartScatter   ChartType = "scatter"
	ChartBar       ChartType = "bar"
	ChartHistogram ChartType = "histogram"
	ChartBox       ChartType = "box"
	ChartHeatmap   ChartType = "heatmap"
	ChartPie       ChartType = "pie"
	ChartArea      ChartType = "area"
)

var chartTypes = []ChartType{
	ChartLine, ChartScatter, ChartBar, ChartHistogram,
	ChartBox, ChartHeatmap, ChartPie, ChartArea,
}

// ChartTypes returns every supported chart type
func ChartTypes() []ChartType {
	return slices.Clone(chartTypes)
}

// Valid reports whether the chart type belongs to the closed set
func (c ChartType) Valid() bool {
	return slices.Contains(chartTypes, c)
}

// ScatterFamily reports whether the type is drawn with scatter traces
func (c ChartType) ScatterFamily() bool {
	return c == ChartLine || c == ChartScatter || c == ChartArea
}

// Mode is the drawing mode of scatter-family traces
type Mode string

const (
	ModeLines        Mode = "lines"
	ModeMarkers      Mode = "markers"
	ModeLinesMarkers Mode = "lines+markers"
)

// Valid reports whether the mode is known
func (m Mode) Valid() bool {
	return m == ModeLines || m == ModeMarkers || m == ModeLinesMarkers
}

// Orientation of bar charts
type Orientation string

const (
	OrientationVertical   Orientation = "v"
	OrientationHorizontal Orientation = "h"
)

// Valid reports whether the orientation is known
func (o Orientation) Valid() bool {
	return o == OrientationVertical || o == OrientationHorizontal
}

// BarMode controls how bar traces sharing an axis are arranged
type BarMode string

const (
	BarModeGroup    BarMode = "group"
	BarModeStack    BarMode = "stack"
	BarModeRelative BarMode = "relative"
)

// Valid reports whether the bar mode is known
func (b BarMode) Valid() bool {
	return b == BarModeGroup || b == BarModeStack || b == BarModeRelative
}

// HistNorm is the histogram normalization
type HistNorm string

const (
	HistNormNone        HistNorm = "none"
	HistNormPercent     HistNorm = "percent"
	HistNormProbability HistNorm = "probability"
	HistNormDensity     HistNorm = "density"
)

// Valid reports whether the normalization is known
func (h HistNorm) Valid() bool {
	switch h {
	case HistNormNone, HistNormPercent, HistNormProbability, HistNormDensity:
		return true
	}
	return false
}

// HoverMode is the layout hover behaviour
type HoverMode string

const (
	HoverX        HoverMode = "x"
	HoverY        HoverMode = "y"
	HoverClosest  HoverMode = "closest"
	HoverXUnified HoverMode = "x unified"
	HoverYUnified HoverMode = "y unified"
)

// Valid reports whether the hover mode is known
func (h HoverMode) Valid() bool {
	switch h {
	case HoverX, HoverY, HoverClosest, HoverXUnified, HoverYUnified:
		return true
	}
	return false
}

// LineShape is the interpolation used between line points
type LineShape string

const (
	LineLinear LineShape = "linear"
	LineSpline LineShape = "spline"
)

// Valid reports whether the line shape is known
func (l LineShape) Valid() bool {
	return l == LineLinear || l == LineSpline
}
