package spec

import (
	"encoding/json"
	"maps"
	"slices"
)

// Default values applied during normalization
const (
	DefaultMarkerSize = 6
	DefaultOpacity    = 0.9
	DefaultHeight     = 450
)

// VizSpec is the root of a chart request. Values returned by Parse are
// validated and must be treated as read-only.
type VizSpec struct {
	Version        string          `json:"version"`
	Chart          ChartSpec       `json:"chart"`
	Data           DataSpec        `json:"data"`
	Layout         *LayoutSpec     `json:"layout,omitempty"`
	RendererConfig *RendererConfig `json:"renderer_config,omitempty"`

	validated bool
}

// ChartSpec selects the chart type and its type-specific options
type ChartSpec struct {
	Type        ChartType   `json:"type"`
	Mode        Mode        `json:"mode,omitempty"`
	Orientation Orientation `json:"orientation,omitempty"`
	BarMode     BarMode     `json:"barmode,omitempty"`
	HistNorm    HistNorm    `json:"histnorm,omitempty"`
}

// DataSpec binds table columns to chart channels
type DataSpec struct {
	FrameName string  `json:"frame_name,omitempty"`
	X         string  `json:"x,omitempty"`
	Y         Columns `json:"y"`
	Z         string  `json:"z,omitempty"`
	Text      string  `json:"text,omitempty"`
	Name      string  `json:"name,omitempty"`

	Series    *SeriesSpec    `json:"series,omitempty"`
	Axis      *AxisSpec      `json:"axis,omitempty"`
	Encodings *EncodingsSpec `json:"encodings,omitempty"`
	Labels    *LabelsSpec    `json:"labels,omitempty"`
	Colors    *ColorsSpec    `json:"colors,omitempty"`
}

// SeriesSpec splits the table into one trace per distinct value of By
type SeriesSpec struct {
	By string `json:"by,omitempty"`
}

// AxisSpec routes y columns to the secondary axis and groups area stacks
type AxisSpec struct {
	Y2For          []string `json:"y2_for,omitempty"`
	AreaStackGroup string   `json:"area_stackgroup,omitempty"`
}

// EncodingsSpec holds per-trace styling
type EncodingsSpec struct {
	MarkerSize *int      `json:"marker_size,omitempty"`
	Opacity    *float64  `json:"opacity,omitempty"`
	LineShape  LineShape `json:"line_shape,omitempty"`
}

// LabelsSpec maps raw column names and series keys to display names
type LabelsSpec struct {
	Y      map[string]string `json:"y,omitempty"`
	Series map[string]string `json:"series,omitempty"`
}

// ColorsSpec maps display names to colors
type ColorsSpec struct {
	ColorMap map[string]string `json:"color_map,omitempty"`
}

// LayoutSpec holds presentation-only options
type LayoutSpec struct {
	Title       string         `json:"title,omitempty"`
	XAxisTitle  string         `json:"xaxis_title,omitempty"`
	YAxisTitle  string         `json:"yaxis_title,omitempty"`
	YAxis2Title string         `json:"yaxis2_title,omitempty"`
	HoverMode   HoverMode      `json:"hovermode,omitempty"`
	Template    string         `json:"template,omitempty"`
	Colorway    []string       `json:"colorway,omitempty"`
	Legend      map[string]any `json:"legend,omitempty"`
	Height      *int           `json:"height,omitempty"`
	Width       *int           `json:"width,omitempty"`
}

// Encodings is the resolved styling with defaults applied
type Encodings struct {
	MarkerSize int
	Opacity    float64
	LineShape  LineShape
}

// SeriesBy returns the series split column, or ""
func (d DataSpec) SeriesBy() string {
	if d.Series == nil {
		return ""
	}
	return d.Series.By
}

// Y2For returns the columns routed to the secondary axis
func (d DataSpec) Y2For() []string {
	if d.Axis == nil {
		return nil
	}
	return d.Axis.Y2For
}

// StackGroup returns the area stacking group, or ""
func (d DataSpec) StackGroup() string {
	if d.Axis == nil {
		return ""
	}
	return d.Axis.AreaStackGroup
}

// ResolvedEncodings returns the encodings with defaults for anything unset
func (d DataSpec) ResolvedEncodings() Encodings {
	enc := Encodings{
		MarkerSize: DefaultMarkerSize,
		Opacity:    DefaultOpacity,
	}
	if d.Encodings == nil {
		return enc
	}
	if d.Encodings.MarkerSize != nil {
		enc.MarkerSize = *d.Encodings.MarkerSize
	}
	if d.Encodings.Opacity != nil {
		enc.Opacity = *d.Encodings.Opacity
	}
	enc.LineShape = d.Encodings.LineShape
	return enc
}

// YLabels returns the column display-name mapping
func (d DataSpec) YLabels() map[string]string {
	if d.Labels == nil {
		return nil
	}
	return d.Labels.Y
}

// SeriesLabels returns the series-key display-name mapping
func (d DataSpec) SeriesLabels() map[string]string {
	if d.Labels == nil {
		return nil
	}
	return d.Labels.Series
}

// ColorMap returns the display-name color mapping
func (d DataSpec) ColorMap() map[string]string {
	if d.Colors == nil {
		return nil
	}
	return d.Colors.ColorMap
}

// ReferencedColumns lists every column the spec binds, without duplicates
func (d DataSpec) ReferencedColumns() []string {
	columns := make([]string, 0, 4+len(d.Y.names))
	add := func(name string) {
		if name != "" && !slices.Contains(columns, name) {
			columns = append(columns, name)
		}
	}

	add(d.X)
	for _, name := range d.Y.names {
		add(name)
	}
	add(d.Z)
	add(d.Text)
	add(d.SeriesBy())
	return columns
}

// Validated reports whether the spec went through Parse successfully
func (s *VizSpec) Validated() bool {
	return s != nil && s.validated
}

// JSON returns the canonical JSON form of the spec
func (s *VizSpec) JSON() ([]byte, error) {
	return json.Marshal(s)
}

// Clone returns a deep copy of the spec. The validated flag is not carried
// over so the copy can be edited and parsed again.
func (s *VizSpec) Clone() *VizSpec {
	out := &VizSpec{
		Version: s.Version,
		Chart:   s.Chart,
		Data:    s.Data.clone(),
	}

	if s.Layout != nil {
		layout := *s.Layout
		layout.Colorway = slices.Clone(s.Layout.Colorway)
		layout.Legend = maps.Clone(s.Layout.Legend)
		layout.Height = clonePtr(s.Layout.Height)
		layout.Width = clonePtr(s.Layout.Width)
		out.Layout = &layout
	}

	if s.RendererConfig != nil {
		cfg := *s.RendererConfig
		cfg.ModeBarButtonsToRemove = slices.Clone(s.RendererConfig.ModeBarButtonsToRemove)
		out.RendererConfig = &cfg
	}

	return out
}

func (d DataSpec) clone() DataSpec {
	out := d
	out.Y = Columns{names: slices.Clone(d.Y.names), list: d.Y.list}

	if d.Series != nil {
		series := *d.Series
		out.Series = &series
	}
	if d.Axis != nil {
		axis := AxisSpec{
			Y2For:          slices.Clone(d.Axis.Y2For),
			AreaStackGroup: d.Axis.AreaStackGroup,
		}
		out.Axis = &axis
	}
	if d.Encodings != nil {
		enc := EncodingsSpec{
			MarkerSize: clonePtr(d.Encodings.MarkerSize),
			Opacity:    clonePtr(d.Encodings.Opacity),
			LineShape:  d.Encodings.LineShape,
		}
		out.Encodings = &enc
	}
	if d.Labels != nil {
		out.Labels = &LabelsSpec{
			Y:      maps.Clone(d.Labels.Y),
			Series: maps.Clone(d.Labels.Series),
		}
	}
	if d.Colors != nil {
		out.Colors = &ColorsSpec{ColorMap: maps.Clone(d.Colors.ColorMap)}
	}
	return out
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
