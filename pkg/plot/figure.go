package plot

// Trace is one renderable data series, serialized with the field names of
// the Plotly figure schema. Builders create a fresh Trace per emitted series
// and never modify it after it has been appended to the output.
type Trace struct {
	Type        string   `json:"type"`
	Name        string   `json:"name,omitempty"`
	X           []any    `json:"x,omitempty"`
	Y           []any    `json:"y,omitempty"`
	Z           [][]any  `json:"z,omitempty"`
	Text        []any    `json:"text,omitempty"`
	Labels      []any    `json:"labels,omitempty"`
	Values      []any    `json:"values,omitempty"`
	Mode        string   `json:"mode,omitempty"`
	Orientation string   `json:"orientation,omitempty"`
	Fill        string   `json:"fill,omitempty"`
	StackGroup  string   `json:"stackgroup,omitempty"`
	XAxis       string   `json:"xaxis,omitempty"`
	YAxis       string   `json:"yaxis,omitempty"`
	HistNorm    string   `json:"histnorm,omitempty"`
	BoxPoints   string   `json:"boxpoints,omitempty"`
	Sort        *bool    `json:"sort,omitempty"`
	Opacity     *float64 `json:"opacity,omitempty"`
	Marker      *Marker  `json:"marker,omitempty"`
	Line        *Line    `json:"line,omitempty"`
}

// Marker styles the points or bars of a trace
type Marker struct {
	Size  int    `json:"size,omitempty"`
	Color string `json:"color,omitempty"`
}

// Line styles the connecting line of a scatter-family trace
type Line struct {
	Shape string `json:"shape,omitempty"`
	Color string `json:"color,omitempty"`
}

// Title is a text title of the figure or of an axis
type Title struct {
	Text string `json:"text"`
}

// Axis describes a cartesian axis of the layout
type Axis struct {
	Title      *Title `json:"title,omitempty"`
	Overlaying string `json:"overlaying,omitempty"`
	Side       string `json:"side,omitempty"`
}

// Layout holds the figure-level presentation options
type Layout struct {
	Title     *Title         `json:"title,omitempty"`
	XAxis     *Axis          `json:"xaxis,omitempty"`
	YAxis     *Axis          `json:"yaxis,omitempty"`
	XAxis2    *Axis          `json:"xaxis2,omitempty"`
	YAxis2    *Axis          `json:"yaxis2,omitempty"`
	HoverMode string         `json:"hovermode,omitempty"`
	Template  string         `json:"template,omitempty"`
	Colorway  []string       `json:"colorway,omitempty"`
	Legend    map[string]any `json:"legend,omitempty"`
	Height    int            `json:"height,omitempty"`
	Width     int            `json:"width,omitempty"`
	BarMode   string         `json:"barmode,omitempty"`
}

// Figure is a compiled chart: ordered traces plus layout
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Names returns the trace names in emission order
func (f *Figure) Names() []string {
	names := make([]string, 0, len(f.Data))
	for _, trace := range f.Data {
		names = append(names, trace.Name)
	}
	return names
}

// Types returns the trace types in emission order
func (f *Figure) Types() []string {
	types := make([]string, 0, len(f.Data))
	for _, trace := range f.Data {
		types = append(types, trace.Type)
	}
	return types
}
