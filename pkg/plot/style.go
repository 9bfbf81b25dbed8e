package plot

import (
	"slices"

	"github.com/raykavin/plotspec/pkg/spec"
)

// Axis identifiers of the secondary axes
const (
	secondaryX = "x2"
	secondaryY = "y2"
)

// styleCaps lists the styling attributes a trace type exposes
type styleCaps struct {
	markerSize  bool
	markerColor bool
	lineShape   bool
	lineColor   bool
}

var traceCaps = map[string]styleCaps{
	"scatter":   {markerSize: true, markerColor: true, lineShape: true, lineColor: true},
	"bar":       {markerColor: true},
	"histogram": {markerColor: true},
	"box":       {markerSize: true, markerColor: true, lineColor: true},
}

// styled returns the trace with encodings and the mapped color of its display
// name applied. Opacity applies to every trace type; the rest only where the
// trace type supports it.
func styled(trace Trace, s *spec.VizSpec) Trace {
	caps := traceCaps[trace.Type]
	enc := s.Data.ResolvedEncodings()
	color := s.Data.ColorMap()[trace.Name]

	opacity := enc.Opacity
	trace.Opacity = &opacity

	var marker Marker
	if caps.markerSize {
		marker.Size = enc.MarkerSize
	}
	if caps.markerColor {
		marker.Color = color
	}
	if marker != (Marker{}) {
		trace.Marker = &marker
	}

	var line Line
	if caps.lineShape {
		line.Shape = string(enc.LineShape)
	}
	if caps.lineColor {
		line.Color = color
	}
	if line != (Line{}) {
		trace.Line = &line
	}

	return trace
}

// onSecondaryAxis reports whether the y column is routed to the secondary axis
func onSecondaryAxis(s *spec.VizSpec, column string) bool {
	return column != "" && slices.Contains(s.Data.Y2For(), column)
}
