package plot

import (
	"maps"
	"slices"

	"github.com/raykavin/plotspec/pkg/spec"
)

// Hydrate builds the figure layout from the layout section and the axis
// routing of a spec. A secondary axis is synthesized when any column is
// routed to it or when it has an explicit title, even with no trace on it.
// The secondary value axis is yaxis2 (overlaying y, on the right) for
// vertical charts. Horizontal bars carry their values on x, so they get
// xaxis2 (overlaying x, on top) instead and no yaxis2; yaxis2_title then
// titles xaxis2.
func Hydrate(s *spec.VizSpec) Layout {
	var layout Layout

	if s.Chart.Type == spec.ChartBar && s.Chart.BarMode != "" {
		layout.BarMode = string(s.Chart.BarMode)
	}

	var secondaryTitle string
	if l := s.Layout; l != nil {
		if l.Title != "" {
			layout.Title = &Title{Text: l.Title}
		}
		if l.XAxisTitle != "" {
			layout.XAxis = &Axis{Title: &Title{Text: l.XAxisTitle}}
		}
		if l.YAxisTitle != "" {
			layout.YAxis = &Axis{Title: &Title{Text: l.YAxisTitle}}
		}
		layout.HoverMode = string(l.HoverMode)
		layout.Template = l.Template
		layout.Colorway = slices.Clone(l.Colorway)
		layout.Legend = maps.Clone(l.Legend)
		if l.Height != nil {
			layout.Height = *l.Height
		}
		if l.Width != nil {
			layout.Width = *l.Width
		}
		secondaryTitle = l.YAxis2Title
	}

	if len(s.Data.Y2For()) > 0 || secondaryTitle != "" {
		axis := &Axis{}
		if secondaryTitle != "" {
			axis.Title = &Title{Text: secondaryTitle}
		}

		// horizontal bars carry their values on x
		if s.Chart.Type == spec.ChartBar && s.Chart.Orientation == spec.OrientationHorizontal {
			axis.Overlaying, axis.Side = "x", "top"
			layout.XAxis2 = axis
		} else {
			axis.Overlaying, axis.Side = "y", "right"
			layout.YAxis2 = axis
		}
	}

	return layout
}
