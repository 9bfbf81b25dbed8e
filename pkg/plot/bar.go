package plot

import (
	"github.com/raykavin/plotspec/pkg/spec"
)

// buildBar builds one bar trace per fan-out slice. Horizontal bars swap the
// x and y inputs, so secondary axis routing moves to the x axis.
func buildBar(in Input) ([]Trace, error) {
	s := in.Spec
	data := s.Data
	horizontal := s.Chart.Orientation == spec.OrientationHorizontal

	parts, err := fanOut(in)
	if err != nil {
		return nil, err
	}

	columns := newColumnSet(in.Frame)
	traces := make([]Trace, 0, len(parts))
	for _, part := range parts {
		categories := columns.pick(data.X, part.rows)
		values := columns.pick(part.column, part.rows)

		trace := Trace{
			Type:        "bar",
			Name:        part.name,
			X:           categories,
			Y:           values,
			Text:        columns.pick(data.Text, part.rows),
			Orientation: string(s.Chart.Orientation),
		}
		if horizontal {
			trace.X, trace.Y = values, categories
		}

		if onSecondaryAxis(s, part.column) {
			if horizontal {
				trace.XAxis = secondaryX
			} else {
				trace.YAxis = secondaryY
			}
		}
		traces = append(traces, styled(trace, s))
	}

	return traces, nil
}
