package plot

import (
	"github.com/raykavin/plotspec/pkg/spec"
)

// buildScatterFamily builds line, scatter and area charts. Area traces fill
// to zero and share the configured stacking group.
func buildScatterFamily(in Input) ([]Trace, error) {
	s := in.Spec
	data := s.Data

	parts, err := fanOut(in)
	if err != nil {
		return nil, err
	}

	columns := newColumnSet(in.Frame)
	if data.X != "" {
		if coerced, ok := coerceDates(columns.all(data.X), in.Frame.Kind(data.X)); ok {
			columns.replace(data.X, coerced)
		}
	}

	var fill, stackGroup string
	if s.Chart.Type == spec.ChartArea {
		fill = "tozeroy"
		stackGroup = data.StackGroup()
	}

	traces := make([]Trace, 0, len(parts))
	for _, part := range parts {
		trace := Trace{
			Type:       "scatter",
			Name:       part.name,
			X:          columns.pick(data.X, part.rows),
			Y:          columns.pick(part.column, part.rows),
			Text:       columns.pick(data.Text, part.rows),
			Mode:       string(s.Chart.Mode),
			Fill:       fill,
			StackGroup: stackGroup,
		}
		if onSecondaryAxis(s, part.column) {
			trace.YAxis = secondaryY
		}
		traces = append(traces, styled(trace, s))
	}

	return traces, nil
}
