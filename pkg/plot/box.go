package plot

// buildBox builds one box trace per fan-out slice. Box traces always stay on
// the primary axes.
func buildBox(in Input) ([]Trace, error) {
	s := in.Spec
	data := s.Data

	parts, err := fanOut(in)
	if err != nil {
		return nil, err
	}

	columns := newColumnSet(in.Frame)
	traces := make([]Trace, 0, len(parts))
	for _, part := range parts {
		trace := Trace{
			Type:      "box",
			Name:      part.name,
			X:         columns.pick(data.X, part.rows),
			Y:         columns.pick(part.column, part.rows),
			Text:      columns.pick(data.Text, part.rows),
			BoxPoints: "outliers",
		}
		traces = append(traces, styled(trace, s))
	}

	return traces, nil
}
