package plot

// buildHistogram builds a single histogram trace over x, or over y when no
// x column is bound. A y list may name one column only.
func buildHistogram(in Input) ([]Trace, error) {
	s := in.Spec
	data := s.Data
	if names := data.Y.Names(); data.Y.IsList() && len(names) > 1 {
		return nil, compileErrorf(s.Chart.Type,
			"histogram takes a single y column, got %d", len(names))
	}
	columns := newColumnSet(in.Frame)

	column := data.X
	if column == "" {
		column = data.Y.First()
	}

	name := data.Name
	if name == "" {
		name = ColumnLabel(s, column)
	}

	trace := Trace{
		Type:     "histogram",
		Name:     name,
		HistNorm: string(s.Chart.HistNorm),
	}
	if data.X != "" {
		trace.X = columns.pick(data.X, nil)
	} else {
		trace.Y = columns.pick(column, nil)
	}

	return []Trace{styled(trace, s)}, nil
}
