package plot

// buildPie builds a single pie trace. Slice names come from series.by when
// it is set, otherwise from x; values always come from y. Slices keep the
// order of the table.
func buildPie(in Input) ([]Trace, error) {
	s := in.Spec
	data := s.Data
	if data.Y.IsList() {
		return nil, compileErrorf(s.Chart.Type, "pie does not support a list of y columns")
	}

	namesColumn := data.X
	if by := data.SeriesBy(); by != "" {
		namesColumn = by
	}
	valuesColumn := data.Y.First()

	if namesColumn == "" || valuesColumn == "" {
		return nil, compileErrorf(s.Chart.Type,
			"pie requires a names column (x or series.by) and a values column (y)")
	}

	name := data.Name
	if name == "" {
		name = ColumnLabel(s, valuesColumn)
	}

	columns := newColumnSet(in.Frame)
	unsorted := false
	trace := Trace{
		Type:   "pie",
		Name:   name,
		Labels: columns.pick(namesColumn, nil),
		Values: columns.pick(valuesColumn, nil),
		Text:   columns.pick(data.Text, nil),
		Sort:   &unsorted,
	}

	return []Trace{styled(trace, s)}, nil
}
