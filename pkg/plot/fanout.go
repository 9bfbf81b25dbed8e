package plot

// slice is one trace worth of rows, produced by the fan-out policy
type slice struct {
	name   string // display name after label resolution
	column string // y column backing the trace
	rows   []int  // nil selects every row
}

// fanOut picks exactly one of three policies from the shape of the spec:
// one slice per list-y column, one per series group, or a single slice.
func fanOut(in Input) ([]slice, error) {
	s := in.Spec
	data := s.Data

	switch {
	case data.Y.IsList() && data.SeriesBy() == "":
		columns := data.Y.Names()
		out := make([]slice, 0, len(columns))
		for _, column := range columns {
			out = append(out, slice{
				name:   ColumnLabel(s, column),
				column: column,
			})
		}
		return out, nil

	case data.SeriesBy() != "":
		column := data.Y.First()
		groups, err := in.Frame.GroupBy(data.SeriesBy())
		if err != nil {
			return nil, &CompileError{
				ChartType: s.Chart.Type,
				Reason:    "group by series column",
				Err:       err,
			}
		}

		fallback := ColumnLabel(s, column)
		out := make([]slice, 0, len(groups))
		for _, group := range groups {
			out = append(out, slice{
				name:   SeriesLabel(s, group.Key, fallback),
				column: column,
				rows:   group.Rows,
			})
		}
		return out, nil

	default:
		column := data.Y.First()
		name := data.Name
		if name == "" {
			name = ColumnLabel(s, column)
		}
		return []slice{{name: name, column: column}}, nil
	}
}
