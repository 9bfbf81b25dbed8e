package plot

import (
	"math"
	"slices"

	"github.com/raykavin/plotspec/pkg/core"
	"gonum.org/v1/gonum/mat"
)

// buildHeatmap pivots long-form (x, y, z) rows into a dense matrix whose rows
// follow the sorted unique y values and whose columns follow the sorted unique
// x values. Duplicate (x, y) pairs are rejected; cells without a row stay null.
func buildHeatmap(in Input) ([]Trace, error) {
	s := in.Spec
	data := s.Data
	if data.Y.IsList() {
		return nil, compileErrorf(s.Chart.Type, "heatmap does not support a list of y columns")
	}
	columns := newColumnSet(in.Frame)

	xs := columns.all(data.X)
	ys := columns.all(data.Y.First())
	zs := columns.all(data.Z)

	type cell struct{ x, y string }
	seen := make(map[cell]struct{}, len(xs))
	for row := range xs {
		key := cell{core.Key(xs[row]), core.Key(ys[row])}
		if _, dup := seen[key]; dup {
			return nil, compileErrorf(s.Chart.Type,
				"heatmap requires unique (x, y) pairs, found (%s, %s) more than once; pre-aggregate the table",
				core.Format(xs[row]), core.Format(ys[row]))
		}
		seen[key] = struct{}{}
	}

	xLabels, xIndex := sortedUnique(xs)
	yLabels, yIndex := sortedUnique(ys)

	trace := Trace{
		Type: "heatmap",
		Name: data.Name,
		X:    xLabels,
		Y:    yLabels,
		Z:    [][]any{},
	}
	if len(xs) == 0 {
		return []Trace{styled(trace, s)}, nil
	}

	grid := mat.NewDense(len(yLabels), len(xLabels), nil)
	for i := range len(yLabels) {
		for j := range len(xLabels) {
			grid.Set(i, j, math.NaN())
		}
	}

	for row, z := range zs {
		if core.IsMissing(z) {
			continue
		}
		value, ok := z.(float64)
		if !ok {
			return nil, compileErrorf(s.Chart.Type,
				"heatmap z column %q must be numeric, found %s value at row %d", data.Z, core.KindOf(z), row)
		}
		grid.Set(yIndex[core.Key(ys[row])], xIndex[core.Key(xs[row])], value)
	}

	rows, cols := grid.Dims()
	trace.Z = make([][]any, rows)
	for i := range rows {
		line := make([]any, cols)
		for j := range cols {
			line[j] = jsonSafe(grid.At(i, j))
		}
		trace.Z[i] = line
	}

	return []Trace{styled(trace, s)}, nil
}

// sortedUnique returns the distinct values in ascending order and the position
// of each value keyed by core.Key
func sortedUnique(values []any) ([]any, map[string]int) {
	seen := make(map[string]struct{}, len(values))
	unique := make([]any, 0, len(values))
	for _, v := range values {
		key := core.Key(v)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, v)
	}

	slices.SortStableFunc(unique, core.Compare)

	index := make(map[string]int, len(unique))
	for i, v := range unique {
		index[core.Key(v)] = i
		unique[i] = jsonSafe(v)
	}
	return unique, index
}
