package plot

import (
	"math"
	"slices"
)

// columnSet hands out column values to a builder. Columns are fetched from
// the frame once and may be replaced by a coerced private copy.
type columnSet struct {
	frame  Frame
	values map[string][]any
}

func newColumnSet(frame Frame) *columnSet {
	return &columnSet{
		frame:  frame,
		values: make(map[string][]any),
	}
}

// all returns every cell of the column, or nil for an unbound name
func (c *columnSet) all(name string) []any {
	if name == "" {
		return nil
	}
	if values, ok := c.values[name]; ok {
		return values
	}
	values, _ := c.frame.Column(name)
	c.values[name] = values
	return values
}

func (c *columnSet) replace(name string, values []any) {
	c.values[name] = values
}

// pick returns a JSON-safe copy of the selected rows; nil rows selects all
func (c *columnSet) pick(name string, rows []int) []any {
	if name == "" {
		return nil
	}

	values := c.all(name)
	if rows == nil {
		out := make([]any, len(values))
		for i, v := range values {
			out[i] = jsonSafe(v)
		}
		return out
	}

	out := make([]any, 0, len(rows))
	for _, row := range rows {
		out = append(out, jsonSafe(values[row]))
	}
	return out
}

// jsonSafe maps values JSON cannot carry (NaN, ±Inf) to null
func jsonSafe(v any) any {
	if f, ok := v.(float64); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
		return nil
	}
	return v
}

// missingColumns lists the referenced columns absent from the frame, in
// reference order
func missingColumns(frame Frame, names []string) []string {
	var missing []string
	for _, name := range names {
		if !frame.Has(name) && !slices.Contains(missing, name) {
			missing = append(missing, name)
		}
	}
	return missing
}
