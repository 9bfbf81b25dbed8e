package core

import "gonum.org/v1/gonum/stat"

// ColumnSummary describes the content of a single table column
type ColumnSummary struct {
	Name     string
	Kind     Kind
	Rows     int
	Nulls    int
	Distinct int

	// Numeric statistics, only set when Kind is KindNumber
	Min    float64
	Max    float64
	Median float64
	Mean   float64
	StdDev float64
}

// Describe summarizes every column of the table in declaration order
func Describe(t *Table) []ColumnSummary {
	summaries := make([]ColumnSummary, 0, len(t.names))

	for _, name := range t.names {
		values := t.columns[name]
		summary := ColumnSummary{
			Name: name,
			Kind: t.Kind(name),
			Rows: len(values),
		}

		distinct := make(map[string]struct{}, len(values))
		for _, v := range values {
			if IsMissing(v) {
				summary.Nulls++
				continue
			}
			distinct[Key(v)] = struct{}{}
		}
		summary.Distinct = len(distinct)

		if summary.Kind == KindNumber {
			series, err := t.Numeric(name)
			if err == nil && series.Length() > 0 {
				sorted := series.Sorted()
				summary.Min = sorted[0]
				summary.Max = sorted.Last(0)
				summary.Median = stat.Quantile(0.5, stat.Empirical, sorted, nil)
				summary.Mean, summary.StdDev = stat.MeanStdDev(sorted, nil)
			}
		}

		summaries = append(summaries, summary)
	}

	return summaries
}
