package plotspec

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/olekukonko/tablewriter"
	"github.com/raykavin/plotspec/pkg/core"
	"github.com/raykavin/plotspec/pkg/metric"
	"github.com/raykavin/plotspec/pkg/spec"
)

const (
	histogramBins       = 15
	histogramWidth      = 10
	bootstrapRounds     = 2000
	bootstrapConfidence = 0.95
)

// Summary writes one row per batch result and a totals footer
func Summary(w io.Writer, results []Result) error {
	buffer := bytes.NewBuffer(nil)
	table := tablewriter.NewWriter(buffer)
	table.SetHeader([]string{"Name", "Traces", "Status", "Elapsed"})
	table.SetFooterAlignment(tablewriter.ALIGN_RIGHT)

	traces := 0
	for _, result := range results {
		status := "ok"
		if result.Err != nil {
			status = result.Err.Error()
		}

		table.Append([]string{
			result.Name,
			strconv.Itoa(result.Traces()),
			status,
			result.Elapsed.Round(time.Microsecond).String(),
		})
		traces += result.Traces()
	}

	failed := countFailed(results)
	table.SetFooter([]string{
		"TOTAL",
		strconv.Itoa(traces),
		fmt.Sprintf("%d ok / %d failed", len(results)-failed, failed),
		"",
	})
	table.Render()

	_, err := io.Copy(w, buffer)
	return err
}

// Violations writes the rule violations of a rejected spec as a table
func Violations(w io.Writer, err *spec.ValidationError) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Field", "Rule", "Message"})
	table.SetAutoWrapText(false)
	for _, v := range err.Violations {
		table.Append([]string{v.Field, string(v.Rule), v.Message})
	}
	table.Render()
}

// Describe writes a per-column summary of t. When histColumn names a
// numeric column its value distribution is drawn below the table.
func Describe(w io.Writer, t *core.Table, histColumn string) error {
	buffer := bytes.NewBuffer(nil)
	table := tablewriter.NewWriter(buffer)
	table.SetHeader([]string{"Column", "Kind", "Rows", "Nulls", "Distinct", "Min", "Max", "Median", "Mean", "Std"})

	for _, summary := range core.Describe(t) {
		row := []string{
			summary.Name,
			summary.Kind.String(),
			strconv.Itoa(summary.Rows),
			strconv.Itoa(summary.Nulls),
			strconv.Itoa(summary.Distinct),
			"", "", "", "", "",
		}
		if summary.Kind == core.KindNumber {
			row[5] = fmt.Sprintf("%.3f", summary.Min)
			row[6] = fmt.Sprintf("%.3f", summary.Max)
			row[7] = fmt.Sprintf("%.3f", summary.Median)
			row[8] = fmt.Sprintf("%.3f", summary.Mean)
			row[9] = fmt.Sprintf("%.3f", summary.StdDev)
		}
		table.Append(row)
	}
	table.Render()

	if _, err := io.Copy(w, buffer); err != nil {
		return err
	}

	if histColumn == "" {
		return nil
	}

	values, err := t.Numeric(histColumn)
	if err != nil {
		return err
	}
	if len(values) == 0 {
		return fmt.Errorf("column %q has no values to plot", histColumn)
	}

	fmt.Fprintf(w, "------ %s -------\n", histColumn)
	hist := histogram.Hist(histogramBins, values.Values())
	if err := histogram.Fprint(w, hist, histogram.Linear(histogramWidth)); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n------ CONFIDENCE INTERVAL (%.0f%%) -------\n", bootstrapConfidence*100)
	for _, m := range []struct {
		label   string
		measure metric.Measure
	}{
		{"MEAN", metric.Mean},
		{"MEDIAN", metric.Median},
	} {
		interval := metric.Bootstrap(values.Values(), m.measure, bootstrapRounds, bootstrapConfidence)
		fmt.Fprintf(w, "%-8s %.3f (%.3f ~ %.3f)\n", m.label+":", interval.Mean, interval.Lower, interval.Upper)
	}
	return nil
}
