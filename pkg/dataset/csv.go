// Package dataset loads tables from CSV and JSON files
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/raykavin/plotspec/pkg/core"
	"github.com/samber/lo"
)

// DefaultNullValues are the cell contents read as missing values
var DefaultNullValues = []string{"", "NA", "N/A", "NaN", "nan", "null", "NULL"}

type csvOptions struct {
	comma      rune
	nullValues []string
	rawColumns []string
}

// CSVOption configures ReadCSV
type CSVOption func(*csvOptions)

// WithComma sets the field delimiter
func WithComma(comma rune) CSVOption {
	return func(o *csvOptions) {
		o.comma = comma
	}
}

// WithNullValues replaces the cell contents read as missing
func WithNullValues(values ...string) CSVOption {
	return func(o *csvOptions) {
		o.nullValues = values
	}
}

// WithRawColumns keeps the named columns as strings, skipping type inference
func WithRawColumns(columns ...string) CSVOption {
	return func(o *csvOptions) {
		o.rawColumns = append(o.rawColumns, columns...)
	}
}

// ReadCSV reads a CSV document whose first row is the header. Column types
// are inferred: a column becomes numeric when every present cell parses as a
// number, boolean when every present cell is true/false, and stays text
// otherwise.
func ReadCSV(r io.Reader, options ...CSVOption) (*core.Table, error) {
	opts := csvOptions{
		comma:      ',',
		nullValues: DefaultNullValues,
	}
	for _, option := range options {
		option(&opts)
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.comma
	reader.TrimLeadingSpace = true

	lines, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(lines) == 0 {
		return nil, ErrNoHeader
	}

	headers := lo.Map(lines[0], func(header string, _ int) string {
		return strings.TrimSpace(header)
	})
	rows := lines[1:]

	columns := make([]core.Column, 0, len(headers))
	for index, header := range headers {
		cells := make([]string, len(rows))
		for i, row := range rows {
			if index < len(row) {
				cells[i] = row[index]
			}
		}

		columns = append(columns, core.Column{
			Name:   header,
			Values: inferColumn(cells, opts.nullValues, lo.Contains(opts.rawColumns, header)),
		})
	}

	return core.NewTable(columns...)
}

// inferColumn converts the raw cells of a column into typed values
func inferColumn(cells []string, nullValues []string, raw bool) []any {
	values := make([]any, len(cells))
	present := make([]int, 0, len(cells))
	for i, cell := range cells {
		if lo.Contains(nullValues, strings.TrimSpace(cell)) {
			continue
		}
		present = append(present, i)
	}

	if raw {
		for _, i := range present {
			values[i] = cells[i]
		}
		return values
	}

	numbers := make(map[int]float64, len(present))
	if lo.EveryBy(present, func(i int) bool {
		f, err := strconv.ParseFloat(strings.TrimSpace(cells[i]), 64)
		numbers[i] = f
		return err == nil
	}) {
		for _, i := range present {
			values[i] = numbers[i]
		}
		return values
	}

	if lo.EveryBy(present, func(i int) bool {
		_, ok := parseBool(cells[i])
		return ok
	}) {
		for _, i := range present {
			values[i], _ = parseBool(cells[i])
		}
		return values
	}

	for _, i := range present {
		values[i] = cells[i]
	}
	return values
}

// parseBool accepts true and false in any letter case
func parseBool(cell string) (bool, bool) {
	cell = strings.TrimSpace(cell)
	switch {
	case strings.EqualFold(cell, "true"):
		return true, true
	case strings.EqualFold(cell, "false"):
		return false, true
	}
	return false, false
}
