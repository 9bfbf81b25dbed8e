package core

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"slices"

	"github.com/StudioSol/set"
)

// Column is a named run of cells used to build a Table
type Column struct {
	Name   string
	Values []any
}

// Group is the set of rows sharing one value of a grouping column
type Group struct {
	Key  any
	Rows []int
}

// Table is an immutable, column-oriented dataset. Cells are normalized on
// construction (see Normalize) and every accessor hands out copies, so callers
// can never mutate the table they were given.
type Table struct {
	names   []string
	columns map[string][]any
	rows    int
}

// NewTable creates a table from the given columns, preserving their order.
// All columns must have the same length and unique names.
func NewTable(columns ...Column) (*Table, error) {
	table := &Table{
		names:   make([]string, 0, len(columns)),
		columns: make(map[string][]any, len(columns)),
	}

	for i, column := range columns {
		if _, exists := table.columns[column.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, column.Name)
		}
		if i == 0 {
			table.rows = len(column.Values)
		} else if len(column.Values) != table.rows {
			return nil, fmt.Errorf("%w: %q has %d rows, expected %d",
				ErrColumnLength, column.Name, len(column.Values), table.rows)
		}

		values := make([]any, len(column.Values))
		for j, v := range column.Values {
			values[j] = Normalize(v)
		}

		table.names = append(table.names, column.Name)
		table.columns[column.Name] = values
	}

	return table, nil
}

// MustTable is like NewTable but panics on error. Useful for fixtures.
func MustTable(columns ...Column) *Table {
	table, err := NewTable(columns...)
	if err != nil {
		panic(err)
	}
	return table
}

// Len returns the number of rows
func (t *Table) Len() int {
	return t.rows
}

// Names returns the column names in declaration order
func (t *Table) Names() []string {
	return slices.Clone(t.names)
}

// Has reports whether the table holds the named column
func (t *Table) Has(name string) bool {
	_, ok := t.columns[name]
	return ok
}

// Column returns a copy of the named column
func (t *Table) Column(name string) ([]any, bool) {
	values, ok := t.columns[name]
	if !ok {
		return nil, false
	}
	return slices.Clone(values), true
}

// Kind returns the single kind shared by every non-missing cell of the column,
// KindMixed when kinds differ and KindNull when the column has no values.
func (t *Table) Kind(name string) Kind {
	kind := KindNull
	for _, v := range t.columns[name] {
		if IsMissing(v) {
			continue
		}
		k := KindOf(v)
		if kind == KindNull {
			kind = k
			continue
		}
		if k != kind {
			return KindMixed
		}
	}
	return kind
}

// GroupBy splits the rows by the distinct values of a column. Groups are
// returned in the order their key first appears in the table, not sorted.
// Missing cells form their own group with a nil key.
func (t *Table) GroupBy(name string) ([]Group, error) {
	values, ok := t.columns[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}

	keys := set.NewLinkedHashSetString()
	rowsByKey := make(map[string][]int)
	valueByKey := make(map[string]any)

	for row, v := range values {
		key := Key(v)
		keys.Add(key)
		if _, seen := valueByKey[key]; !seen {
			if IsMissing(v) {
				v = nil
			}
			valueByKey[key] = v
		}
		rowsByKey[key] = append(rowsByKey[key], row)
	}

	groups := make([]Group, 0, len(rowsByKey))
	for key := range keys.Iter() {
		groups = append(groups, Group{
			Key:  valueByKey[key],
			Rows: rowsByKey[key],
		})
	}

	return groups, nil
}

// Numeric returns the non-missing numeric cells of a column
func (t *Table) Numeric(name string) (Series[float64], error) {
	values, ok := t.columns[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}

	series := make(Series[float64], 0, len(values))
	for _, v := range values {
		if IsMissing(v) {
			continue
		}
		f, ok := v.(float64)
		if !ok {
			return nil, fmt.Errorf("%w: %q holds %s values", ErrNotNumeric, name, KindOf(v))
		}
		series = append(series, f)
	}
	return series, nil
}

// Fingerprint returns a stable digest of the table's names and cells
func (t *Table) Fingerprint() string {
	hash := sha256.New()
	for _, name := range t.names {
		fmt.Fprintf(hash, "%d:%s|", len(name), name)
		for _, v := range t.columns[name] {
			key := Key(v)
			fmt.Fprintf(hash, "%d:%s|", len(key), key)
		}
	}
	return hex.EncodeToString(hash.Sum(nil))
}
