package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/raykavin/plotspec/pkg/core"
)

// ReadJSON reads a JSON array of flat objects. Columns follow the order in
// which keys first appear; keys absent from a record read as missing.
func ReadJSON(r io.Reader) (*core.Table, error) {
	var records []json.RawMessage
	decoder := json.NewDecoder(r)
	decoder.UseNumber()
	if err := decoder.Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRecords, err)
	}

	var names []string
	rows := make([]map[string]any, 0, len(records))
	for i, raw := range records {
		keys, row, err := decodeRecord(raw)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		for _, key := range keys {
			if !slices.Contains(names, key) {
				names = append(names, key)
			}
		}
		rows = append(rows, row)
	}

	return FromRecords(names, rows)
}

// FromRecords builds a table from row mappings with the given column order
func FromRecords(columns []string, records []map[string]any) (*core.Table, error) {
	table := make([]core.Column, 0, len(columns))
	for _, name := range columns {
		values := make([]any, len(records))
		for i, record := range records {
			values[i] = record[name]
		}
		table = append(table, core.Column{Name: name, Values: values})
	}
	return core.NewTable(table...)
}

// decodeRecord decodes one object keeping the order of its keys
func decodeRecord(raw json.RawMessage) ([]string, map[string]any, error) {
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	token, err := decoder.Token()
	if err != nil {
		return nil, nil, err
	}
	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return nil, nil, ErrInvalidRecords
	}

	var keys []string
	row := make(map[string]any)
	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return nil, nil, err
		}
		key := token.(string)

		var value any
		if err := decoder.Decode(&value); err != nil {
			return nil, nil, err
		}

		if _, seen := row[key]; !seen {
			keys = append(keys, key)
		}
		row[key] = flatten(value)
	}

	return keys, row, nil
}

// flatten keeps scalars and stringifies nested arrays and objects
func flatten(value any) any {
	switch value.(type) {
	case []any, map[string]any:
		encoded, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprint(value)
		}
		return string(encoded)
	default:
		return value
	}
}
