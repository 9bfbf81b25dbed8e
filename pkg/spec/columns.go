package spec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// Columns is the y binding of a spec: either a single column name or an
// ordered list of names. The list form enables multi-series fan-out.
type Columns struct {
	names []string
	list  bool
}

// Column binds a single column
func Column(name string) Columns {
	return Columns{names: []string{name}}
}

// ColumnList binds an ordered list of columns
func ColumnList(names ...string) Columns {
	return Columns{names: slices.Clone(names), list: true}
}

// IsZero reports whether nothing is bound
func (c Columns) IsZero() bool {
	return !c.list && len(c.names) == 0
}

// IsList reports whether the binding was given in list form
func (c Columns) IsList() bool {
	return c.list
}

// Names returns a copy of the bound column names
func (c Columns) Names() []string {
	return slices.Clone(c.names)
}

// First returns the first bound column, or "" when nothing is bound
func (c Columns) First() string {
	if len(c.names) == 0 {
		return ""
	}
	return c.names[0]
}

// Contains reports whether the column is bound
func (c Columns) Contains(name string) bool {
	return slices.Contains(c.names, name)
}

// UnmarshalJSON accepts null, a column name or an array of column names.
// Names must be non-empty.
func (c *Columns) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	switch {
	case bytes.Equal(trimmed, []byte("null")):
		*c = Columns{}
		return nil
	case len(trimmed) > 0 && trimmed[0] == '"':
		var name string
		if err := json.Unmarshal(trimmed, &name); err != nil {
			return err
		}
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("y column name cannot be empty")
		}
		*c = Column(name)
		return nil
	case len(trimmed) > 0 && trimmed[0] == '[':
		var entries []*string
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return fmt.Errorf("y must be a column name or a list of column names: %w", err)
		}
		names := make([]string, 0, len(entries))
		for i, entry := range entries {
			if entry == nil || strings.TrimSpace(*entry) == "" {
				return fmt.Errorf("y list entry %d must be a non-empty column name", i)
			}
			names = append(names, *entry)
		}
		*c = ColumnList(names...)
		return nil
	}
	return fmt.Errorf("y must be a column name or a list of column names, got %s", trimmed)
}

// MarshalJSON emits the binding in the shape it was given
func (c Columns) MarshalJSON() ([]byte, error) {
	switch {
	case c.list:
		names := c.names
		if names == nil {
			names = []string{}
		}
		return json.Marshal(names)
	case len(c.names) == 0:
		return []byte("null"), nil
	default:
		return json.Marshal(c.names[0])
	}
}
