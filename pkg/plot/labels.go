package plot

import (
	"github.com/raykavin/plotspec/pkg/core"
	"github.com/raykavin/plotspec/pkg/spec"
)

// ColumnLabel returns the display name of a column, falling back to the raw name
func ColumnLabel(s *spec.VizSpec, column string) string {
	if label, ok := s.Data.YLabels()[column]; ok {
		return label
	}
	return column
}

// SeriesLabel returns the display name of a series key. A missing key
// resolves to fallback.
func SeriesLabel(s *spec.VizSpec, key any, fallback string) string {
	if core.IsMissing(key) {
		return fallback
	}
	raw := core.Format(key)
	if label, ok := s.Data.SeriesLabels()[raw]; ok {
		return label
	}
	return raw
}
