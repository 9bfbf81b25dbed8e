package spec

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/samber/lo"
)

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// ValidColor reports whether s is a 6/8-digit hex literal or a non-empty
// color name. Names are opaque here and checked by the charting library.
func ValidColor(s string) bool {
	if strings.HasPrefix(s, "#") {
		return hexColor.MatchString(s)
	}
	return strings.TrimSpace(s) != ""
}

// checkFields runs the per-field enum, range and literal checks
func checkFields(s *VizSpec) []Violation {
	var violations []Violation
	add := func(rule Rule, field, format string, args ...any) {
		violations = append(violations, Violation{
			Rule:    rule,
			Field:   field,
			Message: fmt.Sprintf(format, args...),
		})
	}

	if s.Version != "" && s.Version != Version {
		add(RuleLiteral, "version", "unsupported version %q, expected %q", s.Version, Version)
	}

	chart := s.Chart
	switch {
	case chart.Type == "":
		add(RuleRequired, "chart.type", "chart type is required")
	case !chart.Type.Valid():
		add(RuleEnum, "chart.type", "unknown chart type %q", chart.Type)
	}
	if chart.Mode != "" && !chart.Mode.Valid() {
		add(RuleEnum, "chart.mode", "unknown mode %q", chart.Mode)
	}
	if chart.Orientation != "" && !chart.Orientation.Valid() {
		add(RuleEnum, "chart.orientation", "unknown orientation %q", chart.Orientation)
	}
	if chart.BarMode != "" && !chart.BarMode.Valid() {
		add(RuleEnum, "chart.barmode", "unknown barmode %q", chart.BarMode)
	}
	if chart.HistNorm != "" && !chart.HistNorm.Valid() {
		add(RuleEnum, "chart.histnorm", "unknown histnorm %q", chart.HistNorm)
	}

	data := s.Data
	if data.Y.IsList() {
		if len(data.Y.names) == 0 {
			add(RuleYListEmpty, "data.y", "y list cannot be empty")
		}
		if dups := lo.FindDuplicates(data.Y.names); len(dups) > 0 {
			add(RuleYListDup, "data.y", "y list contains duplicates: %s", strings.Join(dups, ", "))
		}
	}

	if enc := data.Encodings; enc != nil {
		if enc.MarkerSize != nil && (*enc.MarkerSize < 1 || *enc.MarkerSize > 64) {
			add(RuleRange, "data.encodings.marker_size", "marker_size %d out of range [1, 64]", *enc.MarkerSize)
		}
		if enc.Opacity != nil && (*enc.Opacity < 0 || *enc.Opacity > 1) {
			add(RuleRange, "data.encodings.opacity", "opacity %g out of range [0, 1]", *enc.Opacity)
		}
		if enc.LineShape != "" && !enc.LineShape.Valid() {
			add(RuleEnum, "data.encodings.line_shape", "unknown line_shape %q", enc.LineShape)
		}
	}

	colorMap := data.ColorMap()
	for _, key := range sortedKeys(colorMap) {
		if !ValidColor(colorMap[key]) {
			add(RuleColor, "data.colors.color_map."+key, "invalid color for key %q: %q", key, colorMap[key])
		}
	}

	if layout := s.Layout; layout != nil {
		if layout.HoverMode != "" && !layout.HoverMode.Valid() {
			add(RuleEnum, "layout.hovermode", "unknown hovermode %q", layout.HoverMode)
		}
		if layout.Height != nil && (*layout.Height < 200 || *layout.Height > 2000) {
			add(RuleRange, "layout.height", "height %d out of range [200, 2000]", *layout.Height)
		}
		if layout.Width != nil && (*layout.Width < 200 || *layout.Width > 4000) {
			add(RuleRange, "layout.width", "width %d out of range [200, 4000]", *layout.Width)
		}
		for i, color := range layout.Colorway {
			if !ValidColor(color) {
				add(RuleColor, fmt.Sprintf("layout.colorway[%d]", i), "invalid color in colorway: %q", color)
			}
		}
	}

	return violations
}

// checkSemantics runs the cross-field rules on a normalized spec
func checkSemantics(s *VizSpec) []Violation {
	var violations []Violation
	data := s.Data

	if s.Chart.Type == ChartHeatmap {
		missing := make([]string, 0, 3)
		if data.X == "" {
			missing = append(missing, "x")
		}
		if data.Y.IsZero() {
			missing = append(missing, "y")
		}
		if data.Z == "" {
			missing = append(missing, "z")
		}
		if len(missing) > 0 {
			violations = append(violations, Violation{
				Rule:    RuleHeatmapXYZ,
				Field:   "data",
				Message: "heatmap requires x, y, z; missing: " + strings.Join(missing, ", "),
			})
		}
	}

	if y2 := data.Y2For(); len(y2) > 0 && data.Y.IsList() {
		if bad, _ := lo.Difference(y2, data.Y.names); len(bad) > 0 {
			sort.Strings(bad)
			violations = append(violations, Violation{
				Rule:    RuleY2ForSubset,
				Field:   "data.axis.y2_for",
				Message: "y2_for contains columns not in y: " + strings.Join(bad, ", "),
			})
		}
	}

	if data.Y.IsList() && data.SeriesBy() != "" {
		violations = append(violations, Violation{
			Rule:    RuleYListSeries,
			Field:   "data.series.by",
			Message: "cannot use a list of y columns together with series.by; choose one strategy",
		})
	}

	if s.Chart.Type == ChartHistogram && data.X == "" && data.Y.IsZero() {
		violations = append(violations, Violation{
			Rule:    RuleHistogramXY,
			Field:   "data",
			Message: "histogram requires one of x or y",
		})
	}

	if s.Chart.Type == ChartArea && s.Chart.Mode == ModeMarkers {
		violations = append(violations, Violation{
			Rule:    RuleAreaMode,
			Field:   "chart.mode",
			Message: "area charts require 'lines' or 'lines+markers' mode",
		})
	}

	return violations
}

func sortedKeys(m map[string]string) []string {
	keys := lo.Keys(m)
	sort.Strings(keys)
	return keys
}
