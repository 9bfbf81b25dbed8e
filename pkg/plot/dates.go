package plot

import (
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/raykavin/plotspec/pkg/core"
)

// coerceDates parses a string column as dates. It is a best-effort
// conversion: the column is left alone unless every present value parses,
// and numeric-looking strings are never treated as dates.
func coerceDates(values []any, kind core.Kind) ([]any, bool) {
	if kind != core.KindString {
		return nil, false
	}

	out := make([]any, len(values))
	for i, v := range values {
		if core.IsMissing(v) {
			continue
		}

		raw := strings.TrimSpace(v.(string))
		if raw == "" {
			return nil, false
		}
		if _, err := strconv.ParseFloat(raw, 64); err == nil {
			return nil, false
		}

		parsed, err := dateparse.ParseIn(raw, time.UTC)
		if err != nil {
			return nil, false
		}
		out[i] = parsed
	}
	return out, true
}
