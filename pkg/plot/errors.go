package plot

import (
	"errors"
	"fmt"
	"strings"

	"github.com/raykavin/plotspec/pkg/spec"
)

// ErrCompile matches every *CompileError
var ErrCompile = errors.New("compile error")

// CompileError reports a valid spec that cannot be compiled against the
// given table, or output that exceeds the compiler limits
type CompileError struct {
	ChartType spec.ChartType
	Reason    string
	Missing   []string
	Err       error
}

func (e *CompileError) Error() string {
	var sb strings.Builder
	sb.WriteString("plot: compile")
	if e.ChartType != "" {
		fmt.Fprintf(&sb, " %s", e.ChartType)
	}
	sb.WriteString(": ")
	sb.WriteString(e.Reason)
	if len(e.Missing) > 0 {
		fmt.Fprintf(&sb, ": %s", strings.Join(e.Missing, ", "))
	}
	if e.Err != nil {
		fmt.Fprintf(&sb, ": %v", e.Err)
	}
	return sb.String()
}

func (e *CompileError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrCompile}
	}
	return []error{ErrCompile, e.Err}
}

func compileErrorf(chartType spec.ChartType, format string, args ...any) *CompileError {
	return &CompileError{ChartType: chartType, Reason: fmt.Sprintf(format, args...)}
}
