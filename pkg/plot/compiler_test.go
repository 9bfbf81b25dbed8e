package plot

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/raykavin/plotspec/pkg/core"
	"github.com/raykavin/plotspec/pkg/logger"
	zlog "github.com/raykavin/plotspec/pkg/logger/zerolog"
	"github.com/raykavin/plotspec/pkg/spec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCompile(t *testing.T, frame Frame, raw any) *Figure {
	t.Helper()
	figure, err := Compile(frame, raw)
	require.NoError(t, err)
	return figure
}

func compileError(t *testing.T, err error) *CompileError {
	t.Helper()
	require.Error(t, err)
	require.ErrorIs(t, err, ErrCompile)

	var cerr *CompileError
	require.True(t, errors.As(err, &cerr))
	return cerr
}

func TestCompile_ListYBar(t *testing.T) {
	table := core.MustTable(
		core.Column{Name: "x", Values: []any{1, 2, 3}},
		core.Column{Name: "A", Values: []any{1, 2, 3}},
		core.Column{Name: "B", Values: []any{3, 2, 1}},
	)

	figure := mustCompile(t, table,
		`{"chart":{"type":"bar","orientation":"v","barmode":"group"},"data":{"x":"x","y":["A","B"]}}`)

	require.Len(t, figure.Data, 2)
	assert.Equal(t, []string{"A", "B"}, figure.Names())
	assert.Equal(t, []string{"bar", "bar"}, figure.Types())
	assert.Equal(t, []any{1.0, 2.0, 3.0}, figure.Data[0].X)
	assert.Equal(t, []any{3.0, 2.0, 1.0}, figure.Data[1].Y)
	assert.Equal(t, "v", figure.Data[0].Orientation)
	assert.Equal(t, "group", figure.Layout.BarMode)
}

func TestCompile_SeriesLine(t *testing.T) {
	table := core.MustTable(
		core.Column{Name: "x", Values: []any{1, 1, 2, 2}},
		core.Column{Name: "y", Values: []any{1, 2, 3, 4}},
		core.Column{Name: "g", Values: []any{"A", "B", "A", "B"}},
	)

	figure := mustCompile(t, table,
		`{"chart":{"type":"line"},"data":{"x":"x","y":"y","series":{"by":"g"}}}`)

	require.Len(t, figure.Data, 2)
	assert.Equal(t, []string{"A", "B"}, figure.Names())
	assert.Equal(t, "scatter", figure.Data[0].Type)
	assert.Equal(t, "lines", figure.Data[0].Mode)
	assert.Equal(t, []any{1.0, 2.0}, figure.Data[0].X)
	assert.Equal(t, []any{1.0, 3.0}, figure.Data[0].Y)
	assert.Equal(t, []any{2.0, 4.0}, figure.Data[1].Y)
}

func TestCompile_SeriesOrderIsFirstAppearance(t *testing.T) {
	table := core.MustTable(
		core.Column{Name: "y", Values: []any{1, 2, 3, 4}},
		core.Column{Name: "g", Values: []any{"z", "a", "z", "m"}},
	)

	figure := mustCompile(t, table, `{"chart":{"type":"scatter"},"data":{"y":"y","series":{"by":"g"}}}`)
	assert.Equal(t, []string{"z", "a", "m"}, figure.Names())
}

func TestCompile_SeriesLabels(t *testing.T) {
	table := core.MustTable(
		core.Column{Name: "y", Values: []any{1, 2, 3}},
		core.Column{Name: "g", Values: []any{"A", nil, 7}},
	)

	figure := mustCompile(t, table, `{
		"chart": {"type": "bar"},
		"data": {
			"y": "y",
			"series": {"by": "g"},
			"labels": {"y": {"y": "Revenue"}, "series": {"A": "Alpha", "7": "Seven"}}
		}
	}`)
	assert.Equal(t, []string{"Alpha", "Revenue", "Seven"}, figure.Names())
}

func TestCompile_SeriesTraceCountMatchesDistinctValues(t *testing.T) {
	for _, groups := range [][]any{
		{"a"},
		{"a", "b", "a", "c"},
		{1, 2, 3, 4, 5, 1},
		{true, false, nil},
	} {
		t.Run(fmt.Sprint(groups), func(t *testing.T) {
			ys := make([]any, len(groups))
			for i := range ys {
				ys[i] = i
			}
			table := core.MustTable(
				core.Column{Name: "y", Values: ys},
				core.Column{Name: "g", Values: groups},
			)
			distinct, err := table.GroupBy("g")
			require.NoError(t, err)

			for _, chartType := range []string{"line", "scatter", "area", "bar", "box"} {
				figure := mustCompile(t, table, map[string]any{
					"chart": map[string]any{"type": chartType},
					"data":  map[string]any{"y": "y", "series": map[string]any{"by": "g"}},
				})
				assert.Len(t, figure.Data, len(distinct), chartType)
			}
		})
	}
}

func TestCompile_ListYTraceCount(t *testing.T) {
	columns := []core.Column{{Name: "x", Values: []any{1, 2}}}
	names := make([]string, 0, 10)
	for i := range 10 {
		name := fmt.Sprintf("c%d", i)
		names = append(names, name)
		columns = append(columns, core.Column{Name: name, Values: []any{i, i + 1}})
	}
	table := core.MustTable(columns...)

	for n := 1; n <= len(names); n++ {
		for _, chartType := range []spec.ChartType{spec.ChartLine, spec.ChartBar, spec.ChartBox} {
			figure := mustCompile(t, table, &spec.VizSpec{
				Chart: spec.ChartSpec{Type: chartType},
				Data:  spec.DataSpec{X: "x", Y: spec.ColumnList(names[:n]...)},
			})
			assert.Len(t, figure.Data, n)
			assert.Equal(t, names[:n], figure.Names())
		}
	}
}

func TestCompile_ScalarName(t *testing.T) {
	table := core.MustTable(
		core.Column{Name: "x", Values: []any{1, 2}},
		core.Column{Name: "y", Values: []any{3, 4}},
	)

	figure := mustCompile(t, table, `{"chart":{"type":"line"},"data":{"x":"x","y":"y","labels":{"y":{"y":"Why"}}}}`)
	assert.Equal(t, []string{"Why"}, figure.Names())

	figure = mustCompile(t, table, `{"chart":{"type":"line"},"data":{"x":"x","y":"y","name":"Custom"}}`)
	assert.Equal(t, []string{"Custom"}, figure.Names())
}

func TestCompile_SpecErrorsBeforeTable(t *testing.T) {
	_, err := Compile(nil, `{"chart":{"type":"line"},"data":{"x":"x","y":["A","B"],"series":{"by":"g"}}}`)
	require.ErrorIs(t, err, spec.ErrValidation)
	require.NotErrorIs(t, err, ErrCompile)

	_, err = Compile(nil, `{"chart":{"type":"histogram"},"data":{}}`)
	var verr *spec.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.True(t, verr.HasRule(spec.RuleHistogramXY))

	_, err = Compile(nil, `{"chart":`)
	require.ErrorIs(t, err, spec.ErrParse)
}

func TestCompile_NoTable(t *testing.T) {
	_, err := Compile(nil, `{"chart":{"type":"line"},"data":{"y":"y"}}`)
	compileError(t, err)
}

func TestCompile_MissingColumns(t *testing.T) {
	table := core.MustTable(core.Column{Name: "a", Values: []any{1}})

	_, err := Compile(table, `{
		"chart": {"type": "line"},
		"data": {"x": "nope", "y": ["a", "gone"], "text": "nope", "series": null}
	}`)
	cerr := compileError(t, err)
	assert.Equal(t, []string{"nope", "gone"}, cerr.Missing)
	assert.Contains(t, cerr.Error(), "nope, gone")
}

func TestCompile_TraceCeiling(t *testing.T) {
	build := func(n int) (*core.Table, *spec.VizSpec) {
		columns := make([]core.Column, 0, n)
		names := make([]string, 0, n)
		for i := range n {
			name := fmt.Sprintf("c%d", i)
			names = append(names, name)
			columns = append(columns, core.Column{Name: name, Values: []any{i}})
		}
		return core.MustTable(columns...), &spec.VizSpec{
			Chart: spec.ChartSpec{Type: spec.ChartLine},
			Data:  spec.DataSpec{Y: spec.ColumnList(names...)},
		}
	}

	table, s := build(MaxTraces)
	figure, err := Compile(table, s)
	require.NoError(t, err)
	assert.Len(t, figure.Data, MaxTraces)

	table, s = build(MaxTraces + 1)
	_, err = Compile(table, s)
	cerr := compileError(t, err)
	assert.Contains(t, cerr.Reason, "65 traces")
}

func TestCompile_Idempotent(t *testing.T) {
	table := core.MustTable(
		core.Column{Name: "day", Values: []any{"2024-01-01", "2024-01-02", "2024-01-03"}},
		core.Column{Name: "a", Values: []any{1, 2, 3}},
		core.Column{Name: "b", Values: []any{3, nil, 1}},
	)
	raw := `{
		"chart": {"type": "area"},
		"data": {"x": "day", "y": ["a", "b"], "axis": {"y2_for": ["b"], "area_stackgroup": "s"}},
		"layout": {"title": "Area", "yaxis2_title": "B"}
	}`

	first := mustCompile(t, table, raw)
	second := mustCompile(t, table, raw)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("compiled figures differ (-first +second):\n%s", diff)
	}
}

func TestCompile_ConcurrentCallers(t *testing.T) {
	table := core.MustTable(
		core.Column{Name: "day", Values: []any{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-01"}},
		core.Column{Name: "g", Values: []any{"a", "a", "a", "b"}},
		core.Column{Name: "v", Values: []any{1, 2, 3, 4}},
	)
	shared := spec.MustParse(`{"chart":{"type":"line"},"data":{"x":"day","y":"v","series":{"by":"g"}}}`)
	inputs := []any{
		shared,
		`{"chart":{"type":"bar","orientation":"h"},"data":{"x":"g","y":["v"],"axis":{"y2_for":["v"]}}}`,
		`{"chart":{"type":"heatmap"},"data":{"x":"day","y":"g","z":"v"}}`,
		`{"chart":{"type":"pie"},"data":{"x":"day","y":"v"}}`,
	}

	expected := make([]*Figure, len(inputs))
	for i, raw := range inputs {
		expected[i] = mustCompile(t, table, raw)
	}

	const workers = 16
	results := make([][]*Figure, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, raw := range inputs {
				figure, err := Compile(table, raw)
				if err != nil {
					errs[w] = err
					return
				}
				results[w] = append(results[w], figure)
			}
		}()
	}
	wg.Wait()

	for w := range workers {
		require.NoError(t, errs[w])
		if diff := cmp.Diff(expected, results[w]); diff != "" {
			t.Fatalf("worker %d compiled a different figure (-want +got):\n%s", w, diff)
		}
	}
}

func TestCompile_DoesNotMutateInputs(t *testing.T) {
	table := core.MustTable(
		core.Column{Name: "day", Values: []any{"2024-01-01", "2024-01-02"}},
		core.Column{Name: "v", Values: []any{1, 2}},
	)
	s := spec.MustParse(`{"chart":{"type":"line"},"data":{"x":"day","y":"v"}}`)
	before := s.Clone()

	mustCompile(t, table, s)

	day, _ := table.Column("day")
	assert.Equal(t, []any{"2024-01-01", "2024-01-02"}, day)
	assert.Equal(t, before.Data.ReferencedColumns(), s.Data.ReferencedColumns())
	assert.Equal(t, before.Chart, s.Chart)
}

func TestCompiler_Logging(t *testing.T) {
	var buf bytes.Buffer
	log, err := zlog.New(&buf, zlog.Options{Level: "debug", JSON: true})
	require.NoError(t, err)

	compiler := NewCompiler(WithLogger(log))
	table := core.MustTable(core.Column{Name: "y", Values: []any{1}})

	_, err = compiler.Compile(table, `{"chart":{"type":"line"},"data":{"y":"y"}}`)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "figure compiled")
	assert.Contains(t, buf.String(), `"traces":1`)

	_, err = compiler.Compile(table, `{"chart":{"type":"line"},"data":{"y":"missing"}}`)
	require.Error(t, err)
	assert.Contains(t, buf.String(), "compile failed")

	log.SetLevel(logger.ErrorLevel)
	buf.Reset()
	_, err = compiler.Compile(table, `{"chart":{"type":"line"},"data":{"y":"y"}}`)
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}
