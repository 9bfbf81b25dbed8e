// Package plotspec compiles declarative visualization specs against tabular
// data into chart payloads, with optional caching and HTML export.
package plotspec

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/raykavin/plotspec/pkg/core"
	"github.com/raykavin/plotspec/pkg/export"
	"github.com/raykavin/plotspec/pkg/logger"
	"github.com/raykavin/plotspec/pkg/plot"
	"github.com/raykavin/plotspec/pkg/spec"
	"github.com/raykavin/plotspec/pkg/storage"
	"github.com/schollz/progressbar/v3"
)

// Engine wires the compiler to the payload cache and the HTML exporter
type Engine struct {
	compiler *plot.Compiler
	registry *plot.Registry
	cache    *storage.PayloadCache
	html     *export.HTMLWriter
	logger   logger.Logger
	level    *logger.Level
	progress io.Writer
}

// Job is a single spec to render in a batch
type Job struct {
	Name  string
	Spec  any
	Table *core.Table
}

// Result is the outcome of a Job
type Result struct {
	Name    string
	Payload *plot.Payload
	Err     error
	Elapsed time.Duration
}

// Traces returns the number of traces of a successful result
func (r Result) Traces() int {
	if r.Payload == nil {
		return 0
	}
	return len(r.Payload.Figure.Data)
}

// New creates an engine. Without WithHTMLWriter a writer loading Plotly from
// export.DefaultPlotlyURL is built.
func New(options ...Option) (*Engine, error) {
	engine := &Engine{logger: DefaultLog}
	for _, option := range options {
		option(engine)
	}

	if engine.level != nil {
		engine.logger.SetLevel(*engine.level)
	}

	compilerOptions := []plot.Option{plot.WithLogger(engine.logger)}
	if engine.registry != nil {
		compilerOptions = append(compilerOptions, plot.WithRegistry(engine.registry))
	}
	engine.compiler = plot.NewCompiler(compilerOptions...)

	if engine.html == nil {
		writer, err := export.NewHTMLWriter(export.WithLogger(engine.logger))
		if err != nil {
			return nil, err
		}
		engine.html = writer
	}

	return engine, nil
}

// Compiler returns the underlying compiler
func (e *Engine) Compiler() *plot.Compiler {
	return e.compiler
}

// Render compiles raw against table into a payload. With a cache configured,
// an identical (spec, table) pair is served from the cache.
func (e *Engine) Render(table *core.Table, raw any) (*plot.Payload, error) {
	if table == nil {
		return e.compiler.CompilePayload(nil, raw)
	}
	if e.cache == nil {
		return e.compiler.CompilePayload(table, raw)
	}

	s, err := spec.Parse(raw)
	if err != nil {
		e.logger.WithError(err).Warn("spec rejected")
		return nil, err
	}

	key, err := storage.Key(s, table.Fingerprint())
	if err != nil {
		return nil, err
	}

	return e.cache.Fetch(key, func() (*plot.Payload, error) {
		return e.compiler.CompilePayload(table, s)
	})
}

// RenderAll renders every job in order and stops early when ctx is done.
// Failed jobs are reported in their Result, never as a batch error.
func (e *Engine) RenderAll(ctx context.Context, jobs []Job) []Result {
	var bar *progressbar.ProgressBar
	if e.progress != nil {
		bar = progressbar.NewOptions(len(jobs),
			progressbar.OptionSetWriter(e.progress),
			progressbar.OptionSetDescription("compiling"),
			progressbar.OptionShowCount(),
		)
	}

	results := make([]Result, 0, len(jobs))
	for _, job := range jobs {
		if err := ctx.Err(); err != nil {
			results = append(results, Result{Name: job.Name, Err: err})
			continue
		}

		start := time.Now()
		payload, err := e.Render(job.Table, job.Spec)
		results = append(results, Result{
			Name:    job.Name,
			Payload: payload,
			Err:     err,
			Elapsed: time.Since(start),
		})

		if bar != nil {
			if err := bar.Add(1); err != nil {
				e.logger.Warnf("update progressbar fail: %v", err)
			}
		}
	}

	e.logger.WithFields(map[string]any{
		"jobs":   len(jobs),
		"failed": countFailed(results),
	}).Info("batch finished")

	return results
}

// Export writes payload as a standalone HTML page at path
func (e *Engine) Export(path string, payload *plot.Payload) error {
	if payload == nil {
		return fmt.Errorf("nothing to export to %s", path)
	}
	return e.html.WriteFile(path, payload)
}

func countFailed(results []Result) int {
	failed := 0
	for _, result := range results {
		if result.Err != nil {
			failed++
		}
	}
	return failed
}
