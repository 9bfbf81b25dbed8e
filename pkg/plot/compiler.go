package plot

import (
	"github.com/raykavin/plotspec/pkg/logger"
	"github.com/raykavin/plotspec/pkg/spec"
)

// MaxTraces is the largest number of traces a single figure may hold
const MaxTraces = 64

// Compiler turns a (table, spec) pair into a Figure or a wire Payload. It
// holds no per-call state and is safe for concurrent use.
type Compiler struct {
	registry *Registry
	log      logger.Logger
}

// Option configures a Compiler
type Option func(*Compiler)

// WithLogger sets the logger used to report dispatch and failures
func WithLogger(log logger.Logger) Option {
	return func(c *Compiler) {
		c.log = log
	}
}

// WithRegistry replaces the default builder registry
func WithRegistry(registry *Registry) Option {
	return func(c *Compiler) {
		c.registry = registry
	}
}

// NewCompiler creates a compiler with the default registry and a discard logger
func NewCompiler(options ...Option) *Compiler {
	compiler := &Compiler{
		registry: DefaultRegistry(),
		log:      logger.Discard,
	}

	for _, option := range options {
		option(compiler)
	}

	return compiler
}

var defaultCompiler = NewCompiler()

// Compile compiles raw with the default compiler. See Compiler.Compile.
func Compile(frame Frame, raw any) (*Figure, error) {
	return defaultCompiler.Compile(frame, raw)
}

// CompilePayload compiles raw with the default compiler. See Compiler.CompilePayload.
func CompilePayload(frame Frame, raw any) (*Payload, error) {
	return defaultCompiler.CompilePayload(frame, raw)
}

// Compile parses raw into a spec (see spec.Parse) and builds its figure from
// frame. Spec failures are returned as *spec.ParseError or
// *spec.ValidationError before the frame is touched; table incompatibilities
// and oversized output as *CompileError.
func (c *Compiler) Compile(frame Frame, raw any) (*Figure, error) {
	s, err := spec.Parse(raw)
	if err != nil {
		c.log.WithError(err).Warn("spec rejected")
		return nil, err
	}

	figure, err := c.build(frame, s)
	if err != nil {
		c.log.WithError(err).
			WithField("chart_type", s.Chart.Type).
			Warn("compile failed")
		return nil, err
	}

	return figure, nil
}

// CompilePayload compiles raw and wraps the figure into the wire payload
func (c *Compiler) CompilePayload(frame Frame, raw any) (*Payload, error) {
	s, err := spec.Parse(raw)
	if err != nil {
		c.log.WithError(err).Warn("spec rejected")
		return nil, err
	}

	figure, err := c.build(frame, s)
	if err == nil {
		var payload *Payload
		if payload, err = NewPayload(figure, s); err == nil {
			return payload, nil
		}
	}

	c.log.WithError(err).
		WithField("chart_type", s.Chart.Type).
		Warn("compile failed")
	return nil, err
}

func (c *Compiler) build(frame Frame, s *spec.VizSpec) (*Figure, error) {
	chartType := s.Chart.Type
	if frame == nil {
		return nil, compileErrorf(chartType, "no table provided")
	}

	if missing := missingColumns(frame, s.Data.ReferencedColumns()); len(missing) > 0 {
		return nil, &CompileError{
			ChartType: chartType,
			Reason:    "columns not found in table",
			Missing:   missing,
		}
	}

	builder, err := c.registry.Dispatch(chartType)
	if err != nil {
		return nil, err
	}

	c.log.WithFields(map[string]any{
		"chart_type": chartType,
		"rows":       frame.Len(),
	}).Debug("dispatching chart builder")

	traces, err := builder.Build(Input{Frame: frame, Spec: s})
	if err != nil {
		return nil, err
	}

	if len(traces) > MaxTraces {
		return nil, compileErrorf(chartType,
			"figure has %d traces, the limit is %d", len(traces), MaxTraces)
	}

	if traces == nil {
		traces = []Trace{}
	}

	c.log.WithFields(map[string]any{
		"chart_type": chartType,
		"traces":     len(traces),
	}).Debug("figure compiled")

	return &Figure{
		Data:   traces,
		Layout: Hydrate(s),
	}, nil
}
