package plot

import (
	"fmt"
	"slices"
	"sync"

	"github.com/raykavin/plotspec/pkg/spec"
)

// Input is what a Builder receives: the table and a validated spec whose
// referenced columns are known to exist in the table
type Input struct {
	Frame Frame
	Spec  *spec.VizSpec
}

// Builder turns an Input into an ordered list of traces. Implementations must
// be deterministic and must not modify the frame or the spec.
type Builder interface {
	Build(in Input) ([]Trace, error)
}

// BuilderFunc adapts a plain function to Builder
type BuilderFunc func(in Input) ([]Trace, error)

// Build implements Builder
func (f BuilderFunc) Build(in Input) ([]Trace, error) {
	return f(in)
}

// Registry maps chart types to their builders. New chart types are added by
// registering a builder, the dispatch path stays unchanged.
type Registry struct {
	mu       sync.RWMutex
	builders map[spec.ChartType]Builder
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[spec.ChartType]Builder),
	}
}

// DefaultRegistry returns a registry holding a builder for every chart type
func DefaultRegistry() *Registry {
	registry := NewRegistry()
	registry.MustRegister(spec.ChartLine, BuilderFunc(buildScatterFamily))
	registry.MustRegister(spec.ChartScatter, BuilderFunc(buildScatterFamily))
	registry.MustRegister(spec.ChartArea, BuilderFunc(buildScatterFamily))
	registry.MustRegister(spec.ChartBar, BuilderFunc(buildBar))
	registry.MustRegister(spec.ChartHistogram, BuilderFunc(buildHistogram))
	registry.MustRegister(spec.ChartBox, BuilderFunc(buildBox))
	registry.MustRegister(spec.ChartHeatmap, BuilderFunc(buildHeatmap))
	registry.MustRegister(spec.ChartPie, BuilderFunc(buildPie))
	return registry
}

// Register adds a builder for a chart type. Duplicates return an error.
func (r *Registry) Register(chartType spec.ChartType, builder Builder) error {
	if chartType == "" {
		return fmt.Errorf("plot: chart type is required")
	}
	if builder == nil {
		return fmt.Errorf("plot: builder for %q is required", chartType)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.builders[chartType]; exists {
		return fmt.Errorf("plot: builder for %q already registered", chartType)
	}

	r.builders[chartType] = builder
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(chartType spec.ChartType, builder Builder) {
	if err := r.Register(chartType, builder); err != nil {
		panic(err)
	}
}

// Dispatch returns the builder registered for the chart type
func (r *Registry) Dispatch(chartType spec.ChartType) (Builder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	builder, ok := r.builders[chartType]
	if !ok {
		return nil, compileErrorf(chartType, "no builder registered for chart type %q", chartType)
	}
	return builder, nil
}

// Has reports whether a builder is registered for the chart type
func (r *Registry) Has(chartType spec.ChartType) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.builders[chartType]
	return ok
}

// List returns the registered chart types, sorted
func (r *Registry) List() []spec.ChartType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]spec.ChartType, 0, len(r.builders))
	for chartType := range r.builders {
		types = append(types, chartType)
	}
	slices.Sort(types)
	return types
}
