package plotspec

import (
	"io"

	"github.com/raykavin/plotspec/pkg/export"
	"github.com/raykavin/plotspec/pkg/logger"
	"github.com/raykavin/plotspec/pkg/plot"
	"github.com/raykavin/plotspec/pkg/storage"
)

// Option is a functional option for configuring an Engine
type Option func(*Engine)

// WithCache routes Render through a payload cache. The engine does not own
// the cache; the caller closes it.
func WithCache(cache *storage.PayloadCache) Option {
	return func(e *Engine) {
		e.cache = cache
	}
}

// WithRegistry replaces the default chart builder registry
func WithRegistry(registry *plot.Registry) Option {
	return func(e *Engine) {
		e.registry = registry
	}
}

// WithHTMLWriter sets the writer used by Export
func WithHTMLWriter(writer *export.HTMLWriter) Option {
	return func(e *Engine) {
		e.html = writer
	}
}

// WithLogger sets the engine logger, DefaultLog otherwise
func WithLogger(log logger.Logger) Option {
	return func(e *Engine) {
		e.logger = log
	}
}

// WithLogLevel sets the log level. eg: logger.DebugLevel, logger.InfoLevel, logger.WarnLevel
func WithLogLevel(level logger.Level) Option {
	return func(e *Engine) {
		e.level = &level
	}
}

// WithProgress draws a progress bar on w while RenderAll runs
func WithProgress(w io.Writer) Option {
	return func(e *Engine) {
		e.progress = w
	}
}
