// Package export writes compiled payloads as standalone HTML documents
package export

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"os"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/raykavin/plotspec/pkg/logger"
	"github.com/raykavin/plotspec/pkg/plot"
)

// DefaultPlotlyURL is the charting library loaded by exported pages
const DefaultPlotlyURL = "https://cdn.plot.ly/plotly-2.35.2.min.js"

// Static assets embedded in the binary
var (
	//go:embed assets
	staticFiles embed.FS
)

// HTMLWriter renders payloads into self-contained HTML pages
type HTMLWriter struct {
	plotlyURL     string
	debug         bool
	page          *template.Template
	scriptContent string
	log           logger.Logger
}

// Option configures an HTMLWriter
type Option func(*HTMLWriter)

// WithPlotlyURL sets the script URL of the charting library
func WithPlotlyURL(url string) Option {
	return func(w *HTMLWriter) {
		w.plotlyURL = url
	}
}

// WithDebug disables minification of the bootstrap script
func WithDebug() Option {
	return func(w *HTMLWriter) {
		w.debug = true
	}
}

// WithLogger sets the writer logger
func WithLogger(log logger.Logger) Option {
	return func(w *HTMLWriter) {
		w.log = log
	}
}

// NewHTMLWriter parses the page template and transpiles the bootstrap script
func NewHTMLWriter(options ...Option) (*HTMLWriter, error) {
	writer := &HTMLWriter{
		plotlyURL: DefaultPlotlyURL,
		log:       logger.Discard,
	}

	for _, option := range options {
		option(writer)
	}

	var err error
	writer.page, err = template.ParseFS(staticFiles, "assets/page.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page template: %w", err)
	}

	bootstrapJS, err := staticFiles.ReadFile("assets/bootstrap.js")
	if err != nil {
		return nil, fmt.Errorf("failed to read bootstrap.js: %w", err)
	}

	transpiled := api.Transform(string(bootstrapJS), api.TransformOptions{
		Loader:            api.LoaderJS,
		Target:            api.ES2015,
		MinifySyntax:      !writer.debug,
		MinifyIdentifiers: !writer.debug,
		MinifyWhitespace:  !writer.debug,
	})

	if len(transpiled.Errors) > 0 {
		return nil, fmt.Errorf("bootstrap script failed with: %v", transpiled.Errors)
	}

	writer.scriptContent = string(transpiled.Code)

	return writer, nil
}

// Write renders the payload as an HTML page
func (w *HTMLWriter) Write(out io.Writer, payload *plot.Payload) error {
	encoded, err := payload.JSON()
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}

	title := "plotspec"
	if t := payload.Figure.Layout.Title; t != nil && t.Text != "" {
		title = t.Text
	}

	// json.Marshal escapes <, > and &, so the payload cannot close the script tag
	err = w.page.Execute(out, map[string]any{
		"Title":     title,
		"PlotlyURL": w.plotlyURL,
		"Payload":   template.JS(encoded),
		"Script":    template.JS(w.scriptContent),
	})
	if err != nil {
		return fmt.Errorf("template execution failed: %w", err)
	}
	return nil
}

// WriteFile renders the payload into the file at path
func (w *HTMLWriter) WriteFile(path string, payload *plot.Payload) error {
	var buf bytes.Buffer
	if err := w.Write(&buf, payload); err != nil {
		return err
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	w.log.WithFields(map[string]any{
		"path":   path,
		"bytes":  buf.Len(),
		"traces": len(payload.Figure.Data),
	}).Info("html exported")
	return nil
}
