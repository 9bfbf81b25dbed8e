package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/raykavin/plotspec"
	"github.com/raykavin/plotspec/pkg/dataset"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// manifest lists the charts rendered by the batch command. Relative paths
// are resolved against the manifest directory.
type manifest struct {
	Charts []struct {
		Name string `yaml:"name"`
		Spec string `yaml:"spec"`
		Data string `yaml:"data"`
	} `yaml:"charts"`
}

func buildBatchCmd() *cobra.Command {
	batchCmd := &cobra.Command{
		Use:   "batch",
		Short: "Compile every chart listed in a manifest",
		RunE:  runBatch,
	}

	batchCmd.Flags().StringVarP(&manifestFile, "manifest", "m", "", "Manifest file (e.g. ./charts.yaml)")
	batchCmd.Flags().BoolVar(&writeHTML, "html", false, "Also export an HTML page per chart")
	batchCmd.MarkFlagRequired("manifest")

	return batchCmd
}

func runBatch(cmd *cobra.Command, args []string) error {
	jobs, err := loadManifest(manifestFile)
	if err != nil {
		return err
	}

	engine, release, err := newEngine(plotspec.WithProgress(os.Stderr))
	if err != nil {
		return err
	}
	defer release()

	if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	results := engine.RenderAll(cmd.Context(), jobs)
	fmt.Fprintln(os.Stderr)

	failed := 0
	for _, result := range results {
		if result.Err != nil {
			failed++
			log.WithError(result.Err).WithField("chart", result.Name).Warn("chart skipped")
			continue
		}

		content, err := result.Payload.JSON()
		if err != nil {
			return err
		}

		path := filepath.Join(cfg.Output.Dir, result.Name+".json")
		if err := os.WriteFile(path, content, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}

		if writeHTML {
			htmlPath := filepath.Join(cfg.Output.Dir, result.Name+".html")
			if err := engine.Export(htmlPath, result.Payload); err != nil {
				return err
			}
		}
	}

	if err := plotspec.Summary(cmd.OutOrStdout(), results); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d charts failed", failed, len(results))
	}
	return nil
}

// loadManifest reads the manifest and loads every spec and data file
func loadManifest(path string) ([]plotspec.Job, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var m manifest
	if err := yaml.Unmarshal(content, &m); err != nil {
		return nil, fmt.Errorf("invalid manifest %s: %w", path, err)
	}

	base := filepath.Dir(path)
	resolve := func(p string) string {
		if filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(base, p)
	}

	jobs := make([]plotspec.Job, 0, len(m.Charts))
	for i, chart := range m.Charts {
		if chart.Name == "" {
			return nil, fmt.Errorf("manifest chart #%d has no name", i+1)
		}

		raw, err := os.ReadFile(resolve(chart.Spec))
		if err != nil {
			return nil, fmt.Errorf("chart %s: %w", chart.Name, err)
		}

		table, err := dataset.Load(resolve(chart.Data))
		if err != nil {
			return nil, fmt.Errorf("chart %s: %w", chart.Name, err)
		}

		jobs = append(jobs, plotspec.Job{
			Name:  chart.Name,
			Spec:  specInput(chart.Spec, raw),
			Table: table,
		})
	}
	return jobs, nil
}

// specInput returns the spec in a form spec.Parse accepts. YAML documents
// are decoded to a mapping; anything else is handed over as JSON text so
// parse errors surface in the job result.
func specInput(path string, raw []byte) any {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var doc any
		if err := yaml.Unmarshal(raw, &doc); err == nil {
			if mapping, ok := doc.(map[string]any); ok {
				return mapping
			}
		}
	}
	return raw
}
