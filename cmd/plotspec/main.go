package main

import (
	"fmt"
	"os"

	"github.com/raykavin/plotspec"
	"github.com/raykavin/plotspec/internal/config"
	"github.com/raykavin/plotspec/pkg/export"
	"github.com/raykavin/plotspec/pkg/logger"
	"github.com/raykavin/plotspec/pkg/storage"
	"github.com/spf13/cobra"
)

// Command line flags
var (
	configFile string

	// Shared flags
	specFile string
	dataFile string
	htmlFile string

	// Compile command flags
	outputFile string

	// Batch command flags
	manifestFile string
	writeHTML    bool

	// Describe command flags
	histColumn string
)

var (
	cfg *config.Config
	log logger.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:               "plotspec",
		Short:             "Compile visualization specs into chart payloads",
		Version:           "1.0.0",
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Configuration file (e.g. ./plotspec.yaml)")

	rootCmd.AddCommand(
		buildCompileCmd(),
		buildValidateCmd(),
		buildBatchCmd(),
		buildDescribeCmd(),
		buildCacheCmd(),
		buildConfigCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads the configuration and the logger before any command runs
func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfg, err = config.Load(configFile); err != nil {
		return err
	}

	if log, err = cfg.NewLogger(os.Stderr); err != nil {
		return err
	}
	return nil
}

// openCache opens the payload cache configured in cfg
func openCache() (*storage.PayloadCache, error) {
	return storage.Open(cfg.Cache.Path,
		storage.WithTTL(cfg.Cache.TTL),
		storage.WithLogger(log),
	)
}

// newEngine builds an engine from cfg. The returned function releases the
// cache when one was opened.
func newEngine(options ...plotspec.Option) (*plotspec.Engine, func(), error) {
	release := func() {}

	htmlOptions := []export.Option{export.WithLogger(log)}
	if cfg.Export.PlotlyURL != "" {
		htmlOptions = append(htmlOptions, export.WithPlotlyURL(cfg.Export.PlotlyURL))
	}
	if cfg.Export.Debug {
		htmlOptions = append(htmlOptions, export.WithDebug())
	}

	writer, err := export.NewHTMLWriter(htmlOptions...)
	if err != nil {
		return nil, release, err
	}

	options = append(options, plotspec.WithLogger(log), plotspec.WithHTMLWriter(writer))

	if cfg.Cache.Enabled {
		cache, err := openCache()
		if err != nil {
			return nil, release, err
		}

		release = func() {
			if err := cache.Close(); err != nil {
				log.WithError(err).Warn("failed to close payload cache")
			}
		}
		options = append(options, plotspec.WithCache(cache))
	}

	engine, err := plotspec.New(options...)
	if err != nil {
		release()
		return nil, func() {}, err
	}
	return engine, release, nil
}
