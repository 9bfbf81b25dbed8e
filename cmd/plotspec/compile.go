package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/raykavin/plotspec"
	"github.com/raykavin/plotspec/pkg/dataset"
	"github.com/raykavin/plotspec/pkg/spec"
	"github.com/spf13/cobra"
)

func buildCompileCmd() *cobra.Command {
	compileCmd := &cobra.Command{
		Use:   "compile",
		Short: "Compile a spec against a data file",
		RunE:  runCompile,
	}

	compileCmd.Flags().StringVarP(&specFile, "spec", "s", "", "Spec file, JSON or YAML (e.g. ./sales.yaml)")
	compileCmd.Flags().StringVarP(&dataFile, "data", "d", "", "Data file, CSV, TSV or JSON records (e.g. ./sales.csv)")
	compileCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Payload output file, stdout when empty")
	compileCmd.Flags().StringVar(&htmlFile, "html", "", "Also export a standalone HTML page")

	compileCmd.MarkFlagRequired("spec")
	compileCmd.MarkFlagRequired("data")

	return compileCmd
}

func runCompile(cmd *cobra.Command, args []string) error {
	s, err := spec.ParseFile(specFile)
	if err != nil {
		return reportSpecError(err)
	}

	table, err := dataset.Load(dataFile)
	if err != nil {
		return err
	}

	engine, release, err := newEngine()
	if err != nil {
		return err
	}
	defer release()

	payload, err := engine.Render(table, s)
	if err != nil {
		return err
	}

	content, err := payload.JSON()
	if err != nil {
		return err
	}

	if outputFile == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(content))
	} else if err := os.WriteFile(outputFile, content, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputFile, err)
	}

	if htmlFile != "" {
		return engine.Export(htmlFile, payload)
	}
	return nil
}

func buildValidateCmd() *cobra.Command {
	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a spec without compiling it",
		RunE:  runValidate,
	}

	validateCmd.Flags().StringVarP(&specFile, "spec", "s", "", "Spec file, JSON or YAML")
	validateCmd.MarkFlagRequired("spec")

	return validateCmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	if _, err := spec.ParseFile(specFile); err != nil {
		return reportSpecError(err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", specFile)
	return nil
}

// reportSpecError prints the violations table of a rejected spec
func reportSpecError(err error) error {
	var verr *spec.ValidationError
	if errors.As(err, &verr) {
		plotspec.Violations(os.Stderr, verr)
		return fmt.Errorf("%s: %d rule violation(s)", specFile, len(verr.Violations))
	}
	return err
}
