package main

import (
	"github.com/raykavin/plotspec"
	"github.com/raykavin/plotspec/pkg/dataset"
	"github.com/spf13/cobra"
)

func buildDescribeCmd() *cobra.Command {
	describeCmd := &cobra.Command{
		Use:   "describe",
		Short: "Summarize the columns of a data file",
		RunE:  runDescribe,
	}

	describeCmd.Flags().StringVarP(&dataFile, "data", "d", "", "Data file, CSV, TSV or JSON records")
	describeCmd.Flags().StringVar(&histColumn, "hist", "", "Draw the distribution of a numeric column")
	describeCmd.MarkFlagRequired("data")

	return describeCmd
}

func runDescribe(cmd *cobra.Command, args []string) error {
	table, err := dataset.Load(dataFile)
	if err != nil {
		return err
	}
	return plotspec.Describe(cmd.OutOrStdout(), table, histColumn)
}
