package main

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/raykavin/plotspec/internal/config"
	"github.com/spf13/cobra"
)

func buildCacheCmd() *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect the payload cache",
	}

	cacheCmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List cached payloads",
			RunE:  runCacheList,
		},
		&cobra.Command{
			Use:   "purge",
			Short: "Remove every cached payload",
			RunE:  runCachePurge,
		},
	)

	return cacheCmd
}

func runCacheList(cmd *cobra.Command, args []string) error {
	cache, err := openCache()
	if err != nil {
		return err
	}
	defer cache.Close()

	entries, err := cache.Entries()
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"Key", "Traces", "Created"})
	for _, entry := range entries {
		table.Append([]string{
			entry.Key,
			fmt.Sprint(entry.Traces),
			entry.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	table.Render()
	return nil
}

func runCachePurge(cmd *cobra.Command, args []string) error {
	cache, err := openCache()
	if err != nil {
		return err
	}
	defer cache.Close()

	removed, err := cache.Purge()
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "removed %d payload(s)\n", removed)
	return nil
}

func buildConfigCmd() *cobra.Command {
	var path string

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.SaveDefault(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "configuration written to %s\n", path)
			return nil
		},
	}
	initCmd.Flags().StringVarP(&path, "path", "p", "./plotspec.yaml", "Destination file")

	configCmd.AddCommand(initCmd)
	return configCmd
}
