package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	netweave "github.com/netweave/netweave"
	"github.com/netweave/netweave/internal/differ"
)

func newDiffCmd() *cobra.Command {
	var (
		outputFormat string
		ignoreOrder  bool
	)

	cmd := &cobra.Command{
		Use:   "diff <template1> <template2>",
		Short: "Compare two rendered templates",
		Long: `Diff compares two CloudFormation templates resource by resource and
reports added, removed and modified resources.

Templates may be JSON or YAML, in any combination.

Examples:
    netweave diff before.json after.json
    netweave diff before.json after.yaml --format json
    netweave diff before.json after.json --ignore-order`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(args[0], args[1], outputFormat, ignoreOrder)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "Output format: text or json")
	cmd.Flags().BoolVar(&ignoreOrder, "ignore-order", false, "Ignore array element order when comparing")

	return cmd
}

func runDiff(file1, file2, format string, ignoreOrder bool) error {
	result, err := differ.CompareFiles(file1, file2, differ.Options{
		IgnoreOrder: ignoreOrder,
	})
	if err != nil {
		return fmt.Errorf("diff failed: %w", err)
	}

	return outputDiffResult(result, format)
}

func outputDiffResult(result *netweave.DiffResult, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))

	case "text":
		if result.Same {
			fmt.Println("Templates are identical.")
			return nil
		}

		for _, entry := range result.Added {
			fmt.Printf("+ %s (%s)\n", entry.Resource, entry.Type)
		}
		for _, entry := range result.Removed {
			fmt.Printf("- %s (%s)\n", entry.Resource, entry.Type)
		}
		for _, entry := range result.Modified {
			fmt.Printf("~ %s (%s)\n", entry.Resource, entry.Type)
			for _, change := range entry.Changes {
				fmt.Printf("    %s\n", change)
			}
		}

		fmt.Printf("\n%d added, %d removed, %d modified\n",
			result.Summary.Added, result.Summary.Removed, result.Summary.Modified)

	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if !result.Same {
		os.Exit(1)
	}

	return nil
}
