package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/netweave/netweave/internal/config"
	"github.com/netweave/netweave/internal/graph"
)

func newGraphCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "graph [config]",
		Short: "Generate DOT graph of the topology",
		Long: `Generate a DOT or Mermaid format graph showing networks, their subnets
and the hub joining them.

The output can be rendered with Graphviz:
    netweave graph topology.yaml | dot -Tpng -o topology.png

Or used in GitHub markdown (Mermaid format):
    netweave graph topology.yaml -f mermaid`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGraph(args, outputFormat)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "dot", "Output format: dot or mermaid")

	return cmd
}

func runGraph(args []string, format string) error {
	cfg, err := config.Load(configPath(args))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	topo, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("allocation failed: %w", err)
	}

	var graphFormat graph.Format
	switch format {
	case "dot":
		graphFormat = graph.FormatDOT
	case "mermaid":
		graphFormat = graph.FormatMermaid
	default:
		return fmt.Errorf("unknown format: %s (use 'dot' or 'mermaid')", format)
	}

	gen := &graph.Generator{Format: graphFormat}
	return gen.Generate(topo, os.Stdout)
}
