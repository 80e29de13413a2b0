package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	netweave "github.com/netweave/netweave"
	"github.com/netweave/netweave/internal/config"
)

func newListCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "list [config]",
		Short: "Show the computed address plan",
		Long: `List allocates subnet addresses for the topology and displays the plan
without rendering an artifact.

Examples:
    netweave list topology.yaml
    netweave list topology.yaml --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(args, outputFormat)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "Output format: text or json")

	return cmd
}

func runList(args []string, format string) error {
	cfg, err := config.Load(configPath(args))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	topo, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("allocation failed: %w", err)
	}

	// Rows follow declaration then allocation order, already deterministic
	listResult := netweave.ListResult{
		Subnets: make([]netweave.ListSubnet, 0, topo.SubnetCount()),
	}
	for i := range topo.Networks {
		n := &topo.Networks[i]
		for _, s := range n.Subnets {
			listResult.Subnets = append(listResult.Subnets, netweave.ListSubnet{
				Network: n.Name,
				Tier:    string(s.Tier),
				Zone:    s.Zone,
				CIDR:    s.Block.String(),
			})
		}
	}

	return outputListResult(listResult, format)
}

func outputListResult(result netweave.ListResult, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))

	case "text":
		if len(result.Subnets) == 0 {
			fmt.Println("No subnets allocated.")
			return nil
		}

		nameWidth, tierWidth := len("NETWORK"), len("TIER")
		for _, s := range result.Subnets {
			if len(s.Network) > nameWidth {
				nameWidth = len(s.Network)
			}
			if len(s.Tier) > tierWidth {
				tierWidth = len(s.Tier)
			}
		}

		fmt.Printf("Address plan (%d subnets):\n\n", len(result.Subnets))
		fmt.Printf("  %-*s  %-*s  %4s  %s\n", nameWidth, "NETWORK", tierWidth, "TIER", "ZONE", "CIDR")
		for _, s := range result.Subnets {
			fmt.Printf("  %-*s  %-*s  %4d  %s\n", nameWidth, s.Network, tierWidth, s.Tier, s.Zone, s.CIDR)
		}

	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	return nil
}
