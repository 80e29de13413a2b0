// Command netweave plans multi-VPC network topologies and renders them as
// deployable artifacts.
//
// Usage:
//
//	netweave plan topology.yaml       Render a CloudFormation template
//	netweave validate topology.yaml   Check the topology for issues
//	netweave list topology.yaml       Show the computed address plan
//	netweave init myproject           Create a new project
//	netweave version                  Show version
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "netweave",
		Short: "Plan multi-VPC network topologies",
		Long: `netweave allocates subnet addresses for multi-VPC network topologies and
renders them as CloudFormation templates or Kubernetes (ACK) manifests.

Describe each network, its address block and its subnet layout in YAML:

    networks:
      - name: vpc1
        cidr: 10.0.0.0/22
        azs: 2
        subnets:
          - {tier: public, count: 2}
          - {tier: private, count: 2}

Then render the deployable artifact:

    netweave plan topology.yaml`,
	}

	rootCmd.AddCommand(
		newPlanCmd(),
		newValidateCmd(),
		newListCmd(),
		newGraphCmd(),
		newDiffCmd(),
		newLintCmd(),
		newInitCmd(),
		newWatchCmd(),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("netweave %s\n", getVersion())
		},
	}
}

// defaultConfig is the config file used when no argument is given.
const defaultConfig = "topology.yaml"

// configPath returns the config file argument, or the default.
func configPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return defaultConfig
}
