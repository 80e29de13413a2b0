package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	netweave "github.com/netweave/netweave"
	"github.com/netweave/netweave/internal/config"
	"github.com/netweave/netweave/internal/validate"
)

// newValidateCmd creates the "validate" subcommand for checking topologies.
func newValidateCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "validate [config]",
		Short: "Check the topology for issues",
		Long: `Validate loads a topology config, allocates subnet addresses and runs
every invariant check.

Checks performed:
  - Network blocks must not overlap each other
  - Subnets must sit inside their network's block, without overlap
  - Links must name declared networks, one declaration per pair
  - Subnets must leave room for usable host addresses

Examples:
    netweave validate topology.yaml
    netweave validate topology.yaml --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args, outputFormat)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "Output format: text or json")

	return cmd
}

// runValidate allocates the topology and runs the check battery.
func runValidate(args []string, format string) error {
	cfg, err := config.Load(configPath(args))
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	topo, err := cfg.Build()
	if err != nil {
		// Allocation failures are findings too, reported like any check
		validateResult := netweave.ValidateResult{
			Success: false,
			Issues: []netweave.ValidationIssue{{
				Severity: "error",
				Code:     "NET000",
				Message:  err.Error(),
			}},
		}
		return outputValidateResult(validateResult, format)
	}

	issues := validate.Run(topo)

	validateResult := netweave.ValidateResult{
		Success:  !validate.HasErrors(issues),
		Networks: len(topo.Networks),
		Subnets:  topo.SubnetCount(),
		Issues:   toValidationIssues(issues),
	}

	return outputValidateResult(validateResult, format)
}

func outputValidateResult(result netweave.ValidateResult, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))

	case "text":
		if result.Success && len(result.Issues) == 0 {
			fmt.Printf("Validation passed: %d networks, %d subnets OK\n", result.Networks, result.Subnets)
			return nil
		}

		if result.Success {
			fmt.Printf("Validation passed with warnings: %d networks, %d subnets\n", result.Networks, result.Subnets)
		} else {
			fmt.Println("Validation FAILED:")
		}
		for _, issue := range result.Issues {
			fmt.Printf("  %s\n", formatIssue(issue))
		}

	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if !result.Success {
		os.Exit(1)
	}

	return nil
}

// toValidationIssues converts check findings into their result form.
func toValidationIssues(issues []validate.Issue) []netweave.ValidationIssue {
	if len(issues) == 0 {
		return nil
	}
	out := make([]netweave.ValidationIssue, len(issues))
	for i, issue := range issues {
		out[i] = netweave.ValidationIssue{
			Severity: string(issue.Severity),
			Code:     issue.Code,
			Message:  issue.Message,
			Entity:   issue.Entity,
		}
	}
	return out
}

// formatIssue renders one finding for terminal display.
func formatIssue(issue netweave.ValidationIssue) string {
	s := fmt.Sprintf("%s %s: %s", severityLabel(issue.Severity), issue.Code, issue.Message)
	if issue.Entity != "" {
		s += fmt.Sprintf(" (%s)", issue.Entity)
	}
	return s
}

func severityLabel(severity string) string {
	switch severity {
	case "error":
		return "ERROR"
	case "warning":
		return "WARNING"
	default:
		return severity
	}
}
