package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	netweave "github.com/netweave/netweave"
	"github.com/netweave/netweave/internal/config"
	"github.com/netweave/netweave/internal/emit"
	"github.com/netweave/netweave/internal/validate"
)

func newPlanCmd() *cobra.Command {
	var (
		target       string
		outputFormat string
		outputFile   string
	)

	cmd := &cobra.Command{
		Use:   "plan [config]",
		Short: "Render the topology as a deployable artifact",
		Long: `Plan loads a topology config, allocates subnet addresses, validates the
result and renders it for the chosen target.

Targets:
    cloudformation    A single CloudFormation template (json or yaml)
    k8s               ACK custom resources as a YAML manifest stream

Examples:
    netweave plan topology.yaml
    netweave plan topology.yaml -o template.json
    netweave plan topology.yaml --format yaml
    netweave plan topology.yaml --target k8s`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(args, target, outputFormat, outputFile)
		},
	}

	cmd.Flags().StringVarP(&target, "target", "t", "cloudformation", "Output target: cloudformation or k8s")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "Output format: json or yaml")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")

	return cmd
}

func runPlan(args []string, target, format, outputFile string) error {
	cfg, err := config.Load(configPath(args))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	topo, err := cfg.Build()
	if err != nil {
		planResult := netweave.PlanResult{
			Success: false,
			Errors:  []string{err.Error()},
		}
		return outputPlanResult(planResult, nil, outputFile)
	}

	issues := validate.Run(topo)
	if validate.HasErrors(issues) {
		planResult := netweave.PlanResult{
			Success: false,
			Issues:  toValidationIssues(issues),
		}
		return outputPlanResult(planResult, nil, outputFile)
	}

	// Warnings do not block emission, but still surface on stderr
	for _, issue := range toValidationIssues(issues) {
		fmt.Fprintln(os.Stderr, formatIssue(issue))
	}

	artifact, err := emit.Emit(topo, emit.Target(target), emit.Options{
		Format:      emit.Format(format),
		Description: cfg.Description,
	})
	if err != nil {
		return fmt.Errorf("emitting %s: %w", target, err)
	}

	networks := make([]string, 0, len(topo.Networks))
	for i := range topo.Networks {
		networks = append(networks, topo.Networks[i].Name)
	}

	planResult := netweave.PlanResult{
		Success:  true,
		Target:   target,
		Networks: networks,
	}

	return outputPlanResult(planResult, artifact, outputFile)
}

// outputPlanResult writes the raw artifact on success. Failures print every
// issue to stderr and emit nothing, so a partial artifact never reaches an
// output file.
func outputPlanResult(result netweave.PlanResult, artifact []byte, outputFile string) error {
	if !result.Success {
		for _, issue := range result.Issues {
			fmt.Fprintln(os.Stderr, formatIssue(issue))
		}
		for _, e := range result.Errors {
			fmt.Fprintln(os.Stderr, e)
		}
		return fmt.Errorf("plan failed")
	}

	if outputFile == "" {
		fmt.Println(string(artifact))
		return nil
	}

	return os.WriteFile(outputFile, artifact, 0644)
}
