package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	netweave "github.com/netweave/netweave"
	"github.com/netweave/netweave/internal/lint"
)

func newLintCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "lint <template>",
		Short: "Check a rendered template with cfn-lint",
		Long: `Lint checks a rendered CloudFormation template with cfn-lint-go.

The linter runs as a library dependency, no external cfn-lint binary is
needed. Warnings are reported but only errors fail the check.

Examples:
    netweave plan topology.yaml -o template.json
    netweave lint template.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(args[0], outputFormat)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "Output format: text or json")

	return cmd
}

func runLint(templatePath, format string) error {
	report, err := lint.File(templatePath)
	if err != nil {
		return fmt.Errorf("lint failed: %w", err)
	}

	issues := make([]netweave.LintIssue, 0, report.TotalIssues())
	for _, issue := range report.All() {
		issues = append(issues, netweave.LintIssue{
			File:     templatePath,
			Severity: strings.ToLower(issue.Level),
			Message:  issue.Message,
			Rule:     issue.Rule,
		})
	}

	lintResult := netweave.LintResult{
		Success: report.Passed,
		Issues:  issues,
	}

	return outputLintResult(lintResult, report, format)
}

func outputLintResult(result netweave.LintResult, report *lint.Report, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))

	case "text":
		if report.TotalIssues() == 0 {
			fmt.Println("No issues found.")
			return nil
		}

		for _, issue := range report.All() {
			fmt.Printf("%s: %s\n", issue.Level, issue.String())
		}
		fmt.Printf("\n%d errors, %d warnings, %d informational\n",
			len(report.Errors), len(report.Warnings), len(report.Informational))

	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if !result.Success {
		os.Exit(2) // Exit code 2 for lint errors
	}

	return nil
}
