// Package lint checks rendered CloudFormation templates with cfn-lint-go.
// The linter is a library dependency; no external cfn-lint binary is needed.
package lint

import (
	"fmt"
	"os"
	"strings"

	cfnlint "github.com/lex00/cfn-lint-go/pkg/lint"
)

// Issue is a single linter finding.
type Issue struct {
	Rule    string `json:"rule"`
	Level   string `json:"level"` // "Error", "Warning", "Informational"
	Message string `json:"message"`
	Path    string `json:"path,omitempty"`
}

// String formats the issue for display.
func (i Issue) String() string {
	if i.Path != "" {
		return fmt.Sprintf("%s: %s (at %s)", i.Rule, i.Message, i.Path)
	}
	return fmt.Sprintf("%s: %s", i.Rule, i.Message)
}

// Report contains the categorized findings for one template file.
type Report struct {
	Passed        bool    `json:"passed"`
	Errors        []Issue `json:"errors"`
	Warnings      []Issue `json:"warnings"`
	Informational []Issue `json:"informational"`
}

// TotalIssues returns the total number of findings.
func (r *Report) TotalIssues() int {
	return len(r.Errors) + len(r.Warnings) + len(r.Informational)
}

// All returns every finding, errors first.
func (r *Report) All() []Issue {
	issues := make([]Issue, 0, r.TotalIssues())
	issues = append(issues, r.Errors...)
	issues = append(issues, r.Warnings...)
	issues = append(issues, r.Informational...)
	return issues
}

// File lints the CloudFormation template at path.
func File(path string) (*Report, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("template file not found: %s", path)
	}

	linter := cfnlint.New(cfnlint.Options{})
	matches, err := linter.LintFile(path)
	if err != nil {
		return nil, fmt.Errorf("running linter: %w", err)
	}

	report := &Report{
		Errors:        []Issue{},
		Warnings:      []Issue{},
		Informational: []Issue{},
	}

	// Categorize findings by level
	for _, match := range matches {
		issue := toIssue(match)

		switch match.Level {
		case "Error":
			report.Errors = append(report.Errors, issue)
		case "Warning":
			report.Warnings = append(report.Warnings, issue)
		default:
			report.Informational = append(report.Informational, issue)
		}
	}

	// Passed if no errors (warnings are acceptable)
	report.Passed = len(report.Errors) == 0

	return report, nil
}

// toIssue converts a cfn-lint-go match into an Issue.
func toIssue(match cfnlint.Match) Issue {
	pathStr := ""
	if len(match.Location.Path) > 0 {
		parts := make([]string, len(match.Location.Path))
		for i, p := range match.Location.Path {
			parts[i] = fmt.Sprintf("%v", p)
		}
		pathStr = strings.Join(parts, "/")
	}

	level := match.Level
	if level != "Error" && level != "Warning" {
		level = "Informational"
	}

	return Issue{
		Rule:    match.Rule.ID,
		Level:   level,
		Message: match.Message,
		Path:    pathStr,
	}
}
