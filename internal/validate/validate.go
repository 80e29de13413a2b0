// Package validate checks a built topology against its invariants.
//
// Every check in the battery always runs, so one pass reports every defect.
// Issues of error severity block emission; warnings do not.
package validate

import (
	"github.com/netweave/netweave/internal/topology"
)

// Severity classifies a validation finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is a single validation finding.
type Issue struct {
	Severity Severity
	Code     string
	Message  string
	// Entity names the offending network, link or subnet.
	Entity string
}

// Check is one topology invariant.
type Check interface {
	ID() string
	Description() string
	Run(t *topology.Topology) []Issue
}

// Checks returns the battery in its fixed execution order.
func Checks() []Check {
	return []Check{
		NetworkOverlap{},
		SubnetContainment{},
		SubnetOverlap{},
		TierCoverage{},
		LinkEndpoints{},
		SelfLink{},
		LinkSymmetry{},
		MinimumSubnetSize{},
	}
}

// Run executes every check and returns all findings in battery order.
// Running twice on the same topology yields the same issues.
func Run(t *topology.Topology) []Issue {
	var issues []Issue
	for _, c := range Checks() {
		issues = append(issues, c.Run(t)...)
	}
	return issues
}

// HasErrors reports whether any issue is of error severity.
func HasErrors(issues []Issue) bool {
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}
