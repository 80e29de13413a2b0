// Package netweave plans multi-VPC network topologies and emits them as
// infrastructure declarations.
//
// A topology config names each virtual network, its address block, its
// subnet layout (tier and count) and its availability zone spread, plus the
// hub links joining networks:
//
//	networks:
//	  - name: vpc1
//	    cidr: 10.0.0.0/22
//	    azs: 2
//	    subnets:
//	      - {tier: public, count: 2}
//	      - {tier: private, count: 2}
//	      - {tier: gateway-attachment, count: 2}
//	links:
//	  - {from: vpc1, to: vpc2}
//
// The netweave CLI allocates subnet CIDRs, validates the topology and emits
// a CloudFormation template or Kubernetes (ACK) manifests.
package netweave

// Resource represents a CloudFormation resource.
// All typed resource structs (ec2.VPC, iam.Role, etc.) implement this interface.
type Resource interface {
	// ResourceType returns the CloudFormation type (e.g., "AWS::EC2::VPC")
	ResourceType() string
}

// Template represents a CloudFormation template.
type Template struct {
	AWSTemplateFormatVersion string                 `json:"AWSTemplateFormatVersion" yaml:"AWSTemplateFormatVersion"`
	Description              string                 `json:"Description,omitempty" yaml:"Description,omitempty"`
	Parameters               map[string]Parameter   `json:"Parameters,omitempty" yaml:"Parameters,omitempty"`
	Resources                map[string]ResourceDef `json:"Resources" yaml:"Resources"`
	Outputs                  map[string]Output      `json:"Outputs,omitempty" yaml:"Outputs,omitempty"`
}

// ResourceDef is a single resource in the CloudFormation template.
type ResourceDef struct {
	Type       string         `json:"Type" yaml:"Type"`
	Properties map[string]any `json:"Properties,omitempty" yaml:"Properties,omitempty"`
	DependsOn  []string       `json:"DependsOn,omitempty" yaml:"DependsOn,omitempty"`
}

// Parameter is a CloudFormation template parameter.
type Parameter struct {
	Type          string   `json:"Type" yaml:"Type"`
	Description   string   `json:"Description,omitempty" yaml:"Description,omitempty"`
	Default       any      `json:"Default,omitempty" yaml:"Default,omitempty"`
	AllowedValues []string `json:"AllowedValues,omitempty" yaml:"AllowedValues,omitempty"`
}

// Output is a CloudFormation template output.
type Output struct {
	Description string `json:"Description,omitempty" yaml:"Description,omitempty"`
	Value       any    `json:"Value" yaml:"Value"`
	Export      *struct {
		Name any `json:"Name" yaml:"Name"`
	} `json:"Export,omitempty" yaml:"Export,omitempty"`
}

// PlanResult is the JSON output from `netweave plan`.
type PlanResult struct {
	Success  bool              `json:"success"`
	Target   string            `json:"target,omitempty"`
	Networks []string          `json:"networks,omitempty"`
	Issues   []ValidationIssue `json:"issues,omitempty"`
	Errors   []string          `json:"errors,omitempty"`
}

// ValidateResult is the JSON output from `netweave validate`.
type ValidateResult struct {
	Success  bool              `json:"success"`
	Networks int               `json:"networks"`
	Subnets  int               `json:"subnets"`
	Issues   []ValidationIssue `json:"issues,omitempty"`
}

// ValidationIssue is a single topology validation finding.
type ValidationIssue struct {
	Severity string `json:"severity"` // "error" or "warning"
	Code     string `json:"code"`
	Message  string `json:"message"`
	Entity   string `json:"entity,omitempty"`
}

// LintResult is the JSON output from `netweave lint`.
type LintResult struct {
	Success bool        `json:"success"`
	Issues  []LintIssue `json:"issues,omitempty"`
}

// LintIssue is a single template linting issue.
type LintIssue struct {
	File     string `json:"file"`
	Severity string `json:"severity"` // "error", "warning", "info"
	Message  string `json:"message"`
	Rule     string `json:"rule"`
}

// DiffResult is the JSON output from `netweave diff`.
type DiffResult struct {
	Same     bool        `json:"same"`
	Added    []DiffEntry `json:"added,omitempty"`
	Removed  []DiffEntry `json:"removed,omitempty"`
	Modified []DiffEntry `json:"modified,omitempty"`
	Summary  DiffSummary `json:"summary"`
}

// DiffEntry is one resource-level difference between two templates.
type DiffEntry struct {
	Resource string   `json:"resource"`
	Type     string   `json:"type,omitempty"`
	Changes  []string `json:"changes,omitempty"`
}

// DiffSummary counts differences by kind.
type DiffSummary struct {
	Added    int `json:"added"`
	Removed  int `json:"removed"`
	Modified int `json:"modified"`
	Total    int `json:"total"`
}

// ListResult is the JSON output from `netweave list`.
type ListResult struct {
	Subnets []ListSubnet `json:"subnets"`
}

// ListSubnet is a single row of the computed address plan.
type ListSubnet struct {
	Network string `json:"network"`
	Tier    string `json:"tier"`
	Zone    int    `json:"zone"`
	CIDR    string `json:"cidr"`
}
