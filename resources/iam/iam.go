// Package iam contains typed CloudFormation IAM resource declarations.
package iam

// Role represents an AWS::IAM::Role resource.
type Role struct {
	RoleName                 any    `json:"RoleName,omitempty"`
	AssumeRolePolicyDocument any    `json:"AssumeRolePolicyDocument,omitempty"`
	ManagedPolicyArns        []any  `json:"ManagedPolicyArns,omitempty"`
	Path                     string `json:"Path,omitempty"`
	Tags                     []any  `json:"Tags,omitempty"`
}

func (r Role) ResourceType() string { return "AWS::IAM::Role" }

// InstanceProfile represents an AWS::IAM::InstanceProfile resource.
type InstanceProfile struct {
	InstanceProfileName any    `json:"InstanceProfileName,omitempty"`
	Roles               []any  `json:"Roles,omitempty"`
	Path                string `json:"Path,omitempty"`
}

func (r InstanceProfile) ResourceType() string { return "AWS::IAM::InstanceProfile" }
