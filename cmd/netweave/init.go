package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/spf13/cobra"
)

// validProjectName matches valid project names (alphanumeric, hyphens, underscores)
var validProjectName = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [project-name]",
		Short: "Create a new netweave project",
		Long: `Init creates a new project directory with a starter topology config.

The starter describes two networks joined through a transit gateway hub,
each with public, private and gateway-attachment subnets across two
availability zones.

Examples:
    netweave init staging-network     # Creates ./staging-network/
    netweave init lab                 # Creates ./lab/`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(".", args[0])
		},
	}
}

// runInit creates a new project in {workspaceDir}/{projectName}/
func runInit(workspaceDir, projectName string) error {
	if !validProjectName.MatchString(projectName) {
		return fmt.Errorf("invalid project name %q: must start with a letter and contain only letters, numbers, hyphens, or underscores", projectName)
	}

	projectPath := filepath.Join(workspaceDir, projectName)
	if _, err := os.Stat(projectPath); err == nil {
		return fmt.Errorf("project already exists: %s", projectPath)
	}

	if err := os.MkdirAll(projectPath, 0755); err != nil {
		return fmt.Errorf("creating project directory: %w", err)
	}

	topologyYAML := fmt.Sprintf(`name: %s
description: Two networks joined through a transit gateway

networks:
  - name: vpc1
    cidr: 10.0.0.0/22
    azs: 2
    subnets:
      - {tier: public, count: 2}
      - {tier: private, count: 2}
      - {tier: gateway-attachment, count: 2}

  - name: vpc2
    cidr: 10.0.4.0/22
    azs: 2
    subnets:
      - {tier: public, count: 2}
      - {tier: private, count: 2}
      - {tier: gateway-attachment, count: 2}

links:
  - {from: vpc1, to: vpc2}
`, projectName)

	if err := os.WriteFile(filepath.Join(projectPath, "topology.yaml"), []byte(topologyYAML), 0644); err != nil {
		return fmt.Errorf("writing topology.yaml: %w", err)
	}

	gitignore := `# Rendered artifacts
template.json
template.yaml
manifests.yaml

# IDE
.idea/
.vscode/
*.swp

# OS
.DS_Store
`
	if err := os.WriteFile(filepath.Join(projectPath, ".gitignore"), []byte(gitignore), 0644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	fmt.Printf("Created project: %s/\n", projectPath)
	fmt.Printf("  └── topology.yaml\n")
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Printf("  netweave validate ./%s/topology.yaml\n", projectName)
	fmt.Printf("  netweave plan ./%s/topology.yaml\n", projectName)
	fmt.Println()

	return nil
}
