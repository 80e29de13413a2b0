package graph

import (
	"net/netip"
	"strings"
	"testing"

	"github.com/netweave/netweave/internal/topology"
)

func dualNetworkTopology(t *testing.T) *topology.Topology {
	t.Helper()

	layout := []topology.TierCount{
		{Tier: topology.TierPublic, Count: 2},
		{Tier: topology.TierPrivate, Count: 2},
		{Tier: topology.TierGatewayAttachment, Count: 2},
	}
	specs := []topology.NetworkSpec{
		{Name: "vpc1", Block: netip.MustParsePrefix("10.0.0.0/22"), Layout: layout, Zones: 2},
		{Name: "vpc2", Block: netip.MustParsePrefix("10.0.4.0/22"), Layout: layout, Zones: 2},
	}
	links := []topology.LinkSpec{{From: "vpc1", To: "vpc2"}}

	topo, err := topology.Build(specs, links)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return topo
}

func TestGenerateDOT(t *testing.T) {
	topo := dualNetworkTopology(t)

	gen := &Generator{Format: FormatDOT}
	output, err := gen.GenerateString(topo)
	if err != nil {
		t.Fatalf("GenerateString failed: %v", err)
	}

	if !strings.Contains(output, "digraph") {
		t.Error("DOT output should contain 'digraph'")
	}
	if !strings.Contains(output, "rankdir") {
		t.Error("DOT output should contain rankdir attribute")
	}
}

func TestGenerateClusters(t *testing.T) {
	topo := dualNetworkTopology(t)

	gen := &Generator{}
	output, err := gen.GenerateString(topo)
	if err != nil {
		t.Fatalf("GenerateString failed: %v", err)
	}

	for _, want := range []string{"cluster_vpc1", "cluster_vpc2", "vpc1 10.0.0.0/22", "vpc2 10.0.4.0/22"} {
		if !strings.Contains(output, want) {
			t.Errorf("output should contain %q", want)
		}
	}
}

func TestGenerateSubnetNodes(t *testing.T) {
	topo := dualNetworkTopology(t)

	gen := &Generator{}
	output, err := gen.GenerateString(topo)
	if err != nil {
		t.Fatalf("GenerateString failed: %v", err)
	}

	for _, want := range []string{
		"vpc1-public-1",
		"vpc1-private-2",
		"vpc2-gateway-attachment-1",
		"public-1\\n[10.0.0.0/26]",
		"private-2\\n[10.0.1.64/26]",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output should contain %q", want)
		}
	}
}

func TestGenerateHub(t *testing.T) {
	topo := dualNetworkTopology(t)

	gen := &Generator{}
	output, err := gen.GenerateString(topo)
	if err != nil {
		t.Fatalf("GenerateString failed: %v", err)
	}

	if !strings.Contains(output, "transit gateway") {
		t.Error("linked topology should contain a hub node")
	}
	if !strings.Contains(output, "blue") {
		t.Error("attachment edges should be colored blue")
	}
}

func TestGenerateNoLinksNoHub(t *testing.T) {
	specs := []topology.NetworkSpec{
		{
			Name:   "solo",
			Block:  netip.MustParsePrefix("10.0.0.0/24"),
			Layout: []topology.TierCount{{Tier: topology.TierPublic, Count: 1}},
			Zones:  1,
		},
	}
	topo, err := topology.Build(specs, nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	gen := &Generator{}
	output, err := gen.GenerateString(topo)
	if err != nil {
		t.Fatalf("GenerateString failed: %v", err)
	}

	if strings.Contains(output, "transit gateway") {
		t.Error("unlinked topology should not contain a hub node")
	}
	if !strings.Contains(output, "cluster_solo") {
		t.Error("output should still contain the network cluster")
	}
}

func TestGenerateMermaid(t *testing.T) {
	topo := dualNetworkTopology(t)

	gen := &Generator{Format: FormatMermaid}
	output, err := gen.GenerateString(topo)
	if err != nil {
		t.Fatalf("GenerateString failed: %v", err)
	}

	if !strings.Contains(output, "graph") && !strings.Contains(output, "flowchart") {
		t.Errorf("expected mermaid graph/flowchart, got:\n%s", output)
	}
	if strings.Contains(output, "digraph") {
		t.Error("expected mermaid format, not DOT")
	}
}

func TestGenerateDefaultFormat(t *testing.T) {
	topo := dualNetworkTopology(t)

	gen := &Generator{}
	output, err := gen.GenerateString(topo)
	if err != nil {
		t.Fatalf("GenerateString failed: %v", err)
	}

	if !strings.Contains(output, "digraph") {
		t.Error("default format should be DOT")
	}
}

func TestGenerateDeterministic(t *testing.T) {
	topo := dualNetworkTopology(t)

	gen := &Generator{}
	first, err := gen.GenerateString(topo)
	if err != nil {
		t.Fatalf("GenerateString failed: %v", err)
	}
	second, err := gen.GenerateString(topo)
	if err != nil {
		t.Fatalf("GenerateString failed: %v", err)
	}

	if first != second {
		t.Error("output should be identical across runs")
	}
}
