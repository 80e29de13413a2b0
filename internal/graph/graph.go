// Package graph renders topologies as DOT and Mermaid diagrams.
package graph

import (
	"io"
	"strconv"
	"strings"

	"github.com/emicklei/dot"

	"github.com/netweave/netweave/internal/topology"
)

// Format specifies the output format for the graph.
type Format string

const (
	// FormatDOT outputs Graphviz DOT format.
	FormatDOT Format = "dot"
	// FormatMermaid outputs Mermaid format for GitHub/markdown rendering.
	FormatMermaid Format = "mermaid"
)

// hubNode is the node representing the transit gateway hub.
const hubNode = "TransitGateway"

// Generator renders built topologies: one cluster per network containing its
// subnet nodes, plus a hub node with attachment edges when links exist.
type Generator struct {
	// Format specifies the output format (dot or mermaid). Defaults to dot.
	Format Format
}

// Generate renders the topology graph and writes it to w.
func (g *Generator) Generate(t *topology.Topology, w io.Writer) error {
	graph := g.buildGraph(t)

	format := g.Format
	if format == "" {
		format = FormatDOT
	}

	var output string
	if format == FormatMermaid {
		output = dot.MermaidGraph(graph, dot.MermaidTopToBottom)
	} else {
		output = graph.String()
	}

	_, err := w.Write([]byte(output))
	return err
}

// GenerateString is a convenience method that returns the graph as a string.
func (g *Generator) GenerateString(t *topology.Topology) (string, error) {
	var sb strings.Builder
	if err := g.Generate(t, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// buildGraph creates the dot.Graph structure for the topology.
func (g *Generator) buildGraph(t *topology.Topology) *dot.Graph {
	graph := dot.NewGraph(dot.Directed)
	graph.Attr("rankdir", "TB")

	// Set default node style
	graph.NodeInitializer(func(n dot.Node) {
		n.Attr("shape", "box")
		n.Attr("fontname", "Arial")
	})

	// Set default edge style
	graph.EdgeInitializer(func(e dot.Edge) {
		e.Attr("fontname", "Arial")
		e.Attr("fontsize", "10")
	})

	anchors := make(map[string]dot.Node, len(t.Networks))
	for i := range t.Networks {
		n := &t.Networks[i]
		cluster := graph.Subgraph("cluster_"+n.Name, dot.ClusterOption{})
		cluster.Attr("label", n.Name+" "+n.Block.String())
		cluster.Attr("style", "rounded")
		cluster.Attr("bgcolor", "lightyellow")

		g.addSubnetNodes(cluster, n, anchors)
	}

	if len(t.Links) > 0 {
		hub := graph.Node(hubNode)
		hub.Attr("shape", "hexagon")
		hub.Label("transit gateway")

		linked := make(map[string]bool)
		for _, l := range t.Links {
			if l.From != l.To {
				linked[l.From] = true
				linked[l.To] = true
			}
		}
		for i := range t.Networks {
			name := t.Networks[i].Name
			if !linked[name] {
				continue
			}
			e := graph.Edge(anchors[name], hub)
			e.Attr("color", "blue")
			e.Attr("dir", "both")
		}
	}

	return graph
}

// addSubnetNodes adds one node per subnet and records the network's hub
// anchor: the first gateway-attachment subnet, falling back to the first
// subnet of any tier.
func (g *Generator) addSubnetNodes(cluster *dot.Graph, n *topology.Network, anchors map[string]dot.Node) {
	counts := make(map[topology.Tier]int, len(n.Layout))
	for _, s := range n.Subnets {
		counts[s.Tier]++
		id := subnetNodeID(n.Name, s.Tier, counts[s.Tier])
		node := cluster.Node(id)
		node.Label(string(s.Tier) + "-" + strconv.Itoa(counts[s.Tier]) + "\\n[" + s.Block.String() + "]")

		if s.Tier == topology.TierGatewayAttachment && counts[s.Tier] == 1 {
			anchors[n.Name] = node
		} else if _, ok := anchors[n.Name]; !ok {
			anchors[n.Name] = node
		}
	}
}

// subnetNodeID builds a unique node identifier for a subnet.
// e.g., ("vpc1", "public", 1) -> "vpc1-public-1"
func subnetNodeID(network string, tier topology.Tier, num int) string {
	return network + "-" + string(tier) + "-" + strconv.Itoa(num)
}
