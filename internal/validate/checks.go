package validate

import (
	"fmt"

	"github.com/netweave/netweave/internal/topology"
)

// NetworkOverlap reports pairs of networks whose base blocks overlap.
type NetworkOverlap struct{}

func (NetworkOverlap) ID() string { return "NET001" }
func (NetworkOverlap) Description() string {
	return "Network base blocks must be pairwise disjoint"
}

func (c NetworkOverlap) Run(t *topology.Topology) []Issue {
	var issues []Issue
	for i := range t.Networks {
		for j := i + 1; j < len(t.Networks); j++ {
			a, b := &t.Networks[i], &t.Networks[j]
			if a.Block.Overlaps(b.Block) {
				issues = append(issues, Issue{
					Severity: SeverityError,
					Code:     c.ID(),
					Message:  fmt.Sprintf("network blocks overlap: %s %s, %s %s", a.Name, a.Block, b.Name, b.Block),
					Entity:   b.Name,
				})
			}
		}
	}
	return issues
}

// SubnetContainment reports subnets that fall outside their network's block.
type SubnetContainment struct{}

func (SubnetContainment) ID() string { return "NET002" }
func (SubnetContainment) Description() string {
	return "Every subnet must be contained in its network's base block"
}

func (c SubnetContainment) Run(t *topology.Topology) []Issue {
	var issues []Issue
	for i := range t.Networks {
		n := &t.Networks[i]
		for _, s := range n.Subnets {
			if !n.Block.Overlaps(s.Block) || s.Block.Bits() < n.Block.Bits() {
				issues = append(issues, Issue{
					Severity: SeverityError,
					Code:     c.ID(),
					Message:  fmt.Sprintf("subnet %s not contained in %s (%s)", s.Block, n.Name, n.Block),
					Entity:   n.Name,
				})
			}
		}
	}
	return issues
}

// SubnetOverlap reports overlapping subnets within one network. The
// allocator already guarantees disjointness; this catches hand-assembled
// topologies that bypassed it.
type SubnetOverlap struct{}

func (SubnetOverlap) ID() string { return "NET003" }
func (SubnetOverlap) Description() string {
	return "Subnets within a network must be pairwise disjoint"
}

func (c SubnetOverlap) Run(t *topology.Topology) []Issue {
	var issues []Issue
	for i := range t.Networks {
		n := &t.Networks[i]
		for j, a := range n.Subnets {
			for k := j + 1; k < len(n.Subnets); k++ {
				b := n.Subnets[k]
				if a.Block.Overlaps(b.Block) {
					issues = append(issues, Issue{
						Severity: SeverityError,
						Code:     c.ID(),
						Message:  fmt.Sprintf("subnets overlap in %s: %s, %s", n.Name, a.Block, b.Block),
						Entity:   n.Name,
					})
				}
			}
		}
	}
	return issues
}

// TierCoverage reports networks whose layout declares a tier that no
// subnet actually carries.
type TierCoverage struct{}

func (TierCoverage) ID() string { return "NET004" }
func (TierCoverage) Description() string {
	return "Every declared tier must have at least one subnet"
}

func (c TierCoverage) Run(t *topology.Topology) []Issue {
	var issues []Issue
	for i := range t.Networks {
		n := &t.Networks[i]
		for _, tc := range n.Layout {
			if len(n.TierSubnets(tc.Tier)) == 0 {
				issues = append(issues, Issue{
					Severity: SeverityError,
					Code:     c.ID(),
					Message:  fmt.Sprintf("network %s declares tier %s but has no %s subnet", n.Name, tc.Tier, tc.Tier),
					Entity:   n.Name,
				})
			}
		}
	}
	return issues
}

// LinkEndpoints reports links whose endpoints do not resolve to a network.
// The builder refuses such links; this covers topologies assembled by hand.
type LinkEndpoints struct{}

func (LinkEndpoints) ID() string { return "NET005" }
func (LinkEndpoints) Description() string {
	return "Link endpoints must reference networks in the topology"
}

func (c LinkEndpoints) Run(t *topology.Topology) []Issue {
	var issues []Issue
	for _, l := range t.Links {
		for _, name := range []string{l.From, l.To} {
			if _, ok := t.Network(name); !ok {
				issues = append(issues, Issue{
					Severity: SeverityError,
					Code:     c.ID(),
					Message:  fmt.Sprintf("link endpoint %s does not name a network", name),
					Entity:   name,
				})
			}
		}
	}
	return issues
}

// SelfLink reports networks linked to themselves.
type SelfLink struct{}

func (SelfLink) ID() string { return "NET006" }
func (SelfLink) Description() string {
	return "A network must not be linked to itself"
}

func (c SelfLink) Run(t *topology.Topology) []Issue {
	var issues []Issue
	for _, l := range t.Links {
		if l.From == l.To {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Code:     c.ID(),
				Message:  fmt.Sprintf("network %s is linked to itself", l.From),
				Entity:   l.From,
			})
		}
	}
	return issues
}

// LinkSymmetry reports linked networks with differing subnet counts.
// Asymmetric pairs still route, so this is advisory.
type LinkSymmetry struct{}

func (LinkSymmetry) ID() string { return "NET007" }
func (LinkSymmetry) Description() string {
	return "Linked networks should have matching subnet counts"
}

func (c LinkSymmetry) Run(t *topology.Topology) []Issue {
	var issues []Issue
	for _, l := range t.Links {
		from, okFrom := t.Network(l.From)
		to, okTo := t.Network(l.To)
		if !okFrom || !okTo || from.Name == to.Name {
			continue
		}
		if len(from.Subnets) != len(to.Subnets) {
			issues = append(issues, Issue{
				Severity: SeverityWarning,
				Code:     c.ID(),
				Message: fmt.Sprintf("linked networks differ in subnet count: %s has %d, %s has %d",
					from.Name, len(from.Subnets), to.Name, len(to.Subnets)),
				Entity: from.Name + "<->" + to.Name,
			})
		}
	}
	return issues
}

// MinimumSubnetSize reports IPv4 subnets smaller than /28, the smallest
// subnet most providers will accept.
type MinimumSubnetSize struct{}

func (MinimumSubnetSize) ID() string { return "NET008" }
func (MinimumSubnetSize) Description() string {
	return "IPv4 subnets should be /28 or larger"
}

func (c MinimumSubnetSize) Run(t *topology.Topology) []Issue {
	var issues []Issue
	for i := range t.Networks {
		n := &t.Networks[i]
		for _, s := range n.Subnets {
			if s.Block.Addr().Is4() && s.Block.Bits() > 28 {
				issues = append(issues, Issue{
					Severity: SeverityWarning,
					Code:     c.ID(),
					Message:  fmt.Sprintf("subnet %s in %s is smaller than /28", s.Block, n.Name),
					Entity:   n.Name,
				})
			}
		}
	}
	return issues
}
