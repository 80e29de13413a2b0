// Package topology models multi-network address plans: named virtual
// networks carved into tiered subnets, joined by hub links.
package topology

import (
	"errors"
	"fmt"
	"net/netip"

	"github.com/netweave/netweave/internal/cidr"
)

// Tier is the routing role of a subnet.
type Tier string

const (
	// TierPublic subnets route to an internet gateway and map public IPs.
	TierPublic Tier = "public"
	// TierPrivate subnets route out through a NAT gateway only.
	TierPrivate Tier = "private"
	// TierGatewayAttachment subnets exist solely to anchor hub attachments.
	TierGatewayAttachment Tier = "gateway-attachment"
)

// Tiers lists all known tiers in canonical order.
var Tiers = []Tier{TierPublic, TierPrivate, TierGatewayAttachment}

// ParseTier converts a config string into a Tier.
func ParseTier(s string) (Tier, error) {
	for _, t := range Tiers {
		if s == string(t) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown subnet tier %q (want public, private or gateway-attachment)", s)
}

// String returns the tier's config spelling.
func (t Tier) String() string { return string(t) }

func (t Tier) valid() bool {
	for _, known := range Tiers {
		if t == known {
			return true
		}
	}
	return false
}

// TierCount is one entry of a network's subnet layout: how many subnets of
// a tier the network wants, spread round-robin across its zones.
type TierCount struct {
	Tier  Tier
	Count int
}

// Subnet is one allocated block with its role and zone placement.
type Subnet struct {
	Tier  Tier
	Zone  int
	Block netip.Prefix
}

// Network is a virtual network: its base block, the layout it asked for and
// the subnets allocated to it, in layout order.
type Network struct {
	Name    string
	Block   netip.Prefix
	Layout  []TierCount
	Zones   int
	Subnets []Subnet
}

// TierSubnets returns the network's subnets of the given tier, in
// allocation order.
func (n *Network) TierSubnets(tier Tier) []Subnet {
	var out []Subnet
	for _, s := range n.Subnets {
		if s.Tier == tier {
			out = append(out, s)
		}
	}
	return out
}

// Link joins two networks through the hub.
type Link struct {
	From string
	To   string
}

// Topology is the root aggregate: networks in declaration order plus the
// links between them. Built once, then read-only.
type Topology struct {
	Networks []Network
	Links    []Link
}

// Network returns the named network, if present.
func (t *Topology) Network(name string) (*Network, bool) {
	for i := range t.Networks {
		if t.Networks[i].Name == name {
			return &t.Networks[i], true
		}
	}
	return nil, false
}

// SubnetCount returns the total number of subnets across all networks.
func (t *Topology) SubnetCount() int {
	n := 0
	for i := range t.Networks {
		n += len(t.Networks[i].Subnets)
	}
	return n
}

// NetworkSpec describes one network before allocation.
type NetworkSpec struct {
	Name   string
	Block  netip.Prefix
	Layout []TierCount
	Zones  int
}

// LinkSpec names two networks to be joined.
type LinkSpec struct {
	From string
	To   string
}

var (
	// ErrDuplicateNetwork is returned when two networks share a name.
	ErrDuplicateNetwork = errors.New("duplicate network name")

	// ErrUnknownNetwork is returned when a link names a network that is
	// not part of the topology.
	ErrUnknownNetwork = errors.New("unknown network reference")
)

// Build allocates subnets for every network spec and assembles the
// topology. Link endpoints are resolved here, before any validation runs,
// so a dangling reference fails fast. Allocation failures carry the
// offending network's name.
func Build(specs []NetworkSpec, links []LinkSpec) (*Topology, error) {
	seen := make(map[string]bool, len(specs))
	networks := make([]Network, 0, len(specs))

	for _, spec := range specs {
		if spec.Name == "" {
			return nil, errors.New("network name must not be empty")
		}
		if seen[spec.Name] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateNetwork, spec.Name)
		}
		seen[spec.Name] = true

		counts := make([]int, len(spec.Layout))
		tiers := make(map[Tier]bool, len(spec.Layout))
		for i, tc := range spec.Layout {
			if !tc.Tier.valid() {
				return nil, fmt.Errorf("network %s: %w: unknown tier %q", spec.Name, cidr.ErrInvalidLayout, tc.Tier)
			}
			if tiers[tc.Tier] {
				return nil, fmt.Errorf("network %s: %w: tier %s repeated", spec.Name, cidr.ErrInvalidLayout, tc.Tier)
			}
			tiers[tc.Tier] = true
			counts[i] = tc.Count
		}

		plan, err := cidr.Carve(spec.Block, counts, spec.Zones)
		if err != nil {
			return nil, fmt.Errorf("network %s: %w", spec.Name, err)
		}

		subnets := make([]Subnet, 0, len(spec.Layout))
		for i, tc := range spec.Layout {
			for j, block := range plan[i] {
				subnets = append(subnets, Subnet{
					Tier:  tc.Tier,
					Zone:  j % spec.Zones,
					Block: block,
				})
			}
		}

		networks = append(networks, Network{
			Name:    spec.Name,
			Block:   spec.Block.Masked(),
			Layout:  spec.Layout,
			Zones:   spec.Zones,
			Subnets: subnets,
		})
	}

	built := make([]Link, 0, len(links))
	for _, l := range links {
		if !seen[l.From] {
			return nil, fmt.Errorf("%w: link endpoint %s", ErrUnknownNetwork, l.From)
		}
		if !seen[l.To] {
			return nil, fmt.Errorf("%w: link endpoint %s", ErrUnknownNetwork, l.To)
		}
		built = append(built, Link{From: l.From, To: l.To})
	}

	return &Topology{Networks: networks, Links: built}, nil
}
