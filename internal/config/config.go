// Package config loads topology configs: the YAML document naming each
// network, its address block, zone spread and subnet layout, plus the hub
// links joining networks.
package config

import (
	"errors"
	"fmt"
	"net/netip"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/netweave/netweave/internal/topology"
)

// Config is a parsed topology config.
type Config struct {
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	Networks    []Network `yaml:"networks"`
	Links       []Link    `yaml:"links"`
}

// Network declares one virtual network.
type Network struct {
	Name    string   `yaml:"name"`
	CIDR    string   `yaml:"cidr"`
	AZs     int      `yaml:"azs"`
	Subnets []Subnet `yaml:"subnets"`
}

// Subnet declares how many subnets of a tier the network wants.
type Subnet struct {
	Tier  string `yaml:"tier"`
	Count int    `yaml:"count"`
}

// Link joins two networks through the hub.
type Link struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Load reads and parses a topology config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// Parse parses a topology config document.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if len(cfg.Networks) == 0 {
		return nil, errors.New("config declares no networks")
	}
	return &cfg, nil
}

// Specs converts the config into build inputs. The zone spread defaults to
// 1 when omitted; everything else must be explicit.
func (c *Config) Specs() ([]topology.NetworkSpec, []topology.LinkSpec, error) {
	specs := make([]topology.NetworkSpec, 0, len(c.Networks))
	for _, n := range c.Networks {
		block, err := netip.ParsePrefix(n.CIDR)
		if err != nil {
			return nil, nil, fmt.Errorf("network %s: parsing cidr %q: %w", n.Name, n.CIDR, err)
		}

		zones := n.AZs
		if zones == 0 {
			zones = 1
		}

		layout := make([]topology.TierCount, 0, len(n.Subnets))
		for _, s := range n.Subnets {
			tier, err := topology.ParseTier(s.Tier)
			if err != nil {
				return nil, nil, fmt.Errorf("network %s: %w", n.Name, err)
			}
			layout = append(layout, topology.TierCount{Tier: tier, Count: s.Count})
		}

		specs = append(specs, topology.NetworkSpec{
			Name:   n.Name,
			Block:  block,
			Layout: layout,
			Zones:  zones,
		})
	}

	links := make([]topology.LinkSpec, 0, len(c.Links))
	for _, l := range c.Links {
		links = append(links, topology.LinkSpec{From: l.From, To: l.To})
	}
	return specs, links, nil
}

// Build runs the pipeline from parsed config to allocated topology.
func (c *Config) Build() (*topology.Topology, error) {
	specs, links, err := c.Specs()
	if err != nil {
		return nil, err
	}
	return topology.Build(specs, links)
}
