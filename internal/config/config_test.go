package config

import (
	"net/netip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netweave/netweave/internal/topology"
)

const dualNetworkYAML = `name: multi-vpc-lab
description: Two VPCs joined by a transit gateway.
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
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(dualNetworkYAML))
	require.NoError(t, err)

	assert.Equal(t, "multi-vpc-lab", cfg.Name)
	assert.Equal(t, "Two VPCs joined by a transit gateway.", cfg.Description)
	require.Len(t, cfg.Networks, 2)
	require.Len(t, cfg.Links, 1)

	vpc1 := cfg.Networks[0]
	assert.Equal(t, "vpc1", vpc1.Name)
	assert.Equal(t, "10.0.0.0/22", vpc1.CIDR)
	assert.Equal(t, 2, vpc1.AZs)
	require.Len(t, vpc1.Subnets, 3)
	assert.Equal(t, Subnet{Tier: "public", Count: 2}, vpc1.Subnets[0])
	assert.Equal(t, Subnet{Tier: "gateway-attachment", Count: 2}, vpc1.Subnets[2])

	assert.Equal(t, Link{From: "vpc1", To: "vpc2"}, cfg.Links[0])
}

func TestParse_BadYAML(t *testing.T) {
	_, err := Parse([]byte("networks: [unclosed"))
	require.Error(t, err)
}

func TestParse_NoNetworks(t *testing.T) {
	_, err := Parse([]byte("name: empty\nnetworks: []\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no networks")
}

func TestSpecs(t *testing.T) {
	cfg, err := Parse([]byte(dualNetworkYAML))
	require.NoError(t, err)

	specs, links, err := cfg.Specs()
	require.NoError(t, err)
	require.Len(t, specs, 2)
	require.Len(t, links, 1)

	assert.Equal(t, "vpc1", specs[0].Name)
	assert.Equal(t, netip.MustParsePrefix("10.0.0.0/22"), specs[0].Block)
	assert.Equal(t, 2, specs[0].Zones)
	assert.Equal(t, []topology.TierCount{
		{Tier: topology.TierPublic, Count: 2},
		{Tier: topology.TierPrivate, Count: 2},
		{Tier: topology.TierGatewayAttachment, Count: 2},
	}, specs[0].Layout)

	assert.Equal(t, topology.LinkSpec{From: "vpc1", To: "vpc2"}, links[0])
}

func TestSpecs_BadCIDR(t *testing.T) {
	cfg := &Config{Networks: []Network{{Name: "vpc1", CIDR: "10.0.0.0/55"}}}
	_, _, err := cfg.Specs()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vpc1")
	assert.Contains(t, err.Error(), "10.0.0.0/55")
}

func TestSpecs_UnknownTier(t *testing.T) {
	cfg := &Config{Networks: []Network{
		{
			Name:    "vpc1",
			CIDR:    "10.0.0.0/22",
			Subnets: []Subnet{{Tier: "dmz", Count: 2}},
		},
	}}
	_, _, err := cfg.Specs()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dmz")
}

func TestSpecs_DefaultZones(t *testing.T) {
	cfg := &Config{Networks: []Network{
		{
			Name:    "vpc1",
			CIDR:    "10.0.0.0/22",
			Subnets: []Subnet{{Tier: "private", Count: 1}},
		},
	}}
	specs, _, err := cfg.Specs()
	require.NoError(t, err)
	assert.Equal(t, 1, specs[0].Zones)
}

func TestBuild(t *testing.T) {
	cfg, err := Parse([]byte(dualNetworkYAML))
	require.NoError(t, err)

	topo, err := cfg.Build()
	require.NoError(t, err)
	require.Len(t, topo.Networks, 2)
	assert.Equal(t, 12, topo.SubnetCount())

	vpc1, ok := topo.Network("vpc1")
	require.True(t, ok)
	assert.Equal(t, netip.MustParsePrefix("10.0.0.0/26"), vpc1.Subnets[0].Block)

	require.Len(t, topo.Links, 1)
	assert.Equal(t, topology.Link{From: "vpc1", To: "vpc2"}, topo.Links[0])
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "topology.yaml")
	require.NoError(t, os.WriteFile(path, []byte(dualNetworkYAML), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "multi-vpc-lab", cfg.Name)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}
