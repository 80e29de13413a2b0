package cidr

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func p(s string) netip.Prefix {
	return netip.MustParsePrefix(s)
}

func TestCarve_ThreeGroupsTwoZones(t *testing.T) {
	plan, err := Carve(p("10.0.0.0/22"), []int{2, 2, 2}, 2)
	require.NoError(t, err)

	expected := [][]netip.Prefix{
		{p("10.0.0.0/26"), p("10.0.0.64/26")},
		{p("10.0.1.0/26"), p("10.0.1.64/26")},
		{p("10.0.2.0/26"), p("10.0.2.64/26")},
	}
	assert.Equal(t, expected, plan)
}

func TestCarve_SecondBlockSameLayout(t *testing.T) {
	plan, err := Carve(p("10.0.4.0/22"), []int{2, 2, 2}, 2)
	require.NoError(t, err)

	expected := [][]netip.Prefix{
		{p("10.0.4.0/26"), p("10.0.4.64/26")},
		{p("10.0.5.0/26"), p("10.0.5.64/26")},
		{p("10.0.6.0/26"), p("10.0.6.64/26")},
	}
	assert.Equal(t, expected, plan)
}

func TestCarve_AllSubnetsDisjointAndContained(t *testing.T) {
	base := p("10.0.0.0/22")
	plan, err := Carve(base, []int{2, 2, 2}, 2)
	require.NoError(t, err)

	var all []netip.Prefix
	for _, group := range plan {
		all = append(all, group...)
	}
	require.Len(t, all, 6)

	for i, s := range all {
		assert.Equal(t, 26, s.Bits())
		assert.True(t, base.Overlaps(s), "%s not inside %s", s, base)
		assert.True(t, base.Bits() < s.Bits())
		for j := i + 1; j < len(all); j++ {
			assert.False(t, s.Overlaps(all[j]), "%s overlaps %s", s, all[j])
		}
	}
}

func TestCarve_Deterministic(t *testing.T) {
	first, err := Carve(p("172.16.0.0/16"), []int{3, 2, 1}, 3)
	require.NoError(t, err)

	second, err := Carve(p("172.16.0.0/16"), []int{3, 2, 1}, 3)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCarve_SingleGroupOddCount(t *testing.T) {
	// 3 subnets over 2 zones reserves 8 slots, so /24 yields /27 blocks.
	plan, err := Carve(p("10.0.0.0/24"), []int{3}, 2)
	require.NoError(t, err)

	require.Len(t, plan, 1)
	assert.Equal(t, []netip.Prefix{
		p("10.0.0.0/27"), p("10.0.0.32/27"), p("10.0.0.64/27"),
	}, plan[0])
}

func TestCarve_SingleSubnetStillSubdivides(t *testing.T) {
	plan, err := Carve(p("10.0.0.0/22"), []int{1}, 1)
	require.NoError(t, err)

	require.Len(t, plan, 1)
	require.Len(t, plan[0], 1)
	assert.Equal(t, p("10.0.0.0/23"), plan[0][0])
}

func TestCarve_UnmaskedBaseIsNormalized(t *testing.T) {
	plan, err := Carve(netip.MustParsePrefix("10.0.1.5/22"), []int{2}, 2)
	require.NoError(t, err)

	assert.Equal(t, p("10.0.0.0/24"), plan[0][0])
}

func TestCarve_IPv6(t *testing.T) {
	plan, err := Carve(p("2001:db8::/56"), []int{2, 2}, 2)
	require.NoError(t, err)

	expected := [][]netip.Prefix{
		{p("2001:db8::/59"), p("2001:db8:0:20::/59")},
		{p("2001:db8:0:80::/59"), p("2001:db8:0:a0::/59")},
	}
	assert.Equal(t, expected, plan)
}

func TestCarve_InsufficientSpace(t *testing.T) {
	tests := []struct {
		name   string
		base   string
		counts []int
		zones  int
	}{
		{
			name:   "small block large layout",
			base:   "10.0.0.0/28",
			counts: []int{8, 8, 8},
			zones:  2,
		},
		{
			name:   "tiny block",
			base:   "10.0.0.0/30",
			counts: []int{2, 2, 2},
			zones:  2,
		},
		{
			name:   "host route base",
			base:   "10.0.0.1/32",
			counts: []int{1},
			zones:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := Carve(p(tt.base), tt.counts, tt.zones)
			assert.ErrorIs(t, err, ErrInsufficientAddressSpace)
			assert.Nil(t, plan)
		})
	}
}

func TestCarve_InvalidLayout(t *testing.T) {
	tests := []struct {
		name   string
		counts []int
		zones  int
	}{
		{name: "no groups", counts: nil, zones: 2},
		{name: "zero count", counts: []int{2, 0, 2}, zones: 2},
		{name: "negative count", counts: []int{-1}, zones: 2},
		{name: "zero zones", counts: []int{2}, zones: 0},
		{name: "negative zones", counts: []int{2}, zones: -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := Carve(p("10.0.0.0/22"), tt.counts, tt.zones)
			assert.ErrorIs(t, err, ErrInvalidLayout)
			assert.Nil(t, plan)
		})
	}
}

func TestLog2Ceil(t *testing.T) {
	cases := map[int]int{1: 0, 2: 1, 3: 2, 4: 2, 5: 3, 6: 3, 8: 3, 9: 4, 16: 4}
	for n, want := range cases {
		assert.Equal(t, want, log2Ceil(n), "log2Ceil(%d)", n)
	}
}
