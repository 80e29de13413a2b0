// Package cidr carves a base address block into non-overlapping,
// equal-size subnet blocks.
//
// The carving is hierarchical: the base block is split into one slice per
// subnet group (rounded up to a power of two), and each slice is split into
// enough equal slots to hold the largest group in every availability zone.
// All subnets in a plan therefore share one prefix length, and a group can
// grow to its full zone spread later without renumbering its neighbours.
package cidr

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/bits"
	"net/netip"
)

var (
	// ErrInsufficientAddressSpace is returned when the base block cannot be
	// subdivided into the requested number of subnets.
	ErrInsufficientAddressSpace = errors.New("insufficient address space")

	// ErrInvalidLayout is returned when the requested layout is malformed.
	ErrInvalidLayout = errors.New("invalid subnet layout")
)

// Carve splits base into one slice of subnet blocks per group.
//
// counts holds the number of subnets wanted per group, in group order.
// zones is the availability-zone spread the plan must leave room for: each
// group is sized to hold its largest peer's count in every zone, so sizing
// is uniform across groups and stable as zones are added.
//
// The returned slices are indexed [group][subnet]. Subnet j of group i
// occupies slot i*slotsPerGroup + j of the subdivision, so output is fully
// determined by the input. Carve never returns a partial plan.
func Carve(base netip.Prefix, counts []int, zones int) ([][]netip.Prefix, error) {
	if !base.IsValid() {
		return nil, fmt.Errorf("%w: base block is not a valid prefix", ErrInvalidLayout)
	}
	if len(counts) == 0 {
		return nil, fmt.Errorf("%w: no subnet groups requested", ErrInvalidLayout)
	}
	if zones < 1 {
		return nil, fmt.Errorf("%w: zone count %d, need at least 1", ErrInvalidLayout, zones)
	}

	maxCount := 0
	for i, c := range counts {
		if c < 1 {
			return nil, fmt.Errorf("%w: group %d requests %d subnets, need at least 1", ErrInvalidLayout, i, c)
		}
		if c > maxCount {
			maxCount = c
		}
	}

	base = base.Masked()

	groupBits := log2Ceil(len(counts))
	slotBits := log2Ceil(maxCount * zones)
	// A subnet must be strictly smaller than the block it came from.
	if groupBits+slotBits == 0 {
		slotBits = 1
	}

	newBits := base.Bits() + groupBits + slotBits
	if newBits > base.Addr().BitLen() {
		return nil, fmt.Errorf("%w: %s cannot hold %d groups of %d slots (would need /%d)",
			ErrInsufficientAddressSpace, base, 1<<groupBits, 1<<slotBits, newBits)
	}

	slotsPerGroup := uint64(1) << slotBits
	hostShift := uint(base.Addr().BitLen() - newBits)

	plan := make([][]netip.Prefix, len(counts))
	for i, c := range counts {
		group := make([]netip.Prefix, c)
		for j := 0; j < c; j++ {
			slot := uint64(i)*slotsPerGroup + uint64(j)
			group[j] = netip.PrefixFrom(addrAdd(base.Addr(), slot, hostShift), newBits)
		}
		plan[i] = group
	}
	return plan, nil
}

// log2Ceil returns the smallest b such that 1<<b >= n.
func log2Ceil(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}

// addrAdd returns addr + (x << shift), staying within addr's family.
func addrAdd(addr netip.Addr, x uint64, shift uint) netip.Addr {
	if addr.Is4() {
		a := addr.As4()
		v := binary.BigEndian.Uint32(a[:]) + uint32(x)<<shift
		binary.BigEndian.PutUint32(a[:], v)
		return netip.AddrFrom4(a)
	}

	a := addr.As16()
	hi := binary.BigEndian.Uint64(a[:8])
	lo := binary.BigEndian.Uint64(a[8:])
	if shift < 64 {
		prev := lo
		lo += x << shift
		hi += x >> (64 - shift)
		if lo < prev {
			hi++
		}
	} else {
		hi += x << (shift - 64)
	}
	binary.BigEndian.PutUint64(a[:8], hi)
	binary.BigEndian.PutUint64(a[8:], lo)
	return netip.AddrFrom16(a)
}
