// Package netaddr enumerates the host's network interface addresses and
// reduces them to the per-family sets reported by the prober.
//
// Record gathering is platform specific (rtnetlink on Linux, the net
// package on Darwin); filtering and decoding are shared. A Record is a
// borrowed view of one OS interface-address entry: the gatherers copy the
// address payload out of OS-owned storage before returning, and nothing in
// this package retains or frees OS data.
package netaddr

import (
	"net/netip"
	"strings"
)

// Family tags the address payload of a Record. Records with an unknown
// family are ignored; the payload is only interpreted after the tag has
// been checked.
type Family int

const (
	FamilyUnknown Family = iota
	FamilyIPv4
	FamilyIPv6
)

// Flags is the portable subset of interface and address state the filter
// chain inspects. Gatherers translate OS flag bitmasks into these bits.
type Flags uint32

const (
	// FlagRunning is set when the owning interface is currently running.
	FlagRunning Flags = 1 << iota
	// FlagLoopback is set when the owning interface is the loopback.
	FlagLoopback
	// FlagDeprecated is set when the OS marks the address deprecated
	// (Linux IFA_F_DEPRECATED). Not reported on Darwin.
	FlagDeprecated
)

// Record is one interface-address entry. Addr is the raw address payload
// (4 bytes for IPv4, 16 for IPv6); nil means the OS supplied no address
// for the entry.
type Record struct {
	Family Family
	Flags  Flags
	Addr   []byte
}

// Sets holds the decoded, deduplicated addresses per family, in arbitrary
// order.
type Sets struct {
	V4 []netip.Addr
	V6 []netip.Addr
}

// Collect runs the filter chain over records and decodes the survivors
// into per-family sets. The chain skips, in order: records with no address
// payload, records on interfaces that are not running, loopback records,
// and deprecated-flagged records. IPv6 link-local addresses (leading bytes
// 0xfe 0x80) are excluded after decoding. Duplicate addresses collapse.
func Collect(records []Record) Sets {
	v4 := make(map[netip.Addr]struct{})
	v6 := make(map[netip.Addr]struct{})
	for _, r := range records {
		if len(r.Addr) == 0 {
			continue
		}
		if r.Flags&FlagRunning == 0 {
			continue
		}
		if r.Flags&FlagLoopback != 0 {
			continue
		}
		if r.Flags&FlagDeprecated != 0 {
			continue
		}
		switch r.Family {
		case FamilyIPv4:
			if a, ok := decode4(r.Addr); ok {
				v4[a] = struct{}{}
			}
		case FamilyIPv6:
			if a, ok := decode6(r.Addr); ok {
				v6[a] = struct{}{}
			}
		}
	}

	var sets Sets
	for a := range v4 {
		sets.V4 = append(sets.V4, a)
	}
	for a := range v6 {
		sets.V6 = append(sets.V6, a)
	}
	return sets
}

// decode4 interprets a 4-byte IPv4 payload. Payloads of any other length
// are rejected rather than reinterpreted.
func decode4(data []byte) (netip.Addr, bool) {
	if len(data) != 4 {
		return netip.Addr{}, false
	}
	return netip.AddrFrom4([4]byte(data)), true
}

// decode6 interprets a 16-byte IPv6 payload, rejecting link-local
// addresses.
func decode6(data []byte) (netip.Addr, bool) {
	if len(data) != 16 {
		return netip.Addr{}, false
	}
	if data[0] == 0xfe && data[1] == 0x80 {
		return netip.Addr{}, false
	}
	return netip.AddrFrom16([16]byte(data)), true
}

// Render returns the fixed-size address listing for the prober: a single
// element holding the comma-joined IPv4 set. The IPv6 set is gathered and
// decoded but intentionally not emitted; the omission is part of the
// reporting contract, not an oversight.
func (s Sets) Render() []string {
	parts := make([]string, 0, len(s.V4))
	for _, a := range s.V4 {
		parts = append(parts, a.String())
	}
	return []string{strings.Join(parts, ", ")}
}
