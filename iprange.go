// Package iprange represents IPv4/IPv6 CIDR ranges and the bit arithmetic
// over them: parsing, integer and binary conversions, range bounds and
// set-containment tests.
package iprange

import (
	"errors"
	"fmt"
	"net/netip"
	"strconv"
	"strings"

	"lukechampine.com/uint128"
)

var (
	ErrInvalidAddress = errors.New("iprange: invalid address")
	ErrInvalidPrefix  = errors.New("iprange: invalid prefix length")
	ErrMixedFamily    = errors.New("iprange: mixed address families")
)

// Family tags the address family of a range and carries its shape: bit
// width, term count and per-term width. Arithmetic is generic over these
// three numbers rather than re-matching the family at every call site.
type Family uint8

const (
	FamilyNone Family = iota
	V4
	V6
)

// Bits returns the family's address width in bits: 32 for IPv4, 128 for
// IPv6, 0 for the zero Family.
func (f Family) Bits() int {
	switch f {
	case V4:
		return 32
	case V6:
		return 128
	}
	return 0
}

// TermCount returns the number of groups in the family's canonical
// representation: 4 octets or 8 hextets.
func (f Family) TermCount() int {
	switch f {
	case V4:
		return 4
	case V6:
		return 8
	}
	return 0
}

// TermBits returns the width of one group: 8 for IPv4, 16 for IPv6.
func (f Family) TermBits() int {
	switch f {
	case V4:
		return 8
	case V6:
		return 16
	}
	return 0
}

func (f Family) String() string {
	switch f {
	case V4:
		return "ipv4"
	case V6:
		return "ipv6"
	}
	return "none"
}

// base returns the all-ones value spanning the family's bit width.
func (f Family) base() uint128.Uint128 {
	switch f {
	case V4:
		return uint128.From64(0xffffffff)
	case V6:
		return uint128.Max
	}
	return uint128.Zero
}

// netMask returns the all-ones-then-zeros network mask for a prefix
// length. The shift amount equals the bit width when bits is 0; shifts of
// the full width are well defined and yield the zero mask.
func (f Family) netMask(bits int) uint128.Uint128 {
	base := f.base()
	return base.Lsh(uint(f.Bits() - bits)).And(base)
}

// hostMask returns the all-host-bits-set value for a prefix length,
// 2^(Bits-bits) - 1.
func (f Family) hostMask(bits int) uint128.Uint128 {
	return f.base().Rsh(uint(bits))
}

// AddressRange is a single CIDR range: an address family, a network
// address and a prefix length. The stored address is always the network
// address of the range; construction masks away every bit below the
// prefix, so a host address supplied by the caller never survives as-is.
//
// The zero value is not a valid range. Values are immutable; every
// transform returns a new value, and values are safe for unrestricted
// concurrent use.
type AddressRange struct {
	family Family
	addr   uint128.Uint128
	bits   uint8
}

// Parse parses a range in "<address>" or "<address>/<bits>" form. The
// address part follows the usual textual rules (dotted quad for IPv4,
// colon hex with :: compression and optional dotted-quad tail for IPv6).
// Without a suffix the prefix length defaults to the family's identity
// length (32 or 128). Malformed addresses fail with ErrInvalidAddress;
// non-numeric or out-of-range prefix lengths fail with ErrInvalidPrefix.
func Parse(s string) (AddressRange, error) {
	addrText, bitsText, hasBits := strings.Cut(s, "/")
	addr, err := netip.ParseAddr(addrText)
	if err != nil {
		return AddressRange{}, fmt.Errorf("%w: %q", ErrInvalidAddress, addrText)
	}
	family := V6
	if addr.Is4() {
		family = V4
	}
	bits := family.Bits()
	if hasBits {
		n, err := strconv.ParseUint(bitsText, 10, 8)
		if err != nil || int(n) > family.Bits() {
			return AddressRange{}, fmt.Errorf("%w: %q", ErrInvalidPrefix, bitsText)
		}
		bits = int(n)
	}
	return FromInt(addrInt(addr, family), family, bits), nil
}

// MustParse is Parse for statically known inputs; it panics on error.
func MustParse(s string) AddressRange {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return r
}

// FromInt builds a range from the integer value of an address. The value
// is truncated to the family's bit width, and bits is clamped into
// [0, Bits] before masking, so FromInt never fails. The result stores the
// network address: value & ((base << (width-bits)) & base).
func FromInt(v uint128.Uint128, family Family, bits int) AddressRange {
	width := family.Bits()
	if bits < 0 {
		bits = 0
	}
	if bits > width {
		bits = width
	}
	return AddressRange{
		family: family,
		addr:   v.And(family.netMask(bits)),
		bits:   uint8(bits),
	}
}

// addrInt converts a parsed address to its integer value under the given
// family's width.
func addrInt(addr netip.Addr, family Family) uint128.Uint128 {
	if family == V4 {
		b := addr.As4()
		return uint128.From64(uint64(b[0])<<24 | uint64(b[1])<<16 | uint64(b[2])<<8 | uint64(b[3]))
	}
	b := addr.As16()
	return uint128.FromBytesBE(b[:])
}

// Family returns the range's family tag.
func (r AddressRange) Family() Family { return r.family }

// Bits returns the prefix length.
func (r AddressRange) Bits() int { return int(r.bits) }

// BitLen returns the family's identity length: 32 for IPv4 ranges, 128
// for IPv6 ranges, 0 for the zero value.
func (r AddressRange) BitLen() int { return r.family.Bits() }

// Int returns the integer value of the network address.
func (r AddressRange) Int() uint128.Uint128 { return r.addr }

// IsValid reports whether r was produced by a constructor. The zero
// AddressRange is not valid.
func (r AddressRange) IsValid() bool { return r.family == V4 || r.family == V6 }

// Is4 reports whether r is a well-formed IPv4 range. It is total: any
// malformed or zero value reports false rather than failing.
func (r AddressRange) Is4() bool { return r.family == V4 && int(r.bits) <= 32 }

// Is6 reports whether r is a well-formed IPv6 range.
func (r AddressRange) Is6() bool { return r.family == V6 && int(r.bits) <= 128 }

// IsSingleIP reports whether the range covers exactly one address, i.e.
// the prefix length equals the family's identity length.
func (r AddressRange) IsSingleIP() bool { return r.IsValid() && int(r.bits) == r.BitLen() }

// MaxInt returns the integer value of the highest address in the range:
// the network address with every host bit set.
func (r AddressRange) MaxInt() uint128.Uint128 {
	return r.addr.Or(r.family.hostMask(int(r.bits)))
}

// Max returns the highest address in the range as a single-host range.
// The result carries the identity prefix length, not r's.
func (r AddressRange) Max() AddressRange {
	return FromInt(r.MaxInt(), r.family, r.BitLen())
}

// Contains reports whether o is fully enclosed in r, comparing the two
// closed integer intervals [Int, MaxInt]. Ranges of different families
// never contain one another.
func (r AddressRange) Contains(o AddressRange) bool {
	if r.family != o.family || !r.IsValid() {
		return false
	}
	return r.addr.Cmp(o.addr) <= 0 && o.MaxInt().Cmp(r.MaxInt()) <= 0
}

// ContainsAddr reports whether a single address falls inside r.
func (r AddressRange) ContainsAddr(addr netip.Addr) bool {
	if !addr.IsValid() {
		return false
	}
	family := V6
	if addr.Is4() {
		family = V4
	}
	if family != r.family {
		return false
	}
	v := addrInt(addr, family)
	return r.addr.Cmp(v) <= 0 && v.Cmp(r.MaxInt()) <= 0
}

// Overlaps reports whether r and o share at least one address. Ranges of
// different families never overlap.
func (r AddressRange) Overlaps(o AddressRange) bool {
	if r.family != o.family || !r.IsValid() {
		return false
	}
	return r.addr.Cmp(o.MaxInt()) <= 0 && o.addr.Cmp(r.MaxInt()) <= 0
}
