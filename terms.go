package iprange

import (
	"net/netip"

	"lukechampine.com/uint128"
)

// Terms is the canonical group view of an address: four octets for IPv4
// or eight hextets for IPv6, most significant group first (network byte
// order).
type Terms []uint16

// Terms returns the range's network address as its canonical groups.
func (r AddressRange) Terms() Terms {
	switch r.family {
	case V4:
		v := uint32(r.addr.Lo)
		return Terms{uint16(v >> 24), uint16(v >> 16 & 0xff), uint16(v >> 8 & 0xff), uint16(v & 0xff)}
	case V6:
		var b [16]byte
		r.addr.PutBytesBE(b[:])
		t := make(Terms, 8)
		for i := range t {
			t[i] = uint16(b[2*i])<<8 | uint16(b[2*i+1])
		}
		return t
	}
	return nil
}

// Int folds the groups into the address's integer value, most significant
// group first: acc = acc*256 + octet for 4 groups, acc = acc*65536 +
// hextet otherwise. Group values are not bounds-checked here; that is the
// job of Is4/Is6.
func (t Terms) Int() uint128.Uint128 {
	shift := uint(16)
	if len(t) == 4 {
		shift = 8
	}
	acc := uint128.Zero
	for _, g := range t {
		acc = acc.Lsh(shift).Or64(uint64(g))
	}
	return acc
}

// BitLen returns the identity length implied by the group count: 32 for 4
// groups, 128 for 8, 0 for any other shape.
func (t Terms) BitLen() int {
	switch len(t) {
	case 4:
		return 32
	case 8:
		return 128
	}
	return 0
}

// Is4 reports whether t is a well-formed IPv4 group sequence: exactly 4
// groups, each in [0, 255]. Total over any shape.
func (t Terms) Is4() bool {
	if len(t) != 4 {
		return false
	}
	for _, g := range t {
		if g > 0xff {
			return false
		}
	}
	return true
}

// Is6 reports whether t is a well-formed IPv6 group sequence: exactly 8
// groups. The uint16 group type already enforces the per-group bound.
func (t Terms) Is6() bool { return len(t) == 8 }

// Addr returns the groups as a netip.Addr. Malformed shapes yield the
// zero Addr.
func (t Terms) Addr() netip.Addr {
	switch {
	case t.Is4():
		return netip.AddrFrom4([4]byte{byte(t[0]), byte(t[1]), byte(t[2]), byte(t[3])})
	case t.Is6():
		var b [16]byte
		for i, g := range t {
			b[2*i] = byte(g >> 8)
			b[2*i+1] = byte(g)
		}
		return netip.AddrFrom16(b)
	}
	return netip.Addr{}
}

// String renders the plain address without a prefix-length suffix:
// dotted quad for IPv4 groups, compressed lowercase colon hex for IPv6
// groups. Malformed shapes render as the empty string.
func (t Terms) String() string {
	addr := t.Addr()
	if !addr.IsValid() {
		return ""
	}
	return addr.String()
}

// Bytes returns the fixed-width big-endian encoding of the groups: one
// byte per IPv4 octet (4 bytes) or two bytes per IPv6 hextet (16 bytes),
// most significant first. Malformed shapes yield nil.
func (t Terms) Bytes() []byte {
	switch {
	case t.Is4():
		return []byte{byte(t[0]), byte(t[1]), byte(t[2]), byte(t[3])}
	case t.Is6():
		b := make([]byte, 16)
		for i, g := range t {
			b[2*i] = byte(g >> 8)
			b[2*i+1] = byte(g)
		}
		return b
	}
	return nil
}
