package iprange

import (
	"net/netip"
	"strconv"
)

// Addr returns the network address as a netip.Addr, the bridge into code
// built on the standard library address type. The zero range yields the
// zero Addr.
func (r AddressRange) Addr() netip.Addr {
	switch r.family {
	case V4:
		v := uint32(r.addr.Lo)
		return netip.AddrFrom4([4]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)})
	case V6:
		var b [16]byte
		r.addr.PutBytesBE(b[:])
		return netip.AddrFrom16(b)
	}
	return netip.Addr{}
}

// String renders the range in presentation form: the network address
// (dotted quad, or compressed lowercase colon hex with the leftmost
// longest zero run collapsed to "::") followed by "/<bits>". The zero
// range renders as "invalid AddressRange".
func (r AddressRange) String() string {
	if !r.IsValid() {
		return "invalid AddressRange"
	}
	return r.Addr().String() + "/" + strconv.Itoa(int(r.bits))
}

// Bytes returns the fixed-width big-endian encoding of the network
// address: 4 bytes for IPv4, 16 bytes for IPv6, nil for the zero range.
func (r AddressRange) Bytes() []byte {
	switch r.family {
	case V4:
		v := uint32(r.addr.Lo)
		return []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
	case V6:
		b := make([]byte, 16)
		r.addr.PutBytesBE(b)
		return b
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler using the String form,
// so the type drops directly into JSON documents and text-keyed configs.
func (r AddressRange) MarshalText() ([]byte, error) {
	if !r.IsValid() {
		return nil, ErrInvalidAddress
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via Parse.
func (r *AddressRange) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
