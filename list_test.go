package iprange

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListContainsAddr(t *testing.T) {
	l := NewList([]AddressRange{
		MustParse("10.0.0.0/8"),
		MustParse("192.168.1.0/24"),
		MustParse("2001:db8::/32"),
	})

	require.True(t, l.ContainsAddr(netip.MustParseAddr("10.200.3.4")))
	require.True(t, l.ContainsAddr(netip.MustParseAddr("192.168.1.255")))
	require.True(t, l.ContainsAddr(netip.MustParseAddr("2001:db8::1")))
	require.False(t, l.ContainsAddr(netip.MustParseAddr("192.168.2.1")))
	require.False(t, l.ContainsAddr(netip.MustParseAddr("11.0.0.0")))
	require.False(t, l.ContainsAddr(netip.MustParseAddr("2001:db9::1")))
	require.False(t, l.ContainsAddr(netip.Addr{}))
}

func TestListContainsRange(t *testing.T) {
	l := NewList([]AddressRange{
		MustParse("10.0.0.0/8"),
		MustParse("2001:db8::/32"),
	})

	require.True(t, l.Contains(MustParse("10.1.0.0/16")))
	require.True(t, l.Contains(MustParse("10.0.0.0/8")))
	require.False(t, l.Contains(MustParse("10.0.0.0/7")))
	require.False(t, l.Contains(MustParse("11.0.0.0/16")))
	require.True(t, l.Contains(MustParse("2001:db8:beef::/48")))
	require.False(t, l.Contains(MustParse("2001:db9::/48")))

	var zero AddressRange
	require.False(t, l.Contains(zero))
}

func TestListCoalesces(t *testing.T) {
	l := NewList([]AddressRange{
		MustParse("10.0.0.128/25"),
		MustParse("10.0.0.0/25"),
		MustParse("10.0.0.64/26"), // nested in the first two
	})
	require.Equal(t, 1, l.Len())

	got := l.Ranges()
	require.Len(t, got, 1)
	require.Equal(t, "10.0.0.0/24", got[0].String())

	// Coalesced adjacency spans the merged interval.
	require.True(t, l.Contains(MustParse("10.0.0.0/24")))
}

func TestListLookupAcrossManyIntervals(t *testing.T) {
	// Enough disjoint intervals to exercise the binary-search path: one
	// /25 block at the bottom of each 10.<i>.0.0/16.
	var ranges []AddressRange
	for i := 0; i < 64; i++ {
		ranges = append(ranges, FromInt(MustParse("10.0.0.0").Int().Add64(uint64(i)<<16), V4, 25))
	}
	l := NewList(ranges)
	require.Equal(t, 64, l.Len())

	require.True(t, l.ContainsAddr(netip.MustParseAddr("10.0.0.1")))
	require.True(t, l.ContainsAddr(netip.MustParseAddr("10.63.0.100")))
	require.False(t, l.ContainsAddr(netip.MustParseAddr("10.63.0.128")))
	require.False(t, l.ContainsAddr(netip.MustParseAddr("10.7.200.1")))
	require.False(t, l.ContainsAddr(netip.MustParseAddr("9.255.255.255")))
}

func TestListZeroValues(t *testing.T) {
	var nilList *List
	require.False(t, nilList.ContainsAddr(netip.MustParseAddr("10.0.0.1")))
	require.False(t, nilList.Contains(MustParse("10.0.0.0/8")))
	require.Equal(t, 0, nilList.Len())
	require.Nil(t, nilList.Ranges())

	empty := NewList(nil)
	require.Equal(t, 0, empty.Len())
	require.False(t, empty.ContainsAddr(netip.MustParseAddr("10.0.0.1")))
	require.Empty(t, empty.Ranges())
}
