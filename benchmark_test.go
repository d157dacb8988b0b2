package iprange

import (
	"net/netip"
	"testing"
)

func BenchmarkParse_V4(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, err := Parse("192.168.1.10/24")
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParse_V6(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, err := Parse("2001:abcd:1234::/48")
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkContains(b *testing.B) {
	outer := MustParse("192.168.0.0/16")
	inner := MustParse("192.168.10.0/24")

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if !outer.Contains(inner) {
			b.Fatal("containment lost")
		}
	}
}

func BenchmarkString_V6(b *testing.B) {
	r := MustParse("2001:db8::dead:beef/64")

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = r.String()
	}
}

func BenchmarkListContainsAddr(b *testing.B) {
	var ranges []AddressRange
	for i := 0; i < 256; i++ {
		ranges = append(ranges, FromInt(MustParse("10.0.0.0").Int().Add64(uint64(i)<<16), V4, 25))
	}
	l := NewList(ranges)
	addr := netip.MustParseAddr("10.200.0.17")

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if !l.ContainsAddr(addr) {
			b.Fatal("membership lost")
		}
	}
}

func BenchmarkSummarizeRange(b *testing.B) {
	first := MustParse("10.0.0.3")
	last := MustParse("10.0.255.77")

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, err := SummarizeRange(first, last)
		if err != nil {
			b.Fatal(err)
		}
	}
}
