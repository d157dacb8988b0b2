package iprange

import "sort"

// Compare orders two ranges: IPv4 before IPv6, then by network address,
// then by prefix length (wider range first). It returns -1, 0 or 1 in the
// usual way; the zero range sorts before everything.
func Compare(a, b AddressRange) int {
	if a.family != b.family {
		if a.family < b.family {
			return -1
		}
		return 1
	}
	if c := a.addr.Cmp(b.addr); c != 0 {
		return c
	}
	switch {
	case a.bits < b.bits:
		return -1
	case a.bits > b.bits:
		return 1
	}
	return 0
}

// Sort sorts ranges in Compare order in place.
func Sort(ranges []AddressRange) {
	sort.Slice(ranges, func(i, j int) bool { return Compare(ranges[i], ranges[j]) < 0 })
}
