package iprange

// SummarizeRange returns the minimal sequence of CIDR ranges covering
// every address from the lowest address of first through the highest
// address of last, inclusive. Both arguments must be of the same family;
// mixed families fail with ErrMixedFamily and invalid values with
// ErrInvalidAddress. An inverted span (first above last) yields nil.
func SummarizeRange(first, last AddressRange) ([]AddressRange, error) {
	if !first.IsValid() || !last.IsValid() {
		return nil, ErrInvalidAddress
	}
	if first.family != last.family {
		return nil, ErrMixedFamily
	}

	family := first.family
	width := family.Bits()
	start := first.Int()
	end := last.MaxInt()
	if start.Cmp(end) > 0 {
		return nil, nil
	}

	out := make([]AddressRange, 0, 8)
	cur := start
	for {
		// Widest block aligned at cur: alignment limits the prefix from
		// below, the remaining span from above.
		free := cur.TrailingZeros()
		if free > width {
			free = width
		}
		bits := width - free
		for bits < width && cur.Or(family.hostMask(bits)).Cmp(end) > 0 {
			bits++
		}

		out = append(out, AddressRange{family: family, addr: cur, bits: uint8(bits)})

		blockEnd := cur.Or(family.hostMask(bits))
		if blockEnd.Cmp(end) >= 0 {
			return out, nil
		}
		cur = blockEnd.Add64(1)
	}
}
