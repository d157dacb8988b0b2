package iprange

import (
	"net/netip"
	"sort"

	"lukechampine.com/uint128"
)

// List is an immutable collection of address ranges supporting fast
// membership tests, the building block for allow/deny rule evaluation.
// Construction sorts the ranges and coalesces overlapping and adjacent
// ones per family; lookups then binary-search the interval table.
type List struct {
	v4 table
	v6 table
}

// table holds coalesced inclusive intervals sorted by start.
type table struct {
	starts []uint128.Uint128
	ends   []uint128.Uint128
}

// NewList builds a List from ranges. Invalid (zero) ranges are skipped.
func NewList(ranges []AddressRange) *List {
	l := &List{}
	var v4, v6 []AddressRange
	for _, r := range ranges {
		switch r.family {
		case V4:
			v4 = append(v4, r)
		case V6:
			v6 = append(v6, r)
		}
	}
	l.v4.build(v4, V4)
	l.v6.build(v6, V6)
	return l
}

func (t *table) build(ranges []AddressRange, family Family) {
	if len(ranges) == 0 {
		return
	}
	sort.Slice(ranges, func(i, j int) bool { return ranges[i].addr.Cmp(ranges[j].addr) < 0 })

	top := family.base()
	t.starts = append(t.starts, ranges[0].Int())
	t.ends = append(t.ends, ranges[0].MaxInt())
	for _, r := range ranges[1:] {
		last := len(t.ends) - 1
		end := t.ends[last]
		// Merge when the next interval starts at or below end+1. An end at
		// the family maximum swallows everything that sorts after it.
		if end.Equals(top) || r.Int().Cmp(end.Add64(1)) <= 0 {
			if r.MaxInt().Cmp(end) > 0 {
				t.ends[last] = r.MaxInt()
			}
			continue
		}
		t.starts = append(t.starts, r.Int())
		t.ends = append(t.ends, r.MaxInt())
	}
}

// lookup finds the interval covering v, returning its index.
func (t *table) lookup(v uint128.Uint128) (int, bool) {
	lo, hi := 0, len(t.starts)

	// Small tables: a linear scan beats the branchy binary search.
	const linearThreshold = 16
	if hi-lo <= linearThreshold {
		for idx := hi - 1; idx >= lo; idx-- {
			if t.starts[idx].Cmp(v) > 0 {
				continue
			}
			if v.Cmp(t.ends[idx]) > 0 {
				return 0, false
			}
			return idx, true
		}
		return 0, false
	}

	i, j := lo, hi
	for i < j {
		h := (i + j) >> 1
		if t.starts[h].Cmp(v) > 0 {
			j = h
		} else {
			i = h + 1
		}
	}
	idx := i - 1
	if idx < lo || v.Cmp(t.ends[idx]) > 0 {
		return 0, false
	}
	return idx, true
}

// Len returns the number of coalesced intervals held by the list.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.v4.starts) + len(l.v6.starts)
}

// ContainsAddr reports whether a single address is covered by the list.
func (l *List) ContainsAddr(addr netip.Addr) bool {
	if l == nil || !addr.IsValid() {
		return false
	}
	if addr.Is4() {
		_, ok := l.v4.lookup(addrInt(addr, V4))
		return ok
	}
	_, ok := l.v6.lookup(addrInt(addr, V6))
	return ok
}

// Contains reports whether the whole of r is covered by a single interval
// of the list.
func (l *List) Contains(r AddressRange) bool {
	if l == nil || !r.IsValid() {
		return false
	}
	t := &l.v6
	if r.family == V4 {
		t = &l.v4
	}
	idx, ok := t.lookup(r.Int())
	return ok && r.MaxInt().Cmp(t.ends[idx]) <= 0
}

// Ranges returns the list's contents as a minimal sequence of CIDR
// ranges, IPv4 intervals first, in ascending address order.
func (l *List) Ranges() []AddressRange {
	if l == nil {
		return nil
	}
	out := l.v4.appendCover(nil, V4)
	out = l.v6.appendCover(out, V6)
	Sort(out)
	return out
}

func (t *table) appendCover(out []AddressRange, family Family) []AddressRange {
	width := family.Bits()
	for i := range t.starts {
		first := FromInt(t.starts[i], family, width)
		last := FromInt(t.ends[i], family, width)
		cover, err := SummarizeRange(first, last)
		if err != nil {
			continue
		}
		out = append(out, cover...)
	}
	return out
}
