// File: eventmask.go
// Role: EventMask, the bit-indexed set representation cut sets are built
// from, plus its primitive operations (union, intersect, subset, popcount,
// bit enumeration).
//
// Representation:
//   - EventMask wraps *big.Int so the bit width is not bounded by a
//     machine word; a fault tree with more than 64 events still encodes
//     correctly. Bit i set ⇔ the Event with BitIndex i belongs to the set.
//   - All operations are value-semantics from the caller's point of view:
//     they never mutate a receiver in place, instead always returning a
//     new value (see matrix/ops_elementwise.go's ew* functions, which
//     build fresh Dense outputs rather than mutating an operand).
package core

import (
	"math/big"
	"math/bits"
)

// EventMask is an arbitrary-precision, non-negative bit set over Event
// bit indices. The zero value is the empty set.
type EventMask struct {
	bits big.Int
}

// NewEventMask returns the empty EventMask.
func NewEventMask() EventMask { return EventMask{} }

// SingletonMask returns the EventMask containing only the Event at the
// given bit index. Complexity: O(1) words.
func SingletonMask(bitIndex int) EventMask {
	var m EventMask
	m.bits.SetBit(&m.bits, bitIndex, 1)
	return m
}

// Union returns the bitwise OR of m and other. Complexity: O(n/word).
func (m EventMask) Union(other EventMask) EventMask {
	var out EventMask
	out.bits.Or(&m.bits, &other.bits)
	return out
}

// Intersect returns the bitwise AND of m and other. Complexity: O(n/word).
func (m EventMask) Intersect(other EventMask) EventMask {
	var out EventMask
	out.bits.And(&m.bits, &other.bits)
	return out
}

// IsSubsetOf reports whether every bit set in m is also set in other,
// i.e. m is a (not necessarily proper) subset of other. Complexity:
// O(n/word).
func (m EventMask) IsSubsetOf(other EventMask) bool {
	var and big.Int
	and.And(&m.bits, &other.bits)
	return and.Cmp(&m.bits) == 0
}

// Equal reports whether m and other contain exactly the same bits.
func (m EventMask) Equal(other EventMask) bool {
	return m.bits.Cmp(&other.bits) == 0
}

// PopCount returns the number of set bits, i.e. the cut set's order.
// Complexity: O(n/word).
func (m EventMask) PopCount() int {
	count := 0
	for _, word := range m.bits.Bits() {
		count += bits.OnesCount(uint(word))
	}
	return count
}

// Bits returns the set bit indices in ascending order.
// Complexity: O(n) where n is the highest set bit.
func (m EventMask) Bits() []int {
	out := make([]int, 0, m.PopCount())
	for i := 0; i < m.bits.BitLen(); i++ {
		if m.bits.Bit(i) == 1 {
			out = append(out, i)
		}
	}
	return out
}

// Cmp gives a deterministic total order over EventMasks by numeric value,
// treating the mask as an arbitrary-precision non-negative integer. Used
// to break ties between cut sets of equal order.
func (m EventMask) Cmp(other EventMask) int {
	return m.bits.Cmp(&other.bits)
}

