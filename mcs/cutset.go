// File: cutset.go
// Role: CutSet, the minimal-cut-set engine's unit of output — an
// EventMask with order() as its popcount.
package mcs

import (
	"sort"

	"github.com/sfta-go/sfta/core"
)

// CutSet is an EventMask of cardinality ≥1: a set of Events whose
// simultaneous occurrence satisfies some gate's Boolean formula, with no
// proper subset of it doing the same (once it has survived absorption).
type CutSet struct {
	Mask core.EventMask
}

// Order returns the cut set's cardinality (popcount).
func (c CutSet) Order() int { return c.Mask.PopCount() }

// EventIDs returns the cut set's member Events' identifiers, sorted by
// bit index (i.e. by declaration order), resolved against tree.
func (c CutSet) EventIDs(tree *core.FaultTree) []string {
	bits := c.Mask.Bits()
	ids := make([]string, 0, len(bits))
	for _, b := range bits {
		if ev, ok := tree.EventAtBitIndex(b); ok {
			ids = append(ids, ev.ID)
		}
	}
	return ids
}

// less implements the canonical cut-set ordering: ascending by order
// (popcount), then ascending by the EventMask's numeric value.
func less(a, b CutSet) bool {
	oa, ob := a.Order(), b.Order()
	if oa != ob {
		return oa < ob
	}
	return a.Mask.Cmp(b.Mask) < 0
}

// sortCutSets sorts in place per the canonical ordering.
func sortCutSets(cs []CutSet) {
	sort.Slice(cs, func(i, j int) bool { return less(cs[i], cs[j]) })
}
