// File: combine.go
// Role: OR-combine, AND-combine, and the absorption step shared by both.
//
// absorb is the one routine that establishes minimality: given a multiset
// of candidate cut sets, it sorts them into the canonical order, drops
// exact duplicates, and discards any cut set that is a proper superset of
// another candidate still standing. Scanning in ascending order (smallest
// cut sets first) means a minimal cut set is always retained before any
// superset of it is considered, so one linear-in-retained-set pass per
// candidate is enough, and the output is already in the order the engine
// needs for presentation.
package mcs

// OrCombine computes A ⊕ B: multiset union followed by absorption.
func OrCombine(a, b []CutSet) []CutSet {
	merged := make([]CutSet, 0, len(a)+len(b))
	merged = append(merged, a...)
	merged = append(merged, b...)
	return absorb(merged)
}

// AndCombine computes A ⊗ B: the cross product of masks, unioned
// pairwise, followed by absorption.
func AndCombine(a, b []CutSet) []CutSet {
	merged := make([]CutSet, 0, len(a)*len(b))
	for _, x := range a {
		for _, y := range b {
			merged = append(merged, CutSet{Mask: x.Mask.Union(y.Mask)})
		}
	}
	return absorb(merged)
}

// absorb sorts candidates into canonical order, drops duplicates, and
// removes every cut set that is a proper superset of a retained one.
func absorb(candidates []CutSet) []CutSet {
	sortCutSets(candidates)

	retained := make([]CutSet, 0, len(candidates))
	for _, c := range candidates {
		if isAbsorbed(c, retained) {
			continue
		}
		retained = append(retained, c)
	}
	return retained
}

// isAbsorbed reports whether c is already covered by a retained cut set:
// either an exact duplicate, or a proper superset of one.
func isAbsorbed(c CutSet, retained []CutSet) bool {
	for _, r := range retained {
		if r.Mask.Equal(c.Mask) {
			return true // duplicate
		}
		if r.Mask.IsSubsetOf(c.Mask) {
			return true // r is a strict subset of c (c is redundant)
		}
	}
	return false
}
