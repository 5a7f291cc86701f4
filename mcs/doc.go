// Package mcs computes, for every Gate in a core.FaultTree, its minimal
// cut sets (MCSs) — the canonical disjunctive-normal form of the gate's
// Boolean sub-formula, as a sorted list of CutSet bit sets.
//
// The engine is a leaves-first recursion over the tree: an Event
// contributes the singleton cut set {its bit index}; an AND gate
// left-folds AndCombine over its inputs' cut-set lists; an OR gate
// left-folds OrCombine. Both combinators finish with absorption, which
// removes any cut set that is a proper superset of another cut set in
// the same list and deduplicates equal masks, leaving a minimal antichain
// under the subset order.
//
// Engine memoises each gate's result the first time it is requested, so a
// diamond-shaped tree (two gates sharing a sub-gate) computes that
// sub-gate's cut sets once. Engine itself assumes single-threaded use;
// callers sharing one Engine across goroutines must synchronize
// externally (the root sfta.Result type does not do this for them).
package mcs
