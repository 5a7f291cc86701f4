// File: result.go
// Role: Result, the read-only facade over a built FaultTree plus its
// memoised mcs/quantity output.
//
// Concurrency: core.FaultTree and the mcs/quantity engines make no
// thread-safety guarantee on their own, and neither does Result. It holds
// one sync.Once per gate for each of its two caches (MCS, Quantity), so
// each gate's cut sets and quantity are computed at most once through
// those methods. The Once values do not serialise different gates: their
// results are stored in shared maps and computed by shared, unsynchronised
// engines, and Contribution, Importance and Reachable call the engines
// directly. A Result shared across goroutines needs external
// synchronisation.
package sfta

import (
	"fmt"
	"sync"

	"github.com/sfta-go/sfta/core"
	"github.com/sfta-go/sfta/mcs"
	"github.com/sfta-go/sfta/quantity"
	"github.com/sfta-go/sfta/reach"
)

// Result is the immutable, queryable outcome of Analyze.
type Result struct {
	tree      *core.FaultTree
	mcsEngine *mcs.Engine
	qtyEngine *quantity.Engine

	mcsOnce  map[string]*sync.Once
	mcsVal   map[string][]mcs.CutSet
	mcsErr   map[string]error

	qtyOnce map[string]*sync.Once
	qtyVal  map[string]quantity.Quantity
	qtyErr  map[string]error
}

func newResult(tree *core.FaultTree, mcsEngine *mcs.Engine, qtyEngine *quantity.Engine) *Result {
	r := &Result{
		tree:      tree,
		mcsEngine: mcsEngine,
		qtyEngine: qtyEngine,
		mcsOnce:   make(map[string]*sync.Once, len(tree.Gates())),
		mcsVal:    make(map[string][]mcs.CutSet, len(tree.Gates())),
		mcsErr:    make(map[string]error, len(tree.Gates())),
		qtyOnce:   make(map[string]*sync.Once, len(tree.Gates())),
		qtyVal:    make(map[string]quantity.Quantity, len(tree.Gates())),
		qtyErr:    make(map[string]error, len(tree.Gates())),
	}
	for _, g := range tree.Gates() {
		r.mcsOnce[g.ID] = &sync.Once{}
		r.qtyOnce[g.ID] = &sync.Once{}
	}
	return r
}

// Events returns all declared Events in declaration order.
func (r *Result) Events() []core.Event { return r.tree.Events() }

// Gates returns all declared Gates in declaration order.
func (r *Result) Gates() []core.Gate { return r.tree.Gates() }

// EventByID looks up an Event by identifier.
func (r *Result) EventByID(id string) (core.Event, bool) { return r.tree.EventByID(id) }

// GateByID looks up a Gate by identifier.
func (r *Result) GateByID(id string) (core.Gate, bool) { return r.tree.GateByID(id) }

// TopGates returns the Gates not referenced as an input by any other Gate.
func (r *Result) TopGates() []core.Gate { return r.tree.TopGates() }

// TimeUnit returns the document's declared time unit, or "" if unset.
func (r *Result) TimeUnit() string { return r.tree.TimeUnit }

// MCS returns gateID's minimal cut sets, memoised on first request.
func (r *Result) MCS(gateID string) ([]mcs.CutSet, error) {
	once, ok := r.mcsOnce[gateID]
	if !ok {
		return nil, fmt.Errorf("sfta: unknown gate id %q", gateID)
	}
	once.Do(func() {
		r.mcsVal[gateID], r.mcsErr[gateID] = r.mcsEngine.MCS(gateID)
	})
	return r.mcsVal[gateID], r.mcsErr[gateID]
}

// EventIDs resolves a CutSet's member Events' identifiers against this
// Result's tree, in declaration order.
func (r *Result) EventIDs(cs mcs.CutSet) []string { return cs.EventIDs(r.tree) }

// IncidenceMatrix returns gateID's minimal cut sets as a dense cut-set ×
// event membership matrix.
func (r *Result) IncidenceMatrix(gateID string) (*mcs.Incidence, error) {
	cutSets, err := r.MCS(gateID)
	if err != nil {
		return nil, err
	}
	return mcs.BuildIncidence(r.tree, cutSets), nil
}

// Quantity returns gateID's aggregated quantity, memoised on first
// request.
func (r *Result) Quantity(gateID string) (quantity.Quantity, error) {
	once, ok := r.qtyOnce[gateID]
	if !ok {
		return quantity.Quantity{}, fmt.Errorf("sfta: unknown gate id %q", gateID)
	}
	once.Do(func() {
		r.qtyVal[gateID], r.qtyErr[gateID] = r.qtyEngine.GateQuantity(gateID)
	})
	return r.qtyVal[gateID], r.qtyErr[gateID]
}

// Contribution returns contribution(eventID, gateID): the summed
// quantity of every minimal cut set of gateID containing eventID. Not
// memoised beyond what GateQuantity/MCS already cache: contribution
// tables are O(events × gates) and most callers only ever ask for a
// handful, so materialising the full table up front would waste memory
// proportional to the tree's size for the common case.
func (r *Result) Contribution(gateID, eventID string) (float64, error) {
	return r.qtyEngine.Contribution(gateID, eventID)
}

// Importance returns importance(eventID, gateID): Contribution divided
// by the gate's own quantity.
func (r *Result) Importance(gateID, eventID string) (float64, error) {
	return r.qtyEngine.Importance(gateID, eventID)
}

// Reachable returns every Event and Gate transitively feeding gateID,
// independent of Boolean minimality. Unlike MCS, the result is not
// memoised: callers that bound the traversal with reach.WithMaxDepth
// would otherwise collide with a cache keyed only on gateID.
func (r *Result) Reachable(gateID string, opts ...reach.Option) (*reach.Result, error) {
	return reach.Reachable(r.tree, gateID, opts...)
}
