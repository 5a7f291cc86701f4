// File: engine.go
// Role: Engine — computes per-event, per-cut-set, per-gate quantities,
// and per-event contribution/importance, over an mcs.Engine's output.
package quantity

import (
	"fmt"
	"math"

	"github.com/sfta-go/sfta/core"
	"github.com/sfta-go/sfta/mcs"
)

// Engine computes quantities over a single FaultTree's cut sets. Not safe
// for concurrent use without external synchronization (see the mcs
// package doc).
type Engine struct {
	tree *core.FaultTree
	mcs  *mcs.Engine

	gateQty map[string]Quantity
}

// NewEngine returns a quantity Engine backed by mcsEngine's cut sets.
func NewEngine(tree *core.FaultTree, mcsEngine *mcs.Engine) *Engine {
	return &Engine{tree: tree, mcs: mcsEngine, gateQty: make(map[string]Quantity)}
}

// CutSetQuantity computes Q(C) = ∏ Q(eᵢ) for the events in cs, with the
// mixed-dimension rule: all-probability → probability; exactly one rate
// among otherwise-probability factors → rate; two or more rate factors →
// NaN, dimension rate (ill-defined).
func (e *Engine) CutSetQuantity(cs mcs.CutSet) Quantity {
	rateCount := 0
	for _, b := range cs.Mask.Bits() {
		if ev, ok := e.tree.EventAtBitIndex(b); ok && ev.Kind == core.Rate {
			rateCount++
		}
	}
	if rateCount >= 2 {
		return Quantity{Value: math.NaN(), Dim: RateDim}
	}

	product := 1.0
	for _, b := range cs.Mask.Bits() {
		ev, _ := e.tree.EventAtBitIndex(b)
		product = mul(product, ev.Value)
	}
	dim := ProbabilityDim
	if rateCount == 1 {
		dim = RateDim
	}
	return Quantity{Value: product, Dim: dim}
}

// GateQuantity computes Q(g), the rare-event sum of its cut sets'
// quantities, memoising the result. Dimension is rate if any cut set's
// dimension is rate, else probability.
func (e *Engine) GateQuantity(gateID string) (Quantity, error) {
	if q, ok := e.gateQty[gateID]; ok {
		return q, nil
	}

	cutSets, err := e.mcs.MCS(gateID)
	if err != nil {
		return Quantity{}, fmt.Errorf("quantity: %w", err)
	}

	total := 0.0
	dim := ProbabilityDim
	for _, cs := range cutSets {
		q := e.CutSetQuantity(cs)
		total = add(total, q.Value)
		if q.Dim == RateDim {
			dim = RateDim
		}
	}

	result := Quantity{Value: total, Dim: dim}
	e.gateQty[gateID] = result
	return result, nil
}

// Contribution returns contribution(eventID, gateID): the sum of Q(C)
// over every cut set of gateID containing eventID. Zero if eventID
// appears in none of gateID's minimal cut sets.
func (e *Engine) Contribution(gateID, eventID string) (float64, error) {
	ev, ok := e.tree.EventByID(eventID)
	if !ok {
		return 0, fmt.Errorf("quantity: unknown event id %q", eventID)
	}

	cutSets, err := e.mcs.MCS(gateID)
	if err != nil {
		return 0, fmt.Errorf("quantity: %w", err)
	}

	singleton := core.SingletonMask(ev.BitIndex)
	total := 0.0
	for _, cs := range cutSets {
		if singleton.IsSubsetOf(cs.Mask) {
			total = add(total, e.CutSetQuantity(cs).Value)
		}
	}
	return total, nil
}

// Importance returns contribution(eventID, gateID) / Q(gateID), or NaN if
// Q(gateID) is not strictly positive and finite.
func (e *Engine) Importance(gateID, eventID string) (float64, error) {
	contribution, err := e.Contribution(gateID, eventID)
	if err != nil {
		return 0, err
	}
	gateQty, err := e.GateQuantity(gateID)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(gateQty.Value) || math.IsInf(gateQty.Value, 0) || gateQty.Value <= 0 {
		return math.NaN(), nil
	}
	return contribution / gateQty.Value, nil
}

