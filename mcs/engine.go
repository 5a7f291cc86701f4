// File: engine.go
// Role: Engine — the memoised, leaves-first MCS recursion over a
// core.FaultTree.
package mcs

import (
	"fmt"

	"github.com/sfta-go/sfta/core"
)

// Engine computes and memoises minimal cut sets per gate for a single
// FaultTree. Not safe for concurrent use without external synchronization
// (see package doc).
type Engine struct {
	tree *core.FaultTree
	memo map[string][]CutSet
}

// NewEngine returns an Engine over tree. tree must already be built (and
// therefore acyclic); Engine performs no further validation.
func NewEngine(tree *core.FaultTree) *Engine {
	return &Engine{tree: tree, memo: make(map[string][]CutSet)}
}

// MCS returns gateID's minimal cut sets, computing and memoising them on
// first request. The returned slice is in canonical order (ascending
// order, then ascending EventMask value) and must not be mutated by the
// caller.
func (e *Engine) MCS(gateID string) ([]CutSet, error) {
	if cached, ok := e.memo[gateID]; ok {
		return cached, nil
	}

	gate, ok := e.tree.GateByID(gateID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGate, gateID)
	}

	inputSets := make([][]CutSet, len(gate.Inputs))
	for i, in := range gate.Inputs {
		cs, err := e.inputMCS(in)
		if err != nil {
			return nil, err
		}
		inputSets[i] = cs
	}

	var combine func(a, b []CutSet) []CutSet
	if gate.Type == core.AND {
		combine = AndCombine
	} else {
		combine = OrCombine
	}

	result := inputSets[0]
	for i := 1; i < len(inputSets); i++ {
		result = combine(result, inputSets[i])
	}

	e.memo[gateID] = result
	return result, nil
}

// inputMCS resolves one gate input: a singleton cut set for an Event, or
// a recursive Engine.MCS call for a Gate.
func (e *Engine) inputMCS(in core.GateInput) ([]CutSet, error) {
	if in.IsEvent {
		return []CutSet{{Mask: core.SingletonMask(in.Event.BitIndex)}}, nil
	}
	return e.MCS(in.Gate.ID)
}
