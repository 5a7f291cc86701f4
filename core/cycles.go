// File: cycles.go
// Role: acyclicity check for gate inputs, adapted from dfs.DetectCycles
// (three-colour DFS, back-edge = cycle). Unlike a diagnostic variant that
// enumerates every simple cycle in the graph, this one stops at the
// first cycle found and reports it as a StructureError, for fail-fast
// behaviour on the first error. Only Gate→Gate edges can cycle; an Event
// input is always a DFS leaf.
package core

import "strings"

const (
	white = 0 // unvisited
	gray  = 1 // on the current DFS path
	black = 2 // fully explored, no cycle reachable from here
)

// detectCycle runs a DFS from every gate and returns a *StructureError
// wrapping ErrCycle on the first back-edge (Gray→Gray) it finds.
func detectCycle(t *FaultTree) error {
	state := make(map[string]int, len(t.gates))
	var path []string

	for _, g := range t.gates {
		if state[g.ID] == white {
			if err := visit(t, g.ID, state, &path); err != nil {
				return err
			}
		}
	}
	return nil
}

func visit(t *FaultTree, id string, state map[string]int, path *[]string) error {
	state[id] = gray
	*path = append(*path, id)

	g, _ := t.GateByID(id)
	for _, inputID := range g.InputIDs {
		if _, isGate := t.gateByID[inputID]; !isGate {
			continue // events cannot participate in a cycle
		}
		switch state[inputID] {
		case white:
			if err := visit(t, inputID, state, path); err != nil {
				return err
			}
		case gray:
			return &StructureError{
				Line:   0,
				Detail: cycleChain(*path, inputID),
				Cause:  ErrCycle,
			}
		case black:
			// already fully explored via another path; fine.
		}
	}

	*path = (*path)[:len(*path)-1]
	state[id] = black
	return nil
}

// cycleChain renders the back-edge's cycle as "A -> B -> C -> A" using the
// suffix of path starting at the repeated gate.
func cycleChain(path []string, repeated string) string {
	start := 0
	for i, id := range path {
		if id == repeated {
			start = i
			break
		}
	}
	chain := append(append([]string{}, path[start:]...), repeated)
	return strings.Join(chain, " -> ")
}
