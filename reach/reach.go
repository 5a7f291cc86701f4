// File: reach.go
// Role: Reachable — breadth-first traversal of a Gate's input DAG.
package reach

import (
	"fmt"

	"github.com/sfta-go/sfta/core"
)

// Result holds the outcome of a Reachable traversal: every Event and
// Gate id found, in BFS visit order, its distance in edges from the
// start gate, and its parent in the BFS tree (empty for the start gate
// itself).
type Result struct {
	Order   []string
	Depth   map[string]int
	Parent  map[string]string
	isEvent map[string]bool
}

// Events returns the IDs in Order that name a declared Event, in visit
// order.
func (r *Result) Events() []string {
	out := make([]string, 0, len(r.Order))
	for _, id := range r.Order {
		if r.isEvent[id] {
			out = append(out, id)
		}
	}
	return out
}

// PathTo reconstructs the path from the start gate to id, inclusive.
func (r *Result) PathTo(id string) ([]string, error) {
	if _, ok := r.Depth[id]; !ok {
		return nil, fmt.Errorf("reach: no path to %q", id)
	}
	path := []string{}
	for cur := id; ; {
		path = append(path, cur)
		parent, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = parent
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

type queueItem struct {
	id    string
	depth int
}

// Reachable performs a breadth-first traversal of gateID's input DAG,
// visiting every Event and Gate transitively feeding it. Order is
// deterministic: at each gate, inputs are visited in InputIDs declaration
// order.
func Reachable(tree *core.FaultTree, gateID string, opts ...Option) (*Result, error) {
	cfg := newConfig(opts...)

	start, ok := tree.GateByID(gateID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGate, gateID)
	}

	res := &Result{
		Order:   make([]string, 0, tree.EventCount()+len(tree.Gates())),
		Depth:   map[string]int{start.ID: 0},
		Parent:  map[string]string{},
		isEvent: map[string]bool{start.ID: false},
	}
	visited := map[string]bool{start.ID: true}
	queue := []queueItem{{id: start.ID, depth: 0}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, cur.id)

		if cfg.maxDepth > 0 && cur.depth >= cfg.maxDepth {
			continue
		}

		gate, ok := tree.GateByID(cur.id)
		if !ok {
			continue // cur.id names an Event: no further inputs to expand
		}
		for _, in := range gate.Inputs {
			if visited[in.ID] {
				continue
			}
			visited[in.ID] = true
			res.isEvent[in.ID] = in.IsEvent
			res.Depth[in.ID] = cur.depth + 1
			res.Parent[in.ID] = cur.id
			queue = append(queue, queueItem{id: in.ID, depth: cur.depth + 1})
		}
	}

	return res, nil
}
