// File: generate.go
// Role: Generate — emits a random acyclic fault-tree source document.
package fixtures

import (
	"fmt"
	"math/rand"
	"slices"
	"strings"
)

// Generate returns source text, its Event IDs (declaration order), its
// Gate IDs (declaration order), and the ID of the single top gate — the
// last Gate declared, which by construction is never referenced as an
// input by any other Gate.
//
// Topology: event_i is declared first for i in [0, eventCount). Then for
// each gate_j, j in [0, gateCount), Generate draws between 2 and maxFanIn
// inputs uniformly from the union of all events and all gates with index
// < j, so gate_j can never (transitively) reach itself. For j > 0, gate_{j-1}
// is always one of those inputs (it replaces the last drawn input if the
// draw missed it), so every gate except gate_{gateCount-1} is referenced,
// every earlier gate feeds gate_{gateCount-1}, and it is returned as the
// top gate.
func Generate(opts ...Option) (source string, eventIDs, gateIDs []string, topGateID string) {
	cfg := newGenConfig(opts...)
	rng := cfg.newRand()

	var b strings.Builder
	fmt.Fprintf(&b, "- time_unit: h\n\n")

	eventIDs = make([]string, cfg.eventCount)
	for i := 0; i < cfg.eventCount; i++ {
		id := fmt.Sprintf("e%d", i)
		eventIDs[i] = id
		writeEvent(&b, rng, id, cfg.rateFraction)
	}

	gateIDs = make([]string, cfg.gateCount)
	candidates := append([]string{}, eventIDs...)
	for j := 0; j < cfg.gateCount; j++ {
		id := fmt.Sprintf("g%d", j)
		gateIDs[j] = id
		required := ""
		if j > 0 {
			required = gateIDs[j-1]
		}
		writeGate(&b, rng, id, candidates, required, cfg.maxFanIn)
		candidates = append(candidates, id)
	}

	return b.String(), eventIDs, gateIDs, gateIDs[len(gateIDs)-1]
}

func writeEvent(b *strings.Builder, rng *rand.Rand, id string, rateFraction float64) {
	fmt.Fprintf(b, "Event: %s\n", id)
	if rng.Float64() < rateFraction {
		fmt.Fprintf(b, "- rate: %.6f\n\n", rng.Float64()*0.01)
		return
	}
	fmt.Fprintf(b, "- probability: %.6f\n\n", rng.Float64()*0.1)
}

func writeGate(b *strings.Builder, rng *rand.Rand, id string, candidates []string, required string, maxFanIn int) {
	n := 2 + rng.Intn(maxFanIn-1)
	if n > len(candidates) {
		n = len(candidates)
	}

	perm := rng.Perm(len(candidates))
	inputs := make([]string, n)
	for i := 0; i < n; i++ {
		inputs[i] = candidates[perm[i]]
	}
	if required != "" && !slices.Contains(inputs, required) {
		inputs[n-1] = required
	}

	gateType := "OR"
	if rng.Intn(2) == 0 {
		gateType = "AND"
	}

	fmt.Fprintf(b, "Gate: %s\n", id)
	fmt.Fprintf(b, "- type: %s\n", gateType)
	fmt.Fprintf(b, "- inputs: %s\n\n", strings.Join(inputs, ", "))
}
