// File: builder.go
// Role: Builder folds a parser.Document into a validated, immutable
// FaultTree.
//
// Build performs these stages in order, and the first violation wins
// (fail-fast, no partial result):
//
//  1. Parse per-declaration properties into typed Event/Gate fields.
//  2. Check identifier uniqueness across the union of Events and Gates.
//     Stages 1 and 2 run together, one declaration at a time in source
//     order, with the uniqueness check made before that declaration is
//     decoded.
//  3. Resolve every gate input to a declared Event or Gate.
//  4. Detect cycles via a three-colour DFS (adapted from dfs.DetectCycles,
//     specialised to report only the first cycle found).
//  5. Assign each Event its bit index (declaration order among Events).
//     This happens during stage 1, as each Event is added.
//  6. Compute TopGates as the set difference of all gates minus the union
//     of all declared gate inputs.
package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/sfta-go/sfta/parser"
)

// Build validates doc and constructs the FaultTree it describes.
func Build(doc *parser.Document) (*FaultTree, error) {
	t := &FaultTree{
		eventByID: make(map[string]int),
		gateByID:  make(map[string]int),
	}

	if err := applyGlobals(t, doc.Globals); err != nil {
		return nil, err
	}

	// Stage 1+2: typed decode + uniqueness, one declaration at a time, in
	// the order the parser emitted them (this fixes event bit indices).
	for _, decl := range doc.Declarations {
		if err := checkUnique(t, decl.ID, decl.Line); err != nil {
			return nil, err
		}
		switch decl.Kind {
		case parser.EventObject:
			ev, err := decodeEvent(decl)
			if err != nil {
				return nil, err
			}
			ev.BitIndex = len(t.events)
			t.eventByID[ev.ID] = len(t.events)
			t.events = append(t.events, ev)
		case parser.GateObject:
			g, err := decodeGate(decl)
			if err != nil {
				return nil, err
			}
			t.gateByID[g.ID] = len(t.gates)
			t.gates = append(t.gates, g)
		}
	}

	// Stage 3: resolve gate inputs.
	for gi := range t.gates {
		g := &t.gates[gi]
		g.Inputs = make([]GateInput, len(g.InputIDs))
		for ii, id := range g.InputIDs {
			if ei, ok := t.eventByID[id]; ok {
				g.Inputs[ii] = GateInput{ID: id, IsEvent: true, Event: t.events[ei]}
				continue
			}
			if gj, ok := t.gateByID[id]; ok {
				g.Inputs[ii] = GateInput{ID: id, IsEvent: false, Gate: &t.gates[gj]}
				continue
			}
			return nil, &ReferenceError{Line: g.declLine(doc), GateID: g.ID, InputID: id}
		}
	}

	// Stage 4: acyclicity.
	if err := detectCycle(t); err != nil {
		return nil, err
	}

	// Stage 6: top gates = all gates minus those referenced as an input.
	referenced := make(map[string]bool, len(t.gates))
	for _, g := range t.gates {
		for _, id := range g.InputIDs {
			if _, ok := t.gateByID[id]; ok {
				referenced[id] = true
			}
		}
	}
	for _, g := range t.gates {
		if !referenced[g.ID] {
			t.topGates = append(t.topGates, g.ID)
		}
	}

	return t, nil
}

// declLine is a small helper so ReferenceError can report the header line
// of the gate declaring the bad input; there is no separate id->line map,
// so the gate's own declaration line is the best available line number.
func (g *Gate) declLine(doc *parser.Document) int {
	for _, d := range doc.Declarations {
		if d.Kind == parser.GateObject && d.ID == g.ID {
			return d.Line
		}
	}
	return 0
}

func checkUnique(t *FaultTree, id string, line int) error {
	if id == "" {
		return &StructureError{Line: line, Detail: "empty identifier", Cause: ErrEmptyID}
	}
	if _, ok := t.eventByID[id]; ok {
		return &StructureError{Line: line, Detail: fmt.Sprintf("id %q already declared", id), Cause: ErrDuplicateID}
	}
	if _, ok := t.gateByID[id]; ok {
		return &StructureError{Line: line, Detail: fmt.Sprintf("id %q already declared", id), Cause: ErrDuplicateID}
	}
	return nil
}

func applyGlobals(t *FaultTree, globals []parser.Property) error {
	seenTimeUnit := false
	for _, p := range globals {
		if p.Key != "time_unit" {
			continue // parser already rejected truly unknown keys unless leniency was requested
		}
		if seenTimeUnit {
			return &ValueError{Line: p.Line, Detail: "time_unit already set", Cause: ErrTimeUnitRedeclared}
		}
		t.TimeUnit = p.Value
		seenTimeUnit = true
	}
	return nil
}

func decodeEvent(decl parser.Declaration) (Event, error) {
	ev := Event{ID: decl.ID, Label: decl.ID}
	hasProbability, hasRate := false, false

	for _, p := range decl.Properties {
		switch p.Key {
		case "label":
			ev.Label = p.Value
		case "comment":
			ev.Comment = p.Value
		case "probability":
			v, err := parseFloatValue(p)
			if err != nil {
				return Event{}, err
			}
			if !math.IsNaN(v) && (v < 0 || v > 1) {
				return Event{}, &ValueError{Line: p.Line, Detail: fmt.Sprintf("probability %v not in [0,1]", v), Cause: ErrQuantityRange}
			}
			ev.Kind, ev.Value, hasProbability = Probability, v, true
		case "rate":
			v, err := parseFloatValue(p)
			if err != nil {
				return Event{}, err
			}
			if !math.IsNaN(v) && v < 0 {
				return Event{}, &ValueError{Line: p.Line, Detail: fmt.Sprintf("rate %v not in [0,+Inf]", v), Cause: ErrQuantityRange}
			}
			ev.Kind, ev.Value, hasRate = Rate, v, true
		}
	}

	if hasProbability && hasRate {
		return Event{}, &ValueError{Line: decl.Line, Detail: decl.ID, Cause: ErrQuantityDoubled}
	}
	if !hasProbability && !hasRate {
		return Event{}, &ValueError{Line: decl.Line, Detail: decl.ID, Cause: ErrQuantityMissing}
	}
	return ev, nil
}

func decodeGate(decl parser.Declaration) (Gate, error) {
	g := Gate{ID: decl.ID, Label: decl.ID}
	hasType, hasInputs := false, false

	for _, p := range decl.Properties {
		switch p.Key {
		case "label":
			g.Label = p.Value
		case "comment":
			g.Comment = p.Value
		case "type":
			switch p.Value {
			case "AND":
				g.Type = AND
			case "OR":
				g.Type = OR
			default:
				return Gate{}, &ValueError{Line: p.Line, Detail: p.Value, Cause: ErrBadGateType}
			}
			hasType = true
		case "inputs":
			ids := splitInputs(p.Value)
			if len(ids) == 0 {
				return Gate{}, &StructureError{Line: p.Line, Detail: decl.ID, Cause: ErrEmptyInputs}
			}
			g.InputIDs = ids
			hasInputs = true
		case "is_paged":
			switch p.Value {
			case "True":
				g.IsPaged = true
			case "False":
				g.IsPaged = false
			default:
				return Gate{}, &ValueError{Line: p.Line, Detail: p.Value, Cause: ErrBadPaged}
			}
		}
	}

	if !hasType {
		return Gate{}, &ValueError{Line: decl.Line, Detail: decl.ID + ": missing type", Cause: ErrBadGateType}
	}
	if !hasInputs {
		return Gate{}, &StructureError{Line: decl.Line, Detail: decl.ID, Cause: ErrEmptyInputs}
	}
	return g, nil
}

// splitInputs splits a comma-separated id list and trims whitespace from
// each element, dropping any elements left empty by stray commas.
func splitInputs(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseFloatValue(p parser.Property) (float64, error) {
	v, err := strconv.ParseFloat(p.Value, 64)
	if err != nil {
		return 0, &ValueError{Line: p.Line, Detail: p.Value, Cause: ErrQuantityRange}
	}
	return v, nil
}
