// Package sfta analyses coherent fault trees: directed acyclic graphs of
// basic Events and AND/OR Gates. Analyze parses the declarative text
// format described in package parser's documentation, builds a validated
// core.FaultTree, and returns a Result exposing, per gate, its minimal
// cut sets, its aggregated quantity under the rare-event approximation,
// and each event's contribution and importance.
//
// The analyser is deliberately exact rather than heuristic: minimal cut
// sets are computed via Boolean-algebra simplification over bit-indexed
// event sets (package mcs), not sampled or approximated. Quantities use
// IEEE-754 double arithmetic with explicit NaN/∞ propagation rules
// (package quantity).
//
//	result, err := sfta.Analyze(sourceText)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, g := range result.TopGates() {
//		q, _ := result.Quantity(g.ID)
//		fmt.Printf("%s: %v (%s)\n", g.ID, q.Value, q.Dim)
//	}
//
// Construction, and every query on the result, is a pure function of the
// input text (package core's FaultTree is immutable once built); Result
// memoises each gate's cut sets and quantity the first time they are
// requested.
package sfta
