// Package fixtures generates random, deterministic, syntactically valid
// fault-tree source documents for property-based testing.
//
// Generate never produces a cycle: each Gate is wired to draw its inputs
// only from Events and from Gates declared strictly earlier in the
// sequence, so every generated document is acyclic by construction and
// Generate itself never returns an error. Configuration uses the same
// functional-options idiom as package builder's config.go, specialised to
// this domain's two knobs that matter for the properties under test:
// event count and gate fan-in.
package fixtures
