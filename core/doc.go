// Package core defines the FaultTree, Event, and Gate types, and Build,
// which folds a parsed declaration list into a validated, immutable
// FaultTree.
//
// An Event is a leaf carrying exactly one of a probability or a rate. A
// Gate is an AND or OR combination of Event and/or Gate inputs, declared
// by an ordered list of input identifiers. Every Event is assigned a
// zero-based bit index equal to its ordinal position in declaration
// order; this index is the encoding substrate the mcs package builds
// EventMasks from.
//
// Building a FaultTree (Build) enforces, in order:
//
//   - per declaration, in source order: a unique identifier across the
//     union of Events and Gates, then valid properties (exactly one
//     quantity, probability or rate, per Event; a gate type and a
//     non-empty inputs list per Gate);
//   - every gate input resolves to a declared Event or Gate;
//   - no gate is its own input, directly or transitively (acyclicity).
//
// A FaultTree is immutable once built. It owns its Events and Gates;
// dropping it releases everything (see mcs.Engine and quantity.Engine for
// the memoised computations layered on top).
package core
