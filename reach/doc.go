// Package reach computes a Gate's reachable set: every Event and Gate
// transitively feeding it, independent of Boolean minimality. Where
// package mcs answers "what are the minimal ways this gate can fail",
// reach answers "what could possibly influence it at all" — useful for
// audit and sensitivity scoping before running the more expensive MCS
// computation. Each node is recorded once, with a single BFS parent; the
// result does not say whether a node feeds the gate through every path or
// only some.
//
// Traversal is breadth-first over the Gate→input DAG, adapted from
// package bfs's queue/visited/parent walker, generalised from a single
// core.Graph's adjacency to core.GateInput's Event/Gate sum type and
// trimmed to the one option this domain needs: a traversal depth bound.
package reach
