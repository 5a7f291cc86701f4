// Package parser implements the line-oriented lexer/parser for the
// fault-tree declarative text format:
//
//	file        := (blank | comment | property | object)*
//	object      := header (blank | comment | property)*
//	header      := ("Event:" | "Gate:") SP+ id LF
//	property    := "-" SP+ key ":" SP+ value LF
//	blank       := (SP | TAB)* LF
//	comment     := (SP | TAB)* "#" .* LF
//
// Parse is a single pass over the input with no lookahead beyond the
// current line: a small explicit state machine (current object, or none
// for globals) tracks which Declaration a property line belongs to, in
// preference to a generated lexer or a regexp-heavy grammar (see
// DESIGN.md).
//
// Parse only validates syntax: line shape, known vs. unknown property
// keys, and duplicate properties on the same object. It does not parse
// numbers, validate gate types, or resolve references — that is
// core.Build's job, one layer up.
package parser
