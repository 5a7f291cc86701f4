// Package quantity implements the quantity algebra over cut sets and
// gates: per-event quantity, per-cut-set quantity
// (with mixed-dimension rules), per-gate quantity under the rare-event
// approximation, and per-event contribution/importance.
//
// All arithmetic is IEEE-754 double precision with two explicit
// overrides of the default IEEE rules, both implemented in arithmetic.go:
//
//   - 0 × anything ≡ 0, even when the other factor is NaN or +Inf (a
//     certain-failure event contributing to an AND with a probability-0
//     event contributes zero risk).
//   - +Inf + NaN ≡ +Inf when summing a gate's cut-set quantities (an
//     infinite rate dominates any uncertainty elsewhere in the sum).
//
// Every other combination propagates NaN and ±Inf exactly as math.Float64
// arithmetic already does; this package never silently clamps or rounds.
package quantity
