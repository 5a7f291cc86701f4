// File: errors.go
// Role: sentinel errors for the mcs package.
package mcs

import "errors"

// ErrUnknownGate is returned when Engine.MCS is asked for a gate ID the
// underlying FaultTree does not declare.
var ErrUnknownGate = errors.New("mcs: unknown gate id")
