// File: errors.go
// Role: sentinel errors for package reach.
package reach

import "errors"

// ErrUnknownGate is returned when Reachable is asked for a gate ID the
// given FaultTree does not declare.
var ErrUnknownGate = errors.New("reach: unknown gate id")
