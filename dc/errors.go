package dc

import "errors"

// Sentinel errors returned by package dc's public entry points.
var (
	// ErrNilNetwork indicates IsControllable was called with a nil *tn.Network.
	ErrNilNetwork = errors.New("dc: network is nil")
)

// invariantViolation marks a condition the algorithm's design proves can
// never occur given a well-formed LDG. These are programming-contract bugs,
// never user-facing failures, so they panic rather than return an error --
// mirroring dc_checking/dc_be.py's bare `raise Exception` / `assert` in the
// same spots.
type invariantViolation struct{ msg string }

func (e invariantViolation) Error() string { return "dc: invariant violation: " + e.msg }

func panicInvariant(msg string) {
	panic(invariantViolation{msg: msg})
}
