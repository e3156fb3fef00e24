// Package tn defines the Temporal Network model for dynamic-controllability
// checking: events, simple temporal constraints, simple contingent temporal
// constraints, and the Network container that owns them.
//
// A Network is thread-safe: muEvents guards the event catalog, muConstraints
// guards the constraint catalog and the per-event constraint index. A
// mutation touching both always locks muEvents first, then muConstraints,
// and releases them in the reverse order; this fixed ordering is what
// prevents deadlock, not avoiding holding both at once.
//
// Errors:
//
//	ErrEmptyEventID              - event ID is the empty string.
//	ErrEventNotFound              - referenced event does not exist.
//	ErrDuplicateConstraintName    - constraint name already registered.
//	ErrConstraintNotFound         - referenced constraint does not exist.
//	ErrInvalidContingentBounds    - SCTC has lb < 0 or lb > ub.
//	ErrDuplicateUncontrollableEnd - a second SCTC claims an end event already
//	                                owned by another contingent link.
package tn
