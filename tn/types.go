package tn

import (
	"errors"
	"fmt"
)

// Sentinel errors for temporal-network construction and mutation.
var (
	// ErrEmptyEventID indicates an event ID of "" was supplied.
	ErrEmptyEventID = errors.New("tn: event ID is empty")

	// ErrEventNotFound indicates an operation referenced a non-existent event.
	ErrEventNotFound = errors.New("tn: event not found")

	// ErrDuplicateConstraintName indicates a constraint name collides with
	// one already registered in the network.
	ErrDuplicateConstraintName = errors.New("tn: constraint name already exists")

	// ErrConstraintNotFound indicates an operation referenced a non-existent
	// constraint.
	ErrConstraintNotFound = errors.New("tn: constraint not found")

	// ErrInvalidContingentBounds indicates lb < 0 or lb > ub on a contingent
	// constraint.
	ErrInvalidContingentBounds = errors.New("tn: contingent bounds must satisfy 0 <= lb <= ub")

	// ErrDuplicateUncontrollableEnd indicates a second contingent link claims
	// an end event already owned by another contingent link.
	ErrDuplicateUncontrollableEnd = errors.New("tn: end event already uncontrollable under another contingent link")
)

// EventID uniquely names a timepoint within a Network.
type EventID string

// Kind distinguishes the two constraint flavors a Network can hold.
type Kind int

const (
	// KindSTC marks a SimpleTemporalConstraint (requirement link).
	KindSTC Kind = iota
	// KindSCTC marks a SimpleContingentTemporalConstraint (contingent link).
	KindSCTC
)

func (k Kind) String() string {
	if k == KindSCTC {
		return "SCTC"
	}
	return "STC"
}

// Constraint is implemented by SimpleTemporalConstraint and
// SimpleContingentTemporalConstraint. A Network stores them by pointer and
// keys them by Name; Network.AddConstraint fills in an empty Name, and
// nothing else in this module modifies a constraint.
type Constraint interface {
	// Start returns the controllable origin event.
	Start() EventID
	// End returns the terminal event (controllable for STC, uncontrollable
	// for SCTC).
	End() EventID
	// LowerBound returns the lower bound, if present.
	LowerBound() (int64, bool)
	// UpperBound returns the upper bound, if present.
	UpperBound() (int64, bool)
	// ConstraintName returns the constraint's unique name within its Network.
	ConstraintName() string
	// Kind reports whether this is a requirement or contingent constraint.
	Kind() Kind
}

// SimpleTemporalConstraint is a requirement link: lb <= t(e) - t(s) <= ub,
// with either bound optionally absent.
type SimpleTemporalConstraint struct {
	S, E EventID
	LB   *int64 // nil means open/absent
	UB   *int64
	Name string
}

func (c *SimpleTemporalConstraint) Start() EventID        { return c.S }
func (c *SimpleTemporalConstraint) End() EventID           { return c.E }
func (c *SimpleTemporalConstraint) ConstraintName() string { return c.Name }
func (c *SimpleTemporalConstraint) Kind() Kind              { return KindSTC }

func (c *SimpleTemporalConstraint) LowerBound() (int64, bool) {
	if c.LB == nil {
		return 0, false
	}
	return *c.LB, true
}

func (c *SimpleTemporalConstraint) UpperBound() (int64, bool) {
	if c.UB == nil {
		return 0, false
	}
	return *c.UB, true
}

func (c *SimpleTemporalConstraint) String() string {
	return fmt.Sprintf("<STC %s: %s, %s, %v, %v>", c.Name, c.S, c.E, c.LB, c.UB)
}

// SimpleContingentTemporalConstraint is a contingent link: nature picks a
// duration in [lb, ub] starting at S; its occurrence at E is observed, not
// controlled. Both bounds are required and 0 <= lb <= ub.
type SimpleContingentTemporalConstraint struct {
	S, E EventID
	LB   int64
	UB   int64
	Name string
}

// NewSCTC validates bounds and constructs a contingent constraint. Passing
// name == "" leaves naming to the caller (Network.AddConstraint assigns a
// uuid-based name when the constraint's ConstraintName() is empty).
func NewSCTC(s, e EventID, lb, ub int64, name string) (*SimpleContingentTemporalConstraint, error) {
	if lb < 0 || lb > ub {
		return nil, ErrInvalidContingentBounds
	}
	return &SimpleContingentTemporalConstraint{S: s, E: e, LB: lb, UB: ub, Name: name}, nil
}

func (c *SimpleContingentTemporalConstraint) Start() EventID        { return c.S }
func (c *SimpleContingentTemporalConstraint) End() EventID           { return c.E }
func (c *SimpleContingentTemporalConstraint) ConstraintName() string { return c.Name }
func (c *SimpleContingentTemporalConstraint) Kind() Kind              { return KindSCTC }

func (c *SimpleContingentTemporalConstraint) LowerBound() (int64, bool) { return c.LB, true }
func (c *SimpleContingentTemporalConstraint) UpperBound() (int64, bool) { return c.UB, true }

func (c *SimpleContingentTemporalConstraint) String() string {
	return fmt.Sprintf("<SCTC %s: %s, %s, %d, %d>", c.Name, c.S, c.E, c.LB, c.UB)
}
