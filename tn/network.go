// File: network.go
// Role: Thread-safe Network container: event catalog, constraint catalog,
//       and the per-event constraint index used for cascading removal.
// Concurrency:
//   - muEvents guards events and the uncontrollable-end index.
//   - muConstraints guards the constraint catalog and the per-event index.
//   - Mutations touching both lock muEvents then muConstraints, never the
//     reverse order, to avoid lock-ordering deadlocks (same discipline as
//     core.Graph's muVert/muEdgeAdj split).

package tn

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Network owns a set of events and a set of uniquely-named constraints.
// Every uncontrollable event (the End of some SCTC) is the End of exactly
// one SCTC; Network enforces this at AddConstraint time.
type Network struct {
	Name string

	muEvents      sync.RWMutex // guards events, uncEnds
	muConstraints sync.RWMutex // guards byName, byEvent

	events  map[EventID]struct{}
	byName  map[string]Constraint
	byEvent map[EventID][]Constraint
	uncEnds map[EventID]string // event -> owning SCTC name
}

// NewNetwork creates an empty network. If name == "", a uuid is generated,
// mirroring the original Python implementation's TemporalNetwork(name=None).
func NewNetwork(name string) *Network {
	if name == "" {
		name = uuid.NewString()
	}
	return &Network{
		Name:    name,
		events:  make(map[EventID]struct{}),
		byName:  make(map[string]Constraint),
		byEvent: make(map[EventID][]Constraint),
		uncEnds: make(map[EventID]string),
	}
}

func (n *Network) String() string {
	n.muConstraints.RLock()
	defer n.muConstraints.RUnlock()
	return fmt.Sprintf("<TN %s: %d constraints>", n.Name, len(n.byName))
}

// AddEvent registers an isolated event with no constraints yet. Idempotent.
func (n *Network) AddEvent(e EventID) error {
	if e == "" {
		return ErrEmptyEventID
	}
	n.muEvents.Lock()
	defer n.muEvents.Unlock()
	n.events[e] = struct{}{}
	return nil
}

// Events returns all registered event IDs in sorted order (deterministic,
// matching a sorted-by-ID output convention).
func (n *Network) Events() []EventID {
	n.muEvents.RLock()
	defer n.muEvents.RUnlock()
	out := make([]EventID, 0, len(n.events))
	for e := range n.events {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// HasEvent reports whether e is registered.
func (n *Network) HasEvent(e EventID) bool {
	n.muEvents.RLock()
	defer n.muEvents.RUnlock()
	_, ok := n.events[e]
	return ok
}

// AddConstraint registers c, assigning it a uuid name if c.ConstraintName()
// is empty. Returns ErrDuplicateConstraintName if the name collides, or
// ErrDuplicateUncontrollableEnd if c is a SCTC whose End is already the End
// of a different SCTC.
func (n *Network) AddConstraint(c Constraint) error {
	name := c.ConstraintName()
	if name == "" {
		name = uuid.NewString()
		switch v := c.(type) {
		case *SimpleTemporalConstraint:
			v.Name = name
		case *SimpleContingentTemporalConstraint:
			v.Name = name
		}
	}

	n.muEvents.Lock()
	defer n.muEvents.Unlock()
	n.muConstraints.Lock()
	defer n.muConstraints.Unlock()

	if _, exists := n.byName[name]; exists {
		return ErrDuplicateConstraintName
	}
	if sctc, ok := c.(*SimpleContingentTemporalConstraint); ok {
		if owner, exists := n.uncEnds[sctc.E]; exists && owner != name {
			return ErrDuplicateUncontrollableEnd
		}
	}

	n.events[c.Start()] = struct{}{}
	n.events[c.End()] = struct{}{}
	n.byName[name] = c
	n.byEvent[c.Start()] = append(n.byEvent[c.Start()], c)
	n.byEvent[c.End()] = append(n.byEvent[c.End()], c)
	if sctc, ok := c.(*SimpleContingentTemporalConstraint); ok {
		n.uncEnds[sctc.E] = name
	}
	return nil
}

// AddConstraints registers each constraint in order, stopping at the first
// error.
func (n *Network) AddConstraints(cs ...Constraint) error {
	for _, c := range cs {
		if err := n.AddConstraint(c); err != nil {
			return err
		}
	}
	return nil
}

// Constraint looks up a constraint by name.
func (n *Network) Constraint(name string) (Constraint, error) {
	n.muConstraints.RLock()
	defer n.muConstraints.RUnlock()
	c, ok := n.byName[name]
	if !ok {
		return nil, ErrConstraintNotFound
	}
	return c, nil
}

// Constraints returns all constraints, sorted by name for determinism.
func (n *Network) Constraints() []Constraint {
	n.muConstraints.RLock()
	defer n.muConstraints.RUnlock()
	out := make([]Constraint, 0, len(n.byName))
	for _, c := range n.byName {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ConstraintName() < out[j].ConstraintName() })
	return out
}

// ConstraintsAt returns the constraints incident to event e (as either
// Start or End), in insertion order.
func (n *Network) ConstraintsAt(e EventID) []Constraint {
	n.muConstraints.RLock()
	defer n.muConstraints.RUnlock()
	return append([]Constraint(nil), n.byEvent[e]...)
}

// IsUncontrollable reports whether e is the End of some SCTC.
func (n *Network) IsUncontrollable(e EventID) bool {
	n.muEvents.RLock()
	defer n.muEvents.RUnlock()
	_, ok := n.uncEnds[e]
	return ok
}

// RemoveConstraint removes c by name. If the constraint's endpoints are
// left with no other incident constraints, those events are also removed
// (matching temporal_network.py's remove_constraint default).
func (n *Network) RemoveConstraint(name string) error {
	n.muEvents.Lock()
	defer n.muEvents.Unlock()
	n.muConstraints.Lock()
	defer n.muConstraints.Unlock()
	return n.removeConstraintLocked(name)
}

// removeConstraintLocked assumes both locks are already held.
func (n *Network) removeConstraintLocked(name string) error {
	c, ok := n.byName[name]
	if !ok {
		return ErrConstraintNotFound
	}
	delete(n.byName, name)
	n.byEvent[c.Start()] = removeConstraint(n.byEvent[c.Start()], c)
	n.byEvent[c.End()] = removeConstraint(n.byEvent[c.End()], c)
	if sctc, ok := c.(*SimpleContingentTemporalConstraint); ok {
		delete(n.uncEnds, sctc.E)
	}
	if len(n.byEvent[c.Start()]) == 0 {
		delete(n.events, c.Start())
		delete(n.byEvent, c.Start())
	}
	if len(n.byEvent[c.End()]) == 0 {
		delete(n.events, c.End())
		delete(n.byEvent, c.End())
	}
	return nil
}

// RemoveEvent removes event e and every constraint incident to it.
func (n *Network) RemoveEvent(e EventID) error {
	n.muEvents.Lock()
	defer n.muEvents.Unlock()
	n.muConstraints.Lock()
	defer n.muConstraints.Unlock()

	if _, ok := n.events[e]; !ok {
		return ErrEventNotFound
	}
	for _, c := range append([]Constraint(nil), n.byEvent[e]...) {
		if err := n.removeConstraintLocked(c.ConstraintName()); err != nil {
			return err
		}
	}
	delete(n.events, e)
	delete(n.byEvent, e)
	return nil
}

func removeConstraint(cs []Constraint, target Constraint) []Constraint {
	out := cs[:0]
	for _, c := range cs {
		if c != target {
			out = append(out, c)
		}
	}
	return out
}
