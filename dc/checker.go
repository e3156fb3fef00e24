// File: checker.go
// Role: Public facade over the elimination engine -- the driver loop is
//       "Checker.IsControllable", shaped like a runner-struct pattern
//       (construct runner state, drive it to completion, translate its
//       result).
// Ground: dc_checking/dc_be.py's check_dc_bucket_elimination (top-level
//         entry point) plus extract_conflict for the failure path.

package dc

import (
	"fmt"

	"github.com/dcnet/stnudc/ldg"
	"github.com/dcnet/stnudc/tn"
	"github.com/dcnet/stnudc/viz"
)

// ErrNilNetwork is returned by IsControllable when handed a nil network.
// (declared in errors.go alongside the invariant-violation panic type)

// ConflictEntry names one user-level constraint bound implicated in a
// witness: Tag identifies which of its bounds (UB+, LB-, ...) contributed.
type ConflictEntry struct {
	Constraint tn.Constraint
	Tag        ldg.Tag
}

// TNConflict is the user-facing witness of non-controllability: component
// [0] is the negative cycle, translated to constraint bounds; each
// subsequent component is the extension path for one contingent link on
// that cycle.
type TNConflict [][]ConflictEntry

// Result is the outcome of one IsControllable call.
type Result struct {
	// Controllable reports whether the network is dynamically controllable.
	Controllable bool
	// Order is the elimination order used, valid only when Controllable.
	Order []tn.EventID
	// Conflict witnesses non-controllability, valid only when !Controllable.
	Conflict TNConflict
	// Dispatch holds the reverse-pass result when WithReversePass is set
	// and Controllable is true; nil otherwise.
	Dispatch *Dispatchable
}

// Checker holds the configuration for one or more IsControllable calls; it
// is stateless between calls and safe to reuse and share across goroutines
// (each call builds its own private LDG).
type Checker struct {
	fullConflict bool
	hook         viz.Hook
	reversePass  bool
	reverseHook  viz.Hook
}

// Option configures a Checker.
type Option func(*Checker)

// WithFullConflict requests extension paths for every lower-case edge on
// the witnessing cycle rather than only the cycle itself.
func WithFullConflict(enabled bool) Option {
	return func(c *Checker) { c.fullConflict = enabled }
}

// WithVisualize registers a hook invoked once per elimination step with a
// snapshot of the labeled distance graph's current state (package viz).
func WithVisualize(hook viz.Hook) Option {
	return func(c *Checker) { c.hook = hook }
}

// WithReversePass requests the reverse pass: after a successful forward
// elimination, IsControllable also compiles a Dispatchable network into
// Result.Dispatch. No-op when the network turns out uncontrollable.
func WithReversePass(enabled bool) Option {
	return func(c *Checker) { c.reversePass = enabled }
}

// WithReversePassHook registers a hook invoked once per reverse-pass step,
// mirroring WithVisualize for the forward pass. Only meaningful alongside
// WithReversePass.
func WithReversePassHook(hook viz.Hook) Option {
	return func(c *Checker) { c.reverseHook = hook }
}

// NewChecker builds a Checker from the given options.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// IsControllable runs bucket elimination to completion over net, reporting
// whether it is dynamically controllable.
//
// Complexity: at most one elimination per LDG vertex; each costs
// O(deg_in(v) * deg_out(v)) triangulations plus parallel-edge filtering.
// Concurrency: synchronous; net is read via its own locking but the LDG
// built from it is private to this call.
func (c *Checker) IsControllable(net *tn.Network) (Result, error) {
	if net == nil {
		return Result{}, ErrNilNetwork
	}

	g, err := ldg.BuildLDG(net)
	if err != nil {
		return Result{}, fmt.Errorf("dc: building labeled distance graph: %w", err)
	}

	run := newEliminationRun(g, c.hook)
	ok, cycle := run.run()
	if ok {
		result := Result{Controllable: true, Order: run.order}
		if c.reversePass {
			result.Dispatch = dispatch(g, run.order, run.eliminated, c.reverseHook)
		}
		return result, nil
	}

	raw := extractConflict(cycle)
	if !c.fullConflict {
		raw = raw[:1]
	}
	return Result{Controllable: false, Conflict: translateConflict(raw)}, nil
}

func translateConflict(raw Conflict) TNConflict {
	out := make(TNConflict, len(raw))
	for i, component := range raw {
		entries := make([]ConflictEntry, 0, len(component))
		for _, e := range component {
			if !e.Provenance.IsOriginal() {
				continue
			}
			entries = append(entries, ConflictEntry{
				Constraint: e.Provenance.Constraint,
				Tag:        e.Provenance.Tag,
			})
		}
		out[i] = entries
	}
	return out
}
