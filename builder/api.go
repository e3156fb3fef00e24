// File: api.go
// Role: The single public entry-point for assembling a fixture network,
//       narrowed from a BuildGraph(gopts, bopts, cons...)-style orchestrator to
//       this package's simpler (no graph-mode flags, no RNG) domain.
// Ground: builder/api.go's BuildGraph orchestrator.

package builder

import (
	"fmt"

	"github.com/dcnet/stnudc/tn"
)

// Constructor applies one deterministic mutation to a *tn.Network: adding
// an event, a simple constraint, or a contingent link. Constructors must
// not panic; they report failure via a returned error.
type Constructor func(net *tn.Network) error

// BuildNetwork creates a new named Network and applies cons to it in
// order. Any constructor error is wrapped with "BuildNetwork: %w" and
// returned immediately; no partial cleanup is attempted, mirroring
// BuildGraph's own error-wrapping contract.
func BuildNetwork(name string, cons ...Constructor) (*tn.Network, error) {
	net := tn.NewNetwork(name)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildNetwork: nil constructor at index %d: %w", i, ErrNilConstructor)
		}
		if err := fn(net); err != nil {
			return nil, fmt.Errorf("BuildNetwork: %w", err)
		}
	}
	return net, nil
}

// Event adds a bare event with no incident constraint. Most events are
// introduced implicitly by STC/SCTC; this exists for isolated vertices.
func Event(e tn.EventID) Constructor {
	return func(net *tn.Network) error {
		return net.AddEvent(e)
	}
}

// STC adds a requirement constraint s->e with optional bounds; a nil
// bound leaves that side unconstrained, matching tn.SimpleTemporalConstraint.
func STC(name string, s, e tn.EventID, lb, ub *int64) Constructor {
	return func(net *tn.Network) error {
		return net.AddConstraint(&tn.SimpleTemporalConstraint{S: s, E: e, LB: lb, UB: ub, Name: name})
	}
}

// SCTC adds a contingent link s->e with required bounds 0 <= lb <= ub.
func SCTC(name string, s, e tn.EventID, lb, ub int64) Constructor {
	return func(net *tn.Network) error {
		c, err := tn.NewSCTC(s, e, lb, ub, name)
		if err != nil {
			return err
		}
		return net.AddConstraint(c)
	}
}

// boundedInt64 is a tiny helper so fixtures can write boundedInt64(5) instead of
// juggling address-of-literal boilerplate.
func boundedInt64(v int64) *int64 { return &v }
