// File: builder.go
// Role: Normalize a *tn.Network into a fresh labeled distance *Graph.
//
// Implements the five construction rules verbatim from the STNU
// literature (and from the more complete of the two near-duplicate Python
// builders in dc_checking/dc_be.py, which treats lb == ub on a contingent
// link as a fixed delay rather than raising):
//
//	STC (s,e,lb?,ub?):
//	  ub present -> s->e weight=ub, tag UB+
//	  lb present -> e->s weight=-lb, tag LB-
//	SCTC (s,e,lb,ub), lb == ub (fixed delay):
//	  s->e weight=ub, tag UB+; e->s weight=-lb, tag LB-
//	SCTC, lb == 0:
//	  s->e labelLower(e) weight=0,  tag LB+
//	  e->s labelUpper(e) weight=-ub, tag UB-
//	SCTC, lb > 0 (auxiliary event e' = e+"'"):
//	  s->e'  weight=lb,          tag LB+
//	  e'->s  weight=-lb,         tag LB-
//	  e'->e  labelLower(e) weight=0            (no constraint provenance)
//	  e->e'  labelUpper(e) weight=-(ub-lb), tag UB-/LB+
package ldg

import (
	"github.com/dcnet/stnudc/tn"
)

// BuildLDG normalizes net into a fresh labeled distance graph. The input
// network is never mutated; every returned edge carries Provenance back to
// the tn.Constraint that produced it (except the lb>0 case's e'->e edge,
// which is purely structural and carries no constraint provenance, per
// spec: "edges lacking constraint provenance ... are either annotated with
// a constraint tag during construction (for the asymmetric lower-bound
// case) or omitted from the user-visible conflict" — here the e'->e edge
// is the omitted half, and e->e' (UB-/LB+) is the annotated half).
func BuildLDG(net *tn.Network) (*Graph, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}

	g := NewGraph()
	for _, e := range net.Events() {
		g.AddVertex(e)
	}

	for _, c := range net.Constraints() {
		switch cc := c.(type) {
		case *tn.SimpleTemporalConstraint:
			addSTC(g, cc)
		case *tn.SimpleContingentTemporalConstraint:
			addSCTC(g, cc)
		}
	}
	return g, nil
}

func addSTC(g *Graph, c *tn.SimpleTemporalConstraint) {
	if ub, ok := c.UpperBound(); ok {
		g.AddEdge(&Edge{
			From: c.S, To: c.E, Weight: ub,
			Provenance: Provenance{Constraint: c, Tag: TagUBPlus},
		})
	}
	if lb, ok := c.LowerBound(); ok {
		g.AddEdge(&Edge{
			From: c.E, To: c.S, Weight: -lb,
			Provenance: Provenance{Constraint: c, Tag: TagLBMinus},
		})
	}
}

func addSCTC(g *Graph, c *tn.SimpleContingentTemporalConstraint) {
	switch {
	case c.LB == c.UB:
		g.AddEdge(&Edge{From: c.S, To: c.E, Weight: c.UB,
			Provenance: Provenance{Constraint: c, Tag: TagUBPlus}})
		g.AddEdge(&Edge{From: c.E, To: c.S, Weight: -c.LB,
			Provenance: Provenance{Constraint: c, Tag: TagLBMinus}})
	case c.LB == 0:
		g.AddEdge(&Edge{From: c.S, To: c.E, Weight: c.LB,
			LabelType: LabelLower, Label: c.E,
			Provenance: Provenance{Constraint: c, Tag: TagLBPlus}})
		g.AddEdge(&Edge{From: c.E, To: c.S, Weight: -c.UB,
			LabelType: LabelUpper, Label: c.E,
			Provenance: Provenance{Constraint: c, Tag: TagUBMinus}})
	default: // c.LB > 0
		aux := auxEvent(c.E)
		g.AddEdge(&Edge{From: c.S, To: aux, Weight: c.LB,
			Provenance: Provenance{Constraint: c, Tag: TagLBPlus}})
		g.AddEdge(&Edge{From: aux, To: c.S, Weight: -c.LB,
			Provenance: Provenance{Constraint: c, Tag: TagLBMinus}})
		g.AddEdge(&Edge{From: aux, To: c.E, Weight: 0,
			LabelType: LabelLower, Label: c.E})
		g.AddEdge(&Edge{From: c.E, To: aux, Weight: -(c.UB - c.LB),
			LabelType: LabelUpper, Label: c.E,
			Provenance: Provenance{Constraint: c, Tag: TagUBMinusLBPlus}})
	}
}

// auxEvent names the auxiliary start-of-waiting event introduced for a
// contingent link with lb > 0, mirroring the original Python's `c.e + "'"`.
func auxEvent(e tn.EventID) tn.EventID {
	return e + "'"
}
