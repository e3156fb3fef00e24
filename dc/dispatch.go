// File: dispatch.go
// Role: The reverse pass -- replay the elimination order backwards,
//       re-introducing each vertex's eliminated edges and propagating
//       non-negative out-edges until they meet a negative in-edge,
//       producing a dispatchable network. Opt-in via WithReversePass.
// Ground: check_dc.py's reverse-pass block (the second half of
//         check_dc_bucket_elimination, after the forward loop succeeds).

package dc

import (
	"github.com/dcnet/stnudc/ldg"
	"github.com/dcnet/stnudc/tn"
	"github.com/dcnet/stnudc/viz"
)

// Dispatchable is the labeled distance graph produced by the reverse pass:
// every vertex eliminated during the forward pass has been restored, and
// every non-negative out-edge has been propagated against the negative
// in-edges discovered once its tail vertex reappeared.
type Dispatchable struct {
	Graph *ldg.Graph
	Order []tn.EventID
}

// dispatch runs the reverse pass over g, which must already hold the
// fully-eliminated (empty) graph from a successful eliminationRun, plus the
// per-vertex edge sets that run recorded.
func dispatch(g *ldg.Graph, order []tn.EventID, eliminated map[tn.EventID][]*ldg.Edge, hook viz.Hook) *Dispatchable {
	step := 0
	emit := func(eliminating *tn.EventID) {
		if hook == nil {
			return
		}
		hook(viz.Snapshot{Step: step, Eliminating: eliminating, Distances: viz.DenseFromLDG(g)})
		step++
	}

	for i := len(order) - 1; i >= 0; i-- {
		v := order[i]
		g.AddVertex(v)
		for _, e := range eliminated[v] {
			g.AddEdge(e)
		}
		emit(&v)

		var outPos []*ldg.Edge
		for _, e := range g.OutEdges(v) {
			if e.Weight >= 0 {
				outPos = append(outPos, e)
			}
		}

		for len(outPos) > 0 {
			e1 := outPos[len(outPos)-1]
			outPos = outPos[:len(outPos)-1]

			for _, e2 := range g.OutEdges(e1.To) {
				if e2.Weight >= 0 {
					continue
				}
				child := triangulate(e1, e2)
				if child == nil {
					continue
				}
				g.AddEdge(child)
				if child.Weight >= 0 {
					outPos = append(outPos, child)
				}
			}
		}
	}

	return &Dispatchable{Graph: g, Order: order}
}
