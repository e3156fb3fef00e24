// File: eliminate.go
// Role: Elimination of a single vertex (join-project) and the main driver
//       loop, shaped like a small runner struct
//       (init()/processQueue() split into newEliminationRun()/run()).
// Ground: dc_checking/dc_be.py's eliminate/check_dc_bucket_elimination.

package dc

import (
	"github.com/dcnet/stnudc/ldg"
	"github.com/dcnet/stnudc/tn"
	"github.com/dcnet/stnudc/viz"
)

// eliminationRun carries the mutable state of one bucket-elimination pass.
// It owns g exclusively for the run's duration.
type eliminationRun struct {
	g     *ldg.Graph
	order []tn.EventID
	hook  viz.Hook
	step  int

	// eliminated records, per vertex, the in+out edges incident to it at
	// the moment of elimination -- the exact set the reverse pass re-adds
	// when reconstructing a dispatchable network.
	eliminated map[tn.EventID][]*ldg.Edge
}

func newEliminationRun(g *ldg.Graph, hook viz.Hook) *eliminationRun {
	return &eliminationRun{g: g, hook: hook, eliminated: make(map[tn.EventID][]*ldg.Edge)}
}

// run drives elimination to completion. It returns (true, nil) when the
// graph empties out, or (false, cycle) with the raw negative cycle that
// blocked elimination.
func (r *eliminationRun) run() (bool, []*ldg.Edge) {
	for r.g.VertexCount() > 0 {
		r.emitSnapshot(nil)
		v, cycle := findReadyOrCycle(r.g)
		if cycle != nil {
			return false, cycle
		}
		ok, badPair := r.eliminate(v)
		if !ok {
			return false, badPair
		}
		r.order = append(r.order, v)
	}
	return true, nil
}

// eliminate removes v from r.g after triangulating every (in, out) pair
// through it. Returns (false, [e_in, e_out]) if a self-loop pair witnesses
// a semi-reducible negative cycle.
func (r *eliminationRun) eliminate(v tn.EventID) (bool, []*ldg.Edge) {
	inEdges := append([]*ldg.Edge(nil), r.g.InEdges(v)...)
	outEdges := append([]*ldg.Edge(nil), r.g.OutEdges(v)...)

	// Step 1: consistency check on every self-loop candidate pair.
	for _, in := range inEdges {
		for _, out := range outEdges {
			if in.From == out.To {
				if !checkSelfLoop(in, out) {
					return false, []*ldg.Edge{in, out}
				}
			}
		}
	}

	// Step 2: triangulate every remaining pair, filtering to tightest
	// parallel edges at each (source, target).
	for _, in := range inEdges {
		for _, out := range outEdges {
			if in.From == out.To {
				continue
			}
			child := triangulate(in, out)
			if child == nil {
				continue
			}
			existing := r.g.ParallelEdges(child.From, child.To)
			insert, displaced := filterTightest(existing, child)
			for _, d := range displaced {
				r.g.RemoveEdge(d)
			}
			if insert {
				r.g.AddEdge(child)
			}
		}
	}

	r.eliminated[v] = append(append([]*ldg.Edge(nil), outEdges...), inEdges...)

	r.emitSnapshot(&v)
	r.g.RemoveVertex(v)
	return true, nil
}

func (r *eliminationRun) emitSnapshot(eliminating *tn.EventID) {
	if r.hook == nil {
		return
	}
	r.hook(viz.Snapshot{
		Step:        r.step,
		Eliminating: eliminating,
		Distances:   viz.DenseFromLDG(r.g),
	})
	r.step++
}
