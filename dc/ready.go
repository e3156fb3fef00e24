// File: ready.go
// Role: Ready-vertex search and negative-cycle detection.
//
// readySearch walks a single
// path of negative in-edges, keeping a visitation stack, exactly the way
// an ordinary DFS keeps a recursion stack -- the difference is the walk
// follows "negative in-edge to its source" instead of "any out-edge to its
// neighbor", and a revisit yields a cycle suffix instead of a back-edge.
// Ground: dc_checking/dc_be.py's track_ready_node.

package dc

import (
	"github.com/dcnet/stnudc/ldg"
	"github.com/dcnet/stnudc/tn"
)

// readySearch holds the mutable state of one ready-vertex walk.
type readySearch struct {
	g       *ldg.Graph
	history []tn.EventID // vertex IDs visited, in walk order
	edges   []*ldg.Edge  // negative in-edge taken to reach history[i]
}

// findReadyOrCycle starts from an arbitrary remaining vertex and returns
// either a ready vertex (no negative in-edge) or the edge sequence of a
// negative cycle discovered while following negative in-edges.
//
// Tie-break: the first negative in-edge encountered in adjacency order is
// followed; correctness does not depend on this choice.
func findReadyOrCycle(g *ldg.Graph) (tn.EventID, []*ldg.Edge) {
	vs := g.Vertices()
	if len(vs) == 0 {
		return "", nil
	}
	rs := &readySearch{g: g}
	return rs.walk(vs[0])
}

func (rs *readySearch) walk(v tn.EventID) (tn.EventID, []*ldg.Edge) {
	for {
		if idx := indexOfEvent(rs.history, v); idx >= 0 {
			return "", rs.edges[idx:]
		}
		negIn := firstNegativeInEdge(rs.g, v)
		if negIn == nil {
			return v, nil
		}
		rs.history = append(rs.history, v)
		rs.edges = append(rs.edges, negIn)
		v = negIn.From
	}
}

func indexOfEvent(haystack []tn.EventID, v tn.EventID) int {
	for i, h := range haystack {
		if h == v {
			return i
		}
	}
	return -1
}

func firstNegativeInEdge(g *ldg.Graph, v tn.EventID) *ldg.Edge {
	for _, e := range g.InEdges(v) {
		if e.Weight < 0 {
			return e
		}
	}
	return nil
}
