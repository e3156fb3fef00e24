// File: conflict.go
// Role: Expand a negative cycle of (possibly triangulated) edges back into
//       original edges, derive one extension path per lower-case edge, and
//       map the result down to user-level constraints.
// Ground: dc_checking/dc_be.py's extract_conflict/expand_nc/expand_extension_path.

package dc

import "github.com/dcnet/stnudc/ldg"

// Conflict is the raw, edge-level witness of non-controllability:
// component [0] is the negative cycle expanded to original edges; each
// subsequent component is the extension path for one lower-case edge in
// that cycle, in the order those edges appear.
type Conflict [][]*ldg.Edge

// extractConflict expands a raw negative cycle into a Conflict.
func extractConflict(cycle []*ldg.Edge) Conflict {
	expanded := expandCycle(cycle)
	conflict := Conflict{expanded}
	for _, e := range expanded {
		if e.LabelType == ldg.LabelLower {
			conflict = append(conflict, extensionPath(expanded, e))
		}
	}
	return conflict
}

// expandCycle replaces each triangulated edge by its two parents,
// recursively, preserving order in place: an edge produced from (p1, p2)
// is substituted by [p1, p2] at the same position, so the walk stays
// contiguous rather than being reordered by provenance.
func expandCycle(cycle []*ldg.Edge) []*ldg.Edge {
	var out []*ldg.Edge
	for _, e := range cycle {
		// Original edges, and the structural lower-case edge that BuildLDG
		// adds without any provenance, are leaves of the expansion.
		if e.Provenance.IsOriginal() || e.Provenance.Parents[0] == nil {
			out = append(out, e)
			continue
		}
		parents := e.Provenance.Parents
		out = append(out, expandCycle([]*ldg.Edge{parents[0], parents[1]})...)
	}
	return out
}

// extensionPath finds the minimal cyclic prefix starting at e (inclusive)
// whose running weight sum turns negative, witnessing e's contribution to
// the conflict. Panics if no such prefix exists -- a contract violation
// that cannot happen for an edge that actually participates in a negative
// cycle.
func extensionPath(cycle []*ldg.Edge, e *ldg.Edge) []*ldg.Edge {
	start := indexOfEdge(cycle, e)
	curr := e.Weight
	path := []*ldg.Edge{e}
	for i := 0; i < len(cycle); i++ {
		next := cycle[(i+start+1)%len(cycle)]
		curr += next.Weight
		path = append(path, next)
		if curr < 0 {
			return path
		}
	}
	panicInvariant("extension path search failed to find a negative prefix")
	return nil
}

func indexOfEdge(cycle []*ldg.Edge, target *ldg.Edge) int {
	for i, e := range cycle {
		if e == target {
			return i
		}
	}
	panicInvariant("extension path target edge not found in its own cycle")
	return -1
}
