package ldg

import (
	"errors"

	"github.com/dcnet/stnudc/tn"
)

// Sentinel errors for LDG construction and edge bookkeeping.
var (
	// ErrNilNetwork indicates BuildLDG was called with a nil *tn.Network.
	ErrNilNetwork = errors.New("ldg: network is nil")

	// ErrVertexNotFound indicates an operation referenced a vertex absent
	// from the graph.
	ErrVertexNotFound = errors.New("ldg: vertex not found")
)

// LabelType classifies an edge as unlabeled, lower-case, or upper-case per
// the STNU labeled-distance-graph convention.
type LabelType int

const (
	// LabelNone marks a plain requirement edge.
	LabelNone LabelType = iota
	// LabelLower marks a lower-case edge: "the contingent duration to Label
	// is at least Weight" (live only while Weight >= 0).
	LabelLower
	// LabelUpper marks an upper-case edge: "once waiting for Label, allow
	// it to take up to -Weight" (live only while Weight < 0).
	LabelUpper
)

func (t LabelType) String() string {
	switch t {
	case LabelLower:
		return "lower"
	case LabelUpper:
		return "upper"
	default:
		return "none"
	}
}

// Tag names the bound of the originating user constraint that a
// structural edge was derived from, per the STNU normalization rules.
type Tag int

const (
	// TagNone marks an edge with no single-bound provenance (triangulated
	// edges use Provenance.Parents instead).
	TagNone Tag = iota
	TagUBPlus
	TagLBMinus
	TagLBPlus
	TagUBMinus
	TagUBMinusLBPlus
)

func (t Tag) String() string {
	switch t {
	case TagUBPlus:
		return "UB+"
	case TagLBMinus:
		return "LB-"
	case TagLBPlus:
		return "LB+"
	case TagUBMinus:
		return "UB-"
	case TagUBMinusLBPlus:
		return "UB-/LB+"
	default:
		return ""
	}
}

// Provenance records where an edge came from: either an original
// constraint bound (Constraint != nil) or two parent edges synthesized by
// triangulation (Parents[0], Parents[1] != nil). At most one of the two
// shapes is populated; neither is for the structural lower-case edge that
// BuildLDG adds for a contingent link with lb > 0. Provenance is immutable
// once an edge is created.
type Provenance struct {
	Constraint tn.Constraint
	Tag        Tag

	Parents [2]*Edge
}

// IsOriginal reports whether this provenance traces to a user constraint
// rather than to two parent edges.
func (p Provenance) IsOriginal() bool { return p.Constraint != nil }

// Edge is one arc of the labeled distance multigraph: u -> v means
// t(v) - t(u) <= Weight, qualified by LabelType/Label when present.
type Edge struct {
	From, To tn.EventID
	Weight   int64

	LabelType LabelType
	Label     tn.EventID // valid iff LabelType != LabelNone

	Provenance Provenance
}

// Graph is a directed multigraph over tn.EventID. It is owned exclusively
// by one elimination run (package dc); BuildLDG always returns a fresh
// Graph so the input Network is never mutated.
type Graph struct {
	vertices map[tn.EventID]struct{}
	// out[u][v] holds every parallel edge u->v, in insertion order.
	out map[tn.EventID]map[tn.EventID][]*Edge
	// in[v][u] mirrors out[u][v] for O(deg) incoming-edge queries.
	in map[tn.EventID]map[tn.EventID][]*Edge
}

// NewGraph returns an empty labeled distance graph.
func NewGraph() *Graph {
	return &Graph{
		vertices: make(map[tn.EventID]struct{}),
		out:      make(map[tn.EventID]map[tn.EventID][]*Edge),
		in:       make(map[tn.EventID]map[tn.EventID][]*Edge),
	}
}

// AddVertex registers v if not already present. Idempotent.
func (g *Graph) AddVertex(v tn.EventID) {
	if _, ok := g.vertices[v]; ok {
		return
	}
	g.vertices[v] = struct{}{}
	g.out[v] = make(map[tn.EventID][]*Edge)
	g.in[v] = make(map[tn.EventID][]*Edge)
}

// HasVertex reports whether v is registered.
func (g *Graph) HasVertex(v tn.EventID) bool {
	_, ok := g.vertices[v]
	return ok
}

// Vertices returns the current vertex set in no particular order; callers
// that need determinism should sort.
func (g *Graph) Vertices() []tn.EventID {
	out := make([]tn.EventID, 0, len(g.vertices))
	for v := range g.vertices {
		out = append(out, v)
	}
	return out
}

// VertexCount reports the number of vertices remaining.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// AddEdge appends e to the adjacency lists of its endpoints, creating
// vertices as needed.
func (g *Graph) AddEdge(e *Edge) {
	g.AddVertex(e.From)
	g.AddVertex(e.To)
	g.out[e.From][e.To] = append(g.out[e.From][e.To], e)
	g.in[e.To][e.From] = append(g.in[e.To][e.From], e)
}

// OutEdges returns the edges leaving v, grouped by target. Groups come in
// map iteration order, which is not stable between calls; parallel edges
// within a group keep insertion order.
func (g *Graph) OutEdges(v tn.EventID) []*Edge {
	var all []*Edge
	for _, es := range g.out[v] {
		all = append(all, es...)
	}
	return all
}

// InEdges returns the edges entering v, grouped by source. Groups come in
// map iteration order, which is not stable between calls; parallel edges
// within a group keep insertion order.
func (g *Graph) InEdges(v tn.EventID) []*Edge {
	var all []*Edge
	for _, es := range g.in[v] {
		all = append(all, es...)
	}
	return all
}

// ParallelEdges returns the edges from -> to, in insertion order.
func (g *Graph) ParallelEdges(from, to tn.EventID) []*Edge {
	return g.out[from][to]
}

// RemoveEdge deletes one specific edge pointer from both adjacency sides.
// No-op if e is not present.
func (g *Graph) RemoveEdge(e *Edge) {
	g.out[e.From][e.To] = removeEdgePtr(g.out[e.From][e.To], e)
	g.in[e.To][e.From] = removeEdgePtr(g.in[e.To][e.From], e)
}

// RemoveVertex deletes v and every edge incident to it.
func (g *Graph) RemoveVertex(v tn.EventID) {
	for to := range g.out[v] {
		for _, e := range g.out[v][to] {
			g.in[to][v] = removeEdgePtr(g.in[to][v], e)
		}
	}
	for from := range g.in[v] {
		for _, e := range g.in[v][from] {
			g.out[from][v] = removeEdgePtr(g.out[from][v], e)
		}
	}
	delete(g.vertices, v)
	delete(g.out, v)
	delete(g.in, v)
}

func removeEdgePtr(es []*Edge, target *Edge) []*Edge {
	out := es[:0]
	for _, e := range es {
		if e != target {
			out = append(out, e)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
