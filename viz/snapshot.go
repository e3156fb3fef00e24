// File: snapshot.go
// Role: Build a Dense distance-matrix snapshot from the current state of a
// labeled distance graph, and the Hook type the elimination engine (and
// the optional reverse pass) call once per step.
package viz

import (
	"math"
	"sort"

	"github.com/dcnet/stnudc/ldg"
	"github.com/dcnet/stnudc/tn"
)

// Snapshot describes the state of one elimination (or reverse-pass) step.
type Snapshot struct {
	// Step is the 0-based index of this snapshot within the run.
	Step int
	// Eliminating is the vertex being eliminated this step, or nil before
	// the first elimination / for a non-elimination snapshot.
	Eliminating *tn.EventID
	// Distances is the tightest-edge-weight matrix over the remaining
	// vertices at the time of the snapshot; +Inf marks "no direct edge".
	Distances *Dense
}

// Hook is called once per elimination step when visualization is enabled.
// It must not retain Distances.Labels beyond the call if the caller plans
// to reuse buffers; Dense itself is never mutated after being handed to a
// Hook.
type Hook func(Snapshot)

// DenseFromLDG builds a Dense snapshot of g: rows/cols are g's vertices in
// sorted order, and cell (i,j) holds the minimum weight among parallel
// edges Labels[i] -> Labels[j] (or +Inf if none exist).
func DenseFromLDG(g *ldg.Graph) *Dense {
	verts := g.Vertices()
	sort.Slice(verts, func(i, j int) bool { return verts[i] < verts[j] })
	n := len(verts)
	if n == 0 {
		return &Dense{}
	}
	d, err := NewDense(n, n)
	if err != nil {
		// n > 0 was just checked; NewDense cannot fail here.
		panic(err)
	}
	for i := range d.data {
		d.data[i] = math.Inf(1)
	}
	for i := range verts {
		_ = d.Set(i, i, 0)
	}
	idx := make(map[tn.EventID]int, n)
	labels := make([]string, n)
	for i, v := range verts {
		idx[v] = i
		labels[i] = string(v)
	}
	d.Labels = labels

	for i, v := range verts {
		for _, e := range g.OutEdges(v) {
			j, ok := idx[e.To]
			if !ok {
				continue
			}
			cur, _ := d.At(i, j)
			if float64(e.Weight) < cur {
				_ = d.Set(i, j, float64(e.Weight))
			}
		}
	}
	return d
}
