package ldg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dcnet/stnudc/ldg"
	"github.com/dcnet/stnudc/tn"
)

func TestGraph_AddRemoveVertex(t *testing.T) {
	g := ldg.NewGraph()
	g.AddVertex("a")
	g.AddVertex("a")
	require.Equal(t, 1, g.VertexCount())

	e := &ldg.Edge{From: "a", To: "b", Weight: 3}
	g.AddEdge(e)
	require.Equal(t, 2, g.VertexCount())
	require.Len(t, g.OutEdges("a"), 1)
	require.Len(t, g.InEdges("b"), 1)

	g.RemoveVertex("a")
	require.False(t, g.HasVertex("a"))
	require.Empty(t, g.InEdges("b"))
}

func TestGraph_ParallelEdges(t *testing.T) {
	g := ldg.NewGraph()
	e1 := &ldg.Edge{From: "a", To: "b", Weight: 3}
	e2 := &ldg.Edge{From: "a", To: "b", Weight: 1}
	g.AddEdge(e1)
	g.AddEdge(e2)
	require.Len(t, g.ParallelEdges("a", "b"), 2)

	g.RemoveEdge(e1)
	remaining := g.ParallelEdges("a", "b")
	require.Len(t, remaining, 1)
	require.Equal(t, e2, remaining[0])
}

func TestProvenance_IsOriginal(t *testing.T) {
	c := &tn.SimpleTemporalConstraint{S: "a", E: "b", Name: "c1"}
	original := ldg.Provenance{Constraint: c, Tag: ldg.TagUBPlus}
	require.True(t, original.IsOriginal())

	triangulated := ldg.Provenance{Parents: [2]*ldg.Edge{{}, {}}}
	require.False(t, triangulated.IsOriginal())
}
