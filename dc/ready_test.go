package dc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dcnet/stnudc/ldg"
)

func TestFindReadyOrCycle_EmptyGraph(t *testing.T) {
	g := ldg.NewGraph()
	v, cycle := findReadyOrCycle(g)
	require.Equal(t, "", string(v))
	require.Nil(t, cycle)
}

func TestFindReadyOrCycle_NoNegativeInEdges_ReturnsReady(t *testing.T) {
	g := ldg.NewGraph()
	g.AddVertex("a")
	g.AddEdge(&ldg.Edge{From: "a", To: "b", Weight: 5})

	v, cycle := findReadyOrCycle(g)
	require.Nil(t, cycle)
	require.NotEmpty(t, v)
}

func TestFindReadyOrCycle_NegativeSelfLoop_IsCycle(t *testing.T) {
	g := ldg.NewGraph()
	e := &ldg.Edge{From: "a", To: "a", Weight: -1}
	g.AddEdge(e)

	_, cycle := findReadyOrCycle(g)
	require.Equal(t, []*ldg.Edge{e}, cycle)
}

func TestFindReadyOrCycle_TwoVertexNegativeCycle(t *testing.T) {
	g := ldg.NewGraph()
	e1 := &ldg.Edge{From: "a", To: "b", Weight: -1}
	e2 := &ldg.Edge{From: "b", To: "a", Weight: -1}
	g.AddEdge(e1)
	g.AddEdge(e2)

	_, cycle := findReadyOrCycle(g)
	require.Len(t, cycle, 2)
}
