package dc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dcnet/stnudc/ldg"
	"github.com/dcnet/stnudc/tn"
)

func originalEdge(from, to tn.EventID, w int64, name string) *ldg.Edge {
	c := &tn.SimpleTemporalConstraint{S: from, E: to, Name: name}
	return &ldg.Edge{From: from, To: to, Weight: w, Provenance: ldg.Provenance{Constraint: c, Tag: ldg.TagUBPlus}}
}

func TestExpandCycle_AllOriginal(t *testing.T) {
	e1 := originalEdge("a", "b", -1, "c1")
	e2 := originalEdge("b", "a", -1, "c2")

	expanded := expandCycle([]*ldg.Edge{e1, e2})
	require.Equal(t, []*ldg.Edge{e1, e2}, expanded)
}

func TestExpandCycle_SubstitutesTriangulatedInPlace(t *testing.T) {
	p1 := originalEdge("a", "b", -1, "c1")
	p2 := originalEdge("b", "c", -1, "c2")
	child := &ldg.Edge{From: "a", To: "c", Weight: -2, Provenance: ldg.Provenance{Parents: [2]*ldg.Edge{p1, p2}}}
	tail := originalEdge("c", "a", 0, "c3")

	expanded := expandCycle([]*ldg.Edge{child, tail})
	require.Equal(t, []*ldg.Edge{p1, p2, tail}, expanded)
}

func TestExtensionPath_FindsNegativePrefix(t *testing.T) {
	lower := &ldg.Edge{From: "a", To: "b", Weight: 1, LabelType: ldg.LabelLower, Label: "x"}
	other := originalEdge("b", "a", -3, "c1")

	path := extensionPath([]*ldg.Edge{lower, other}, lower)
	require.Equal(t, []*ldg.Edge{lower, other}, path)
}

func TestExtractConflict_AddsExtensionPathPerLowerEdge(t *testing.T) {
	lower := &ldg.Edge{From: "a", To: "b", Weight: 1, LabelType: ldg.LabelLower, Label: "x",
		Provenance: ldg.Provenance{Constraint: &tn.SimpleTemporalConstraint{S: "a", E: "b", Name: "c1"}, Tag: ldg.TagLBPlus}}
	other := originalEdge("b", "a", -3, "c2")

	conflict := extractConflict([]*ldg.Edge{lower, other})
	require.Len(t, conflict, 2)
	require.Equal(t, []*ldg.Edge{lower, other}, conflict[0])
	require.Equal(t, []*ldg.Edge{lower, other}, conflict[1])
}
