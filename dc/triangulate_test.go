package dc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dcnet/stnudc/ldg"
	"github.com/dcnet/stnudc/tn"
)

func TestTriangulate_UnlabeledPair(t *testing.T) {
	in := &ldg.Edge{From: "a", To: "b", Weight: 3}
	out := &ldg.Edge{From: "b", To: "c", Weight: 4}

	child := triangulate(in, out)
	require.NotNil(t, child)
	require.Equal(t, tn.EventID("a"), child.From)
	require.Equal(t, tn.EventID("c"), child.To)
	require.Equal(t, int64(7), child.Weight)
	require.Equal(t, ldg.LabelNone, child.LabelType)
}

func TestTriangulate_LowerThenUnlabeled(t *testing.T) {
	in := &ldg.Edge{From: "a", To: "b", Weight: 0, LabelType: ldg.LabelLower, Label: "x"}
	out := &ldg.Edge{From: "b", To: "c", Weight: 4}

	child := triangulate(in, out)
	require.NotNil(t, child)
	require.Equal(t, ldg.LabelLower, child.LabelType)
	require.Equal(t, tn.EventID("x"), child.Label)
	require.Equal(t, int64(4), child.Weight)
}

func TestTriangulate_MatchedLowerUpper_SelfCancel(t *testing.T) {
	in := &ldg.Edge{From: "a", To: "b", Weight: 0, LabelType: ldg.LabelLower, Label: "x"}
	out := &ldg.Edge{From: "b", To: "c", Weight: -3, LabelType: ldg.LabelUpper, Label: "x"}

	child := triangulate(in, out)
	require.Nil(t, child)
}

func TestTriangulate_LowerUpperMismatch_NegativeWeight_BecomesUpper(t *testing.T) {
	in := &ldg.Edge{From: "a", To: "b", Weight: 2, LabelType: ldg.LabelLower, Label: "x"}
	out := &ldg.Edge{From: "b", To: "c", Weight: -5, LabelType: ldg.LabelUpper, Label: "y"}

	child := triangulate(in, out)
	require.NotNil(t, child)
	require.Equal(t, ldg.LabelUpper, child.LabelType)
	require.Equal(t, tn.EventID("y"), child.Label)
	require.Equal(t, int64(-3), child.Weight)
}

func TestTriangulate_NegativeIncomingUpperEdge_Panics(t *testing.T) {
	in := &ldg.Edge{From: "a", To: "b", Weight: -1, LabelType: ldg.LabelUpper, Label: "x"}
	out := &ldg.Edge{From: "b", To: "c", Weight: 1}

	require.Panics(t, func() { triangulate(in, out) })
}

func TestTriangulate_LabelStripping_LowerWithNegativeWeight(t *testing.T) {
	in := &ldg.Edge{From: "a", To: "b", Weight: -2, LabelType: ldg.LabelLower, Label: "x"}
	out := &ldg.Edge{From: "b", To: "c", Weight: 0}

	child := triangulate(in, out)
	require.NotNil(t, child)
	require.Equal(t, ldg.LabelNone, child.LabelType)
	require.Equal(t, int64(-2), child.Weight)
}

func TestCheckSelfLoop_NonNegativeSum(t *testing.T) {
	in := &ldg.Edge{Weight: 2}
	out := &ldg.Edge{Weight: 1}
	require.True(t, checkSelfLoop(in, out))
}

func TestCheckSelfLoop_MatchedLowerUpper(t *testing.T) {
	in := &ldg.Edge{Weight: -1, LabelType: ldg.LabelLower, Label: "x"}
	out := &ldg.Edge{Weight: -1, LabelType: ldg.LabelUpper, Label: "x"}
	require.True(t, checkSelfLoop(in, out))
}

func TestCheckSelfLoop_NegativeUnmatched(t *testing.T) {
	in := &ldg.Edge{Weight: -1}
	out := &ldg.Edge{Weight: -1}
	require.False(t, checkSelfLoop(in, out))
}

func TestFilterTightest_DominatedCandidateRejected(t *testing.T) {
	existing := []*ldg.Edge{{Weight: 1}}
	candidate := &ldg.Edge{Weight: 5}
	insert, displaced := filterTightest(existing, candidate)
	require.False(t, insert)
	require.Empty(t, displaced)
}

func TestFilterTightest_CandidateDisplacesLooser(t *testing.T) {
	existing := []*ldg.Edge{{Weight: 5}}
	candidate := &ldg.Edge{Weight: 1}
	insert, displaced := filterTightest(existing, candidate)
	require.True(t, insert)
	require.Len(t, displaced, 1)
}
