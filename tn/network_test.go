package tn_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dcnet/stnudc/tn"
)

func bound(v int64) *int64 { return &v }

func TestNetwork_AddEvent(t *testing.T) {
	n := tn.NewNetwork("")
	require.NoError(t, n.AddEvent("e1"))
	require.True(t, n.HasEvent("e1"))
	require.ErrorIs(t, n.AddEvent(""), tn.ErrEmptyEventID)
}

func TestNetwork_AddConstraint_STC(t *testing.T) {
	n := tn.NewNetwork("net")
	c := &tn.SimpleTemporalConstraint{S: "e1", E: "e2", LB: bound(1), UB: bound(5), Name: "c1"}
	require.NoError(t, n.AddConstraint(c))
	require.True(t, n.HasEvent("e1"))
	require.True(t, n.HasEvent("e2"))

	got, err := n.Constraint("c1")
	require.NoError(t, err)
	require.Equal(t, c, got)

	_, err = n.Constraint("missing")
	require.ErrorIs(t, err, tn.ErrConstraintNotFound)
}

func TestNetwork_AddConstraint_DuplicateName(t *testing.T) {
	n := tn.NewNetwork("net")
	c1 := &tn.SimpleTemporalConstraint{S: "e1", E: "e2", UB: bound(5), Name: "c1"}
	c2 := &tn.SimpleTemporalConstraint{S: "e2", E: "e3", UB: bound(5), Name: "c1"}
	require.NoError(t, n.AddConstraint(c1))
	require.ErrorIs(t, n.AddConstraint(c2), tn.ErrDuplicateConstraintName)
}

func TestNetwork_AddConstraint_AutoName(t *testing.T) {
	n := tn.NewNetwork("net")
	c := &tn.SimpleTemporalConstraint{S: "e1", E: "e2", UB: bound(5)}
	require.NoError(t, n.AddConstraint(c))
	require.NotEmpty(t, c.ConstraintName())
}

func TestNetwork_AddConstraint_DuplicateUncontrollableEnd(t *testing.T) {
	n := tn.NewNetwork("net")
	c1, err := tn.NewSCTC("e1", "e3", 1, 5, "c1")
	require.NoError(t, err)
	c2, err := tn.NewSCTC("e2", "e3", 1, 5, "c2")
	require.NoError(t, err)

	require.NoError(t, n.AddConstraint(c1))
	require.ErrorIs(t, n.AddConstraint(c2), tn.ErrDuplicateUncontrollableEnd)
	require.True(t, n.IsUncontrollable("e3"))
	require.False(t, n.IsUncontrollable("e1"))
}

func TestNewSCTC_InvalidBounds(t *testing.T) {
	_, err := tn.NewSCTC("e1", "e2", 5, 1, "bad")
	require.ErrorIs(t, err, tn.ErrInvalidContingentBounds)

	_, err = tn.NewSCTC("e1", "e2", -1, 5, "bad")
	require.ErrorIs(t, err, tn.ErrInvalidContingentBounds)
}

func TestNetwork_Events_Sorted(t *testing.T) {
	n := tn.NewNetwork("net")
	require.NoError(t, n.AddEvent("c"))
	require.NoError(t, n.AddEvent("a"))
	require.NoError(t, n.AddEvent("b"))
	require.Equal(t, []tn.EventID{"a", "b", "c"}, n.Events())
}

func TestNetwork_RemoveConstraint_CascadesEvents(t *testing.T) {
	n := tn.NewNetwork("net")
	c := &tn.SimpleTemporalConstraint{S: "e1", E: "e2", UB: bound(5), Name: "c1"}
	require.NoError(t, n.AddConstraint(c))
	require.NoError(t, n.RemoveConstraint("c1"))
	require.False(t, n.HasEvent("e1"))
	require.False(t, n.HasEvent("e2"))

	require.ErrorIs(t, n.RemoveConstraint("c1"), tn.ErrConstraintNotFound)
}

func TestNetwork_RemoveEvent_CascadesConstraints(t *testing.T) {
	n := tn.NewNetwork("net")
	c := &tn.SimpleTemporalConstraint{S: "e1", E: "e2", UB: bound(5), Name: "c1"}
	require.NoError(t, n.AddConstraint(c))
	require.NoError(t, n.RemoveEvent("e1"))
	require.False(t, n.HasEvent("e2"))
	_, err := n.Constraint("c1")
	require.ErrorIs(t, err, tn.ErrConstraintNotFound)

	require.ErrorIs(t, n.RemoveEvent("e1"), tn.ErrEventNotFound)
}
