package viz_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dcnet/stnudc/viz"
)

func TestNewDense_InvalidDimensions(t *testing.T) {
	_, err := viz.NewDense(0, 1)
	require.ErrorIs(t, err, viz.ErrInvalidDimensions)
}

func TestDense_SetAt(t *testing.T) {
	m, err := viz.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 3.5))

	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 3.5, v)

	_, err = m.At(5, 0)
	require.ErrorIs(t, err, viz.ErrIndexOutOfBounds)
}
