package services

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRelativeStrength(t *testing.T) {
	rs, err := RelativeStrength(100, 80)
	require.NoError(t, err)
	require.Equal(t, 1.25, rs)
}

func TestRelativeStrengthRoundsToThreeDecimals(t *testing.T) {
	rs, err := RelativeStrength(100, 3)
	require.NoError(t, err)
	require.Equal(t, 33.333, rs)

	rs, err = RelativeStrength(1, 3)
	require.NoError(t, err)
	require.Equal(t, 0.333, rs)

	rs, err = RelativeStrength(2, 3)
	require.NoError(t, err)
	require.Equal(t, 0.667, rs)
}

func TestRelativeStrengthRejectsNonPositiveBodyweight(t *testing.T) {
	for _, bw := range []float64{0, -1, -80.5} {
		_, err := RelativeStrength(100, bw)
		require.ErrorIs(t, err, ErrNonPositiveBodyweight)
	}
}
