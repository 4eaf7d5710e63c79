package psychro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWetBulb_SatisfiesPsychrometricEquation(t *testing.T) {
	const p, temp = 1013.25, 30.0
	td, err := DewPoint(temp, 40)
	require.NoError(t, err)

	tw, err := WetBulb(p, temp, td)
	require.NoError(t, err)

	lhs := SaturationVaporPressure(tw) - psychrometerCoefficient*p*(temp-tw)*(1+psychrometerTempCorrection*tw)
	assert.InDelta(t, SaturationVaporPressure(td), lhs, 1e-9)
}

func TestWetBulb_LowerPressureLowersWetBulb(t *testing.T) {
	td, err := DewPoint(25, 30)
	require.NoError(t, err)

	sea, err := WetBulb(1013.25, 25, td)
	require.NoError(t, err)
	alpine, err := WetBulb(700, 25, td)
	require.NoError(t, err)

	// A smaller A·p term pulls the wet bulb toward the dew point.
	assert.Less(t, alpine, sea)
	assert.GreaterOrEqual(t, alpine, td)
}

func TestWetBulb_DewPointAboveTemperature(t *testing.T) {
	_, err := WetBulb(1013.25, 10, 12)
	require.ErrorIs(t, err, ErrComputation)
}

func TestWetBulb_Saturated(t *testing.T) {
	tw, err := WetBulb(1013.25, 15, 15)
	require.NoError(t, err)
	assert.Equal(t, 15.0, tw)
}
