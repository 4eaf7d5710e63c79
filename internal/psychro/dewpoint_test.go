package psychro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaturationVaporPressure(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{name: "freezing", in: 0, want: 6.112},
		{name: "room", in: 20, want: 23.37},
		{name: "boiling", in: 100, want: 1013.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Magnus drifts from the steam tables toward 100 °C.
			assert.InEpsilon(t, tt.want, SaturationVaporPressure(tt.in), 0.05)
		})
	}
}

func TestDewPoint_InvertsSaturationCurve(t *testing.T) {
	for _, rh := range []float64{5, 25, 50, 75, 95} {
		td, err := DewPoint(18, rh)
		require.NoError(t, err)

		assert.InDelta(t, rh/100*SaturationVaporPressure(18), SaturationVaporPressure(td), 1e-9, "rh=%g", rh)
	}
}

func TestDewPoint_Monotonic(t *testing.T) {
	prev := -1000.0
	for rh := 0.0; rh <= 100; rh += 2.5 {
		td, err := DewPoint(22, rh)
		require.NoError(t, err)
		assert.Greater(t, td, prev, "rh=%g", rh)
		prev = td
	}
}
