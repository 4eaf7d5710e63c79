package psychro

import (
	"fmt"
	"math"
)

// Bolton (1980) coefficients for the Magnus saturation vapour pressure curve.
const (
	magnusE0 = 6.112 // hPa at 0 °C
	magnusA  = 17.67
	magnusB  = 243.5 // °C
)

// MinRelativeHumidity is the floor applied to relative humidity before the
// logarithm in DewPoint. 0 % has no finite dew point, so it is evaluated as
// MinRelativeHumidity instead.
const MinRelativeHumidity = 1e-3

// SaturationVaporPressure returns the saturation vapour pressure over water in hPa
// at temperature t (°C).
func SaturationVaporPressure(t float64) float64 {
	return magnusE0 * math.Exp(magnusA*t/(t+magnusB))
}

// DewPoint returns the dew point in °C for air at temperature t (°C) and relative
// humidity rh (%). The result never exceeds t.
func DewPoint(t, rh float64) (float64, error) {
	if err := checkFinite("temperature", t); err != nil {
		return 0, err
	}
	if err := checkFinite("humidity", rh); err != nil {
		return 0, err
	}
	if t <= -magnusB {
		return 0, fmt.Errorf("%w: temperature %g °C is outside the formula range", ErrComputation, t)
	}
	if rh < 0 || rh > 100 {
		return 0, fmt.Errorf("%w: humidity %g %% is outside [0, 100]", ErrComputation, rh)
	}
	rh = math.Max(rh, MinRelativeHumidity)

	// en.wikipedia.org/wiki/Dew_point#Calculating_the_dew_point
	e := rh / 100 * SaturationVaporPressure(t)
	x := math.Log(e / magnusE0)
	td := magnusB * x / (magnusA - x)
	if math.IsNaN(td) || math.IsInf(td, 0) {
		return 0, fmt.Errorf("%w: dew point is not finite for t=%g rh=%g", ErrComputation, t, rh)
	}

	return math.Min(td, t), nil
}

func checkFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s must be a finite number, got %v", ErrInvalidArgument, name, v)
	}
	return nil
}
