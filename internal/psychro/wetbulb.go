package psychro

import (
	"fmt"
	"math"
)

const (
	// psychrometerCoefficient is the WMO coefficient for a ventilated
	// (Assmann) psychrometer, in 1/K.
	psychrometerCoefficient = 6.6e-4
	// psychrometerTempCorrection scales the coefficient with wet-bulb temperature.
	psychrometerTempCorrection = 0.00115

	// DefaultMaxIterations bounds the wet-bulb solve.
	DefaultMaxIterations = 100
	// Tolerance is the step size in °C below which the solve has converged.
	Tolerance = 1e-12
)

// WetBulb returns the wet-bulb temperature in °C for pressure p (hPa), temperature
// t (°C) and dew point td (°C) using DefaultMaxIterations.
func WetBulb(p, t, td float64) (float64, error) {
	return solveWetBulb(p, t, td, DefaultMaxIterations)
}

// solveWetBulb finds the root of the psychrometric equation
//
//	es(tw) - A·p·(t - tw)·(1 + 0.00115·tw) - e(td) = 0
//
// on [td, t] with Newton steps, falling back to bisection whenever a step leaves
// the bracket. The residual is negative at td and non-negative at t.
func solveWetBulb(p, t, td float64, maxIter int) (float64, error) {
	for _, v := range []struct {
		name string
		val  float64
	}{{"pressure", p}, {"temperature", t}, {"dew point", td}} {
		if err := checkFinite(v.name, v.val); err != nil {
			return 0, err
		}
	}
	if p <= 0 {
		return 0, fmt.Errorf("%w: pressure must be positive, got %g hPa", ErrComputation, p)
	}
	if td <= -magnusB || t <= -magnusB {
		return 0, fmt.Errorf("%w: temperature outside the formula range (t=%g td=%g)", ErrComputation, t, td)
	}
	if td > t {
		return 0, fmt.Errorf("%w: dew point %g °C exceeds temperature %g °C", ErrComputation, td, t)
	}
	if td == t {
		return t, nil
	}

	e := SaturationVaporPressure(td)
	residual := func(tw float64) float64 {
		return SaturationVaporPressure(tw) -
			psychrometerCoefficient*p*(t-tw)*(1+psychrometerTempCorrection*tw) - e
	}
	slope := func(tw float64) float64 {
		des := SaturationVaporPressure(tw) * magnusA * magnusB / ((tw + magnusB) * (tw + magnusB))
		return des + psychrometerCoefficient*p*(1+psychrometerTempCorrection*(2*tw-t))
	}

	lo, hi := td, t
	x := lo + (hi-lo)/2
	for i := 0; i < maxIter; i++ {
		fx := residual(x)
		if math.IsNaN(fx) || math.IsInf(fx, 0) {
			return 0, fmt.Errorf("%w: psychrometric residual is not finite at %g °C", ErrComputation, x)
		}
		if fx == 0 {
			return x, nil
		}
		if fx < 0 {
			lo = x
		} else {
			hi = x
		}

		next := x - fx/slope(x)
		if !(next > lo && next < hi) {
			next = lo + (hi-lo)/2
		}
		if math.Abs(next-x) <= Tolerance {
			return next, nil
		}
		x = next
	}

	return 0, fmt.Errorf("%w: wet-bulb solve: %w after %d iterations", ErrComputation, ErrNoConvergence, maxIter)
}
