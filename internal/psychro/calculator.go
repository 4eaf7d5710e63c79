// Package psychro derives dew point and wet-bulb temperature from a surface
// observation of temperature (°C), relative humidity (%) and pressure (hPa).
package psychro

import (
	"fmt"

	"wetbulb/internal/types"
)

// Calculator computes a CalculationResult from a MeasurementInput. It holds no
// state between calls; the zero value uses DefaultMaxIterations.
type Calculator struct {
	MaxIterations int
}

func New() *Calculator {
	return &Calculator{MaxIterations: DefaultMaxIterations}
}

func (c *Calculator) Compute(in types.MeasurementInput) (types.CalculationResult, error) {
	if err := checkFinite("pressure", in.Pressure); err != nil {
		return types.CalculationResult{}, err
	}

	td, err := DewPoint(in.Temperature, in.RelativeHumidity)
	if err != nil {
		return types.CalculationResult{}, fmt.Errorf("dew point: %w", err)
	}

	tw, err := solveWetBulb(in.Pressure, in.Temperature, td, c.maxIterations())
	if err != nil {
		return types.CalculationResult{}, fmt.Errorf("wet bulb: %w", err)
	}

	return types.CalculationResult{
		DewPointTemperature: td,
		WetBulbTemperature:  tw,
	}, nil
}

func (c *Calculator) maxIterations() int {
	if c == nil || c.MaxIterations <= 0 {
		return DefaultMaxIterations
	}
	return c.MaxIterations
}

// Compute is Calculator.Compute with the default iteration bound.
func Compute(temperature, relativeHumidity, pressure float64) (types.CalculationResult, error) {
	return New().Compute(types.MeasurementInput{
		Temperature:      temperature,
		RelativeHumidity: relativeHumidity,
		Pressure:         pressure,
	})
}
