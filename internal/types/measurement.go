package types

// MeasurementInput is a single surface observation in fixed units.
type MeasurementInput struct {
	Temperature      float64 `json:"temperature_c"`
	RelativeHumidity float64 `json:"humidity_pct"`
	Pressure         float64 `json:"pressure_hpa"`
}

// CalculationResult is the payload written to stdout. Field names are a stable
// contract for callers that capture and decode the output.
type CalculationResult struct {
	DewPointTemperature float64 `json:"dew_point_temperature"`
	WetBulbTemperature  float64 `json:"wet_bulb_temperature"`
}
