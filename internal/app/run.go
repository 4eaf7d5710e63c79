package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/goccy/go-json"

	"wetbulb/internal/psychro"
	"wetbulb/internal/types"
)

// Run performs one calculation and writes the result to w. Nothing is written
// unless the whole result is available.
func Run(ctx context.Context, calc *psychro.Calculator, in types.MeasurementInput, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	slog.Debug("calculating", "input", in)

	res, err := calc.Compute(in)
	if err != nil {
		return err
	}

	slog.Debug("calculated",
		"dew_point_c", res.DewPointTemperature,
		"wet_bulb_c", res.WetBulbTemperature,
	)

	return WriteJSON(w, res)
}

// WriteJSON encodes v as a single JSON line and writes it with one call.
func WriteJSON(w io.Writer, v any) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}
