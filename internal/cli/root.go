package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"wetbulb/internal/app"
	"wetbulb/internal/config"
	"wetbulb/internal/logging"
	"wetbulb/internal/psychro"
	"wetbulb/internal/types"
)

const AppName = "wetbulb"

const (
	flagTemperature = "temperature"
	flagHumidity    = "humidity"
	flagPressure    = "pressure"
	flagLogLevel    = "log-level"
)

type Options struct {
	Version string
	Config  config.Config
	Stdout  io.Writer
	Stderr  io.Writer
}

// Command wraps the cobra root and remembers whether execution got past
// argument handling, which decides how a returned error is classified.
type Command struct {
	root    *cobra.Command
	opts    Options
	started bool
}

func NewCommand(opts Options) *Command {
	c := &Command{opts: opts}

	root := &cobra.Command{
		Use:   AppName + " --temperature <°C> --humidity <%> --pressure <hPa>",
		Short: "Compute dew point and wet-bulb temperature",
		Long: `Computes the dew point and the wet-bulb temperature of one surface observation
and prints {"dew_point_temperature": ..., "wet_bulb_temperature": ...} to stdout.`,
		Args:              cobra.NoArgs,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: c.setupLogging,
		PreRunE:           c.validate,
		RunE:              c.run,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(opts.Stdout)
	root.SetErr(opts.Stderr)

	f := root.Flags()
	f.Float64(flagTemperature, 0, "air temperature in °C")
	f.Float64(flagHumidity, 0, "relative humidity in % (0-100)")
	f.Float64(flagPressure, 0, "barometric pressure in hPa")
	for _, name := range []string{flagTemperature, flagHumidity, flagPressure} {
		_ = root.MarkFlagRequired(name)
	}
	root.PersistentFlags().String(flagLogLevel, "", "override LOG_LEVEL (debug, info, warn, error)")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of " + AppName,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", AppName, opts.Version)
		},
	})

	c.root = root
	return c
}

// Execute runs the command line. Errors raised before the calculation starts
// are reported as psychro.ErrInvalidArgument, with usage on stderr.
func (c *Command) Execute(ctx context.Context, args []string) error {
	if args == nil {
		args = []string{}
	}
	c.root.SetArgs(args)
	cmd, err := c.root.ExecuteContextC(ctx)
	if err == nil || c.started {
		return err
	}

	fmt.Fprintln(c.opts.Stderr, cmd.UsageString())
	if !errors.Is(err, psychro.ErrInvalidArgument) {
		err = fmt.Errorf("%w: %w", psychro.ErrInvalidArgument, err)
	}
	return err
}

func (c *Command) setupLogging(cmd *cobra.Command, _ []string) error {
	cfg := c.opts.Config
	if lvl, _ := cmd.Flags().GetString(flagLogLevel); lvl != "" {
		level, err := config.ParseLogLevel(lvl)
		if err != nil {
			return err
		}
		cfg.LogLevel = level
	}
	slog.SetDefault(logging.New(c.opts.Stderr, cfg, c.opts.Version, AppName))
	return nil
}

func (c *Command) validate(cmd *cobra.Command, _ []string) error {
	in, err := measurementFromFlags(cmd.Flags())
	if err != nil {
		return err
	}
	for _, f := range []struct {
		name string
		val  float64
	}{
		{flagTemperature, in.Temperature},
		{flagHumidity, in.RelativeHumidity},
		{flagPressure, in.Pressure},
	} {
		if math.IsNaN(f.val) || math.IsInf(f.val, 0) {
			return fmt.Errorf("%w: --%s must be a finite number, got %v", psychro.ErrInvalidArgument, f.name, f.val)
		}
	}
	return nil
}

func (c *Command) run(cmd *cobra.Command, _ []string) error {
	c.started = true

	in, err := measurementFromFlags(cmd.Flags())
	if err != nil {
		return err
	}
	return app.Run(cmd.Context(), psychro.New(), in, cmd.OutOrStdout())
}

func measurementFromFlags(f *pflag.FlagSet) (types.MeasurementInput, error) {
	var (
		in  types.MeasurementInput
		err error
	)
	if in.Temperature, err = f.GetFloat64(flagTemperature); err != nil {
		return in, err
	}
	if in.RelativeHumidity, err = f.GetFloat64(flagHumidity); err != nil {
		return in, err
	}
	if in.Pressure, err = f.GetFloat64(flagPressure); err != nil {
		return in, err
	}
	return in, nil
}

// ExitCode maps an Execute error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, psychro.ErrInvalidArgument):
		return 2
	default:
		return 1
	}
}
