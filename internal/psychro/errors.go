package psychro

import "errors"

var (
	// ErrInvalidArgument marks input that is not a usable number at all.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrComputation marks input the formulas cannot evaluate, or a solve that failed.
	ErrComputation = errors.New("computation error")
	// ErrNoConvergence is wrapped together with ErrComputation when the wet-bulb
	// solver runs out of iterations.
	ErrNoConvergence = errors.New("no convergence")
)
