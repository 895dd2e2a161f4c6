package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter indicates a launch parameter outside its valid range.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrDegenerateTrajectory names inputs that would never descend back to the
	// launch height. It cannot occur: Validate requires gravity > 0, so
	// y(t) − y0 = vy0·t − g/2·t² is eventually negative for every finite vy0.
	// Generate therefore never returns it.
	ErrDegenerateTrajectory = errors.New("degenerate trajectory")

	// ErrSampleLimit indicates the trajectory needs more samples than
	// Params.MaxSamples allows.
	ErrSampleLimit = errors.New("sample limit exceeded")
)

// ParameterError reports which parameter failed validation and why.
type ParameterError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("%s: %s = %v: %s", ErrInvalidParameter, e.Field, e.Value, e.Reason)
}

func (e *ParameterError) Unwrap() error {
	return ErrInvalidParameter
}
