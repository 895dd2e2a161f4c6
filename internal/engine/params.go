package engine

import (
	"fmt"
	"math"
	"slices"

	"github.com/cxd309/ballistic-engine/internal/kinematics"
)

// NewParams returns validated closed-form parameters.
func NewParams(speed, angleDeg, gravity float64, origin Origin, timeStep float64) (Params, error) {
	p := Params{
		InitialSpeed: speed,
		LaunchAngle:  angleDeg,
		Gravity:      gravity,
		Origin:       origin,
		TimeStep:     timeStep,
	}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

// Validate checks every numeric precondition. Returned errors wrap
// ErrInvalidParameter.
func (p Params) Validate() error {
	positive := []struct {
		field string
		value float64
	}{
		{"initial_speed", p.InitialSpeed},
		{"gravity", p.Gravity},
		{"time_step", p.TimeStep},
	}
	for _, f := range positive {
		if !isFinite(f.value) {
			return &ParameterError{Field: f.field, Value: f.value, Reason: "must be finite"}
		}
		if f.value <= 0 {
			return &ParameterError{Field: f.field, Value: f.value, Reason: "must be positive"}
		}
	}

	finite := []struct {
		field string
		value float64
	}{
		{"launch_angle", p.LaunchAngle},
		{"origin.x", p.Origin.X},
		{"origin.y", p.Origin.Y},
	}
	for _, f := range finite {
		if !isFinite(f.value) {
			return &ParameterError{Field: f.field, Value: f.value, Reason: "must be finite"}
		}
	}

	if p.MaxSamples < 0 {
		return &ParameterError{Field: "max_samples", Value: float64(p.MaxSamples), Reason: "must not be negative"}
	}
	if p.Model != "" && !slices.Contains(kinematics.ModelNames(), p.Model) {
		return fmt.Errorf("%w: unknown motion model %q", ErrInvalidParameter, p.Model)
	}
	return nil
}

// Launch resolves the parameters into launch kinematics.
func (p Params) Launch() kinematics.Launch {
	return kinematics.NewLaunch(p.InitialSpeed, p.LaunchAngle, p.Gravity, p.Origin.X, p.Origin.Y)
}

// EstimatedSamples returns the sample count predicted by the analytic time of
// flight: every step up to the landing time, the origin, and the first step at
// or below launch height. The result saturates at math.MaxInt.
func (p Params) EstimatedSamples() int {
	steps := math.Floor(p.Launch().TimeOfFlight()/p.TimeStep) + 2
	if steps >= math.MaxInt || math.IsNaN(steps) {
		return math.MaxInt
	}
	return int(steps)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
