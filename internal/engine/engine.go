// Package engine implements the trajectory sampler.
//
// Generate turns validated Params into a Trajectory by evaluating the launch's
// motion model at t = 0, Δt, 2Δt, … and stopping at the first t > 0 where the
// projectile is at or below its launch height. Time points are evaluated in
// batches: the first batch is sized from the analytic time of flight, so the
// usual run needs a single call to the model.
//
// The sampler is a pure function of its inputs. Rendering and I/O live with
// the callers.
package engine

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/cxd309/ballistic-engine/internal/kinematics"
)

const (
	// maxBatch bounds how many time points go to the model in one call.
	maxBatch = 4096
	// maxPrealloc bounds the initial sample capacity for very fine time steps.
	maxPrealloc = 1 << 16
)

// Generate samples the trajectory described by p.
//
// The final sample is the first one with y ≤ y0 and is emitted as computed, not
// interpolated back to the exact crossing time.
func Generate(p Params) (Trajectory, error) {
	if err := p.Validate(); err != nil {
		return Trajectory{}, err
	}

	model, err := kinematics.NewModel(p.Model, p.Launch())
	if err != nil {
		return Trajectory{}, fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	}

	est := p.EstimatedSamples()
	batch := min(est, maxBatch)
	samples := make([]Sample, 0, min(est, maxPrealloc))
	ts := make([]float64, batch)

	for k := 0; ; k += batch {
		for i := range ts {
			// Multiplying rather than accumulating keeps the spacing exact.
			ts[i] = float64(k+i) * p.TimeStep
		}
		xs, ys := model.Positions(ts)

		for i, t := range ts {
			samples = append(samples, Sample{T: t, X: xs[i], Y: ys[i]})
			if k+i > 0 && ys[i] <= p.Origin.Y {
				return Trajectory{Params: p, Samples: samples}, nil
			}
			if p.MaxSamples > 0 && len(samples) >= p.MaxSamples {
				return Trajectory{}, fmt.Errorf("%w: no descent to launch height within %d samples (estimated %d)",
					ErrSampleLimit, p.MaxSamples, est)
			}
		}
	}
}

// Len returns the number of samples.
func (tr Trajectory) Len() int { return len(tr.Samples) }

// First returns the launch sample.
func (tr Trajectory) First() Sample {
	if len(tr.Samples) == 0 {
		return Sample{}
	}
	return tr.Samples[0]
}

// Last returns the terminal sample, the first at or below launch height.
func (tr Trajectory) Last() Sample {
	if len(tr.Samples) == 0 {
		return Sample{}
	}
	return tr.Samples[len(tr.Samples)-1]
}

// Duration returns the time of the last sample.
func (tr Trajectory) Duration() float64 { return tr.Last().T }

// Apex returns the highest sample. Ties keep the earliest.
func (tr Trajectory) Apex() Sample {
	if len(tr.Samples) == 0 {
		return Sample{}
	}
	apex := tr.Samples[0]
	for _, s := range tr.Samples[1:] {
		if s.Y > apex.Y {
			apex = s
		}
	}
	return apex
}

// XY splits the samples into coordinate slices in sample order.
func (tr Trajectory) XY() (xs, ys []float64) {
	xs = make([]float64, len(tr.Samples))
	ys = make([]float64, len(tr.Samples))
	for i, s := range tr.Samples {
		xs[i], ys[i] = s.X, s.Y
	}
	return xs, ys
}

// Summarize combines the analytic quantities of the launch with the sampled result.
func Summarize(tr Trajectory) Summary {
	l := tr.Params.Launch()
	return Summary{
		TimeOfFlight: l.TimeOfFlight(),
		MaxHeight:    l.MaxHeight(),
		Range:        l.Range(),
		SampleCount:  tr.Len(),
		FinalTime:    tr.Duration(),
		Apex:         tr.Apex(),
	}
}

// Run generates the trajectory for input and packages it as a SimulationLog.
// A missing simulation ID is replaced with a random UUID.
func Run(input SimulationInput) (SimulationLog, error) {
	id := input.SimulationID
	if id == "" {
		id = uuid.NewString()
	}

	tr, err := Generate(input.Params)
	if err != nil {
		return SimulationLog{}, fmt.Errorf("simulation %s: %w", id, err)
	}

	return SimulationLog{
		SimulationID: id,
		Params:       tr.Params,
		Summary:      Summarize(tr),
		Samples:      tr.Samples,
	}, nil
}

// RunJSON is the entry point shared by the CLI and WASM targets.
// It accepts a JSON-encoded SimulationInput, runs the simulation, and returns a
// JSON-encoded SimulationLog.
func RunJSON(jsonInput string) (string, error) {
	var input SimulationInput
	if err := json.Unmarshal([]byte(jsonInput), &input); err != nil {
		return "", fmt.Errorf("invalid input JSON: %w", err)
	}

	simLog, err := Run(input)
	if err != nil {
		return "", err
	}

	out, err := json.Marshal(simLog)
	if err != nil {
		return "", fmt.Errorf("marshaling output: %w", err)
	}
	return string(out), nil
}

// Trajectory rebuilds the sampled trajectory carried by the log.
func (l SimulationLog) Trajectory() Trajectory {
	return Trajectory{Params: l.Params, Samples: l.Samples}
}
