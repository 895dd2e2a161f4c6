// Package kinematics defines the MotionModel interface for drag-free projectile
// motion under constant gravity, along with built-in implementations.
//
// Every model evaluates the same pair of polynomials in time:
//
//	x(t) = vx0·t + x0
//	y(t) = vy0·t − g/2·t² + y0
//
// Models differ only in how the evaluation is carried out. Adding a new model
// requires implementing MotionModel and registering it in NewModel; the engine
// never needs to change.
package kinematics

import "fmt"

// MotionModel is the contract every trajectory evaluator must satisfy.
// Positions are in the caller's length unit and time in seconds.
type MotionModel interface {
	// Position returns the projectile coordinates t seconds after launch.
	Position(t float64) (x, y float64)

	// Positions evaluates the model at every time in ts, preserving order.
	Positions(ts []float64) (xs, ys []float64)
}

// NewModel returns the model registered under name for launch l.
// An empty name selects the closed-form model.
//
// Supported models:
//   - "closed_form": direct scalar evaluation of the polynomials.
//   - "matrix": batched coefficient-matrix product.
func NewModel(name string, l Launch) (MotionModel, error) {
	switch name {
	case "", ClosedFormModelName:
		return ClosedForm{Launch: l}, nil
	case MatrixModelName:
		return NewCoefficientMatrix(l), nil
	default:
		return nil, fmt.Errorf("unknown motion model %q", name)
	}
}

// ModelNames lists the registered model discriminators.
func ModelNames() []string {
	return []string{ClosedFormModelName, MatrixModelName}
}
