package kinematics

import "gonum.org/v1/gonum/mat"

// MatrixModelName is the discriminator string for the CoefficientMatrix model.
const MatrixModelName = "matrix"

// CoefficientMatrix implements MotionModel as the product of a fixed 2×3
// coefficient matrix with a time-basis matrix whose columns are [t, t², 1]:
//
//	| vx0   0    x0 |   | t₀  t₁  … |
//	| vy0  −g/2  y0 | · | t₀² t₁² … |
//	                    | 1   1   … |
//
// Row 0 of the product holds x, row 1 holds y. Results agree with ClosedForm
// to floating-point precision.
type CoefficientMatrix struct {
	Launch
	coeff *mat.Dense
}

// NewCoefficientMatrix builds the coefficient matrix for l.
func NewCoefficientMatrix(l Launch) CoefficientMatrix {
	return CoefficientMatrix{
		Launch: l,
		coeff: mat.NewDense(2, 3, []float64{
			l.VX0, 0, l.X0,
			l.VY0, -0.5 * l.G, l.Y0,
		}),
	}
}

// Coefficients returns a copy of the 2×3 coefficient matrix.
func (c CoefficientMatrix) Coefficients() *mat.Dense {
	return mat.DenseCopyOf(c.coeff)
}

func (c CoefficientMatrix) Position(t float64) (float64, float64) {
	xs, ys := c.Positions([]float64{t})
	return xs[0], ys[0]
}

func (c CoefficientMatrix) Positions(ts []float64) ([]float64, []float64) {
	n := len(ts)
	if n == 0 {
		return []float64{}, []float64{}
	}

	basis := mat.NewDense(3, n, nil)
	for j, t := range ts {
		basis.Set(0, j, t)
		basis.Set(1, j, t*t)
		basis.Set(2, j, 1)
	}

	var out mat.Dense
	out.Mul(c.coeff, basis)
	return mat.Row(nil, 0, &out), mat.Row(nil, 1, &out)
}
