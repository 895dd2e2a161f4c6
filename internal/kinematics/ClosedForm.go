package kinematics

// ClosedFormModelName is the discriminator string for the ClosedForm model.
const ClosedFormModelName = "closed_form"

// ClosedForm implements MotionModel by evaluating the position polynomials
// directly, one time point at a time. This is the default model.
type ClosedForm struct {
	Launch
}

func (c ClosedForm) Position(t float64) (float64, float64) {
	x := c.VX0*t + c.X0
	y := c.VY0*t - 0.5*c.G*t*t + c.Y0
	return x, y
}

func (c ClosedForm) Positions(ts []float64) ([]float64, []float64) {
	xs := make([]float64, len(ts))
	ys := make([]float64, len(ts))
	for i, t := range ts {
		xs[i], ys[i] = c.Position(t)
	}
	return xs, ys
}
