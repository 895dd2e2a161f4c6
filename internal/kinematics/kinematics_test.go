package kinematics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLaunch(t *testing.T) {
	t.Run("45 degrees splits speed evenly", func(t *testing.T) {
		l := NewLaunch(100, 45, 10, 0, 0)
		assert.InDelta(t, 100/math.Sqrt2, l.VX0, 1e-9)
		assert.InDelta(t, 100/math.Sqrt2, l.VY0, 1e-9)
	})

	t.Run("angle is taken mod 360", func(t *testing.T) {
		a := NewLaunch(50, 30, 9.81, 0, 0)
		b := NewLaunch(50, 390, 9.81, 0, 0)
		assert.InDelta(t, a.VX0, b.VX0, 1e-12)
		assert.InDelta(t, a.VY0, b.VY0, 1e-12)
	})

	t.Run("whole turn is exactly horizontal", func(t *testing.T) {
		l := NewLaunch(20, 360, 9.81, 0, 0)
		assert.Equal(t, 0.0, l.VY0)
		assert.Equal(t, 20.0, l.VX0)
	})

	t.Run("negative angle points down", func(t *testing.T) {
		l := NewLaunch(10, -30, 9.81, 0, 0)
		assert.Less(t, l.VY0, 0.0)
		assert.Greater(t, l.VX0, 0.0)
	})
}

func TestAnalyticQuantities(t *testing.T) {
	l := NewLaunch(100, 45, 10, 0, 0)

	assert.InDelta(t, 14.142135, l.TimeOfFlight(), 1e-5)
	assert.InDelta(t, 7.0710678, l.ApexTime(), 1e-6)
	assert.InDelta(t, 250.0, l.MaxHeight(), 1e-9)
	assert.InDelta(t, 1000.0, l.Range(), 1e-9)

	x, y := l.ApexPoint()
	assert.InDelta(t, 500.0, x, 1e-9)
	assert.InDelta(t, 250.0, y, 1e-9)

	t.Run("apex height is offset by launch height", func(t *testing.T) {
		l := NewLaunch(100, 45, 10, 3, 40)
		_, y := l.ApexPoint()
		assert.InDelta(t, 290.0, y, 1e-9)
		assert.InDelta(t, 250.0, l.MaxHeight(), 1e-9)
	})

	t.Run("no climb means no flight", func(t *testing.T) {
		for _, angle := range []float64{0, -45, 180 + 45} {
			l := NewLaunch(30, angle, 9.81, 0, 0)
			assert.Zero(t, l.TimeOfFlight(), "angle %v", angle)
			assert.Zero(t, l.MaxHeight(), "angle %v", angle)
			assert.Zero(t, l.ApexTime(), "angle %v", angle)
		}
	})
}

func TestClosedFormPosition(t *testing.T) {
	m := ClosedForm{Launch: Launch{VX0: 3, VY0: 4, G: 10, X0: 1, Y0: 2}}

	x, y := m.Position(0)
	assert.Equal(t, 1.0, x)
	assert.Equal(t, 2.0, y)

	x, y = m.Position(2)
	assert.Equal(t, 7.0, x)
	assert.Equal(t, 4*2-5*4+2.0, y)
}

func TestModelsAgree(t *testing.T) {
	launches := []Launch{
		NewLaunch(100, 45, 10, 0, 0),
		NewLaunch(10, 20, 10, 0, 0),
		NewLaunch(37.5, 72, 9.81, -12, 8),
		NewLaunch(5, -15, 1.62, 100, 250),
	}
	ts := make([]float64, 200)
	for i := range ts {
		ts[i] = float64(i) * 0.05
	}

	for _, l := range launches {
		cf := ClosedForm{Launch: l}
		cm := NewCoefficientMatrix(l)

		xs1, ys1 := cf.Positions(ts)
		xs2, ys2 := cm.Positions(ts)
		require.Len(t, xs2, len(ts))
		require.Len(t, ys2, len(ts))

		for i := range ts {
			assert.InDelta(t, xs1[i], xs2[i], 1e-9)
			assert.InDelta(t, ys1[i], ys2[i], 1e-9)
		}

		x, y := cm.Position(ts[17])
		assert.InDelta(t, xs1[17], x, 1e-9)
		assert.InDelta(t, ys1[17], y, 1e-9)
	}
}

func TestCoefficientMatrix(t *testing.T) {
	l := Launch{VX0: 3, VY0: 4, G: 10, X0: 1, Y0: 2}
	m := NewCoefficientMatrix(l)

	c := m.Coefficients()
	r, cols := c.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, cols)
	assert.Equal(t, []float64{3, 0, 1}, []float64{c.At(0, 0), c.At(0, 1), c.At(0, 2)})
	assert.Equal(t, []float64{4, -5, 2}, []float64{c.At(1, 0), c.At(1, 1), c.At(1, 2)})

	// Mutating the copy leaves the model untouched.
	c.Set(0, 0, 99)
	x, _ := m.Position(1)
	assert.InDelta(t, 4.0, x, 1e-12)

	xs, ys := m.Positions(nil)
	assert.Empty(t, xs)
	assert.Empty(t, ys)
}

func TestNewModel(t *testing.T) {
	l := NewLaunch(10, 45, 9.81, 0, 0)

	m, err := NewModel("", l)
	require.NoError(t, err)
	assert.IsType(t, ClosedForm{}, m)

	m, err = NewModel(ClosedFormModelName, l)
	require.NoError(t, err)
	assert.IsType(t, ClosedForm{}, m)

	m, err = NewModel(MatrixModelName, l)
	require.NoError(t, err)
	assert.IsType(t, CoefficientMatrix{}, m)

	_, err = NewModel("rk4", l)
	assert.ErrorContains(t, err, `unknown motion model "rk4"`)

	assert.Equal(t, []string{"closed_form", "matrix"}, ModelNames())
}
