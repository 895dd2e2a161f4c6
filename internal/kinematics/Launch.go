package kinematics

import "math"

// Launch holds the initial state of a projectile: velocity components derived
// from speed and angle, gravitational acceleration and the launch coordinate.
type Launch struct {
	VX0 float64 // horizontal launch velocity
	VY0 float64 // vertical launch velocity, positive upward
	G   float64 // downward acceleration magnitude
	X0  float64
	Y0  float64
}

// NewLaunch resolves speed and an angle in degrees into velocity components.
// The angle is reduced mod 360 before conversion so that whole turns produce
// exact components.
func NewLaunch(speed, angleDeg, g, x0, y0 float64) Launch {
	rad := DegToRad(math.Mod(angleDeg, 360))
	return Launch{
		VX0: speed * math.Cos(rad),
		VY0: speed * math.Sin(rad),
		G:   g,
		X0:  x0,
		Y0:  y0,
	}
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 { return deg * math.Pi / 180 }

// TimeOfFlight returns the analytic time until the projectile returns to its
// launch height. Zero for horizontal or downward launches.
func (l Launch) TimeOfFlight() float64 {
	if l.G <= 0 || l.VY0 <= 0 {
		return 0
	}
	return 2 * l.VY0 / l.G
}

// ApexTime returns the time at which vertical velocity reaches zero.
// Zero when the projectile never climbs.
func (l Launch) ApexTime() float64 {
	if l.G <= 0 || l.VY0 <= 0 {
		return 0
	}
	return l.VY0 / l.G
}

// MaxHeight returns the apex height above the launch height.
func (l Launch) MaxHeight() float64 {
	if l.G <= 0 || l.VY0 <= 0 {
		return 0
	}
	return (l.VY0 * l.VY0) / (2 * l.G)
}

// ApexPoint returns the absolute coordinates of the apex.
func (l Launch) ApexPoint() (x, y float64) {
	t := l.ApexTime()
	return l.VX0*t + l.X0, l.Y0 + l.MaxHeight()
}

// Range returns the horizontal distance covered over TimeOfFlight.
// Negative when the launch points backwards.
func (l Launch) Range() float64 {
	return l.VX0 * l.TimeOfFlight()
}
