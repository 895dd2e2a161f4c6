package engine

// Origin is the launch coordinate all positions are offset from.
type Origin struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Params are the inputs to a simulation run. Build them with NewParams, which
// validates; Generate validates again so that literals cannot slip through.
type Params struct {
	InitialSpeed float64 `json:"initial_speed"` // launch speed, length/s
	LaunchAngle  float64 `json:"launch_angle"`  // degrees from +x, any real value
	Gravity      float64 `json:"gravity"`       // downward acceleration, length/s²
	Origin       Origin  `json:"origin"`
	TimeStep     float64 `json:"time_step"` // seconds between samples

	// Model selects the kinematics evaluator; empty means closed form.
	Model string `json:"model,omitempty"`
	// MaxSamples caps the trajectory length. Zero = unlimited.
	MaxSamples int `json:"max_samples,omitempty"`
}

// Sample is the projectile position at time T.
type Sample struct {
	T float64 `json:"t"` // seconds since launch
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Trajectory is the ordered output of Generate. Samples are in increasing time
// order and must be treated as read-only by consumers.
type Trajectory struct {
	Params  Params   `json:"parameters"`
	Samples []Sample `json:"samples"`
}

// SimulationInput is the JSON-serialisable input to RunJSON.
type SimulationInput struct {
	SimulationID string `json:"simulation_id,omitempty"`
	Params       Params `json:"parameters"`
}

// Summary holds analytic quantities next to what the sampling produced.
type Summary struct {
	TimeOfFlight float64 `json:"time_of_flight"` // analytic, seconds
	MaxHeight    float64 `json:"max_height"`     // analytic, above launch height
	Range        float64 `json:"range"`          // analytic, horizontal
	SampleCount  int     `json:"sample_count"`
	FinalTime    float64 `json:"final_time"` // time of the last sample
	Apex         Sample  `json:"apex"`       // highest sample
}

// SimulationLog is the complete JSON output of a run.
type SimulationLog struct {
	SimulationID string   `json:"simulation_id"`
	Params       Params   `json:"parameters"`
	Summary      Summary  `json:"summary"`
	Samples      []Sample `json:"samples"`
}
