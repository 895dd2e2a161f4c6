package render

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/cxd309/ballistic-engine/internal/engine"
)

// Summary renders the launch parameters, the analytic flight quantities and
// what the sampling produced as a table.
func Summary(tr engine.Trajectory) string {
	s := engine.Summarize(tr)
	p := tr.Params

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Quantity", "Value"})
	t.AppendRows([]table.Row{
		{"initial speed", num(p.InitialSpeed)},
		{"launch angle (deg)", num(p.LaunchAngle)},
		{"gravity", num(p.Gravity)},
		{"origin", fmt.Sprintf("(%s, %s)", num(p.Origin.X), num(p.Origin.Y))},
		{"time step", num(p.TimeStep)},
	})
	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"time of flight", num(s.TimeOfFlight)},
		{"max height", num(s.MaxHeight)},
		{"range", num(s.Range)},
	})
	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"samples", s.SampleCount},
		{"final time", num(s.FinalTime)},
		{"apex sample", fmt.Sprintf("t=%s (%s, %s)", num(s.Apex.T), num(s.Apex.X), num(s.Apex.Y))},
	})
	return t.Render()
}

func num(v float64) string {
	return fmt.Sprintf("%.4f", v)
}
