package linechart

import (
	"gonum.org/v1/plot"
)

// A CameraTicker adapts one axis of a Camera to gonum's plot.Ticker so
// plot-based consumers can draw the engine's animated axes directly.
// The camera must be resolved for Now before the plot is drawn; the
// min/max arguments of Ticks are ignored in favor of the camera's
// resolved window.
type CameraTicker struct {
	Camera   *Camera
	Axis     Axis
	MaxTicks float64
	Now      float64
	Format   Formatter
}

var _ plot.Ticker = CameraTicker{}

// Ticks implements plot.Ticker. Ticks still fading in or out are
// returned as minor ticks (no label).
func (ct CameraTicker) Ticks(min, max float64) []plot.Tick {
	var ticks []Tick
	switch ct.Axis {
	case CoordAxis:
		ticks = ct.Camera.CoordTicks(ct.MaxTicks, ct.Now)
	case ValueAxis:
		ticks = ct.Camera.ValueTicks(ct.MaxTicks, ct.Now)
	default:
		panic(ct.Axis)
	}
	out := make([]plot.Tick, len(ticks))
	for i, tk := range ticks {
		out[i].Value = tk.Value
		if tk.Alpha >= 1 {
			out[i].Label = ct.Format.Format(tk.Value)
		}
	}
	return out
}
