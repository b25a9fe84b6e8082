package linechart

import (
	"math"
	"sort"

	"github.com/graphima/linechart/anim"
)

// A Tick is one grid line position produced by a Grid. Norm is the
// position in the normalized global space the Grid works in, Value the
// denormalized domain value (filled in by the Camera), Alpha the
// current visibility and EndAlpha the visibility the tick's generation
// is heading to.
type Tick struct {
	Norm     float64
	Value    float64
	Alpha    float64
	EndAlpha float64
}

// A generation is one candidate tick-spacing level with its own fade
// state. Transient generations decay toward zero visibility and are
// pruned once fully faded.
type generation struct {
	period float64
	alpha  *anim.Value
}

// A Grid produces adaptive tick positions for one axis. It maintains
// an infinite lattice anchored at base with the current period snapped
// to power-of-two multiples of the base period, and fades between
// spacing levels instead of popping when the zoom changes.
//
// One Grid per axis per chart, mutated on every frame that requests
// ticks.
type Grid struct {
	base      float64
	period    float64
	minPeriod float64 // 0 means no floor
	current   float64
	gens      []generation
}

// NewGrid returns a Grid for an axis whose global span is
// [globalMin, globalMax]. minPeriod, in domain units, is the finest
// period the grid may use (e.g. one calendar day); 0 disables the
// floor.
func NewGrid(minPeriod, globalMin, globalMax float64) *Grid {
	period := 1.0
	var base float64
	var minP float64
	if minPeriod > 0 {
		minP = minPeriod / (globalMax - globalMin)
		if period < minP {
			period = minP
		} else {
			period -= math.Mod(period, minP)
		}
		base = period * -0.5
		base -= math.Mod(base, minP)
	} else {
		base = period * -0.5
	}
	return &Grid{
		base:      base,
		period:    period,
		minPeriod: minP,
		current:   period,
		gens: []generation{{
			period: period,
			alpha:  anim.NewValue(1),
		}},
	}
}

// Ticks returns the grid lines visible in the normalized window
// [nmin, nmax] at time t, aiming for roughly maxTicks of them. Ticks
// within a quarter period of either window edge are returned at half
// alpha since their labels may be clipped.
func (g *Grid) Ticks(t, nmin, nmax, maxTicks float64) []Tick {
	rng := nmax - nmin
	period := g.period * math.Pow(2, math.Round(math.Log2(rng/g.period/maxTicks)))
	if g.minPeriod > period {
		period = g.minPeriod
	}

	if g.current != period {
		create := true
		currentCount := rng / period
		for i := range g.gens {
			gen := &g.gens[i]
			if gen.period == period {
				create = false
				gen.alpha.Set(1, t)
				continue
			}
			// A generation far outside the new density band
			// would fade across a huge range change; drop it
			// without animating.
			count := rng / gen.period
			if count > currentCount*4 || count < currentCount*0.25 {
				gen.alpha.Snap(0)
			} else {
				gen.alpha.Set(0, t)
			}
		}
		if create {
			alpha := anim.NewValue(0.4)
			alpha.Set(1, t)
			g.gens = append(g.gens, generation{period: period, alpha: alpha})
		}
		g.current = period
	}

	if len(g.gens) > 1 {
		keep := g.gens[:0]
		for _, gen := range g.gens {
			if gen.period == g.current || gen.alpha.At(t) > 0 {
				keep = append(keep, gen)
			}
		}
		g.gens = keep
	}

	var ticks []Tick
	for i := range g.gens {
		gen := &g.gens[i]
		alpha := gen.alpha.At(t)
		endAlpha := gen.alpha.Target()
		p := gen.period
		left := nmin + p*0.25
		right := nmax - p*0.25
		for n := nmin - math.Mod(nmin-g.base, p) + p; n < nmax; n += p {
			a := alpha
			if n < left || n > right {
				a = alpha * 0.5
			}
			ticks = append(ticks, Tick{Norm: n, Alpha: a, EndAlpha: endAlpha})
		}
	}

	if len(g.gens) > 1 {
		sort.SliceStable(ticks, func(i, j int) bool {
			if ticks[i].Norm != ticks[j].Norm {
				return ticks[i].Norm < ticks[j].Norm
			}
			return ticks[i].Alpha > ticks[j].Alpha
		})
		// Coinciding ticks from different generations collapse to
		// one. A tick of a generation settling at full opacity
		// must not be dimmed by a departing one sharing its spot.
		out := ticks[:0]
		for _, tk := range ticks {
			if len(out) > 0 && out[len(out)-1].Norm == tk.Norm {
				if tk.EndAlpha == 1 || out[len(out)-1].EndAlpha == 1 {
					out[len(out)-1].Alpha = 1
				}
				continue
			}
			out = append(out, tk)
		}
		ticks = out
	}
	return ticks
}
