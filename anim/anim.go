// Package anim provides the scalar animation primitive behind every
// smooth transition in the chart engine: camera position and range,
// grid fade-ins, series visibility and tooltip width are all
// independent anim.Values.
//
// A Value moves from its current position to a target in two phases:
// an acceleration phase of duration dt1 where the normalized distance
// follows k*t^2/2 + v0*t, and a constant-velocity phase of duration
// dt2. The coefficient k is solved so the total normalized distance is
// exactly 1, given the velocity v0 carried over from an interrupted
// animation. Retargeting mid-flight is therefore continuous in
// position, though not necessarily in velocity when it happens during
// the constant phase.
//
// All timestamps are monotonic microseconds with an arbitrary origin.
package anim

import "math"

// DefaultPhase is the default duration, in microseconds, of each of
// the two animation phases.
const DefaultPhase = 100000

// A Value is a scalar that transitions smoothly between targets.
// The zero Value is not usable; construct with NewValue.
type Value struct {
	x0, x1   float64
	k, c     float64
	v0       float64
	t0       float64
	live     bool
	dt1, dt2 float64
}

// NewValue returns a settled Value at initial with default phase
// durations.
func NewValue(initial float64) *Value {
	return NewCustomValue(initial, DefaultPhase, DefaultPhase)
}

// NewCustomValue returns a settled Value at initial with the given
// phase durations in microseconds. Both durations must be positive.
func NewCustomValue(initial, dt1, dt2 float64) *Value {
	if dt1 <= 0 || dt2 <= 0 {
		panic("anim: phase durations must be positive")
	}
	return &Value{x0: initial, x1: initial, dt1: dt1, dt2: dt2}
}

// Eval returns the value at time t and whether the Value is still
// animating. Once the combined duration has elapsed Eval reports the
// end value and clears the in-flight state.
func (v *Value) Eval(t float64) (float64, bool) {
	if !v.live {
		return v.x1, false
	}
	us := t - v.t0
	switch {
	case us <= v.dt1:
		return (v.k*us*us/2+v.v0*us)*(v.x1-v.x0) + v.x0, true
	case us >= v.dt1+v.dt2:
		v.live = false
		return v.x1, false
	default:
		d := v.k*v.dt1*v.dt1/2 + v.v0*v.dt1 + v.c*math.Min(v.dt2, us-v.dt1)
		return d*(v.x1-v.x0) + v.x0, true
	}
}

// At returns the value at time t.
func (v *Value) At(t float64) float64 {
	x, _ := v.Eval(t)
	return x
}

// Target returns the value the animation is heading to, or the settled
// value.
func (v *Value) Target() float64 {
	return v.x1
}

// Set retargets the Value to reach target at t+dt1+dt2. The current
// interpolated position becomes the new start and the velocity already
// attained (capped at full acceleration) carries over, so the position
// never jumps.
func (v *Value) Set(target, t float64) {
	cur, _ := v.Eval(t)
	v.x0 = cur
	v.x1 = target
	if v.live {
		v.v0 += v.k * math.Min(v.dt1, t-v.t0)
	} else {
		v.v0 = 0
	}
	v.k = (1 - v.v0*(v.dt1+v.dt2)) / (v.dt1 * (v.dt1*0.5 + v.dt2))
	v.c = v.k*v.dt1 + v.v0
	v.t0 = t
	v.live = true
}

// Snap sets the Value to target instantly, cancelling any animation in
// flight. Used where transition motion would be misleading, e.g. an
// abrupt hide.
func (v *Value) Snap(target float64) {
	v.live = false
	v.x1 = target
}
