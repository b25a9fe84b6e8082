package linechart

import (
	"github.com/graphima/linechart/anim"
)

// Axis names one of the two chart axes.
type Axis int

const (
	CoordAxis Axis = iota
	ValueAxis
)

// A Camera is the animated viewport over a Collection. It composes an
// owned working Scale with four animation primitives (coordinate
// center and range, value center and range) and one Grid per axis.
//
// A never-reframed copy of the global Scale is kept for normalizing
// the current window against the full dataset range, which is what
// keeps tick generations continuous across zoom levels.
//
// All methods must be called from a single owner, once per frame, and
// Resolve must run before any geometry for that frame is queried.
type Camera struct {
	scale  Scale
	global Scale

	coord      *anim.Value
	coordRange *anim.Value
	value      *anim.Value
	valueRange *anim.Value

	coordGrid *Grid
	valueGrid *Grid

	resolvedAt float64
	resolved   bool
	dirty      bool
}

// NewCamera returns a Camera over coll using scale, framed to show
// every visible series, settled (no animation in flight).
func NewCamera(scale Scale, coll *Collection) *Camera {
	c := &Camera{
		scale:      scale,
		global:     scale,
		coord:      anim.NewValue(0),
		coordRange: anim.NewValue(0),
		value:      anim.NewValue(0),
		valueRange: anim.NewValue(0),
		coordGrid:  NewGrid(coll.CoordKind.MinPeriod(), scale.CoordMin(), scale.CoordMax()),
		valueGrid:  NewGrid(coll.ValueKind.MinPeriod(), scale.ValueMin(), scale.ValueMax()),
	}
	c.FitAllSnap(coll)
	return c
}

// set retargets one primitive, either animated or instantly.
func (c *Camera) set(v *anim.Value, target, t float64, snap bool) {
	if snap {
		v.Snap(target)
	} else {
		v.Set(target, t)
	}
	c.dirty = true
	c.resolved = false
}

// FitAll animates the viewport to frame every visible series.
func (c *Camera) FitAll(coll *Collection, t float64) {
	c.fitAll(coll, t, false)
}

// FitAllSnap reframes to every visible series without animating.
func (c *Camera) FitAllSnap(coll *Collection) {
	c.fitAll(coll, 0, true)
}

func (c *Camera) fitAll(coll *Collection, t float64, snap bool) {
	b, ok := coll.VisibleBounds()
	if !ok {
		return
	}
	c.set(c.coord, (b.Coord.Min+b.Coord.Max)*0.5, t, snap)
	c.set(c.coordRange, b.Coord.Span(), t, snap)
	c.set(c.value, (b.Value.Min+b.Value.Max)*0.5, t, snap)
	c.set(c.valueRange, b.Value.Span(), t, snap)
}

// ZoomTo animates the coordinate window to [coordStart, coordEnd] and
// refits the value window to the points inside it. When fewer than two
// points of any visible series fall in the window the zoom target is
// ambiguous: ZoomTo changes nothing and reports false. Inverted bounds
// are a caller bug and panic.
func (c *Camera) ZoomTo(coll *Collection, coordStart, coordEnd, t float64) bool {
	return c.zoomTo(coll, coordStart, coordEnd, t, false)
}

// ZoomToSnap is ZoomTo without animation.
func (c *Camera) ZoomToSnap(coll *Collection, coordStart, coordEnd float64) bool {
	return c.zoomTo(coll, coordStart, coordEnd, 0, true)
}

func (c *Camera) zoomTo(coll *Collection, coordStart, coordEnd, t float64, snap bool) bool {
	if coordEnd <= coordStart {
		panic("linechart: inverted zoom bounds")
	}
	value := unsetInterval()
	points := 0
	for _, s := range coll.Series() {
		if s.Alpha.Target() == 0 {
			continue
		}
		pts, ok := s.Slice(coordStart, coordEnd)
		if !ok {
			continue
		}
		if len(pts) > points {
			points = len(pts)
		}
		for _, p := range pts {
			value.Update(p.Value)
		}
	}
	if points < 2 {
		return false
	}
	c.set(c.coord, (coordStart+coordEnd)*0.5, t, snap)
	c.set(c.coordRange, coordEnd-coordStart, t, snap)
	c.set(c.value, (value.Min+value.Max)*0.5, t, snap)
	c.set(c.valueRange, value.Span(), t, snap)
	return true
}

// MoveTo pans the viewport to center the given coordinate, keeping the
// target coordinate range and refitting the value window to the points
// now visible.
func (c *Camera) MoveTo(coll *Collection, coordCenter, t float64) {
	c.moveTo(coll, coordCenter, t, false)
}

// MoveToSnap is MoveTo without animation.
func (c *Camera) MoveToSnap(coll *Collection, coordCenter float64) {
	c.moveTo(coll, coordCenter, 0, true)
}

func (c *Camera) moveTo(coll *Collection, coordCenter, t float64, snap bool) {
	c.set(c.coord, coordCenter, t, snap)
	halfRange := c.coordRange.Target() * 0.5
	value := unsetInterval()
	for _, s := range coll.Series() {
		if s.Alpha.Target() == 0 {
			continue
		}
		pts, ok := s.Slice(coordCenter-halfRange, coordCenter+halfRange)
		if !ok {
			continue
		}
		for _, p := range pts {
			value.Update(p.Value)
		}
	}
	if value.Valid() {
		c.set(c.value, (value.Min+value.Max)*0.5, t, snap)
		c.set(c.valueRange, value.Span(), t, snap)
	}
}

// Resolve evaluates the four primitives at time t, derives the
// instantaneous window and reframes the owned Scale. After Resolve,
// Dirty reports whether anything is still in motion, i.e. whether the
// consumer must schedule another frame. Resolving the same timestamp
// twice is a no-op.
func (c *Camera) Resolve(t float64) {
	if c.resolved && c.resolvedAt == t {
		return
	}
	coord, a1 := c.coord.Eval(t)
	halfCoord, a2 := c.coordRange.Eval(t)
	value, a3 := c.value.Eval(t)
	halfValue, a4 := c.valueRange.Eval(t)
	halfCoord *= 0.5
	halfValue *= 0.5
	c.scale.Reframe(coord-halfCoord, coord+halfCoord, value-halfValue, value+halfValue)
	c.dirty = a1 || a2 || a3 || a4
	c.resolvedAt = t
	c.resolved = true
}

// Dirty reports whether the viewport was still animating at the last
// resolved timestamp, or has unresolved retargets pending.
func (c *Camera) Dirty() bool {
	return c.dirty
}

// Scale returns the Scale resolved for time t. Querying a timestamp
// that has not been resolved is an ordering bug in the caller and
// panics.
func (c *Camera) Scale(t float64) *Scale {
	if !c.resolved || c.resolvedAt != t {
		panic("linechart: camera not resolved for this timestamp")
	}
	return &c.scale
}

// GlobalScale returns the read-only full-dataset scale.
func (c *Camera) GlobalScale() Scale {
	return c.global
}

// CoordTicks returns the coordinate-axis grid lines for the resolved
// window at time t, aiming for maxTicks of them. Tick values are
// denormalized against the global scale.
func (c *Camera) CoordTicks(maxTicks, t float64) []Tick {
	s := c.Scale(t)
	nmin := c.global.NormalizeCoord(s.CoordMin())
	nmax := c.global.NormalizeCoord(s.CoordMax())
	ticks := c.coordGrid.Ticks(t, nmin, nmax, maxTicks)
	for i := range ticks {
		ticks[i].Value = c.global.DenormalizeCoord(ticks[i].Norm)
	}
	return ticks
}

// ValueTicks returns the value-axis grid lines for the resolved window
// at time t, aiming for maxTicks of them.
func (c *Camera) ValueTicks(maxTicks, t float64) []Tick {
	s := c.Scale(t)
	nmin := c.global.NormalizeValue(s.ValueMin())
	nmax := c.global.NormalizeValue(s.ValueMax())
	ticks := c.valueGrid.Ticks(t, nmin, nmax, maxTicks)
	for i := range ticks {
		ticks[i].Value = c.global.DenormalizeValue(ticks[i].Norm)
	}
	return ticks
}
