// Package linechart is the numerical engine beneath an interactive
// line chart: a pannable, zoomable viewport over sorted (coordinate,
// value) series, with adaptive fading grid lines and nearest-point
// lookup for tooltips.
//
// The engine is a pure computation library invoked once per animation
// frame by a single owner. Within one frame the Camera must be
// resolved before ticks or point slices are queried, since both depend
// on the just-resolved window:
//
//	cam.Resolve(now)
//	s := cam.Scale(now)
//	ticks := cam.CoordTicks(maxTicks, now)
//	pts, ok := series.Slice(s.CoordMin(), s.CoordMax())
//
// Every smooth transition (camera position, zoom range, grid fades,
// tooltip width) is an independent anim.Value; the Camera
// aggregates their in-motion flags into a dirty flag the host uses to
// decide whether another frame is needed.
//
// Drawing, gesture decoding and widget lifecycle are out of scope: the
// engine consumes numeric inputs and emits normalized geometry. The
// CameraTicker bridge exposes axes to gonum.org/v1/plot for consumers
// that render with it.
package linechart
