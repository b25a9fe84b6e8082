package linechart

import (
	"fmt"
	"math"
)

// ----------------------------------------------------------------------------
// Interval

// Interval represents a (potentially degenerate) real interval.
// Both edges may be NaN indicating this edge is not yet determined.
type Interval struct {
	Min, Max float64
}

func unsetInterval() Interval {
	return Interval{math.NaN(), math.NaN()}
}

// Update expands i to include x.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		if !(i.Min < v) {
			i.Min = v
		}
		if !(i.Max > v) {
			i.Max = v
		}
	}
}

// Valid reports whether both edges of i are set and the interval is
// not degenerate.
func (i Interval) Valid() bool {
	return !math.IsNaN(i.Min) && !math.IsNaN(i.Max) && i.Min != i.Max
}

// Span returns the width of i.
func (i Interval) Span() float64 {
	return i.Max - i.Min
}

// Bounds is the full-dataset framing of a chart: the global coordinate
// and value intervals. It is passed read-only wherever normalization
// against the complete data range is needed.
type Bounds struct {
	Coord, Value Interval
}

// ----------------------------------------------------------------------------
// Scale

// ScaleKind selects one of the two known scale variants.
type ScaleKind int

const (
	Linear ScaleKind = iota
	Log
)

// String returns the kind of k.
func (k ScaleKind) String() string {
	return []string{"linear", "log"}[int(k)]
}

// The log variant shifts values by logFloor before taking log10 so the
// argument never approaches zero, and anchors the log base to the
// global value minimum so zooming does not distort relative density.
const (
	logFloor    = 1000.0
	logFloorExp = 3.0 // log10(logFloor)
)

// A Scale is a bidirectional mapping between the currently visible
// window in domain space and the normalized [0, 1] drawing space.
// Coordinates always map linearly; values map linearly or
// logarithmically depending on Kind.
//
// A Scale is a small value type: copy it freely, reframe the copy.
type Scale struct {
	Kind ScaleKind

	coordMin, coordMax float64
	coordRange         float64
	coordRangeRecip    float64

	valueMin, valueMax float64
	valueRange         float64
	valueRangeRecip    float64

	valueGlobalMin float64
	logBase        float64
	logRange       float64
	logRangeRecip  float64
}

// NewScale returns a Scale of the given kind framed to the global
// bounds b. It fails if either interval of b is unset or has zero
// span: a degenerate dataset must be padded by the caller before a
// window can be constructed from it.
func NewScale(kind ScaleKind, b Bounds) (Scale, error) {
	if !b.Coord.Valid() {
		return Scale{}, fmt.Errorf("linechart: invalid global coord interval [%g, %g]", b.Coord.Min, b.Coord.Max)
	}
	if !b.Value.Valid() {
		return Scale{}, fmt.Errorf("linechart: invalid global value interval [%g, %g]", b.Value.Min, b.Value.Max)
	}
	s := Scale{Kind: kind, valueGlobalMin: b.Value.Min}
	s.Reframe(b.Coord.Min, b.Coord.Max, b.Value.Min, b.Value.Max)
	return s, nil
}

// Reframe moves the visible window. It is O(1) and is called on every
// animated frame while the viewport is in motion. A zero-width window
// is a contract violation by the caller and panics.
func (s *Scale) Reframe(coordMin, coordMax, valueMin, valueMax float64) {
	coordRange := coordMax - coordMin
	if coordRange == 0 {
		panic("linechart: coord range cannot be zero")
	}
	valueRange := valueMax - valueMin
	if valueRange == 0 {
		panic("linechart: value range cannot be zero")
	}
	s.coordMin, s.coordMax = coordMin, coordMax
	s.coordRange = coordRange
	s.coordRangeRecip = 1 / coordRange
	s.valueMin, s.valueMax = valueMin, valueMax
	s.valueRange = valueRange
	s.valueRangeRecip = 1 / valueRange

	switch s.Kind {
	case Linear:
		// Nothing beyond the affine constants above.
	case Log:
		// The base stays anchored to the global minimum across
		// reframes; only the upper end follows the window.
		logMax := math.Log10(valueMax - s.valueGlobalMin + logFloor)
		s.logBase = logFloorExp
		s.logRange = logMax - s.logBase
		s.logRangeRecip = 1 / s.logRange
	default:
		panic(s.Kind)
	}
}

// NormalizeCoord maps a coordinate into [0, 1] across the visible
// window. Out-of-window inputs map outside that range.
func (s *Scale) NormalizeCoord(coord float64) float64 {
	return (coord - s.coordMin) * s.coordRangeRecip
}

// NormalizeValue maps a value into [0, 1] across the visible window.
func (s *Scale) NormalizeValue(value float64) float64 {
	switch s.Kind {
	case Linear:
		return (value - s.valueMin) * s.valueRangeRecip
	case Log:
		return (math.Log10(value-s.valueGlobalMin+logFloor) - s.logBase) * s.logRangeRecip
	default:
		panic(s.Kind)
	}
}

// DenormalizeCoord is the inverse of NormalizeCoord.
func (s *Scale) DenormalizeCoord(t float64) float64 {
	return t*s.coordRange + s.coordMin
}

// DenormalizeValue is the inverse of NormalizeValue.
func (s *Scale) DenormalizeValue(t float64) float64 {
	switch s.Kind {
	case Linear:
		return t*s.valueRange + s.valueMin
	case Log:
		return math.Pow(10, t*s.logRange+s.logBase) - logFloor + s.valueGlobalMin
	default:
		panic(s.Kind)
	}
}

// CoordMin returns the left edge of the visible window.
func (s *Scale) CoordMin() float64 { return s.coordMin }

// CoordMax returns the right edge of the visible window.
func (s *Scale) CoordMax() float64 { return s.coordMax }

// ValueMin returns the lower edge of the visible window.
func (s *Scale) ValueMin() float64 { return s.valueMin }

// ValueMax returns the upper edge of the visible window.
func (s *Scale) ValueMax() float64 { return s.valueMax }

func (s *Scale) String() string {
	if s == nil {
		return "<nil>"
	}
	return fmt.Sprintf("coord=[%.2f:%.2f] value=[%.2f:%.2f] %s",
		s.coordMin, s.coordMax, s.valueMin, s.valueMax, s.Kind)
}

// PickKind chooses between a linear and a logarithmic value scale for
// c. For every visible series the normalized span it covers is
// computed under both variants; Log wins when the narrowest log span
// exceeds the narrowest linear span by more than threshold. A larger
// threshold makes the log scale harder to trigger.
func PickKind(c *Collection, threshold float64) (ScaleKind, error) {
	b := c.Bounds()
	logScale, err := NewScale(Log, b)
	if err != nil {
		return Linear, err
	}
	linScale, err := NewScale(Linear, b)
	if err != nil {
		return Linear, err
	}
	minLog := math.MaxFloat64
	minLin := math.MaxFloat64
	for _, series := range c.Series() {
		if series.Alpha.Target() == 0 {
			continue
		}
		st := series.Stats()
		logSpan := logScale.NormalizeValue(st.Max) - logScale.NormalizeValue(st.Min)
		linSpan := linScale.NormalizeValue(st.Max) - linScale.NormalizeValue(st.Min)
		minLog = math.Min(minLog, logSpan)
		minLin = math.Min(minLin, linSpan)
	}
	if minLog > minLin*threshold {
		return Log, nil
	}
	return Linear, nil
}
