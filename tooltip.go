package linechart

import (
	"math"

	"github.com/graphima/linechart/anim"
)

// A SeriesPoint pairs a series with one of its points.
type SeriesPoint struct {
	Series *Series
	Point  Point
}

// A Hit is a resolved tooltip lookup: the matched coordinate, the
// points every visible series has at it, and which of those is closest
// to the cursor by value.
type Hit struct {
	Coord   float64
	Matches []SeriesPoint
	Closest int
}

// Locate resolves the cursor position (coord, value) to the nearest
// column of data points across the visible series of coll. The last
// points at or before coord and the first points at or after it are
// the two candidate columns; the closer one wins, ties broken toward
// the lower coordinate. Locate reports false when no visible series
// has a point at or before coord.
func Locate(coll *Collection, coord, value float64) (Hit, bool) {
	left := math.Inf(-1)
	var leftMatches []SeriesPoint
	for _, s := range coll.Series() {
		if s.Alpha.Target() == 0 {
			continue
		}
		i, ok := s.RightBound(coord)
		if !ok {
			continue
		}
		p := s.Points()[i]
		if p.Coord > left {
			left = p.Coord
		}
		leftMatches = append(leftMatches, SeriesPoint{Series: s, Point: p})
	}
	leftMatches = keepAtCoord(leftMatches, left)
	if len(leftMatches) == 0 {
		return Hit{}, false
	}

	right := math.Inf(1)
	var rightMatches []SeriesPoint
	for _, s := range coll.Series() {
		if s.Alpha.Target() == 0 {
			continue
		}
		i, ok := s.LeftBound(coord)
		if !ok {
			continue
		}
		p := s.Points()[i]
		if p.Coord < right {
			right = p.Coord
		}
		rightMatches = append(rightMatches, SeriesPoint{Series: s, Point: p})
	}
	rightMatches = keepAtCoord(rightMatches, right)

	matched := left
	matches := leftMatches
	if len(rightMatches) > 0 && math.Abs(coord-right) < math.Abs(coord-left) {
		matched = right
		matches = rightMatches
	}

	closest := 0
	minDiff := math.Inf(1)
	for i, m := range matches {
		if diff := math.Abs(m.Point.Value - value); diff < minDiff {
			minDiff = diff
			closest = i
		}
	}
	return Hit{Coord: matched, Matches: matches, Closest: closest}, true
}

func keepAtCoord(matches []SeriesPoint, coord float64) []SeriesPoint {
	kept := matches[:0]
	for _, m := range matches {
		if m.Point.Coord == coord {
			kept = append(kept, m)
		}
	}
	return kept
}

// A Tooltip keeps the animated minimum width of the tooltip box so the
// box shrinks smoothly while growing instantly, which avoids clipped
// text.
type Tooltip struct {
	minWidth *anim.Value
}

// NewTooltip returns a Tooltip with slow half-second shrink phases.
func NewTooltip() *Tooltip {
	return &Tooltip{minWidth: anim.NewCustomValue(0, 500000, 500000)}
}

// ObserveWidth feeds the measured content width at time t and returns
// the width the box should be drawn with: growth applies instantly,
// shrinking animates toward the smaller width.
func (tp *Tooltip) ObserveWidth(w, t float64) float64 {
	min := tp.minWidth.At(t)
	if w > min {
		tp.minWidth.Snap(w)
		return w
	}
	if w < min {
		if w < tp.minWidth.Target() {
			tp.minWidth.Set(w, t)
		}
		return min
	}
	return w
}
