package linechart

import (
	"fmt"
	"math"
	"sort"

	"github.com/graphima/linechart/anim"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot/plotter"
)

// A Point is one sample of a series: an independent coordinate (time,
// x-position) and a dependent value.
type Point struct {
	Coord, Value float64
}

// Stats are summary statistics over the value column of a series,
// computed once at construction.
type Stats struct {
	Min, P25, P50, P75, Max float64
}

// A Series is an immutable dataset of points sorted strictly
// increasing by coordinate, supporting O(log n) boundary searches.
//
// Alpha is the animated visibility of the series; a series whose
// target alpha is zero is skipped by camera fitting and tooltip
// lookups.
type Series struct {
	Name  string
	Alpha *anim.Value

	pts   []Point
	stats Stats
}

// NewSeries builds a Series from pts. The input is copied and sorted
// by coordinate; an empty input is a construction error. The boundary
// searches tolerate duplicate coordinates, but Collection.Add rejects
// them, so charts never carry any.
func NewSeries(name string, pts []Point) (*Series, error) {
	if len(pts) == 0 {
		return nil, fmt.Errorf("linechart: series %q is empty", name)
	}
	sorted := make([]Point, len(pts))
	copy(sorted, pts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Coord < sorted[j].Coord
	})
	return &Series{
		Name:  name,
		Alpha: anim.NewValue(1),
		pts:   sorted,
		stats: computeStats(sorted),
	}, nil
}

// NewSeriesFromXYs builds a Series from any gonum plotter.XYer.
func NewSeriesFromXYs(name string, xys plotter.XYer) (*Series, error) {
	pts := make([]Point, xys.Len())
	for i := range pts {
		x, y := xys.XY(i)
		pts[i] = Point{Coord: x, Value: y}
	}
	return NewSeries(name, pts)
}

func computeStats(pts []Point) Stats {
	values := make([]float64, len(pts))
	for i, p := range pts {
		values[i] = p.Value
	}
	min, max := floats.Min(values), floats.Max(values)
	sort.Float64s(values)
	return Stats{
		Min: min,
		P25: percentile(values, 0.25),
		P50: percentile(values, 0.5),
		P75: percentile(values, 0.75),
		Max: max,
	}
}

// percentile interpolates linearly between adjacent ranks at the
// fractional position p*(n-1). values must be sorted.
func percentile(values []float64, p float64) float64 {
	index := p * float64(len(values)-1)
	left := int(index)
	if left == len(values)-1 {
		return values[left]
	}
	return values[left] + (values[left+1]-values[left])*(index-float64(left))
}

// Points returns the sorted points of s. The returned slice is shared;
// callers must treat it as read-only.
func (s *Series) Points() []Point {
	return s.pts
}

// Len returns the number of points.
func (s *Series) Len() int {
	return len(s.pts)
}

// Stats returns the precomputed value statistics.
func (s *Series) Stats() Stats {
	return s.stats
}

// LeftBound returns the smallest index whose coordinate is at or after
// x. It reports false only if x exceeds every coordinate.
func (s *Series) LeftBound(x float64) (int, bool) {
	i := sort.Search(len(s.pts), func(i int) bool { return s.pts[i].Coord >= x })
	if i == len(s.pts) {
		return 0, false
	}
	return i, true
}

// RightBound returns the largest index whose coordinate is at or
// before x. It reports false only if x precedes every coordinate.
func (s *Series) RightBound(x float64) (int, bool) {
	i := sort.Search(len(s.pts), func(i int) bool { return s.pts[i].Coord > x })
	if i == 0 {
		return 0, false
	}
	return i - 1, true
}

// Slice returns the contiguous run of points whose coordinates fall in
// [start, end]. It reports false when the series is empty or no point
// falls inside the window; that is a normal outcome, not an error.
func (s *Series) Slice(start, end float64) ([]Point, bool) {
	left, ok := s.LeftBound(start)
	if !ok {
		return nil, false
	}
	right, ok := s.RightBound(end)
	if !ok || left > right {
		return nil, false
	}
	return s.pts[left : right+1], true
}

// Nearest returns the point whose coordinate is closest to q, ties
// broken toward the lower coordinate. It reports false only on an
// empty series.
func (s *Series) Nearest(q float64) (Point, bool) {
	li, lok := s.RightBound(q)
	ri, rok := s.LeftBound(q)
	switch {
	case !lok && !rok:
		return Point{}, false
	case !lok:
		return s.pts[ri], true
	case !rok:
		return s.pts[li], true
	}
	left, right := s.pts[li], s.pts[ri]
	if math.Abs(q-right.Coord) < math.Abs(q-left.Coord) {
		return right, true
	}
	return left, true
}
