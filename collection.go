package linechart

import (
	"fmt"
	"sort"
)

// DataKind describes what the numbers on one axis mean. It decides
// label formatting and, for calendar dates, the finest tick period the
// grid may use.
type DataKind int

const (
	Number DataKind = iota
	Date
	DateTime
)

// String returns the kind of k.
func (k DataKind) String() string {
	return []string{"number", "date", "datetime"}[int(k)]
}

// MinPeriod returns the finest sensible tick period for k in domain
// units, or 0 when ticks may be subdivided without limit. Date axes
// are in epoch milliseconds and never subdivide below one day.
func (k DataKind) MinPeriod() float64 {
	if k == Date {
		return 86400000
	}
	return 0
}

// SortOrder selects how Collection.Sort orders its series.
type SortOrder int

const (
	SortNone SortOrder = iota
	SortMaxAsc
	SortMaxDesc
	SortMinAsc
	SortMinDesc
	SortMedianAsc
	SortMedianDesc
)

// A Collection is the named set of series displayed by one chart,
// together with the global data bounds and the axis data kinds.
type Collection struct {
	Name      string
	CoordKind DataKind
	ValueKind DataKind

	series []*Series
	coord  Interval
	value  Interval
}

// NewCollection returns an empty Collection for the given axis kinds.
func NewCollection(coordKind, valueKind DataKind) *Collection {
	return &Collection{
		CoordKind: coordKind,
		ValueKind: valueKind,
		coord:     unsetInterval(),
		value:     unsetInterval(),
	}
}

// Add ingests s into c, expanding the global bounds. A duplicate
// series name or a duplicate coordinate within s is a construction
// error and leaves c unchanged.
func (c *Collection) Add(s *Series) error {
	for _, have := range c.series {
		if have.Name == s.Name {
			return fmt.Errorf("linechart: duplicate series name %q", s.Name)
		}
	}
	pts := s.Points()
	for i := 1; i < len(pts); i++ {
		if pts[i].Coord == pts[i-1].Coord {
			return fmt.Errorf("linechart: series %q: duplicate coordinate %g at index %d",
				s.Name, pts[i].Coord, i)
		}
	}
	c.coord.Update(pts[0].Coord, pts[len(pts)-1].Coord)
	c.value.Update(s.stats.Min, s.stats.Max)
	c.series = append(c.series, s)
	return nil
}

// Series returns the series of c in display order. The slice is
// shared; callers must treat it as read-only.
func (c *Collection) Series() []*Series {
	return c.series
}

// Len returns the number of series.
func (c *Collection) Len() int {
	return len(c.series)
}

// Bounds returns the global coordinate and value intervals over all
// ever-added series.
func (c *Collection) Bounds() Bounds {
	return Bounds{Coord: c.coord, Value: c.value}
}

// VisibleBounds returns the bounds over the series whose target alpha
// is above zero. It reports false when every series is hidden.
func (c *Collection) VisibleBounds() (Bounds, bool) {
	b := Bounds{Coord: unsetInterval(), Value: unsetInterval()}
	any := false
	for _, s := range c.series {
		if s.Alpha.Target() == 0 {
			continue
		}
		any = true
		pts := s.Points()
		b.Coord.Update(pts[0].Coord, pts[len(pts)-1].Coord)
		b.Value.Update(s.stats.Min, s.stats.Max)
	}
	return b, any
}

// Sort reorders the series of c by the given summary-statistic order.
func (c *Collection) Sort(order SortOrder) {
	var less func(a, b *Series) bool
	switch order {
	case SortNone:
		return
	case SortMaxAsc:
		less = func(a, b *Series) bool { return a.stats.Max < b.stats.Max }
	case SortMaxDesc:
		less = func(a, b *Series) bool { return b.stats.Max < a.stats.Max }
	case SortMinAsc:
		less = func(a, b *Series) bool { return a.stats.Min < b.stats.Min }
	case SortMinDesc:
		less = func(a, b *Series) bool { return b.stats.Min < a.stats.Min }
	case SortMedianAsc:
		less = func(a, b *Series) bool { return a.stats.P50 < b.stats.P50 }
	case SortMedianDesc:
		less = func(a, b *Series) bool { return b.stats.P50 < a.stats.P50 }
	default:
		panic(order)
	}
	sort.SliceStable(c.series, func(i, j int) bool { return less(c.series[i], c.series[j]) })
}
