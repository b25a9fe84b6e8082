package linechart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rampCollection has two interleaved linear series spanning coordinates
// [0, 10] and values [0, 100].
func rampCollection(t *testing.T) *Collection {
	t.Helper()
	coll := NewCollection(Number, Number)
	a, err := NewSeries("a", []Point{{0, 0}, {2, 20}, {4, 40}, {6, 60}, {8, 80}, {10, 100}})
	require.NoError(t, err)
	require.NoError(t, coll.Add(a))
	b, err := NewSeries("b", []Point{{1, 10}, {3, 30}, {5, 50}, {7, 70}, {9, 90}})
	require.NoError(t, err)
	require.NoError(t, coll.Add(b))
	return coll
}

func rampCamera(t *testing.T) (*Camera, *Collection) {
	t.Helper()
	coll := rampCollection(t)
	scale, err := NewScale(Linear, coll.Bounds())
	require.NoError(t, err)
	return NewCamera(scale, coll), coll
}

func TestCameraStartsFittedAndSettled(t *testing.T) {
	cam, _ := rampCamera(t)

	cam.Resolve(0)
	assert.False(t, cam.Dirty())
	s := cam.Scale(0)
	assert.Equal(t, 0.0, s.CoordMin())
	assert.Equal(t, 10.0, s.CoordMax())
	assert.Equal(t, 0.0, s.ValueMin())
	assert.Equal(t, 100.0, s.ValueMax())
}

func TestCameraScaleRequiresResolve(t *testing.T) {
	cam, _ := rampCamera(t)

	assert.Panics(t, func() { cam.Scale(0) })
	cam.Resolve(0)
	assert.NotPanics(t, func() { cam.Scale(0) })
	assert.Panics(t, func() { cam.Scale(1) })
}

func TestCameraZoomTo(t *testing.T) {
	cam, coll := rampCamera(t)
	cam.Resolve(0)

	ok := cam.ZoomTo(coll, 2, 6, 0)
	require.True(t, ok)
	assert.Panics(t, func() { cam.Scale(0) }, "retargeting invalidates the resolved frame")

	// At the retarget instant the window has not moved yet.
	cam.Resolve(0)
	assert.True(t, cam.Dirty())
	assert.Equal(t, 0.0, cam.Scale(0).CoordMin())
	assert.Equal(t, 10.0, cam.Scale(0).CoordMax())

	// Mid-flight the window is strictly between start and target.
	cam.Resolve(100000)
	assert.True(t, cam.Dirty())
	assert.Greater(t, cam.Scale(100000).CoordMin(), 0.0)
	assert.Less(t, cam.Scale(100000).CoordMin(), 2.0)

	// Once both phases elapse the window is the zoom target and the
	// value axis is refitted to the points inside it.
	cam.Resolve(200000)
	assert.False(t, cam.Dirty())
	s := cam.Scale(200000)
	assert.InDelta(t, 2.0, s.CoordMin(), 1e-9)
	assert.InDelta(t, 6.0, s.CoordMax(), 1e-9)
	assert.InDelta(t, 20.0, s.ValueMin(), 1e-9)
	assert.InDelta(t, 60.0, s.ValueMax(), 1e-9)
}

func TestCameraZoomToDegenerate(t *testing.T) {
	cam, coll := rampCamera(t)
	require.True(t, cam.ZoomToSnap(coll, 2, 6))

	// No series has two points inside the window: the zoom is
	// refused and the previous target stays.
	assert.False(t, cam.ZoomTo(coll, 4.1, 4.9, 0))
	assert.False(t, cam.ZoomTo(coll, 3.9, 4.1, 0))
	cam.Resolve(0)
	assert.InDelta(t, 2.0, cam.Scale(0).CoordMin(), 1e-9)
	assert.InDelta(t, 6.0, cam.Scale(0).CoordMax(), 1e-9)
}

func TestCameraZoomToInvertedPanics(t *testing.T) {
	cam, coll := rampCamera(t)
	assert.Panics(t, func() { cam.ZoomTo(coll, 5, 5, 0) })
	assert.Panics(t, func() { cam.ZoomTo(coll, 6, 2, 0) })
}

func TestCameraMoveTo(t *testing.T) {
	cam, coll := rampCamera(t)
	require.True(t, cam.ZoomToSnap(coll, 2, 6))

	// Panning keeps the coordinate span and refits the values.
	cam.MoveToSnap(coll, 7)
	cam.Resolve(0)
	s := cam.Scale(0)
	assert.InDelta(t, 5.0, s.CoordMin(), 1e-9)
	assert.InDelta(t, 9.0, s.CoordMax(), 1e-9)
	assert.InDelta(t, 50.0, s.ValueMin(), 1e-9)
	assert.InDelta(t, 90.0, s.ValueMax(), 1e-9)

	// Panning beyond the data keeps the last value window instead of
	// collapsing it.
	cam.MoveToSnap(coll, 100)
	cam.Resolve(1)
	s = cam.Scale(1)
	assert.InDelta(t, 98.0, s.CoordMin(), 1e-9)
	assert.InDelta(t, 102.0, s.CoordMax(), 1e-9)
	assert.InDelta(t, 50.0, s.ValueMin(), 1e-9)
	assert.InDelta(t, 90.0, s.ValueMax(), 1e-9)
}

func TestCameraHiddenSeriesIgnored(t *testing.T) {
	coll := rampCollection(t)
	coll.Series()[0].Alpha.Snap(0)
	scale, err := NewScale(Linear, coll.Bounds())
	require.NoError(t, err)
	cam := NewCamera(scale, coll)

	cam.Resolve(0)
	s := cam.Scale(0)
	assert.Equal(t, 1.0, s.CoordMin())
	assert.Equal(t, 9.0, s.CoordMax())
	assert.Equal(t, 10.0, s.ValueMin())
	assert.Equal(t, 90.0, s.ValueMax())

	// Zoom only sees the remaining series.
	require.True(t, cam.ZoomToSnap(coll, 2, 6))
	cam.Resolve(1)
	s = cam.Scale(1)
	assert.InDelta(t, 30.0, s.ValueMin(), 1e-9)
	assert.InDelta(t, 50.0, s.ValueMax(), 1e-9)
}

func TestCameraTicks(t *testing.T) {
	cam, _ := rampCamera(t)
	cam.Resolve(0)

	ticks := cam.CoordTicks(4, 0)
	require.Len(t, ticks, 3)
	assert.InDelta(t, 2.5, ticks[0].Value, 1e-9)
	assert.InDelta(t, 5.0, ticks[1].Value, 1e-9)
	assert.InDelta(t, 7.5, ticks[2].Value, 1e-9)

	vticks := cam.ValueTicks(4, 0)
	require.Len(t, vticks, 3)
	assert.InDelta(t, 25.0, vticks[0].Value, 1e-9)
	assert.InDelta(t, 50.0, vticks[1].Value, 1e-9)
	assert.InDelta(t, 75.0, vticks[2].Value, 1e-9)
}

func TestCameraTicker(t *testing.T) {
	cam, _ := rampCamera(t)
	cam.Resolve(0)

	ct := CameraTicker{
		Camera:   cam,
		Axis:     CoordAxis,
		MaxTicks: 4,
		Now:      0,
		Format:   NewFormatter(Number, true),
	}
	ticks := ct.Ticks(0, 10)
	require.Len(t, ticks, 3)

	// Only fully settled grid lines get labels; fading ones render
	// as minor ticks.
	labels := map[float64]string{}
	for _, tk := range ticks {
		labels[tk.Value] = tk.Label
	}
	assert.Equal(t, "5.00", labels[5.0])
	assert.Equal(t, "", labels[2.5])
	assert.Equal(t, "", labels[7.5])
}
