package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettledValue(t *testing.T) {
	v := NewValue(1.0)
	assert.Equal(t, 1.0, v.Target())
	assert.Equal(t, 1.0, v.At(100))
	assert.Equal(t, 1.0, v.At(1e9))

	x, animating := v.Eval(42)
	assert.Equal(t, 1.0, x)
	assert.False(t, animating)
}

func TestSetStartsAtCurrentPosition(t *testing.T) {
	v := NewValue(0.0)
	assert.Equal(t, 0.0, v.At(150))

	v.Set(1.0, 150)
	assert.Equal(t, 1.0, v.Target())
	assert.Equal(t, 0.0, v.At(150))

	_, animating := v.Eval(150)
	assert.True(t, animating)
}

func TestMotionProfile(t *testing.T) {
	// Documented closed-form profile: 300ms acceleration phase
	// followed by a 700ms constant-velocity phase.
	v := NewCustomValue(1.0, 300000, 700000)
	v.Set(0.0, 1000000)

	require.Equal(t, 0.0, v.Target())
	assert.Equal(t, 1.0, v.At(1000000))
	assert.InDelta(t, 0.9215686274509804, v.At(1200000), 1e-12)
	assert.InDelta(t, 0.8235294117647058, v.At(1300000), 1e-12)
	assert.InDelta(t, 0.5882352941176471, v.At(1500000), 1e-12)
	assert.InDelta(t, 0.3529411764705883, v.At(1700000), 1e-12)
	assert.InDelta(t, 0.11764705882352944, v.At(1900000), 1e-12)
	assert.Equal(t, 0.0, v.At(2000000))
}

func TestCompletionIsSticky(t *testing.T) {
	v := NewValue(2.0)
	v.Set(5.0, 1000)

	end := v.dt1 + v.dt2
	x, animating := v.Eval(1000 + end)
	assert.Equal(t, 5.0, x)
	assert.False(t, animating)

	x, animating = v.Eval(1000 + 10*end)
	assert.Equal(t, 5.0, x)
	assert.False(t, animating)
}

func TestRetargetContinuity(t *testing.T) {
	v := NewValue(0.0)
	v.Set(10.0, 0)

	// Retarget during the acceleration phase and during the
	// constant-velocity phase; the position must not jump at the
	// retarget instant.
	for _, at := range []float64{50000, 150000} {
		before := v.At(at)
		v.Set(-3.0, at)
		assert.InDelta(t, before, v.At(at), 1e-12, "retarget at %v", at)
	}
}

func TestRetargetReachesNewTarget(t *testing.T) {
	v := NewValue(0.0)
	v.Set(10.0, 0)
	v.Set(4.0, 120000)
	assert.Equal(t, 4.0, v.At(120000+v.dt1+v.dt2))
}

func TestSnap(t *testing.T) {
	v := NewValue(0.0)
	v.Set(10.0, 0)
	v.Snap(7.0)

	x, animating := v.Eval(1)
	assert.Equal(t, 7.0, x)
	assert.False(t, animating)
}
