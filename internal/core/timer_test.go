package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedStepPacesTicks(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(30)
	fs.now = func() time.Time { return clock }

	assert.True(t, fs.ShouldStep(), "first call should tick immediately")
	assert.False(t, fs.ShouldStep())
	assert.Equal(t, fs.Interval(), fs.Remaining())

	clock = clock.Add(fs.Interval() / 2)
	assert.False(t, fs.ShouldStep())

	clock = clock.Add(fs.Interval() - fs.Interval()/2)
	assert.True(t, fs.ShouldStep())
}

func TestFixedStepTicksOnUnevenInterval(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(30)
	fs.now = func() time.Time { return clock }
	require.NotZero(t, time.Second%30, "30 TPS does not divide a second evenly")

	assert.True(t, fs.ShouldStep())
	clock = clock.Add(fs.Interval() - time.Nanosecond)
	assert.False(t, fs.ShouldStep())
	clock = clock.Add(time.Nanosecond)
	assert.True(t, fs.ShouldStep())
}

func TestFixedStepFallsBackToSixtyTPS(t *testing.T) {
	fs := NewFixedStep(0)
	assert.Equal(t, time.Second/60, fs.Interval())

	fs.SetTPS(-5)
	assert.Equal(t, time.Second/60, fs.Interval())
}
