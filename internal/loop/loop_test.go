package loop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTickWithoutFrame(t *testing.T) {
	r := NewReactor()
	assert.False(t, r.Tick())
	assert.Equal(t, uint64(0), r.Frames())
}

func TestSelfReschedulingFrameRunsOncePerTick(t *testing.T) {
	r := NewReactor()
	runs := 0
	var step func()
	step = func() {
		runs++
		r.RequestFrame(step)
	}
	r.RequestFrame(step)

	for i := 0; i < 5; i++ {
		assert.True(t, r.Tick())
	}

	assert.Equal(t, 5, runs)
	assert.Equal(t, uint64(5), r.Frames())
	assert.True(t, r.Pending())
}

func TestEventsRunBeforeFrame(t *testing.T) {
	r := NewReactor()
	var order []string
	var step func()
	step = func() {
		order = append(order, "frame")
		r.Post(func() { order = append(order, "resize") })
		r.RequestFrame(step)
	}
	r.RequestFrame(step)
	r.Post(func() { order = append(order, "start") })

	r.Tick()
	r.Tick()

	assert.Equal(t, []string{"start", "frame", "resize", "frame"}, order)
}

func TestFrameNotRequestedStops(t *testing.T) {
	r := NewReactor()
	runs := 0
	r.RequestFrame(func() { runs++ })

	assert.True(t, r.Tick())
	assert.False(t, r.Tick())
	assert.Equal(t, 1, runs)
}

func TestEventPostedByEventRunsSameTick(t *testing.T) {
	r := NewReactor()
	var order []int
	r.Post(func() {
		order = append(order, 1)
		r.Post(func() { order = append(order, 2) })
	})

	r.Tick()

	assert.Equal(t, []int{1, 2}, order)
}
