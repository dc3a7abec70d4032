package orb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/glow-orbs/internal/config"
)

// scripted replays fixed values in order and repeats the last one.
type scripted struct {
	values []float64
	i      int
}

func (s *scripted) Float64() float64 {
	v := s.values[len(s.values)-1]
	if s.i < len(s.values) {
		v = s.values[s.i]
	}
	s.i++
	return v
}

func TestNewPoolSize(t *testing.T) {
	for _, size := range [][2]float64{{1920, 1080}, {320, 200}, {1, 1}} {
		orbs := NewPool(NewSeeded(7), size[0], size[1])
		assert.Len(t, orbs, config.OrbCount)
		assert.Len(t, orbs, 14)
	}
}

func TestNewPoolAttributeRanges(t *testing.T) {
	const w, h = 1000.0, 600.0
	orbs := NewPool(NewSeeded(42), w, h)

	for i, o := range orbs {
		assert.True(t, o.Pos.X >= 0 && o.Pos.X < w, "orb %d x=%v", i, o.Pos.X)
		assert.True(t, o.Pos.Y >= 0 && o.Pos.Y < h, "orb %d y=%v", i, o.Pos.Y)
		assert.True(t, o.Radius >= 120 && o.Radius < 320, "orb %d radius=%v", i, o.Radius)
		assert.True(t, o.Vel.X >= -0.06 && o.Vel.X < 0.06, "orb %d vx=%v", i, o.Vel.X)
		assert.True(t, o.Vel.Y >= -0.06 && o.Vel.Y < 0.06, "orb %d vy=%v", i, o.Vel.Y)
		assert.True(t, o.Hue >= 190 && o.Hue < 330, "orb %d hue=%v", i, o.Hue)
		assert.True(t, o.Alpha >= 0.1 && o.Alpha < 0.3, "orb %d alpha=%v", i, o.Alpha)
	}
}

func TestNewPoolUsesSourceInOrder(t *testing.T) {
	src := &scripted{values: []float64{0.5, 0.25, 0.5, 0, 1, 0.5, 0.5}}

	orbs := NewPool(src, 800, 400)

	require.Len(t, orbs, config.OrbCount)
	o := orbs[0]
	assert.InDelta(t, 400, o.Pos.X, 1e-9)
	assert.InDelta(t, 100, o.Pos.Y, 1e-9)
	assert.InDelta(t, 220, o.Radius, 1e-9)
	assert.InDelta(t, -0.06, o.Vel.X, 1e-9)
	assert.InDelta(t, 0.06, o.Vel.Y, 1e-9)
	assert.InDelta(t, 260, o.Hue, 1e-9)
	assert.InDelta(t, 0.2, o.Alpha, 1e-9)
}

func TestNewPoolDeterministicForSeed(t *testing.T) {
	a := NewPool(NewSeeded(99), 1280, 720)
	b := NewPool(NewSeeded(99), 1280, 720)
	c := NewPool(NewSeeded(100), 1280, 720)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestNewPoolNilSource(t *testing.T) {
	assert.Len(t, NewPool(nil, 640, 480), config.OrbCount)
}

func TestAdvanceMovesByVelocity(t *testing.T) {
	o := Orb{Pos: Vec{500, 300}, Vel: Vec{0.05, -0.03}, Radius: 150}

	o.Advance(1000, 800)

	assert.InDelta(t, 500.05, o.Pos.X, 1e-9)
	assert.InDelta(t, 299.97, o.Pos.Y, 1e-9)
}

func TestAdvanceWrapsLeftExit(t *testing.T) {
	o := Orb{Pos: Vec{-50, 300}, Vel: Vec{-0.05, 0}, Radius: 150}

	steps := 0
	for o.Pos.X < 0 && steps < 10000 {
		o.Advance(1000, 800)
		steps++
	}

	assert.Equal(t, 1150.0, o.Pos.X)
	assert.Equal(t, 300.0, o.Pos.Y)
	// -50 to just past -150 at 0.05 per frame
	assert.InDelta(t, 2001, steps, 1)
}

func TestAdvanceWrapCases(t *testing.T) {
	cases := []struct {
		Name string
		In   Orb
		Want Vec
	}{
		{
			Name: "right exit",
			In:   Orb{Pos: Vec{1150.02, 300}, Vel: Vec{0.05, 0}, Radius: 150},
			Want: Vec{-150, 300},
		},
		{
			Name: "left exit",
			In:   Orb{Pos: Vec{-149.98, 300}, Vel: Vec{-0.05, 0}, Radius: 150},
			Want: Vec{1150, 300},
		},
		{
			Name: "bottom exit",
			In:   Orb{Pos: Vec{400, 920.01}, Vel: Vec{0, 0.05}, Radius: 120},
			Want: Vec{400, -120},
		},
		{
			Name: "top exit",
			In:   Orb{Pos: Vec{400, -119.99}, Vel: Vec{0, -0.05}, Radius: 120},
			Want: Vec{400, 920},
		},
		{
			Name: "corner exit wraps both axes",
			In:   Orb{Pos: Vec{-199.99, -199.99}, Vel: Vec{-0.05, -0.05}, Radius: 200},
			Want: Vec{1200, 1000},
		},
	}

	for _, c := range cases {
		o := c.In
		o.Advance(1000, 800)
		assert.InDelta(t, c.Want.X, o.Pos.X, 1e-6, c.Name)
		assert.InDelta(t, c.Want.Y, o.Pos.Y, 1e-6, c.Name)
	}
}

func TestAdvanceWrapsOncePerCrossing(t *testing.T) {
	o := Orb{Pos: Vec{-149.98, 300}, Vel: Vec{-0.05, 0}, Radius: 150}

	o.Advance(1000, 800)
	require.InDelta(t, 1150, o.Pos.X, 1e-9)

	for i := 0; i < 100; i++ {
		o.Advance(1000, 800)
		assert.True(t, o.Pos.X > 1000 && o.Pos.X <= 1150, "step %d x=%v", i, o.Pos.X)
	}
}

func TestAdvanceKeepsFixedAttributes(t *testing.T) {
	orbs := NewPool(NewSeeded(3), 640, 480)
	before := make([]Orb, len(orbs))
	copy(before, orbs)

	for step := 0; step < 50000; step++ {
		for i := range orbs {
			orbs[i].Advance(640, 480)
		}
	}

	for i := range orbs {
		assert.Equal(t, before[i].Radius, orbs[i].Radius)
		assert.Equal(t, before[i].Vel, orbs[i].Vel)
		assert.Equal(t, before[i].Hue, orbs[i].Hue)
		assert.Equal(t, before[i].Alpha, orbs[i].Alpha)
		assert.True(t, orbs[i].Pos.X >= -orbs[i].Radius-0.06 && orbs[i].Pos.X <= 640+orbs[i].Radius+0.06)
		assert.True(t, orbs[i].Pos.Y >= -orbs[i].Radius-0.06 && orbs[i].Pos.Y <= 480+orbs[i].Radius+0.06)
	}
}
