// Package orb holds the drifting light sources and their per-frame motion.
package orb

import (
	"math/rand/v2"
	"time"

	"github.com/iburimskiy/glow-orbs/internal/config"
)

// Source yields uniform values in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// NewSeeded returns a deterministic source for seed.
func NewSeeded(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

type Vec struct {
	X, Y float64
}

// Orb is one glowing circle. Only Pos changes between pool initialisations.
type Orb struct {
	Pos    Vec
	Vel    Vec
	Radius float64
	Hue    float64
	Alpha  float64
}

// NewPool returns config.OrbCount orbs scattered over a w x h viewport.
// A nil src falls back to a time-seeded source.
func NewPool(src Source, w, h float64) []Orb {
	if src == nil {
		src = NewSeeded(time.Now().UnixNano())
	}
	orbs := make([]Orb, 0, config.OrbCount)
	for i := 0; i < config.OrbCount; i++ {
		orbs = append(orbs, newOrb(src, w, h))
	}
	return orbs
}

func newOrb(src Source, w, h float64) Orb {
	var o Orb
	o.Pos.X = src.Float64() * w
	o.Pos.Y = src.Float64() * h
	o.Radius = config.RadiusMin + src.Float64()*config.RadiusSpan
	o.Vel.X = (src.Float64() - 0.5) * config.VelocitySpread
	o.Vel.Y = (src.Float64() - 0.5) * config.VelocitySpread
	o.Hue = config.HueMin + src.Float64()*config.HueSpan
	o.Alpha = config.AlphaMin + src.Float64()*config.AlphaSpan
	return o
}

// Advance moves the orb one frame and teleports it to the opposite side
// once it has fully left the w x h viewport.
func (o *Orb) Advance(w, h float64) {
	o.Pos.X += o.Vel.X
	o.Pos.Y += o.Vel.Y

	if o.Pos.X-o.Radius > w {
		o.Pos.X = -o.Radius
	}
	if o.Pos.X+o.Radius < 0 {
		o.Pos.X = w + o.Radius
	}
	if o.Pos.Y-o.Radius > h {
		o.Pos.Y = -o.Radius
	}
	if o.Pos.Y+o.Radius < 0 {
		o.Pos.Y = h + o.Radius
	}
}
