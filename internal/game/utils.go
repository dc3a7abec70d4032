package game

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/glow-orbs/internal/config"
	"github.com/iburimskiy/glow-orbs/internal/orb"
	"github.com/iburimskiy/glow-orbs/internal/surface"
)

// orbGradient builds the glow for o: a bright core, a softer band at 30% of
// the radius and a transparent rim.
func orbGradient(o orb.Orb) *surface.RadialGradient {
	g := surface.NewRadialGradient(o.Pos.X, o.Pos.Y, 0, o.Radius)
	g.AddColorStop(0, colorful.Hsl(o.Hue, config.CoreSaturation, config.CoreLightness), o.Alpha)
	g.AddColorStop(config.MidOffset, colorful.Hsl(o.Hue, config.MidSaturation, config.MidLightness), o.Alpha*config.MidAlphaScale)
	g.AddColorStop(1, config.Fade(), 0)
	return g
}
