package config

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

const (
	WindowWidth  = 1280
	WindowHeight = 720
	WindowTitle  = "Glow Orbs"

	// Orb pool
	OrbCount = 14

	// Orb attributes are drawn as min + u*span, u uniform in [0, 1)
	RadiusMin      = 120.0
	RadiusSpan     = 200.0
	VelocitySpread = 0.12 // (u-0.5)*spread, px per frame
	HueMin         = 190.0
	HueSpan        = 140.0
	AlphaMin       = 0.1
	AlphaSpan      = 0.2

	// Background fill
	BackgroundHex = "#020617"

	// Gradient stops
	CoreSaturation = 0.95
	CoreLightness  = 0.70
	MidOffset      = 0.3
	MidSaturation  = 0.85
	MidLightness   = 0.60
	MidAlphaScale  = 0.7

	// Transparent end stop keeps a dark base so the fade doesn't drift in hue
	FadeR = 15
	FadeG = 23
	FadeB = 42

	// Segments per ring when a gradient is turned into a mesh
	GradientSegments = 64

	DefaultSnapshotFrames = 600
)

// Background returns the opaque background colour.
func Background() colorful.Color {
	c, err := colorful.Hex(BackgroundHex)
	if err != nil {
		panic(err)
	}
	return c
}

// Fade returns the RGB base of the transparent end stop.
func Fade() colorful.Color {
	return colorful.Color{R: FadeR / 255.0, G: FadeG / 255.0, B: FadeB / 255.0}
}

// Options are the command line settings. None of them alter the effect itself.
type Options struct {
	Seed       int64
	Seeded     bool
	Fullscreen bool
	Width      int
	Height     int
	Ratio      float64
	Snapshot   string
	Frames     int
	Debug      bool
}

func DefaultOptions() Options {
	return Options{
		Width:  WindowWidth,
		Height: WindowHeight,
		Ratio:  1,
		Frames: DefaultSnapshotFrames,
	}
}

func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return errors.Errorf("invalid size %dx%d", o.Width, o.Height)
	}
	if o.Ratio <= 0 {
		return errors.Errorf("invalid device pixel ratio %v", o.Ratio)
	}
	if o.Snapshot != "" && o.Frames <= 0 {
		return errors.Errorf("snapshot needs a positive frame count, got %d", o.Frames)
	}
	return nil
}
