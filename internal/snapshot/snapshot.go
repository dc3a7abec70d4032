// Package snapshot renders the animation without a window and saves the
// result as a PNG.
package snapshot

import (
	"image"
	"image/png"
	"os"

	"github.com/pkg/errors"

	"github.com/iburimskiy/glow-orbs/internal/game"
	"github.com/iburimskiy/glow-orbs/internal/log"
	"github.com/iburimskiy/glow-orbs/internal/loop"
	"github.com/iburimskiy/glow-orbs/internal/orb"
	"github.com/iburimskiy/glow-orbs/internal/surface"
	"github.com/iburimskiy/glow-orbs/internal/viewport"
)

// Render runs frames frames of a w x h viewport at the given device pixel
// ratio on a software surface and returns the last frame.
func Render(w, h, ratio float64, frames int, src orb.Source, logger *log.Logger) (*image.RGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, errors.Errorf("snapshot: invalid viewport %vx%v", w, h)
	}
	if frames <= 0 {
		return nil, errors.Errorf("snapshot: invalid frame count %d", frames)
	}

	raster := surface.NewRaster()
	reactor := loop.NewReactor()
	host := &viewport.Fixed{Width: w, Height: h, Ratio: ratio}
	anim := game.NewAnimation(host, raster, reactor, src, logger)

	reactor.Post(anim.Start)
	for i := 0; i < frames; i++ {
		if !reactor.Tick() {
			return nil, errors.Errorf("snapshot: animation stopped after %d frames", i)
		}
	}
	return raster.Image(), nil
}

func WritePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "closing %s", path)
		}
	}()

	if err := png.Encode(f, img); err != nil {
		return errors.Wrapf(err, "encoding %s", path)
	}
	return nil
}
