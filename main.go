package main

import (
	"errors"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	pkgerrors "github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/iburimskiy/glow-orbs/internal/config"
	"github.com/iburimskiy/glow-orbs/internal/game"
	"github.com/iburimskiy/glow-orbs/internal/log"
	"github.com/iburimskiy/glow-orbs/internal/orb"
	"github.com/iburimskiy/glow-orbs/internal/snapshot"
)

func main() {
	defaults := config.DefaultOptions()

	app := cli.NewApp()
	app.Name = "glow-orbs"
	app.Usage = "drifting glow orbs background"
	app.Flags = []cli.Flag{
		cli.Int64Flag{Name: "seed", Usage: "seed for the orb pool (random if unset)"},
		cli.BoolFlag{Name: "fullscreen", Usage: "start in fullscreen"},
		cli.IntFlag{Name: "width", Value: defaults.Width, Usage: "window or snapshot width in logical pixels"},
		cli.IntFlag{Name: "height", Value: defaults.Height, Usage: "window or snapshot height in logical pixels"},
		cli.Float64Flag{Name: "ratio", Value: defaults.Ratio, Usage: "device pixel ratio for --snapshot"},
		cli.StringFlag{Name: "snapshot", Usage: "render headless and write the last frame to this PNG file"},
		cli.IntFlag{Name: "frames", Value: defaults.Frames, Usage: "frames to run before writing --snapshot"},
		cli.BoolFlag{Name: "debug", Usage: "print debug lines"},
	}
	app.Action = func(c *cli.Context) error {
		opts := config.Options{
			Seed:       c.Int64("seed"),
			Seeded:     c.IsSet("seed"),
			Fullscreen: c.Bool("fullscreen"),
			Width:      c.Int("width"),
			Height:     c.Int("height"),
			Ratio:      c.Float64("ratio"),
			Snapshot:   c.String("snapshot"),
			Frames:     c.Int("frames"),
			Debug:      c.Bool("debug"),
		}
		if err := opts.Validate(); err != nil {
			return err
		}
		log.SetDebug(opts.Debug)

		if opts.Snapshot != "" {
			return runSnapshot(opts)
		}
		return runWindow(opts)
	}

	if err := app.Run(os.Args); err != nil {
		log.Default().Fatal(err, "glow-orbs")
	}
}

func source(opts config.Options) orb.Source {
	if !opts.Seeded {
		return nil
	}
	return orb.NewSeeded(opts.Seed)
}

func runWindow(opts config.Options) error {
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(opts.Fullscreen)

	g := game.NewGame(source(opts), log.Default())
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return pkgerrors.Wrap(err, "running game")
	}
	return nil
}

func runSnapshot(opts config.Options) error {
	img, err := snapshot.Render(float64(opts.Width), float64(opts.Height), opts.Ratio, opts.Frames, source(opts), log.Default())
	if err != nil {
		return err
	}
	if err := snapshot.WritePNG(opts.Snapshot, img); err != nil {
		return err
	}
	log.Default().Info("wrote %s (%dx%d, %d frames)", opts.Snapshot, img.Bounds().Dx(), img.Bounds().Dy(), opts.Frames)
	return nil
}
