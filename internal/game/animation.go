package game

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/glow-orbs/internal/config"
	"github.com/iburimskiy/glow-orbs/internal/log"
	"github.com/iburimskiy/glow-orbs/internal/loop"
	"github.com/iburimskiy/glow-orbs/internal/orb"
	"github.com/iburimskiy/glow-orbs/internal/surface"
	"github.com/iburimskiy/glow-orbs/internal/viewport"
)

// State is everything the animation mutates between frames.
type State struct {
	Viewport viewport.State
	Orbs     []orb.Orb
}

// Animation owns the state and paints one frame per scheduler callback.
type Animation struct {
	state State

	host    viewport.Host
	surface surface.Surface
	sched   loop.Scheduler
	rand    orb.Source
	log     *log.Logger

	background colorful.Color
	step       func()
	running    bool
}

// NewAnimation wires an animation. A nil surface leaves it inert; a nil
// source falls back to a time-seeded one.
func NewAnimation(host viewport.Host, surf surface.Surface, sched loop.Scheduler, src orb.Source, logger *log.Logger) *Animation {
	if src == nil {
		src = orb.NewSeeded(timeSeed())
	}
	if logger == nil {
		logger = log.Default()
	}
	a := &Animation{
		host:       host,
		surface:    surf,
		sched:      sched,
		rand:       src,
		log:        logger,
		background: config.Background(),
	}
	a.step = a.Step
	return a
}

func (a *Animation) State() *State { return &a.state }

func (a *Animation) Running() bool { return a.running }

// Start sizes the surface, fills the pool and requests the first frame.
// Without a surface it does nothing.
func (a *Animation) Start() {
	if a.surface == nil {
		a.log.Debug("animation", "no drawing surface, staying idle", nil)
		return
	}
	if a.running {
		return
	}
	a.running = true
	a.resize()
	a.initOrbs()
	a.log.Debug("animation", "started", nil)
	a.sched.RequestFrame(a.step)
}

// HandleResize re-reads the window and replaces every orb.
func (a *Animation) HandleResize() {
	if !a.running {
		return
	}
	a.resize()
	a.initOrbs()
}

func (a *Animation) resize() {
	viewport.Resize(a.host, a.surface, &a.state.Viewport)
	bw, bh := a.state.Viewport.Backing()
	a.log.Debug("viewport", "resized", log.Context{
		"width":   a.state.Viewport.Width,
		"height":  a.state.Viewport.Height,
		"ratio":   a.state.Viewport.Ratio,
		"backing": []int{bw, bh},
	})
}

func (a *Animation) initOrbs() {
	vp := a.state.Viewport
	a.state.Orbs = orb.NewPool(a.rand, vp.Width, vp.Height)
	a.log.Debug("orbs", "pool initialized", log.Context{"count": len(a.state.Orbs)})
}

// Step draws one frame and requests the next one.
func (a *Animation) Step() {
	w, h := a.state.Viewport.Width, a.state.Viewport.Height

	a.surface.ClearRect(0, 0, w, h)
	a.surface.FillRect(0, 0, w, h, a.background)

	for i := range a.state.Orbs {
		o := &a.state.Orbs[i]
		o.Advance(w, h)
		a.surface.FillCircle(o.Pos.X, o.Pos.Y, o.Radius, orbGradient(*o))
	}

	a.sched.RequestFrame(a.step)
}
