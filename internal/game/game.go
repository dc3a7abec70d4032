package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/glow-orbs/internal/log"
	"github.com/iburimskiy/glow-orbs/internal/loop"
	"github.com/iburimskiy/glow-orbs/internal/orb"
	"github.com/iburimskiy/glow-orbs/internal/surface"
	"github.com/iburimskiy/glow-orbs/internal/viewport"
)

// windowHost reports the size ebiten last passed to Layout.
type windowHost struct {
	width, height float64
	ratio         float64
}

func (h *windowHost) InnerSize() (float64, float64) { return h.width, h.height }

func (h *windowHost) DevicePixelRatio() float64 { return h.ratio }

var _ ebiten.Game = (*Game)(nil)

// Game adapts an Animation to ebiten. ebiten's Draw is the display refresh;
// a change seen in Layout is the resize notification.
type Game struct {
	anim    *Animation
	reactor *loop.Reactor
	canvas  *surface.Canvas
	host    *windowHost
	log     *log.Logger
	started bool
}

func NewGame(src orb.Source, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.Default()
	}
	g := &Game{
		reactor: loop.NewReactor(),
		canvas:  surface.NewCanvas(),
		host:    &windowHost{ratio: 1},
		log:     logger,
	}
	g.anim = NewAnimation(g.host, g.canvas, g.reactor, src, logger)
	return g
}

func (g *Game) Animation() *Animation { return g.anim }

// Update has nothing to do: the orbs ignore input and move once per drawn
// frame.
func (g *Game) Update() error {
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.Bind(screen)
	g.reactor.Tick()
	g.canvas.Bind(nil)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	ratio := 1.0
	if m := ebiten.Monitor(); m != nil {
		ratio = m.DeviceScaleFactor()
	}
	return g.layout(float64(outsideWidth), float64(outsideHeight), ratio)
}

func (g *Game) layout(w, h, ratio float64) (int, int) {
	ratio = viewport.Ratio(ratio)
	changed := w != g.host.width || h != g.host.height || ratio != g.host.ratio
	g.host.width, g.host.height, g.host.ratio = w, h, ratio

	switch {
	case !g.started:
		g.started = true
		g.reactor.Post(g.anim.Start)
	case changed:
		g.log.Debug("window", "resize notification", log.Context{"width": w, "height": h, "ratio": ratio})
		g.reactor.Post(g.anim.HandleResize)
	}

	bw, bh := viewport.BackingSize(w, h, ratio)
	return max(bw, 1), max(bh, 1)
}

func timeSeed() int64 {
	return time.Now().UnixNano()
}
