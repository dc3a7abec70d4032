package surface

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/glow-orbs/internal/config"
)

var _ Surface = (*Canvas)(nil)

// Canvas draws on an ebiten image bound once per frame. Calls made while no
// image is bound are ignored.
type Canvas struct {
	target             *ebiten.Image
	scale              float64
	backingW, backingH int
	displayW, displayH float64

	whiteSub *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
	triOp    ebiten.DrawTrianglesOptions
}

func NewCanvas() *Canvas {
	c := &Canvas{scale: 1}
	c.triOp.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	c.triOp.AntiAlias = true
	return c
}

// Bind sets the image drawn on until the next Bind. The image should be
// BackingSize() pixels large; ebiten allocates the screen from Layout.
func (c *Canvas) Bind(img *ebiten.Image) { c.target = img }

func (c *Canvas) BackingSize() (int, int) { return c.backingW, c.backingH }

func (c *Canvas) DisplaySize() (float64, float64) { return c.displayW, c.displayH }

func (c *Canvas) SetBackingSize(w, h int) { c.backingW, c.backingH = w, h }

func (c *Canvas) SetDisplaySize(w, h float64) { c.displayW, c.displayH = w, h }

func (c *Canvas) SetTransform(scale float64) { c.scale = scale }

func (c *Canvas) ClearRect(x, y, w, h float64) {
	if c.target == nil {
		return
	}
	s := c.scale
	r := image.Rect(
		int(math.Floor(x*s)), int(math.Floor(y*s)),
		int(math.Ceil((x+w)*s)), int(math.Ceil((y+h)*s)),
	).Intersect(c.target.Bounds())
	if r.Empty() {
		return
	}
	if r == c.target.Bounds() {
		c.target.Clear()
		return
	}
	c.target.SubImage(r).(*ebiten.Image).Clear()
}

func (c *Canvas) FillRect(x, y, w, h float64, clr colorful.Color) {
	if c.target == nil {
		return
	}
	s := c.scale
	vector.DrawFilledRect(c.target, float32(x*s), float32(y*s), float32(w*s), float32(h*s), clr.Clamped(), false)
}

func (c *Canvas) FillCircle(cx, cy, r float64, g *RadialGradient) {
	if c.target == nil || g == nil || r <= 0 {
		return
	}
	c.vertices, c.indices = appendGradientMesh(c.vertices[:0], c.indices[:0], cx, cy, r, g, c.scale, config.GradientSegments)
	c.target.DrawTriangles(c.vertices, c.indices, c.white(), &c.triOp)
}

func (c *Canvas) white() *ebiten.Image {
	if c.whiteSub == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		c.whiteSub = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return c.whiteSub
}

type ring struct {
	d   float64
	clr Premul
}

// gradientRings lists the distances from the circle centre where the mesh
// needs a ring of vertices: the centre, each stop inside the circle, and
// the circle edge.
func gradientRings(r float64, g *RadialGradient) []ring {
	at := func(d float64) Premul { return g.ColorAt(g.OffsetAt(d)) }
	rings := []ring{{d: 0, clr: at(0)}}
	for _, s := range g.Stops {
		d := g.R0 + s.Offset*(g.R1-g.R0)
		if d <= rings[len(rings)-1].d {
			continue
		}
		if d >= r {
			break
		}
		rings = append(rings, ring{d: d, clr: s.Premul()})
	}
	return append(rings, ring{d: r, clr: at(r)})
}

// appendGradientMesh triangulates a gradient filled circle into a fan
// around the centre plus one band of quads per further ring. Vertex colours
// are premultiplied and positions are in target pixels.
func appendGradientMesh(vs []ebiten.Vertex, is []uint16, cx, cy, r float64, g *RadialGradient, scale float64, segments int) ([]ebiten.Vertex, []uint16) {
	if segments < 3 {
		segments = 3
	}
	rings := gradientRings(r, g)

	vertex := func(x, y float64, p Premul) ebiten.Vertex {
		return ebiten.Vertex{
			DstX:   float32(x * scale),
			DstY:   float32(y * scale),
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(p.R),
			ColorG: float32(p.G),
			ColorB: float32(p.B),
			ColorA: float32(p.A),
		}
	}

	base := uint16(len(vs))
	vs = append(vs, vertex(cx, cy, rings[0].clr))
	for _, rg := range rings[1:] {
		for i := 0; i < segments; i++ {
			a := 2 * math.Pi * float64(i) / float64(segments)
			vs = append(vs, vertex(cx+math.Cos(a)*rg.d, cy+math.Sin(a)*rg.d, rg.clr))
		}
	}

	seg := uint16(segments)
	ringStart := func(k int) uint16 { return base + 1 + uint16(k-1)*seg }
	for i := uint16(0); i < seg; i++ {
		j := (i + 1) % seg
		first := ringStart(1)
		is = append(is, base, first+i, first+j)
	}
	for k := 2; k < len(rings); k++ {
		in, out := ringStart(k-1), ringStart(k)
		for i := uint16(0); i < seg; i++ {
			j := (i + 1) % seg
			is = append(is, in+i, out+i, out+j, in+i, out+j, in+j)
		}
	}
	return vs, is
}
