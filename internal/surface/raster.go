package surface

import (
	"image"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

var _ Surface = (*Raster)(nil)

// Raster draws into an in-memory RGBA image. Pixels are sampled at their
// centres. Gradients are evaluated by distance from the gradient centre.
type Raster struct {
	img                *image.RGBA
	scale              float64
	displayW, displayH float64
}

func NewRaster() *Raster {
	return &Raster{
		img:   image.NewRGBA(image.Rect(0, 0, 0, 0)),
		scale: 1,
	}
}

func (r *Raster) Image() *image.RGBA { return r.img }

func (r *Raster) DisplaySize() (float64, float64) { return r.displayW, r.displayH }

// SetBackingSize reallocates the image, discarding its content.
func (r *Raster) SetBackingSize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	r.img = image.NewRGBA(image.Rect(0, 0, w, h))
}

func (r *Raster) SetDisplaySize(w, h float64) {
	r.displayW, r.displayH = w, h
}

func (r *Raster) SetTransform(scale float64) {
	r.scale = scale
}

// pixelRect returns the pixels whose centres fall inside the logical rect.
func (r *Raster) pixelRect(x, y, w, h float64) image.Rectangle {
	x0 := int(math.Ceil(x*r.scale - 0.5))
	y0 := int(math.Ceil(y*r.scale - 0.5))
	x1 := int(math.Ceil((x+w)*r.scale - 0.5))
	y1 := int(math.Ceil((y+h)*r.scale - 0.5))
	return image.Rect(x0, y0, x1, y1).Intersect(r.img.Bounds())
}

func (r *Raster) ClearRect(x, y, w, h float64) {
	rect := r.pixelRect(x, y, w, h)
	for py := rect.Min.Y; py < rect.Max.Y; py++ {
		i := r.img.PixOffset(rect.Min.X, py)
		clear(r.img.Pix[i : i+4*rect.Dx()])
	}
}

func (r *Raster) FillRect(x, y, w, h float64, c colorful.Color) {
	c = c.Clamped()
	src := Premul{R: c.R, G: c.G, B: c.B, A: 1}
	rect := r.pixelRect(x, y, w, h)
	for py := rect.Min.Y; py < rect.Max.Y; py++ {
		for px := rect.Min.X; px < rect.Max.X; px++ {
			r.blend(px, py, src)
		}
	}
}

func (r *Raster) FillCircle(cx, cy, radius float64, g *RadialGradient) {
	if radius <= 0 || g == nil {
		return
	}
	rect := r.pixelRect(cx-radius, cy-radius, 2*radius, 2*radius)
	for py := rect.Min.Y; py < rect.Max.Y; py++ {
		ly := (float64(py) + 0.5) / r.scale
		for px := rect.Min.X; px < rect.Max.X; px++ {
			lx := (float64(px) + 0.5) / r.scale
			if math.Hypot(lx-cx, ly-cy) > radius {
				continue
			}
			d := math.Hypot(lx-g.X, ly-g.Y)
			r.blend(px, py, g.ColorAt(g.OffsetAt(d)))
		}
	}
}

// blend composites src over the pixel at (px, py).
func (r *Raster) blend(px, py int, src Premul) {
	if src.A <= 0 && src.R <= 0 && src.G <= 0 && src.B <= 0 {
		return
	}
	i := r.img.PixOffset(px, py)
	p := r.img.Pix[i : i+4 : i+4]
	inv := 1 - src.A
	p[0] = to8(src.R + float64(p[0])/255*inv)
	p[1] = to8(src.G + float64(p[1])/255*inv)
	p[2] = to8(src.B + float64(p[2])/255*inv)
	p[3] = to8(src.A + float64(p[3])/255*inv)
}

func to8(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}
