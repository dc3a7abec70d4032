package surface

import "github.com/lucasb-eyer/go-colorful"

type OpKind int

const (
	OpBackingSize OpKind = iota
	OpDisplaySize
	OpTransform
	OpClearRect
	OpFillRect
	OpFillCircle
)

var opNames = [...]string{
	OpBackingSize: "backing-size",
	OpDisplaySize: "display-size",
	OpTransform:   "transform",
	OpClearRect:   "clear-rect",
	OpFillRect:    "fill-rect",
	OpFillCircle:  "fill-circle",
}

func (k OpKind) String() string {
	if k < 0 || int(k) >= len(opNames) {
		return "unknown"
	}
	return opNames[k]
}

// Op is one recorded surface call. Only the fields relevant to Kind are set;
// X/Y/W/H carry the rect, or centre and radius (in W) for circles.
type Op struct {
	Kind     OpKind
	X, Y     float64
	W, H     float64
	Scale    float64
	Color    colorful.Color
	Gradient *RadialGradient
}

// Recorder is a Surface that remembers every call.
type Recorder struct {
	Ops []Op
}

func (r *Recorder) SetBackingSize(w, h int) {
	r.Ops = append(r.Ops, Op{Kind: OpBackingSize, W: float64(w), H: float64(h)})
}

func (r *Recorder) SetDisplaySize(w, h float64) {
	r.Ops = append(r.Ops, Op{Kind: OpDisplaySize, W: w, H: h})
}

func (r *Recorder) SetTransform(scale float64) {
	r.Ops = append(r.Ops, Op{Kind: OpTransform, Scale: scale})
}

func (r *Recorder) ClearRect(x, y, w, h float64) {
	r.Ops = append(r.Ops, Op{Kind: OpClearRect, X: x, Y: y, W: w, H: h})
}

func (r *Recorder) FillRect(x, y, w, h float64, c colorful.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillRect, X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) FillCircle(cx, cy, radius float64, g *RadialGradient) {
	r.Ops = append(r.Ops, Op{Kind: OpFillCircle, X: cx, Y: cy, W: radius, Gradient: g})
}

func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }
