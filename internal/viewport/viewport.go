// Package viewport sizes the drawing surface from the window's logical size
// and device pixel ratio.
package viewport

import "math"

// Host reports the window the surface fills.
type Host interface {
	// InnerSize is the logical (device independent) window size.
	InnerSize() (w, h float64)
	// DevicePixelRatio is physical pixels per logical pixel. Values <= 0,
	// NaN or Inf mean "unknown".
	DevicePixelRatio() float64
}

// Sizable is the part of a drawing surface the sizer configures.
type Sizable interface {
	SetBackingSize(w, h int)
	SetDisplaySize(w, h float64)
	SetTransform(scale float64)
}

type State struct {
	Width  float64
	Height float64
	Ratio  float64
}

// Backing returns the pixel size of the drawing target for s.
func (s State) Backing() (int, int) {
	return BackingSize(s.Width, s.Height, s.Ratio)
}

// Ratio returns r, or 1 when r is not a usable scale.
func Ratio(r float64) float64 {
	if r <= 0 || math.IsNaN(r) || math.IsInf(r, 0) {
		return 1
	}
	return r
}

func BackingSize(w, h, ratio float64) (int, int) {
	ratio = Ratio(ratio)
	return int(w * ratio), int(h * ratio)
}

// Resize reads host, configures surface so drawing happens in logical
// pixels and records the new dimensions in st.
func Resize(host Host, surface Sizable, st *State) {
	ratio := Ratio(host.DevicePixelRatio())
	w, h := host.InnerSize()

	bw, bh := BackingSize(w, h, ratio)
	surface.SetBackingSize(bw, bh)
	surface.SetDisplaySize(w, h)
	surface.SetTransform(ratio)

	st.Width = w
	st.Height = h
	st.Ratio = ratio
}

// Fixed is a Host with constant values.
type Fixed struct {
	Width, Height float64
	Ratio         float64
}

func (f *Fixed) InnerSize() (float64, float64) { return f.Width, f.Height }

func (f *Fixed) DevicePixelRatio() float64 { return f.Ratio }
