// Package loop runs frame callbacks and event notifications on one logical
// thread.
package loop

// Scheduler runs fn once on the next display refresh.
type Scheduler interface {
	RequestFrame(fn func())
}

// Reactor queues events and at most one frame callback. Tick drains the
// events, then runs the pending frame callback once; a frame requested from
// inside that callback waits for the next Tick. It is not safe for
// concurrent use.
type Reactor struct {
	events []func()
	frame  func()
	frames uint64
}

func NewReactor() *Reactor {
	return &Reactor{}
}

// Post queues fn to run before the next frame.
func (r *Reactor) Post(fn func()) {
	r.events = append(r.events, fn)
}

// RequestFrame replaces the pending frame callback with fn.
func (r *Reactor) RequestFrame(fn func()) {
	r.frame = fn
}

// Pending reports whether a frame callback is waiting.
func (r *Reactor) Pending() bool { return r.frame != nil }

// Frames returns how many frame callbacks have run.
func (r *Reactor) Frames() uint64 { return r.frames }

// Tick runs queued events in order, then the pending frame callback. It
// reports whether a frame ran.
func (r *Reactor) Tick() bool {
	// events posted by events run in this tick too
	for len(r.events) > 0 {
		fn := r.events[0]
		r.events[0] = nil
		r.events = r.events[1:]
		fn()
	}
	fn := r.frame
	if fn == nil {
		return false
	}
	r.frame = nil
	fn()
	r.frames++
	return true
}
