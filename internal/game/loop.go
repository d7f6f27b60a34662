package game

// Scheduler delivers one frame callback per request, with a timestamp in
// milliseconds. It is the only timing primitive the driver needs.
type Scheduler interface {
	RequestFrame(fn func(now float64))
}

// Driver chains frames: each frame steps the session, renders, and asks for
// the next frame only while there is something to animate.
type Driver struct {
	Session  *Session
	Interval float64 // ms per nominal frame

	sched   Scheduler
	input   func() Input
	render  func(*Session)
	last    float64
	pending bool
}

// NewDriver wires a driver to the session's state changes. Every entry into
// play resets the frame clock and restarts the chain.
func NewDriver(s *Session, sched Scheduler, input func() Input, render func(*Session)) *Driver {
	d := &Driver{
		Session:  s,
		Interval: TargetInterval,
		sched:    sched,
		input:    input,
		render:   render,
		last:     -1,
	}
	s.Events.Subscribe(EventStateChanged, func(e Event) {
		if e.State == StatePlaying {
			d.last = -1
			d.Kick()
		}
	})
	return d
}

// Kick requests a frame unless one is already outstanding.
func (d *Driver) Kick() {
	if d.pending {
		return
	}
	d.pending = true
	d.sched.RequestFrame(d.frame)
}

func (d *Driver) wantsFrame() bool {
	s := d.Session
	return s.State == StatePlaying || s.Effects.Len() > 0 || s.Shake.Active()
}

func (d *Driver) frame(now float64) {
	d.pending = false
	dt := FrameScale(now, d.last, d.Interval)
	d.last = now
	var in Input
	if d.input != nil {
		in = d.input()
	}
	d.Session.Step(dt, in)
	if d.render != nil {
		d.render(d.Session)
	}
	if d.wantsFrame() {
		d.Kick()
	} else {
		d.last = -1
	}
}

// FrameQueue is a one-slot Scheduler for loops that already tick on their
// own (a window loop, a ticker, paint events): they call Run once per tick.
type FrameQueue struct {
	next func(now float64)
}

func (q *FrameQueue) RequestFrame(fn func(now float64)) {
	q.next = fn
}

// Run invokes the pending callback, if any, and reports whether one ran.
func (q *FrameQueue) Run(now float64) bool {
	fn := q.next
	if fn == nil {
		return false
	}
	q.next = nil
	fn(now)
	return true
}

func (q *FrameQueue) Pending() bool {
	return q.next != nil
}
