// Package morph animates one piece of media between its docked slot in the
// wall and its centered expanded slot, interpolating the on-screen rectangle
// so the same object appears to grow and shrink.
package morph

import (
	"time"

	"github.com/tanema/gween/ease"

	"github.com/depeter/mediawall/internal/frame"
	"github.com/depeter/mediawall/internal/geom"
	"github.com/depeter/mediawall/internal/ident"
)

// Phase is the state of a transition.
type Phase int

const (
	Docked Phase = iota
	Opening
	Expanded
	Closing
)

func (p Phase) String() string {
	switch p {
	case Docked:
		return "docked"
	case Opening:
		return "opening"
	case Expanded:
		return "expanded"
	case Closing:
		return "closing"
	}
	return "unknown"
}

// Geometry measures the two slots a transition moves between. A false result
// means the slot has not been laid out yet.
type Geometry interface {
	DockedRect() (geom.Rect, bool)
	ExpandedRect() (geom.Rect, bool)
}

// Scheduler hands out frame callbacks. *frame.Loop implements it.
type Scheduler interface {
	Request(cb frame.Callback) frame.Handle
	Cancel(h frame.Handle)
}

// Transition is the morph state machine for one identity key. At most one
// animation is in flight; flipping the open flag mid-flight restarts from the
// interpolated rectangle instead of jumping.
type Transition struct {
	Key ident.ID

	// OnOpen and OnClose fire once each time the transition settles at the
	// expanded or docked end.
	OnOpen  func()
	OnClose func()

	frames   Scheduler
	geometry Geometry
	duration func() time.Duration
	easing   ease.TweenFunc

	phase    Phase
	open     bool
	from     geom.Rect
	to       geom.Rect
	current  geom.Rect
	progress float64

	dur          time.Duration
	start        time.Time
	startPending bool

	handle    frame.Handle
	scheduled bool
	disposed  bool
}

// New returns a docked transition. duration is consulted each time an
// animation starts so externally tuned values apply to the next morph.
func New(key ident.ID, frames Scheduler, geometry Geometry, duration func() time.Duration) *Transition {
	return &Transition{
		Key:      key,
		frames:   frames,
		geometry: geometry,
		duration: duration,
		easing:   ease.OutCubic,
	}
}

func (t *Transition) Phase() Phase      { return t.phase }
func (t *Transition) Open() bool        { return t.open }
func (t *Transition) Disposed() bool    { return t.disposed }
func (t *Transition) Progress() float64 { return t.progress }
func (t *Transition) Animating() bool   { return t.phase == Opening || t.phase == Closing }
func (t *Transition) Floating() bool    { return t.phase != Docked }
func (t *Transition) Scheduled() bool   { return t.scheduled }

// SetOpen moves the transition toward the expanded (true) or docked (false)
// slot. Repeating the current value is a no-op.
func (t *Transition) SetOpen(open bool) {
	if t.disposed || open == t.open {
		return
	}
	t.open = open

	src, srcOK := t.source()
	dst, dstOK := t.target()
	dur := time.Duration(0)
	if t.duration != nil {
		dur = t.duration()
	}
	if !srcOK || !dstOK || dur <= 0 {
		t.snap(dst, dstOK)
		return
	}

	t.from = src
	t.to = dst
	t.current = src
	t.progress = 0
	t.dur = dur
	t.startPending = true
	if open {
		t.phase = Opening
	} else {
		t.phase = Closing
	}
	t.schedule()
}

// Rect returns where the single visual instance is drawn this frame.
func (t *Transition) Rect() geom.Rect {
	switch t.phase {
	case Docked:
		if r, ok := t.measureDocked(); ok {
			return r
		}
	case Expanded:
		if r, ok := t.measureExpanded(); ok {
			return r
		}
	}
	return t.current
}

// Dispose cancels any scheduled frame and detaches the callbacks. The
// transition ignores all further input.
func (t *Transition) Dispose() {
	if t.disposed {
		return
	}
	t.cancel()
	t.disposed = true
	t.OnOpen = nil
	t.OnClose = nil
}

func (t *Transition) source() (geom.Rect, bool) {
	switch t.phase {
	case Docked:
		return t.measureDocked()
	case Expanded:
		return t.measureExpanded()
	}
	return t.current, true
}

func (t *Transition) target() (geom.Rect, bool) {
	if t.open {
		return t.measureExpanded()
	}
	return t.measureDocked()
}

func (t *Transition) measureDocked() (geom.Rect, bool) {
	if t.geometry == nil {
		return geom.Rect{}, false
	}
	r, ok := t.geometry.DockedRect()
	return r, ok && !r.Empty()
}

func (t *Transition) measureExpanded() (geom.Rect, bool) {
	if t.geometry == nil {
		return geom.Rect{}, false
	}
	r, ok := t.geometry.ExpandedRect()
	return r, ok && !r.Empty()
}

func (t *Transition) schedule() {
	if t.scheduled || t.frames == nil {
		return
	}
	t.handle = t.frames.Request(t.step)
	t.scheduled = true
}

func (t *Transition) cancel() {
	if !t.scheduled {
		return
	}
	t.frames.Cancel(t.handle)
	t.scheduled = false
}

func (t *Transition) step(now time.Time) {
	t.scheduled = false
	if t.disposed || !t.Animating() {
		return
	}
	if t.startPending {
		t.start = now
		t.startPending = false
	}

	p := float64(now.Sub(t.start)) / float64(t.dur)
	if p < 0 {
		p = 0
	}
	if p >= 1 {
		t.finish()
		return
	}

	if dst, ok := t.target(); ok {
		t.to = dst
	}
	t.progress = p
	t.current = geom.Lerp(t.from, t.to, float64(t.easing(float32(p), 0, 1, 1)))
	t.schedule()
}

func (t *Transition) finish() {
	if dst, ok := t.target(); ok {
		t.to = dst
	}
	t.snap(t.to, true)
}

// snap settles at the end selected by the open flag without animating.
func (t *Transition) snap(dst geom.Rect, ok bool) {
	t.cancel()
	if ok {
		t.current = dst
	}
	t.progress = 1
	t.startPending = false
	if t.open {
		t.phase = Expanded
		if t.OnOpen != nil {
			t.OnOpen()
		}
		return
	}
	t.phase = Docked
	if t.OnClose != nil {
		t.OnClose()
	}
}
