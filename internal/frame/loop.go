package frame

import "time"

// Callback receives the timestamp of the frame it runs in.
type Callback func(now time.Time)

// Handle identifies a requested frame callback.
type Handle uint64

// Loop schedules one-shot per-frame callbacks, in the manner of
// requestAnimationFrame. The game loop calls Tick once per update; callbacks
// requested while a tick is running are deferred to the next tick.
type Loop struct {
	next    Handle
	pending map[Handle]Callback
	order   []Handle
}

func NewLoop() *Loop {
	return &Loop{pending: make(map[Handle]Callback)}
}

// Request schedules cb for the next tick.
func (l *Loop) Request(cb Callback) Handle {
	l.next++
	h := l.next
	l.pending[h] = cb
	l.order = append(l.order, h)
	return h
}

// Cancel drops a scheduled callback. Unknown or already-run handles are ignored.
func (l *Loop) Cancel(h Handle) {
	delete(l.pending, h)
}

// Tick runs every callback scheduled before this call, in request order.
func (l *Loop) Tick(now time.Time) {
	batch := l.order
	l.order = nil
	for _, h := range batch {
		cb, ok := l.pending[h]
		if !ok {
			continue // cancelled
		}
		delete(l.pending, h)
		cb(now)
	}
}

// Pending returns the number of callbacks waiting for a tick.
func (l *Loop) Pending() int {
	return len(l.pending)
}
