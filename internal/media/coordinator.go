package media

import "github.com/depeter/mediawall/internal/ident"

// State is the interaction snapshot shared by all tiles and the overlay.
// Invariant: a non-empty Expanded always comes with an empty Hovered.
type State struct {
	Hovered  ident.ID
	Expanded ident.ID
}

// Coordinator owns the hover/expand state for one wall. It is confined to the
// UI goroutine; setters are complete updates and listeners see the new state
// before the setter returns.
type Coordinator struct {
	state     State
	listeners []*listener
}

type listener struct {
	fn     func(State)
	active bool
}

func NewCoordinator() *Coordinator {
	return &Coordinator{}
}

// Read returns the current state.
func (c *Coordinator) Read() State {
	return c.state
}

// SetHovered replaces the hovered tile. Ignored while anything is expanded.
func (c *Coordinator) SetHovered(id ident.ID) {
	if !c.state.Expanded.IsNone() {
		return
	}
	if c.state.Hovered == id {
		return
	}
	c.state.Hovered = id
	c.notify()
}

// SetExpanded replaces the expanded tile. Expanding clears hover; closing
// leaves hover empty.
func (c *Coordinator) SetExpanded(id ident.ID) {
	next := State{Hovered: c.state.Hovered, Expanded: id}
	if !id.IsNone() {
		next.Hovered = ident.None
	}
	if next == c.state {
		return
	}
	c.state = next
	c.notify()
}

// Reset returns to the empty state.
func (c *Coordinator) Reset() {
	if c.state == (State{}) {
		return
	}
	c.state = State{}
	c.notify()
}

// Subscribe registers fn to be called after every state change. The returned
// cancel func is idempotent and may be called from inside fn.
func (c *Coordinator) Subscribe(fn func(State)) (cancel func()) {
	l := &listener{fn: fn, active: true}
	c.listeners = append(c.listeners, l)
	return func() {
		if !l.active {
			return
		}
		l.active = false
		for i, other := range c.listeners {
			if other == l {
				c.listeners = append(c.listeners[:i:i], c.listeners[i+1:]...)
				break
			}
		}
	}
}

func (c *Coordinator) notify() {
	snapshot := make([]*listener, len(c.listeners))
	copy(snapshot, c.listeners)
	for _, l := range snapshot {
		if l.active {
			l.fn(c.state)
		}
	}
}
