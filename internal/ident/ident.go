package ident

import "github.com/google/uuid"

// ID is an opaque token identifying one mounted tile instance.
type ID string

// None is the absent identity.
const None ID = ""

// IsNone reports whether id is the absent identity.
func (id ID) IsNone() bool { return id == None }

// Allocator mints tile identities and tracks which of them are still mounted.
// Identities are never reused, so a remounted tile always gets a fresh one.
type Allocator struct {
	live map[ID]struct{}
}

func NewAllocator() *Allocator {
	return &Allocator{live: make(map[ID]struct{})}
}

// Mint returns a fresh identity and marks it live.
func (a *Allocator) Mint() ID {
	id := ID(uuid.NewString())
	a.live[id] = struct{}{}
	return id
}

// Release marks id as unmounted. Releasing an unknown id is a no-op.
func (a *Allocator) Release(id ID) {
	delete(a.live, id)
}

// Live reports whether id belongs to a currently mounted tile.
func (a *Allocator) Live(id ID) bool {
	if id.IsNone() {
		return false
	}
	_, ok := a.live[id]
	return ok
}

// Count returns the number of mounted identities.
func (a *Allocator) Count() int {
	return len(a.live)
}
