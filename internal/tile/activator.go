package tile

import (
	"github.com/depeter/mediawall/internal/ident"
	"github.com/depeter/mediawall/internal/media"
)

// Activator decides what activating a tile does.
type Activator interface {
	Activate(id ident.ID)
}

// Navigator opens a target outside the wall, such as a case page.
type Navigator interface {
	Navigate(target string)
}

// ExpandInPlace opens the tile in the wall's overlay.
type ExpandInPlace struct {
	Coord *media.Coordinator
}

func (e ExpandInPlace) Activate(id ident.ID) {
	e.Coord.SetExpanded(id)
}

// Navigate leaves the wall for Target. An empty target does nothing.
type Navigate struct {
	Nav    Navigator
	Target string
}

func (n Navigate) Activate(ident.ID) {
	if n.Target == "" || n.Nav == nil {
		return
	}
	n.Nav.Navigate(n.Target)
}
