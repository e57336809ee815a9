package orchestrator

import "github.com/polaris-slo-cloud/hyperdrive-go/pkg/model"

// Directory maintains the indexed-by-name view of the fleet, scanned in a fixed
// satellite -> ground-station -> edge -> cloud order so that a node name collision across
// layers (which should never happen in practice) resolves deterministically.
type Directory struct {
	indexed *model.IndexedFleet
	fleet   *model.Fleet
}

// NewDirectory builds a node directory over fleet.
func NewDirectory(fleet *model.Fleet) *Directory {
	return &Directory{
		indexed: model.NewIndexedFleet(fleet),
		fleet:   fleet,
	}
}

// Lookup finds a node by name.
func (d *Directory) Lookup(name string) (*model.Node, bool) {
	return d.indexed.Lookup(name)
}

// Fleet returns the underlying layered fleet.
func (d *Directory) Fleet() *model.Fleet {
	return d.fleet
}

// Indexed returns the by-name index of the fleet.
func (d *Directory) Indexed() *model.IndexedFleet {
	return d.indexed
}
