package schema

import (
	"sync"

	"github.com/google/btree"
	"github.com/pingcap/errors"
)

// Less orders descriptors by table id. This is what the registry's index sorts on.
func (d *TableDescriptor) Less(than btree.Item) bool {
	return d.ID < than.(*TableDescriptor).ID
}

const registryDegree = 8

// Registry hands out table descriptors and looks them up by id. A descriptor is
// registered once; its id and storage kind never change afterwards. Reads take a
// shared lock, so any number of transactions can resolve descriptors concurrently
// while a registration is not in progress.
//
// There should only be one Registry per engine, shared between all threads.
type Registry struct {
	// mu guards tables. Lookups only need the read side.
	mu     sync.RWMutex
	tables *btree.BTree
}

// NewRegistry creates an empty descriptor registry.
func NewRegistry() *Registry {
	return &Registry{tables: btree.New(registryDegree)}
}

// Register creates the descriptor for table id, or returns the existing one if id was
// already registered with the same storage kind. Registering an id again with a
// different kind is schema corruption and fails.
func (r *Registry) Register(id uint32, kind StorageKind, collation Collation) (*TableDescriptor, error) {
	if collation != nil && kind != StorageRow {
		return nil, errors.Errorf("schema: collation set on table %d, but %s tables order by recno", id, kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if item := r.tables.Get(&TableDescriptor{ID: id}); item != nil {
		desc := item.(*TableDescriptor)
		if desc.Kind != kind {
			return nil, errors.Errorf("schema: table %d already registered as %s, cannot re-register as %s", id, desc.Kind, kind)
		}
		return desc, nil
	}

	desc := &TableDescriptor{ID: id, Kind: kind, Collation: collation}
	r.tables.ReplaceOrInsert(desc)
	return desc, nil
}

// Lookup returns the descriptor for table id, if one is registered.
func (r *Registry) Lookup(id uint32) (*TableDescriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item := r.tables.Get(&TableDescriptor{ID: id})
	if item == nil {
		return nil, false
	}
	return item.(*TableDescriptor), true
}

// Ascend calls fn for every registered descriptor in ascending id order, stopping
// early if fn returns false.
func (r *Registry) Ascend(fn func(*TableDescriptor) bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	r.tables.Ascend(func(item btree.Item) bool {
		return fn(item.(*TableDescriptor))
	})
}

// Len returns the number of registered tables.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tables.Len()
}
