// Package directory holds the read models for the external driver and
// entity directories. Directories resolve internal ids to display names;
// a miss is answered with a sentinel label by the caller, never an error.
package directory

import "fulfillment/internal/core/domain/model/stage"

// Driver is one entry of the external driver directory.
type Driver struct {
	ID          string
	DisplayName string
}

// Entity is one entry of the external entity directory for a farmer,
// supplier, or third party.
type Entity struct {
	ID          string
	Type        stage.EntityType
	DisplayName string
}

// DriverIndex is an id -> display-name lookup built once per report run.
type DriverIndex map[string]string

// NewDriverIndex builds a DriverIndex from directory entries.
func NewDriverIndex(drivers []Driver) DriverIndex {
	idx := make(DriverIndex, len(drivers))
	for _, d := range drivers {
		idx[d.ID] = d.DisplayName
	}
	return idx
}

// DisplayName resolves a driver id, reporting whether it is known.
func (idx DriverIndex) DisplayName(id string) (string, bool) {
	name, ok := idx[id]
	return name, ok
}

// EntityIndex is a (type, id) -> display-name lookup built per report run.
type EntityIndex map[entityKey]string

type entityKey struct {
	entityType stage.EntityType
	id         string
}

// NewEntityIndex builds an EntityIndex from directory entries.
func NewEntityIndex(entities []Entity) EntityIndex {
	idx := make(EntityIndex, len(entities))
	for _, e := range entities {
		idx[entityKey{entityType: e.Type, id: e.ID}] = e.DisplayName
	}
	return idx
}

// DisplayName resolves an entity, reporting whether it is known.
func (idx EntityIndex) DisplayName(entityType stage.EntityType, id string) (string, bool) {
	name, ok := idx[entityKey{entityType: entityType, id: id}]
	return name, ok
}
