package ecs

import "sort"

// Kind names a component table ("wallet", "seller", ...). Callers that only
// need existence or iteration address stores by Kind instead of Go type.
type Kind string

// Registry tracks all component stores by kind and answers the uniform
// membership queries that don't care which component type is behind a kind.
type Registry struct {
	tables map[Kind]Table
}

func NewRegistry() *Registry {
	return &Registry{
		tables: make(map[Kind]Table, 16),
	}
}

// Register adds a component store under its kind.
func (r *Registry) Register(kind Kind, t Table) {
	r.tables[kind] = t
}

// Has reports whether the entity carries the given component kind.
// Unknown kinds are simply "not carried".
func (r *Registry) Has(id EntityID, kind Kind) bool {
	t, ok := r.tables[kind]
	return ok && t.Has(id)
}

// EntitiesWith returns all entity IDs carrying the kind, sorted for
// deterministic iteration.
func (r *Registry) EntitiesWith(kind Kind) []EntityID {
	t, ok := r.tables[kind]
	if !ok {
		return nil
	}
	ids := make([]EntityID, 0, t.Len())
	t.EachID(func(id EntityID) {
		ids = append(ids, id)
	})
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// EntitiesWithAll returns the entities carrying every listed kind, sorted.
// An empty kind list yields an empty result; there is no implicit
// "all entities" query.
func (r *Registry) EntitiesWithAll(kinds ...Kind) []EntityID {
	if len(kinds) == 0 {
		return nil
	}

	// Iterate the smallest table and probe the rest.
	smallest := -1
	for i, k := range kinds {
		t, ok := r.tables[k]
		if !ok {
			return nil
		}
		if smallest == -1 || t.Len() < r.tables[kinds[smallest]].Len() {
			smallest = i
		}
	}

	var ids []EntityID
	r.tables[kinds[smallest]].EachID(func(id EntityID) {
		for i, k := range kinds {
			if i == smallest {
				continue
			}
			if !r.tables[k].Has(id) {
				return
			}
		}
		ids = append(ids, id)
	})
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
