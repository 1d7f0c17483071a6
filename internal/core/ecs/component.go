package ecs

// Table is the kind-erased view of a component store, enough for the
// Registry to answer membership and intersection queries without knowing
// the component type.
type Table interface {
	Has(id EntityID) bool
	Len() int
	EachID(fn func(EntityID))
}

// Store is a generic typed map store for ECS components.
// No reflect, no interface{} — pure generics.
type Store[T any] struct {
	data map[EntityID]*T
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{
		data: make(map[EntityID]*T, 64),
	}
}

func (s *Store[T]) Set(id EntityID, c *T) {
	s.data[id] = c
}

func (s *Store[T]) Get(id EntityID) (*T, bool) {
	c, ok := s.data[id]
	return c, ok
}

func (s *Store[T]) Has(id EntityID) bool {
	_, ok := s.data[id]
	return ok
}

func (s *Store[T]) Remove(id EntityID) {
	delete(s.data, id)
}

func (s *Store[T]) Len() int {
	return len(s.data)
}

func (s *Store[T]) Each(fn func(EntityID, *T)) {
	for id, c := range s.data {
		fn(id, c)
	}
}

func (s *Store[T]) EachID(fn func(EntityID)) {
	for id := range s.data {
		fn(id)
	}
}

// Clone copies the store. cp produces an independent copy of one component;
// components holding slices or maps must deep-copy them there.
func (s *Store[T]) Clone(cp func(T) T) *Store[T] {
	out := &Store[T]{data: make(map[EntityID]*T, len(s.data))}
	for id, c := range s.data {
		v := cp(*c)
		out.data[id] = &v
	}
	return out
}
