package ecs

// EntityID is an opaque handle for a world entity. An entity has no inherent
// type; its meaning comes from which component stores contain it.
// The zero value is never allocated and means "no entity".
type EntityID uint64

// None is the absent-entity sentinel, used for nullable references such as
// "not inside any location".
const None EntityID = 0

func (id EntityID) IsZero() bool { return id == None }

// EntityPool allocates entity IDs. Entities are created once during world
// generation and never destroyed afterward, so the pool is a plain monotonic
// counter with no free list.
type EntityPool struct {
	next EntityID
}

func NewEntityPool() *EntityPool {
	return &EntityPool{}
}

func (p *EntityPool) Create() EntityID {
	p.next++
	return p.next
}

// Alive reports whether id was handed out by this pool.
func (p *EntityPool) Alive(id EntityID) bool {
	return id != None && id <= p.next
}

// Len returns the number of allocated entities.
func (p *EntityPool) Len() int {
	return int(p.next)
}

// Clone returns an independent pool with the same allocation state.
func (p *EntityPool) Clone() *EntityPool {
	return &EntityPool{next: p.next}
}
