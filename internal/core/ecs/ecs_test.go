package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type health struct{ HP int }
type tag struct{}

func TestEntityPool_CreatesDistinctIDs(t *testing.T) {
	p := NewEntityPool()

	a := p.Create()
	b := p.Create()

	assert.NotEqual(t, a, b)
	assert.NotEqual(t, None, a)
	assert.True(t, p.Alive(a))
	assert.True(t, p.Alive(b))
	assert.Equal(t, 2, p.Len())
}

func TestEntityPool_ZeroIsNeverAlive(t *testing.T) {
	p := NewEntityPool()
	p.Create()

	assert.False(t, p.Alive(None))
	assert.False(t, p.Alive(EntityID(99)))
}

func TestStore_SetGetRemove(t *testing.T) {
	s := NewStore[health]()
	id := EntityID(1)

	s.Set(id, &health{HP: 10})

	got, ok := s.Get(id)
	require.True(t, ok)
	assert.Equal(t, 10, got.HP)
	assert.True(t, s.Has(id))
	assert.Equal(t, 1, s.Len())

	s.Remove(id)
	assert.False(t, s.Has(id))
	assert.Equal(t, 0, s.Len())
}

func TestStore_CloneIsIndependent(t *testing.T) {
	s := NewStore[health]()
	s.Set(1, &health{HP: 10})

	c := s.Clone(func(h health) health { return h })
	got, ok := c.Get(1)
	require.True(t, ok)
	got.HP = 99

	orig, _ := s.Get(1)
	assert.Equal(t, 10, orig.HP)
}

func TestRegistry_Has(t *testing.T) {
	r := NewRegistry()
	hs := NewStore[health]()
	r.Register("health", hs)
	hs.Set(1, &health{})

	assert.True(t, r.Has(1, "health"))
	assert.False(t, r.Has(2, "health"))
	assert.False(t, r.Has(1, "unknown"))
}

func TestRegistry_EntitiesWith(t *testing.T) {
	r := NewRegistry()
	hs := NewStore[health]()
	r.Register("health", hs)
	hs.Set(3, &health{})
	hs.Set(1, &health{})
	hs.Set(2, &health{})

	assert.Equal(t, []EntityID{1, 2, 3}, r.EntitiesWith("health"))
	assert.Empty(t, r.EntitiesWith("unknown"))
}

func TestRegistry_EntitiesWithAll(t *testing.T) {
	r := NewRegistry()
	hs := NewStore[health]()
	ts := NewStore[tag]()
	r.Register("health", hs)
	r.Register("tag", ts)

	hs.Set(1, &health{})
	hs.Set(2, &health{})
	hs.Set(3, &health{})
	ts.Set(2, &tag{})
	ts.Set(3, &tag{})

	assert.Equal(t, []EntityID{2, 3}, r.EntitiesWithAll("health", "tag"))
}

func TestRegistry_EntitiesWithAll_EmptyKindsYieldsEmpty(t *testing.T) {
	r := NewRegistry()
	hs := NewStore[health]()
	r.Register("health", hs)
	hs.Set(1, &health{})

	assert.Empty(t, r.EntitiesWithAll())
}

func TestRegistry_EntitiesWithAll_UnknownKindYieldsEmpty(t *testing.T) {
	r := NewRegistry()
	hs := NewStore[health]()
	r.Register("health", hs)
	hs.Set(1, &health{})

	assert.Empty(t, r.EntitiesWithAll("health", "unknown"))
}

func TestEach2_VisitsIntersectionOnly(t *testing.T) {
	hs := NewStore[health]()
	ts := NewStore[tag]()
	hs.Set(1, &health{HP: 1})
	hs.Set(2, &health{HP: 2})
	ts.Set(2, &tag{})
	ts.Set(3, &tag{})

	var seen []EntityID
	Each2(hs, ts, func(id EntityID, h *health, _ *tag) {
		seen = append(seen, id)
	})

	assert.Equal(t, []EntityID{2}, seen)
}
