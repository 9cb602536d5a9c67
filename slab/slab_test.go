package slab_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/winstonewert/aminograph/slab"
)

type handle int

func TestInsertGetRemove(t *testing.T) {
	s := slab.New[handle, string]()
	h1 := s.Insert("a")
	h2 := s.Insert("b")

	v, ok := s.Get(h1)
	require.True(t, ok)
	assert.Equal(t, "a", v)

	_, ok = s.Remove(h1)
	assert.True(t, ok)
	_, ok = s.Get(h1)
	assert.False(t, ok)

	v, ok = s.Get(h2)
	require.True(t, ok)
	assert.Equal(t, "b", v)
}

func TestInsert_ReusesFreedSlot(t *testing.T) {
	s := slab.New[handle, string]()
	h1 := s.Insert("a")
	_, _ = s.Remove(h1)
	h2 := s.Insert("b")
	assert.Equal(t, h1, h2)
}

func TestLen_ReflectsLiveEntriesOnly(t *testing.T) {
	s := slab.New[handle, int]()
	a := s.Insert(1)
	_ = s.Insert(2)
	assert.Equal(t, 2, s.Len())
	_, _ = s.Remove(a)
	assert.Equal(t, 1, s.Len())
}

func TestClone_IsIndependent(t *testing.T) {
	s := slab.New[handle, int]()
	h := s.Insert(1)
	clone := s.Clone()
	clone.Set(h, 99)

	v, _ := s.Get(h)
	assert.Equal(t, 1, v)
	v, _ = clone.Get(h)
	assert.Equal(t, 99, v)
}

func TestSet_AddContainsRemove(t *testing.T) {
	s := slab.NewSet[handle]()
	s.Add(handle(3))
	assert.True(t, s.Contains(handle(3)))
	s.Remove(handle(3))
	assert.False(t, s.Contains(handle(3)))
}

func TestMap_GetOrInsertZero(t *testing.T) {
	m := slab.NewMap[handle, int]()
	got := m.GetOrInsertZero(handle(5))
	assert.Equal(t, 0, got)
	m.Put(handle(5), 42)
	got, ok := m.Get(handle(5))
	require.True(t, ok)
	assert.Equal(t, 42, got)
}
