package tree

import (
	"errors"
	"math"
)

const nilSlot uint32 = 0

var (
	ErrRBSetArenaSentinel   = errors.New("[rbset] free the nil sentinel slot")
	ErrRBSetArenaDoubleFree = errors.New("[rbset] free a released slot")
	ErrRBSetArenaOverflow   = errors.New("[rbset] arena slots overflow")
)

// rbArena stores nodes by slot index. Slot 0 is the nil sentinel, its
// links always point to itself and it is always black.
// Released slots are recycled in LIFO order.
type rbArena[T any] struct {
	slots    []rbNode[T]
	recycled []uint32
}

func newRBArena[T any](capacity int) *rbArena[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &rbArena[T]{
		slots: make([]rbNode[T], 1, capacity+1),
	}
}

// node returns the slot address. It is invalidated by the next alloc.
func (arena *rbArena[T]) node(idx uint32) *rbNode[T] {
	return &arena.slots[idx]
}

func (arena *rbArena[T]) alloc(val T) (uint32, error) {
	var idx uint32
	if n := len(arena.recycled); n > 0 {
		idx = arena.recycled[n-1]
		arena.recycled = arena.recycled[:n-1]
	} else {
		if uint64(len(arena.slots)) > math.MaxUint32 {
			return nilSlot, ErrRBSetArenaOverflow
		}
		idx = uint32(len(arena.slots))
		arena.slots = append(arena.slots, rbNode[T]{})
	}
	arena.slots[idx] = rbNode[T]{
		val:   val,
		color: Red,
		live:  true,
	}
	return idx, nil
}

func (arena *rbArena[T]) free(idx uint32) error {
	if idx == nilSlot {
		return ErrRBSetArenaSentinel
	}
	if int(idx) >= len(arena.slots) || !arena.slots[idx].live {
		return ErrRBSetArenaDoubleFree
	}
	// Drop the payload reference.
	arena.slots[idx] = rbNode[T]{}
	arena.recycled = append(arena.recycled, idx)
	return nil
}

func (arena *rbArena[T]) live() int {
	return len(arena.slots) - 1 - len(arena.recycled)
}

func (arena *rbArena[T]) reset() {
	clear(arena.slots)
	arena.slots = arena.slots[:1]
	arena.recycled = arena.recycled[:0]
}
