package tree

import "strconv"

type RBColor uint8

const (
	Black RBColor = iota
	Red
)

func (c RBColor) String() string {
	switch c {
	case Black:
		return "Black"
	case Red:
		return "Red"
	default:
	}
	return "RBColor(" + strconv.Itoa(int(c)) + ")"
}

type RBDirection int8

const (
	Left RBDirection = -1 + iota
	Root
	Right
)

func (d RBDirection) String() string {
	switch d {
	case Left:
		return "Left"
	case Root:
		return "Root"
	case Right:
		return "Right"
	default:
	}
	return "RBDirection(" + strconv.Itoa(int(d)) + ")"
}

// RBNode is a read-only view of a set element.
// The payload of a node may move to another node while erasing,
// so a view must not be kept across an Erase.
type RBNode[T any] interface {
	Val() T
	Color() RBColor
	Left() RBNode[T]
	Right() RBNode[T]
	Parent() RBNode[T]
	Direction() RBDirection
}

// RBSet is an ordered set of unique elements.
// It is not safe for concurrent use, see NewSyncRBSet.
type RBSet[T any] interface {
	Len() int64
	Root() RBNode[T]
	// Insert returns false if an equal element is present.
	Insert(val T) bool
	// Erase returns false if no equal element is present.
	Erase(val T) bool
	Find(val T) (RBNode[T], bool)
	Contains(val T) bool
	Min() (T, bool)
	Max() (T, bool)
	Compare(i, j T) int
	Foreach(action func(idx int64, color RBColor, val T) bool)
	All() func(yield func(T) bool)
	Values() []T
	Levels(action func(depth int, color RBColor, val T) bool)
	Release()
}

// SyncRBSet is the lock guarded RBSet.
// Elements are returned by value instead of node views.
type SyncRBSet[T any] interface {
	Len() int64
	Insert(val T) bool
	Erase(val T) bool
	Find(val T) (T, bool)
	Contains(val T) bool
	Min() (T, bool)
	Max() (T, bool)
	Foreach(action func(idx int64, color RBColor, val T) bool)
	Values() []T
	Release()
}
