package tree

import (
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/benz9527/xset/lib/infra"
	"github.com/benz9527/xset/xlog"
)

// References:
// https://www.geeksforgeeks.org/deletion-in-red-black-tree/
// https://github.com/minghu6/rust-minghu6/blob/master/coll_st/src/bst/rb.rs
//
// Properties:
// p1. Every node is either red or black.
// p2. The root is black.
// p3. A red node does not have a red child.
// p4. Every path from a given node to any of its descendant nil leaves
//     goes through the same number of black nodes.
// p5. The parent, left and right links agree with each other.

type rbSet[T any] struct {
	arena          *rbArena[T]
	root           uint32
	count          int64
	cmp            infra.Comparator[T]
	isDesc         bool
	isRmBorrowPred bool
	initCap        int
	statsName      string
	logger         xlog.XLogger
	stats          *rbSetStats
}

func (s *rbSet[T]) Len() int64 {
	return atomic.LoadInt64(&s.count)
}

func (s *rbSet[T]) Root() RBNode[T] {
	return s.ref(s.root)
}

func (s *rbSet[T]) Compare(i, j T) int {
	return s.cmp(i, j)
}

// fault logs the broken contract and panics.
func (s *rbSet[T]) fault(msg string) {
	err := infra.NewErrorStack(msg)
	if s.logger != nil {
		s.logger.ErrorStack(err, "rbset fault")
		_ = s.logger.Sync()
	}
	panic( /* debug assertion */ err)
}

func (s *rbSet[T]) debug(msg string, val T) {
	if s.logger == nil {
		return
	}
	s.logger.Debug(msg, zap.Any("val", val), zap.Int64("size", s.Len()))
}

// transplant puts v at the position of u under u's parent.
func (s *rbSet[T]) transplant(u, v uint32) {
	p := s.node(u).parent
	if p == nilSlot {
		s.root = v
	} else if s.node(p).left == u {
		s.node(p).left = v
	} else {
		s.node(p).right = v
	}
	if v != nilSlot {
		s.node(v).parent = p
	}
}

func (s *rbSet[T]) rotateLeft(x uint32) {
	//  |                         |
	//  X                         Y
	// / \     rotateLeft(X)     / \
	// α  Y    ============>    X   γ
	//   / \                   / \
	//  β   γ                 α   β
	y := s.node(x).right
	if y == nilSlot {
		s.fault("[rbset] left rotate without right child")
		return
	}
	xn, yn := s.node(x), s.node(y)
	xn.right = yn.left
	if yn.left != nilSlot {
		s.node(yn.left).parent = x
	}
	s.transplant(x, y)
	yn.left = x
	xn.parent = y
	s.stats.IncreaseRotationCount(Left)
}

func (s *rbSet[T]) rotateRight(x uint32) {
	//    |                      |
	//    X                      Y
	//   / \   rotateRight(X)   / \
	//  Y   γ  ============>  α   X
	// / \                        / \
	// α  β                      β   γ
	y := s.node(x).left
	if y == nilSlot {
		s.fault("[rbset] right rotate without left child")
		return
	}
	xn, yn := s.node(x), s.node(y)
	xn.left = yn.right
	if yn.right != nilSlot {
		s.node(yn.right).parent = x
	}
	s.transplant(x, y)
	yn.right = x
	xn.parent = y
	s.stats.IncreaseRotationCount(Right)
}

func (s *rbSet[T]) Insert(val T) bool {
	x, err := s.arena.alloc(val)
	if err != nil {
		s.fault(err.Error())
		return false
	}

	s.root = s.bstInsert(s.root, x)
	if x != s.root && s.node(x).parent == nilSlot {
		// Equal element is present.
		s.release(x, false)
		s.debug("rbset insert ignored, duplicate value", val)
		s.stats.IncreaseInsertCount(false)
		return false
	}
	s.fixViolation(x)
	s.stats.IncreaseInsertCount(true)
	return true
}

// bstInsert places x under the subtree root and returns the subtree root.
func (s *rbSet[T]) bstInsert(root, x uint32) uint32 {
	if root == nilSlot {
		atomic.AddInt64(&s.count, 1)
		return x
	}

	if res := s.compare(x, root); res < 0 {
		left := s.bstInsert(s.node(root).left, x)
		s.node(root).left = left
		s.node(left).parent = root
	} else if res > 0 {
		right := s.bstInsert(s.node(root).right, x)
		s.node(root).right = right
		s.node(right).parent = root
	}
	return root
}

// fixViolation repairs the double red between x and its parent.
func (s *rbSet[T]) fixViolation(x uint32) {
	for x != s.root && s.isRed(x) && s.isRed(s.node(x).parent) {
		s.stats.IncreaseFixupCount(fixupDoubleRed)
		p := s.node(x).parent
		g := s.node(p).parent
		if p == s.node(g).left {
			if u := s.node(g).right; s.isRed(u) {
				s.node(g).color = Red
				s.node(p).color = Black
				s.node(u).color = Black
				x = g
				continue
			}
			if x == s.node(p).right {
				s.rotateLeft(p)
				x = p
				p = s.node(x).parent
			}
			s.rotateRight(g)
		} else {
			if u := s.node(g).left; s.isRed(u) {
				s.node(g).color = Red
				s.node(p).color = Black
				s.node(u).color = Black
				x = g
				continue
			}
			if x == s.node(p).left {
				s.rotateRight(p)
				x = p
				p = s.node(x).parent
			}
			s.rotateLeft(g)
		}
		pn, gn := s.node(p), s.node(g)
		pn.color, gn.color = gn.color, pn.color
		x = p
	}
	s.node(s.root).color = Black
}

// search returns the equal node or the last node on the lookup path.
func (s *rbSet[T]) search(val T) uint32 {
	aux := s.root
	for aux != nilSlot {
		n := s.node(aux)
		res := s.cmp(val, n.val)
		if res == 0 {
			break
		} else if res < 0 {
			if n.left == nilSlot {
				break
			}
			aux = n.left
		} else {
			if n.right == nilSlot {
				break
			}
			aux = n.right
		}
	}
	return aux
}

func (s *rbSet[T]) Find(val T) (RBNode[T], bool) {
	if s.root == nilSlot {
		return nil, false
	}
	x := s.search(val)
	if s.cmp(s.node(x).val, val) != 0 {
		return nil, false
	}
	return s.ref(x), true
}

func (s *rbSet[T]) Contains(val T) bool {
	_, ok := s.Find(val)
	return ok
}

func (s *rbSet[T]) Min() (val T, ok bool) {
	if s.root == nilSlot {
		return val, false
	}
	return s.node(s.successor(s.root)).val, true
}

func (s *rbSet[T]) Max() (val T, ok bool) {
	if s.root == nilSlot {
		return val, false
	}
	return s.node(s.predecessor(s.root)).val, true
}

// release returns the slot to the arena.
func (s *rbSet[T]) release(x uint32, linked bool) {
	if err := s.arena.free(x); err != nil {
		s.fault(err.Error())
		return
	}
	if linked {
		atomic.AddInt64(&s.count, -1)
	}
}

type RBSetOpt[T any] func(*rbSet[T])

func WithRBSetDesc[T any]() RBSetOpt[T] {
	return func(s *rbSet[T]) {
		s.isDesc = true
	}
}

// WithRBSetRemoveBorrowPred takes the in-order predecessor instead of the
// successor to replace an erased node with two children.
func WithRBSetRemoveBorrowPred[T any]() RBSetOpt[T] {
	return func(s *rbSet[T]) {
		s.isRmBorrowPred = true
	}
}

func WithRBSetLogger[T any](logger xlog.XLogger) RBSetOpt[T] {
	return func(s *rbSet[T]) {
		s.logger = logger
	}
}

func WithRBSetStats[T any](name string) RBSetOpt[T] {
	return func(s *rbSet[T]) {
		s.statsName = name
	}
}

func WithRBSetInitCap[T any](capacity int) RBSetOpt[T] {
	return func(s *rbSet[T]) {
		if capacity > 0 {
			s.initCap = capacity
		}
	}
}

// NewRBSet panics if the comparator is nil.
func NewRBSet[T any](cmp infra.Comparator[T], opts ...RBSetOpt[T]) RBSet[T] {
	if cmp == nil {
		panic( /* debug assertion */ infra.NewErrorStack("[rbset] nil comparator"))
	}
	s := &rbSet[T]{
		count: 0,
		cmp:   cmp,
	}
	for _, o := range opts {
		if o != nil {
			o(s)
		}
	}
	if s.isDesc {
		s.cmp = infra.ReverseComparator[T](s.cmp)
	}
	s.arena = newRBArena[T](s.initCap)
	if len(s.statsName) > 0 {
		s.stats = newRBSetStats[T](s)
	}
	return s
}

func NewOrderedRBSet[T infra.OrderedKey](opts ...RBSetOpt[T]) RBSet[T] {
	return NewRBSet[T](infra.OrderedCompare[T], opts...)
}

func NewNumericRBSet[T infra.Number](opts ...RBSetOpt[T]) RBSet[T] {
	return NewRBSet[T](infra.NumericCompare[T], opts...)
}
