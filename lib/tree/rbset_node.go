package tree

type rbNode[T any] struct {
	val    T
	parent uint32
	left   uint32
	right  uint32
	color  RBColor
	live   bool
}

// Local relationship queries over slot indices.

func (s *rbSet[T]) node(x uint32) *rbNode[T] {
	return s.arena.node(x)
}

func (s *rbSet[T]) isRed(x uint32) bool {
	return x != nilSlot && s.node(x).color == Red
}

func (s *rbSet[T]) isBlack(x uint32) bool {
	return !s.isRed(x)
}

func (s *rbSet[T]) isOnLeft(x uint32) bool {
	p := s.node(x).parent
	if p == nilSlot {
		s.fault("[rbset] the root is neither on the left nor on the right")
	}
	return s.node(p).left == x
}

func (s *rbSet[T]) sibling(x uint32) uint32 {
	p := s.node(x).parent
	if p == nilSlot {
		return nilSlot
	}
	if s.isOnLeft(x) {
		return s.node(p).right
	}
	return s.node(p).left
}

func (s *rbSet[T]) hasRedChild(x uint32) bool {
	n := s.node(x)
	return s.isRed(n.left) || s.isRed(n.right)
}

func (s *rbSet[T]) direction(x uint32) RBDirection {
	if x == nilSlot {
		s.fault("[rbset] nil leaf node without direction")
	}
	if s.node(x).parent == nilSlot {
		return Root
	}
	if s.isOnLeft(x) {
		return Left
	}
	return Right
}

// successor is the leftmost node of the subtree at x.
func (s *rbSet[T]) successor(x uint32) uint32 {
	for aux := x; aux != nilSlot; aux = s.node(aux).left {
		x = aux
	}
	return x
}

// predecessor is the rightmost node of the subtree at x.
func (s *rbSet[T]) predecessor(x uint32) uint32 {
	for aux := x; aux != nilSlot; aux = s.node(aux).right {
		x = aux
	}
	return x
}

// compare orders the payloads of two slots.
func (s *rbSet[T]) compare(i, j uint32) int {
	return s.cmp(s.node(i).val, s.node(j).val)
}

var _ RBNode[int] = rbNodeRef[int]{}

type rbNodeRef[T any] struct {
	set *rbSet[T]
	idx uint32
}

func (s *rbSet[T]) ref(x uint32) RBNode[T] {
	if x == nilSlot {
		return nil
	}
	return rbNodeRef[T]{set: s, idx: x}
}

func (ref rbNodeRef[T]) Val() T {
	return ref.set.node(ref.idx).val
}

func (ref rbNodeRef[T]) Color() RBColor {
	return ref.set.node(ref.idx).color
}

func (ref rbNodeRef[T]) Left() RBNode[T] {
	return ref.set.ref(ref.set.node(ref.idx).left)
}

func (ref rbNodeRef[T]) Right() RBNode[T] {
	return ref.set.ref(ref.set.node(ref.idx).right)
}

func (ref rbNodeRef[T]) Parent() RBNode[T] {
	return ref.set.ref(ref.set.node(ref.idx).parent)
}

func (ref rbNodeRef[T]) Direction() RBDirection {
	return ref.set.direction(ref.idx)
}
