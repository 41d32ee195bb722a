package tree

import "sync/atomic"

// Foreach is the inorder traversal.
func (s *rbSet[T]) Foreach(action func(idx int64, color RBColor, val T) bool) {
	size := atomic.LoadInt64(&s.count)
	aux := s.root
	if size <= 0 || aux == nilSlot || action == nil {
		return
	}

	stack := make([]uint32, 0, size>>1)
	defer func() {
		clear(stack)
	}()

	for ; aux != nilSlot; aux = s.node(aux).left {
		stack = append(stack, aux)
	}

	idx := int64(0)
	for size = int64(len(stack)); size > 0; size = int64(len(stack)) {
		aux = stack[size-1]
		if n := s.node(aux); !action(idx, n.color, n.val) {
			return
		}
		idx++
		stack = stack[:size-1]
		for aux = s.node(aux).right; aux != nilSlot; aux = s.node(aux).left {
			stack = append(stack, aux)
		}
	}
}

// All is the restartable inorder sequence.
func (s *rbSet[T]) All() func(yield func(T) bool) {
	return func(yield func(T) bool) {
		s.Foreach(func(_ int64, _ RBColor, val T) bool {
			return yield(val)
		})
	}
}

func (s *rbSet[T]) Values() []T {
	values := make([]T, 0, s.Len())
	s.Foreach(func(_ int64, _ RBColor, val T) bool {
		values = append(values, val)
		return true
	})
	return values
}

// Levels is the BFS traversal, depth of the root is 0.
func (s *rbSet[T]) Levels(action func(depth int, color RBColor, val T) bool) {
	if s.root == nilSlot || action == nil {
		return
	}

	queue := make([]uint32, 0, 64)
	queue = append(queue, s.root)
	for depth := 0; len(queue) > 0; depth++ {
		next := make([]uint32, 0, len(queue)<<1)
		for _, aux := range queue {
			n := s.node(aux)
			if !action(depth, n.color, n.val) {
				return
			}
			if n.left != nilSlot {
				next = append(next, n.left)
			}
			if n.right != nilSlot {
				next = append(next, n.right)
			}
		}
		queue = next
	}
}

// Release drops all elements, the set is reusable.
func (s *rbSet[T]) Release() {
	s.root = nilSlot
	s.arena.reset()
	atomic.StoreInt64(&s.count, 0)
}
