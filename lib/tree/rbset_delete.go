package tree

func (s *rbSet[T]) Erase(val T) bool {
	if s.root == nilSlot {
		s.debug("rbset erase ignored, empty set", val)
		s.stats.IncreaseEraseCount(false)
		return false
	}
	v := s.search(val)
	if s.cmp(s.node(v).val, val) != 0 {
		s.debug("rbset erase ignored, absent value", val)
		s.stats.IncreaseEraseCount(false)
		return false
	}
	s.deleteNode(v)
	s.stats.IncreaseEraseCount(true)
	return true
}

// bstReplace finds the node to take the place of x after x is detached.
func (s *rbSet[T]) bstReplace(x uint32) uint32 {
	n := s.node(x)
	if n.left != nilSlot && n.right != nilSlot {
		if s.isRmBorrowPred {
			return s.predecessor(n.left)
		}
		return s.successor(n.right)
	}
	if n.left == nilSlot && n.right == nilSlot {
		return nilSlot
	}
	if n.left != nilSlot {
		return n.left
	}
	return n.right
}

// swapValues moves payloads only, the colors and links stay.
func (s *rbSet[T]) swapValues(u, v uint32) {
	un, vn := s.node(u), s.node(v)
	un.val, vn.val = vn.val, un.val
}

func (s *rbSet[T]) deleteNode(v uint32) {
	u := s.bstReplace(v)
	uvBlack := s.isBlack(u) && s.node(v).color == Black

	if u == nilSlot {
		// v is a leaf.
		if v == s.root {
			s.root = nilSlot
		} else {
			if uvBlack {
				s.fixDoubleBlack(v)
			}
			p := s.node(v).parent
			if s.isOnLeft(v) {
				s.node(p).left = nilSlot
			} else {
				s.node(p).right = nilSlot
			}
		}
		s.release(v, true)
		return
	}

	if vn := s.node(v); vn.left == nilSlot || vn.right == nilSlot {
		// v has exactly one child u.
		if v == s.root {
			s.root = u
			s.node(u).parent = nilSlot
			s.node(u).color = Black
			s.release(v, true)
			return
		}
		s.transplant(v, u)
		s.release(v, true)
		if uvBlack {
			s.fixDoubleBlack(u)
		} else {
			s.node(u).color = Black
		}
		return
	}

	s.swapValues(u, v)
	s.deleteNode(u)
}

// fixDoubleBlack restores the black height of the paths through x,
// one black short.
func (s *rbSet[T]) fixDoubleBlack(x uint32) {
	if x == s.root {
		return
	}
	s.stats.IncreaseFixupCount(fixupDoubleBlack)

	if s.isRed(x) {
		// Red absorbs the extra black.
		s.node(x).color = Black
		return
	}

	sib, p := s.sibling(x), s.node(x).parent
	if sib == nilSlot {
		// Push the double black up.
		s.fixDoubleBlack(p)
		return
	}

	if s.isRed(sib) {
		s.node(p).color = Red
		s.node(sib).color = Black
		if s.isOnLeft(x) {
			s.rotateLeft(p)
		} else {
			s.rotateRight(p)
		}
		s.fixDoubleBlack(x)
		return
	}

	if !s.hasRedChild(sib) {
		s.node(sib).color = Red
		s.fixDoubleBlack(p)
		return
	}

	// The far nephew goes first, the near one only if it is the sole red child.
	sn := s.node(sib)
	if s.isOnLeft(sib) {
		if s.isRed(sn.left) {
			// left left
			s.node(sn.left).color = Black
			sn.color = s.node(p).color
			s.rotateRight(p)
		} else {
			// left right
			s.node(sn.right).color = s.node(p).color
			s.rotateLeft(sib)
			s.rotateRight(p)
		}
	} else {
		if s.isRed(sn.right) {
			// right right
			s.node(sn.right).color = Black
			sn.color = s.node(p).color
			s.rotateLeft(p)
		} else {
			// right left
			s.node(sn.left).color = s.node(p).color
			s.rotateRight(sib)
			s.rotateLeft(p)
		}
	}
	s.node(p).color = Black
}
