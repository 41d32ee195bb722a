package tree

import "sync"

type syncRBSet[T any] struct {
	lock sync.RWMutex
	set  RBSet[T]
}

func (s *syncRBSet[T]) Len() int64 {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.set.Len()
}

func (s *syncRBSet[T]) Insert(val T) bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.set.Insert(val)
}

func (s *syncRBSet[T]) Erase(val T) bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.set.Erase(val)
}

func (s *syncRBSet[T]) Find(val T) (res T, ok bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	node, ok := s.set.Find(val)
	if !ok {
		return res, false
	}
	return node.Val(), true
}

func (s *syncRBSet[T]) Contains(val T) bool {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.set.Contains(val)
}

func (s *syncRBSet[T]) Min() (T, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.set.Min()
}

func (s *syncRBSet[T]) Max() (T, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.set.Max()
}

// Foreach holds the read lock, the action must not modify the set.
func (s *syncRBSet[T]) Foreach(action func(idx int64, color RBColor, val T) bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	s.set.Foreach(action)
}

func (s *syncRBSet[T]) Values() []T {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.set.Values()
}

func (s *syncRBSet[T]) Release() {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.set.Release()
}

// NewSyncRBSet guards the set by a single read write lock.
// The set must not be accessed directly afterwards.
func NewSyncRBSet[T any](set RBSet[T]) SyncRBSet[T] {
	if set == nil {
		panic( /* debug assertion */ "[rbset] nil set")
	}
	return &syncRBSet[T]{
		set: set,
	}
}
