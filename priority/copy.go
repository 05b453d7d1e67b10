package priority

import "go.uber.org/zap"

// Clone returns an independent deep copy of q.
func (q *Queue[K, V]) Clone() *Queue[K, V] {
	c := &Queue[K, V]{
		s:    q.s.clone(),
		opts: q.opts,
	}
	q.opts.logger.Debug("cloned queue", zap.Int("size", c.Len()))
	return c
}

// CopyFrom replaces the contents of q with a deep copy of other. The copy is
// built before q is touched. Copying a queue onto itself does nothing.
func (q *Queue[K, V]) CopyFrom(other *Queue[K, V]) {
	if q == other {
		return
	}
	q.s = other.s.clone()
	q.opts.logger.Debug("copied queue", zap.Int("size", q.Len()))
}

// Move returns a queue holding the entries of q and leaves q empty. No
// entries are copied.
func (q *Queue[K, V]) Move() *Queue[K, V] {
	m := &Queue[K, V]{
		s:    q.s,
		opts: q.opts,
	}
	q.s = q.s.empty()
	return m
}

// MoveFrom discards the contents of q, takes over the entries of other and
// leaves other empty. Moving a queue onto itself does nothing.
func (q *Queue[K, V]) MoveFrom(other *Queue[K, V]) {
	if q == other {
		return
	}
	s := other.s
	other.s = s.empty()
	q.s = s
}

// Swap exchanges the contents of q and other.
func (q *Queue[K, V]) Swap(other *Queue[K, V]) {
	if q == other {
		return
	}
	q.s, other.s = other.s, q.s
}
