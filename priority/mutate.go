package priority

import (
	"fmt"
)

// DeleteMin removes the entry holding the smallest value. It does nothing on
// an empty queue.
func (q *Queue[K, V]) DeleteMin() {
	q.deleteExtreme("delete min", q.s.byValue.DeleteMin)
}

// DeleteMax removes the entry holding the largest value. It does nothing on
// an empty queue.
func (q *Queue[K, V]) DeleteMax() {
	q.deleteExtreme("delete max", q.s.byValue.DeleteMax)
}

func (q *Queue[K, V]) deleteExtreme(op string, take func() (handle, bool)) {
	s := q.s
	h, ok := take()
	if !ok {
		return
	}
	defer q.undoOnPanic(op, func() {
		s.byValue.ReplaceOrInsert(h)
	})
	// The handle identifies the exact counterpart, even among equal pairs.
	s.byKey.Delete(h)
	s.pool.release(h)
}

// ChangeValue replaces the value of one entry stored under key. When several
// entries share the key, the one with the smallest value is changed, the
// earliest inserted among equal values. The entry keeps its insertion order
// relative to other copies of the new pair. If no entry has the key, an error wrapping
// ErrNotFound is returned and the queue is unchanged.
func (q *Queue[K, V]) ChangeValue(key K, value V) error {
	s := q.s
	h, ok := s.find(key)
	if !ok {
		return fmt.Errorf("change value of key %v: %w", key, ErrNotFound)
	}

	e := s.pool.at(h)
	old := e.value
	inValue, inKey, changed := true, true, false
	defer q.undoOnPanic("change value", func() {
		if changed {
			if inValue {
				s.byValue.Delete(h)
			}
			if inKey {
				s.byKey.Delete(h)
			}
			inValue, inKey = false, false
			e.value = old
		}
		if !inValue {
			s.byValue.ReplaceOrInsert(h)
		}
		if !inKey {
			s.byKey.ReplaceOrInsert(h)
		}
	})

	s.byValue.Delete(h)
	inValue = false
	s.byKey.Delete(h)
	inKey = false

	e.value = value
	changed = true

	s.byValue.ReplaceOrInsert(h)
	inValue = true
	s.byKey.ReplaceOrInsert(h)
	inKey = true
	return nil
}
