package priority

import (
	"cmp"
	"fmt"
	"iter"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
)

// Queue is an ordered multimap from keys to values. Entries are indexed both
// by (value, key) for min/max access and by (key, value) for lookups by key.
// Duplicate keys and duplicate pairs are allowed.
//
// A Queue is not safe for concurrent use. Use New or NewOrdered to create one.
type Queue[K, V any] struct {
	s    *store[K, V]
	opts options
}

// New creates an empty queue ordering keys with keyCmp and values with
// valueCmp. Both must be three-way comparisons defining a total order.
func New[K, V any](keyCmp func(a, b K) int, valueCmp func(a, b V) int, opts ...Option) *Queue[K, V] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Queue[K, V]{
		s:    newStore(keyCmp, valueCmp, o.degree),
		opts: o,
	}
}

// NewOrdered creates an empty queue using the natural order of K and V.
func NewOrdered[K, V constraints.Ordered](opts ...Option) *Queue[K, V] {
	return New(cmp.Compare[K], cmp.Compare[V], opts...)
}

// Len returns the number of entries in the queue.
func (q *Queue[K, V]) Len() int {
	return q.s.len()
}

// Empty reports whether the queue has no entries.
func (q *Queue[K, V]) Empty() bool {
	return q.s.len() == 0
}

// Insert adds the pair (key, value). Existing entries with the same key are
// kept. If the comparator panics, the queue is left as it was before the call.
func (q *Queue[K, V]) Insert(key K, value V) {
	s := q.s
	s.seq++
	h := s.pool.alloc(key, value, s.seq)
	inValue := false
	defer q.undoOnPanic("insert", func() {
		if inValue {
			s.byValue.Delete(h)
		}
		s.pool.release(h)
		s.seq--
	})
	s.byValue.ReplaceOrInsert(h)
	inValue = true
	s.byKey.ReplaceOrInsert(h)
}

// MinValue returns the smallest value in the queue.
func (q *Queue[K, V]) MinValue() (V, error) {
	e, err := q.extreme("min value", q.s.byValue.Min)
	return e.value, err
}

// MaxValue returns the largest value in the queue.
func (q *Queue[K, V]) MaxValue() (V, error) {
	e, err := q.extreme("max value", q.s.byValue.Max)
	return e.value, err
}

// MinKey returns the key of the entry holding the smallest value. Among
// equal values the smallest key wins.
func (q *Queue[K, V]) MinKey() (K, error) {
	e, err := q.extreme("min key", q.s.byValue.Min)
	return e.key, err
}

// MaxKey returns the key of the entry holding the largest value. Among
// equal values the largest key wins.
func (q *Queue[K, V]) MaxKey() (K, error) {
	e, err := q.extreme("max key", q.s.byValue.Max)
	return e.key, err
}

func (q *Queue[K, V]) extreme(op string, pick func() (handle, bool)) (entry[K, V], error) {
	h, ok := pick()
	if !ok {
		return entry[K, V]{}, fmt.Errorf("%s: %w", op, ErrEmpty)
	}
	return *q.s.pool.at(h), nil
}

// Get returns the value of the entry ChangeValue would update for key: the
// smallest value stored under key.
func (q *Queue[K, V]) Get(key K) (V, error) {
	h, ok := q.s.find(key)
	if !ok {
		var zero V
		return zero, fmt.Errorf("get key %v: %w", key, ErrNotFound)
	}
	return q.s.pool.at(h).value, nil
}

// Count returns the number of entries stored under key.
func (q *Queue[K, V]) Count(key K) int {
	n := 0
	q.s.ascendKey(key, func(handle) bool {
		n++
		return true
	})
	return n
}

// All yields every entry in key order, ties ordered by value.
func (q *Queue[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for e := range q.s.entries() {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// Ascend yields every entry in value order, ties ordered by key.
func (q *Queue[K, V]) Ascend() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for e := range q.s.entriesByValue() {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// Clear removes all entries.
func (q *Queue[K, V]) Clear() {
	q.s = q.s.empty()
}

// String formats the queue as {k:v k:v} in key order.
func (q *Queue[K, V]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for k, v := range q.All() {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&b, "%v:%v", k, v)
	}
	b.WriteByte('}')
	return b.String()
}

// undoOnPanic must be deferred directly. It runs undo when the surrounding
// call panics and lets the panic continue.
func (q *Queue[K, V]) undoOnPanic(op string, undo func()) {
	if r := recover(); r != nil {
		undo()
		q.opts.logger.Warn("rolled back after panic",
			zap.String("op", op),
			zap.Any("panic", r),
			zap.Int("size", q.Len()),
		)
		panic(r)
	}
}
