package priority

import (
	"iter"

	"github.com/google/btree"
)

// store holds the entry pool and the two indices over it. Every live handle
// is referenced exactly once by byValue and once by byKey.
type store[K, V any] struct {
	keyCmp   func(a, b K) int
	valueCmp func(a, b V) int
	degree   int

	pool    pool[K, V]
	byValue *btree.BTreeG[handle] // (value, key, seq)
	byKey   *btree.BTreeG[handle] // (key, value, seq)
	seq     uint64
	pivot   entry[K, V]
}

func newStore[K, V any](keyCmp func(a, b K) int, valueCmp func(a, b V) int, degree int) *store[K, V] {
	s := &store[K, V]{
		keyCmp:   keyCmp,
		valueCmp: valueCmp,
		degree:   degree,
	}
	s.byValue = btree.NewG[handle](degree, s.valueLess)
	s.byKey = btree.NewG[handle](degree, s.keyLess)
	return s
}

// empty returns a store with the same ordering and no entries.
func (s *store[K, V]) empty() *store[K, V] {
	return newStore(s.keyCmp, s.valueCmp, s.degree)
}

func (s *store[K, V]) len() int {
	return s.byValue.Len()
}

func (s *store[K, V]) valueLess(a, b handle) bool {
	ea, eb := s.pool.at(a), s.pool.at(b)
	if c := s.valueCmp(ea.value, eb.value); c != 0 {
		return c < 0
	}
	if c := s.keyCmp(ea.key, eb.key); c != 0 {
		return c < 0
	}
	return ea.seq < eb.seq
}

func (s *store[K, V]) keyLess(a, b handle) bool {
	switch {
	case a == probe:
		return s.keyCmp(s.pivot.key, s.pool.at(b).key) <= 0
	case b == probe:
		return s.keyCmp(s.pool.at(a).key, s.pivot.key) < 0
	}
	ea, eb := s.pool.at(a), s.pool.at(b)
	if c := s.compareEntries(*ea, *eb); c != 0 {
		return c < 0
	}
	return ea.seq < eb.seq
}

// compareEntries orders entries by key then value, ignoring seq.
func (s *store[K, V]) compareEntries(a, b entry[K, V]) int {
	if c := s.keyCmp(a.key, b.key); c != 0 {
		return c
	}
	return s.valueCmp(a.value, b.value)
}

// ascendKey calls fn for each entry with the given key in key order, until
// fn returns false.
func (s *store[K, V]) ascendKey(key K, fn func(h handle) bool) {
	s.pivot.key = key
	defer func() { s.pivot = entry[K, V]{} }()
	s.byKey.AscendGreaterOrEqual(probe, func(h handle) bool {
		if s.keyCmp(s.pool.at(h).key, key) != 0 {
			return false
		}
		return fn(h)
	})
}

// find returns the first entry with the given key in key order: the one with
// the smallest value, the earliest inserted among equal values.
func (s *store[K, V]) find(key K) (handle, bool) {
	found, ok := probe, false
	s.ascendKey(key, func(h handle) bool {
		found, ok = h, true
		return false
	})
	return found, ok
}

// add inserts into both indices without rollback; callers own failure handling.
func (s *store[K, V]) add(key K, value V) handle {
	s.seq++
	h := s.pool.alloc(key, value, s.seq)
	s.byValue.ReplaceOrInsert(h)
	s.byKey.ReplaceOrInsert(h)
	return h
}

// entries yields entries in key order.
func (s *store[K, V]) entries() iter.Seq[entry[K, V]] {
	return func(yield func(entry[K, V]) bool) {
		s.byKey.Ascend(func(h handle) bool {
			return yield(*s.pool.at(h))
		})
	}
}

// entriesByValue yields entries in value order.
func (s *store[K, V]) entriesByValue() iter.Seq[entry[K, V]] {
	return func(yield func(entry[K, V]) bool) {
		s.byValue.Ascend(func(h handle) bool {
			return yield(*s.pool.at(h))
		})
	}
}

// clone builds an independent store holding copies of all entries.
func (s *store[K, V]) clone() *store[K, V] {
	c := s.empty()
	for e := range s.entries() {
		c.add(e.key, e.value)
	}
	return c
}
