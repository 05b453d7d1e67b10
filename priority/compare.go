package priority

import "iter"

// Compare orders two queues lexicographically by their key-ordered (key,
// value) sequences. It returns -1 if q sorts before other, +1 if after, and 0
// if both hold the same pairs with the same multiplicity. A queue that is a
// strict prefix of the other sorts first. Both queues are compared with q's
// comparators.
func (q *Queue[K, V]) Compare(other *Queue[K, V]) int {
	if q == other || q.s == other.s {
		return 0
	}

	next, stop := iter.Pull(other.s.entries())
	defer stop()

	for a := range q.s.entries() {
		b, ok := next()
		if !ok {
			return 1
		}
		if c := q.s.compareEntries(a, b); c != 0 {
			if c < 0 {
				return -1
			}
			return 1
		}
	}
	if _, ok := next(); ok {
		return -1
	}
	return 0
}

// Equal reports whether both queues hold the same pairs.
func (q *Queue[K, V]) Equal(other *Queue[K, V]) bool { return q.Compare(other) == 0 }

// NotEqual is the negation of Equal.
func (q *Queue[K, V]) NotEqual(other *Queue[K, V]) bool { return q.Compare(other) != 0 }

func (q *Queue[K, V]) Less(other *Queue[K, V]) bool { return q.Compare(other) < 0 }

func (q *Queue[K, V]) LessOrEqual(other *Queue[K, V]) bool { return q.Compare(other) <= 0 }

func (q *Queue[K, V]) Greater(other *Queue[K, V]) bool { return q.Compare(other) > 0 }

func (q *Queue[K, V]) GreaterOrEqual(other *Queue[K, V]) bool { return q.Compare(other) >= 0 }
