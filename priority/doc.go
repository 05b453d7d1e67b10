// Package priority implements a generic ordered multimap, a priority queue
// that associates keys with values, allows duplicate keys and gives efficient
// access both by value order and by key.
//
// Entries live in a per-queue arena and are addressed by integer handles.
// Two btrees hold those handles: one ordered by (value, key), answering
// min/max queries, and one ordered by (key, value), answering lookups by key.
// An insertion sequence number breaks the remaining ties, so every entry has
// exactly one position in each index and deleting through one index always
// finds the identical entry in the other.
//
// Key features:
//   - Generic implementation over any key and value types with a total order
//   - O(log n) insertion, deletion and value changes
//   - O(log n) min/max by value and lookup by key
//   - Merging that empties the source queue
//   - Lexicographic comparison between whole queues
//   - Deep copy, O(1) move and swap
//
// Basic usage:
//
//	pq := priority.NewOrdered[string, int]()
//
//	pq.Insert("task1", 5)
//	pq.Insert("task2", 3)
//	pq.Insert("task1", 7) // duplicate keys are kept
//
//	value, err := pq.MinValue() // 3
//	if errors.Is(err, priority.ErrEmpty) {
//	    // nothing queued
//	}
//
//	pq.DeleteMin()                   // removes ("task2", 3)
//	err = pq.ChangeValue("task1", 1) // ("task1", 5) becomes ("task1", 1)
//
// Mutations that touch both indices roll back their partial work when a
// comparator panics, so a recovered caller sees the queue exactly as it was
// before the call.
//
// A Queue is not safe for concurrent use; guard each queue with its own lock
// if it is shared between goroutines.
package priority
