package priority

import (
	"github.com/davidvella/pqueue/loser"
	"go.uber.org/zap"
)

// Merge moves every entry of other into q and leaves other empty. The merged
// contents are built aside and installed only once complete, so a panicking
// comparator leaves both queues untouched. Merging a queue into itself does
// nothing.
func (q *Queue[K, V]) Merge(other *Queue[K, V]) {
	if other == nil || q == other || q.s == other.s {
		return
	}

	merged := q.s.empty()
	tree := loser.New(q.s.compareEntries, q.s.entries(), other.s.entries())
	for e := range tree.All() {
		merged.add(e.key, e.value)
	}

	q.opts.logger.Debug("merged queues",
		zap.Int("size", q.Len()),
		zap.Int("other_size", other.Len()),
		zap.Int("merged_size", merged.len()),
	)
	q.s = merged
	other.s = other.s.empty()
}
