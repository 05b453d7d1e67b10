package loser

import (
	"iter"
)

// New returns a tree that merges the given sorted sequences into one sorted
// sequence. cmp is a three-way comparison; equal elements are yielded in the
// order of the sequences that produced them.
func New[E any](cmp func(a, b E) int, sequences ...iter.Seq[E]) *Tree[E] {
	return &Tree[E]{
		nodes:     make([]node[E], len(sequences)*2),
		sequences: sequences,
		cmp:       cmp,
	}
}

// A Tree is a binary tree laid out such that nodes N and N+1 have parent N/2.
// The M leaves live in positions M...2M-1 and the M-1 internal nodes in
// positions 1..M-1. Node 0 records the winner of the contest.
type Tree[E any] struct {
	nodes     []node[E]
	sequences []iter.Seq[E]
	cmp       func(a, b E) int
}

type node[E any] struct {
	index int              // Leaf position of the loser; of the winner for node 0.
	value E                // Only populated for leaf nodes.
	done  bool             // Leaf sequence is exhausted.
	next  func() (E, bool) // Only populated for leaf nodes.
}

// All yields the merged sequence. A Tree is single use: once All has been
// ranged over, the underlying sequences are consumed.
func (t *Tree[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		if len(t.nodes) == 0 {
			return
		}
		leaves := len(t.sequences)
		for i, s := range t.sequences {
			next, stop := iter.Pull(s)
			//nolint:gocritic // stopped when the merge returns.
			defer stop()
			t.nodes[i+leaves].next = next
			t.advance(i + leaves)
		}
		t.nodes[0].index = t.playGame(1)
		for {
			w := t.nodes[0].index
			if t.nodes[w].done || !yield(t.nodes[w].value) {
				return
			}
			t.advance(w)
			t.replayGames(w)
		}
	}
}

func (t *Tree[E]) advance(leaf int) {
	n := &t.nodes[leaf]
	if v, ok := n.next(); ok {
		n.value = v
		return
	}
	var zero E
	n.value = zero
	n.done = true
}

// beats reports whether leaf a wins against leaf b. Exhausted leaves lose to
// everything; ties go to the lower leaf so merging is stable.
func (t *Tree[E]) beats(a, b int) bool {
	na, nb := &t.nodes[a], &t.nodes[b]
	switch {
	case na.done:
		return false
	case nb.done:
		return true
	}
	if c := t.cmp(na.value, nb.value); c != 0 {
		return c < 0
	}
	return a < b
}

// Find the winner at position pos; if it is a non-leaf node, store the loser.
// pos must be >= 1 and < len(t.nodes).
func (t *Tree[E]) playGame(pos int) int {
	if pos >= len(t.nodes)/2 {
		return pos
	}
	left := t.playGame(pos * 2)
	right := t.playGame(pos*2 + 1)
	winner, loser := right, left
	if t.beats(left, right) {
		winner, loser = left, right
	}
	t.nodes[pos].index = loser
	return winner
}

// Starting at leaf pos, which was the winner, re-run the games on the path
// to the root.
func (t *Tree[E]) replayGames(pos int) {
	winner := pos
	for n := parent(pos); n != 0; n = parent(n) {
		if t.beats(t.nodes[n].index, winner) {
			t.nodes[n].index, winner = winner, t.nodes[n].index
		}
	}
	t.nodes[0].index = winner
}

func parent(i int) int { return i >> 1 }
