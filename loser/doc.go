// Package loser implements a tournament tree (also known as a loser tree) for
// merging several sorted sequences into one. The layout follows Bryan
// Boreham's go-loser (https://github.com/bboreham/go-loser).
//
// Each internal node of the tree remembers the leaf that lost the game played
// there, while node 0 remembers the overall winner. Advancing the winning
// sequence only replays the games on the path from its leaf to the root, so
// every yielded element costs O(log m) comparisons for m sequences.
//
// Sequences are plain iter.Seq values and ordering is a three-way comparison
// function, so no sentinel maximum value is needed: an exhausted sequence
// simply loses every game.
//
// Basic usage:
//
//	tree := loser.New(cmp.Compare[int],
//	    slices.Values([]int{1, 4, 7}),
//	    slices.Values([]int{2, 5, 8}),
//	)
//
//	for v := range tree.All() {
//	    fmt.Println(v) // 1, 2, 4, 5, 7, 8
//	}
//
// Elements that compare equal are yielded in the order of the sequences that
// produced them, which makes the merge stable.
package loser
