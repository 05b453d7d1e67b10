package loser_test

import (
	"cmp"
	"iter"
	"slices"
	"testing"

	"github.com/davidvella/pqueue/loser"
	"github.com/stretchr/testify/assert"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name string
		args [][]int
		want []int
	}{
		{
			name: "empty input",
			want: nil,
		},
		{
			name: "one list",
			args: [][]int{{1, 2, 3, 4}},
			want: []int{1, 2, 3, 4},
		},
		{
			name: "two lists",
			args: [][]int{{3, 4, 5}, {1, 2}},
			want: []int{1, 2, 3, 4, 5},
		},
		{
			name: "two lists, first empty",
			args: [][]int{{}, {1, 2}},
			want: []int{1, 2},
		},
		{
			name: "two lists, second empty",
			args: [][]int{{1, 2}, {}},
			want: []int{1, 2},
		},
		{
			name: "two lists, interleaved",
			args: [][]int{{1, 3}, {2, 4, 5}},
			want: []int{1, 2, 3, 4, 5},
		},
		{
			name: "three lists",
			args: [][]int{{1, 3}, {2, 4}, {5}},
			want: []int{1, 2, 3, 4, 5},
		},
		{
			name: "duplicates across lists",
			args: [][]int{{1, 2, 2}, {2, 3}, {1}},
			want: []int{1, 1, 2, 2, 2, 3},
		},
		{
			name: "all empty",
			args: [][]int{{}, {}, {}},
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seqs := make([]iter.Seq[int], 0, len(tt.args))
			for _, a := range tt.args {
				seqs = append(seqs, slices.Values(a))
			}
			got := slices.Collect(loser.New(cmp.Compare[int], seqs...).All())
			assert.Equal(t, tt.want, got)
		})
	}
}

type tagged struct {
	v   int
	src string
}

func TestMergeIsStable(t *testing.T) {
	byValue := func(a, b tagged) int { return cmp.Compare(a.v, b.v) }
	tree := loser.New(byValue,
		slices.Values([]tagged{{1, "a"}, {2, "a"}}),
		slices.Values([]tagged{{1, "b"}, {2, "b"}}),
		slices.Values([]tagged{{1, "c"}}),
	)

	got := slices.Collect(tree.All())
	want := []tagged{{1, "a"}, {1, "b"}, {1, "c"}, {2, "a"}, {2, "b"}}
	assert.Equal(t, want, got)
}

func TestMergeEarlyStop(t *testing.T) {
	tree := loser.New(cmp.Compare[int],
		slices.Values([]int{1, 3, 5}),
		slices.Values([]int{2, 4, 6}),
	)

	var got []int
	for v := range tree.All() {
		if v > 3 {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 2, 3}, got)
}

func BenchmarkMerge(b *testing.B) {
	b.ReportAllocs()
	lists := make([][]int, 8)
	for i := range lists {
		for j := 0; j < 1000; j++ {
			lists[i] = append(lists[i], j*len(lists)+i)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		seqs := make([]iter.Seq[int], 0, len(lists))
		for _, l := range lists {
			seqs = append(seqs, slices.Values(l))
		}
		for range loser.New(cmp.Compare[int], seqs...).All() {
		}
	}
}
