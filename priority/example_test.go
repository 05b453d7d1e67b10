package priority_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/davidvella/pqueue/priority"
)

// ExampleQueue_minMax demonstrates access to both ends of the value order.
func ExampleQueue_minMax() {
	pq := priority.NewOrdered[int, int]()

	pq.Insert(1, 42)
	pq.Insert(2, 13)

	minKey, _ := pq.MinKey()
	minValue, _ := pq.MinValue()
	maxKey, _ := pq.MaxKey()
	maxValue, _ := pq.MaxValue()
	fmt.Printf("min: %d = %d\n", minKey, minValue)
	fmt.Printf("max: %d = %d\n", maxKey, maxValue)

	// Output:
	// min: 2 = 13
	// max: 1 = 42
}

// ExampleQueue_ChangeValue demonstrates updating the value stored under a key.
func ExampleQueue_ChangeValue() {
	pq := priority.NewOrdered[int, int]()
	pq.Insert(1, 100)
	pq.Insert(2, 100)
	pq.Insert(3, 300)

	if err := pq.ChangeValue(4, 400); errors.Is(err, priority.ErrNotFound) {
		fmt.Println("error:", err)
	}

	_ = pq.ChangeValue(2, 200)
	fmt.Println(pq)

	for !pq.Empty() {
		key, _ := pq.MinKey()
		value, _ := pq.MinValue()
		fmt.Printf("%d = %d\n", key, value)
		pq.DeleteMin()
	}

	_, err := pq.MinValue()
	fmt.Println("error:", err)

	// Output:
	// error: change value of key 4: key not found
	// {1:100 2:200 3:300}
	// 1 = 100
	// 2 = 200
	// 3 = 300
	// error: min value: priority queue is empty
}

// ExampleQueue_Merge demonstrates moving all entries of one queue into another.
func ExampleQueue_Merge() {
	a := priority.NewOrdered[string, int]()
	a.Insert("b", 2)
	a.Insert("d", 4)

	b := priority.NewOrdered[string, int]()
	b.Insert("a", 1)
	b.Insert("c", 3)
	b.Insert("d", 0)

	a.Merge(b)
	fmt.Println(a, a.Len())
	fmt.Println(b, b.Empty())

	// Output:
	// {a:1 b:2 c:3 d:0 d:4} 5
	// {} true
}

// ExampleQueue_Compare demonstrates the lexicographic order between queues.
func ExampleQueue_Compare() {
	p := priority.NewOrdered[int, int]()
	p.Insert(1, 10)
	p.Insert(2, 20)

	q := p.Clone()
	fmt.Println(p.Equal(q))

	q.Insert(3, 30)
	fmt.Println(p.Less(q), p.NotEqual(q))

	// Output:
	// true
	// true true
}

// ExampleNew demonstrates custom comparators.
func ExampleNew() {
	type Task struct {
		Priority int
		Name     string
	}

	pq := priority.New(strings.Compare, func(a, b Task) int {
		return b.Priority - a.Priority // highest priority first
	})

	pq.Insert("build", Task{Priority: 1, Name: "Low priority"})
	pq.Insert("deploy", Task{Priority: 9, Name: "High priority"})

	for key, task := range pq.Ascend() {
		fmt.Printf("%s: %s (priority %d)\n", key, task.Name, task.Priority)
	}

	// Output:
	// deploy: High priority (priority 9)
	// build: Low priority (priority 1)
}
