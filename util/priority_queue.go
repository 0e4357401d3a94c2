package util

import (
	"container/heap"

	"golang.org/x/exp/constraints"
)

//*******************************************
// priority queue
//*******************************************

// PriorityQueue is a min-queue. Items are never updated in place, enqueuing
// the same item twice keeps both entries.
type PriorityQueue[T any, P constraints.Ordered] struct {
	items *_PQItems[T, P]
}

func NewPriorityQueue[T any, P constraints.Ordered](cap int) PriorityQueue[T, P] {
	items := make(_PQItems[T, P], 0, cap)
	return PriorityQueue[T, P]{
		items: &items,
	}
}

func (self PriorityQueue[T, P]) Enqueue(item T, priority P) {
	heap.Push(self.items, _PQItem[T, P]{item: item, priority: priority})
}

func (self PriorityQueue[T, P]) Dequeue() (T, bool) {
	if self.items.Len() == 0 {
		var t T
		return t, false
	}
	entry := heap.Pop(self.items).(_PQItem[T, P])
	return entry.item, true
}

func (self PriorityQueue[T, P]) Length() int {
	return self.items.Len()
}

type _PQItem[T any, P constraints.Ordered] struct {
	item     T
	priority P
}

type _PQItems[T any, P constraints.Ordered] []_PQItem[T, P]

func (self _PQItems[T, P]) Len() int           { return len(self) }
func (self _PQItems[T, P]) Less(i, j int) bool { return self[i].priority < self[j].priority }
func (self _PQItems[T, P]) Swap(i, j int)      { self[i], self[j] = self[j], self[i] }

func (self *_PQItems[T, P]) Push(x any) {
	*self = append(*self, x.(_PQItem[T, P]))
}

func (self *_PQItems[T, P]) Pop() any {
	old := *self
	n := len(old)
	item := old[n-1]
	*self = old[0 : n-1]
	return item
}
