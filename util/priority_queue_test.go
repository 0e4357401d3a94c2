package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriorityQueueOrder(t *testing.T) {
	pq := NewPriorityQueue[string, int32](4)
	pq.Enqueue("c", 30)
	pq.Enqueue("a", 10)
	pq.Enqueue("d", 40)
	pq.Enqueue("b", 20)
	pq.Enqueue("a-stale", 15)

	assert.Equal(t, 5, pq.Length())

	order := make([]string, 0)
	for {
		item, ok := pq.Dequeue()
		if !ok {
			break
		}
		order = append(order, item)
	}
	assert.Equal(t, []string{"a", "a-stale", "b", "c", "d"}, order)
}

func TestPriorityQueueEmpty(t *testing.T) {
	pq := NewPriorityQueue[int32, float64](0)
	_, ok := pq.Dequeue()
	assert.False(t, ok)

	pq.Enqueue(1, 1)
	item, ok := pq.Dequeue()
	assert.True(t, ok)
	assert.Equal(t, int32(1), item)
	assert.Equal(t, 0, pq.Length())
}
