package scheduler

import (
	"container/heap"
	"time"

	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
)

type entry struct {
	id    domain.ID
	at    time.Time
	index int
}

// queue is a min-heap of registrations ordered by instant.
type queue []*entry

var _ heap.Interface = (*queue)(nil)

func (q queue) Len() int {
	return len(q)
}

func (q queue) Less(i, j int) bool {
	if q[i].at.Equal(q[j].at) {
		return q[i].id < q[j].id
	}

	return q[i].at.Before(q[j].at)
}

func (q queue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *queue) Push(x any) {
	e, _ := x.(*entry)
	e.index = len(*q)
	*q = append(*q, e)
}

func (q *queue) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*q = old[:n-1]

	return e
}
