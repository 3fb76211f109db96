package astar

import (
	"container/heap"

	"github.com/katalvlaran/gridpath/grid"
)

// Frontier is the open set of a search: a min-priority queue ordered by
// (f, sequence) with O(1) membership.
type Frontier struct {
	queue   entryQueue
	members map[*grid.Cell]*entry
	nextSeq uint64
}

// NewFrontier returns an empty frontier.
func NewFrontier() *Frontier {
	return &Frontier{members: make(map[*grid.Cell]*entry)}
}

// Len returns the number of enqueued cells.
func (f *Frontier) Len() int { return len(f.queue) }

// Contains reports whether c is currently enqueued.
func (f *Frontier) Contains(c *grid.Cell) bool {
	_, ok := f.members[c]
	return ok
}

// PushOrUpdate enqueues c with priority fScore and the next sequence number,
// reporting true. If c is already enqueued and fScore is lower, its priority is
// lowered in place and it keeps its sequence; the return is false either way.
func (f *Frontier) PushOrUpdate(c *grid.Cell, fScore int) bool {
	if e, ok := f.members[c]; ok {
		if fScore < e.f {
			e.f = fScore
			heap.Fix(&f.queue, e.index)
		}
		return false
	}
	e := &entry{cell: c, f: fScore, seq: f.nextSeq}
	f.nextSeq++
	heap.Push(&f.queue, e)
	f.members[c] = e

	return true
}

// PopMin removes and returns the cell with the smallest (f, sequence),
// or nil when the frontier is empty.
func (f *Frontier) PopMin() *grid.Cell {
	if len(f.queue) == 0 {
		return nil
	}
	e := heap.Pop(&f.queue).(*entry)
	delete(f.members, e.cell)

	return e.cell
}

// entry is one queued cell with its ordering key.
type entry struct {
	cell  *grid.Cell
	f     int
	seq   uint64
	index int
}

// entryQueue implements heap.Interface ordered by (f, seq) ascending.
type entryQueue []*entry

func (q entryQueue) Len() int { return len(q) }

func (q entryQueue) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}

	return q[i].seq < q[j].seq
}

func (q entryQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *entryQueue) Push(x interface{}) {
	e := x.(*entry)
	e.index = len(*q)
	*q = append(*q, e)
}

func (q *entryQueue) Pop() interface{} {
	old := *q
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*q = old[:n-1]

	return e
}
