package astar

import (
	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"
)

// frontierEntry orders by priority, then by insertion sequence.
type frontierEntry struct {
	Priority int
	Sequence int
	Position Position
}

func lessEntry(a, b frontierEntry) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	return a.Sequence < b.Sequence
}

// Frontier is the open set: a min-priority queue with FIFO tie-breaking and
// constant-time membership. A position is held at most once; pushing a member
// again is refused rather than re-prioritised.
type Frontier struct {
	queue    *heap.Heap[frontierEntry]
	members  mapset.Set[Position]
	sequence int
}

func NewFrontier() *Frontier {
	return &Frontier{
		queue:   heap.New(lessEntry),
		members: mapset.New[Position](),
	}
}

// Push inserts p with the given priority and the next insertion sequence.
// It returns false and leaves the frontier untouched when p is already a member.
func (f *Frontier) Push(p Position, priority int) bool {
	if f.members.Has(p) {
		return false
	}
	f.queue.Push(frontierEntry{Priority: priority, Sequence: f.sequence, Position: p})
	f.sequence++
	f.members.Put(p)
	return true
}

// PopMin removes the entry with the smallest priority; among equal priorities
// the earliest pushed wins.
func (f *Frontier) PopMin() (Position, bool) {
	entry, ok := f.queue.Pop()
	if !ok {
		return Position{}, false
	}
	f.members.Remove(entry.Position)
	return entry.Position, true
}

func (f *Frontier) Contains(p Position) bool { return f.members.Has(p) }
func (f *Frontier) IsEmpty() bool            { return f.queue.Size() == 0 }
func (f *Frontier) Len() int                 { return f.queue.Size() }
